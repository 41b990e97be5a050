package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hotel-booking-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrDraftNotFound is returned when a draft token is unknown or expired
var ErrDraftNotFound = errors.New("booking draft not found or expired")

const draftKeyPrefix = "booking:draft:"

// DraftStore is the funnel draft persistence the checkout flow depends
// on. BookingDraftService is the Redis-backed implementation.
type DraftStore interface {
	Save(ctx context.Context, selection *entity.BookingSelection) (string, error)
	Get(ctx context.Context, token string) (*entity.BookingSelection, error)
	Delete(ctx context.Context, token string) error
}

// BookingDraftService holds the in-progress funnel selection server-side
// in Redis, keyed by an opaque token handed to the client. This replaces
// trusting the client to carry the wizard state between steps.
type BookingDraftService struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewBookingDraftService(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) *BookingDraftService {
	return &BookingDraftService{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

// Save stores the selection and returns the draft token
func (s *BookingDraftService) Save(ctx context.Context, selection *entity.BookingSelection) (string, error) {
	payload, err := json.Marshal(selection)
	if err != nil {
		return "", fmt.Errorf("marshal booking selection: %w", err)
	}

	token := uuid.New().String()
	key := draftKeyPrefix + token
	if err := s.redisClient.Set(ctx, key, payload, s.ttl).Err(); err != nil {
		s.log.Warnf("Failed to store booking draft: %+v", err)
		return "", fmt.Errorf("store booking draft: %w", err)
	}

	return token, nil
}

// Get loads the selection for a token
func (s *BookingDraftService) Get(ctx context.Context, token string) (*entity.BookingSelection, error) {
	payload, err := s.redisClient.Get(ctx, draftKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrDraftNotFound
		}
		s.log.Warnf("Failed to load booking draft %s: %+v", token, err)
		return nil, fmt.Errorf("load booking draft: %w", err)
	}

	var selection entity.BookingSelection
	if err := json.Unmarshal(payload, &selection); err != nil {
		return nil, fmt.Errorf("unmarshal booking draft: %w", err)
	}
	return &selection, nil
}

// Delete removes a consumed draft. Missing keys are not an error.
func (s *BookingDraftService) Delete(ctx context.Context, token string) error {
	if err := s.redisClient.Del(ctx, draftKeyPrefix+token).Err(); err != nil {
		s.log.Warnf("Failed to delete booking draft %s: %+v", token, err)
		return fmt.Errorf("delete booking draft: %w", err)
	}
	return nil
}

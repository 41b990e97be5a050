package service

import (
	"context"
	"time"

	"hotel-booking-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// BookingSweepService periodically reconciles bookings whose lock or
// expiry deadline has passed, so deadlines take effect even when nobody
// reads the booking. The lazy reconcile on the read paths remains the
// primary mechanism; the sweep is the backstop.
type BookingSweepService struct {
	db          *gorm.DB
	log         *logrus.Logger
	bookingRepo repository.BookingRepository
	lifecycle   *BookingLifecycleService
	interval    time.Duration

	ticker *time.Ticker
	done   chan struct{}
}

func NewBookingSweepService(
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	lifecycle *BookingLifecycleService,
	interval time.Duration,
) *BookingSweepService {
	return &BookingSweepService{
		db:          db,
		log:         log,
		bookingRepo: bookingRepo,
		lifecycle:   lifecycle,
		interval:    interval,
		done:        make(chan struct{}),
	}
}

// Start launches the sweep loop. An initial pass runs immediately.
func (s *BookingSweepService) Start(ctx context.Context) {
	s.log.Infof("Starting booking sweep: interval=%v, review_window=%v", s.interval, s.lifecycle.ReviewWindow())
	s.ticker = time.NewTicker(s.interval)

	go s.sweep(ctx)

	go func() {
		for {
			select {
			case <-s.ticker.C:
				s.sweep(ctx)
			case <-s.done:
				s.log.Info("Booking sweep stopped")
				return
			}
		}
	}()
}

// Stop terminates the sweep loop
func (s *BookingSweepService) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
	}
	close(s.done)
}

func (s *BookingSweepService) sweep(ctx context.Context) {
	now := time.Now().UTC()
	createdBefore := now.Add(-s.lifecycle.ReviewWindow())

	due, err := s.bookingRepo.FindDueForReconcile(s.db.WithContext(ctx), createdBefore, now)
	if err != nil {
		s.log.Errorf("Failed to query bookings due for reconcile: %+v", err)
		return
	}
	if len(due) == 0 {
		return
	}

	s.log.Infof("Sweeping %d bookings past their deadline", len(due))
	for i := range due {
		if err := s.lifecycle.Reconcile(ctx, &due[i]); err != nil {
			s.log.Warnf("Failed to reconcile booking %s: %+v", due[i].BookingCode, err)
		}
	}
}

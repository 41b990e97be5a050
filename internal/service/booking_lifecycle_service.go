package service

import (
	"context"
	"time"

	"hotel-booking-backend/internal/domain/entity"
	"hotel-booking-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// BookingLifecycleService applies the clock-driven deadlines (auto-lock,
// payment expiry) to bookings. The read paths call Reconcile lazily on
// every booking they load; the sweep job calls the same code on a timer,
// so both paths observe identical deadlines.
type BookingLifecycleService struct {
	db            *gorm.DB
	log           *logrus.Logger
	bookingRepo   repository.BookingRepository
	notifications *NotificationService
	reviewWindow  time.Duration
}

func NewBookingLifecycleService(
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	notifications *NotificationService,
	reviewWindow time.Duration,
) *BookingLifecycleService {
	return &BookingLifecycleService{
		db:            db,
		log:           log,
		bookingRepo:   bookingRepo,
		notifications: notifications,
		reviewWindow:  reviewWindow,
	}
}

// ReviewWindow exposes the configured lock/expiry deadline
func (s *BookingLifecycleService) ReviewWindow() time.Duration {
	return s.reviewWindow
}

// Reconcile evaluates the deadlines for one booking, persists any
// change with conditional updates (so concurrent reconciles apply each
// event once), and fires the guest notifications. The booking is
// mutated in place to reflect the new state.
func (s *BookingLifecycleService) Reconcile(ctx context.Context, booking *entity.Booking) error {
	events := booking.Reconcile(time.Now().UTC(), s.reviewWindow)
	if len(events) == 0 {
		return nil
	}

	db := s.db.WithContext(ctx)
	for _, event := range events {
		switch event {
		case entity.EventBookingLocked:
			affected, err := s.bookingRepo.MarkLocked(db, booking.ID)
			if err != nil {
				s.log.Warnf("Failed to lock booking %s: %+v", booking.BookingCode, err)
				return err
			}
			if affected == 0 {
				// another request already locked it; nothing to announce
				continue
			}
			s.log.Infof("Booking locked: code=%s", booking.BookingCode)
			s.notifications.NotifyBookingEvent(booking, event)

		case entity.EventBookingExpired:
			affected, err := s.bookingRepo.UpdateStatus(db, booking.ID,
				entity.BookingStatusPendingPayment, entity.BookingStatusExpired, nil)
			if err != nil {
				s.log.Warnf("Failed to expire booking %s: %+v", booking.BookingCode, err)
				return err
			}
			if affected == 0 {
				continue
			}
			s.log.Infof("Booking expired: code=%s", booking.BookingCode)
			s.notifications.NotifyBookingEvent(booking, event)
		}
	}

	return nil
}

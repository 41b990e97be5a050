package service

import (
	"fmt"

	"hotel-booking-backend/config"
	"hotel-booking-backend/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// Notifier delivers a message to a guest contact. Implementations are
// fire-and-forget from the caller's point of view.
type Notifier interface {
	Send(recipient, subject, body string) error
}

// SMTPNotifier sends plain-text mail through the configured SMTP relay
type SMTPNotifier struct {
	cfg config.SMTPConfig
}

func NewSMTPNotifier(cfg config.SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg}
}

func (n *SMTPNotifier) Send(recipient, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(n.cfg.Host, n.cfg.Port, n.cfg.User, n.cfg.Password)
	return d.DialAndSend(m)
}

// NotificationService wraps a Notifier with the best-effort policy: a
// delivery failure is logged and swallowed so it can never fail or roll
// back the state transition that triggered it.
type NotificationService struct {
	notifier Notifier
	log      *logrus.Logger
}

func NewNotificationService(notifier Notifier, log *logrus.Logger) *NotificationService {
	return &NotificationService{
		notifier: notifier,
		log:      log,
	}
}

// NotifyBookingEvent sends the guest-facing message for a lifecycle
// event. Always returns without error.
func (s *NotificationService) NotifyBookingEvent(booking *entity.Booking, event entity.LifecycleEvent) {
	recipient := booking.ContactEmail()
	if recipient == "" {
		s.log.Warnf("No contact email for booking %s, skipping %s notification", booking.BookingCode, event)
		return
	}

	subject, body := bookingEventMessage(booking, event)
	if subject == "" {
		return
	}

	if err := s.notifier.Send(recipient, subject, body); err != nil {
		s.log.Warnf("Failed to send %s notification for booking %s: %+v", event, booking.BookingCode, err)
	}
}

// NotifyStatusChange sends the guest-facing message for a staff-driven
// status change. Always returns without error.
func (s *NotificationService) NotifyStatusChange(booking *entity.Booking, status entity.BookingStatus) {
	recipient := booking.ContactEmail()
	if recipient == "" {
		s.log.Warnf("No contact email for booking %s, skipping %s notification", booking.BookingCode, status)
		return
	}

	var subject, body string
	switch status {
	case entity.BookingStatusPaymentPendingVerification:
		subject = fmt.Sprintf("Payment proof received for booking %s", booking.BookingCode)
		body = fmt.Sprintf("Dear %s,\n\nWe received your payment proof for booking %s. Our accounting team will verify it shortly.",
			booking.ContactName(), booking.BookingCode)
	case entity.BookingStatusPaid:
		subject = fmt.Sprintf("Payment confirmed for booking %s", booking.BookingCode)
		body = fmt.Sprintf("Dear %s,\n\nYour payment for booking %s has been verified. We will assign your room before arrival.",
			booking.ContactName(), booking.BookingCode)
	case entity.BookingStatusReadyForPayment:
		subject = fmt.Sprintf("Booking %s is ready for payment", booking.BookingCode)
		body = fmt.Sprintf("Dear %s,\n\nYour booking %s has been reviewed. Please transfer the total of %s and upload the payment proof.",
			booking.ContactName(), booking.BookingCode, booking.TotalPrice.StringFixed(2))
	default:
		return
	}

	if err := s.notifier.Send(recipient, subject, body); err != nil {
		s.log.Warnf("Failed to send %s notification for booking %s: %+v", status, booking.BookingCode, err)
	}
}

func bookingEventMessage(booking *entity.Booking, event entity.LifecycleEvent) (string, string) {
	switch event {
	case entity.EventBookingLocked:
		return fmt.Sprintf("Booking %s is now locked", booking.BookingCode),
			fmt.Sprintf("Dear %s,\n\nThe review window for booking %s has closed. The booking can no longer be edited or cancelled online. Please contact reception for changes.",
				booking.ContactName(), booking.BookingCode)
	case entity.EventBookingExpired:
		return fmt.Sprintf("Booking %s has expired", booking.BookingCode),
			fmt.Sprintf("Dear %s,\n\nBooking %s expired because no payment proof was uploaded in time. You are welcome to book again.",
				booking.ContactName(), booking.BookingCode)
	}
	return "", ""
}

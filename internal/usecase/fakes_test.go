package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"hotel-booking-backend/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// newMockDB returns a gorm handle backed by sqlmock so usecase
// transactions (Begin/Commit/Rollback) run against expectations while
// repository access goes through in-memory fakes.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db, mock
}

type fakeBookingRepo struct {
	booking        *entity.Booking
	findByIDResult *entity.Booking
	created        []*entity.Booking
	updateAffected int64
	updateCalls    []entity.BookingStatus
}

func (r *fakeBookingRepo) Create(db *gorm.DB, booking *entity.Booking) error {
	r.created = append(r.created, booking)
	return nil
}

func (r *fakeBookingRepo) Save(db *gorm.DB, booking *entity.Booking) error { return nil }

func (r *fakeBookingRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	return r.findByIDResult, nil
}

func (r *fakeBookingRepo) FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	return r.booking, nil
}

func (r *fakeBookingRepo) FindByCode(db *gorm.DB, code string) (*entity.Booking, error) {
	return r.booking, nil
}

func (r *fakeBookingRepo) FindByCustomerID(db *gorm.DB, customerID uuid.UUID) ([]entity.Booking, error) {
	return nil, nil
}

func (r *fakeBookingRepo) FindAll(db *gorm.DB, filter *entity.BookingFilter) ([]entity.Booking, error) {
	return nil, nil
}

func (r *fakeBookingRepo) UpdateStatus(db *gorm.DB, id uuid.UUID, fromStatus, toStatus entity.BookingStatus, extra map[string]interface{}) (int64, error) {
	r.updateCalls = append(r.updateCalls, toStatus)
	if r.updateAffected > 0 && r.booking != nil {
		r.booking.Status = toStatus
	}
	return r.updateAffected, nil
}

func (r *fakeBookingRepo) CancelByGuest(db *gorm.DB, id uuid.UUID) (int64, error) {
	return r.updateAffected, nil
}

func (r *fakeBookingRepo) MarkLocked(db *gorm.DB, id uuid.UUID) (int64, error) { return 0, nil }

func (r *fakeBookingRepo) CountOverlapping(db *gorm.DB, roomClassID uint, checkIn, checkOut time.Time) (int64, error) {
	return int64(len(r.created)), nil
}

func (r *fakeBookingRepo) FindDueForReconcile(db *gorm.DB, createdBefore, checkInOnOrBefore time.Time) ([]entity.Booking, error) {
	return nil, nil
}

func (r *fakeBookingRepo) ReplaceServices(db *gorm.DB, booking *entity.Booking, services []entity.Service) error {
	return nil
}

type fakeRoomRepo struct {
	rooms []entity.Room
}

func (r *fakeRoomRepo) Create(db *gorm.DB, room *entity.Room) error { return nil }
func (r *fakeRoomRepo) Update(db *gorm.DB, room *entity.Room) error { return nil }
func (r *fakeRoomRepo) Delete(db *gorm.DB, id uint) (int64, error)  { return 1, nil }
func (r *fakeRoomRepo) FindByID(db *gorm.DB, id uint) (*entity.Room, error) {
	return nil, nil
}
func (r *fakeRoomRepo) FindByClassID(db *gorm.DB, roomClassID uint) ([]entity.Room, error) {
	return r.rooms, nil
}
func (r *fakeRoomRepo) FindAll(db *gorm.DB) ([]entity.Room, error) { return r.rooms, nil }
func (r *fakeRoomRepo) FindAvailableByClassForUpdate(db *gorm.DB, roomClassID uint) ([]entity.Room, error) {
	return r.rooms, nil
}
func (r *fakeRoomRepo) FindByIDForUpdate(db *gorm.DB, id uint) (*entity.Room, error) {
	return nil, nil
}
func (r *fakeRoomRepo) CountByClass(db *gorm.DB, roomClassID uint) (int64, error) {
	return int64(len(r.rooms)), nil
}
func (r *fakeRoomRepo) CountAvailableByClass(db *gorm.DB, roomClassID uint) (int64, error) {
	return int64(len(r.rooms)), nil
}
func (r *fakeRoomRepo) UpdateStatus(db *gorm.DB, id uint, from, to entity.RoomStatus) (int64, error) {
	return 1, nil
}

type fakeRoomClassRepo struct {
	class *entity.RoomClass
}

func (r *fakeRoomClassRepo) Create(db *gorm.DB, class *entity.RoomClass) error { return nil }
func (r *fakeRoomClassRepo) Update(db *gorm.DB, class *entity.RoomClass) error { return nil }
func (r *fakeRoomClassRepo) Delete(db *gorm.DB, id uint) (int64, error)        { return 1, nil }
func (r *fakeRoomClassRepo) FindByID(db *gorm.DB, id uint) (*entity.RoomClass, error) {
	return r.class, nil
}
func (r *fakeRoomClassRepo) FindByTypeID(db *gorm.DB, roomTypeID uint) ([]entity.RoomClass, error) {
	return nil, nil
}
func (r *fakeRoomClassRepo) FindAll(db *gorm.DB) ([]entity.RoomClass, error) { return nil, nil }

type fakeServiceRepo struct {
	services []entity.Service
}

func (r *fakeServiceRepo) Create(db *gorm.DB, service *entity.Service) error { return nil }
func (r *fakeServiceRepo) Update(db *gorm.DB, service *entity.Service) error { return nil }
func (r *fakeServiceRepo) Delete(db *gorm.DB, id uint) (int64, error)        { return 1, nil }
func (r *fakeServiceRepo) FindByID(db *gorm.DB, id uint) (*entity.Service, error) {
	return nil, nil
}
func (r *fakeServiceRepo) FindByIDs(db *gorm.DB, ids []uint) ([]entity.Service, error) {
	return r.services, nil
}
func (r *fakeServiceRepo) FindAll(db *gorm.DB) ([]entity.Service, error) { return r.services, nil }

type fakeProofRepo struct {
	upserts []*entity.PaymentProof
}

func (r *fakeProofRepo) Upsert(db *gorm.DB, proof *entity.PaymentProof) error {
	r.upserts = append(r.upserts, proof)
	return nil
}

func (r *fakeProofRepo) FindByBookingID(db *gorm.DB, bookingID uuid.UUID) (*entity.PaymentProof, error) {
	return nil, nil
}

type fakeDraftStore struct {
	selection *entity.BookingSelection
	deleted   []string
}

func (s *fakeDraftStore) Save(ctx context.Context, selection *entity.BookingSelection) (string, error) {
	return "draft-token", nil
}

func (s *fakeDraftStore) Get(ctx context.Context, token string) (*entity.BookingSelection, error) {
	return s.selection, nil
}

func (s *fakeDraftStore) Delete(ctx context.Context, token string) error {
	s.deleted = append(s.deleted, token)
	return nil
}

type fakeAuditService struct {
	actions []string
}

func (s *fakeAuditService) Log(tx *gorm.DB, userID *uuid.UUID, action string, metadata entity.JSON) error {
	s.actions = append(s.actions, action)
	return nil
}

type recordingNotifier struct {
	subjects []string
}

func (n *recordingNotifier) Send(recipient, subject, body string) error {
	n.subjects = append(n.subjects, subject)
	return nil
}

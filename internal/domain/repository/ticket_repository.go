package repository

import (
	"hotel-booking-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TicketRepository interface {
	Create(db *gorm.DB, ticket *entity.Ticket) error
	Save(db *gorm.DB, ticket *entity.Ticket) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Ticket, error)
	FindByCustomerID(db *gorm.DB, customerID uuid.UUID) ([]entity.Ticket, error)
	FindAll(db *gorm.DB, status entity.TicketStatus) ([]entity.Ticket, error)
	AddResponse(db *gorm.DB, response *entity.TicketResponse) error
}

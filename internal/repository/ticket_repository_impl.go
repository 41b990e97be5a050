package repository

import (
	"errors"

	"hotel-booking-backend/internal/domain/entity"
	domainRepo "hotel-booking-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ticketRepository struct{}

func NewTicketRepository() domainRepo.TicketRepository {
	return &ticketRepository{}
}

func (r *ticketRepository) Create(db *gorm.DB, ticket *entity.Ticket) error {
	return db.Create(ticket).Error
}

func (r *ticketRepository) Save(db *gorm.DB, ticket *entity.Ticket) error {
	return db.Omit("Customer", "Assignee", "Responses").Save(ticket).Error
}

func (r *ticketRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Ticket, error) {
	var ticket entity.Ticket
	err := db.Preload("Customer").
		Preload("Assignee").
		Preload("Responses.Responder").
		Where("id = ?", id).
		First(&ticket).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) FindByCustomerID(db *gorm.DB, customerID uuid.UUID) ([]entity.Ticket, error) {
	var tickets []entity.Ticket
	err := db.Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&tickets).Error
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *ticketRepository) FindAll(db *gorm.DB, status entity.TicketStatus) ([]entity.Ticket, error) {
	var tickets []entity.Ticket
	query := db.Preload("Customer").Preload("Assignee")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at DESC").Find(&tickets).Error
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *ticketRepository) AddResponse(db *gorm.DB, response *entity.TicketResponse) error {
	return db.Create(response).Error
}

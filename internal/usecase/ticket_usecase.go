package usecase

import (
	"context"
	"errors"

	"hotel-booking-backend/internal/converter"
	"hotel-booking-backend/internal/delivery/dto"
	"hotel-booking-backend/internal/domain/entity"
	"hotel-booking-backend/internal/domain/repository"
	"hotel-booking-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrTicketNotFound    = errors.New("ticket not found")
	ErrTicketResolved    = errors.New("ticket is already resolved")
	ErrTicketNotOwned    = errors.New("ticket belongs to another customer")
	ErrAssigneeNotStaff  = errors.New("assignee must be a staff account")
	ErrAssigneeNotFound  = errors.New("assignee not found")
	ErrResponderNotFound = errors.New("responder not found")
)

// TicketUsecase handles the customer-support flow: customers open
// tickets against their account, CRM staff assign, respond, and
// resolve them.
type TicketUsecase interface {
	Create(ctx context.Context, customerID uuid.UUID, req *dto.CreateTicketRequest) (*dto.TicketResponse, error)
	GetMyTickets(ctx context.Context, customerID uuid.UUID) (*dto.TicketListResponse, error)
	Get(ctx context.Context, requesterID uuid.UUID, isStaff bool, id uuid.UUID) (*dto.TicketResponse, error)
	ListAll(ctx context.Context, status string) (*dto.TicketListResponse, error)
	Assign(ctx context.Context, staffID uuid.UUID, id uuid.UUID, req *dto.AssignTicketRequest) (*dto.TicketResponse, error)
	Respond(ctx context.Context, responderID uuid.UUID, isStaff bool, id uuid.UUID, req *dto.TicketResponseRequest) (*dto.TicketResponse, error)
	Resolve(ctx context.Context, staffID uuid.UUID, id uuid.UUID) (*dto.TicketResponse, error)
}

type ticketUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	ticketRepo repository.TicketRepository
	userRepo   repository.UserRepository
	audit      service.AuditService
}

func NewTicketUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	ticketRepo repository.TicketRepository,
	userRepo repository.UserRepository,
	audit service.AuditService,
) TicketUsecase {
	return &ticketUsecase{
		db:         db,
		log:        log,
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		audit:      audit,
	}
}

func (u *ticketUsecase) Create(ctx context.Context, customerID uuid.UUID, req *dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	ticket := &entity.Ticket{
		ID:          uuid.New(),
		CustomerID:  customerID,
		Type:        entity.TicketType(req.Type),
		Title:       req.Title,
		Description: req.Description,
		Status:      entity.TicketStatusOpen,
	}

	if err := u.ticketRepo.Create(tx, ticket); err != nil {
		u.log.Warnf("Failed to create ticket: %+v", err)
		return nil, err
	}

	if err := u.audit.Log(tx, &customerID, entity.AuditActionTicketCreate, entity.JSON{
		"ticket_id": ticket.ID.String(),
		"type":      req.Type,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.reload(ctx, ticket.ID)
}

func (u *ticketUsecase) GetMyTickets(ctx context.Context, customerID uuid.UUID) (*dto.TicketListResponse, error) {
	tickets, err := u.ticketRepo.FindByCustomerID(u.db.WithContext(ctx), customerID)
	if err != nil {
		u.log.Warnf("Failed to list tickets for customer %s: %+v", customerID, err)
		return nil, err
	}
	return &dto.TicketListResponse{
		Tickets: converter.TicketsToResponses(tickets),
		Total:   len(tickets),
	}, nil
}

func (u *ticketUsecase) Get(ctx context.Context, requesterID uuid.UUID, isStaff bool, id uuid.UUID) (*dto.TicketResponse, error) {
	ticket, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isStaff && ticket.CustomerID != requesterID {
		return nil, ErrTicketNotOwned
	}
	return converter.TicketToResponse(ticket), nil
}

func (u *ticketUsecase) ListAll(ctx context.Context, status string) (*dto.TicketListResponse, error) {
	tickets, err := u.ticketRepo.FindAll(u.db.WithContext(ctx), entity.TicketStatus(status))
	if err != nil {
		u.log.Warnf("Failed to list tickets: %+v", err)
		return nil, err
	}
	return &dto.TicketListResponse{
		Tickets: converter.TicketsToResponses(tickets),
		Total:   len(tickets),
	}, nil
}

// Assign routes the ticket to a staff member and moves it IN_PROGRESS
func (u *ticketUsecase) Assign(ctx context.Context, staffID uuid.UUID, id uuid.UUID, req *dto.AssignTicketRequest) (*dto.TicketResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	ticket, err := u.ticketRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find ticket %s: %+v", id, err)
		return nil, err
	}
	if ticket == nil {
		return nil, ErrTicketNotFound
	}
	if ticket.IsResolved() {
		return nil, ErrTicketResolved
	}

	assignee, err := u.userRepo.FindByID(tx, req.AssigneeID)
	if err != nil {
		return nil, err
	}
	if assignee == nil {
		return nil, ErrAssigneeNotFound
	}
	if !assignee.Role.IsStaff() {
		return nil, ErrAssigneeNotStaff
	}

	ticket.AssignedTo = &req.AssigneeID
	ticket.Status = entity.TicketStatusInProgress
	if err := u.ticketRepo.Save(tx, ticket); err != nil {
		u.log.Warnf("Failed to assign ticket %s: %+v", id, err)
		return nil, err
	}

	if err := u.audit.Log(tx, &staffID, entity.AuditActionTicketAssign, entity.JSON{
		"ticket_id": ticket.ID.String(),
		"assignee":  req.AssigneeID.String(),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.reload(ctx, id)
}

// Respond appends a message to the thread. Customers may only respond
// to their own tickets; any response reopens a ticket into IN_PROGRESS
// unless it is already resolved.
func (u *ticketUsecase) Respond(ctx context.Context, responderID uuid.UUID, isStaff bool, id uuid.UUID, req *dto.TicketResponseRequest) (*dto.TicketResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	ticket, err := u.ticketRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find ticket %s: %+v", id, err)
		return nil, err
	}
	if ticket == nil {
		return nil, ErrTicketNotFound
	}
	if !isStaff && ticket.CustomerID != responderID {
		return nil, ErrTicketNotOwned
	}
	if ticket.IsResolved() {
		return nil, ErrTicketResolved
	}

	response := &entity.TicketResponse{
		TicketID:    ticket.ID,
		ResponderID: responderID,
		Message:     req.Message,
	}
	if err := u.ticketRepo.AddResponse(tx, response); err != nil {
		u.log.Warnf("Failed to add response to ticket %s: %+v", id, err)
		return nil, err
	}

	if ticket.Status == entity.TicketStatusOpen && isStaff {
		ticket.Status = entity.TicketStatusInProgress
		if err := u.ticketRepo.Save(tx, ticket); err != nil {
			u.log.Warnf("Failed to update ticket %s: %+v", id, err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.reload(ctx, id)
}

func (u *ticketUsecase) Resolve(ctx context.Context, staffID uuid.UUID, id uuid.UUID) (*dto.TicketResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	ticket, err := u.ticketRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find ticket %s: %+v", id, err)
		return nil, err
	}
	if ticket == nil {
		return nil, ErrTicketNotFound
	}
	if ticket.IsResolved() {
		return nil, ErrTicketResolved
	}

	ticket.Status = entity.TicketStatusResolved
	if err := u.ticketRepo.Save(tx, ticket); err != nil {
		u.log.Warnf("Failed to resolve ticket %s: %+v", id, err)
		return nil, err
	}

	if err := u.audit.Log(tx, &staffID, entity.AuditActionTicketResolve, entity.JSON{
		"ticket_id": ticket.ID.String(),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.reload(ctx, id)
}

func (u *ticketUsecase) find(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	ticket, err := u.ticketRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find ticket %s: %+v", id, err)
		return nil, err
	}
	if ticket == nil {
		return nil, ErrTicketNotFound
	}
	return ticket, nil
}

func (u *ticketUsecase) reload(ctx context.Context, id uuid.UUID) (*dto.TicketResponse, error) {
	ticket, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.TicketToResponse(ticket), nil
}

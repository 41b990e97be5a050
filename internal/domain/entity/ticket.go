package entity

import (
	"time"

	"github.com/google/uuid"
)

// TicketType classifies a customer-support request
type TicketType string

const (
	TicketTypeInquiry   TicketType = "INQUIRY"
	TicketTypeComplaint TicketType = "COMPLAINT"
	TicketTypeSupport   TicketType = "SUPPORT"
)

// TicketStatus represents the handling state of a ticket
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "OPEN"
	TicketStatusInProgress TicketStatus = "IN_PROGRESS"
	TicketStatusResolved   TicketStatus = "RESOLVED"
)

// Ticket is a customer-support request (inquiry, complaint, or
// post-stay support) handled by CRM staff
type Ticket struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CustomerID  uuid.UUID    `gorm:"type:uuid;not null;index" json:"customer_id"`
	Type        TicketType   `gorm:"type:varchar(20);not null" json:"type"`
	Title       string       `gorm:"type:varchar(255);not null" json:"title"`
	Description string       `gorm:"type:text;not null" json:"description"`
	Status      TicketStatus `gorm:"type:varchar(20);not null;default:'OPEN';index" json:"status"`
	AssignedTo  *uuid.UUID   `gorm:"type:uuid;index" json:"assigned_to,omitempty"`
	CreatedAt   time.Time    `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Customer  User             `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Assignee  *User            `gorm:"foreignKey:AssignedTo" json:"assignee,omitempty"`
	Responses []TicketResponse `gorm:"foreignKey:TicketID" json:"responses,omitempty"`
}

func (Ticket) TableName() string {
	return "tickets"
}

// IsResolved checks if the ticket is closed
func (t *Ticket) IsResolved() bool {
	return t.Status == TicketStatusResolved
}

// TicketResponse is a single message on a ticket thread
type TicketResponse struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TicketID    uuid.UUID `gorm:"type:uuid;not null;index" json:"ticket_id"`
	ResponderID uuid.UUID `gorm:"type:uuid;not null" json:"responder_id"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Responder User `gorm:"foreignKey:ResponderID" json:"responder,omitempty"`
}

func (TicketResponse) TableName() string {
	return "ticket_responses"
}

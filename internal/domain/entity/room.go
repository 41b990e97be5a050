package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RoomStatus represents the physical state of a room
type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "AVAILABLE"
	RoomStatusOccupied    RoomStatus = "OCCUPIED"
	RoomStatusCleaning    RoomStatus = "CLEANING"
	RoomStatusMaintenance RoomStatus = "MAINTENANCE"
)

// RoomType is the top-level room category (e.g. Standard, Deluxe, Suite)
type RoomType struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Classes []RoomClass `gorm:"foreignKey:RoomTypeID" json:"classes,omitempty"`
}

func (RoomType) TableName() string {
	return "room_types"
}

// RoomClass is a priced tier within a RoomType (e.g. Deluxe Garden View)
type RoomClass struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	RoomTypeID  uint            `gorm:"not null;index" json:"room_type_id"`
	Name        string          `gorm:"type:varchar(100);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	BasePrice   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"base_price"`
	Area        string          `gorm:"type:varchar(50)" json:"area,omitempty"`
	Capacity    int             `gorm:"not null;default:2" json:"capacity"`
	Amenities   string          `gorm:"type:text" json:"amenities,omitempty"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	RoomType RoomType `gorm:"foreignKey:RoomTypeID" json:"room_type,omitempty"`
	Rooms    []Room   `gorm:"foreignKey:RoomClassID" json:"rooms,omitempty"`
}

func (RoomClass) TableName() string {
	return "room_classes"
}

// AmenityList splits the comma-separated amenities column
func (c *RoomClass) AmenityList() []string {
	if c.Amenities == "" {
		return nil
	}
	parts := strings.Split(c.Amenities, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}

// Room is a physical unit with a concrete room number (e.g. D201)
type Room struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	RoomClassID uint       `gorm:"not null;index" json:"room_class_id"`
	RoomNumber  string     `gorm:"type:varchar(10);uniqueIndex;not null" json:"room_number"`
	Status      RoomStatus `gorm:"type:varchar(20);not null;default:'AVAILABLE';index" json:"status"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	RoomClass RoomClass `gorm:"foreignKey:RoomClassID" json:"room_class,omitempty"`
}

func (Room) TableName() string {
	return "rooms"
}

// IsAvailable checks if the room can take a new assignment
func (r *Room) IsAvailable() bool {
	return r.Status == RoomStatusAvailable
}

package models

import (
	"gorm.io/gorm"
)

// Booking is a user's request for TotalTickets tickets to one event.
// QRGenerated starts false and flips to true only after a successful issuance;
// the authoritative signal for "already issued" is the existence of ticket
// rows, not this flag.
type Booking struct {
	gorm.Model
	UserID       uint     `gorm:"not null;index" json:"user_id"`
	User         User     `json:"user"`
	EventID      uint     `gorm:"not null;index" json:"event_id"`
	Event        Event    `json:"event"`
	TotalTickets int      `gorm:"not null" json:"total_tickets"`
	QRGenerated  bool     `gorm:"not null;default:false" json:"qr_generated"`
	Tickets      []Ticket `gorm:"constraint:OnDelete:CASCADE" json:"tickets,omitempty"`

	// TicketsUsed is computed from ticket state on every read, never stored.
	TicketsUsed int `gorm:"-" json:"tickets_used"`
}

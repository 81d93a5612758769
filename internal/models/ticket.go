package models

import (
	"time"

	"gorm.io/gorm"
)

// Ticket is one admission unit within a booking. QRCode is globally unique and
// immutable after creation; it is the sole lookup key at scan time. CheckedIn
// transitions false to true exactly once.
type Ticket struct {
	gorm.Model
	BookingID    uint       `gorm:"not null;uniqueIndex:idx_tickets_booking_number" json:"booking_id"`
	Booking      Booking    `json:"-"`
	EventID      uint       `gorm:"not null;index" json:"event_id"`
	Event        Event      `json:"event"`
	TicketNumber int        `gorm:"not null;uniqueIndex:idx_tickets_booking_number" json:"ticket_number"`
	QRCode       string     `gorm:"uniqueIndex;not null" json:"qr_code"`
	CheckedIn    bool       `gorm:"not null;default:false" json:"checked_in"`
	CheckedInAt  *time.Time `json:"checked_in_at,omitempty"`
}

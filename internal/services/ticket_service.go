package services

import (
	"context"
	"time"

	"github.com/ardelia/gigpass/internal/clock"
	"github.com/ardelia/gigpass/internal/helpers"
	"github.com/ardelia/gigpass/internal/models"
	"github.com/ardelia/gigpass/internal/store"
)

type ScanStatus string

const (
	ScanSuccess     ScanStatus = "success"
	ScanAlreadyUsed ScanStatus = "already_used"
)

// ScanResult is what the checker's scanner app renders after a scan. An
// already-used ticket is an expected terminal outcome, not an error: the UI
// must show it distinctly from a transport failure, so it travels as data.
type ScanResult struct {
	Status       ScanStatus `json:"status"`
	Message      string     `json:"message"`
	TicketNumber int        `json:"ticket_number"`
	EventName    string     `json:"event_name"`
	AttendeeName string     `json:"attendee_name,omitempty"`
	BookingID    uint       `json:"booking_id,omitempty"`
	ScannedCount int64      `json:"scanned_tickets"`
	TotalTickets int64      `json:"total_tickets"`
	UsedAt       *time.Time `json:"used_at,omitempty"`
}

type StatusResult struct {
	AnyScanned   bool   `json:"any_ticket_scanned"`
	ScannedCount int64  `json:"scanned_tickets"`
	TotalTickets int64  `json:"total_tickets"`
	EventName    string `json:"event_name"`
}

type TicketService struct {
	store store.Store
	clock clock.Clock
}

func NewTicketService(st store.Store, clk clock.Clock) *TicketService {
	return &TicketService{store: st, clock: clk}
}

// ValidateTicket consumes one scan of a QR code.
//
// The lookup, the checked-in branch, and the write all run inside one
// transaction with the ticket row locked, so two concurrent scans of the same
// code serialize: exactly one observes checked_in=false and wins, the other
// gets the already-used result carrying the winner's timestamp. Replaying a
// used code always returns the original timestamp.
func (s *TicketService) ValidateTicket(ctx context.Context, qrCode string) (*ScanResult, error) {
	// Reject garbage scans before touching the database. A payload that does
	// not decode can never match a stored ticket.
	if _, err := helpers.DecodeQRPayload(qrCode); err != nil {
		return nil, models.ErrTicketNotFound
	}

	var result ScanResult
	err := s.store.WithTx(ctx, func(tx store.Store) error {
		ticket, err := tx.GetTicketByQRCodeForUpdate(ctx, qrCode)
		if err != nil {
			return err
		}

		if ticket.CheckedIn {
			result = ScanResult{
				Status:       ScanAlreadyUsed,
				Message:      "Ticket already used",
				TicketNumber: ticket.TicketNumber,
				EventName:    ticket.Event.Name,
				UsedAt:       ticket.CheckedInAt,
			}
			return nil
		}

		now := s.clock.Now()
		if err := tx.MarkTicketCheckedIn(ctx, ticket.ID, now); err != nil {
			return err
		}

		scanned, err := tx.CountCheckedIn(ctx, ticket.BookingID)
		if err != nil {
			return err
		}
		total, err := tx.CountTickets(ctx, ticket.BookingID)
		if err != nil {
			return err
		}

		result = ScanResult{
			Status:       ScanSuccess,
			Message:      "Valid ticket! Enjoy the event!",
			TicketNumber: ticket.TicketNumber,
			EventName:    ticket.Event.Name,
			AttendeeName: ticket.Booking.User.Name,
			BookingID:    ticket.BookingID,
			ScannedCount: scanned,
			TotalTickets: total,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// TicketStatus reports scan progress for a booking. It is a pure aggregation
// over persisted ticket state, recomputed on every call so polling clients see
// consistent numbers across server instances. A booking with no tickets yet is
// a benign all-zero response, not an error.
func (s *TicketService) TicketStatus(ctx context.Context, bookingID uint) (*StatusResult, error) {
	tickets, err := s.store.ListTicketsByBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if len(tickets) == 0 {
		return &StatusResult{}, nil
	}

	var scanned int64
	for _, t := range tickets {
		if t.CheckedIn {
			scanned++
		}
	}
	return &StatusResult{
		AnyScanned:   scanned > 0,
		ScannedCount: scanned,
		TotalTickets: int64(len(tickets)),
		EventName:    tickets[0].Event.Name,
	}, nil
}

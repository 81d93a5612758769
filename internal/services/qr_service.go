package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/ardelia/gigpass/internal/helpers"
	"github.com/ardelia/gigpass/internal/models"
	"github.com/ardelia/gigpass/internal/store"
)

type QRService struct {
	store store.Store
}

func NewQRService(st store.Store) *QRService {
	return &QRService{store: st}
}

// GenerateTickets materializes a booking's tickets exactly once and returns
// their QR code strings in ticket-number order.
//
// The whole operation runs in one transaction with the booking row locked, so
// concurrent calls for the same booking serialize: the first caller creates
// all N tickets and flips qr_generated, every later caller sees the existing
// tickets and fails with ErrTicketsAlreadyIssued. The existence check reads
// ticket rows rather than trusting the qr_generated flag, since the two can
// desynchronize.
func (s *QRService) GenerateTickets(ctx context.Context, bookingID uint) ([]string, error) {
	var qrCodes []string

	err := s.store.WithTx(ctx, func(tx store.Store) error {
		booking, err := tx.GetBookingForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}

		exists, err := tx.TicketsExist(ctx, bookingID)
		if err != nil {
			return err
		}
		if exists {
			return models.ErrTicketsAlreadyIssued
		}

		for i := 1; i <= booking.TotalTickets; i++ {
			payload := helpers.QRPayload{
				BookingID:    booking.ID,
				EventID:      booking.EventID,
				TicketNumber: i,
				Owner:        booking.User.Name,
				TicketID:     uuid.NewString(),
			}
			code, err := payload.Encode()
			if err != nil {
				return err
			}

			ticket := &models.Ticket{
				BookingID:    booking.ID,
				EventID:      booking.EventID,
				TicketNumber: i,
				QRCode:       code,
			}
			if err := tx.CreateTicket(ctx, ticket); err != nil {
				return err
			}
			qrCodes = append(qrCodes, code)
		}

		return tx.SetBookingQRGenerated(ctx, booking.ID, true)
	})
	if err != nil {
		return nil, err
	}
	return qrCodes, nil
}

// TicketQRImage renders one ticket's QR code as a PNG, size pixels square.
func (s *QRService) TicketQRImage(ctx context.Context, bookingID uint, ticketNumber, size int) ([]byte, error) {
	ticket, err := s.store.GetTicketByNumber(ctx, bookingID, ticketNumber)
	if err != nil {
		return nil, err
	}
	return helpers.RenderQRPNG(ticket.QRCode, size)
}

package services

import (
	"context"

	"github.com/ardelia/gigpass/internal/models"
	"github.com/ardelia/gigpass/internal/store"
)

type BookingService struct {
	store store.Store
}

func NewBookingService(st store.Store) *BookingService {
	return &BookingService{store: st}
}

// CreateBooking records a request for ticketCount tickets to an event. There
// is no capacity check against the event. Tickets are not created here; they
// materialize later through QRService.GenerateTickets.
func (s *BookingService) CreateBooking(ctx context.Context, userID, eventID uint, ticketCount int) (*models.Booking, error) {
	if ticketCount <= 0 {
		return nil, models.ErrInvalidTicketCount
	}

	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	event, err := s.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		UserID:       user.ID,
		EventID:      event.ID,
		TotalTickets: ticketCount,
		QRGenerated:  false,
	}
	if err := s.store.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}

	booking.User = *user
	booking.Event = *event
	return booking, nil
}

// ListBookingsForUser returns the user's bookings with the checked-in count
// computed from current ticket state.
func (s *BookingService) ListBookingsForUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	bookings, err := s.store.ListBookingsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		used, err := s.store.CountCheckedIn(ctx, bookings[i].ID)
		if err != nil {
			return nil, err
		}
		bookings[i].TicketsUsed = int(used)
	}
	return bookings, nil
}

// DeleteBooking removes a booking and all of its tickets. Ownership is
// verified here as well as at the API boundary: only the booking's owner may
// delete it.
func (s *BookingService) DeleteBooking(ctx context.Context, bookingID, requestingUserID uint) error {
	booking, err := s.store.GetBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.UserID != requestingUserID {
		return models.ErrForbidden
	}
	return s.store.DeleteBooking(ctx, bookingID)
}

// TicketsForBooking returns the booking's tickets in ticket-number order,
// including their QR code strings. Empty before issuance.
func (s *BookingService) TicketsForBooking(ctx context.Context, bookingID uint) ([]models.Ticket, error) {
	return s.store.ListTicketsByBooking(ctx, bookingID)
}

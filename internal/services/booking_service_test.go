package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardelia/gigpass/internal/clock"
	"github.com/ardelia/gigpass/internal/models"
)

func TestBookingService_CreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a booking with no tickets and qr_generated false", func(t *testing.T) {
		st := newFakeStore()
		user := st.seedUser("Alice", "alice@example.com", models.RoleUser)
		event := st.seedEvent("Summer Fest")
		svc := NewBookingService(st)

		booking, err := svc.CreateBooking(ctx, user.ID, event.ID, 3)
		require.NoError(t, err)
		assert.Equal(t, user.ID, booking.UserID)
		assert.Equal(t, event.ID, booking.EventID)
		assert.Equal(t, 3, booking.TotalTickets)
		assert.False(t, booking.QRGenerated)

		tickets, err := svc.TicketsForBooking(ctx, booking.ID)
		require.NoError(t, err)
		assert.Empty(t, tickets)
	})

	t.Run("unknown user", func(t *testing.T) {
		st := newFakeStore()
		event := st.seedEvent("Summer Fest")
		svc := NewBookingService(st)

		_, err := svc.CreateBooking(ctx, 999, event.ID, 1)
		assert.ErrorIs(t, err, models.ErrUserNotFound)
	})

	t.Run("unknown event", func(t *testing.T) {
		st := newFakeStore()
		user := st.seedUser("Alice", "alice@example.com", models.RoleUser)
		svc := NewBookingService(st)

		_, err := svc.CreateBooking(ctx, user.ID, 999, 1)
		assert.ErrorIs(t, err, models.ErrEventNotFound)
	})

	t.Run("non-positive ticket count", func(t *testing.T) {
		st := newFakeStore()
		user := st.seedUser("Alice", "alice@example.com", models.RoleUser)
		event := st.seedEvent("Summer Fest")
		svc := NewBookingService(st)

		for _, count := range []int{0, -1} {
			_, err := svc.CreateBooking(ctx, user.ID, event.ID, count)
			assert.ErrorIs(t, err, models.ErrInvalidTicketCount)
		}
	})
}

func TestBookingService_ListBookingsForUser(t *testing.T) {
	ctx := context.Background()
	st := newFakeStore()
	user := st.seedUser("Alice", "alice@example.com", models.RoleUser)
	other := st.seedUser("Bob", "bob@example.com", models.RoleUser)
	event := st.seedEvent("Summer Fest")

	bookingSvc := NewBookingService(st)
	qrSvc := NewQRService(st)
	ticketSvc := NewTicketService(st, clock.Fixed(time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC)))

	booking, err := bookingSvc.CreateBooking(ctx, user.ID, event.ID, 2)
	require.NoError(t, err)
	_, err = bookingSvc.CreateBooking(ctx, other.ID, event.ID, 5)
	require.NoError(t, err)

	codes, err := qrSvc.GenerateTickets(ctx, booking.ID)
	require.NoError(t, err)
	_, err = ticketSvc.ValidateTicket(ctx, codes[0])
	require.NoError(t, err)

	bookings, err := bookingSvc.ListBookingsForUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, booking.ID, bookings[0].ID)
	assert.Equal(t, 1, bookings[0].TicketsUsed)
	assert.Equal(t, 2, bookings[0].TotalTickets)
}

func TestBookingService_DeleteBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("owner delete cascades to tickets", func(t *testing.T) {
		st := newFakeStore()
		user := st.seedUser("Alice", "alice@example.com", models.RoleUser)
		event := st.seedEvent("Summer Fest")
		bookingSvc := NewBookingService(st)
		qrSvc := NewQRService(st)

		booking, err := bookingSvc.CreateBooking(ctx, user.ID, event.ID, 2)
		require.NoError(t, err)
		_, err = qrSvc.GenerateTickets(ctx, booking.ID)
		require.NoError(t, err)

		require.NoError(t, bookingSvc.DeleteBooking(ctx, booking.ID, user.ID))

		bookings, err := bookingSvc.ListBookingsForUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Empty(t, bookings)

		tickets, err := bookingSvc.TicketsForBooking(ctx, booking.ID)
		require.NoError(t, err)
		assert.Empty(t, tickets)
	})

	t.Run("non-owner delete is forbidden and leaves everything intact", func(t *testing.T) {
		st := newFakeStore()
		user := st.seedUser("Alice", "alice@example.com", models.RoleUser)
		intruder := st.seedUser("Mallory", "mallory@example.com", models.RoleUser)
		event := st.seedEvent("Summer Fest")
		bookingSvc := NewBookingService(st)
		qrSvc := NewQRService(st)

		booking, err := bookingSvc.CreateBooking(ctx, user.ID, event.ID, 2)
		require.NoError(t, err)
		_, err = qrSvc.GenerateTickets(ctx, booking.ID)
		require.NoError(t, err)

		err = bookingSvc.DeleteBooking(ctx, booking.ID, intruder.ID)
		assert.ErrorIs(t, err, models.ErrForbidden)

		bookings, err := bookingSvc.ListBookingsForUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Len(t, bookings, 1)

		tickets, err := bookingSvc.TicketsForBooking(ctx, booking.ID)
		require.NoError(t, err)
		assert.Len(t, tickets, 2)
	})

	t.Run("unknown booking", func(t *testing.T) {
		st := newFakeStore()
		user := st.seedUser("Alice", "alice@example.com", models.RoleUser)
		svc := NewBookingService(st)

		err := svc.DeleteBooking(ctx, 999, user.ID)
		assert.ErrorIs(t, err, models.ErrBookingNotFound)
	})
}

package store

import (
	"context"
	"time"

	"github.com/ardelia/gigpass/internal/models"
)

// Store is the persistence boundary for the ticketing core. The system runs as
// stateless server instances against one shared database, so all row ownership
// is enforced here rather than with in-process locks: inside WithTx the
// ForUpdate reads must block concurrent writers of the same row until the
// transaction commits or rolls back.
type Store interface {
	// WithTx runs fn inside a single transaction. The Store passed to fn is
	// bound to that transaction. Lock timeouts and serialization failures are
	// surfaced as models.ErrConflict.
	WithTx(ctx context.Context, fn func(tx Store) error) error

	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	ListUsersByRole(ctx context.Context, role string) ([]models.User, error)

	CreateEvent(ctx context.Context, event *models.Event) error
	GetEvent(ctx context.Context, id uint) (*models.Event, error)
	ListEvents(ctx context.Context, offset, limit int) ([]models.Event, int64, error)
	SaveEvent(ctx context.Context, event *models.Event) error
	DeleteEvent(ctx context.Context, id uint) error
	EventHasBookings(ctx context.Context, eventID uint) (bool, error)

	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	// GetBookingForUpdate locks the booking row for the rest of the
	// surrounding transaction. Issuance relies on this to serialize.
	GetBookingForUpdate(ctx context.Context, id uint) (*models.Booking, error)
	ListBookingsByUser(ctx context.Context, userID uint) ([]models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
	SetBookingQRGenerated(ctx context.Context, bookingID uint, generated bool) error
	// DeleteBooking removes the booking and all of its tickets.
	DeleteBooking(ctx context.Context, id uint) error

	CreateTicket(ctx context.Context, ticket *models.Ticket) error
	TicketsExist(ctx context.Context, bookingID uint) (bool, error)
	// GetTicketByQRCodeForUpdate locks the matched ticket row for the rest of
	// the surrounding transaction. Scan validation relies on this to make the
	// read-check-write span exactly-once.
	GetTicketByQRCodeForUpdate(ctx context.Context, qrCode string) (*models.Ticket, error)
	GetTicketByNumber(ctx context.Context, bookingID uint, ticketNumber int) (*models.Ticket, error)
	// MarkTicketCheckedIn flips checked_in to true only if it is still false
	// and returns models.ErrConflict otherwise.
	MarkTicketCheckedIn(ctx context.Context, ticketID uint, at time.Time) error
	ListTicketsByBooking(ctx context.Context, bookingID uint) ([]models.Ticket, error)
	CountCheckedIn(ctx context.Context, bookingID uint) (int64, error)
	CountTickets(ctx context.Context, bookingID uint) (int64, error)
}

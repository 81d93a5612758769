package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ardelia/gigpass/internal/models"
	"github.com/ardelia/gigpass/internal/store"
)

// fakeData is an in-memory store.Store with no locking of its own. It backs
// fakeStore, whose WithTx serializes transactions the way Postgres serializes
// row-locked ones: one writer at a time.
type fakeData struct {
	users    map[uint]models.User
	events   map[uint]models.Event
	bookings map[uint]models.Booking
	tickets  map[uint]models.Ticket

	nextUserID    uint
	nextEventID   uint
	nextBookingID uint
	nextTicketID  uint
}

type fakeStore struct {
	mu sync.Mutex
	*fakeData
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		fakeData: &fakeData{
			users:    make(map[uint]models.User),
			events:   make(map[uint]models.Event),
			bookings: make(map[uint]models.Booking),
			tickets:  make(map[uint]models.Ticket),
		},
	}
}

func (f *fakeStore) WithTx(ctx context.Context, fn func(tx store.Store) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(f.fakeData)
}

func (d *fakeData) WithTx(ctx context.Context, fn func(tx store.Store) error) error {
	return fn(d)
}

func (d *fakeData) CreateUser(ctx context.Context, user *models.User) error {
	d.nextUserID++
	user.ID = d.nextUserID
	d.users[user.ID] = *user
	return nil
}

func (d *fakeData) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, ok := d.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	return &user, nil
}

func (d *fakeData) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range d.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, models.ErrUserNotFound
}

func (d *fakeData) ListUsers(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0, len(d.users))
	for _, u := range d.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (d *fakeData) ListUsersByRole(ctx context.Context, role string) ([]models.User, error) {
	var users []models.User
	for _, u := range d.users {
		if u.Role == role {
			users = append(users, u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (d *fakeData) CreateEvent(ctx context.Context, event *models.Event) error {
	d.nextEventID++
	event.ID = d.nextEventID
	d.events[event.ID] = *event
	return nil
}

func (d *fakeData) GetEvent(ctx context.Context, id uint) (*models.Event, error) {
	event, ok := d.events[id]
	if !ok {
		return nil, models.ErrEventNotFound
	}
	return &event, nil
}

func (d *fakeData) ListEvents(ctx context.Context, offset, limit int) ([]models.Event, int64, error) {
	events := make([]models.Event, 0, len(d.events))
	for _, e := range d.events {
		events = append(events, e)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
	total := int64(len(events))
	if offset >= len(events) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(events) {
		end = len(events)
	}
	return events[offset:end], total, nil
}

func (d *fakeData) SaveEvent(ctx context.Context, event *models.Event) error {
	if _, ok := d.events[event.ID]; !ok {
		return models.ErrEventNotFound
	}
	d.events[event.ID] = *event
	return nil
}

func (d *fakeData) DeleteEvent(ctx context.Context, id uint) error {
	if _, ok := d.events[id]; !ok {
		return models.ErrEventNotFound
	}
	delete(d.events, id)
	return nil
}

func (d *fakeData) EventHasBookings(ctx context.Context, eventID uint) (bool, error) {
	for _, b := range d.bookings {
		if b.EventID == eventID {
			return true, nil
		}
	}
	return false, nil
}

func (d *fakeData) CreateBooking(ctx context.Context, booking *models.Booking) error {
	d.nextBookingID++
	booking.ID = d.nextBookingID
	stored := *booking
	stored.User = models.User{}
	stored.Event = models.Event{}
	d.bookings[booking.ID] = stored
	return nil
}

func (d *fakeData) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	booking, ok := d.bookings[id]
	if !ok {
		return nil, models.ErrBookingNotFound
	}
	booking.User = d.users[booking.UserID]
	booking.Event = d.events[booking.EventID]
	return &booking, nil
}

func (d *fakeData) GetBookingForUpdate(ctx context.Context, id uint) (*models.Booking, error) {
	return d.GetBooking(ctx, id)
}

func (d *fakeData) ListBookingsByUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	for _, b := range d.bookings {
		if b.UserID == userID {
			b.Event = d.events[b.EventID]
			bookings = append(bookings, b)
		}
	}
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].ID < bookings[j].ID })
	return bookings, nil
}

func (d *fakeData) ListBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	for _, b := range d.bookings {
		b.User = d.users[b.UserID]
		b.Event = d.events[b.EventID]
		bookings = append(bookings, b)
	}
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].ID < bookings[j].ID })
	return bookings, nil
}

func (d *fakeData) SetBookingQRGenerated(ctx context.Context, bookingID uint, generated bool) error {
	booking, ok := d.bookings[bookingID]
	if !ok {
		return models.ErrBookingNotFound
	}
	booking.QRGenerated = generated
	d.bookings[bookingID] = booking
	return nil
}

func (d *fakeData) DeleteBooking(ctx context.Context, id uint) error {
	if _, ok := d.bookings[id]; !ok {
		return models.ErrBookingNotFound
	}
	delete(d.bookings, id)
	for ticketID, t := range d.tickets {
		if t.BookingID == id {
			delete(d.tickets, ticketID)
		}
	}
	return nil
}

func (d *fakeData) CreateTicket(ctx context.Context, ticket *models.Ticket) error {
	d.nextTicketID++
	ticket.ID = d.nextTicketID
	d.tickets[ticket.ID] = *ticket
	return nil
}

func (d *fakeData) TicketsExist(ctx context.Context, bookingID uint) (bool, error) {
	for _, t := range d.tickets {
		if t.BookingID == bookingID {
			return true, nil
		}
	}
	return false, nil
}

func (d *fakeData) GetTicketByQRCodeForUpdate(ctx context.Context, qrCode string) (*models.Ticket, error) {
	for _, t := range d.tickets {
		if t.QRCode == qrCode {
			t.Event = d.events[t.EventID]
			booking := d.bookings[t.BookingID]
			booking.User = d.users[booking.UserID]
			t.Booking = booking
			return &t, nil
		}
	}
	return nil, models.ErrTicketNotFound
}

func (d *fakeData) GetTicketByNumber(ctx context.Context, bookingID uint, ticketNumber int) (*models.Ticket, error) {
	for _, t := range d.tickets {
		if t.BookingID == bookingID && t.TicketNumber == ticketNumber {
			ticket := t
			return &ticket, nil
		}
	}
	return nil, models.ErrTicketNotFound
}

func (d *fakeData) MarkTicketCheckedIn(ctx context.Context, ticketID uint, at time.Time) error {
	ticket, ok := d.tickets[ticketID]
	if !ok || ticket.CheckedIn {
		return models.ErrConflict
	}
	ticket.CheckedIn = true
	checkedInAt := at
	ticket.CheckedInAt = &checkedInAt
	d.tickets[ticketID] = ticket
	return nil
}

func (d *fakeData) ListTicketsByBooking(ctx context.Context, bookingID uint) ([]models.Ticket, error) {
	var tickets []models.Ticket
	for _, t := range d.tickets {
		if t.BookingID == bookingID {
			t.Event = d.events[t.EventID]
			tickets = append(tickets, t)
		}
	}
	sort.Slice(tickets, func(i, j int) bool { return tickets[i].TicketNumber < tickets[j].TicketNumber })
	return tickets, nil
}

func (d *fakeData) CountCheckedIn(ctx context.Context, bookingID uint) (int64, error) {
	var count int64
	for _, t := range d.tickets {
		if t.BookingID == bookingID && t.CheckedIn {
			count++
		}
	}
	return count, nil
}

func (d *fakeData) CountTickets(ctx context.Context, bookingID uint) (int64, error) {
	var count int64
	for _, t := range d.tickets {
		if t.BookingID == bookingID {
			count++
		}
	}
	return count, nil
}

var (
	_ store.Store = (*fakeStore)(nil)
	_ store.Store = (*fakeData)(nil)
)

// Seeding helpers shared by the service tests.

func (f *fakeStore) seedUser(name, email, role string) models.User {
	user := models.User{Name: name, Email: email, Password: "x", Role: role}
	_ = f.fakeData.CreateUser(context.Background(), &user)
	return user
}

func (f *fakeStore) seedEvent(name string) models.Event {
	event := models.Event{Name: name, Artist: "Artist", Location: "Arena"}
	_ = f.fakeData.CreateEvent(context.Background(), &event)
	return event
}

func (f *fakeStore) seedBooking(user models.User, event models.Event, total int) models.Booking {
	booking := models.Booking{UserID: user.ID, EventID: event.ID, TotalTickets: total}
	_ = f.fakeData.CreateBooking(context.Background(), &booking)
	return booking
}

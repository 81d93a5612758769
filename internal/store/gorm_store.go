package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ardelia/gigpass/internal/models"
)

// GormStore implements Store on top of gorm/Postgres. Row serialization uses
// SELECT ... FOR UPDATE inside gorm transactions.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) WithTx(ctx context.Context, fn func(tx Store) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
	if isSerializationFailure(err) {
		return models.ErrConflict
	}
	return err
}

// Postgres codes 40001 (serialization_failure), 40P01 (deadlock_detected) and
// 55P03 (lock_not_available) mean the transaction lost a race; the caller may
// retry.
func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case "40001", "40P01", "55P03":
		return true
	}
	return false
}

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *GormStore) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("created_at").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *GormStore) ListUsersByRole(ctx context.Context, role string) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Where("role = ?", role).Order("created_at").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *GormStore) CreateEvent(ctx context.Context, event *models.Event) error {
	return s.db.WithContext(ctx).Create(event).Error
}

func (s *GormStore) GetEvent(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	if err := s.db.WithContext(ctx).First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (s *GormStore) ListEvents(ctx context.Context, offset, limit int) ([]models.Event, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Event{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []models.Event
	err := s.db.WithContext(ctx).
		Order("date DESC").
		Offset(offset).
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

func (s *GormStore) SaveEvent(ctx context.Context, event *models.Event) error {
	return s.db.WithContext(ctx).Save(event).Error
}

func (s *GormStore) DeleteEvent(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Event{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrEventNotFound
	}
	return nil
}

func (s *GormStore) EventHasBookings(ctx context.Context, eventID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Booking{}).Where("event_id = ?", eventID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *GormStore) CreateBooking(ctx context.Context, booking *models.Booking) error {
	return s.db.WithContext(ctx).Create(booking).Error
}

func (s *GormStore) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.WithContext(ctx).Preload("User").Preload("Event").First(&booking, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (s *GormStore) GetBookingForUpdate(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&booking, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrBookingNotFound
		}
		return nil, err
	}
	// Associations are loaded after the lock is taken; the lock itself only
	// needs to cover the bookings row.
	if err := s.db.WithContext(ctx).First(&booking.User, booking.UserID).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).First(&booking.Event, booking.EventID).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *GormStore) ListBookingsByUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.WithContext(ctx).
		Preload("Event").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *GormStore) ListBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Event").
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *GormStore) SetBookingQRGenerated(ctx context.Context, bookingID uint, generated bool) error {
	result := s.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update("qr_generated", generated)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrBookingNotFound
	}
	return nil
}

func (s *GormStore) DeleteBooking(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("booking_id = ?", id).Delete(&models.Ticket{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Booking{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return models.ErrBookingNotFound
		}
		return nil
	})
}

func (s *GormStore) CreateTicket(ctx context.Context, ticket *models.Ticket) error {
	return s.db.WithContext(ctx).Create(ticket).Error
}

func (s *GormStore) TicketsExist(ctx context.Context, bookingID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Ticket{}).Where("booking_id = ?", bookingID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *GormStore) GetTicketByQRCodeForUpdate(ctx context.Context, qrCode string) (*models.Ticket, error) {
	var ticket models.Ticket
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("qr_code = ?", qrCode).
		First(&ticket).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrTicketNotFound
		}
		return nil, err
	}
	if err := s.db.WithContext(ctx).First(&ticket.Event, ticket.EventID).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Preload("User").First(&ticket.Booking, ticket.BookingID).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (s *GormStore) GetTicketByNumber(ctx context.Context, bookingID uint, ticketNumber int) (*models.Ticket, error) {
	var ticket models.Ticket
	err := s.db.WithContext(ctx).
		Where("booking_id = ? AND ticket_number = ?", bookingID, ticketNumber).
		First(&ticket).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrTicketNotFound
		}
		return nil, err
	}
	return &ticket, nil
}

func (s *GormStore) MarkTicketCheckedIn(ctx context.Context, ticketID uint, at time.Time) error {
	// Conditional update: rows-affected tells us whether this caller won the
	// transition even if the row lock were ever bypassed.
	result := s.db.WithContext(ctx).
		Model(&models.Ticket{}).
		Where("id = ? AND checked_in = ?", ticketID, false).
		Updates(map[string]any{"checked_in": true, "checked_in_at": at})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrConflict
	}
	return nil
}

func (s *GormStore) ListTicketsByBooking(ctx context.Context, bookingID uint) ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := s.db.WithContext(ctx).
		Preload("Event").
		Where("booking_id = ?", bookingID).
		Order("ticket_number").
		Find(&tickets).Error
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

func (s *GormStore) CountCheckedIn(ctx context.Context, bookingID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Ticket{}).
		Where("booking_id = ? AND checked_in = ?", bookingID, true).
		Count(&count).Error
	return count, err
}

func (s *GormStore) CountTickets(ctx context.Context, bookingID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Ticket{}).
		Where("booking_id = ?", bookingID).
		Count(&count).Error
	return count, err
}

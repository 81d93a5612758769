package services

import (
	"context"

	"github.com/ardelia/gigpass/internal/models"
	"github.com/ardelia/gigpass/internal/store"
)

type AdminService struct {
	store store.Store
}

func NewAdminService(st store.Store) *AdminService {
	return &AdminService{store: st}
}

// AllBookings returns every booking with its checked-in count computed.
func (s *AdminService) AllBookings(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.store.ListBookings(ctx)
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

func (s *AdminService) AllUsers(ctx context.Context) ([]models.User, error) {
	return s.store.ListUsers(ctx)
}

func (s *AdminService) UsersByRole(ctx context.Context, role string) ([]models.User, error) {
	if !models.ValidRole(role) {
		return nil, models.ErrInvalidRole
	}
	return s.store.ListUsersByRole(ctx, role)
}

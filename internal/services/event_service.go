package services

import (
	"context"

	"github.com/ardelia/gigpass/internal/models"
	"github.com/ardelia/gigpass/internal/store"
)

const eventsPerPage = 8

type EventService struct {
	store store.Store
}

func NewEventService(st store.Store) *EventService {
	return &EventService{store: st}
}

type EventInput struct {
	Name     string
	Artist   string
	Location string
	Date     string
	Time     string
	ImageURL string
}

func (s *EventService) CreateEvent(ctx context.Context, in EventInput) (*models.Event, error) {
	event := &models.Event{
		Name:     in.Name,
		Artist:   in.Artist,
		Location: in.Location,
		Date:     in.Date,
		Time:     in.Time,
		ImageURL: in.ImageURL,
	}
	if err := s.store.CreateEvent(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) GetEvent(ctx context.Context, id uint) (*models.Event, error) {
	return s.store.GetEvent(ctx, id)
}

// ListEvents returns one page of events, newest date first. Pages are 1-based.
func (s *EventService) ListEvents(ctx context.Context, page int) ([]models.Event, int64, error) {
	if page < 1 {
		page = 1
	}
	return s.store.ListEvents(ctx, (page-1)*eventsPerPage, eventsPerPage)
}

func (s *EventService) UpdateEvent(ctx context.Context, id uint, in EventInput) (*models.Event, error) {
	event, err := s.store.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	event.Name = in.Name
	event.Artist = in.Artist
	event.Location = in.Location
	event.Date = in.Date
	event.Time = in.Time
	if in.ImageURL != "" {
		event.ImageURL = in.ImageURL
	}

	if err := s.store.SaveEvent(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// DeleteEvent removes an event, refusing while any booking still references
// it.
func (s *EventService) DeleteEvent(ctx context.Context, id uint) error {
	if _, err := s.store.GetEvent(ctx, id); err != nil {
		return err
	}
	hasBookings, err := s.store.EventHasBookings(ctx, id)
	if err != nil {
		return err
	}
	if hasBookings {
		return models.ErrEventHasBookings
	}
	return s.store.DeleteEvent(ctx, id)
}

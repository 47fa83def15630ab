package service

import (
	"time"

	"alumni-network/backend/internal/models"
	"alumni-network/backend/internal/repository"
	"alumni-network/backend/pkg/errors"
)

// EventService manages calendar events
type EventService struct {
	repo repository.EventRepository
}

func NewEventService(repo repository.EventRepository) *EventService {
	return &EventService{repo: repo}
}

// CreateEvent validates date and time formats and stores a new event
func (s *EventService) CreateEvent(req *models.CreateEventRequest) (*models.Event, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, errors.NewValidationError("date must be YYYY-MM-DD")
	}
	if _, err := time.Parse("15:04", req.StartTime); err != nil {
		return nil, errors.NewValidationError("start_time must be HH:MM")
	}
	if _, err := time.Parse("15:04", req.EndTime); err != nil {
		return nil, errors.NewValidationError("end_time must be HH:MM")
	}

	event := &models.Event{
		CreatedBy:   req.CreatedBy,
		Title:       req.Title,
		Mode:        req.Mode,
		Location:    req.Location,
		EventDate:   date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Capacity:    req.Capacity,
		Description: req.Description,
	}

	if err := s.repo.Create(event); err != nil {
		return nil, errors.FromStore(err, "failed to create event")
	}
	return event, nil
}

// GetEvent returns a single event by id
func (s *EventService) GetEvent(id uint) (*models.Event, error) {
	event, err := s.repo.GetByID(id)
	if err != nil {
		return nil, errors.FromStore(err, "event not found")
	}
	return event, nil
}

// ListEvents returns all events ordered by date
func (s *EventService) ListEvents() ([]models.Event, error) {
	events, err := s.repo.ListByDate()
	if err != nil {
		return nil, errors.FromStore(err, "failed to list events")
	}
	return events, nil
}

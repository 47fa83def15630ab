package service

import (
	"sort"
	"testing"

	"alumni-network/backend/internal/models"
	apperrors "alumni-network/backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeEventRepo struct {
	events map[uint]models.Event
	nextID uint
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[uint]models.Event), nextID: 1}
}

func (r *fakeEventRepo) Create(event *models.Event) error {
	event.ID = r.nextID
	r.nextID++
	r.events[event.ID] = *event
	return nil
}

func (r *fakeEventRepo) GetByID(id uint) (*models.Event, error) {
	if e, ok := r.events[id]; ok {
		return &e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeEventRepo) ListByDate() ([]models.Event, error) {
	var events []models.Event
	for _, e := range r.events {
		events = append(events, e)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].EventDate.Before(events[j].EventDate) })
	return events, nil
}

func (r *fakeEventRepo) Count() (int64, error) {
	return int64(len(r.events)), nil
}

func eventRequest() *models.CreateEventRequest {
	return &models.CreateEventRequest{
		Title:     "Alumni Meetup",
		Mode:      "offline",
		Location:  "Main Hall",
		Date:      "2026-09-15",
		StartTime: "18:00",
		EndTime:   "20:00",
		Capacity:  120,
	}
}

func TestCreateEventParsesDate(t *testing.T) {
	svc := NewEventService(newFakeEventRepo())

	event, err := svc.CreateEvent(eventRequest())
	require.NoError(t, err)

	assert.NotZero(t, event.ID)
	assert.Equal(t, "2026-09-15", event.EventDate.Format("2006-01-02"))
	assert.Equal(t, "18:00", event.StartTime)
}

func TestCreateEventRejectsBadDate(t *testing.T) {
	svc := NewEventService(newFakeEventRepo())

	req := eventRequest()
	req.Date = "15/09/2026"
	_, err := svc.CreateEvent(req)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
}

func TestCreateEventRejectsBadTime(t *testing.T) {
	svc := NewEventService(newFakeEventRepo())

	req := eventRequest()
	req.StartTime = "6pm"
	_, err := svc.CreateEvent(req)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
}

func TestGetEventNotFound(t *testing.T) {
	svc := NewEventService(newFakeEventRepo())

	_, err := svc.GetEvent(42)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestListEventsOrderedByDate(t *testing.T) {
	svc := NewEventService(newFakeEventRepo())

	later := eventRequest()
	later.Title = "Later"
	later.Date = "2026-10-01"
	_, err := svc.CreateEvent(later)
	require.NoError(t, err)

	earlier := eventRequest()
	earlier.Title = "Earlier"
	_, err = svc.CreateEvent(earlier)
	require.NoError(t, err)

	events, err := svc.ListEvents()
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Earlier", events[0].Title)
	assert.Equal(t, "Later", events[1].Title)
}

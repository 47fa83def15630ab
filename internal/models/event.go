package models

import (
	"time"
)

// Event is a calendar entry created by a user
type Event struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CreatedBy   *uint     `json:"created_by" gorm:"index"`
	Title       string    `json:"title" gorm:"size:200;not null"`
	Mode        string    `json:"mode" gorm:"size:20;not null"`
	Location    string    `json:"location" gorm:"size:300;not null"`
	EventDate   time.Time `json:"event_date" gorm:"type:date;not null"`
	StartTime   string    `json:"start_time" gorm:"size:5;not null"`
	EndTime     string    `json:"end_time" gorm:"size:5;not null"`
	Capacity    int       `json:"capacity" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"created_at"`

	Creator *User `json:"-" gorm:"foreignKey:CreatedBy"`
}

// CreateEventRequest is the request structure for creating an event
type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Mode        string `json:"mode" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	Capacity    int    `json:"capacity" binding:"required"`
	Description string `json:"description"`
	CreatedBy   *uint  `json:"created_by"`
}

// EventResponse is the full event view returned by the events listing
type EventResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Mode        string `json:"mode"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Capacity    int    `json:"capacity"`
	Description string `json:"description"`
}

// CalendarPin is the minimal event view used for calendar markers
type CalendarPin struct {
	ID     uint   `json:"id"`
	Title  string `json:"title"`
	Start  string `json:"start"`
	AllDay bool   `json:"allDay"`
}

// ToResponse converts an Event model to an EventResponse
func (e *Event) ToResponse() EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Mode:        e.Mode,
		Location:    e.Location,
		Date:        e.EventDate.Format("2006-01-02"),
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Capacity:    e.Capacity,
		Description: e.Description,
	}
}

// ToCalendarPin converts an Event model to a CalendarPin
func (e *Event) ToCalendarPin() CalendarPin {
	return CalendarPin{
		ID:     e.ID,
		Title:  e.Title,
		Start:  e.EventDate.Format("2006-01-02"),
		AllDay: true,
	}
}

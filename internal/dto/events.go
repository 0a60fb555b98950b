package dto

import (
	"time"

	"planora/internal/model"
)

// EventListItem is the denormalized row shape for tables: the owning
// customer and the event type appear as display strings, not keys.
type EventListItem struct {
	ID                 int64             `json:"id"`
	RegistrationNumber string            `json:"registrationNumber"`
	Name               string            `json:"name"`
	Location           string            `json:"location,omitempty"`
	Status             model.EventStatus `json:"status"`
	StartTime          time.Time         `json:"startTime"`
	EndTime            time.Time         `json:"endTime"`
	CustomerName       string            `json:"customerName"`
	EventType          string            `json:"eventType"`
	MediaID            string            `json:"mediaId,omitempty"`
}

// EventDetails is the detail shape: foreign keys instead of display
// strings. EventType (the label) is kept alongside EventTypeID so
// clients written against the pre-migration contract can still resolve
// the type by label.
type EventDetails struct {
	ID                 int64             `json:"id"`
	RegistrationNumber string            `json:"registrationNumber"`
	Name               string            `json:"name"`
	Location           string            `json:"location,omitempty"`
	Description        string            `json:"description,omitempty"`
	MediaID            string            `json:"mediaId,omitempty"`
	Status             model.EventStatus `json:"status"`
	StartTime          time.Time         `json:"startTime"`
	EndTime            time.Time         `json:"endTime"`
	CustomerID         int64             `json:"customerId"`
	OrganizerIDs       []int64           `json:"organizerIds"`
	EventTypeID        int64             `json:"eventTypeId"`
	EventType          string            `json:"eventType,omitempty"`
	CreatedAt          time.Time         `json:"createdAt"`
	UpdatedAt          time.Time         `json:"updatedAt"`
}

type CreateEventRequest struct {
	Name         string    `json:"name" validate:"required,min=3,max=255"`
	Location     string    `json:"location"`
	Description  string    `json:"description"`
	MediaID      string    `json:"mediaId"`
	StartTime    time.Time `json:"startTime" validate:"required"`
	EndTime      time.Time `json:"endTime" validate:"required"`
	CustomerID   int64     `json:"customerId" validate:"required"`
	EventTypeID  int64     `json:"eventTypeId" validate:"required"`
	OrganizerIDs []int64   `json:"organizerIds"`
}

// UpdateEventRequest carries only the fields the caller wants to change;
// absent fields are left untouched server-side. This is what allows the
// form layer to omit the image when no new upload happened.
type UpdateEventRequest struct {
	Name         *string    `json:"name,omitempty"`
	Location     *string    `json:"location,omitempty"`
	Description  *string    `json:"description,omitempty"`
	MediaID      *string    `json:"mediaId,omitempty"`
	StartTime    *time.Time `json:"startTime,omitempty"`
	EndTime      *time.Time `json:"endTime,omitempty"`
	CustomerID   *int64     `json:"customerId,omitempty"`
	EventTypeID  *int64     `json:"eventTypeId,omitempty"`
	OrganizerIDs []int64    `json:"organizerIds,omitempty"`
}

// EventPhaseMessage is published to the delayed exchange when an event
// is created or its period changes; the phase worker consumes it at
// start/end time and advances the status.
type EventPhaseMessage struct {
	EventID int64     `json:"event_id"`
	Phase   string    `json:"phase"` // "start" or "end"
	FireAt  time.Time `json:"fire_at"`
}

package model

import "time"

// EventStatus values mirror the wire representation exactly.
type EventStatus string

const (
	StatusNotStarted EventStatus = "NotStarted"
	StatusInProgress EventStatus = "InProgress"
	StatusFinished   EventStatus = "Finished"
	StatusSuspended  EventStatus = "Suspended"
)

// CanSuspend reports whether an event in this status may be suspended.
// Finished is terminal and Suspended cannot be suspended twice.
func (s EventStatus) CanSuspend() bool {
	return s != StatusSuspended && s != StatusFinished
}

// CanUnsuspend reports whether an event in this status may be reactivated.
func (s EventStatus) CanUnsuspend() bool {
	return s == StatusSuspended
}

// StatusForTime derives the lifecycle status of a non-suspended event
// from the clock. Used when reactivating a suspended event: the event
// rejoins the phase it would be in had it never been suspended.
func StatusForTime(now, start, end time.Time) EventStatus {
	switch {
	case now.Before(start):
		return StatusNotStarted
	case now.Before(end):
		return StatusInProgress
	default:
		return StatusFinished
	}
}

type Event struct {
	ID                 int64       `db:"id" json:"id"`
	RegistrationNumber string      `db:"registration_number" json:"registrationNumber"`
	Name               string      `db:"name" json:"name"`
	Location           string      `db:"location" json:"location,omitempty"`
	Description        string      `db:"description" json:"description,omitempty"`
	MediaID            string      `db:"media_id" json:"mediaId,omitempty"`
	Status             EventStatus `db:"status" json:"status"`
	StartTime          time.Time   `db:"start_time" json:"startTime"`
	EndTime            time.Time   `db:"end_time" json:"endTime"`
	CustomerID         int64       `db:"customer_id" json:"customerId"`
	EventTypeID        int64       `db:"event_type_id" json:"eventTypeId"`
	OrganizerIDs       []int64     `json:"organizerIds"`
	CreatedAt          time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt          time.Time   `db:"updated_at" json:"updatedAt"`
}

type CustomerType string

const (
	CustomerPhysical CustomerType = "Physical"
	CustomerLegal    CustomerType = "Legal"
)

// Customer is a tagged union over Type. Physical customers use
// FirstName/LastName; Legal customers use Name plus the company
// identification number and a contact person. The unused variant's
// columns stay empty.
type Customer struct {
	ID   int64        `db:"id" json:"id"`
	Type CustomerType `db:"type" json:"type"`

	FirstName string `db:"first_name" json:"firstName,omitempty"`
	LastName  string `db:"last_name" json:"lastName,omitempty"`

	Name                        string `db:"name" json:"name,omitempty"`
	CompanyIdentificationNumber string `db:"company_identification_number" json:"companyIdentificationNumber,omitempty"`
	ContactFirstName            string `db:"contact_first_name" json:"contactFirstName,omitempty"`
	ContactLastName             string `db:"contact_last_name" json:"contactLastName,omitempty"`
	ContactEmail                string `db:"contact_email" json:"contactEmail,omitempty"`

	Address     string    `db:"address" json:"address,omitempty"`
	Email       string    `db:"email" json:"email"`
	PhoneNumber string    `db:"phone_number" json:"phoneNumber,omitempty"`
	MediaID     string    `db:"media_id" json:"mediaId,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// DisplayName returns the name shown in tables and denormalized into
// event list rows.
func (c *Customer) DisplayName() string {
	if c.Type == CustomerLegal {
		return c.Name
	}
	return c.FirstName + " " + c.LastName
}

const (
	OrganizerActive    = "active"
	OrganizerSuspended = "suspended"
)

type Organizer struct {
	ID        int64     `db:"id" json:"id"`
	FirstName string    `db:"first_name" json:"firstName"`
	LastName  string    `db:"last_name" json:"lastName"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone,omitempty"`
	Status    string    `db:"status" json:"status"`
	Address   string    `db:"address" json:"address,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

type EventType struct {
	ID    int64  `db:"id" json:"id"`
	Label string `db:"label" json:"label"`
}

// Media rows only record what the object store holds; entities reference
// a media item by its opaque ID, never embed it.
type Media struct {
	ID          string    `db:"id" json:"mediaId"`
	Folder      string    `db:"folder" json:"folder"`
	FileName    string    `db:"file_name" json:"fileName"`
	ContentType string    `db:"content_type" json:"contentType,omitempty"`
	Size        int64     `db:"size" json:"size"`
	EventID     int64     `db:"event_id" json:"eventId,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

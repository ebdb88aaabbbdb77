package domain

import (
	"context"
	"time"
)

// Event represents a conference event owned by an organization.
// swagger:model Event
type Event struct {
	ID          string     `json:"id"`
	OrgID       string     `json:"org_id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	StartsOn    *time.Time `json:"starts_on"`
	EndsOn      *time.Time `json:"ends_on"`
	Location    string     `json:"location"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewEvent returns a new Event. ID is set by the repository on create.
func NewEvent(orgID, name, slug, description string, createdAt, updatedAt time.Time) *Event {
	return &Event{
		OrgID:       orgID,
		Name:        name,
		Slug:        slug,
		Description: description,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// EventDay is one day of an event's program. Sessions hang off a day,
// so the timeline view and conflict checks are always day-scoped.
// swagger:model EventDay
type EventDay struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Date      time.Time `json:"date"`
	Label     string    `json:"label"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewEventDay returns a new EventDay. ID is set by the repository on create.
func NewEventDay(eventID string, date time.Time, label string, sortOrder int, createdAt, updatedAt time.Time) *EventDay {
	return &EventDay{
		EventID:   eventID,
		Date:      date,
		Label:     label,
		SortOrder: sortOrder,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// EventUpdate carries optional event fields for partial updates; nil means unchanged.
type EventUpdate struct {
	Name        *string
	Description *string
	StartsOn    *time.Time
	EndsOn      *time.Time
	Location    *string
}

// EventRepository defines the interface for event and event day storage.
// Every query is scoped by the owning organization ID.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, orgID, id string) (*Event, error)
	ListByOrgID(ctx context.Context, orgID string) ([]*Event, error)
	Update(ctx context.Context, orgID, id string, upd EventUpdate) (*Event, error)
	Delete(ctx context.Context, orgID, id string) error

	CreateDay(ctx context.Context, day *EventDay) error
	GetDayByID(ctx context.Context, eventID, dayID string) (*EventDay, error)
	ListDaysByEventID(ctx context.Context, eventID string) ([]*EventDay, error)
	DeleteDay(ctx context.Context, eventID, dayID string) error
}

// EventService defines business operations on events and their days.
type EventService interface {
	CreateEvent(ctx context.Context, orgID, callerID string, event *Event) error
	GetEvent(ctx context.Context, orgID, eventID, callerID string) (*Event, []*EventDay, []*Venue, error)
	ListEvents(ctx context.Context, orgID, callerID string) ([]*Event, error)
	UpdateEvent(ctx context.Context, orgID, eventID, callerID string, upd EventUpdate) (*Event, error)
	DeleteEvent(ctx context.Context, orgID, eventID, callerID string) error

	AddEventDay(ctx context.Context, orgID, eventID, callerID string, date time.Time, label string, sortOrder int) (*EventDay, error)
	ListEventDays(ctx context.Context, orgID, eventID, callerID string) ([]*EventDay, error)
	DeleteEventDay(ctx context.Context, orgID, eventID, dayID, callerID string) error
}

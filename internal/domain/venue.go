package domain

import (
	"context"
	"time"
)

// Venue is a physical room or track that sessions are scheduled into.
// swagger:model Venue
type Venue struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	Floor     string    `json:"floor"`
	Notes     string    `json:"notes"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewVenue returns a new Venue. ID is set by the repository on create.
func NewVenue(eventID, name string, capacity int, floor, notes string, sortOrder int, createdAt, updatedAt time.Time) *Venue {
	return &Venue{
		EventID:   eventID,
		Name:      name,
		Capacity:  capacity,
		Floor:     floor,
		Notes:     notes,
		SortOrder: sortOrder,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// VenueCapacityView is a read-only projection of how loaded a venue is
// on one event day. Utilization is the share of the working-day window
// covered by scheduled sessions, in whole percent, capped at 100.
// swagger:model VenueCapacityView
type VenueCapacityView struct {
	VenueID        string `json:"venue_id"`
	Name           string `json:"name"`
	Capacity       int    `json:"capacity"`
	SessionCount   int    `json:"session_count"`
	UtilizationPct int    `json:"utilization_pct"`
}

// VenueUpdate carries optional venue fields for partial updates; nil means unchanged.
type VenueUpdate struct {
	Name      *string
	Capacity  *int
	Floor     *string
	Notes     *string
	SortOrder *int
}

// VenueService defines business operations on venues. The per-day
// capacity projection is part of the conflict report on ProgramService.
type VenueService interface {
	CreateVenue(ctx context.Context, orgID, eventID, callerID string, v *Venue) error
	GetVenue(ctx context.Context, orgID, eventID, venueID, callerID string) (*Venue, error)
	ListVenues(ctx context.Context, orgID, eventID, callerID string) ([]*Venue, error)
	UpdateVenue(ctx context.Context, orgID, eventID, venueID, callerID string, upd VenueUpdate) (*Venue, error)
	DeleteVenue(ctx context.Context, orgID, eventID, venueID, callerID string) error
}

// VenueRepository defines the interface for venue storage.
type VenueRepository interface {
	Create(ctx context.Context, venue *Venue) error
	GetByID(ctx context.Context, eventID, id string) (*Venue, error)
	ListByEventID(ctx context.Context, eventID string) ([]*Venue, error)
	Update(ctx context.Context, eventID, id string, upd VenueUpdate) (*Venue, error)
	Delete(ctx context.Context, eventID, id string) error
}

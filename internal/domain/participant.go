package domain

import (
	"context"
	"time"
)

// Participant represents a registered event participant.
// swagger:model Participant
type Participant struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Company   string    `json:"company"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewParticipant returns a new Participant. ID is set by the repository on create.
func NewParticipant(eventID, email, firstName, lastName, company, notes string, createdAt, updatedAt time.Time) *Participant {
	return &Participant{
		EventID:   eventID,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Company:   company,
		Notes:     notes,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// ParticipantInvitation records an invitation email sent for an event.
// swagger:model ParticipantInvitation
type ParticipantInvitation struct {
	ID      string    `json:"id"`
	EventID string    `json:"event_id"`
	Email   string    `json:"email"`
	SentAt  time.Time `json:"sent_at"`
}

// ParticipantUpdate carries optional participant fields; nil means unchanged.
type ParticipantUpdate struct {
	Email     *string
	FirstName *string
	LastName  *string
	Company   *string
	Notes     *string
}

// ParticipantRepository defines storage for participants and invitations.
type ParticipantRepository interface {
	Create(ctx context.Context, p *Participant) error
	GetByID(ctx context.Context, eventID, id string) (*Participant, error)
	// List returns a page of participants, optionally filtered by a
	// case-insensitive email/name substring, plus the total count.
	List(ctx context.Context, eventID, search string, p PaginationParams) ([]*Participant, int, error)
	Update(ctx context.Context, eventID, id string, upd ParticipantUpdate) (*Participant, error)
	Delete(ctx context.Context, eventID, id string) error

	CreateInvitation(ctx context.Context, inv *ParticipantInvitation) error
	ListInvitations(ctx context.Context, eventID string) ([]*ParticipantInvitation, error)
}

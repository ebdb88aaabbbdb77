package domain

import (
	"context"
	"time"
)

// Speaker represents a speaker in an event's program.
// swagger:model Speaker
type Speaker struct {
	ID             string    `json:"id"`
	EventID        string    `json:"event_id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	FullName       string    `json:"full_name"`
	Bio            string    `json:"bio"`
	TagLine        string    `json:"tag_line"`
	Company        string    `json:"company"`
	ProfilePicture string    `json:"profile_picture"`
	IsKeynote      bool      `json:"is_keynote"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewSpeaker returns a new Speaker. ID is set by the repository on create.
func NewSpeaker(eventID, firstName, lastName, bio, tagLine, company, profilePicture string, isKeynote bool, createdAt, updatedAt time.Time) *Speaker {
	return &Speaker{
		EventID:        eventID,
		FirstName:      firstName,
		LastName:       lastName,
		FullName:       firstName + " " + lastName,
		Bio:            bio,
		TagLine:        tagLine,
		Company:        company,
		ProfilePicture: profilePicture,
		IsKeynote:      isKeynote,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}

// SpeakerUpdate carries optional speaker fields; nil means unchanged.
type SpeakerUpdate struct {
	FirstName      *string
	LastName       *string
	Bio            *string
	TagLine        *string
	Company        *string
	ProfilePicture *string
	IsKeynote      *bool
}

// SpeakerRepository defines storage for speakers.
type SpeakerRepository interface {
	Create(ctx context.Context, sp *Speaker) error
	GetByID(ctx context.Context, eventID, id string) (*Speaker, error)
	// List returns a page of speakers for the event, optionally
	// filtered by a case-insensitive name substring, plus the total count.
	List(ctx context.Context, eventID, search string, p PaginationParams) ([]*Speaker, int, error)
	Update(ctx context.Context, eventID, id string, upd SpeakerUpdate) (*Speaker, error)
	Delete(ctx context.Context, eventID, id string) error
}

package domain

import (
	"context"
	"time"
)

// ProgramSession is a block on the event timeline: a talk track, a
// workshop, a break. It belongs to one event day and is scheduled into
// a venue once VenueID, Start, and End are all set; until then it sits
// in the unscheduled pool. Overlapping saves are detected, not
// prevented: the owner may force a conflicting schedule.
// swagger:model ProgramSession
type ProgramSession struct {
	ID          string     `json:"id"`
	EventDayID  string     `json:"event_day_id"`
	VenueID     *string    `json:"venue_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Start       *TimeOfDay `json:"start_time"`
	End         *TimeOfDay `json:"end_time"`
	SortOrder   int        `json:"sort_order"`
	// Version backs optimistic concurrency on schedule writes. Every
	// committed move increments it; a move carrying a stale version
	// fails with ErrVersionMismatch instead of silently losing the
	// other editor's update.
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewProgramSession returns a new ProgramSession. ID is set by the repository on create.
func NewProgramSession(eventDayID, title, description string, sortOrder int, createdAt, updatedAt time.Time) *ProgramSession {
	return &ProgramSession{
		EventDayID:  eventDayID,
		Title:       title,
		Description: description,
		SortOrder:   sortOrder,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// Scheduled reports whether the session has a venue and both times set.
func (s *ProgramSession) Scheduled() bool {
	return s.VenueID != nil && s.Start != nil && s.End != nil
}

// Presentation is a single talk inside a program session. Its times are
// time-of-day values scoped to the parent session's day; overlap checks
// run against sibling presentations of the same session.
// swagger:model Presentation
type Presentation struct {
	ID         string     `json:"id"`
	SessionID  string     `json:"session_id"`
	Title      string     `json:"title"`
	Abstract   string     `json:"abstract"`
	SpeakerIDs []string   `json:"speaker_ids"`
	Start      *TimeOfDay `json:"start_time"`
	End        *TimeOfDay `json:"end_time"`
	SortOrder  int        `json:"sort_order"`
	Version    int        `json:"version"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// NewPresentation returns a new Presentation. ID is set by the repository on create.
func NewPresentation(sessionID, title, abstract string, speakerIDs []string, sortOrder int, createdAt, updatedAt time.Time) *Presentation {
	return &Presentation{
		SessionID:  sessionID,
		Title:      title,
		Abstract:   abstract,
		SpeakerIDs: speakerIDs,
		SortOrder:  sortOrder,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}

// SessionContentUpdate carries optional content fields; nil means unchanged.
type SessionContentUpdate struct {
	Title       *string
	Description *string
	SortOrder   *int
}

// SessionRepository defines storage for program sessions.
type SessionRepository interface {
	Create(ctx context.Context, sess *ProgramSession) error
	GetByID(ctx context.Context, id string) (*ProgramSession, error)
	// ListByDayID returns all sessions of a day ordered by start time
	// (NULLs last), then sort order.
	ListByDayID(ctx context.Context, dayID string) ([]*ProgramSession, error)
	ListByEventID(ctx context.Context, eventID string) ([]*ProgramSession, error)
	UpdateContent(ctx context.Context, id string, upd SessionContentUpdate) (*ProgramSession, error)
	// UpdateSchedule commits a move with a compare-and-swap on the
	// version column. Returns ErrVersionMismatch when expectedVersion
	// no longer matches the stored row.
	UpdateSchedule(ctx context.Context, id string, venueID *string, start, end NullTimeOfDay, expectedVersion int) (*ProgramSession, error)
	// ApplySchedule commits a batch of placements in one transaction,
	// with the same per-row version CAS as UpdateSchedule. Any stale
	// version or missing session rolls the whole batch back.
	ApplySchedule(ctx context.Context, assignments []ScheduleAssignment) error
	Delete(ctx context.Context, id string) error
}

// PresentationRepository defines storage for presentations.
type PresentationRepository interface {
	Create(ctx context.Context, p *Presentation) error
	GetByID(ctx context.Context, id string) (*Presentation, error)
	// ListBySessionID returns presentations ordered by start time (NULLs last), then sort order.
	ListBySessionID(ctx context.Context, sessionID string) ([]*Presentation, error)
	UpdateContent(ctx context.Context, id string, title, abstract *string, speakerIDs []string) (*Presentation, error)
	UpdateSchedule(ctx context.Context, id string, start, end NullTimeOfDay, expectedVersion int) (*Presentation, error)
	Delete(ctx context.Context, id string) error
}

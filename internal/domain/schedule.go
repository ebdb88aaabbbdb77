package domain

import "context"

// Conflict types reported by the schedule checker.
const (
	ConflictSessionOverlap      = "session_overlap"
	ConflictPresentationOverlap = "presentation_overlap"
	ConflictTime                = "time_conflict"
)

// Conflict is a derived record describing one overlapping pair of
// schedule items within a resource (a venue for sessions, a session
// for presentations). Conflicts are computed on demand and never
// persisted.
// swagger:model Conflict
type Conflict struct {
	Type           string `json:"type"`
	ResourceID     string `json:"resource_id"`
	ResourceName   string `json:"resource_name"`
	FirstID        string `json:"first_id"`
	FirstTitle     string `json:"first_title"`
	SecondID       string `json:"second_id"`
	SecondTitle    string `json:"second_title"`
	OverlapMinutes int    `json:"overlap_minutes"`
	Message        string `json:"message"`
}

// TimeSlot is a candidate start/end pair from the auto-scheduler's
// fixed grid. Not persisted.
// swagger:model TimeSlot
type TimeSlot struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

// Auto-arrange strategies accepted by the API. All of them currently
// run the same first-fit heuristic; the distinct names are kept as an
// extension point for smarter placement.
const (
	StrategyMinimizeGaps  = "minimize_gaps"
	StrategyBalanceVenues = "balance_venues"
	StrategyOptimizeFlow  = "optimize_flow"
)

// ValidStrategy reports whether s names a known auto-arrange strategy.
func ValidStrategy(s string) bool {
	switch s {
	case StrategyMinimizeGaps, StrategyBalanceVenues, StrategyOptimizeFlow:
		return true
	}
	return false
}

// ReasonNoSlotAvailable marks an item the auto-scheduler could not place.
const ReasonNoSlotAvailable = "no_slot_available"

// ProposedAssignment is one placement the auto-scheduler suggests.
// swagger:model ProposedAssignment
type ProposedAssignment struct {
	SessionID    string   `json:"session_id"`
	SessionTitle string   `json:"session_title"`
	VenueID      string   `json:"venue_id"`
	VenueName    string   `json:"venue_name"`
	Slot         TimeSlot `json:"slot"`
}

// UnplacedItem is a session the auto-scheduler gave up on, with the reason.
// swagger:model UnplacedItem
type UnplacedItem struct {
	SessionID    string `json:"session_id"`
	SessionTitle string `json:"session_title"`
	Reason       string `json:"reason"`
}

// AutoArrangeRequest configures one auto-arrange run over an event day.
type AutoArrangeRequest struct {
	Strategy    string
	SlotMinutes int
	WindowStart TimeOfDay
	WindowEnd   TimeOfDay
	Preview     bool
}

// AutoArrangeResult is the outcome of one auto-arrange run. When
// Preview is true nothing was committed; the caller re-posts with
// preview off to apply the proposed assignments.
// swagger:model AutoArrangeResult
type AutoArrangeResult struct {
	ScheduledCount int                  `json:"scheduled_count"`
	Assignments    []ProposedAssignment `json:"assignments"`
	Unplaced       []UnplacedItem       `json:"unplaced"`
	Preview        bool                 `json:"preview"`
}

// ConflictReport is the full conflict picture for one event day:
// session overlaps per venue, presentation overlaps per session, and
// the venue load projection.
// swagger:model ConflictReport
type ConflictReport struct {
	HasConflicts bool                 `json:"has_conflicts"`
	Conflicts    []Conflict           `json:"conflicts"`
	Venues       []*VenueCapacityView `json:"venues"`
}

// ScheduleAssignment is one placement in an auto-arrange commit batch.
type ScheduleAssignment struct {
	SessionID       string
	VenueID         *string
	Start           NullTimeOfDay
	End             NullTimeOfDay
	ExpectedVersion int
}

// ScheduleMove is a requested session or presentation move. Nil fields
// keep their current value. Version must match the stored row; Force
// commits even when the move introduces conflicts.
type ScheduleMove struct {
	VenueID *string
	Start   *TimeOfDay
	End     *TimeOfDay
	Version int
	Force   bool
}

// ProgramService defines the schedule-facing business operations:
// session and presentation lifecycle, conflict detection, and
// auto-arrangement. Every call carries the organization ID explicitly.
type ProgramService interface {
	CreateSession(ctx context.Context, orgID, eventID, dayID, callerID string, sess *ProgramSession) error
	GetSession(ctx context.Context, orgID, eventID, sessionID, callerID string) (*ProgramSession, []*Presentation, error)
	ListDaySessions(ctx context.Context, orgID, eventID, dayID, callerID string) ([]*ProgramSession, error)
	UpdateSessionContent(ctx context.Context, orgID, eventID, sessionID, callerID string, upd SessionContentUpdate) (*ProgramSession, error)
	DeleteSession(ctx context.Context, orgID, eventID, sessionID, callerID string) error
	// MoveSession applies a drag-and-drop move. When the move would
	// introduce conflicts and mv.Force is false, it returns the
	// conflict list with a nil session and nil error: conflicts are a
	// domain signal, not a failure.
	MoveSession(ctx context.Context, orgID, eventID, sessionID, callerID string, mv ScheduleMove) (*ProgramSession, []Conflict, error)

	CreatePresentation(ctx context.Context, orgID, eventID, sessionID, callerID string, p *Presentation) error
	UpdatePresentationContent(ctx context.Context, orgID, eventID, presentationID, callerID string, title, abstract *string, speakerIDs []string) (*Presentation, error)
	DeletePresentation(ctx context.Context, orgID, eventID, presentationID, callerID string) error
	MovePresentation(ctx context.Context, orgID, eventID, presentationID, callerID string, mv ScheduleMove) (*Presentation, []Conflict, error)

	DayConflicts(ctx context.Context, orgID, eventID, dayID, callerID string) (*ConflictReport, error)
	AutoArrange(ctx context.Context, orgID, eventID, dayID, callerID string, req AutoArrangeRequest) (*AutoArrangeResult, error)
}

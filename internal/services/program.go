package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"confprogram/internal/domain"
	"confprogram/internal/scheduling"
)

type programService struct {
	orgRepo          domain.OrganizationRepository
	eventRepo        domain.EventRepository
	venueRepo        domain.VenueRepository
	sessionRepo      domain.SessionRepository
	presentationRepo domain.PresentationRepository
	// legacyDetector switches conflict detection to the adjacent-pair
	// scan for parity with historical output. The sweep is the default.
	legacyDetector bool
	contextTimeout time.Duration
}

// NewProgramService creates a ProgramService. legacyDetector selects
// the adjacent-pair overlap scan instead of the full sweep.
func NewProgramService(
	orgRepo domain.OrganizationRepository,
	eventRepo domain.EventRepository,
	venueRepo domain.VenueRepository,
	sessionRepo domain.SessionRepository,
	presentationRepo domain.PresentationRepository,
	legacyDetector bool,
	timeout time.Duration,
) domain.ProgramService {
	return &programService{
		orgRepo:          orgRepo,
		eventRepo:        eventRepo,
		venueRepo:        venueRepo,
		sessionRepo:      sessionRepo,
		presentationRepo: presentationRepo,
		legacyDetector:   legacyDetector,
		contextTimeout:   timeout,
	}
}

func (s *programService) findOverlaps(items []scheduling.Item) []scheduling.Pair {
	if s.legacyDetector {
		return scheduling.FindAdjacentOverlaps(items)
	}
	return scheduling.FindOverlaps(items)
}

// requireSession resolves a session and verifies, through its day, that
// it belongs to the given event.
func (s *programService) requireSession(ctx context.Context, eventID, sessionID string) (*domain.ProgramSession, error) {
	sess, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	if _, err := s.eventRepo.GetDayByID(ctx, eventID, sess.EventDayID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event day: %w", err)
	}
	return sess, nil
}

func (s *programService) CreateSession(ctx context.Context, orgID, eventID, dayID, callerID string, sess *domain.ProgramSession) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID); err != nil {
		return err
	}
	if _, err := s.eventRepo.GetDayByID(ctx, eventID, dayID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event day: %w", err)
	}

	sess.EventDayID = dayID
	sess.Title = strings.TrimSpace(sess.Title)
	if sess.Title == "" {
		return fmt.Errorf("%w: session title is required", domain.ErrInvalidInput)
	}
	now := time.Now()
	sess.CreatedAt = now
	sess.UpdatedAt = now

	if err := s.sessionRepo.Create(ctx, sess); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (s *programService) GetSession(ctx context.Context, orgID, eventID, sessionID, callerID string) (*domain.ProgramSession, []*domain.Presentation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID); err != nil {
		return nil, nil, err
	}
	sess, err := s.requireSession(ctx, eventID, sessionID)
	if err != nil {
		return nil, nil, err
	}
	presentations, err := s.presentationRepo.ListBySessionID(ctx, sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("list presentations: %w", err)
	}
	if presentations == nil {
		presentations = []*domain.Presentation{}
	}
	return sess, presentations, nil
}

func (s *programService) ListDaySessions(ctx context.Context, orgID, eventID, dayID, callerID string) ([]*domain.ProgramSession, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID); err != nil {
		return nil, err
	}
	if _, err := s.eventRepo.GetDayByID(ctx, eventID, dayID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event day: %w", err)
	}
	sessions, err := s.sessionRepo.ListByDayID(ctx, dayID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	if sessions == nil {
		sessions = []*domain.ProgramSession{}
	}
	return sessions, nil
}

func (s *programService) UpdateSessionContent(ctx context.Context, orgID, eventID, sessionID, callerID string, upd domain.SessionContentUpdate) (*domain.ProgramSession, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID); err != nil {
		return nil, err
	}
	if _, err := s.requireSession(ctx, eventID, sessionID); err != nil {
		return nil, err
	}
	if upd.Title != nil && strings.TrimSpace(*upd.Title) == "" {
		return nil, fmt.Errorf("%w: session title is required", domain.ErrInvalidInput)
	}
	updated, err := s.sessionRepo.UpdateContent(ctx, sessionID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update session: %w", err)
	}
	return updated, nil
}

func (s *programService) DeleteSession(ctx context.Context, orgID, eventID, sessionID, callerID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID); err != nil {
		return err
	}
	if _, err := s.requireSession(ctx, eventID, sessionID); err != nil {
		return err
	}
	if err := s.sessionRepo.Delete(ctx, sessionID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *programService) MoveSession(ctx context.Context, orgID, eventID, sessionID, callerID string, mv domain.ScheduleMove) (*domain.ProgramSession, []domain.Conflict, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID); err != nil {
		return nil, nil, err
	}
	sess, err := s.requireSession(ctx, eventID, sessionID)
	if err != nil {
		return nil, nil, err
	}

	// Nil move fields keep the current value.
	newVenueID := sess.VenueID
	if mv.VenueID != nil {
		if *mv.VenueID == "" {
			newVenueID = nil
		} else {
			newVenueID = mv.VenueID
		}
	}
	newStart := sess.Start
	if mv.Start != nil {
		newStart = mv.Start
	}
	newEnd := sess.End
	if mv.End != nil {
		newEnd = mv.End
	}

	if newStart != nil && newEnd != nil && !newEnd.After(*newStart) {
		return nil, nil, fmt.Errorf("%w: end time must be after start time", domain.ErrInvalidInput)
	}

	var venueName string
	if newVenueID != nil {
		venue, err := s.venueRepo.GetByID(ctx, eventID, *newVenueID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, nil, domain.ErrNotFound
			}
			return nil, nil, fmt.Errorf("get venue: %w", err)
		}
		venueName = venue.Name
	}

	if !mv.Force && newVenueID != nil && newStart != nil && newEnd != nil {
		siblings, err := s.sessionRepo.ListByDayID(ctx, sess.EventDayID)
		if err != nil {
			return nil, nil, fmt.Errorf("list sessions: %w", err)
		}
		items := make([]scheduling.Item, 0, len(siblings))
		for _, sib := range siblings {
			if sib.ID == sessionID {
				continue
			}
			if sib.VenueID == nil || *sib.VenueID != *newVenueID {
				continue
			}
			items = append(items, sessionItem(sib))
		}
		items = append(items, scheduling.Item{
			ID:         sess.ID,
			Title:      sess.Title,
			ResourceID: *newVenueID,
			Start:      newStart,
			End:        newEnd,
			SortOrder:  sess.SortOrder,
		})
		pairs := pairsInvolving(s.findOverlaps(items), sessionID)
		if len(pairs) > 0 {
			return nil, scheduling.BuildConflicts(domain.ConflictSessionOverlap, *newVenueID, venueName, pairs), nil
		}
	}

	updated, err := s.sessionRepo.UpdateSchedule(ctx, sessionID, newVenueID,
		domain.NullTimeOfDayFrom(newStart), domain.NullTimeOfDayFrom(newEnd), mv.Version)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrVersionMismatch):
			return nil, nil, domain.ErrVersionMismatch
		case errors.Is(err, domain.ErrNotFound):
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("update session schedule: %w", err)
	}
	return updated, nil, nil
}

func (s *programService) CreatePresentation(ctx context.Context, orgID, eventID, sessionID, callerID string, p *domain.Presentation) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID); err != nil {
		return err
	}
	if _, err := s.requireSession(ctx, eventID, sessionID); err != nil {
		return err
	}

	p.SessionID = sessionID
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return fmt.Errorf("%w: presentation title is required", domain.ErrInvalidInput)
	}
	if p.SpeakerIDs == nil {
		p.SpeakerIDs = []string{}
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.presentationRepo.Create(ctx, p); err != nil {
		return fmt.Errorf("create presentation: %w", err)
	}
	return nil
}

// requirePresentation resolves a presentation and verifies its tenancy
// chain: presentation, parent session, day, event. Returns both ends
// of the chain.
func (s *programService) requirePresentation(ctx context.Context, eventID, presentationID string) (*domain.Presentation, *domain.ProgramSession, error) {
	p, err := s.presentationRepo.GetByID(ctx, presentationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("get presentation: %w", err)
	}
	sess, err := s.requireSession(ctx, eventID, p.SessionID)
	if err != nil {
		return nil, nil, err
	}
	return p, sess, nil
}

func (s *programService) UpdatePresentationContent(ctx context.Context, orgID, eventID, presentationID, callerID string, title, abstract *string, speakerIDs []string) (*domain.Presentation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID); err != nil {
		return nil, err
	}
	if _, _, err := s.requirePresentation(ctx, eventID, presentationID); err != nil {
		return nil, err
	}
	if title != nil && strings.TrimSpace(*title) == "" {
		return nil, fmt.Errorf("%w: presentation title is required", domain.ErrInvalidInput)
	}
	updated, err := s.presentationRepo.UpdateContent(ctx, presentationID, title, abstract, speakerIDs)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update presentation: %w", err)
	}
	return updated, nil
}

func (s *programService) DeletePresentation(ctx context.Context, orgID, eventID, presentationID, callerID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID); err != nil {
		return err
	}
	if _, _, err := s.requirePresentation(ctx, eventID, presentationID); err != nil {
		return err
	}
	if err := s.presentationRepo.Delete(ctx, presentationID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete presentation: %w", err)
	}
	return nil
}

func (s *programService) MovePresentation(ctx context.Context, orgID, eventID, presentationID, callerID string, mv domain.ScheduleMove) (*domain.Presentation, []domain.Conflict, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID); err != nil {
		return nil, nil, err
	}
	p, sess, err := s.requirePresentation(ctx, eventID, presentationID)
	if err != nil {
		return nil, nil, err
	}

	newStart := p.Start
	if mv.Start != nil {
		newStart = mv.Start
	}
	newEnd := p.End
	if mv.End != nil {
		newEnd = mv.End
	}
	if newStart != nil && newEnd != nil && !newEnd.After(*newStart) {
		return nil, nil, fmt.Errorf("%w: end time must be after start time", domain.ErrInvalidInput)
	}

	if !mv.Force && newStart != nil && newEnd != nil {
		var conflicts []domain.Conflict

		siblings, err := s.presentationRepo.ListBySessionID(ctx, sess.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("list presentations: %w", err)
		}
		items := make([]scheduling.Item, 0, len(siblings))
		for _, sib := range siblings {
			if sib.ID == presentationID {
				continue
			}
			items = append(items, presentationItem(sib))
		}
		items = append(items, scheduling.Item{
			ID:         p.ID,
			Title:      p.Title,
			ResourceID: sess.ID,
			Start:      newStart,
			End:        newEnd,
			SortOrder:  p.SortOrder,
		})
		pairs := pairsInvolving(s.findOverlaps(items), presentationID)
		conflicts = append(conflicts, scheduling.BuildConflicts(domain.ConflictPresentationOverlap, sess.ID, sess.Title, pairs)...)

		// A presentation spilling outside its parent session's window
		// is a time conflict even without a sibling overlap.
		if tc := presentationTimeConflict(sess, p.ID, p.Title, *newStart, *newEnd); tc != nil {
			conflicts = append(conflicts, *tc)
		}

		if len(conflicts) > 0 {
			return nil, conflicts, nil
		}
	}

	updated, err := s.presentationRepo.UpdateSchedule(ctx, presentationID,
		domain.NullTimeOfDayFrom(newStart), domain.NullTimeOfDayFrom(newEnd), mv.Version)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrVersionMismatch):
			return nil, nil, domain.ErrVersionMismatch
		case errors.Is(err, domain.ErrNotFound):
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("update presentation schedule: %w", err)
	}
	return updated, nil, nil
}

func (s *programService) DayConflicts(ctx context.Context, orgID, eventID, dayID, callerID string) (*domain.ConflictReport, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID); err != nil {
		return nil, err
	}
	if _, err := s.eventRepo.GetDayByID(ctx, eventID, dayID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event day: %w", err)
	}

	sessions, err := s.sessionRepo.ListByDayID(ctx, dayID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	venues, err := s.venueRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}

	conflicts := make([]domain.Conflict, 0)

	// Session overlaps, one detector run per venue.
	byVenue := make(map[string][]scheduling.Item)
	for _, sess := range sessions {
		if !sess.Scheduled() {
			continue
		}
		byVenue[*sess.VenueID] = append(byVenue[*sess.VenueID], sessionItem(sess))
	}
	for _, venue := range venues {
		pairs := s.findOverlaps(byVenue[venue.ID])
		conflicts = append(conflicts, scheduling.BuildConflicts(domain.ConflictSessionOverlap, venue.ID, venue.Name, pairs)...)
	}

	// Presentation overlaps and out-of-window time conflicts, per session.
	for _, sess := range sessions {
		presentations, err := s.presentationRepo.ListBySessionID(ctx, sess.ID)
		if err != nil {
			return nil, fmt.Errorf("list presentations: %w", err)
		}
		items := make([]scheduling.Item, 0, len(presentations))
		for _, p := range presentations {
			items = append(items, presentationItem(p))
		}
		pairs := s.findOverlaps(items)
		conflicts = append(conflicts, scheduling.BuildConflicts(domain.ConflictPresentationOverlap, sess.ID, sess.Title, pairs)...)

		for _, p := range presentations {
			if p.Start == nil || p.End == nil {
				continue
			}
			if tc := presentationTimeConflict(sess, p.ID, p.Title, *p.Start, *p.End); tc != nil {
				conflicts = append(conflicts, *tc)
			}
		}
	}

	report := &domain.ConflictReport{
		HasConflicts: len(conflicts) > 0,
		Conflicts:    conflicts,
		Venues:       venueCapacityViews(venues, sessions),
	}
	return report, nil
}

func (s *programService) AutoArrange(ctx context.Context, orgID, eventID, dayID, callerID string, req domain.AutoArrangeRequest) (*domain.AutoArrangeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID); err != nil {
		return nil, err
	}
	if _, err := s.eventRepo.GetDayByID(ctx, eventID, dayID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event day: %w", err)
	}

	// All strategies currently run the same first-fit heuristic; the
	// name is validated so future semantics can differ per strategy.
	if req.Strategy == "" {
		req.Strategy = domain.StrategyMinimizeGaps
	}
	if !domain.ValidStrategy(req.Strategy) {
		return nil, fmt.Errorf("%w: unknown strategy %q", domain.ErrInvalidInput, req.Strategy)
	}
	if req.SlotMinutes == 0 {
		req.SlotMinutes = scheduling.DefaultSlotMinutes
	}
	if req.WindowStart == 0 {
		req.WindowStart = scheduling.DefaultWindowStart
	}
	if req.WindowEnd == 0 {
		req.WindowEnd = scheduling.DefaultWindowEnd
	}
	slots, err := scheduling.BuildSlotGrid(req.WindowStart, req.WindowEnd, req.SlotMinutes)
	if err != nil {
		return nil, err
	}

	sessions, err := s.sessionRepo.ListByDayID(ctx, dayID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	venues, err := s.venueRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}

	venueOptions := make([]scheduling.VenueOption, 0, len(venues))
	for _, v := range venues {
		venueOptions = append(venueOptions, scheduling.VenueOption{ID: v.ID, Name: v.Name, Capacity: v.Capacity})
	}

	var unscheduled []scheduling.Item
	occupied := make(map[string][]scheduling.Item)
	versions := make(map[string]int, len(sessions))
	for _, sess := range sessions {
		versions[sess.ID] = sess.Version
		if sess.Scheduled() {
			occupied[*sess.VenueID] = append(occupied[*sess.VenueID], sessionItem(sess))
			continue
		}
		unscheduled = append(unscheduled, scheduling.Item{
			ID:        sess.ID,
			Title:     sess.Title,
			SortOrder: sess.SortOrder,
		})
	}

	run := scheduling.AutoSchedule(unscheduled, venueOptions, slots, occupied)

	result := &domain.AutoArrangeResult{
		ScheduledCount: run.ScheduledCount(),
		Assignments:    make([]domain.ProposedAssignment, 0, len(run.Assignments)),
		Unplaced:       make([]domain.UnplacedItem, 0, len(run.Unplaced)),
		Preview:        req.Preview,
	}
	for _, a := range run.Assignments {
		result.Assignments = append(result.Assignments, domain.ProposedAssignment{
			SessionID:    a.Item.ID,
			SessionTitle: a.Item.Title,
			VenueID:      a.VenueID,
			VenueName:    a.VenueName,
			Slot:         a.Slot,
		})
	}
	for _, u := range run.Unplaced {
		result.Unplaced = append(result.Unplaced, domain.UnplacedItem{
			SessionID:    u.Item.ID,
			SessionTitle: u.Item.Title,
			Reason:       u.Reason,
		})
	}

	if req.Preview {
		return result, nil
	}

	// One transaction for the whole batch: a stale version anywhere
	// rolls back every placement, never leaving a half-applied day.
	batch := make([]domain.ScheduleAssignment, 0, len(run.Assignments))
	for _, a := range run.Assignments {
		venueID := a.VenueID
		start, end := a.Slot.Start, a.Slot.End
		batch = append(batch, domain.ScheduleAssignment{
			SessionID:       a.Item.ID,
			VenueID:         &venueID,
			Start:           domain.NullTimeOfDayFrom(&start),
			End:             domain.NullTimeOfDayFrom(&end),
			ExpectedVersion: versions[a.Item.ID],
		})
	}
	if err := s.sessionRepo.ApplySchedule(ctx, batch); err != nil {
		if errors.Is(err, domain.ErrVersionMismatch) || errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("commit assignments: %w", err)
	}
	return result, nil
}

func sessionItem(sess *domain.ProgramSession) scheduling.Item {
	item := scheduling.Item{
		ID:        sess.ID,
		Title:     sess.Title,
		Start:     sess.Start,
		End:       sess.End,
		SortOrder: sess.SortOrder,
	}
	if sess.VenueID != nil {
		item.ResourceID = *sess.VenueID
	}
	return item
}

func presentationItem(p *domain.Presentation) scheduling.Item {
	return scheduling.Item{
		ID:         p.ID,
		Title:      p.Title,
		ResourceID: p.SessionID,
		Start:      p.Start,
		End:        p.End,
		SortOrder:  p.SortOrder,
	}
}

// pairsInvolving keeps only the pairs that include the given item ID.
func pairsInvolving(pairs []scheduling.Pair, id string) []scheduling.Pair {
	out := pairs[:0]
	for _, p := range pairs {
		if p.First.ID == id || p.Second.ID == id {
			out = append(out, p)
		}
	}
	return out
}

// presentationTimeConflict reports a time_conflict when a presentation
// window falls outside its parent session's scheduled window. Sessions
// without times cannot bound their presentations, so nil is returned.
func presentationTimeConflict(sess *domain.ProgramSession, presentationID, title string, start, end domain.TimeOfDay) *domain.Conflict {
	if sess.Start == nil || sess.End == nil {
		return nil
	}
	if !start.Before(*sess.Start) && !end.After(*sess.End) {
		return nil
	}
	return &domain.Conflict{
		Type:         domain.ConflictTime,
		ResourceID:   sess.ID,
		ResourceName: sess.Title,
		FirstID:      presentationID,
		FirstTitle:   title,
		SecondID:     sess.ID,
		SecondTitle:  sess.Title,
		Message: fmt.Sprintf("%q (%s-%s) falls outside session %q (%s-%s)",
			title, start, end, sess.Title, sess.Start, sess.End),
	}
}

// venueCapacityViews projects per-venue load for one day: how many
// sessions each venue holds and what share of the working-day window
// they cover, in whole percent, capped at 100.
func venueCapacityViews(venues []*domain.Venue, sessions []*domain.ProgramSession) []*domain.VenueCapacityView {
	windowMinutes := scheduling.DefaultWindowEnd.Minutes() - scheduling.DefaultWindowStart.Minutes()
	views := make([]*domain.VenueCapacityView, 0, len(venues))
	for _, v := range venues {
		view := &domain.VenueCapacityView{
			VenueID:  v.ID,
			Name:     v.Name,
			Capacity: v.Capacity,
		}
		totalMinutes := 0
		for _, sess := range sessions {
			if !sess.Scheduled() || *sess.VenueID != v.ID {
				continue
			}
			view.SessionCount++
			totalMinutes += sess.End.Minutes() - sess.Start.Minutes()
		}
		pct := totalMinutes * 100 / windowMinutes
		if pct > 100 {
			pct = 100
		}
		view.UtilizationPct = pct
		views = append(views, view)
	}
	return views
}

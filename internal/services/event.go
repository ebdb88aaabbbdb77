package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"confprogram/internal/domain"
)

type eventService struct {
	orgRepo        domain.OrganizationRepository
	eventRepo      domain.EventRepository
	venueRepo      domain.VenueRepository
	contextTimeout time.Duration
}

// NewEventService creates an EventService.
func NewEventService(orgRepo domain.OrganizationRepository, eventRepo domain.EventRepository, venueRepo domain.VenueRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		orgRepo:        orgRepo,
		eventRepo:      eventRepo,
		venueRepo:      venueRepo,
		contextTimeout: timeout,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, orgID, callerID string, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireMember(ctx, s.orgRepo, orgID, callerID); err != nil {
		return err
	}

	event.OrgID = orgID
	event.Name = strings.TrimSpace(event.Name)
	event.Slug = strings.TrimSpace(strings.ToLower(event.Slug))
	if event.Name == "" || event.Slug == "" {
		return fmt.Errorf("%w: name and slug are required", domain.ErrInvalidInput)
	}
	if event.StartsOn != nil && event.EndsOn != nil && event.EndsOn.Before(*event.StartsOn) {
		return fmt.Errorf("%w: ends_on before starts_on", domain.ErrInvalidInput)
	}
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	if err := s.eventRepo.Create(ctx, event); err != nil {
		if errors.Is(err, domain.ErrDuplicateSlug) {
			return domain.ErrDuplicateSlug
		}
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (s *eventService) GetEvent(ctx context.Context, orgID, eventID, callerID string) (*domain.Event, []*domain.EventDay, []*domain.Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID)
	if err != nil {
		return nil, nil, nil, err
	}

	days, err := s.eventRepo.ListDaysByEventID(ctx, eventID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("list event days: %w", err)
	}
	if days == nil {
		days = []*domain.EventDay{}
	}

	venues, err := s.venueRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("list venues: %w", err)
	}
	if venues == nil {
		venues = []*domain.Venue{}
	}

	return event, days, venues, nil
}

func (s *eventService) ListEvents(ctx context.Context, orgID, callerID string) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireMember(ctx, s.orgRepo, orgID, callerID); err != nil {
		return nil, err
	}
	events, err := s.eventRepo.ListByOrgID(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, orgID, eventID, callerID string, upd domain.EventUpdate) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID)
	if err != nil {
		return nil, err
	}

	startsOn := event.StartsOn
	if upd.StartsOn != nil {
		startsOn = upd.StartsOn
	}
	endsOn := event.EndsOn
	if upd.EndsOn != nil {
		endsOn = upd.EndsOn
	}
	if startsOn != nil && endsOn != nil && endsOn.Before(*startsOn) {
		return nil, fmt.Errorf("%w: ends_on before starts_on", domain.ErrInvalidInput)
	}

	updated, err := s.eventRepo.Update(ctx, orgID, eventID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return updated, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, orgID, eventID, callerID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	role, err := requireMember(ctx, s.orgRepo, orgID, callerID)
	if err != nil {
		return err
	}
	if role != domain.OrgRoleOwner {
		return domain.ErrForbidden
	}
	if err := s.eventRepo.Delete(ctx, orgID, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (s *eventService) AddEventDay(ctx context.Context, orgID, eventID, callerID string, date time.Time, label string, sortOrder int) (*domain.EventDay, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID)
	if err != nil {
		return nil, err
	}
	if event.StartsOn != nil && date.Before(*event.StartsOn) {
		return nil, fmt.Errorf("%w: day before event start", domain.ErrInvalidInput)
	}
	if event.EndsOn != nil && date.After(*event.EndsOn) {
		return nil, fmt.Errorf("%w: day after event end", domain.ErrInvalidInput)
	}

	now := time.Now()
	day := domain.NewEventDay(eventID, date, strings.TrimSpace(label), sortOrder, now, now)
	if err := s.eventRepo.CreateDay(ctx, day); err != nil {
		return nil, fmt.Errorf("create event day: %w", err)
	}
	return day, nil
}

func (s *eventService) ListEventDays(ctx context.Context, orgID, eventID, callerID string) ([]*domain.EventDay, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID); err != nil {
		return nil, err
	}
	days, err := s.eventRepo.ListDaysByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list event days: %w", err)
	}
	if days == nil {
		days = []*domain.EventDay{}
	}
	return days, nil
}

func (s *eventService) DeleteEventDay(ctx context.Context, orgID, eventID, dayID, callerID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID); err != nil {
		return err
	}
	if err := s.eventRepo.DeleteDay(ctx, eventID, dayID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event day: %w", err)
	}
	return nil
}

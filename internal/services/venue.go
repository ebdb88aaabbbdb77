package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"confprogram/internal/domain"
)

type venueService struct {
	orgRepo        domain.OrganizationRepository
	eventRepo      domain.EventRepository
	venueRepo      domain.VenueRepository
	contextTimeout time.Duration
}

// NewVenueService creates a VenueService.
func NewVenueService(orgRepo domain.OrganizationRepository, eventRepo domain.EventRepository, venueRepo domain.VenueRepository, timeout time.Duration) domain.VenueService {
	return &venueService{
		orgRepo:        orgRepo,
		eventRepo:      eventRepo,
		venueRepo:      venueRepo,
		contextTimeout: timeout,
	}
}

func (s *venueService) CreateVenue(ctx context.Context, orgID, eventID, callerID string, v *domain.Venue) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID); err != nil {
		return err
	}

	v.EventID = eventID
	v.Name = strings.TrimSpace(v.Name)
	if v.Name == "" {
		return fmt.Errorf("%w: venue name is required", domain.ErrInvalidInput)
	}
	if v.Capacity < 0 {
		return fmt.Errorf("%w: capacity must not be negative", domain.ErrInvalidInput)
	}
	now := time.Now()
	v.CreatedAt = now
	v.UpdatedAt = now

	if err := s.venueRepo.Create(ctx, v); err != nil {
		return fmt.Errorf("create venue: %w", err)
	}
	return nil
}

func (s *venueService) GetVenue(ctx context.Context, orgID, eventID, venueID, callerID string) (*domain.Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID); err != nil {
		return nil, err
	}
	venue, err := s.venueRepo.GetByID(ctx, eventID, venueID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get venue: %w", err)
	}
	return venue, nil
}

func (s *venueService) ListVenues(ctx context.Context, orgID, eventID, callerID string) ([]*domain.Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID); err != nil {
		return nil, err
	}
	venues, err := s.venueRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	if venues == nil {
		venues = []*domain.Venue{}
	}
	return venues, nil
}

func (s *venueService) UpdateVenue(ctx context.Context, orgID, eventID, venueID, callerID string, upd domain.VenueUpdate) (*domain.Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID); err != nil {
		return nil, err
	}
	if upd.Capacity != nil && *upd.Capacity < 0 {
		return nil, fmt.Errorf("%w: capacity must not be negative", domain.ErrInvalidInput)
	}
	venue, err := s.venueRepo.Update(ctx, eventID, venueID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update venue: %w", err)
	}
	return venue, nil
}

func (s *venueService) DeleteVenue(ctx context.Context, orgID, eventID, venueID, callerID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID); err != nil {
		return err
	}
	if err := s.venueRepo.Delete(ctx, eventID, venueID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete venue: %w", err)
	}
	return nil
}

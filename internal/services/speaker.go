package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"confprogram/internal/domain"
)

type speakerService struct {
	orgRepo        domain.OrganizationRepository
	eventRepo      domain.EventRepository
	speakerRepo    domain.SpeakerRepository
	contextTimeout time.Duration
}

// NewSpeakerService creates a SpeakerService.
func NewSpeakerService(orgRepo domain.OrganizationRepository, eventRepo domain.EventRepository, speakerRepo domain.SpeakerRepository, timeout time.Duration) domain.SpeakerService {
	return &speakerService{
		orgRepo:        orgRepo,
		eventRepo:      eventRepo,
		speakerRepo:    speakerRepo,
		contextTimeout: timeout,
	}
}

func (s *speakerService) CreateSpeaker(ctx context.Context, orgID, eventID, callerID string, sp *domain.Speaker) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID); err != nil {
		return err
	}

	sp.EventID = eventID
	sp.FirstName = strings.TrimSpace(sp.FirstName)
	sp.LastName = strings.TrimSpace(sp.LastName)
	if sp.FirstName == "" && sp.LastName == "" {
		return fmt.Errorf("%w: speaker name is required", domain.ErrInvalidInput)
	}
	sp.FullName = strings.TrimSpace(sp.FirstName + " " + sp.LastName)
	now := time.Now()
	sp.CreatedAt = now
	sp.UpdatedAt = now

	if err := s.speakerRepo.Create(ctx, sp); err != nil {
		return fmt.Errorf("create speaker: %w", err)
	}
	return nil
}

func (s *speakerService) GetSpeaker(ctx context.Context, orgID, eventID, speakerID, callerID string) (*domain.Speaker, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID); err != nil {
		return nil, err
	}
	sp, err := s.speakerRepo.GetByID(ctx, eventID, speakerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get speaker: %w", err)
	}
	return sp, nil
}

func (s *speakerService) ListSpeakers(ctx context.Context, orgID, eventID, callerID, search string, p domain.PaginationParams) ([]*domain.Speaker, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID); err != nil {
		return nil, 0, err
	}
	speakers, total, err := s.speakerRepo.List(ctx, eventID, strings.TrimSpace(search), p)
	if err != nil {
		return nil, 0, fmt.Errorf("list speakers: %w", err)
	}
	if speakers == nil {
		speakers = []*domain.Speaker{}
	}
	return speakers, total, nil
}

func (s *speakerService) UpdateSpeaker(ctx context.Context, orgID, eventID, speakerID, callerID string, upd domain.SpeakerUpdate) (*domain.Speaker, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID); err != nil {
		return nil, err
	}
	sp, err := s.speakerRepo.Update(ctx, eventID, speakerID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update speaker: %w", err)
	}
	return sp, nil
}

func (s *speakerService) DeleteSpeaker(ctx context.Context, orgID, eventID, speakerID, callerID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID); err != nil {
		return err
	}
	if err := s.speakerRepo.Delete(ctx, eventID, speakerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete speaker: %w", err)
	}
	return nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"confprogram/internal/domain"
)

type sponsorService struct {
	orgRepo        domain.OrganizationRepository
	eventRepo      domain.EventRepository
	sponsorRepo    domain.SponsorRepository
	contextTimeout time.Duration
}

// NewSponsorService creates a SponsorService.
func NewSponsorService(orgRepo domain.OrganizationRepository, eventRepo domain.EventRepository, sponsorRepo domain.SponsorRepository, timeout time.Duration) domain.SponsorService {
	return &sponsorService{
		orgRepo:        orgRepo,
		eventRepo:      eventRepo,
		sponsorRepo:    sponsorRepo,
		contextTimeout: timeout,
	}
}

func (s *sponsorService) CreateSponsor(ctx context.Context, orgID, eventID, callerID string, sp *domain.Sponsor) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID); err != nil {
		return err
	}

	sp.EventID = eventID
	sp.Name = strings.TrimSpace(sp.Name)
	if sp.Name == "" {
		return fmt.Errorf("%w: sponsor name is required", domain.ErrInvalidInput)
	}
	sp.Tier = strings.TrimSpace(strings.ToLower(sp.Tier))
	if !domain.ValidSponsorTier(sp.Tier) {
		return fmt.Errorf("%w: unknown sponsor tier %q", domain.ErrInvalidInput, sp.Tier)
	}
	now := time.Now()
	sp.CreatedAt = now
	sp.UpdatedAt = now

	if err := s.sponsorRepo.Create(ctx, sp); err != nil {
		return fmt.Errorf("create sponsor: %w", err)
	}
	return nil
}

func (s *sponsorService) GetSponsor(ctx context.Context, orgID, eventID, sponsorID, callerID string) (*domain.Sponsor, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID); err != nil {
		return nil, err
	}
	sp, err := s.sponsorRepo.GetByID(ctx, eventID, sponsorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get sponsor: %w", err)
	}
	return sp, nil
}

func (s *sponsorService) ListSponsors(ctx context.Context, orgID, eventID, callerID string) ([]*domain.Sponsor, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID); err != nil {
		return nil, err
	}
	sponsors, err := s.sponsorRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list sponsors: %w", err)
	}
	if sponsors == nil {
		sponsors = []*domain.Sponsor{}
	}
	return sponsors, nil
}

func (s *sponsorService) UpdateSponsor(ctx context.Context, orgID, eventID, sponsorID, callerID string, upd domain.SponsorUpdate) (*domain.Sponsor, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID); err != nil {
		return nil, err
	}
	if upd.Tier != nil {
		tier := strings.TrimSpace(strings.ToLower(*upd.Tier))
		if !domain.ValidSponsorTier(tier) {
			return nil, fmt.Errorf("%w: unknown sponsor tier %q", domain.ErrInvalidInput, tier)
		}
		upd.Tier = &tier
	}
	sp, err := s.sponsorRepo.Update(ctx, eventID, sponsorID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update sponsor: %w", err)
	}
	return sp, nil
}

func (s *sponsorService) DeleteSponsor(ctx context.Context, orgID, eventID, sponsorID, callerID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID); err != nil {
		return err
	}
	if err := s.sponsorRepo.Delete(ctx, eventID, sponsorID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete sponsor: %w", err)
	}
	return nil
}

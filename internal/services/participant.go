package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"confprogram/internal/domain"
)

type participantService struct {
	orgRepo         domain.OrganizationRepository
	eventRepo       domain.EventRepository
	participantRepo domain.ParticipantRepository
	emailService    domain.EmailService
	contextTimeout  time.Duration
}

// NewParticipantService creates a ParticipantService.
func NewParticipantService(orgRepo domain.OrganizationRepository, eventRepo domain.EventRepository, participantRepo domain.ParticipantRepository, emailService domain.EmailService, timeout time.Duration) domain.ParticipantService {
	return &participantService{
		orgRepo:         orgRepo,
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		emailService:    emailService,
		contextTimeout:  timeout,
	}
}

func (s *participantService) CreateParticipant(ctx context.Context, orgID, eventID, callerID string, p *domain.Participant) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID); err != nil {
		return err
	}

	p.EventID = eventID
	p.Email = strings.TrimSpace(strings.ToLower(p.Email))
	if !emailRegexp.MatchString(p.Email) {
		return fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.participantRepo.Create(ctx, p); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("create participant: %w", err)
	}
	return nil
}

func (s *participantService) GetParticipant(ctx context.Context, orgID, eventID, participantID, callerID string) (*domain.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID); err != nil {
		return nil, err
	}
	p, err := s.participantRepo.GetByID(ctx, eventID, participantID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get participant: %w", err)
	}
	return p, nil
}

func (s *participantService) ListParticipants(ctx context.Context, orgID, eventID, callerID, search string, pg domain.PaginationParams) ([]*domain.Participant, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID); err != nil {
		return nil, 0, err
	}
	participants, total, err := s.participantRepo.List(ctx, eventID, strings.TrimSpace(search), pg)
	if err != nil {
		return nil, 0, fmt.Errorf("list participants: %w", err)
	}
	if participants == nil {
		participants = []*domain.Participant{}
	}
	return participants, total, nil
}

func (s *participantService) UpdateParticipant(ctx context.Context, orgID, eventID, participantID, callerID string, upd domain.ParticipantUpdate) (*domain.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID); err != nil {
		return nil, err
	}
	if upd.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*upd.Email))
		if !emailRegexp.MatchString(email) {
			return nil, fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
		}
		upd.Email = &email
	}
	p, err := s.participantRepo.Update(ctx, eventID, participantID, upd)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil, domain.ErrNotFound
		case errors.Is(err, domain.ErrDuplicateEmail):
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("update participant: %w", err)
	}
	return p, nil
}

func (s *participantService) DeleteParticipant(ctx context.Context, orgID, eventID, participantID, callerID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID); err != nil {
		return err
	}
	if err := s.participantRepo.Delete(ctx, eventID, participantID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete participant: %w", err)
	}
	return nil
}

func (s *participantService) SendInvitations(ctx context.Context, orgID, eventID, callerID string, emails []string) (int, []string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID)
	if err != nil {
		return 0, nil, err
	}
	org, err := s.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		return 0, nil, fmt.Errorf("get organization: %w", err)
	}

	sent := 0
	var failed []string
	for _, email := range emails {
		email = strings.TrimSpace(strings.ToLower(email))
		if email == "" {
			continue
		}
		if !emailRegexp.MatchString(email) {
			failed = append(failed, email)
			continue
		}
		data := &domain.ParticipantInviteEmailData{
			Email:     email,
			EventName: event.Name,
			OrgName:   org.Name,
		}
		if err := s.emailService.SendParticipantInvitation(ctx, data); err != nil {
			failed = append(failed, email)
			continue
		}
		inv := &domain.ParticipantInvitation{
			EventID: eventID,
			Email:   email,
			SentAt:  time.Now(),
		}
		if err := s.participantRepo.CreateInvitation(ctx, inv); err != nil {
			failed = append(failed, email)
			continue
		}
		sent++
	}
	return sent, failed, nil
}

func (s *participantService) ListInvitations(ctx context.Context, orgID, eventID, callerID string) ([]*domain.ParticipantInvitation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID); err != nil {
		return nil, err
	}
	invitations, err := s.participantRepo.ListInvitations(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	if invitations == nil {
		invitations = []*domain.ParticipantInvitation{}
	}
	return invitations, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"confprogram/internal/domain"
)

type attachmentService struct {
	orgRepo          domain.OrganizationRepository
	eventRepo        domain.EventRepository
	participantRepo  domain.ParticipantRepository
	sponsorRepo      domain.SponsorRepository
	presentationRepo domain.PresentationRepository
	sessionRepo      domain.SessionRepository
	attachmentRepo   domain.AttachmentRepository
	contextTimeout   time.Duration
}

// NewAttachmentService creates an AttachmentService.
func NewAttachmentService(
	orgRepo domain.OrganizationRepository,
	eventRepo domain.EventRepository,
	participantRepo domain.ParticipantRepository,
	sponsorRepo domain.SponsorRepository,
	presentationRepo domain.PresentationRepository,
	sessionRepo domain.SessionRepository,
	attachmentRepo domain.AttachmentRepository,
	timeout time.Duration,
) domain.AttachmentService {
	return &attachmentService{
		orgRepo:          orgRepo,
		eventRepo:        eventRepo,
		participantRepo:  participantRepo,
		sponsorRepo:      sponsorRepo,
		presentationRepo: presentationRepo,
		sessionRepo:      sessionRepo,
		attachmentRepo:   attachmentRepo,
		contextTimeout:   timeout,
	}
}

// verifyOwner checks that the owning entity exists within the event.
// Dispatch is an explicit switch over the closed owner type set.
func (s *attachmentService) verifyOwner(ctx context.Context, orgID, eventID string, ownerType domain.AttachmentOwnerType, ownerID string) error {
	switch ownerType {
	case domain.OwnerParticipant:
		_, err := s.participantRepo.GetByID(ctx, eventID, ownerID)
		return err
	case domain.OwnerSponsor:
		_, err := s.sponsorRepo.GetByID(ctx, eventID, ownerID)
		return err
	case domain.OwnerPresentation:
		p, err := s.presentationRepo.GetByID(ctx, ownerID)
		if err != nil {
			return err
		}
		sess, err := s.sessionRepo.GetByID(ctx, p.SessionID)
		if err != nil {
			return err
		}
		_, err = s.eventRepo.GetDayByID(ctx, eventID, sess.EventDayID)
		return err
	case domain.OwnerEvent:
		if ownerID != eventID {
			return domain.ErrNotFound
		}
		_, err := s.eventRepo.GetByID(ctx, orgID, eventID)
		return err
	}
	return fmt.Errorf("%w: unknown attachment owner type %q", domain.ErrInvalidInput, ownerType)
}

func (s *attachmentService) Register(ctx context.Context, orgID, eventID, callerID string, a *domain.Attachment) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID); err != nil {
		return err
	}
	if _, err := domain.ParseAttachmentOwnerType(string(a.OwnerType)); err != nil {
		return err
	}
	if err := s.verifyOwner(ctx, orgID, eventID, a.OwnerType, a.OwnerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("verify attachment owner: %w", err)
	}

	a.FileName = strings.TrimSpace(a.FileName)
	if a.FileName == "" {
		return fmt.Errorf("%w: file name is required", domain.ErrInvalidInput)
	}
	if a.Size < 0 {
		return fmt.Errorf("%w: size must not be negative", domain.ErrInvalidInput)
	}
	if a.StorageKey == "" {
		a.StorageKey = fmt.Sprintf("%s/%s/%s", a.OwnerType, a.OwnerID, uuid.NewString())
	}
	a.CreatedAt = time.Now()

	if err := s.attachmentRepo.Create(ctx, a); err != nil {
		return fmt.Errorf("create attachment: %w", err)
	}
	return nil
}

func (s *attachmentService) ListByOwner(ctx context.Context, orgID, eventID, callerID string, ownerType domain.AttachmentOwnerType, ownerID string) ([]*domain.Attachment, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID); err != nil {
		return nil, err
	}
	if _, err := domain.ParseAttachmentOwnerType(string(ownerType)); err != nil {
		return nil, err
	}
	if err := s.verifyOwner(ctx, orgID, eventID, ownerType, ownerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("verify attachment owner: %w", err)
	}
	attachments, err := s.attachmentRepo.ListByOwner(ctx, ownerType, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list attachments: %w", err)
	}
	if attachments == nil {
		attachments = []*domain.Attachment{}
	}
	return attachments, nil
}

func (s *attachmentService) Delete(ctx context.Context, orgID, eventID, attachmentID, callerID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID); err != nil {
		return err
	}
	a, err := s.attachmentRepo.GetByID(ctx, attachmentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get attachment: %w", err)
	}
	// The owner chain anchors the attachment to this event; an
	// attachment of another event's entity is invisible here.
	if err := s.verifyOwner(ctx, orgID, eventID, a.OwnerType, a.OwnerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("verify attachment owner: %w", err)
	}
	if err := s.attachmentRepo.Delete(ctx, attachmentID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete attachment: %w", err)
	}
	return nil
}

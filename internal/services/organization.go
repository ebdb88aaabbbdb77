package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"confprogram/internal/domain"
)

type organizationService struct {
	orgRepo        domain.OrganizationRepository
	userRepo       domain.UserRepository
	contextTimeout time.Duration
}

// NewOrganizationService creates an OrganizationService.
func NewOrganizationService(orgRepo domain.OrganizationRepository, userRepo domain.UserRepository, timeout time.Duration) domain.OrganizationService {
	return &organizationService{
		orgRepo:        orgRepo,
		userRepo:       userRepo,
		contextTimeout: timeout,
	}
}

func (s *organizationService) CreateOrganization(ctx context.Context, org *domain.Organization, ownerID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	org.Name = strings.TrimSpace(org.Name)
	org.Slug = strings.TrimSpace(strings.ToLower(org.Slug))
	if org.Name == "" || org.Slug == "" {
		return fmt.Errorf("%w: name and slug are required", domain.ErrInvalidInput)
	}
	now := time.Now()
	org.CreatedAt = now
	org.UpdatedAt = now

	if err := s.orgRepo.Create(ctx, org); err != nil {
		if errors.Is(err, domain.ErrDuplicateSlug) {
			return domain.ErrDuplicateSlug
		}
		return fmt.Errorf("create organization: %w", err)
	}
	if err := s.orgRepo.AddMember(ctx, org.ID, ownerID, domain.OrgRoleOwner); err != nil {
		return fmt.Errorf("add owner membership: %w", err)
	}
	return nil
}

func (s *organizationService) GetOrganization(ctx context.Context, orgID, callerID string) (*domain.Organization, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireMember(ctx, s.orgRepo, orgID, callerID); err != nil {
		return nil, err
	}
	org, err := s.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}
	return org, nil
}

func (s *organizationService) ListMyOrganizations(ctx context.Context, userID string) ([]*domain.Organization, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	orgs, err := s.orgRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	if orgs == nil {
		orgs = []*domain.Organization{}
	}
	return orgs, nil
}

func (s *organizationService) AddMemberByEmail(ctx context.Context, orgID, email, role, callerID string) (*domain.OrganizationMember, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	callerRole, err := requireMember(ctx, s.orgRepo, orgID, callerID)
	if err != nil {
		return nil, err
	}
	if callerRole != domain.OrgRoleOwner {
		return nil, domain.ErrForbidden
	}

	if role != domain.OrgRoleOwner && role != domain.OrgRoleOrganizer {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, role)
	}

	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	if err := s.orgRepo.AddMember(ctx, orgID, user.ID, role); err != nil {
		if errors.Is(err, domain.ErrAlreadyMember) {
			return nil, domain.ErrAlreadyMember
		}
		return nil, fmt.Errorf("add member: %w", err)
	}
	return &domain.OrganizationMember{
		OrgID:    orgID,
		UserID:   user.ID,
		Role:     role,
		Name:     user.Name,
		LastName: user.LastName,
		Email:    user.Email,
	}, nil
}

func (s *organizationService) ListMembers(ctx context.Context, orgID, callerID string) ([]*domain.OrganizationMember, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := requireMember(ctx, s.orgRepo, orgID, callerID); err != nil {
		return nil, err
	}
	members, err := s.orgRepo.ListMembers(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	if members == nil {
		members = []*domain.OrganizationMember{}
	}
	return members, nil
}

func (s *organizationService) RemoveMember(ctx context.Context, orgID, userID, callerID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	callerRole, err := requireMember(ctx, s.orgRepo, orgID, callerID)
	if err != nil {
		return err
	}
	if callerRole != domain.OrgRoleOwner {
		return domain.ErrForbidden
	}
	if userID == callerID {
		return fmt.Errorf("%w: owner cannot remove themselves", domain.ErrInvalidInput)
	}
	if err := s.orgRepo.RemoveMember(ctx, orgID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("remove member: %w", err)
	}
	return nil
}

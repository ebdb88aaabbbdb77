package services

import (
	"context"
	"errors"
	"fmt"

	"confprogram/internal/domain"
)

// requireMember checks that callerID belongs to the organization and
// returns the caller's role. Non-members get ErrForbidden, not
// ErrNotFound: the organization's existence is not a secret once the
// caller presents its ID.
func requireMember(ctx context.Context, orgRepo domain.OrganizationRepository, orgID, callerID string) (string, error) {
	role, err := orgRepo.GetMemberRole(ctx, orgID, callerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrForbidden
		}
		return "", fmt.Errorf("get member role: %w", err)
	}
	return role, nil
}

// requireEvent checks membership and that the event belongs to the
// organization, returning the event.
func requireEvent(ctx context.Context, orgRepo domain.OrganizationRepository, eventRepo domain.EventRepository, orgID, eventID, callerID string) (*domain.Event, error) {
	if _, err := requireMember(ctx, orgRepo, orgID, callerID); err != nil {
		return nil, err
	}
	event, err := eventRepo.GetByID(ctx, orgID, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

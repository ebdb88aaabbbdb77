package domain

import (
	"context"
	"time"
)

// Organization is the tenant boundary: every event and everything under
// it belongs to exactly one organization. The organization ID is passed
// explicitly through every service call and repository query; there is
// no ambient "current organization" state.
// swagger:model Organization
type Organization struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewOrganization returns a new Organization. ID is set by the repository on create.
func NewOrganization(name, slug string, createdAt, updatedAt time.Time) *Organization {
	return &Organization{
		Name:      name,
		Slug:      slug,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// Organization member roles.
const (
	OrgRoleOwner     = "owner"
	OrgRoleOrganizer = "organizer"
)

// OrganizationMember links a user to an organization with a role.
// swagger:model OrganizationMember
type OrganizationMember struct {
	OrgID    string `json:"org_id"`
	UserID   string `json:"user_id"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	Email    string `json:"email"`
}

// OrganizationRepository defines storage for organizations and memberships.
type OrganizationRepository interface {
	Create(ctx context.Context, org *Organization) error
	GetByID(ctx context.Context, id string) (*Organization, error)
	GetBySlug(ctx context.Context, slug string) (*Organization, error)
	ListByUserID(ctx context.Context, userID string) ([]*Organization, error)
	AddMember(ctx context.Context, orgID, userID, role string) error
	GetMemberRole(ctx context.Context, orgID, userID string) (string, error)
	ListMembers(ctx context.Context, orgID string) ([]*OrganizationMember, error)
	RemoveMember(ctx context.Context, orgID, userID string) error
}

// OrganizationService defines business operations on organizations.
type OrganizationService interface {
	CreateOrganization(ctx context.Context, org *Organization, ownerID string) error
	GetOrganization(ctx context.Context, orgID, callerID string) (*Organization, error)
	ListMyOrganizations(ctx context.Context, userID string) ([]*Organization, error)
	AddMemberByEmail(ctx context.Context, orgID, email, role, callerID string) (*OrganizationMember, error)
	ListMembers(ctx context.Context, orgID, callerID string) ([]*OrganizationMember, error)
	RemoveMember(ctx context.Context, orgID, userID, callerID string) error
}

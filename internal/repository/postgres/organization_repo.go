package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"confprogram/internal/domain"
)

type organizationRepository struct {
	DB *sql.DB
}

func NewOrganizationRepository(db *sql.DB) domain.OrganizationRepository {
	return &organizationRepository{DB: db}
}

func (r *organizationRepository) Create(ctx context.Context, org *domain.Organization) error {
	query := `
		INSERT INTO organizations (name, slug, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, org.Name, org.Slug, org.CreatedAt, org.UpdatedAt).Scan(&org.ID)
}

func (r *organizationRepository) GetByID(ctx context.Context, id string) (*domain.Organization, error) {
	query := `
		SELECT id, name, slug, created_at, updated_at
		FROM organizations
		WHERE id = $1
	`
	org := &domain.Organization{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&org.ID, &org.Name, &org.Slug, &org.CreatedAt, &org.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return org, nil
}

func (r *organizationRepository) GetBySlug(ctx context.Context, slug string) (*domain.Organization, error) {
	query := `
		SELECT id, name, slug, created_at, updated_at
		FROM organizations
		WHERE slug = $1
	`
	org := &domain.Organization{}
	err := r.DB.QueryRowContext(ctx, query, strings.ToLower(strings.TrimSpace(slug))).Scan(&org.ID, &org.Name, &org.Slug, &org.CreatedAt, &org.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return org, nil
}

func (r *organizationRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Organization, error) {
	query := `
		SELECT o.id, o.name, o.slug, o.created_at, o.updated_at
		FROM organizations o
		INNER JOIN organization_members m ON m.org_id = o.id
		WHERE m.user_id = $1
		ORDER BY o.created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	orgs := make([]*domain.Organization, 0)
	for rows.Next() {
		org := &domain.Organization{}
		if err := rows.Scan(&org.ID, &org.Name, &org.Slug, &org.CreatedAt, &org.UpdatedAt); err != nil {
			return nil, err
		}
		orgs = append(orgs, org)
	}
	return orgs, rows.Err()
}

func (r *organizationRepository) AddMember(ctx context.Context, orgID, userID, role string) error {
	query := `
		INSERT INTO organization_members (org_id, user_id, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (org_id, user_id) DO NOTHING
	`
	result, err := r.DB.ExecContext(ctx, query, orgID, userID, role)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrAlreadyMember
	}
	return nil
}

func (r *organizationRepository) GetMemberRole(ctx context.Context, orgID, userID string) (string, error) {
	query := `
		SELECT role
		FROM organization_members
		WHERE org_id = $1 AND user_id = $2
	`
	var role string
	err := r.DB.QueryRowContext(ctx, query, orgID, userID).Scan(&role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	return role, nil
}

func (r *organizationRepository) ListMembers(ctx context.Context, orgID string) ([]*domain.OrganizationMember, error) {
	query := `
		SELECT m.org_id, m.user_id, m.role, u.name, u.last_name, u.email
		FROM organization_members m
		INNER JOIN users u ON u.id = m.user_id
		WHERE m.org_id = $1
		ORDER BY u.email
	`
	rows, err := r.DB.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	members := make([]*domain.OrganizationMember, 0)
	for rows.Next() {
		m := &domain.OrganizationMember{}
		if err := rows.Scan(&m.OrgID, &m.UserID, &m.Role, &m.Name, &m.LastName, &m.Email); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *organizationRepository) RemoveMember(ctx context.Context, orgID, userID string) error {
	query := `DELETE FROM organization_members WHERE org_id = $1 AND user_id = $2`
	result, err := r.DB.ExecContext(ctx, query, orgID, userID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

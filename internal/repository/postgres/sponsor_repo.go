package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"confprogram/internal/domain"
)

type sponsorRepository struct {
	DB *sql.DB
}

func NewSponsorRepository(db *sql.DB) domain.SponsorRepository {
	return &sponsorRepository{DB: db}
}

const sponsorColumns = `id, event_id, name, tier, website, logo, sort_order, created_at, updated_at`

// tierRank orders tiers platinum first in list queries.
const tierRank = `CASE tier WHEN 'platinum' THEN 1 WHEN 'gold' THEN 2 WHEN 'silver' THEN 3 ELSE 4 END`

func scanSponsor(scanner interface {
	Scan(dest ...interface{}) error
}) (*domain.Sponsor, error) {
	sp := &domain.Sponsor{}
	err := scanner.Scan(
		&sp.ID, &sp.EventID, &sp.Name, &sp.Tier, &sp.Website, &sp.Logo,
		&sp.SortOrder, &sp.CreatedAt, &sp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return sp, nil
}

func (r *sponsorRepository) Create(ctx context.Context, sp *domain.Sponsor) error {
	query := `
		INSERT INTO sponsors (event_id, name, tier, website, logo, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		sp.EventID, sp.Name, sp.Tier, sp.Website, sp.Logo, sp.SortOrder, sp.CreatedAt, sp.UpdatedAt,
	).Scan(&sp.ID)
}

func (r *sponsorRepository) GetByID(ctx context.Context, eventID, id string) (*domain.Sponsor, error) {
	query := `SELECT ` + sponsorColumns + ` FROM sponsors WHERE event_id = $1 AND id = $2`
	sp, err := scanSponsor(r.DB.QueryRowContext(ctx, query, eventID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return sp, nil
}

func (r *sponsorRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Sponsor, error) {
	query := `
		SELECT ` + sponsorColumns + `
		FROM sponsors
		WHERE event_id = $1
		ORDER BY ` + tierRank + `, sort_order, name
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	sponsors := make([]*domain.Sponsor, 0)
	for rows.Next() {
		sp, err := scanSponsor(rows)
		if err != nil {
			return nil, err
		}
		sponsors = append(sponsors, sp)
	}
	return sponsors, rows.Err()
}

func (r *sponsorRepository) Update(ctx context.Context, eventID, id string, upd domain.SponsorUpdate) (*domain.Sponsor, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	n := 1
	add := func(col string, val interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, n))
		args = append(args, val)
		n++
	}
	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.Tier != nil {
		add("tier", *upd.Tier)
	}
	if upd.Website != nil {
		add("website", *upd.Website)
	}
	if upd.Logo != nil {
		add("logo", *upd.Logo)
	}
	if upd.SortOrder != nil {
		add("sort_order", *upd.SortOrder)
	}
	if n == 1 {
		return r.GetByID(ctx, eventID, id)
	}
	args = append(args, eventID, id)
	query := fmt.Sprintf(`
		UPDATE sponsors SET %s
		WHERE event_id = $%d AND id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), n, n+1, sponsorColumns)
	sp, err := scanSponsor(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return sp, nil
}

func (r *sponsorRepository) Delete(ctx context.Context, eventID, id string) error {
	query := `DELETE FROM sponsors WHERE event_id = $1 AND id = $2`
	result, err := r.DB.ExecContext(ctx, query, eventID, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

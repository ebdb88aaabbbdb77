package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"confprogram/internal/domain"
)

type venueRepository struct {
	DB *sql.DB
}

func NewVenueRepository(db *sql.DB) domain.VenueRepository {
	return &venueRepository{DB: db}
}

func (r *venueRepository) Create(ctx context.Context, v *domain.Venue) error {
	query := `
		INSERT INTO venues (event_id, name, capacity, floor, notes, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		v.EventID, v.Name, v.Capacity, v.Floor, v.Notes, v.SortOrder, v.CreatedAt, v.UpdatedAt,
	).Scan(&v.ID)
}

func (r *venueRepository) GetByID(ctx context.Context, eventID, id string) (*domain.Venue, error) {
	query := `
		SELECT id, event_id, name, capacity, floor, notes, sort_order, created_at, updated_at
		FROM venues
		WHERE event_id = $1 AND id = $2
	`
	v := &domain.Venue{}
	err := r.DB.QueryRowContext(ctx, query, eventID, id).Scan(
		&v.ID, &v.EventID, &v.Name, &v.Capacity, &v.Floor, &v.Notes, &v.SortOrder, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (r *venueRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Venue, error) {
	query := `
		SELECT id, event_id, name, capacity, floor, notes, sort_order, created_at, updated_at
		FROM venues
		WHERE event_id = $1
		ORDER BY sort_order, name
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	venues := make([]*domain.Venue, 0)
	for rows.Next() {
		v := &domain.Venue{}
		if err := rows.Scan(&v.ID, &v.EventID, &v.Name, &v.Capacity, &v.Floor, &v.Notes, &v.SortOrder, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		venues = append(venues, v)
	}
	return venues, rows.Err()
}

func (r *venueRepository) Update(ctx context.Context, eventID, id string, upd domain.VenueUpdate) (*domain.Venue, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	n := 1
	if upd.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", n))
		args = append(args, *upd.Name)
		n++
	}
	if upd.Capacity != nil {
		setClauses = append(setClauses, fmt.Sprintf("capacity = $%d", n))
		args = append(args, *upd.Capacity)
		n++
	}
	if upd.Floor != nil {
		setClauses = append(setClauses, fmt.Sprintf("floor = $%d", n))
		args = append(args, *upd.Floor)
		n++
	}
	if upd.Notes != nil {
		setClauses = append(setClauses, fmt.Sprintf("notes = $%d", n))
		args = append(args, *upd.Notes)
		n++
	}
	if upd.SortOrder != nil {
		setClauses = append(setClauses, fmt.Sprintf("sort_order = $%d", n))
		args = append(args, *upd.SortOrder)
		n++
	}
	if n == 1 {
		return r.GetByID(ctx, eventID, id)
	}
	args = append(args, eventID, id)
	query := fmt.Sprintf(`
		UPDATE venues SET %s
		WHERE event_id = $%d AND id = $%d
		RETURNING id, event_id, name, capacity, floor, notes, sort_order, created_at, updated_at
	`, strings.Join(setClauses, ", "), n, n+1)
	v := &domain.Venue{}
	err := r.DB.QueryRowContext(ctx, query, args...).Scan(
		&v.ID, &v.EventID, &v.Name, &v.Capacity, &v.Floor, &v.Notes, &v.SortOrder, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (r *venueRepository) Delete(ctx context.Context, eventID, id string) error {
	query := `DELETE FROM venues WHERE event_id = $1 AND id = $2`
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

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"confprogram/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{DB: db}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (org_id, name, slug, description, location, starts_on, ends_on, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	var startsOn, endsOn sql.NullTime
	if e.StartsOn != nil {
		startsOn = sql.NullTime{Time: *e.StartsOn, Valid: true}
	}
	if e.EndsOn != nil {
		endsOn = sql.NullTime{Time: *e.EndsOn, Valid: true}
	}
	err := r.DB.QueryRowContext(ctx, query,
		e.OrgID, e.Name, e.Slug, e.Description, e.Location, startsOn, endsOn, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return domain.ErrDuplicateSlug
		}
		return err
	}
	return nil
}

func scanEvent(row *sql.Row) (*domain.Event, error) {
	e := &domain.Event{}
	var startsNull, endsNull sql.NullTime
	err := row.Scan(
		&e.ID, &e.OrgID, &e.Name, &e.Slug, &e.Description, &e.Location,
		&startsNull, &endsNull, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if startsNull.Valid {
		e.StartsOn = &startsNull.Time
	}
	if endsNull.Valid {
		e.EndsOn = &endsNull.Time
	}
	return e, nil
}

func (r *eventRepository) GetByID(ctx context.Context, orgID, id string) (*domain.Event, error) {
	query := `
		SELECT id, org_id, name, slug, description, location, starts_on, ends_on, created_at, updated_at
		FROM events
		WHERE org_id = $1 AND id = $2
	`
	return scanEvent(r.DB.QueryRowContext(ctx, query, orgID, id))
}

func (r *eventRepository) ListByOrgID(ctx context.Context, orgID string) ([]*domain.Event, error) {
	query := `
		SELECT id, org_id, name, slug, description, location, starts_on, ends_on, created_at, updated_at
		FROM events
		WHERE org_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e := &domain.Event{}
		var startsNull, endsNull sql.NullTime
		if err := rows.Scan(
			&e.ID, &e.OrgID, &e.Name, &e.Slug, &e.Description, &e.Location,
			&startsNull, &endsNull, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if startsNull.Valid {
			e.StartsOn = &startsNull.Time
		}
		if endsNull.Valid {
			e.EndsOn = &endsNull.Time
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, orgID, id string, upd domain.EventUpdate) (*domain.Event, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	n := 1
	if upd.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", n))
		args = append(args, *upd.Name)
		n++
	}
	if upd.Description != nil {
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", n))
		args = append(args, *upd.Description)
		n++
	}
	if upd.StartsOn != nil {
		setClauses = append(setClauses, fmt.Sprintf("starts_on = $%d", n))
		args = append(args, *upd.StartsOn)
		n++
	}
	if upd.EndsOn != nil {
		setClauses = append(setClauses, fmt.Sprintf("ends_on = $%d", n))
		args = append(args, *upd.EndsOn)
		n++
	}
	if upd.Location != nil {
		setClauses = append(setClauses, fmt.Sprintf("location = $%d", n))
		args = append(args, *upd.Location)
		n++
	}
	if n == 1 {
		// No fields to update; just fetch current row
		return r.GetByID(ctx, orgID, id)
	}
	args = append(args, orgID, id)
	query := fmt.Sprintf(`
		UPDATE events SET %s
		WHERE org_id = $%d AND id = $%d
		RETURNING id, org_id, name, slug, description, location, starts_on, ends_on, created_at, updated_at
	`, strings.Join(setClauses, ", "), n, n+1)
	return scanEvent(r.DB.QueryRowContext(ctx, query, args...))
}

func (r *eventRepository) Delete(ctx context.Context, orgID, id string) error {
	query := `DELETE FROM events WHERE org_id = $1 AND id = $2`
	result, err := r.DB.ExecContext(ctx, query, orgID, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) CreateDay(ctx context.Context, day *domain.EventDay) error {
	query := `
		INSERT INTO event_days (event_id, date, label, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (event_id, date) DO UPDATE
		SET label = EXCLUDED.label, sort_order = EXCLUDED.sort_order, updated_at = EXCLUDED.updated_at
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		day.EventID, day.Date, day.Label, day.SortOrder, day.CreatedAt, day.UpdatedAt,
	).Scan(&day.ID)
}

func (r *eventRepository) GetDayByID(ctx context.Context, eventID, dayID string) (*domain.EventDay, error) {
	query := `
		SELECT id, event_id, date, label, sort_order, created_at, updated_at
		FROM event_days
		WHERE event_id = $1 AND id = $2
	`
	day := &domain.EventDay{}
	err := r.DB.QueryRowContext(ctx, query, eventID, dayID).Scan(
		&day.ID, &day.EventID, &day.Date, &day.Label, &day.SortOrder, &day.CreatedAt, &day.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return day, nil
}

func (r *eventRepository) ListDaysByEventID(ctx context.Context, eventID string) ([]*domain.EventDay, error) {
	query := `
		SELECT id, event_id, date, label, sort_order, created_at, updated_at
		FROM event_days
		WHERE event_id = $1
		ORDER BY date, sort_order
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	days := make([]*domain.EventDay, 0)
	for rows.Next() {
		day := &domain.EventDay{}
		if err := rows.Scan(&day.ID, &day.EventID, &day.Date, &day.Label, &day.SortOrder, &day.CreatedAt, &day.UpdatedAt); err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, rows.Err()
}

func (r *eventRepository) DeleteDay(ctx context.Context, eventID, dayID string) error {
	query := `DELETE FROM event_days WHERE event_id = $1 AND id = $2`
	result, err := r.DB.ExecContext(ctx, query, eventID, dayID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

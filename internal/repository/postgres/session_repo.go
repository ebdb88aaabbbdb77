package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"confprogram/internal/domain"
)

type sessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &sessionRepository{DB: db}
}

const sessionColumns = `id, event_day_id, venue_id, title, description, start_time, end_time, sort_order, version, created_at, updated_at`

func scanSession(scanner interface {
	Scan(dest ...interface{}) error
}) (*domain.ProgramSession, error) {
	s := &domain.ProgramSession{}
	var venueID sql.NullString
	var start, end domain.NullTimeOfDay
	err := scanner.Scan(
		&s.ID, &s.EventDayID, &venueID, &s.Title, &s.Description,
		&start, &end, &s.SortOrder, &s.Version, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if venueID.Valid {
		s.VenueID = &venueID.String
	}
	s.Start = start.Ptr()
	s.End = end.Ptr()
	return s, nil
}

func (r *sessionRepository) Create(ctx context.Context, sess *domain.ProgramSession) error {
	query := `
		INSERT INTO program_sessions (event_day_id, title, description, sort_order, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 1, $5, $6)
		RETURNING id, version
	`
	return r.DB.QueryRowContext(ctx, query,
		sess.EventDayID, sess.Title, sess.Description, sess.SortOrder, sess.CreatedAt, sess.UpdatedAt,
	).Scan(&sess.ID, &sess.Version)
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*domain.ProgramSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM program_sessions WHERE id = $1`
	s, err := scanSession(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *sessionRepository) ListByDayID(ctx context.Context, dayID string) ([]*domain.ProgramSession, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM program_sessions
		WHERE event_day_id = $1
		ORDER BY start_time NULLS LAST, sort_order
	`
	return r.listSessions(ctx, query, dayID)
}

func (r *sessionRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.ProgramSession, error) {
	query := `
		SELECT s.id, s.event_day_id, s.venue_id, s.title, s.description, s.start_time, s.end_time, s.sort_order, s.version, s.created_at, s.updated_at
		FROM program_sessions s
		JOIN event_days d ON d.id = s.event_day_id
		WHERE d.event_id = $1
		ORDER BY d.date, s.start_time NULLS LAST, s.sort_order
	`
	return r.listSessions(ctx, query, eventID)
}

func (r *sessionRepository) listSessions(ctx context.Context, query string, args ...interface{}) ([]*domain.ProgramSession, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	sessions := make([]*domain.ProgramSession, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *sessionRepository) UpdateContent(ctx context.Context, id string, upd domain.SessionContentUpdate) (*domain.ProgramSession, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	n := 1
	if upd.Title != nil {
		setClauses = append(setClauses, fmt.Sprintf("title = $%d", n))
		args = append(args, *upd.Title)
		n++
	}
	if upd.Description != nil {
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", n))
		args = append(args, *upd.Description)
		n++
	}
	if upd.SortOrder != nil {
		setClauses = append(setClauses, fmt.Sprintf("sort_order = $%d", n))
		args = append(args, *upd.SortOrder)
		n++
	}
	if n == 1 {
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE program_sessions SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), n, sessionColumns)
	s, err := scanSession(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *sessionRepository) UpdateSchedule(ctx context.Context, id string, venueID *string, start, end domain.NullTimeOfDay, expectedVersion int) (*domain.ProgramSession, error) {
	query := `
		UPDATE program_sessions
		SET venue_id = $1, start_time = $2, end_time = $3, version = version + 1, updated_at = NOW()
		WHERE id = $4 AND version = $5
		RETURNING ` + sessionColumns + `
	`
	s, err := scanSession(r.DB.QueryRowContext(ctx, query, venueID, start, end, id, expectedVersion))
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	// Zero rows means either the session is gone or the version is
	// stale. Distinguish the two for the caller.
	var exists bool
	checkErr := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM program_sessions WHERE id = $1)`, id,
	).Scan(&exists)
	if checkErr != nil {
		return nil, checkErr
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	return nil, domain.ErrVersionMismatch
}

func (r *sessionRepository) ApplySchedule(ctx context.Context, assignments []domain.ScheduleAssignment) error {
	if len(assignments) == 0 {
		return nil
	}
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schedule batch: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const update = `
		UPDATE program_sessions
		SET venue_id = $1, start_time = $2, end_time = $3, version = version + 1, updated_at = NOW()
		WHERE id = $4 AND version = $5
	`
	for _, a := range assignments {
		result, err := tx.ExecContext(ctx, update, a.VenueID, a.Start, a.End, a.SessionID, a.ExpectedVersion)
		if err != nil {
			return fmt.Errorf("apply schedule for session %s: %w", a.SessionID, err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			var exists bool
			if err := tx.QueryRowContext(ctx,
				`SELECT EXISTS(SELECT 1 FROM program_sessions WHERE id = $1)`, a.SessionID,
			).Scan(&exists); err != nil {
				return err
			}
			if !exists {
				return domain.ErrNotFound
			}
			return domain.ErrVersionMismatch
		}
	}
	return tx.Commit()
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM program_sessions WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

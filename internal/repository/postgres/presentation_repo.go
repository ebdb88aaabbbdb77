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

type presentationRepository struct {
	DB *sql.DB
}

func NewPresentationRepository(db *sql.DB) domain.PresentationRepository {
	return &presentationRepository{DB: db}
}

const presentationColumns = `id, session_id, title, abstract, speaker_ids, start_time, end_time, sort_order, version, created_at, updated_at`

func scanPresentation(scanner interface {
	Scan(dest ...interface{}) error
}) (*domain.Presentation, error) {
	p := &domain.Presentation{}
	var start, end domain.NullTimeOfDay
	err := scanner.Scan(
		&p.ID, &p.SessionID, &p.Title, &p.Abstract, pq.Array(&p.SpeakerIDs),
		&start, &end, &p.SortOrder, &p.Version, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if p.SpeakerIDs == nil {
		p.SpeakerIDs = []string{}
	}
	p.Start = start.Ptr()
	p.End = end.Ptr()
	return p, nil
}

func (r *presentationRepository) Create(ctx context.Context, p *domain.Presentation) error {
	query := `
		INSERT INTO presentations (session_id, title, abstract, speaker_ids, sort_order, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 1, $6, $7)
		RETURNING id, version
	`
	return r.DB.QueryRowContext(ctx, query,
		p.SessionID, p.Title, p.Abstract, pq.Array(p.SpeakerIDs), p.SortOrder, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID, &p.Version)
}

func (r *presentationRepository) GetByID(ctx context.Context, id string) (*domain.Presentation, error) {
	query := `SELECT ` + presentationColumns + ` FROM presentations WHERE id = $1`
	p, err := scanPresentation(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *presentationRepository) ListBySessionID(ctx context.Context, sessionID string) ([]*domain.Presentation, error) {
	query := `
		SELECT ` + presentationColumns + `
		FROM presentations
		WHERE session_id = $1
		ORDER BY start_time NULLS LAST, sort_order
	`
	rows, err := r.DB.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	presentations := make([]*domain.Presentation, 0)
	for rows.Next() {
		p, err := scanPresentation(rows)
		if err != nil {
			return nil, err
		}
		presentations = append(presentations, p)
	}
	return presentations, rows.Err()
}

func (r *presentationRepository) UpdateContent(ctx context.Context, id string, title, abstract *string, speakerIDs []string) (*domain.Presentation, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	n := 1
	if title != nil {
		setClauses = append(setClauses, fmt.Sprintf("title = $%d", n))
		args = append(args, *title)
		n++
	}
	if abstract != nil {
		setClauses = append(setClauses, fmt.Sprintf("abstract = $%d", n))
		args = append(args, *abstract)
		n++
	}
	if speakerIDs != nil {
		setClauses = append(setClauses, fmt.Sprintf("speaker_ids = $%d", n))
		args = append(args, pq.Array(speakerIDs))
		n++
	}
	if n == 1 {
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE presentations SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), n, presentationColumns)
	p, err := scanPresentation(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *presentationRepository) UpdateSchedule(ctx context.Context, id string, start, end domain.NullTimeOfDay, expectedVersion int) (*domain.Presentation, error) {
	query := `
		UPDATE presentations
		SET start_time = $1, end_time = $2, version = version + 1, updated_at = NOW()
		WHERE id = $3 AND version = $4
		RETURNING ` + presentationColumns + `
	`
	p, err := scanPresentation(r.DB.QueryRowContext(ctx, query, start, end, id, expectedVersion))
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	var exists bool
	checkErr := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM presentations WHERE id = $1)`, id,
	).Scan(&exists)
	if checkErr != nil {
		return nil, checkErr
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	return nil, domain.ErrVersionMismatch
}

func (r *presentationRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM presentations WHERE id = $1`
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

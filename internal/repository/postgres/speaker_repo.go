package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"confprogram/internal/domain"
)

type speakerRepository struct {
	DB *sql.DB
}

func NewSpeakerRepository(db *sql.DB) domain.SpeakerRepository {
	return &speakerRepository{DB: db}
}

const speakerColumns = `id, event_id, first_name, last_name, bio, tag_line, company, profile_picture, is_keynote, created_at, updated_at`

func scanSpeaker(scanner interface {
	Scan(dest ...interface{}) error
}) (*domain.Speaker, error) {
	sp := &domain.Speaker{}
	err := scanner.Scan(
		&sp.ID, &sp.EventID, &sp.FirstName, &sp.LastName, &sp.Bio, &sp.TagLine,
		&sp.Company, &sp.ProfilePicture, &sp.IsKeynote, &sp.CreatedAt, &sp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	sp.FullName = sp.FirstName + " " + sp.LastName
	return sp, nil
}

func (r *speakerRepository) Create(ctx context.Context, sp *domain.Speaker) error {
	query := `
		INSERT INTO speakers (event_id, first_name, last_name, bio, tag_line, company, profile_picture, is_keynote, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		sp.EventID, sp.FirstName, sp.LastName, sp.Bio, sp.TagLine, sp.Company,
		sp.ProfilePicture, sp.IsKeynote, sp.CreatedAt, sp.UpdatedAt,
	).Scan(&sp.ID)
}

func (r *speakerRepository) GetByID(ctx context.Context, eventID, id string) (*domain.Speaker, error) {
	query := `SELECT ` + speakerColumns + ` FROM speakers WHERE event_id = $1 AND id = $2`
	sp, err := scanSpeaker(r.DB.QueryRowContext(ctx, query, eventID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return sp, nil
}

func (r *speakerRepository) List(ctx context.Context, eventID, search string, p domain.PaginationParams) ([]*domain.Speaker, int, error) {
	where := `event_id = $1`
	args := []interface{}{eventID}
	if search != "" {
		where += ` AND (first_name || ' ' || last_name) ILIKE $2`
		args = append(args, "%"+search+"%")
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM speakers WHERE ` + where
	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	n := len(args)
	query := fmt.Sprintf(`
		SELECT %s FROM speakers
		WHERE %s
		ORDER BY last_name, first_name
		LIMIT $%d OFFSET $%d
	`, speakerColumns, where, n+1, n+2)
	args = append(args, p.Limit(), p.Offset())

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	speakers := make([]*domain.Speaker, 0)
	for rows.Next() {
		sp, err := scanSpeaker(rows)
		if err != nil {
			return nil, 0, err
		}
		speakers = append(speakers, sp)
	}
	return speakers, total, rows.Err()
}

func (r *speakerRepository) Update(ctx context.Context, eventID, id string, upd domain.SpeakerUpdate) (*domain.Speaker, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	n := 1
	add := func(col string, val interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, n))
		args = append(args, val)
		n++
	}
	if upd.FirstName != nil {
		add("first_name", *upd.FirstName)
	}
	if upd.LastName != nil {
		add("last_name", *upd.LastName)
	}
	if upd.Bio != nil {
		add("bio", *upd.Bio)
	}
	if upd.TagLine != nil {
		add("tag_line", *upd.TagLine)
	}
	if upd.Company != nil {
		add("company", *upd.Company)
	}
	if upd.ProfilePicture != nil {
		add("profile_picture", *upd.ProfilePicture)
	}
	if upd.IsKeynote != nil {
		add("is_keynote", *upd.IsKeynote)
	}
	if n == 1 {
		return r.GetByID(ctx, eventID, id)
	}
	args = append(args, eventID, id)
	query := fmt.Sprintf(`
		UPDATE speakers SET %s
		WHERE event_id = $%d AND id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), n, n+1, speakerColumns)
	sp, err := scanSpeaker(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return sp, nil
}

func (r *speakerRepository) Delete(ctx context.Context, eventID, id string) error {
	query := `DELETE FROM speakers WHERE event_id = $1 AND id = $2`
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

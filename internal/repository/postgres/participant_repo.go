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

type participantRepository struct {
	DB *sql.DB
}

func NewParticipantRepository(db *sql.DB) domain.ParticipantRepository {
	return &participantRepository{DB: db}
}

const participantColumns = `id, event_id, email, first_name, last_name, company, notes, created_at, updated_at`

func scanParticipant(scanner interface {
	Scan(dest ...interface{}) error
}) (*domain.Participant, error) {
	p := &domain.Participant{}
	err := scanner.Scan(
		&p.ID, &p.EventID, &p.Email, &p.FirstName, &p.LastName, &p.Company,
		&p.Notes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *participantRepository) Create(ctx context.Context, p *domain.Participant) error {
	query := `
		INSERT INTO participants (event_id, email, first_name, last_name, company, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		p.EventID, p.Email, p.FirstName, p.LastName, p.Company, p.Notes, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *participantRepository) GetByID(ctx context.Context, eventID, id string) (*domain.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE event_id = $1 AND id = $2`
	p, err := scanParticipant(r.DB.QueryRowContext(ctx, query, eventID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *participantRepository) List(ctx context.Context, eventID, search string, params domain.PaginationParams) ([]*domain.Participant, int, error) {
	where := `event_id = $1`
	args := []interface{}{eventID}
	if search != "" {
		where += ` AND (email ILIKE $2 OR (first_name || ' ' || last_name) ILIKE $2)`
		args = append(args, "%"+search+"%")
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM participants WHERE ` + where
	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	n := len(args)
	query := fmt.Sprintf(`
		SELECT %s FROM participants
		WHERE %s
		ORDER BY last_name, first_name, email
		LIMIT $%d OFFSET $%d
	`, participantColumns, where, n+1, n+2)
	args = append(args, params.Limit(), params.Offset())

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	participants := make([]*domain.Participant, 0)
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, 0, err
		}
		participants = append(participants, p)
	}
	return participants, total, rows.Err()
}

func (r *participantRepository) Update(ctx context.Context, eventID, id string, upd domain.ParticipantUpdate) (*domain.Participant, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	n := 1
	add := func(col string, val interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, n))
		args = append(args, val)
		n++
	}
	if upd.Email != nil {
		add("email", *upd.Email)
	}
	if upd.FirstName != nil {
		add("first_name", *upd.FirstName)
	}
	if upd.LastName != nil {
		add("last_name", *upd.LastName)
	}
	if upd.Company != nil {
		add("company", *upd.Company)
	}
	if upd.Notes != nil {
		add("notes", *upd.Notes)
	}
	if n == 1 {
		return r.GetByID(ctx, eventID, id)
	}
	args = append(args, eventID, id)
	query := fmt.Sprintf(`
		UPDATE participants SET %s
		WHERE event_id = $%d AND id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), n, n+1, participantColumns)
	p, err := scanParticipant(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, domain.ErrDuplicateEmail
		}
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *participantRepository) Delete(ctx context.Context, eventID, id string) error {
	query := `DELETE FROM participants WHERE event_id = $1 AND id = $2`
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

func (r *participantRepository) CreateInvitation(ctx context.Context, inv *domain.ParticipantInvitation) error {
	query := `
		INSERT INTO participant_invitations (event_id, email, sent_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, inv.EventID, inv.Email, inv.SentAt).Scan(&inv.ID)
}

func (r *participantRepository) ListInvitations(ctx context.Context, eventID string) ([]*domain.ParticipantInvitation, error) {
	query := `
		SELECT id, event_id, email, sent_at
		FROM participant_invitations
		WHERE event_id = $1
		ORDER BY sent_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	invitations := make([]*domain.ParticipantInvitation, 0)
	for rows.Next() {
		inv := &domain.ParticipantInvitation{}
		if err := rows.Scan(&inv.ID, &inv.EventID, &inv.Email, &inv.SentAt); err != nil {
			return nil, err
		}
		invitations = append(invitations, inv)
	}
	return invitations, rows.Err()
}

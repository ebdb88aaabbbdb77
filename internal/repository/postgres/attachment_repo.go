package postgres

import (
	"context"
	"database/sql"
	"errors"

	"confprogram/internal/domain"
)

type attachmentRepository struct {
	DB *sql.DB
}

func NewAttachmentRepository(db *sql.DB) domain.AttachmentRepository {
	return &attachmentRepository{DB: db}
}

func (r *attachmentRepository) Create(ctx context.Context, a *domain.Attachment) error {
	query := `
		INSERT INTO attachments (owner_type, owner_id, file_name, content_type, size, storage_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		string(a.OwnerType), a.OwnerID, a.FileName, a.ContentType, a.Size, a.StorageKey, a.CreatedAt,
	).Scan(&a.ID)
}

func (r *attachmentRepository) GetByID(ctx context.Context, id string) (*domain.Attachment, error) {
	query := `
		SELECT id, owner_type, owner_id, file_name, content_type, size, storage_key, created_at
		FROM attachments
		WHERE id = $1
	`
	a := &domain.Attachment{}
	var ownerType string
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &ownerType, &a.OwnerID, &a.FileName, &a.ContentType, &a.Size, &a.StorageKey, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	a.OwnerType = domain.AttachmentOwnerType(ownerType)
	return a, nil
}

func (r *attachmentRepository) ListByOwner(ctx context.Context, ownerType domain.AttachmentOwnerType, ownerID string) ([]*domain.Attachment, error) {
	query := `
		SELECT id, owner_type, owner_id, file_name, content_type, size, storage_key, created_at
		FROM attachments
		WHERE owner_type = $1 AND owner_id = $2
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, string(ownerType), ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	attachments := make([]*domain.Attachment, 0)
	for rows.Next() {
		a := &domain.Attachment{}
		var ot string
		if err := rows.Scan(&a.ID, &ot, &a.OwnerID, &a.FileName, &a.ContentType, &a.Size, &a.StorageKey, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.OwnerType = domain.AttachmentOwnerType(ot)
		attachments = append(attachments, a)
	}
	return attachments, rows.Err()
}

func (r *attachmentRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM attachments WHERE id = $1`
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

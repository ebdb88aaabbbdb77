package domain

import (
	"context"
	"fmt"
	"time"
)

// AttachmentOwnerType is the closed set of entities an attachment can
// belong to. Requests carry one of these literal strings; dispatch is
// an explicit switch, never a type name constructed from user input.
type AttachmentOwnerType string

const (
	OwnerParticipant  AttachmentOwnerType = "participant"
	OwnerSponsor      AttachmentOwnerType = "sponsor"
	OwnerPresentation AttachmentOwnerType = "presentation"
	OwnerEvent        AttachmentOwnerType = "event"
)

// ParseAttachmentOwnerType validates s against the closed owner set.
func ParseAttachmentOwnerType(s string) (AttachmentOwnerType, error) {
	switch AttachmentOwnerType(s) {
	case OwnerParticipant, OwnerSponsor, OwnerPresentation, OwnerEvent:
		return AttachmentOwnerType(s), nil
	}
	return "", fmt.Errorf("%w: unknown attachment owner type %q", ErrInvalidInput, s)
}

// Attachment is uploaded-file metadata tied to one owning entity. The
// bytes themselves live behind StorageKey in an external store; this
// service only tracks and deletes the metadata row.
// swagger:model Attachment
type Attachment struct {
	ID          string              `json:"id"`
	OwnerType   AttachmentOwnerType `json:"owner_type"`
	OwnerID     string              `json:"owner_id"`
	FileName    string              `json:"file_name"`
	ContentType string              `json:"content_type"`
	Size        int64               `json:"size"`
	StorageKey  string              `json:"storage_key"`
	CreatedAt   time.Time           `json:"created_at"`
}

// AttachmentRepository defines storage for attachment metadata.
type AttachmentRepository interface {
	Create(ctx context.Context, a *Attachment) error
	GetByID(ctx context.Context, id string) (*Attachment, error)
	ListByOwner(ctx context.Context, ownerType AttachmentOwnerType, ownerID string) ([]*Attachment, error)
	Delete(ctx context.Context, id string) error
}

// AttachmentService registers and removes attachment metadata after
// verifying, per owner type, that the owning entity exists in the
// caller's organization.
type AttachmentService interface {
	Register(ctx context.Context, orgID, eventID, callerID string, a *Attachment) error
	ListByOwner(ctx context.Context, orgID, eventID, callerID string, ownerType AttachmentOwnerType, ownerID string) ([]*Attachment, error)
	Delete(ctx context.Context, orgID, eventID, attachmentID, callerID string) error
}

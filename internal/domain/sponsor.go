package domain

import (
	"context"
	"time"
)

// Sponsor tiers, highest first.
const (
	SponsorTierPlatinum = "platinum"
	SponsorTierGold     = "gold"
	SponsorTierSilver   = "silver"
	SponsorTierBronze   = "bronze"
)

// ValidSponsorTier reports whether tier names a known sponsor tier.
func ValidSponsorTier(tier string) bool {
	switch tier {
	case SponsorTierPlatinum, SponsorTierGold, SponsorTierSilver, SponsorTierBronze:
		return true
	}
	return false
}

// Sponsor represents an event sponsor.
// swagger:model Sponsor
type Sponsor struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Name      string    `json:"name"`
	Tier      string    `json:"tier"`
	Website   string    `json:"website"`
	Logo      string    `json:"logo"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSponsor returns a new Sponsor. ID is set by the repository on create.
func NewSponsor(eventID, name, tier, website, logo string, sortOrder int, createdAt, updatedAt time.Time) *Sponsor {
	return &Sponsor{
		EventID:   eventID,
		Name:      name,
		Tier:      tier,
		Website:   website,
		Logo:      logo,
		SortOrder: sortOrder,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// SponsorUpdate carries optional sponsor fields; nil means unchanged.
type SponsorUpdate struct {
	Name      *string
	Tier      *string
	Website   *string
	Logo      *string
	SortOrder *int
}

// SponsorRepository defines storage for sponsors.
type SponsorRepository interface {
	Create(ctx context.Context, sp *Sponsor) error
	GetByID(ctx context.Context, eventID, id string) (*Sponsor, error)
	// ListByEventID returns sponsors ordered by tier rank, then sort order.
	ListByEventID(ctx context.Context, eventID string) ([]*Sponsor, error)
	Update(ctx context.Context, eventID, id string, upd SponsorUpdate) (*Sponsor, error)
	Delete(ctx context.Context, eventID, id string) error
}

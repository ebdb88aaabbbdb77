package domain

import "context"

// SpeakerService defines business operations on speakers.
type SpeakerService interface {
	CreateSpeaker(ctx context.Context, orgID, eventID, callerID string, sp *Speaker) error
	GetSpeaker(ctx context.Context, orgID, eventID, speakerID, callerID string) (*Speaker, error)
	ListSpeakers(ctx context.Context, orgID, eventID, callerID, search string, p PaginationParams) ([]*Speaker, int, error)
	UpdateSpeaker(ctx context.Context, orgID, eventID, speakerID, callerID string, upd SpeakerUpdate) (*Speaker, error)
	DeleteSpeaker(ctx context.Context, orgID, eventID, speakerID, callerID string) error
}

// SponsorService defines business operations on sponsors.
type SponsorService interface {
	CreateSponsor(ctx context.Context, orgID, eventID, callerID string, sp *Sponsor) error
	GetSponsor(ctx context.Context, orgID, eventID, sponsorID, callerID string) (*Sponsor, error)
	ListSponsors(ctx context.Context, orgID, eventID, callerID string) ([]*Sponsor, error)
	UpdateSponsor(ctx context.Context, orgID, eventID, sponsorID, callerID string, upd SponsorUpdate) (*Sponsor, error)
	DeleteSponsor(ctx context.Context, orgID, eventID, sponsorID, callerID string) error
}

// ParticipantService defines business operations on participants,
// including invitation emails.
type ParticipantService interface {
	CreateParticipant(ctx context.Context, orgID, eventID, callerID string, p *Participant) error
	GetParticipant(ctx context.Context, orgID, eventID, participantID, callerID string) (*Participant, error)
	ListParticipants(ctx context.Context, orgID, eventID, callerID, search string, pg PaginationParams) ([]*Participant, int, error)
	UpdateParticipant(ctx context.Context, orgID, eventID, participantID, callerID string, upd ParticipantUpdate) (*Participant, error)
	DeleteParticipant(ctx context.Context, orgID, eventID, participantID, callerID string) error
	// SendInvitations emails each address an invitation and persists a
	// record per sent email. Returns the sent count and the addresses
	// that failed.
	SendInvitations(ctx context.Context, orgID, eventID, callerID string, emails []string) (int, []string, error)
	ListInvitations(ctx context.Context, orgID, eventID, callerID string) ([]*ParticipantInvitation, error)
}

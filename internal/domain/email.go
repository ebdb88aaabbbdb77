package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// ParticipantInviteEmailData holds data for the participant invitation email.
type ParticipantInviteEmailData struct {
	Email     string
	EventName string
	OrgName   string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendParticipantInvitation(ctx context.Context, data *ParticipantInviteEmailData) error
}

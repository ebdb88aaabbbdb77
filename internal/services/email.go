package services

import (
	"context"
	"fmt"
	"log/slog"

	"confprogram/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendParticipantInvitation sends the participant invitation email
// using the "participant_invite" template.
func (s *emailService) SendParticipantInvitation(ctx context.Context, data *domain.ParticipantInviteEmailData) error {
	if data == nil {
		return fmt.Errorf("participant invitation data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("participant_invite", data)
	if err != nil {
		return fmt.Errorf("failed to render participant_invite template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send invitation email: %w", err)
	}
	s.logger.Info("participant invitation sent", "email", data.Email, "event", data.EventName)
	return nil
}

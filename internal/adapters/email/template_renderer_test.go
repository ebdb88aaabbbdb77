package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confprogram/internal/domain"
)

func TestTemplateRenderer_ParticipantInvite(t *testing.T) {
	r := NewTemplateRenderer()

	data := &domain.ParticipantInviteEmailData{
		Email:     "guest@example.com",
		EventName: "GopherCon 2026",
		OrgName:   "Acme Events",
	}
	subject, html, text, err := r.Render("participant_invite", data)
	require.NoError(t, err)

	assert.Equal(t, "You are invited to GopherCon 2026", subject)
	assert.Contains(t, html, "GopherCon 2026")
	assert.Contains(t, html, "Acme Events")
	assert.Contains(t, text, "guest@example.com")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	r := NewTemplateRenderer()

	_, _, _, err := r.Render("no_such_template", nil)
	assert.Error(t, err)
}

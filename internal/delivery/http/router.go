package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"confprogram/internal/delivery/http/controllers"
	"confprogram/internal/delivery/http/middleware"
	"confprogram/internal/domain"
)

// Controllers bundles every controller the router mounts.
type Controllers struct {
	Auth         *controllers.AuthController
	Organization *controllers.OrganizationController
	Event        *controllers.EventController
	Venue        *controllers.VenueController
	Program      *controllers.ProgramController
	Speaker      *controllers.SpeakerController
	Sponsor      *controllers.SponsorController
	Participant  *controllers.ParticipantController
	Attachment   *controllers.AttachmentController
	Export       *controllers.ExportController
}

// NewRouter initializes the HTTP router with all application routes.
// Everything except signup, login, and swagger requires a Bearer token.
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)

	// Auth
	mux.HandleFunc("POST /auth/signup", c.Auth.SignUp)
	mux.HandleFunc("POST /auth/login", c.Auth.Login)

	// Organizations
	mux.HandleFunc("POST /orgs", auth(c.Organization.Create))
	mux.HandleFunc("GET /orgs", auth(c.Organization.ListMine))
	mux.HandleFunc("GET /orgs/{orgID}", auth(c.Organization.Get))
	mux.HandleFunc("POST /orgs/{orgID}/members", auth(c.Organization.AddMember))
	mux.HandleFunc("GET /orgs/{orgID}/members", auth(c.Organization.ListMembers))
	mux.HandleFunc("DELETE /orgs/{orgID}/members/{userID}", auth(c.Organization.RemoveMember))

	// Events and days
	mux.HandleFunc("POST /orgs/{orgID}/events", auth(c.Event.Create))
	mux.HandleFunc("GET /orgs/{orgID}/events", auth(c.Event.List))
	mux.HandleFunc("GET /orgs/{orgID}/events/{eventID}", auth(c.Event.Get))
	mux.HandleFunc("PATCH /orgs/{orgID}/events/{eventID}", auth(c.Event.Update))
	mux.HandleFunc("DELETE /orgs/{orgID}/events/{eventID}", auth(c.Event.Delete))
	mux.HandleFunc("POST /orgs/{orgID}/events/{eventID}/days", auth(c.Event.AddDay))
	mux.HandleFunc("GET /orgs/{orgID}/events/{eventID}/days", auth(c.Event.ListDays))
	mux.HandleFunc("DELETE /orgs/{orgID}/events/{eventID}/days/{dayID}", auth(c.Event.DeleteDay))

	// Venues
	mux.HandleFunc("POST /orgs/{orgID}/events/{eventID}/venues", auth(c.Venue.Create))
	mux.HandleFunc("GET /orgs/{orgID}/events/{eventID}/venues", auth(c.Venue.List))
	mux.HandleFunc("GET /orgs/{orgID}/events/{eventID}/venues/{venueID}", auth(c.Venue.Get))
	mux.HandleFunc("PATCH /orgs/{orgID}/events/{eventID}/venues/{venueID}", auth(c.Venue.Update))
	mux.HandleFunc("DELETE /orgs/{orgID}/events/{eventID}/venues/{venueID}", auth(c.Venue.Delete))

	// Program: sessions, presentations, conflicts, auto-arrange
	mux.HandleFunc("POST /orgs/{orgID}/events/{eventID}/days/{dayID}/sessions", auth(c.Program.CreateSession))
	mux.HandleFunc("GET /orgs/{orgID}/events/{eventID}/days/{dayID}/sessions", auth(c.Program.ListDaySessions))
	mux.HandleFunc("GET /orgs/{orgID}/events/{eventID}/sessions/{sessionID}", auth(c.Program.GetSession))
	mux.HandleFunc("PATCH /orgs/{orgID}/events/{eventID}/sessions/{sessionID}", auth(c.Program.UpdateSessionContent))
	mux.HandleFunc("DELETE /orgs/{orgID}/events/{eventID}/sessions/{sessionID}", auth(c.Program.DeleteSession))
	mux.HandleFunc("POST /orgs/{orgID}/events/{eventID}/sessions/{sessionID}/move", auth(c.Program.MoveSession))
	mux.HandleFunc("POST /orgs/{orgID}/events/{eventID}/sessions/{sessionID}/presentations", auth(c.Program.CreatePresentation))
	mux.HandleFunc("PATCH /orgs/{orgID}/events/{eventID}/presentations/{presentationID}", auth(c.Program.UpdatePresentation))
	mux.HandleFunc("DELETE /orgs/{orgID}/events/{eventID}/presentations/{presentationID}", auth(c.Program.DeletePresentation))
	mux.HandleFunc("POST /orgs/{orgID}/events/{eventID}/presentations/{presentationID}/move", auth(c.Program.MovePresentation))
	mux.HandleFunc("GET /orgs/{orgID}/events/{eventID}/days/{dayID}/conflicts", auth(c.Program.DayConflicts))
	mux.HandleFunc("POST /orgs/{orgID}/events/{eventID}/days/{dayID}/auto-arrange", auth(c.Program.AutoArrange))

	// Speakers
	mux.HandleFunc("POST /orgs/{orgID}/events/{eventID}/speakers", auth(c.Speaker.Create))
	mux.HandleFunc("GET /orgs/{orgID}/events/{eventID}/speakers", auth(c.Speaker.List))
	mux.HandleFunc("GET /orgs/{orgID}/events/{eventID}/speakers/{speakerID}", auth(c.Speaker.Get))
	mux.HandleFunc("PATCH /orgs/{orgID}/events/{eventID}/speakers/{speakerID}", auth(c.Speaker.Update))
	mux.HandleFunc("DELETE /orgs/{orgID}/events/{eventID}/speakers/{speakerID}", auth(c.Speaker.Delete))

	// Sponsors
	mux.HandleFunc("POST /orgs/{orgID}/events/{eventID}/sponsors", auth(c.Sponsor.Create))
	mux.HandleFunc("GET /orgs/{orgID}/events/{eventID}/sponsors", auth(c.Sponsor.List))
	mux.HandleFunc("GET /orgs/{orgID}/events/{eventID}/sponsors/{sponsorID}", auth(c.Sponsor.Get))
	mux.HandleFunc("PATCH /orgs/{orgID}/events/{eventID}/sponsors/{sponsorID}", auth(c.Sponsor.Update))
	mux.HandleFunc("DELETE /orgs/{orgID}/events/{eventID}/sponsors/{sponsorID}", auth(c.Sponsor.Delete))

	// Participants and invitations
	mux.HandleFunc("POST /orgs/{orgID}/events/{eventID}/participants", auth(c.Participant.Create))
	mux.HandleFunc("GET /orgs/{orgID}/events/{eventID}/participants", auth(c.Participant.List))
	mux.HandleFunc("POST /orgs/{orgID}/events/{eventID}/participants/invitations", auth(c.Participant.SendInvitations))
	mux.HandleFunc("GET /orgs/{orgID}/events/{eventID}/participants/invitations", auth(c.Participant.ListInvitations))
	mux.HandleFunc("GET /orgs/{orgID}/events/{eventID}/participants/{participantID}", auth(c.Participant.Get))
	mux.HandleFunc("PATCH /orgs/{orgID}/events/{eventID}/participants/{participantID}", auth(c.Participant.Update))
	mux.HandleFunc("DELETE /orgs/{orgID}/events/{eventID}/participants/{participantID}", auth(c.Participant.Delete))

	// Attachments
	mux.HandleFunc("POST /orgs/{orgID}/events/{eventID}/attachments", auth(c.Attachment.Register))
	mux.HandleFunc("GET /orgs/{orgID}/events/{eventID}/attachments", auth(c.Attachment.ListByOwner))
	mux.HandleFunc("DELETE /orgs/{orgID}/events/{eventID}/attachments/{attachmentID}", auth(c.Attachment.Delete))

	// Export
	mux.HandleFunc("GET /orgs/{orgID}/events/{eventID}/export/program.pdf", auth(c.Export.ProgramPDF))
	mux.HandleFunc("GET /orgs/{orgID}/events/{eventID}/export/program.csv", auth(c.Export.ProgramCSV))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

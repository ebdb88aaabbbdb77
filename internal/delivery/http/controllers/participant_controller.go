package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"confprogram/internal/delivery/http/helpers"
	"confprogram/internal/domain"
)

// CreateParticipantRequest is the request body for POST .../participants.
type CreateParticipantRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company"`
	Notes     string `json:"notes"`
}

// Validate implements helpers.Validator.
func (c CreateParticipantRequest) Validate() []string {
	var errs []string
	email := strings.TrimSpace(strings.ToLower(c.Email))
	if email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegexp.MatchString(email) {
		errs = append(errs, "invalid email format")
	}
	return errs
}

// UpdateParticipantRequest is the request body for PATCH .../participants/{participantID}.
type UpdateParticipantRequest struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Company   *string `json:"company"`
	Notes     *string `json:"notes"`
}

// Validate implements helpers.Validator.
func (u UpdateParticipantRequest) Validate() []string {
	if u.Email != nil && !emailRegexp.MatchString(strings.TrimSpace(strings.ToLower(*u.Email))) {
		return []string{"invalid email format"}
	}
	return nil
}

// SendInvitationsRequest is the request body for POST .../participants/invitations.
type SendInvitationsRequest struct {
	Emails []string `json:"emails"`
}

// Validate implements helpers.Validator.
func (s SendInvitationsRequest) Validate() []string {
	if len(s.Emails) == 0 {
		return []string{"emails is required"}
	}
	for _, e := range s.Emails {
		if !emailRegexp.MatchString(strings.TrimSpace(strings.ToLower(e))) {
			return []string{"invalid email format: " + e}
		}
	}
	return nil
}

// SendInvitationsResponse is the data payload for POST .../participants/invitations.
type SendInvitationsResponse struct {
	Sent   int      `json:"sent"`
	Failed []string `json:"failed"`
}

// ListParticipantsResponse is the data payload for GET .../participants.
type ListParticipantsResponse struct {
	Participants []*domain.Participant  `json:"participants"`
	Pagination   helpers.PaginationMeta `json:"pagination"`
}

type ParticipantController struct {
	Logger  *slog.Logger
	Service domain.ParticipantService
}

func NewParticipantController(logger *slog.Logger, svc domain.ParticipantService) *ParticipantController {
	return &ParticipantController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Create a participant
// @Tags participants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Param body body CreateParticipantRequest true "Participant data"
// @Success 201 {object} helpers.APIResponse "data contains the created participant"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (email already registered for event)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/participants [post]
func (c *ParticipantController) Create(w http.ResponseWriter, r *http.Request) {
	orgID, eventID, userID, ok := eventScope(w, r)
	if !ok {
		return
	}
	var req CreateParticipantRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	now := time.Now()
	email := strings.TrimSpace(strings.ToLower(req.Email))
	p := domain.NewParticipant(eventID, email, req.FirstName, req.LastName, req.Company, req.Notes, now, now)
	if err := c.Service.CreateParticipant(r.Context(), orgID, eventID, userID, p); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, p)
}

// Get godoc
// @Summary Get a participant
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Param participantID path string true "Participant ID"
// @Success 200 {object} helpers.APIResponse "data contains the participant"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/participants/{participantID} [get]
func (c *ParticipantController) Get(w http.ResponseWriter, r *http.Request) {
	orgID, eventID, userID, ok := eventScope(w, r)
	if !ok {
		return
	}
	participantID := r.PathValue("participantID")
	if participantID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing participantID")
		return
	}
	p, err := c.Service.GetParticipant(r.Context(), orgID, eventID, participantID, userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, p)
}

// List godoc
// @Summary List participants, paginated
// @Description Optional search matches email and name, case-insensitive.
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Param search query string false "Email or name substring filter"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains participants and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/participants [get]
func (c *ParticipantController) List(w http.ResponseWriter, r *http.Request) {
	orgID, eventID, userID, ok := eventScope(w, r)
	if !ok {
		return
	}
	params := helpers.ParsePagination(r)
	search := strings.TrimSpace(r.URL.Query().Get("search"))
	participants, total, err := c.Service.ListParticipants(r.Context(), orgID, eventID, userID, search, params)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListParticipantsResponse{
		Participants: participants,
		Pagination:   helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// Update godoc
// @Summary Update a participant
// @Description Optional fields omitted from the body are unchanged.
// @Tags participants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Param participantID path string true "Participant ID"
// @Param body body UpdateParticipantRequest true "Fields to update (all optional)"
// @Success 200 {object} helpers.APIResponse "data contains the updated participant"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (email already registered for event)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/participants/{participantID} [patch]
func (c *ParticipantController) Update(w http.ResponseWriter, r *http.Request) {
	orgID, eventID, userID, ok := eventScope(w, r)
	if !ok {
		return
	}
	participantID := r.PathValue("participantID")
	if participantID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing participantID")
		return
	}
	var req UpdateParticipantRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	upd := domain.ParticipantUpdate{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Company:   req.Company,
		Notes:     req.Notes,
	}
	p, err := c.Service.UpdateParticipant(r.Context(), orgID, eventID, participantID, userID, upd)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, p)
}

// Delete godoc
// @Summary Delete a participant
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Param participantID path string true "Participant ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/participants/{participantID} [delete]
func (c *ParticipantController) Delete(w http.ResponseWriter, r *http.Request) {
	orgID, eventID, userID, ok := eventScope(w, r)
	if !ok {
		return
	}
	participantID := r.PathValue("participantID")
	if participantID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing participantID")
		return
	}
	if err := c.Service.DeleteParticipant(r.Context(), orgID, eventID, participantID, userID); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// SendInvitations godoc
// @Summary Send invitation emails
// @Description Sends an invitation email to each address and records the sent ones. Addresses that fail are returned; the rest still go out.
// @Tags participants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Param body body SendInvitationsRequest true "Email addresses"
// @Success 200 {object} helpers.APIResponse "data contains sent count and failed addresses"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/participants/invitations [post]
func (c *ParticipantController) SendInvitations(w http.ResponseWriter, r *http.Request) {
	orgID, eventID, userID, ok := eventScope(w, r)
	if !ok {
		return
	}
	var req SendInvitationsRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	sent, failed, err := c.Service.SendInvitations(r.Context(), orgID, eventID, userID, req.Emails)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, SendInvitationsResponse{Sent: sent, Failed: failed})
}

// ListInvitations godoc
// @Summary List sent invitations
// @Description Most recently sent first.
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the invitation list"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/participants/invitations [get]
func (c *ParticipantController) ListInvitations(w http.ResponseWriter, r *http.Request) {
	orgID, eventID, userID, ok := eventScope(w, r)
	if !ok {
		return
	}
	invitations, err := c.Service.ListInvitations(r.Context(), orgID, eventID, userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, invitations)
}

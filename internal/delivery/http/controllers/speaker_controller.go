package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"confprogram/internal/delivery/http/helpers"
	"confprogram/internal/domain"
)

// CreateSpeakerRequest is the request body for POST .../speakers.
type CreateSpeakerRequest struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Bio            string `json:"bio"`
	TagLine        string `json:"tag_line"`
	Company        string `json:"company"`
	ProfilePicture string `json:"profile_picture"`
	IsKeynote      bool   `json:"is_keynote"`
}

// Validate implements helpers.Validator.
func (c CreateSpeakerRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.FirstName) == "" {
		errs = append(errs, "first_name is required")
	}
	if strings.TrimSpace(c.LastName) == "" {
		errs = append(errs, "last_name is required")
	}
	return errs
}

// UpdateSpeakerRequest is the request body for PATCH .../speakers/{speakerID}.
type UpdateSpeakerRequest struct {
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	Bio            *string `json:"bio"`
	TagLine        *string `json:"tag_line"`
	Company        *string `json:"company"`
	ProfilePicture *string `json:"profile_picture"`
	IsKeynote      *bool   `json:"is_keynote"`
}

// Validate implements helpers.Validator.
func (u UpdateSpeakerRequest) Validate() []string {
	var errs []string
	if u.FirstName != nil && strings.TrimSpace(*u.FirstName) == "" {
		errs = append(errs, "first_name must not be empty")
	}
	if u.LastName != nil && strings.TrimSpace(*u.LastName) == "" {
		errs = append(errs, "last_name must not be empty")
	}
	return errs
}

// ListSpeakersResponse is the data payload for GET .../speakers.
type ListSpeakersResponse struct {
	Speakers   []*domain.Speaker      `json:"speakers"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

type SpeakerController struct {
	Logger  *slog.Logger
	Service domain.SpeakerService
}

func NewSpeakerController(logger *slog.Logger, svc domain.SpeakerService) *SpeakerController {
	return &SpeakerController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Create a speaker
// @Tags speakers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Param body body CreateSpeakerRequest true "Speaker data"
// @Success 201 {object} helpers.APIResponse "data contains the created speaker"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/speakers [post]
func (c *SpeakerController) Create(w http.ResponseWriter, r *http.Request) {
	orgID, eventID, userID, ok := eventScope(w, r)
	if !ok {
		return
	}
	var req CreateSpeakerRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	now := time.Now()
	sp := domain.NewSpeaker(eventID, req.FirstName, req.LastName, req.Bio, req.TagLine, req.Company, req.ProfilePicture, req.IsKeynote, now, now)
	if err := c.Service.CreateSpeaker(r.Context(), orgID, eventID, userID, sp); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, sp)
}

// Get godoc
// @Summary Get a speaker
// @Tags speakers
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Param speakerID path string true "Speaker ID"
// @Success 200 {object} helpers.APIResponse "data contains the speaker"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/speakers/{speakerID} [get]
func (c *SpeakerController) Get(w http.ResponseWriter, r *http.Request) {
	orgID, eventID, userID, ok := eventScope(w, r)
	if !ok {
		return
	}
	speakerID := r.PathValue("speakerID")
	if speakerID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing speakerID")
		return
	}
	sp, err := c.Service.GetSpeaker(r.Context(), orgID, eventID, speakerID, userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sp)
}

// List godoc
// @Summary List speakers, paginated
// @Description Optional search matches first and last name, case-insensitive.
// @Tags speakers
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Param search query string false "Name substring filter"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains speakers and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/speakers [get]
func (c *SpeakerController) List(w http.ResponseWriter, r *http.Request) {
	orgID, eventID, userID, ok := eventScope(w, r)
	if !ok {
		return
	}
	params := helpers.ParsePagination(r)
	search := strings.TrimSpace(r.URL.Query().Get("search"))
	speakers, total, err := c.Service.ListSpeakers(r.Context(), orgID, eventID, userID, search, params)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListSpeakersResponse{
		Speakers:   speakers,
		Pagination: helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// Update godoc
// @Summary Update a speaker
// @Description Optional fields omitted from the body are unchanged.
// @Tags speakers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Param speakerID path string true "Speaker ID"
// @Param body body UpdateSpeakerRequest true "Fields to update (all optional)"
// @Success 200 {object} helpers.APIResponse "data contains the updated speaker"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/speakers/{speakerID} [patch]
func (c *SpeakerController) Update(w http.ResponseWriter, r *http.Request) {
	orgID, eventID, userID, ok := eventScope(w, r)
	if !ok {
		return
	}
	speakerID := r.PathValue("speakerID")
	if speakerID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing speakerID")
		return
	}
	var req UpdateSpeakerRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	upd := domain.SpeakerUpdate{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Bio:            req.Bio,
		TagLine:        req.TagLine,
		Company:        req.Company,
		ProfilePicture: req.ProfilePicture,
		IsKeynote:      req.IsKeynote,
	}
	sp, err := c.Service.UpdateSpeaker(r.Context(), orgID, eventID, speakerID, userID, upd)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sp)
}

// Delete godoc
// @Summary Delete a speaker
// @Tags speakers
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Param speakerID path string true "Speaker ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/speakers/{speakerID} [delete]
func (c *SpeakerController) Delete(w http.ResponseWriter, r *http.Request) {
	orgID, eventID, userID, ok := eventScope(w, r)
	if !ok {
		return
	}
	speakerID := r.PathValue("speakerID")
	if speakerID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing speakerID")
		return
	}
	if err := c.Service.DeleteSpeaker(r.Context(), orgID, eventID, speakerID, userID); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "deleted"})
}

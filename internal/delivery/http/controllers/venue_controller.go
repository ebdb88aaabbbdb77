package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"confprogram/internal/delivery/http/helpers"
	"confprogram/internal/delivery/http/middleware"
	"confprogram/internal/domain"
)

// CreateVenueRequest is the request body for POST /orgs/{orgID}/events/{eventID}/venues.
type CreateVenueRequest struct {
	Name      string `json:"name"`
	Capacity  int    `json:"capacity"`
	Floor     string `json:"floor"`
	Notes     string `json:"notes"`
	SortOrder int    `json:"sort_order"`
}

// Validate implements helpers.Validator.
func (c CreateVenueRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	if c.Capacity < 0 {
		errs = append(errs, "capacity must not be negative")
	}
	return errs
}

// UpdateVenueRequest is the request body for PATCH .../venues/{venueID}.
// All fields optional; omitted fields are unchanged.
type UpdateVenueRequest struct {
	Name      *string `json:"name"`
	Capacity  *int    `json:"capacity"`
	Floor     *string `json:"floor"`
	Notes     *string `json:"notes"`
	SortOrder *int    `json:"sort_order"`
}

// Validate implements helpers.Validator.
func (u UpdateVenueRequest) Validate() []string {
	var errs []string
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		errs = append(errs, "name must not be empty")
	}
	if u.Capacity != nil && *u.Capacity < 0 {
		errs = append(errs, "capacity must not be negative")
	}
	return errs
}

type VenueController struct {
	Logger  *slog.Logger
	Service domain.VenueService
}

func NewVenueController(logger *slog.Logger, svc domain.VenueService) *VenueController {
	return &VenueController{
		Logger:  logger,
		Service: svc,
	}
}

// eventScope pulls orgID/eventID path values plus the caller ID, writing
// the error response itself when something is missing.
func eventScope(w http.ResponseWriter, r *http.Request) (orgID, eventID, userID string, ok bool) {
	orgID = r.PathValue("orgID")
	eventID = r.PathValue("eventID")
	if orgID == "" || eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing orgID or eventID")
		return "", "", "", false
	}
	userID, authed := middleware.UserIDFromContext(r.Context())
	if !authed {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return "", "", "", false
	}
	return orgID, eventID, userID, true
}

// Create godoc
// @Summary Create a venue
// @Tags venues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Param body body CreateVenueRequest true "Venue data"
// @Success 201 {object} helpers.APIResponse "data contains the created venue"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/venues [post]
func (c *VenueController) Create(w http.ResponseWriter, r *http.Request) {
	orgID, eventID, userID, ok := eventScope(w, r)
	if !ok {
		return
	}
	var req CreateVenueRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	now := time.Now()
	venue := domain.NewVenue(eventID, req.Name, req.Capacity, req.Floor, req.Notes, req.SortOrder, now, now)
	if err := c.Service.CreateVenue(r.Context(), orgID, eventID, userID, venue); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, venue)
}

// Get godoc
// @Summary Get a venue
// @Tags venues
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Param venueID path string true "Venue ID"
// @Success 200 {object} helpers.APIResponse "data contains the venue"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/venues/{venueID} [get]
func (c *VenueController) Get(w http.ResponseWriter, r *http.Request) {
	orgID, eventID, userID, ok := eventScope(w, r)
	if !ok {
		return
	}
	venueID := r.PathValue("venueID")
	if venueID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing venueID")
		return
	}
	venue, err := c.Service.GetVenue(r.Context(), orgID, eventID, venueID, userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, venue)
}

// List godoc
// @Summary List venues of an event
// @Tags venues
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the venue list"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/venues [get]
func (c *VenueController) List(w http.ResponseWriter, r *http.Request) {
	orgID, eventID, userID, ok := eventScope(w, r)
	if !ok {
		return
	}
	venues, err := c.Service.ListVenues(r.Context(), orgID, eventID, userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, venues)
}

// Update godoc
// @Summary Update a venue
// @Description Optional fields omitted from the body are unchanged.
// @Tags venues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Param venueID path string true "Venue ID"
// @Param body body UpdateVenueRequest true "Fields to update (all optional)"
// @Success 200 {object} helpers.APIResponse "data contains the updated venue"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/venues/{venueID} [patch]
func (c *VenueController) Update(w http.ResponseWriter, r *http.Request) {
	orgID, eventID, userID, ok := eventScope(w, r)
	if !ok {
		return
	}
	venueID := r.PathValue("venueID")
	if venueID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing venueID")
		return
	}
	var req UpdateVenueRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	upd := domain.VenueUpdate{
		Name:      req.Name,
		Capacity:  req.Capacity,
		Floor:     req.Floor,
		Notes:     req.Notes,
		SortOrder: req.SortOrder,
	}
	venue, err := c.Service.UpdateVenue(r.Context(), orgID, eventID, venueID, userID, upd)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, venue)
}

// Delete godoc
// @Summary Delete a venue
// @Description Sessions scheduled into the venue fall back to unscheduled.
// @Tags venues
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Param venueID path string true "Venue ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/venues/{venueID} [delete]
func (c *VenueController) Delete(w http.ResponseWriter, r *http.Request) {
	orgID, eventID, userID, ok := eventScope(w, r)
	if !ok {
		return
	}
	venueID := r.PathValue("venueID")
	if venueID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing venueID")
		return
	}
	if err := c.Service.DeleteVenue(r.Context(), orgID, eventID, venueID, userID); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "deleted"})
}

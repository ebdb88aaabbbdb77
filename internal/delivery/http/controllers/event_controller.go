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

// dateLayout is the wire format for calendar dates (no time component).
const dateLayout = "2006-01-02"

// CreateEventRequest is the request body for POST /orgs/{orgID}/events.
type CreateEventRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	StartsOn    string `json:"starts_on"`
	EndsOn      string `json:"ends_on"`
	Location    string `json:"location"`
}

// Validate implements helpers.Validator.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(c.Slug) == "" {
		errs = append(errs, "slug is required")
	}
	if c.StartsOn != "" {
		if _, err := time.Parse(dateLayout, c.StartsOn); err != nil {
			errs = append(errs, "starts_on must be YYYY-MM-DD")
		}
	}
	if c.EndsOn != "" {
		if _, err := time.Parse(dateLayout, c.EndsOn); err != nil {
			errs = append(errs, "ends_on must be YYYY-MM-DD")
		}
	}
	return errs
}

// UpdateEventRequest is the request body for PATCH /orgs/{orgID}/events/{eventID}.
// All fields optional; omitted fields are unchanged.
type UpdateEventRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	StartsOn    *string `json:"starts_on"`
	EndsOn      *string `json:"ends_on"`
	Location    *string `json:"location"`
}

// Validate implements helpers.Validator.
func (u UpdateEventRequest) Validate() []string {
	var errs []string
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		errs = append(errs, "name must not be empty")
	}
	if u.StartsOn != nil && *u.StartsOn != "" {
		if _, err := time.Parse(dateLayout, *u.StartsOn); err != nil {
			errs = append(errs, "starts_on must be YYYY-MM-DD")
		}
	}
	if u.EndsOn != nil && *u.EndsOn != "" {
		if _, err := time.Parse(dateLayout, *u.EndsOn); err != nil {
			errs = append(errs, "ends_on must be YYYY-MM-DD")
		}
	}
	return errs
}

// AddEventDayRequest is the request body for POST /orgs/{orgID}/events/{eventID}/days.
type AddEventDayRequest struct {
	Date      string `json:"date"`
	Label     string `json:"label"`
	SortOrder int    `json:"sort_order"`
}

// Validate implements helpers.Validator.
func (a AddEventDayRequest) Validate() []string {
	var errs []string
	if a.Date == "" {
		errs = append(errs, "date is required")
	} else if _, err := time.Parse(dateLayout, a.Date); err != nil {
		errs = append(errs, "date must be YYYY-MM-DD")
	}
	return errs
}

// GetEventResponse is the data payload for GET /orgs/{orgID}/events/{eventID}.
type GetEventResponse struct {
	Event  *domain.Event      `json:"event"`
	Days   []*domain.EventDay `json:"days"`
	Venues []*domain.Venue    `json:"venues"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

func parseDatePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil
	}
	return &t
}

// Create godoc
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param body body CreateEventRequest true "Event data"
// @Success 201 {object} helpers.APIResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (slug taken)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	orgID := r.PathValue("orgID")
	if orgID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing orgID")
		return
	}
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	now := time.Now()
	event := domain.NewEvent(orgID, req.Name, req.Slug, req.Description, now, now)
	event.Location = req.Location
	event.StartsOn = parseDatePtr(&req.StartsOn)
	event.EndsOn = parseDatePtr(&req.EndsOn)
	if err := c.Service.CreateEvent(r.Context(), orgID, userID, event); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// Get godoc
// @Summary Get an event with its days and venues
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains event, days, and venues"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID} [get]
func (c *EventController) Get(w http.ResponseWriter, r *http.Request) {
	orgID := r.PathValue("orgID")
	eventID := r.PathValue("eventID")
	if orgID == "" || eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing orgID or eventID")
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	event, days, venues, err := c.Service.GetEvent(r.Context(), orgID, eventID, userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, GetEventResponse{Event: event, Days: days, Venues: venues})
}

// List godoc
// @Summary List events of an organization
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Success 200 {object} helpers.APIResponse "data contains the event list"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events [get]
func (c *EventController) List(w http.ResponseWriter, r *http.Request) {
	orgID := r.PathValue("orgID")
	if orgID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing orgID")
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	events, err := c.Service.ListEvents(r.Context(), orgID, userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// Update godoc
// @Summary Update event details
// @Description Optional fields omitted from the body are unchanged.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Param body body UpdateEventRequest true "Fields to update (all optional)"
// @Success 200 {object} helpers.APIResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID} [patch]
func (c *EventController) Update(w http.ResponseWriter, r *http.Request) {
	orgID := r.PathValue("orgID")
	eventID := r.PathValue("eventID")
	if orgID == "" || eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing orgID or eventID")
		return
	}
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	upd := domain.EventUpdate{
		Name:        req.Name,
		Description: req.Description,
		StartsOn:    parseDatePtr(req.StartsOn),
		EndsOn:      parseDatePtr(req.EndsOn),
		Location:    req.Location,
	}
	event, err := c.Service.UpdateEvent(r.Context(), orgID, eventID, userID, upd)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// Delete godoc
// @Summary Delete an event
// @Description Deletes the event and everything under it. Owner only.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not owner)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID} [delete]
func (c *EventController) Delete(w http.ResponseWriter, r *http.Request) {
	orgID := r.PathValue("orgID")
	eventID := r.PathValue("eventID")
	if orgID == "" || eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing orgID or eventID")
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), orgID, eventID, userID); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// AddDay godoc
// @Summary Add a day to an event
// @Description The date must fall within the event's start/end range when one is set.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Param body body AddEventDayRequest true "Day data"
// @Success 201 {object} helpers.APIResponse "data contains the created day"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/days [post]
func (c *EventController) AddDay(w http.ResponseWriter, r *http.Request) {
	orgID := r.PathValue("orgID")
	eventID := r.PathValue("eventID")
	if orgID == "" || eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing orgID or eventID")
		return
	}
	var req AddEventDayRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	date, _ := time.Parse(dateLayout, req.Date)
	day, err := c.Service.AddEventDay(r.Context(), orgID, eventID, userID, date, req.Label, req.SortOrder)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, day)
}

// ListDays godoc
// @Summary List the days of an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the day list"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/days [get]
func (c *EventController) ListDays(w http.ResponseWriter, r *http.Request) {
	orgID := r.PathValue("orgID")
	eventID := r.PathValue("eventID")
	if orgID == "" || eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing orgID or eventID")
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	days, err := c.Service.ListEventDays(r.Context(), orgID, eventID, userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, days)
}

// DeleteDay godoc
// @Summary Delete a day from an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Param dayID path string true "Day ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/days/{dayID} [delete]
func (c *EventController) DeleteDay(w http.ResponseWriter, r *http.Request) {
	orgID := r.PathValue("orgID")
	eventID := r.PathValue("eventID")
	dayID := r.PathValue("dayID")
	if orgID == "" || eventID == "" || dayID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing orgID, eventID, or dayID")
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if err := c.Service.DeleteEventDay(r.Context(), orgID, eventID, dayID, userID); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "deleted"})
}

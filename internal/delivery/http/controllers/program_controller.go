package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"confprogram/internal/delivery/http/helpers"
	"confprogram/internal/domain"
)

// CreateSessionRequest is the request body for POST .../days/{dayID}/sessions.
// Sessions are created unscheduled; placement happens via move or auto-arrange.
type CreateSessionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

// Validate implements helpers.Validator.
func (c CreateSessionRequest) Validate() []string {
	if strings.TrimSpace(c.Title) == "" {
		return []string{"title is required"}
	}
	return nil
}

// UpdateSessionContentRequest is the request body for PATCH .../sessions/{sessionID}.
type UpdateSessionContentRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	SortOrder   *int    `json:"sort_order"`
}

// Validate implements helpers.Validator.
func (u UpdateSessionContentRequest) Validate() []string {
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		return []string{"title must not be empty"}
	}
	return nil
}

// MoveRequest is the request body for schedule moves (sessions and
// presentations). Omitted fields keep their stored value; venue_id ""
// clears the venue. Times are "HH:MM". Version is the version the
// client loaded; force commits even when the move conflicts.
type MoveRequest struct {
	VenueID   *string `json:"venue_id"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Version   int     `json:"version"`
	Force     bool    `json:"force"`
}

// Validate implements helpers.Validator.
func (m MoveRequest) Validate() []string {
	var errs []string
	if m.StartTime != nil {
		if _, err := domain.ParseTimeOfDay(*m.StartTime); err != nil {
			errs = append(errs, "start_time must be HH:MM")
		}
	}
	if m.EndTime != nil {
		if _, err := domain.ParseTimeOfDay(*m.EndTime); err != nil {
			errs = append(errs, "end_time must be HH:MM")
		}
	}
	if m.Version < 1 {
		errs = append(errs, "version is required")
	}
	return errs
}

func (m MoveRequest) toMove() domain.ScheduleMove {
	mv := domain.ScheduleMove{
		VenueID: m.VenueID,
		Version: m.Version,
		Force:   m.Force,
	}
	if m.StartTime != nil {
		t, _ := domain.ParseTimeOfDay(*m.StartTime)
		mv.Start = &t
	}
	if m.EndTime != nil {
		t, _ := domain.ParseTimeOfDay(*m.EndTime)
		mv.End = &t
	}
	return mv
}

// MoveConflictResponse is the 409 payload when a move is blocked by
// conflicts and force was not set. Nothing was committed.
type MoveConflictResponse struct {
	HasConflicts bool              `json:"has_conflicts"`
	Conflicts    []domain.Conflict `json:"conflicts"`
}

// CreatePresentationRequest is the request body for POST .../sessions/{sessionID}/presentations.
type CreatePresentationRequest struct {
	Title      string   `json:"title"`
	Abstract   string   `json:"abstract"`
	SpeakerIDs []string `json:"speaker_ids"`
	SortOrder  int      `json:"sort_order"`
}

// Validate implements helpers.Validator.
func (c CreatePresentationRequest) Validate() []string {
	if strings.TrimSpace(c.Title) == "" {
		return []string{"title is required"}
	}
	return nil
}

// UpdatePresentationRequest is the request body for PATCH .../presentations/{presentationID}.
type UpdatePresentationRequest struct {
	Title      *string  `json:"title"`
	Abstract   *string  `json:"abstract"`
	SpeakerIDs []string `json:"speaker_ids"`
}

// Validate implements helpers.Validator.
func (u UpdatePresentationRequest) Validate() []string {
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		return []string{"title must not be empty"}
	}
	return nil
}

// AutoArrangeRequestBody is the request body for POST .../days/{dayID}/auto-arrange.
type AutoArrangeRequestBody struct {
	Strategy    string `json:"strategy"`
	SlotMinutes int    `json:"slot_minutes"`
	WindowStart string `json:"window_start"`
	WindowEnd   string `json:"window_end"`
	Preview     bool   `json:"preview"`
}

// Validate implements helpers.Validator.
func (a AutoArrangeRequestBody) Validate() []string {
	var errs []string
	if a.Strategy != "" && !domain.ValidStrategy(a.Strategy) {
		errs = append(errs, "strategy must be one of minimize_gaps, balance_venues, optimize_flow")
	}
	if a.SlotMinutes < 0 {
		errs = append(errs, "slot_minutes must not be negative")
	}
	if a.WindowStart != "" {
		if _, err := domain.ParseTimeOfDay(a.WindowStart); err != nil {
			errs = append(errs, "window_start must be HH:MM")
		}
	}
	if a.WindowEnd != "" {
		if _, err := domain.ParseTimeOfDay(a.WindowEnd); err != nil {
			errs = append(errs, "window_end must be HH:MM")
		}
	}
	return errs
}

// GetSessionResponse is the data payload for GET .../sessions/{sessionID}.
type GetSessionResponse struct {
	Session       *domain.ProgramSession `json:"session"`
	Presentations []*domain.Presentation `json:"presentations"`
}

type ProgramController struct {
	Logger  *slog.Logger
	Service domain.ProgramService
}

func NewProgramController(logger *slog.Logger, svc domain.ProgramService) *ProgramController {
	return &ProgramController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateSession godoc
// @Summary Create a session on an event day
// @Tags program
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Param dayID path string true "Day ID"
// @Param body body CreateSessionRequest true "Session data"
// @Success 201 {object} helpers.APIResponse "data contains the created session"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/days/{dayID}/sessions [post]
func (c *ProgramController) CreateSession(w http.ResponseWriter, r *http.Request) {
	orgID, eventID, userID, ok := eventScope(w, r)
	if !ok {
		return
	}
	dayID := r.PathValue("dayID")
	if dayID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing dayID")
		return
	}
	var req CreateSessionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	now := time.Now()
	sess := domain.NewProgramSession(dayID, req.Title, req.Description, req.SortOrder, now, now)
	if err := c.Service.CreateSession(r.Context(), orgID, eventID, dayID, userID, sess); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, sess)
}

// GetSession godoc
// @Summary Get a session with its presentations
// @Tags program
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Param sessionID path string true "Session ID"
// @Success 200 {object} helpers.APIResponse "data contains session and presentations"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/sessions/{sessionID} [get]
func (c *ProgramController) GetSession(w http.ResponseWriter, r *http.Request) {
	orgID, eventID, userID, ok := eventScope(w, r)
	if !ok {
		return
	}
	sessionID := r.PathValue("sessionID")
	if sessionID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing sessionID")
		return
	}
	sess, presentations, err := c.Service.GetSession(r.Context(), orgID, eventID, sessionID, userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, GetSessionResponse{Session: sess, Presentations: presentations})
}

// ListDaySessions godoc
// @Summary List the sessions of a day
// @Description Ordered by start time (unscheduled last), then sort order.
// @Tags program
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Param dayID path string true "Day ID"
// @Success 200 {object} helpers.APIResponse "data contains the session list"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/days/{dayID}/sessions [get]
func (c *ProgramController) ListDaySessions(w http.ResponseWriter, r *http.Request) {
	orgID, eventID, userID, ok := eventScope(w, r)
	if !ok {
		return
	}
	dayID := r.PathValue("dayID")
	if dayID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing dayID")
		return
	}
	sessions, err := c.Service.ListDaySessions(r.Context(), orgID, eventID, dayID, userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// UpdateSessionContent godoc
// @Summary Update a session's content fields
// @Description Title, description, and sort order only. Schedule changes go through the move endpoint.
// @Tags program
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Param sessionID path string true "Session ID"
// @Param body body UpdateSessionContentRequest true "Fields to update (all optional)"
// @Success 200 {object} helpers.APIResponse "data contains the updated session"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/sessions/{sessionID} [patch]
func (c *ProgramController) UpdateSessionContent(w http.ResponseWriter, r *http.Request) {
	orgID, eventID, userID, ok := eventScope(w, r)
	if !ok {
		return
	}
	sessionID := r.PathValue("sessionID")
	if sessionID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing sessionID")
		return
	}
	var req UpdateSessionContentRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	upd := domain.SessionContentUpdate{
		Title:       req.Title,
		Description: req.Description,
		SortOrder:   req.SortOrder,
	}
	sess, err := c.Service.UpdateSessionContent(r.Context(), orgID, eventID, sessionID, userID, upd)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sess)
}

// DeleteSession godoc
// @Summary Delete a session
// @Tags program
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Param sessionID path string true "Session ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/sessions/{sessionID} [delete]
func (c *ProgramController) DeleteSession(w http.ResponseWriter, r *http.Request) {
	orgID, eventID, userID, ok := eventScope(w, r)
	if !ok {
		return
	}
	sessionID := r.PathValue("sessionID")
	if sessionID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing sessionID")
		return
	}
	if err := c.Service.DeleteSession(r.Context(), orgID, eventID, sessionID, userID); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// MoveSession godoc
// @Summary Move a session on the timeline
// @Description Applies a drag-and-drop move. When the move would overlap other sessions in the target venue and force is false, responds 409 with the conflict list and commits nothing. Set force to commit regardless.
// @Tags program
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Param sessionID path string true "Session ID"
// @Param body body MoveRequest true "Move data"
// @Success 200 {object} helpers.APIResponse "data contains the moved session"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "data contains has_conflicts and conflicts, or error.code: version_mismatch"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/sessions/{sessionID}/move [post]
func (c *ProgramController) MoveSession(w http.ResponseWriter, r *http.Request) {
	orgID, eventID, userID, ok := eventScope(w, r)
	if !ok {
		return
	}
	sessionID := r.PathValue("sessionID")
	if sessionID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing sessionID")
		return
	}
	var req MoveRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	sess, conflicts, err := c.Service.MoveSession(r.Context(), orgID, eventID, sessionID, userID, req.toMove())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	if len(conflicts) > 0 {
		helpers.WriteJSONSuccess(w, http.StatusConflict, MoveConflictResponse{HasConflicts: true, Conflicts: conflicts})
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sess)
}

// CreatePresentation godoc
// @Summary Create a presentation within a session
// @Tags program
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Param sessionID path string true "Session ID"
// @Param body body CreatePresentationRequest true "Presentation data"
// @Success 201 {object} helpers.APIResponse "data contains the created presentation"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/sessions/{sessionID}/presentations [post]
func (c *ProgramController) CreatePresentation(w http.ResponseWriter, r *http.Request) {
	orgID, eventID, userID, ok := eventScope(w, r)
	if !ok {
		return
	}
	sessionID := r.PathValue("sessionID")
	if sessionID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing sessionID")
		return
	}
	var req CreatePresentationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	now := time.Now()
	p := domain.NewPresentation(sessionID, req.Title, req.Abstract, req.SpeakerIDs, req.SortOrder, now, now)
	if err := c.Service.CreatePresentation(r.Context(), orgID, eventID, sessionID, userID, p); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, p)
}

// UpdatePresentation godoc
// @Summary Update a presentation's content fields
// @Tags program
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Param presentationID path string true "Presentation ID"
// @Param body body UpdatePresentationRequest true "Fields to update (all optional)"
// @Success 200 {object} helpers.APIResponse "data contains the updated presentation"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/presentations/{presentationID} [patch]
func (c *ProgramController) UpdatePresentation(w http.ResponseWriter, r *http.Request) {
	orgID, eventID, userID, ok := eventScope(w, r)
	if !ok {
		return
	}
	presentationID := r.PathValue("presentationID")
	if presentationID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing presentationID")
		return
	}
	var req UpdatePresentationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	p, err := c.Service.UpdatePresentationContent(r.Context(), orgID, eventID, presentationID, userID, req.Title, req.Abstract, req.SpeakerIDs)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, p)
}

// DeletePresentation godoc
// @Summary Delete a presentation
// @Tags program
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Param presentationID path string true "Presentation ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/presentations/{presentationID} [delete]
func (c *ProgramController) DeletePresentation(w http.ResponseWriter, r *http.Request) {
	orgID, eventID, userID, ok := eventScope(w, r)
	if !ok {
		return
	}
	presentationID := r.PathValue("presentationID")
	if presentationID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing presentationID")
		return
	}
	if err := c.Service.DeletePresentation(r.Context(), orgID, eventID, presentationID, userID); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// MovePresentation godoc
// @Summary Move a presentation within its session
// @Description Same contract as the session move: 409 with conflicts when the move overlaps sibling presentations or leaves the parent session's window and force is false.
// @Tags program
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Param presentationID path string true "Presentation ID"
// @Param body body MoveRequest true "Move data (venue_id ignored)"
// @Success 200 {object} helpers.APIResponse "data contains the moved presentation"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "data contains has_conflicts and conflicts, or error.code: version_mismatch"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/presentations/{presentationID}/move [post]
func (c *ProgramController) MovePresentation(w http.ResponseWriter, r *http.Request) {
	orgID, eventID, userID, ok := eventScope(w, r)
	if !ok {
		return
	}
	presentationID := r.PathValue("presentationID")
	if presentationID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing presentationID")
		return
	}
	var req MoveRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	p, conflicts, err := c.Service.MovePresentation(r.Context(), orgID, eventID, presentationID, userID, req.toMove())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	if len(conflicts) > 0 {
		helpers.WriteJSONSuccess(w, http.StatusConflict, MoveConflictResponse{HasConflicts: true, Conflicts: conflicts})
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, p)
}

// DayConflicts godoc
// @Summary Conflict report for an event day
// @Description Session overlaps per venue, presentation overlaps per session, presentations outside their session's window, and the venue load projection.
// @Tags program
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Param dayID path string true "Day ID"
// @Success 200 {object} helpers.APIResponse "data contains the conflict report"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/days/{dayID}/conflicts [get]
func (c *ProgramController) DayConflicts(w http.ResponseWriter, r *http.Request) {
	orgID, eventID, userID, ok := eventScope(w, r)
	if !ok {
		return
	}
	dayID := r.PathValue("dayID")
	if dayID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing dayID")
		return
	}
	report, err := c.Service.DayConflicts(r.Context(), orgID, eventID, dayID, userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, report)
}

// AutoArrange godoc
// @Summary Auto-arrange the unscheduled sessions of a day
// @Description Places unscheduled sessions into free venue slots on a fixed grid. With preview true the proposed assignments are returned without committing; re-post with preview false to apply them.
// @Tags program
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Param dayID path string true "Day ID"
// @Param body body AutoArrangeRequestBody true "Arrangement options"
// @Success 200 {object} helpers.APIResponse "data contains the arrangement result"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/days/{dayID}/auto-arrange [post]
func (c *ProgramController) AutoArrange(w http.ResponseWriter, r *http.Request) {
	orgID, eventID, userID, ok := eventScope(w, r)
	if !ok {
		return
	}
	dayID := r.PathValue("dayID")
	if dayID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing dayID")
		return
	}
	var req AutoArrangeRequestBody
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	arrangeReq := domain.AutoArrangeRequest{
		Strategy:    req.Strategy,
		SlotMinutes: req.SlotMinutes,
		Preview:     req.Preview,
	}
	if req.WindowStart != "" {
		t, _ := domain.ParseTimeOfDay(req.WindowStart)
		arrangeReq.WindowStart = t
	}
	if req.WindowEnd != "" {
		t, _ := domain.ParseTimeOfDay(req.WindowEnd)
		arrangeReq.WindowEnd = t
	}
	result, err := c.Service.AutoArrange(r.Context(), orgID, eventID, dayID, userID, arrangeReq)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, result)
}

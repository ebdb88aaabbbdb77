package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"confprogram/internal/delivery/http/helpers"
	"confprogram/internal/domain"
)

// CreateSponsorRequest is the request body for POST .../sponsors.
type CreateSponsorRequest struct {
	Name      string `json:"name"`
	Tier      string `json:"tier"`
	Website   string `json:"website"`
	Logo      string `json:"logo"`
	SortOrder int    `json:"sort_order"`
}

// Validate implements helpers.Validator.
func (c CreateSponsorRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	if !domain.ValidSponsorTier(c.Tier) {
		errs = append(errs, "tier must be one of platinum, gold, silver, bronze")
	}
	return errs
}

// UpdateSponsorRequest is the request body for PATCH .../sponsors/{sponsorID}.
type UpdateSponsorRequest struct {
	Name      *string `json:"name"`
	Tier      *string `json:"tier"`
	Website   *string `json:"website"`
	Logo      *string `json:"logo"`
	SortOrder *int    `json:"sort_order"`
}

// Validate implements helpers.Validator.
func (u UpdateSponsorRequest) Validate() []string {
	var errs []string
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		errs = append(errs, "name must not be empty")
	}
	if u.Tier != nil && !domain.ValidSponsorTier(*u.Tier) {
		errs = append(errs, "tier must be one of platinum, gold, silver, bronze")
	}
	return errs
}

type SponsorController struct {
	Logger  *slog.Logger
	Service domain.SponsorService
}

func NewSponsorController(logger *slog.Logger, svc domain.SponsorService) *SponsorController {
	return &SponsorController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Create a sponsor
// @Tags sponsors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Param body body CreateSponsorRequest true "Sponsor data"
// @Success 201 {object} helpers.APIResponse "data contains the created sponsor"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/sponsors [post]
func (c *SponsorController) Create(w http.ResponseWriter, r *http.Request) {
	orgID, eventID, userID, ok := eventScope(w, r)
	if !ok {
		return
	}
	var req CreateSponsorRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	now := time.Now()
	sp := domain.NewSponsor(eventID, req.Name, req.Tier, req.Website, req.Logo, req.SortOrder, now, now)
	if err := c.Service.CreateSponsor(r.Context(), orgID, eventID, userID, sp); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, sp)
}

// Get godoc
// @Summary Get a sponsor
// @Tags sponsors
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Param sponsorID path string true "Sponsor ID"
// @Success 200 {object} helpers.APIResponse "data contains the sponsor"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/sponsors/{sponsorID} [get]
func (c *SponsorController) Get(w http.ResponseWriter, r *http.Request) {
	orgID, eventID, userID, ok := eventScope(w, r)
	if !ok {
		return
	}
	sponsorID := r.PathValue("sponsorID")
	if sponsorID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing sponsorID")
		return
	}
	sp, err := c.Service.GetSponsor(r.Context(), orgID, eventID, sponsorID, userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sp)
}

// List godoc
// @Summary List sponsors of an event
// @Description Ordered by tier (platinum first), then sort order.
// @Tags sponsors
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the sponsor list"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/sponsors [get]
func (c *SponsorController) List(w http.ResponseWriter, r *http.Request) {
	orgID, eventID, userID, ok := eventScope(w, r)
	if !ok {
		return
	}
	sponsors, err := c.Service.ListSponsors(r.Context(), orgID, eventID, userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sponsors)
}

// Update godoc
// @Summary Update a sponsor
// @Description Optional fields omitted from the body are unchanged.
// @Tags sponsors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Param sponsorID path string true "Sponsor ID"
// @Param body body UpdateSponsorRequest true "Fields to update (all optional)"
// @Success 200 {object} helpers.APIResponse "data contains the updated sponsor"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/sponsors/{sponsorID} [patch]
func (c *SponsorController) Update(w http.ResponseWriter, r *http.Request) {
	orgID, eventID, userID, ok := eventScope(w, r)
	if !ok {
		return
	}
	sponsorID := r.PathValue("sponsorID")
	if sponsorID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing sponsorID")
		return
	}
	var req UpdateSponsorRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	upd := domain.SponsorUpdate{
		Name:      req.Name,
		Tier:      req.Tier,
		Website:   req.Website,
		Logo:      req.Logo,
		SortOrder: req.SortOrder,
	}
	sp, err := c.Service.UpdateSponsor(r.Context(), orgID, eventID, sponsorID, userID, upd)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sp)
}

// Delete godoc
// @Summary Delete a sponsor
// @Tags sponsors
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Param sponsorID path string true "Sponsor ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/sponsors/{sponsorID} [delete]
func (c *SponsorController) Delete(w http.ResponseWriter, r *http.Request) {
	orgID, eventID, userID, ok := eventScope(w, r)
	if !ok {
		return
	}
	sponsorID := r.PathValue("sponsorID")
	if sponsorID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing sponsorID")
		return
	}
	if err := c.Service.DeleteSponsor(r.Context(), orgID, eventID, sponsorID, userID); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "deleted"})
}

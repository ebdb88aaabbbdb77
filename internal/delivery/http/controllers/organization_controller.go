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

// CreateOrganizationRequest is the request body for POST /orgs.
type CreateOrganizationRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Validate implements helpers.Validator.
func (c CreateOrganizationRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(c.Slug) == "" {
		errs = append(errs, "slug is required")
	}
	return errs
}

// AddMemberRequest is the request body for POST /orgs/{orgID}/members.
type AddMemberRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Validate implements helpers.Validator.
func (a AddMemberRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(a.Email) == "" {
		errs = append(errs, "email is required")
	}
	role := strings.TrimSpace(strings.ToLower(a.Role))
	if role != "" && role != domain.OrgRoleOwner && role != domain.OrgRoleOrganizer {
		errs = append(errs, "role must be \"owner\" or \"organizer\"")
	}
	return errs
}

type OrganizationController struct {
	Logger  *slog.Logger
	Service domain.OrganizationService
}

func NewOrganizationController(logger *slog.Logger, svc domain.OrganizationService) *OrganizationController {
	return &OrganizationController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Create an organization
// @Description Creates an organization; the authenticated user becomes its owner.
// @Tags organizations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateOrganizationRequest true "Organization data"
// @Success 201 {object} helpers.APIResponse "data contains the created organization"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (slug taken)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs [post]
func (c *OrganizationController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateOrganizationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	now := time.Now()
	org := domain.NewOrganization(req.Name, req.Slug, now, now)
	if err := c.Service.CreateOrganization(r.Context(), org, userID); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, org)
}

// Get godoc
// @Summary Get an organization
// @Tags organizations
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Success 200 {object} helpers.APIResponse "data contains the organization"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not a member)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID} [get]
func (c *OrganizationController) Get(w http.ResponseWriter, r *http.Request) {
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
	org, err := c.Service.GetOrganization(r.Context(), orgID, userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, org)
}

// ListMine godoc
// @Summary List my organizations
// @Description Lists the organizations the authenticated user belongs to.
// @Tags organizations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the organization list"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs [get]
func (c *OrganizationController) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	orgs, err := c.Service.ListMyOrganizations(r.Context(), userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, orgs)
}

// AddMember godoc
// @Summary Add a member by email
// @Description Adds an existing user to the organization by email. Owner only.
// @Tags organizations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param body body AddMemberRequest true "Member email and role"
// @Success 201 {object} helpers.APIResponse "data contains the new member"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not owner)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (no such user)"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already a member)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/members [post]
func (c *OrganizationController) AddMember(w http.ResponseWriter, r *http.Request) {
	orgID := r.PathValue("orgID")
	if orgID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing orgID")
		return
	}
	var req AddMemberRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	role := strings.TrimSpace(strings.ToLower(req.Role))
	if role == "" {
		role = domain.OrgRoleOrganizer
	}
	member, err := c.Service.AddMemberByEmail(r.Context(), orgID, req.Email, role, userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, member)
}

// ListMembers godoc
// @Summary List organization members
// @Tags organizations
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Success 200 {object} helpers.APIResponse "data contains the member list"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/members [get]
func (c *OrganizationController) ListMembers(w http.ResponseWriter, r *http.Request) {
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
	members, err := c.Service.ListMembers(r.Context(), orgID, userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, members)
}

// RemoveMember godoc
// @Summary Remove a member
// @Description Removes a member from the organization. Owner only; owners cannot remove themselves.
// @Tags organizations
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param userID path string true "User ID to remove"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/members/{userID} [delete]
func (c *OrganizationController) RemoveMember(w http.ResponseWriter, r *http.Request) {
	orgID := r.PathValue("orgID")
	memberID := r.PathValue("userID")
	if orgID == "" || memberID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing orgID or userID")
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if err := c.Service.RemoveMember(r.Context(), orgID, memberID, userID); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "removed"})
}

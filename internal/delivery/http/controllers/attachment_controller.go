package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"confprogram/internal/delivery/http/helpers"
	"confprogram/internal/domain"
)

// RegisterAttachmentRequest is the request body for POST .../attachments.
// It registers metadata for a file that was uploaded out of band; the
// storage key is generated server side.
type RegisterAttachmentRequest struct {
	OwnerType   string `json:"owner_type"`
	OwnerID     string `json:"owner_id"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// Validate implements helpers.Validator.
func (a RegisterAttachmentRequest) Validate() []string {
	var errs []string
	if _, err := domain.ParseAttachmentOwnerType(a.OwnerType); err != nil {
		errs = append(errs, "owner_type must be one of participant, sponsor, presentation, event")
	}
	if strings.TrimSpace(a.OwnerID) == "" {
		errs = append(errs, "owner_id is required")
	}
	if strings.TrimSpace(a.FileName) == "" {
		errs = append(errs, "file_name is required")
	}
	if a.Size < 0 {
		errs = append(errs, "size must not be negative")
	}
	return errs
}

type AttachmentController struct {
	Logger  *slog.Logger
	Service domain.AttachmentService
}

func NewAttachmentController(logger *slog.Logger, svc domain.AttachmentService) *AttachmentController {
	return &AttachmentController{
		Logger:  logger,
		Service: svc,
	}
}

// Register godoc
// @Summary Register an attachment
// @Description Records attachment metadata after verifying the owning entity belongs to the event.
// @Tags attachments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Param body body RegisterAttachmentRequest true "Attachment metadata"
// @Success 201 {object} helpers.APIResponse "data contains the registered attachment"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (owner entity missing)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/attachments [post]
func (c *AttachmentController) Register(w http.ResponseWriter, r *http.Request) {
	orgID, eventID, userID, ok := eventScope(w, r)
	if !ok {
		return
	}
	var req RegisterAttachmentRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	ownerType, _ := domain.ParseAttachmentOwnerType(req.OwnerType)
	a := &domain.Attachment{
		OwnerType:   ownerType,
		OwnerID:     req.OwnerID,
		FileName:    req.FileName,
		ContentType: req.ContentType,
		Size:        req.Size,
		CreatedAt:   time.Now(),
	}
	if err := c.Service.Register(r.Context(), orgID, eventID, userID, a); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, a)
}

// ListByOwner godoc
// @Summary List attachments of an owner entity
// @Tags attachments
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Param owner_type query string true "Owner type (participant, sponsor, presentation, event)"
// @Param owner_id query string true "Owner entity ID"
// @Success 200 {object} helpers.APIResponse "data contains the attachment list"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/attachments [get]
func (c *AttachmentController) ListByOwner(w http.ResponseWriter, r *http.Request) {
	orgID, eventID, userID, ok := eventScope(w, r)
	if !ok {
		return
	}
	ownerType, err := domain.ParseAttachmentOwnerType(r.URL.Query().Get("owner_type"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "owner_type must be one of participant, sponsor, presentation, event")
		return
	}
	ownerID := r.URL.Query().Get("owner_id")
	if ownerID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing owner_id")
		return
	}
	attachments, err := c.Service.ListByOwner(r.Context(), orgID, eventID, userID, ownerType, ownerID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, attachments)
}

// Delete godoc
// @Summary Delete an attachment
// @Tags attachments
// @Produce json
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Param attachmentID path string true "Attachment ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/attachments/{attachmentID} [delete]
func (c *AttachmentController) Delete(w http.ResponseWriter, r *http.Request) {
	orgID, eventID, userID, ok := eventScope(w, r)
	if !ok {
		return
	}
	attachmentID := r.PathValue("attachmentID")
	if attachmentID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing attachmentID")
		return
	}
	if err := c.Service.Delete(r.Context(), orgID, eventID, attachmentID, userID); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "deleted"})
}

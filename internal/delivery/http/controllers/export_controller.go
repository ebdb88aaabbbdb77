package controllers

import (
	"fmt"
	"log/slog"
	"net/http"

	"confprogram/internal/domain"
)

type ExportController struct {
	Logger  *slog.Logger
	Service domain.ExportService
}

func NewExportController(logger *slog.Logger, svc domain.ExportService) *ExportController {
	return &ExportController{
		Logger:  logger,
		Service: svc,
	}
}

// ProgramPDF godoc
// @Summary Download the event program as PDF
// @Description Renders the full scheduled program, one page per day, grouped by venue.
// @Tags export
// @Produce application/pdf
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Success 200 {file} binary "PDF document"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/export/program.pdf [get]
func (c *ExportController) ProgramPDF(w http.ResponseWriter, r *http.Request) {
	orgID, eventID, userID, ok := eventScope(w, r)
	if !ok {
		return
	}
	pdf, err := c.Service.ProgramPDF(r.Context(), orgID, eventID, userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="program.pdf"`)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(pdf)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// ProgramCSV godoc
// @Summary Download the event program as CSV
// @Description One row per scheduled session, with its presentations flattened into one column.
// @Tags export
// @Produce text/csv
// @Security BearerAuth
// @Param orgID path string true "Organization ID"
// @Param eventID path string true "Event ID"
// @Success 200 {file} binary "CSV document"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orgs/{orgID}/events/{eventID}/export/program.csv [get]
func (c *ExportController) ProgramCSV(w http.ResponseWriter, r *http.Request) {
	orgID, eventID, userID, ok := eventScope(w, r)
	if !ok {
		return
	}
	csvData, err := c.Service.ProgramCSV(r.Context(), orgID, eventID, userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="program.csv"`)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(csvData)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(csvData)
}

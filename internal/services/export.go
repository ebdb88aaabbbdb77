package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"confprogram/internal/domain"
)

type exportService struct {
	orgRepo          domain.OrganizationRepository
	eventRepo        domain.EventRepository
	venueRepo        domain.VenueRepository
	sessionRepo      domain.SessionRepository
	presentationRepo domain.PresentationRepository
	pdfRenderer      domain.ProgramRenderer
	contextTimeout   time.Duration
}

// NewExportService creates an ExportService. pdfRenderer produces the
// PDF document; CSV is written inline.
func NewExportService(
	orgRepo domain.OrganizationRepository,
	eventRepo domain.EventRepository,
	venueRepo domain.VenueRepository,
	sessionRepo domain.SessionRepository,
	presentationRepo domain.PresentationRepository,
	pdfRenderer domain.ProgramRenderer,
	timeout time.Duration,
) domain.ExportService {
	return &exportService{
		orgRepo:          orgRepo,
		eventRepo:        eventRepo,
		venueRepo:        venueRepo,
		sessionRepo:      sessionRepo,
		presentationRepo: presentationRepo,
		pdfRenderer:      pdfRenderer,
		contextTimeout:   timeout,
	}
}

// buildExport flattens one event's program: days in date order, venues
// in sort order within each day, sessions by start time. Unscheduled
// sessions are left out; an export is a printable program, not a
// work list.
func (s *exportService) buildExport(ctx context.Context, orgID, eventID, callerID string) (*domain.ProgramExport, error) {
	event, err := requireEvent(ctx, s.orgRepo, s.eventRepo, orgID, eventID, callerID)
	if err != nil {
		return nil, err
	}
	org, err := s.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("get organization: %w", err)
	}
	days, err := s.eventRepo.ListDaysByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list event days: %w", err)
	}
	venues, err := s.venueRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}

	export := &domain.ProgramExport{
		EventName: event.Name,
		OrgName:   org.Name,
		Days:      make([]domain.ProgramExportDay, 0, len(days)),
	}
	for _, day := range days {
		sessions, err := s.sessionRepo.ListByDayID(ctx, day.ID)
		if err != nil {
			return nil, fmt.Errorf("list sessions: %w", err)
		}

		exportDay := domain.ProgramExportDay{
			Label: day.Label,
			Date:  day.Date.Format("2006-01-02"),
		}
		for _, venue := range venues {
			exportVenue := domain.ProgramExportVenue{VenueName: venue.Name}
			for _, sess := range sessions {
				if !sess.Scheduled() || *sess.VenueID != venue.ID {
					continue
				}
				row := domain.ProgramExportSession{
					Start: sess.Start.String(),
					End:   sess.End.String(),
					Title: sess.Title,
				}
				presentations, err := s.presentationRepo.ListBySessionID(ctx, sess.ID)
				if err != nil {
					return nil, fmt.Errorf("list presentations: %w", err)
				}
				for _, p := range presentations {
					if p.Start == nil || p.End == nil {
						row.Presentations = append(row.Presentations, p.Title)
						continue
					}
					row.Presentations = append(row.Presentations,
						fmt.Sprintf("%s-%s %s", p.Start, p.End, p.Title))
				}
				exportVenue.Sessions = append(exportVenue.Sessions, row)
			}
			if len(exportVenue.Sessions) > 0 {
				exportDay.Venues = append(exportDay.Venues, exportVenue)
			}
		}
		export.Days = append(export.Days, exportDay)
	}
	return export, nil
}

func (s *exportService) ProgramPDF(ctx context.Context, orgID, eventID, callerID string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	export, err := s.buildExport(ctx, orgID, eventID, callerID)
	if err != nil {
		return nil, err
	}
	doc, err := s.pdfRenderer.Render(export)
	if err != nil {
		return nil, fmt.Errorf("render program pdf: %w", err)
	}
	return doc, nil
}

func (s *exportService) ProgramCSV(ctx context.Context, orgID, eventID, callerID string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	export, err := s.buildExport(ctx, orgID, eventID, callerID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"day", "date", "venue", "start", "end", "title", "presentations"}); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, day := range export.Days {
		for _, venue := range day.Venues {
			for _, sess := range venue.Sessions {
				record := []string{
					day.Label,
					day.Date,
					venue.VenueName,
					sess.Start,
					sess.End,
					sess.Title,
					strings.Join(sess.Presentations, "; "),
				}
				if err := w.Write(record); err != nil {
					return nil, fmt.Errorf("write csv record: %w", err)
				}
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

package domain

import "context"

// ProgramExport is the flattened program of one event, shaped for
// rendering into a document. Rows are grouped day by day, venue by
// venue, sessions sorted by start time.
type ProgramExport struct {
	EventName string
	OrgName   string
	Days      []ProgramExportDay
}

// ProgramExportDay is one day of the exported program.
type ProgramExportDay struct {
	Label  string
	Date   string
	Venues []ProgramExportVenue
}

// ProgramExportVenue is one venue column within a day.
type ProgramExportVenue struct {
	VenueName string
	Sessions  []ProgramExportSession
}

// ProgramExportSession is one scheduled session row, with its
// presentations flattened to "HH:MM-HH:MM Title" lines.
type ProgramExportSession struct {
	Start         string
	End           string
	Title         string
	Presentations []string
}

// ProgramRenderer renders a program export into a document format.
// The PDF implementation lives in the adapters layer.
type ProgramRenderer interface {
	Render(export *ProgramExport) ([]byte, error)
}

// ExportService produces downloadable program documents.
type ExportService interface {
	ProgramPDF(ctx context.Context, orgID, eventID, callerID string) ([]byte, error)
	ProgramCSV(ctx context.Context, orgID, eventID, callerID string) ([]byte, error)
}

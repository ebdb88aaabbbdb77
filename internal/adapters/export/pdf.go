// Package export renders program exports into downloadable documents.
package export

import (
	"bytes"
	"fmt"

	"github.com/unidoc/unipdf/v3/creator"
	"github.com/unidoc/unipdf/v3/model"

	"confprogram/internal/domain"
)

type pdfRenderer struct{}

// NewPDFRenderer returns a ProgramRenderer that produces a printable
// program booklet, one page section per event day.
func NewPDFRenderer() domain.ProgramRenderer {
	return &pdfRenderer{}
}

func (r *pdfRenderer) Render(export *domain.ProgramExport) ([]byte, error) {
	regular, err := model.NewStandard14Font(model.HelveticaName)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	bold, err := model.NewStandard14Font(model.HelveticaBoldName)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	c := creator.New()
	c.SetPageMargins(50, 50, 50, 50)
	c.NewPage()

	title := c.NewParagraph(export.EventName)
	title.SetFont(bold)
	title.SetFontSize(20)
	if err := c.Draw(title); err != nil {
		return nil, fmt.Errorf("failed to draw title: %w", err)
	}
	subtitle := c.NewParagraph(export.OrgName)
	subtitle.SetFont(regular)
	subtitle.SetFontSize(11)
	subtitle.SetMargins(0, 0, 4, 16)
	if err := c.Draw(subtitle); err != nil {
		return nil, fmt.Errorf("failed to draw subtitle: %w", err)
	}

	for i, day := range export.Days {
		if i > 0 {
			c.NewPage()
		}
		dayHeader := c.NewParagraph(fmt.Sprintf("%s (%s)", day.Label, day.Date))
		dayHeader.SetFont(bold)
		dayHeader.SetFontSize(15)
		dayHeader.SetMargins(0, 0, 0, 10)
		if err := c.Draw(dayHeader); err != nil {
			return nil, fmt.Errorf("failed to draw day header: %w", err)
		}
		for _, venue := range day.Venues {
			if err := r.drawVenue(c, regular, bold, venue); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := c.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *pdfRenderer) drawVenue(c *creator.Creator, regular, bold *model.PdfFont, venue domain.ProgramExportVenue) error {
	venueHeader := c.NewParagraph(venue.VenueName)
	venueHeader.SetFont(bold)
	venueHeader.SetFontSize(12)
	venueHeader.SetMargins(0, 0, 8, 4)
	if err := c.Draw(venueHeader); err != nil {
		return fmt.Errorf("failed to draw venue header: %w", err)
	}

	table := c.NewTable(2)
	if err := table.SetColumnWidths(0.2, 0.8); err != nil {
		return fmt.Errorf("failed to set column widths: %w", err)
	}
	for _, session := range venue.Sessions {
		timeCell := table.NewCell()
		timePara := c.NewParagraph(fmt.Sprintf("%s-%s", session.Start, session.End))
		timePara.SetFont(regular)
		timePara.SetFontSize(10)
		if err := timeCell.SetContent(timePara); err != nil {
			return fmt.Errorf("failed to set time cell: %w", err)
		}

		body := session.Title
		for _, line := range session.Presentations {
			body += "\n" + line
		}
		sessionCell := table.NewCell()
		sessionPara := c.NewParagraph(body)
		sessionPara.SetFont(regular)
		sessionPara.SetFontSize(10)
		if err := sessionCell.SetContent(sessionPara); err != nil {
			return fmt.Errorf("failed to set session cell: %w", err)
		}
	}
	if err := c.Draw(table); err != nil {
		return fmt.Errorf("failed to draw session table: %w", err)
	}
	return nil
}

// Package services contains the export pipeline, outbound mail, the static
// visitor directory and health reporting.
package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/ncinga/temi-event-backend/types"
	"github.com/xuri/excelize/v2"
)

// Column orders are fixed; CSV and spreadsheet readers downstream depend on
// them.
var (
	registrationCSVHeader = []string{"id", "event_id", "name", "email", "designation", "created_at", "source"}
	feedbackCSVHeader     = []string{"id", "event_id", "rating", "comment", "created_at", "source"}
	workbookHeader        = []string{"Event ID", "Name", "Designation", "Email", "Created At", "Source"}
	visitorWorkbookHeader = []string{"Name", "Designation", "Email", "Submitted At"}
)

const workbookSheet = "Registrations"

// RegistrationsCSV renders registrations as CSV text: one header row plus one
// row per record. An empty input produces a header-only document.
func RegistrationsCSV(rows []types.Registration) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(registrationCSVHeader); err != nil {
		return "", fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.ID.Hex(),
			r.EventID,
			r.Name,
			r.Email,
			r.Designation,
			formatTimestamp(r.CreatedAt),
			string(r.Source),
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.String(), nil
}

// FeedbackCSV renders feedback entries as CSV text.
func FeedbackCSV(rows []types.Feedback) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(feedbackCSVHeader); err != nil {
		return "", fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.ID.Hex(),
			r.EventID,
			fmt.Sprintf("%d", r.Rating),
			r.Comment,
			formatTimestamp(r.CreatedAt),
			string(r.Source),
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.String(), nil
}

// RegistrationsWorkbook builds a single-sheet xlsx document fully in memory:
// one header row followed by one row per registration.
func RegistrationsWorkbook(rows []types.Registration) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", workbookSheet); err != nil {
		return nil, fmt.Errorf("failed to name worksheet: %w", err)
	}

	header := make([]interface{}, len(workbookHeader))
	for i, h := range workbookHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(workbookSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write workbook header: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to compute cell name: %w", err)
		}
		row := []interface{}{
			r.EventID,
			r.Name,
			r.Designation,
			r.Email,
			formatTimestamp(r.CreatedAt),
			string(r.Source),
		}
		if err := f.SetSheetRow(workbookSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write workbook row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// VisitorWorkbook builds a one-row xlsx document for a single visitor
// submission, stamped with the submission time.
func VisitorWorkbook(v types.VisitorExportRequest, submittedAt time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", workbookSheet); err != nil {
		return nil, fmt.Errorf("failed to name worksheet: %w", err)
	}

	header := make([]interface{}, len(visitorWorkbookHeader))
	for i, h := range visitorWorkbookHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(workbookSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write workbook header: %w", err)
	}

	row := []interface{}{
		v.Name,
		v.Designation,
		v.Email,
		submittedAt.UTC().Format("2006-01-02 15:04:05"),
	}
	if err := f.SetSheetRow(workbookSheet, "A2", &row); err != nil {
		return nil, fmt.Errorf("failed to write workbook row: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// formatTimestamp renders a server-assigned timestamp as ISO-8601. Missing
// timestamps render as the empty string, never as a zero date.
func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

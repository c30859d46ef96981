package services

import (
	"context"
	"time"

	apperrors "github.com/ncinga/temi-event-backend/errors"
	"github.com/ncinga/temi-event-backend/internal/store"
	"github.com/ncinga/temi-event-backend/internal/validation"
	"github.com/ncinga/temi-event-backend/logger"
	"github.com/ncinga/temi-event-backend/types"
)

// ExportMailer is the slice of EmailService the export pipeline needs.
type ExportMailer interface {
	SendRegistrationsExport(ctx context.Context, workbook []byte, total int) error
	SendVisitorExport(ctx context.Context, workbook []byte, v types.VisitorExportRequest) error
	Recipient() string
}

// ExportService runs the bulk registration export: full-table read, workbook
// build, synchronous email delivery.
type ExportService struct {
	registrations store.RegistrationStore
	mailer        ExportMailer
	maxRows       int64
}

func NewExportService(registrations store.RegistrationStore, mailer ExportMailer, maxRows int64) *ExportService {
	return &ExportService{
		registrations: registrations,
		mailer:        mailer,
		maxRows:       maxRows,
	}
}

// EmailAllRegistrations exports every stored registration (across all
// events, newest first, capped at maxRows) as an emailed spreadsheet. An
// empty record set is an error and sends nothing; this intentionally differs
// from the per-event CSV download, which succeeds with a header-only file.
func (s *ExportService) EmailAllRegistrations(ctx context.Context) (*types.ExportEmailResponse, error) {
	rows, err := s.registrations.ListAll(ctx, s.maxRows)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	if len(rows) == 0 {
		return nil, apperrors.NotFound("registrations")
	}

	workbook, err := RegistrationsWorkbook(rows)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ServerError, "failed to build export workbook")
	}

	if err := s.mailer.SendRegistrationsExport(ctx, workbook, len(rows)); err != nil {
		return nil, err
	}

	logger.GetLogger().Infow("Bulk registration export delivered",
		"records", len(rows),
		"to", s.mailer.Recipient())

	return &types.ExportEmailResponse{
		Status: "sent",
		To:     s.mailer.Recipient(),
		Count:  len(rows),
	}, nil
}

// EmailVisitorExport builds a one-row spreadsheet from a single visitor
// payload and emails it. The payload is validated with the same rules as a
// registration submission but is never persisted.
func (s *ExportService) EmailVisitorExport(ctx context.Context, req types.VisitorExportRequest) (*types.ExportEmailResponse, error) {
	normalized, err := validation.Registration(types.RegistrationCreate{
		Name:        req.Name,
		Email:       req.Email,
		Designation: req.Designation,
	})
	if err != nil {
		return nil, err
	}

	visitor := types.VisitorExportRequest{
		Name:        normalized.Name,
		Designation: normalized.Designation,
		Email:       normalized.Email,
	}

	workbook, err := VisitorWorkbook(visitor, time.Now().UTC())
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ServerError, "failed to build export workbook")
	}

	if err := s.mailer.SendVisitorExport(ctx, workbook, visitor); err != nil {
		return nil, err
	}

	logger.GetLogger().Infow("Single visitor export delivered",
		"name", visitor.Name,
		"to", s.mailer.Recipient())

	return &types.ExportEmailResponse{
		Status: "sent",
		To:     s.mailer.Recipient(),
		Count:  1,
	}, nil
}

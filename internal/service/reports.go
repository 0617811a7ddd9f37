package service

import (
	"context"
	"net/http"
	"strings"

	"github.com/noah-isme/edu-admin-client/internal/endpoints"
	"github.com/noah-isme/edu-admin-client/internal/models"
	"github.com/noah-isme/edu-admin-client/pkg/apiclient"
	appErrors "github.com/noah-isme/edu-admin-client/pkg/errors"
)

// ReportService wraps /{scope}/reports.
type ReportService struct {
	crud[models.Report, models.ReportFilter, models.ReportInput]
}

// NewReportService constructs the report service.
func NewReportService(client apiClient, opts ...Option) *ReportService {
	return &ReportService{crud: newCRUD[models.Report, models.ReportFilter, models.ReportInput](client, endpoints.Reports, "report", opts)}
}

// BulkNotify sends the selected reports to guardians.
func (s *ReportService) BulkNotify(ctx context.Context, req models.BulkNotifyRequest) (*models.BulkResult, error) {
	if len(req.IDs) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "no reports selected")
	}
	return send[models.BulkResult](ctx, s.base, http.MethodPost, endpoints.ReportsBulkNotify, req, "failed to notify guardians")
}

// DownloadPDF fetches a report rendered as PDF.
func (s *ReportService) DownloadPDF(ctx context.Context, id int64) (*apiclient.Download, error) {
	if id <= 0 {
		return nil, s.invalidID(s.singular)
	}
	dl, err := s.client.Download(ctx, endpoints.ReportPDF(s.scope, id), nil)
	if err != nil {
		return nil, s.fail(err, "failed to download report")
	}
	return dl, nil
}

// Shared resolves a public share link token into its report.
func (s *ReportService) Shared(ctx context.Context, token string) (*models.Report, error) {
	if strings.TrimSpace(token) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "share token is required")
	}
	return fetchOne[models.Report](ctx, s.base, endpoints.WithToken(endpoints.SharedReport, token), nil, "report not found")
}

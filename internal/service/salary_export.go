package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/edu-admin-client/internal/models"
	appErrors "github.com/noah-isme/edu-admin-client/pkg/errors"
	"github.com/noah-isme/edu-admin-client/pkg/export"
	"github.com/noah-isme/edu-admin-client/pkg/storage"
)

// Export formats.
const (
	FormatCSV = "csv"
	FormatPDF = "pdf"
)

var (
	salarySummaryHeaders = []string{"ID", "Teacher", "Month", "Base Amount", "Bonus", "Deductions", "Total", "Currency", "Status", "Paid At"}
	salaryItemHeaders    = []string{"Salary ID", "Teacher", "Description", "Type", "Hours", "Rate", "Amount"}
)

type salaryLister interface {
	All(ctx context.Context, filter models.SalaryFilter) ([]models.Salary, error)
}

// SalaryExporter renders salaries as a summary table followed by the item
// breakdown and saves the result in the downloads directory.
type SalaryExporter struct {
	salaries  salaryLister
	downloads *storage.Downloads
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
	logger    *zap.Logger
	now       func() time.Time
}

// NewSalaryExporter constructs the exporter.
func NewSalaryExporter(salaries salaryLister, downloads *storage.Downloads, logger *zap.Logger) *SalaryExporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SalaryExporter{
		salaries:  salaries,
		downloads: downloads,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
		logger:    logger,
		now:       time.Now,
	}
}

// Datasets splits salaries into the summary and item breakdown sections. The
// breakdown is empty when no salary carries items.
func (e *SalaryExporter) Datasets(salaries []models.Salary) (export.Dataset, export.Dataset) {
	summary := export.Dataset{Headers: salarySummaryHeaders}
	items := export.Dataset{Headers: salaryItemHeaders}
	for _, s := range salaries {
		paidAt := ""
		if s.PaidAt != nil {
			paidAt = s.PaidAt.Format("2006-01-02")
		}
		summary.Rows = append(summary.Rows, map[string]string{
			"ID":          strconv.FormatInt(s.ID, 10),
			"Teacher":     s.TeacherName(),
			"Month":       s.Month,
			"Base Amount": money(s.BaseAmount),
			"Bonus":       money(s.Bonus),
			"Deductions":  money(s.Deductions),
			"Total":       money(s.TotalAmount),
			"Currency":    s.Currency,
			"Status":      s.Status,
			"Paid At":     paidAt,
		})
		for _, item := range s.Items {
			items.Rows = append(items.Rows, map[string]string{
				"Salary ID":   strconv.FormatInt(s.ID, 10),
				"Teacher":     s.TeacherName(),
				"Description": item.Description,
				"Type":        item.Type,
				"Hours":       strconv.FormatFloat(item.Hours, 'f', -1, 64),
				"Rate":        money(item.Rate),
				"Amount":      money(item.Amount),
			})
		}
	}
	return summary, items
}

// Render encodes salaries in format without touching the filesystem.
func (e *SalaryExporter) Render(salaries []models.Salary, format string) ([]byte, error) {
	summary, items := e.Datasets(salaries)
	sections := []export.Dataset{summary}
	if len(items.Rows) > 0 {
		sections = append(sections, items)
	}
	switch strings.ToLower(format) {
	case FormatCSV:
		return e.csv.RenderSections(sections...)
	case FormatPDF:
		return e.pdf.RenderSections("Salaries", sections...)
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}

// Export fetches every salary matching filter, renders it and returns the
// saved file path.
func (e *SalaryExporter) Export(ctx context.Context, filter models.SalaryFilter, format string) (string, error) {
	format = strings.ToLower(format)
	salaries, err := e.salaries.All(ctx, filter)
	if err != nil {
		return "", err
	}
	data, err := e.Render(salaries, format)
	if err != nil {
		return "", err
	}
	path, err := e.downloads.Save(export.Filename("salaries", format, e.now()), data)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save export")
	}
	e.logger.Info("salary export saved", zap.String("path", path), zap.Int("rows", len(salaries)))
	return path, nil
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

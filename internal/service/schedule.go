package service

import (
	"context"
	"net/http"

	"github.com/noah-isme/edu-admin-client/internal/endpoints"
	"github.com/noah-isme/edu-admin-client/internal/models"
	"github.com/noah-isme/edu-admin-client/pkg/apiclient"
	"github.com/noah-isme/edu-admin-client/pkg/query"
)

// ClassService wraps /{scope}/classes.
type ClassService struct {
	crud[models.ClassInstance, models.ClassFilter, models.ClassInput]
}

// NewClassService constructs the class service.
func NewClassService(client apiClient, opts ...Option) *ClassService {
	return &ClassService{crud: newCRUD[models.ClassInstance, models.ClassFilter, models.ClassInput](client, endpoints.Classes, "class", opts)}
}

// UpdateStatus marks one class occurrence completed, cancelled and so on.
func (s *ClassService) UpdateStatus(ctx context.Context, id int64, update models.ClassStatusUpdate) (*models.ClassInstance, error) {
	if id <= 0 {
		return nil, s.invalidID(s.singular)
	}
	return send[models.ClassInstance](ctx, s.base, http.MethodPut, endpoints.ClassStatus(s.scope, id), update, "failed to update class status")
}

// TimetableService wraps /{scope}/timetables.
type TimetableService struct {
	crud[models.Timetable, models.TimetableFilter, models.TimetableInput]
}

// NewTimetableService constructs the timetable service.
func NewTimetableService(client apiClient, opts ...Option) *TimetableService {
	return &TimetableService{crud: newCRUD[models.Timetable, models.TimetableFilter, models.TimetableInput](client, endpoints.Timetables, "timetable", opts)}
}

// DownloadPDF fetches the printable schedule of one timetable.
func (s *TimetableService) DownloadPDF(ctx context.Context, id int64) (*apiclient.Download, error) {
	if id <= 0 {
		return nil, s.invalidID(s.singular)
	}
	dl, err := s.client.Download(ctx, endpoints.TimetablePDF(s.scope, id), nil)
	if err != nil {
		return nil, s.fail(err, "failed to download timetable")
	}
	return dl, nil
}

// ExportSchedule fetches the filtered class schedule as a PDF.
func (s *TimetableService) ExportSchedule(ctx context.Context, filter models.TimetableFilter) (*apiclient.Download, error) {
	dl, err := s.client.Download(ctx, endpoints.ScheduleExport(s.scope), query.Encode(filter))
	if err != nil {
		return nil, s.fail(err, "failed to export schedule")
	}
	return dl, nil
}

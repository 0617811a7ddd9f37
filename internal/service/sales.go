package service

import (
	"context"
	"net/http"

	"github.com/noah-isme/edu-admin-client/internal/endpoints"
	"github.com/noah-isme/edu-admin-client/internal/models"
	appErrors "github.com/noah-isme/edu-admin-client/pkg/errors"
)

// LeadService wraps /admin/leads and the pipeline actions.
type LeadService struct {
	crud[models.Lead, models.LeadFilter, models.LeadInput]
}

// NewLeadService constructs the lead service.
func NewLeadService(client apiClient, opts ...Option) *LeadService {
	return &LeadService{crud: newCRUD[models.Lead, models.LeadFilter, models.LeadInput](client, endpoints.Leads, "lead", opts)}
}

// UpdateStatus moves a lead to another pipeline state.
func (s *LeadService) UpdateStatus(ctx context.Context, id int64, status models.LeadStatus, notes string) (*models.Lead, error) {
	if id <= 0 {
		return nil, s.invalidID(s.singular)
	}
	body := map[string]string{"status": string(status)}
	if notes != "" {
		body["notes"] = notes
	}
	return send[models.Lead](ctx, s.base, http.MethodPut, endpoints.WithID(endpoints.LeadStatus, id), body, "failed to update lead status")
}

// Convert turns a lead into an enrolled student.
func (s *LeadService) Convert(ctx context.Context, id int64, req models.ConvertLeadRequest) (*models.ConvertLeadResult, error) {
	if id <= 0 {
		return nil, s.invalidID(s.singular)
	}
	return send[models.ConvertLeadResult](ctx, s.base, http.MethodPost, endpoints.WithID(endpoints.LeadConvert, id), req, "failed to convert lead")
}

// BulkUpdateStatus moves several leads at once.
func (s *LeadService) BulkUpdateStatus(ctx context.Context, ids []int64, status models.LeadStatus) (*models.BulkResult, error) {
	if len(ids) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "no leads selected")
	}
	req := models.BulkStatusRequest{IDs: ids, Status: string(status)}
	return send[models.BulkResult](ctx, s.base, http.MethodPost, endpoints.LeadsBulkStatus, req, "failed to update leads")
}

// TrialService wraps /{scope}/trials. Transition rules are enforced by the
// backend; see models.TrialClass.SuggestedStatuses for UI hints.
type TrialService struct {
	crud[models.TrialClass, models.TrialFilter, models.TrialInput]
}

// NewTrialService constructs the trial service.
func NewTrialService(client apiClient, opts ...Option) *TrialService {
	return &TrialService{crud: newCRUD[models.TrialClass, models.TrialFilter, models.TrialInput](client, endpoints.Trials, "trial", opts)}
}

// UpdateStatus records the outcome of a trial.
func (s *TrialService) UpdateStatus(ctx context.Context, id int64, status models.TrialStatus) (*models.TrialClass, error) {
	if id <= 0 {
		return nil, s.invalidID(s.singular)
	}
	body := map[string]string{"status": string(status)}
	return send[models.TrialClass](ctx, s.base, http.MethodPut, endpoints.TrialStatus(s.scope, id), body, "failed to update trial status")
}

// Review submits the teacher's assessment of a completed trial.
func (s *TrialService) Review(ctx context.Context, id int64, review models.TrialReview) (*models.TrialClass, error) {
	if id <= 0 {
		return nil, s.invalidID(s.singular)
	}
	if err := s.check(review, "invalid trial review"); err != nil {
		return nil, err
	}
	return send[models.TrialClass](ctx, s.base, http.MethodPost, endpoints.TrialReview(s.scope, id), review, "failed to submit trial review")
}

// Convert enrols the student of a reviewed trial.
func (s *TrialService) Convert(ctx context.Context, id int64, req models.ConvertTrialRequest) (*models.TrialClass, error) {
	if id <= 0 {
		return nil, s.invalidID(s.singular)
	}
	return send[models.TrialClass](ctx, s.base, http.MethodPost, endpoints.TrialConvert(s.scope, id), req, "failed to convert trial")
}

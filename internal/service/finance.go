package service

import (
	"context"
	"net/http"

	"github.com/noah-isme/edu-admin-client/internal/endpoints"
	"github.com/noah-isme/edu-admin-client/internal/models"
	"github.com/noah-isme/edu-admin-client/pkg/query"
)

// SalaryService wraps /{scope}/salaries.
type SalaryService struct {
	crud[models.Salary, models.SalaryFilter, models.SalaryInput]
}

// NewSalaryService constructs the salary service.
func NewSalaryService(client apiClient, opts ...Option) *SalaryService {
	return &SalaryService{crud: newCRUD[models.Salary, models.SalaryFilter, models.SalaryInput](client, endpoints.Salaries, "salary", opts)}
}

// MarkPaid records the payout of a salary.
func (s *SalaryService) MarkPaid(ctx context.Context, id int64, req models.MarkPaidRequest) (*models.Salary, error) {
	if id <= 0 {
		return nil, s.invalidID(s.singular)
	}
	return send[models.Salary](ctx, s.base, http.MethodPost, endpoints.WithID(endpoints.SalaryMarkPaid, id), req, "failed to mark salary as paid")
}

// All walks every page of the filtered salary list. Paging follows a local
// counter and stops at the last page the backend reports.
func (s *SalaryService) All(ctx context.Context, filter models.SalaryFilter) ([]models.Salary, error) {
	if filter.PerPage <= 0 {
		filter.PerPage = 100
	}
	var out []models.Salary
	for filter.Page = 1; ; filter.Page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page, err := s.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		out = append(out, page.Data...)
		if len(page.Data) == 0 || filter.Page >= page.LastPage {
			return out, nil
		}
	}
}

// FinancialService wraps the financial summary, expenses and exchange rates.
type FinancialService struct {
	expenses crud[models.Expense, models.ExpenseFilter, models.ExpenseInput]
}

// NewFinancialService constructs the financial service.
func NewFinancialService(client apiClient, opts ...Option) *FinancialService {
	return &FinancialService{expenses: newCRUD[models.Expense, models.ExpenseFilter, models.ExpenseInput](client, endpoints.Expenses, "expense", opts)}
}

// Summary returns revenue, costs and profit for the filtered period.
func (s *FinancialService) Summary(ctx context.Context, filter models.FinancialFilter) (*models.FinancialSummary, error) {
	return fetchOne[models.FinancialSummary](ctx, s.expenses.base, endpoints.FinancialSummary, query.Encode(filter), "failed to load financial summary")
}

// ExchangeRates returns the configured conversion rates.
func (s *FinancialService) ExchangeRates(ctx context.Context) ([]models.ExchangeRate, error) {
	rates, err := fetchOne[[]models.ExchangeRate](ctx, s.expenses.base, endpoints.ExchangeRates, nil, "failed to load exchange rates")
	if err != nil {
		return nil, err
	}
	return *rates, nil
}

// UpdateExchangeRate stores a new rate for a currency pair.
func (s *FinancialService) UpdateExchangeRate(ctx context.Context, rate models.ExchangeRate) (*models.ExchangeRate, error) {
	return send[models.ExchangeRate](ctx, s.expenses.base, http.MethodPut, endpoints.ExchangeRates, rate, "failed to update exchange rate")
}

// ListExpenses returns one page of expenses.
func (s *FinancialService) ListExpenses(ctx context.Context, filter models.ExpenseFilter) (*models.PaginatedResponse[models.Expense], error) {
	return s.expenses.List(ctx, filter)
}

// GetExpense returns one expense.
func (s *FinancialService) GetExpense(ctx context.Context, id int64) (*models.Expense, error) {
	return s.expenses.Get(ctx, id)
}

// CreateExpense records a new expense.
func (s *FinancialService) CreateExpense(ctx context.Context, input models.ExpenseInput) (*models.Expense, error) {
	return s.expenses.Create(ctx, input)
}

// UpdateExpense edits an expense.
func (s *FinancialService) UpdateExpense(ctx context.Context, id int64, input models.ExpenseInput) (*models.Expense, error) {
	return s.expenses.Update(ctx, id, input)
}

// DeleteExpense removes an expense.
func (s *FinancialService) DeleteExpense(ctx context.Context, id int64) error {
	return s.expenses.Delete(ctx, id)
}

// ActivityService reads the audit trail.
type ActivityService struct {
	log crud[models.ActivityLog, models.ActivityFilter, struct{}]
}

// NewActivityService constructs the activity service.
func NewActivityService(client apiClient, opts ...Option) *ActivityService {
	return &ActivityService{log: newCRUD[models.ActivityLog, models.ActivityFilter, struct{}](client, endpoints.Activity, "activity", opts)}
}

// List returns one page of activity entries.
func (s *ActivityService) List(ctx context.Context, filter models.ActivityFilter) (*models.PaginatedResponse[models.ActivityLog], error) {
	return s.log.List(ctx, filter)
}

// Get returns one activity entry.
func (s *ActivityService) Get(ctx context.Context, id int64) (*models.ActivityLog, error) {
	return s.log.Get(ctx, id)
}

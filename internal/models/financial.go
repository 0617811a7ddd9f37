package models

import "time"

// Expense is an outgoing payment recorded by the school.
type Expense struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	SpentOn   string    `json:"spent_on"`
	Notes     string    `json:"notes,omitempty"`
	Status    string    `json:"status"`
	CreatedBy *int64    `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ExpenseFilter captures list parameters for expenses.
type ExpenseFilter struct {
	ListParams
	Category string `query:"category"`
	Status   string `query:"status"`
	Currency string `query:"currency"`
	DateRange
}

// ExpenseInput is the create/update payload for expenses.
type ExpenseInput struct {
	Title    string  `json:"title,omitempty"`
	Category string  `json:"category,omitempty"`
	Amount   float64 `json:"amount,omitempty"`
	Currency string  `json:"currency,omitempty"`
	SpentOn  string  `json:"spent_on,omitempty"`
	Notes    string  `json:"notes,omitempty"`
	Status   string  `json:"status,omitempty"`
}

// CurrencyAmount is a total expressed in a single currency.
type CurrencyAmount struct {
	Currency string  `json:"currency"`
	Amount   float64 `json:"amount"`
}

// FinancialSummary aggregates revenue and costs over a period.
type FinancialSummary struct {
	Period            DateRangeValue   `json:"period"`
	Revenue           float64          `json:"revenue"`
	Expenses          float64          `json:"expenses"`
	Salaries          float64          `json:"salaries"`
	NetProfit         float64          `json:"net_profit"`
	BaseCurrency      string           `json:"base_currency"`
	RevenueByCurrency []CurrencyAmount `json:"revenue_by_currency,omitempty"`
	MonthlyBreakdown  []MonthlyTotal   `json:"monthly_breakdown,omitempty"`
}

// DateRangeValue is a resolved period returned by the backend.
type DateRangeValue struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// MonthlyTotal is one month of the financial breakdown.
type MonthlyTotal struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
	Salaries float64 `json:"salaries"`
}

// FinancialFilter narrows the summary.
type FinancialFilter struct {
	DateRange
	Currency string `query:"currency"`
}

// ExchangeRate converts one unit of From into To.
type ExchangeRate struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	Rate      float64   `json:"rate"`
	UpdatedAt time.Time `json:"updated_at"`
}

package models

import "time"

// Salary statuses.
const (
	SalaryPending   = "pending"
	SalaryPaid      = "paid"
	SalaryCancelled = "cancelled"
)

// SalaryItem is one line of a salary breakdown.
type SalaryItem struct {
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Hours       float64 `json:"hours,omitempty"`
	Rate        float64 `json:"rate,omitempty"`
	Amount      float64 `json:"amount"`
}

// Salary is a teacher payout for one month.
type Salary struct {
	ID          int64        `json:"id"`
	TeacherID   int64        `json:"teacher_id"`
	Teacher     *Teacher     `json:"teacher,omitempty"`
	Month       string       `json:"month"`
	BaseAmount  float64      `json:"base_amount"`
	Bonus       float64      `json:"bonus"`
	Deductions  float64      `json:"deductions"`
	TotalAmount float64      `json:"total_amount"`
	Currency    string       `json:"currency"`
	Status      string       `json:"status"`
	PaidAt      *time.Time   `json:"paid_at,omitempty"`
	Items       []SalaryItem `json:"items,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// TeacherName returns the embedded teacher name when present.
func (s Salary) TeacherName() string {
	if s.Teacher != nil {
		return s.Teacher.Name
	}
	return ""
}

// SalaryFilter captures list parameters for salaries.
type SalaryFilter struct {
	ListParams
	Status    string `query:"status"`
	TeacherID int64  `query:"teacher_id"`
	Month     string `query:"month"`
	Currency  string `query:"currency"`
}

// SalaryInput is the create/update payload for salaries.
type SalaryInput struct {
	TeacherID  int64        `json:"teacher_id,omitempty"`
	Month      string       `json:"month,omitempty"`
	BaseAmount float64      `json:"base_amount,omitempty"`
	Bonus      float64      `json:"bonus,omitempty"`
	Deductions float64      `json:"deductions,omitempty"`
	Currency   string       `json:"currency,omitempty"`
	Items      []SalaryItem `json:"items,omitempty"`
	Status     string       `json:"status,omitempty"`
}

// MarkPaidRequest records a payout.
type MarkPaidRequest struct {
	PaidAt    *time.Time `json:"paid_at,omitempty"`
	Reference string     `json:"reference,omitempty"`
}

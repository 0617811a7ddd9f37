package models

import "time"

// LeadStatus is the sales pipeline state of a lead.
type LeadStatus string

const (
	LeadNew             LeadStatus = "new"
	LeadContacted       LeadStatus = "contacted"
	LeadNeedsFollowUp   LeadStatus = "needs_follow_up"
	LeadTrialScheduled  LeadStatus = "trial_scheduled"
	LeadTrialCompleted  LeadStatus = "trial_completed"
	LeadAwaitingPayment LeadStatus = "awaiting_payment"
	LeadConverted       LeadStatus = "converted"
	LeadCancelled       LeadStatus = "cancelled"
)

// LeadStatuses lists every pipeline state in display order.
var LeadStatuses = []LeadStatus{
	LeadNew, LeadContacted, LeadNeedsFollowUp, LeadTrialScheduled,
	LeadTrialCompleted, LeadAwaitingPayment, LeadConverted, LeadCancelled,
}

// Lead is a prospective student or family.
type Lead struct {
	ID                 int64      `json:"id"`
	Name               string     `json:"name"`
	Email              string     `json:"email,omitempty"`
	Phone              string     `json:"phone,omitempty"`
	Country            string     `json:"country,omitempty"`
	Source             string     `json:"source,omitempty"`
	Status             LeadStatus `json:"status"`
	Notes              string     `json:"notes,omitempty"`
	AssignedTo         *int64     `json:"assigned_to,omitempty"`
	CourseID           *int64     `json:"course_id,omitempty"`
	FollowUpAt         *time.Time `json:"follow_up_at,omitempty"`
	ConvertedStudentID *int64     `json:"converted_student_id,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// LeadFilter captures list parameters for leads.
type LeadFilter struct {
	ListParams
	Status     string `query:"status"`
	Source     string `query:"source"`
	AssignedTo int64  `query:"assigned_to"`
	Country    string `query:"country"`
	DateRange
}

// LeadInput is the create/update payload for leads.
type LeadInput struct {
	Name       string     `json:"name,omitempty"`
	Email      string     `json:"email,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	Country    string     `json:"country,omitempty"`
	Source     string     `json:"source,omitempty"`
	Status     LeadStatus `json:"status,omitempty"`
	Notes      string     `json:"notes,omitempty"`
	AssignedTo *int64     `json:"assigned_to,omitempty"`
	CourseID   *int64     `json:"course_id,omitempty"`
	FollowUpAt *time.Time `json:"follow_up_at,omitempty"`
}

// ConvertLeadRequest turns a lead into a student (and optionally a family).
type ConvertLeadRequest struct {
	CourseID     int64  `json:"course_id,omitempty"`
	PackageID    int64  `json:"package_id,omitempty"`
	TeacherID    int64  `json:"teacher_id,omitempty"`
	CreateFamily bool   `json:"create_family"`
	Notes        string `json:"notes,omitempty"`
}

// ConvertLeadResult reports the records created by a conversion.
type ConvertLeadResult struct {
	Lead     Lead    `json:"lead"`
	Student  Student `json:"student"`
	FamilyID *int64  `json:"family_id,omitempty"`
}

// BulkStatusRequest changes the status of several records at once.
type BulkStatusRequest struct {
	IDs    []int64 `json:"ids"`
	Status string  `json:"status"`
}

// BulkResult reports how many records a bulk action touched.
type BulkResult struct {
	Updated int     `json:"updated"`
	Failed  []int64 `json:"failed,omitempty"`
}

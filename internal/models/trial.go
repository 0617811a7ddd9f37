package models

import "time"

// TrialStatus is the lifecycle state of a trial class.
type TrialStatus string

const (
	TrialPending       TrialStatus = "pending"
	TrialCompleted     TrialStatus = "completed"
	TrialNoShow        TrialStatus = "no_show"
	TrialPendingReview TrialStatus = "pending_review"
	TrialConverted     TrialStatus = "converted"
	TrialCancelled     TrialStatus = "cancelled"
)

// TrialClass is a free introductory session for a lead or student.
type TrialClass struct {
	ID          int64        `json:"id"`
	LeadID      *int64       `json:"lead_id,omitempty"`
	StudentID   *int64       `json:"student_id,omitempty"`
	StudentName string       `json:"student_name"`
	TeacherID   int64        `json:"teacher_id"`
	Teacher     *Teacher     `json:"teacher,omitempty"`
	CourseID    int64        `json:"course_id"`
	Course      *Course      `json:"course,omitempty"`
	ScheduledAt time.Time    `json:"scheduled_at"`
	DurationMin int          `json:"duration_minutes"`
	Status      TrialStatus  `json:"status"`
	Review      *TrialReview `json:"review,omitempty"`
	Notes       string       `json:"notes,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// CanEditStatus reports whether the status control should be enabled. A
// converted trial is final; the backend enforces the same rule.
func (t TrialClass) CanEditStatus() bool {
	return t.Status != TrialConverted
}

// SuggestedStatuses lists the states the backend accepts next, for building
// status pickers. Services never block a transition on this list.
func (t TrialClass) SuggestedStatuses() []TrialStatus {
	switch t.Status {
	case TrialPending:
		return []TrialStatus{TrialCompleted, TrialNoShow}
	case TrialCompleted:
		return []TrialStatus{TrialPendingReview}
	case TrialPendingReview:
		return []TrialStatus{TrialConverted}
	default:
		return nil
	}
}

// TrialReview is the teacher's assessment after a trial.
type TrialReview struct {
	Level          string `json:"level" validate:"required"`
	Rating         int    `json:"rating" validate:"min=1,max=5"`
	Feedback       string `json:"feedback" validate:"required"`
	Recommendation string `json:"recommendation,omitempty"`
}

// TrialFilter captures list parameters for trials.
type TrialFilter struct {
	ListParams
	Status    string `query:"status"`
	TeacherID int64  `query:"teacher_id"`
	CourseID  int64  `query:"course_id"`
	DateRange
}

// TrialInput is the create/update payload for trials.
type TrialInput struct {
	LeadID      *int64     `json:"lead_id,omitempty"`
	StudentID   *int64     `json:"student_id,omitempty"`
	StudentName string     `json:"student_name,omitempty"`
	TeacherID   int64      `json:"teacher_id,omitempty"`
	CourseID    int64      `json:"course_id,omitempty"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	DurationMin int        `json:"duration_minutes,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

// ConvertTrialRequest enrols the trial student after review.
type ConvertTrialRequest struct {
	PackageID int64  `json:"package_id"`
	Notes     string `json:"notes,omitempty"`
}

package models

import "time"

// Report statuses.
const (
	ReportDraft     = "draft"
	ReportSubmitted = "submitted"
	ReportSent      = "sent"
)

// Report is a teacher-written progress report for a student.
type Report struct {
	ID           int64      `json:"id"`
	StudentID    int64      `json:"student_id"`
	Student      *Student   `json:"student,omitempty"`
	TeacherID    int64      `json:"teacher_id"`
	Teacher      *Teacher   `json:"teacher,omitempty"`
	CourseID     *int64     `json:"course_id,omitempty"`
	Period       string     `json:"period"`
	Summary      string     `json:"summary"`
	Strengths    string     `json:"strengths,omitempty"`
	Improvements string     `json:"improvements,omitempty"`
	Grade        string     `json:"grade,omitempty"`
	Status       string     `json:"status"`
	NotifiedAt   *time.Time `json:"notified_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ReportFilter captures list parameters for reports.
type ReportFilter struct {
	ListParams
	Status    string `query:"status"`
	StudentID int64  `query:"student_id"`
	TeacherID int64  `query:"teacher_id"`
	Period    string `query:"period"`
}

// ReportInput is the create/update payload for reports.
type ReportInput struct {
	StudentID    int64  `json:"student_id,omitempty"`
	CourseID     *int64 `json:"course_id,omitempty"`
	Period       string `json:"period,omitempty"`
	Summary      string `json:"summary,omitempty"`
	Strengths    string `json:"strengths,omitempty"`
	Improvements string `json:"improvements,omitempty"`
	Grade        string `json:"grade,omitempty"`
	Status       string `json:"status,omitempty"`
}

// BulkNotifyRequest sends reports to guardians.
type BulkNotifyRequest struct {
	IDs     []int64 `json:"ids"`
	Channel string  `json:"channel,omitempty"`
	Message string  `json:"message,omitempty"`
}

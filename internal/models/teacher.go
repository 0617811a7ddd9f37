package models

import "time"

// Teacher statuses.
const (
	TeacherActive   = "active"
	TeacherInactive = "inactive"
	TeacherOnLeave  = "on_leave"
)

// Teacher is a tutor employed by the school.
type Teacher struct {
	ID            int64     `json:"id"`
	UserID        *int64    `json:"user_id,omitempty"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	Specialty     string    `json:"specialty,omitempty"`
	HourlyRate    float64   `json:"hourly_rate"`
	Currency      string    `json:"currency,omitempty"`
	Status        string    `json:"status"`
	StudentsCount int       `json:"students_count"`
	CoursesCount  int       `json:"courses_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TeacherStats summarises teaching load and earnings.
type TeacherStats struct {
	TotalClasses     int     `json:"total_classes"`
	CompletedClasses int     `json:"completed_classes"`
	CancelledClasses int     `json:"cancelled_classes"`
	TotalHours       float64 `json:"total_hours"`
	TotalEarned      float64 `json:"total_earned"`
	PendingSalary    float64 `json:"pending_salary"`
}

// TeacherProfile is the richer get-by-id aggregate.
type TeacherProfile struct {
	Teacher
	Courses  []Course     `json:"courses"`
	Students []Student    `json:"students"`
	Stats    TeacherStats `json:"stats"`
}

// TeacherFilter captures list parameters for teachers.
type TeacherFilter struct {
	ListParams
	Status    string `query:"status"`
	Specialty string `query:"specialty"`
	CourseID  int64  `query:"course_id"`
}

// TeacherInput is the create/update payload for teachers.
type TeacherInput struct {
	Name       string  `json:"name,omitempty"`
	Email      string  `json:"email,omitempty"`
	Phone      string  `json:"phone,omitempty"`
	Specialty  string  `json:"specialty,omitempty"`
	HourlyRate float64 `json:"hourly_rate,omitempty"`
	Currency   string  `json:"currency,omitempty"`
	Status     string  `json:"status,omitempty"`
	Password   string  `json:"password,omitempty"`
}

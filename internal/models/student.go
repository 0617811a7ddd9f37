package models

import "time"

// Student statuses.
const (
	StudentActive    = "active"
	StudentInactive  = "inactive"
	StudentSuspended = "suspended"
)

// Student represents a learner registered with the school.
type Student struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Gender       string    `json:"gender,omitempty"`
	BirthDate    string    `json:"birth_date,omitempty"`
	Country      string    `json:"country,omitempty"`
	Timezone     string    `json:"timezone,omitempty"`
	FamilyID     *int64    `json:"family_id,omitempty"`
	Family       *Family   `json:"family,omitempty"`
	Status       string    `json:"status"`
	CoursesCount int       `json:"courses_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StudentStats aggregates attendance and billing figures for a profile page.
type StudentStats struct {
	TotalClasses     int     `json:"total_classes"`
	AttendedClasses  int     `json:"attended_classes"`
	MissedClasses    int     `json:"missed_classes"`
	AttendanceRate   float64 `json:"attendance_rate"`
	RemainingClasses int     `json:"remaining_classes"`
	TotalPaid        float64 `json:"total_paid"`
	Outstanding      float64 `json:"outstanding"`
}

// StudentProfile is the richer get-by-id aggregate.
type StudentProfile struct {
	Student
	Courses         []Course        `json:"courses"`
	Packages        []Package       `json:"packages"`
	UpcomingClasses []ClassInstance `json:"upcoming_classes"`
	Stats           StudentStats    `json:"stats"`
}

// StudentFilter captures list parameters for students.
type StudentFilter struct {
	ListParams
	Status    string `query:"status"`
	CourseID  int64  `query:"course_id"`
	TeacherID int64  `query:"teacher_id"`
	FamilyID  int64  `query:"family_id"`
	Country   string `query:"country"`
	DateRange
}

// StudentInput is the create/update payload for students.
type StudentInput struct {
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Gender    string `json:"gender,omitempty"`
	BirthDate string `json:"birth_date,omitempty"`
	Country   string `json:"country,omitempty"`
	Timezone  string `json:"timezone,omitempty"`
	FamilyID  *int64 `json:"family_id,omitempty"`
	Status    string `json:"status,omitempty"`
}

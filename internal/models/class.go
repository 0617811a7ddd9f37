package models

import "time"

// ClassStatus is the state of a single class occurrence.
type ClassStatus string

const (
	ClassScheduled   ClassStatus = "scheduled"
	ClassCompleted   ClassStatus = "completed"
	ClassCancelled   ClassStatus = "cancelled"
	ClassRescheduled ClassStatus = "rescheduled"
	ClassNoShow      ClassStatus = "no_show"
)

// ClassInstance is one dated occurrence generated from a timetable.
type ClassInstance struct {
	ID          int64       `json:"id"`
	TimetableID *int64      `json:"timetable_id,omitempty"`
	StudentID   int64       `json:"student_id"`
	Student     *Student    `json:"student,omitempty"`
	TeacherID   int64       `json:"teacher_id"`
	Teacher     *Teacher    `json:"teacher,omitempty"`
	CourseID    int64       `json:"course_id"`
	Course      *Course     `json:"course,omitempty"`
	StartsAt    time.Time   `json:"starts_at"`
	EndsAt      time.Time   `json:"ends_at"`
	Status      ClassStatus `json:"status"`
	MeetingURL  string      `json:"meeting_url,omitempty"`
	Notes       string      `json:"notes,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// ClassFilter captures list parameters for class instances.
type ClassFilter struct {
	ListParams
	Status    string `query:"status"`
	StudentID int64  `query:"student_id"`
	TeacherID int64  `query:"teacher_id"`
	CourseID  int64  `query:"course_id"`
	DateRange
}

// ClassInput is the create/update payload for class instances.
type ClassInput struct {
	TimetableID *int64      `json:"timetable_id,omitempty"`
	StudentID   int64       `json:"student_id,omitempty"`
	TeacherID   int64       `json:"teacher_id,omitempty"`
	CourseID    int64       `json:"course_id,omitempty"`
	StartsAt    *time.Time  `json:"starts_at,omitempty"`
	EndsAt      *time.Time  `json:"ends_at,omitempty"`
	Status      ClassStatus `json:"status,omitempty"`
	MeetingURL  string      `json:"meeting_url,omitempty"`
	Notes       string      `json:"notes,omitempty"`
}

// ClassStatusUpdate changes the state of one class.
type ClassStatusUpdate struct {
	Status ClassStatus `json:"status"`
	Reason string      `json:"reason,omitempty"`
}

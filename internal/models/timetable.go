package models

import "time"

// TimetableSlot is one recurring weekly session.
type TimetableSlot struct {
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Timetable is the recurring schedule binding a student, teacher and course.
type Timetable struct {
	ID        int64           `json:"id"`
	StudentID int64           `json:"student_id"`
	Student   *Student        `json:"student,omitempty"`
	TeacherID int64           `json:"teacher_id"`
	Teacher   *Teacher        `json:"teacher,omitempty"`
	CourseID  int64           `json:"course_id"`
	Course    *Course         `json:"course,omitempty"`
	Slots     []TimetableSlot `json:"slots"`
	Timezone  string          `json:"timezone,omitempty"`
	StartsOn  string          `json:"starts_on,omitempty"`
	EndsOn    string          `json:"ends_on,omitempty"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TimetableFilter captures list parameters for timetables.
type TimetableFilter struct {
	ListParams
	Status    string `query:"status"`
	StudentID int64  `query:"student_id"`
	TeacherID int64  `query:"teacher_id"`
	CourseID  int64  `query:"course_id"`
	Day       string `query:"day"`
}

// TimetableInput is the create/update payload for timetables.
type TimetableInput struct {
	StudentID int64           `json:"student_id,omitempty"`
	TeacherID int64           `json:"teacher_id,omitempty"`
	CourseID  int64           `json:"course_id,omitempty"`
	Slots     []TimetableSlot `json:"slots,omitempty"`
	Timezone  string          `json:"timezone,omitempty"`
	StartsOn  string          `json:"starts_on,omitempty"`
	EndsOn    string          `json:"ends_on,omitempty"`
	Status    string          `json:"status,omitempty"`
}

package models

import "time"

// Course is a subject offering students enrol into.
type Course struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Level         string    `json:"level,omitempty"`
	DurationWeeks int       `json:"duration_weeks,omitempty"`
	Price         float64   `json:"price"`
	Currency      string    `json:"currency,omitempty"`
	Status        string    `json:"status"`
	TeacherID     *int64    `json:"teacher_id,omitempty"`
	Teacher       *Teacher  `json:"teacher,omitempty"`
	StudentsCount int       `json:"students_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CourseFilter captures list parameters for courses.
type CourseFilter struct {
	ListParams
	Status    string `query:"status"`
	Level     string `query:"level"`
	TeacherID int64  `query:"teacher_id"`
}

// CourseInput is the create/update payload for courses.
type CourseInput struct {
	Name          string  `json:"name" validate:"required"`
	Description   string  `json:"description,omitempty"`
	Level         string  `json:"level,omitempty"`
	DurationWeeks int     `json:"duration_weeks,omitempty" validate:"gte=0"`
	Price         float64 `json:"price" validate:"gte=0"`
	Currency      string  `json:"currency,omitempty"`
	Status        string  `json:"status,omitempty"`
	TeacherID     *int64  `json:"teacher_id,omitempty"`
}

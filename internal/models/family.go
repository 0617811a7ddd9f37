package models

import "time"

// Family groups students under a paying guardian.
type Family struct {
	ID            int64     `json:"id"`
	GuardianName  string    `json:"guardian_name"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Country       string    `json:"country,omitempty"`
	Currency      string    `json:"currency,omitempty"`
	Status        string    `json:"status"`
	StudentsCount int       `json:"students_count"`
	Students      []Student `json:"students,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// FamilyFilter captures list parameters for families.
type FamilyFilter struct {
	ListParams
	Status  string `query:"status"`
	Country string `query:"country"`
}

// FamilyInput is the create/update payload for families.
type FamilyInput struct {
	GuardianName string `json:"guardian_name,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Country      string `json:"country,omitempty"`
	Currency     string `json:"currency,omitempty"`
	Status       string `json:"status,omitempty"`
}

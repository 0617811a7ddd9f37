package models

import "time"

// Package is a purchasable bundle of classes.
type Package struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	ClassesCount int       `json:"classes_count"`
	DurationMin  int       `json:"duration_minutes"`
	Price        float64   `json:"price"`
	Currency     string    `json:"currency"`
	ValidityDays int       `json:"validity_days,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PackageFilter captures list parameters for packages.
type PackageFilter struct {
	ListParams
	Status   string `query:"status"`
	Currency string `query:"currency"`
}

// PackageInput is the create/update payload for packages.
type PackageInput struct {
	Name         string  `json:"name,omitempty"`
	Description  string  `json:"description,omitempty"`
	ClassesCount int     `json:"classes_count,omitempty"`
	DurationMin  int     `json:"duration_minutes,omitempty"`
	Price        float64 `json:"price,omitempty"`
	Currency     string  `json:"currency,omitempty"`
	ValidityDays int     `json:"validity_days,omitempty"`
	Status       string  `json:"status,omitempty"`
}

package models

import (
	"encoding/json"
	"time"
)

// ActivityLog is an audit trail entry recorded by the backend.
type ActivityLog struct {
	ID          int64           `json:"id"`
	UserID      *int64          `json:"user_id,omitempty"`
	UserName    string          `json:"user_name,omitempty"`
	Action      string          `json:"action"`
	Subject     string          `json:"subject_type,omitempty"`
	SubjectID   *int64          `json:"subject_id,omitempty"`
	Description string          `json:"description"`
	Properties  json.RawMessage `json:"properties,omitempty"`
	IPAddress   string          `json:"ip_address,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ActivityFilter captures list parameters for the activity log.
type ActivityFilter struct {
	ListParams
	UserID  int64  `query:"user_id"`
	Action  string `query:"action"`
	Subject string `query:"subject_type"`
	DateRange
}

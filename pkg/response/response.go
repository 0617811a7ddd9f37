package response

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Status values used in the envelope discriminant.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Meta carries pagination details for list endpoints.
type Meta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

// Envelope represents the common response contract of the backend.
type Envelope struct {
	Status  string              `json:"status"`
	Data    json.RawMessage     `json:"data,omitempty"`
	Message string              `json:"message,omitempty"`
	Meta    *Meta               `json:"meta,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// OK reports whether the envelope carries the success discriminant.
func (e *Envelope) OK() bool {
	return e != nil && e.Status == StatusSuccess
}

// HasData reports whether a non-null data payload is present.
func (e *Envelope) HasData() bool {
	return e != nil && len(e.Data) > 0 && string(e.Data) != "null"
}

// JSON writes a success envelope with optional pagination metadata.
func JSON(c *gin.Context, status int, data interface{}, meta *Meta) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, gin.H{
		"status": StatusSuccess,
		"data":   data,
		"meta":   meta,
	})
}

// Message writes a success envelope carrying only a message.
func Message(c *gin.Context, message string) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, gin.H{"status": StatusSuccess, "message": message})
}

// Error writes an error envelope with the given HTTP status.
func Error(c *gin.Context, status int, message string, fields map[string][]string) {
	c.Header("Cache-Control", "no-store")
	body := gin.H{"status": StatusError, "message": message}
	if len(fields) > 0 {
		body["errors"] = fields
	}
	c.AbortWithStatusJSON(status, body)
}

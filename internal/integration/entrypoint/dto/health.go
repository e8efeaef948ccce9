// Package dto defines data transfer objects for API requests and responses.
package dto

// HealthResponse reports API liveness and database connectivity.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

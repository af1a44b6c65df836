package dto

// HealthResponse is the body of the health and readiness probes
type HealthResponse struct {
	Status  string `json:"status"`
	Details any    `json:"details,omitempty"`
}

package models

// HealthResponse is returned by the liveness endpoint.
type HealthResponse struct {
	Success bool `json:"success"`
}

// TokenResponse is returned by the token issuing endpoint.
// Duration is the token lifetime in seconds.
type TokenResponse struct {
	Token    string `json:"token"`
	Duration int64  `json:"duration"`
}

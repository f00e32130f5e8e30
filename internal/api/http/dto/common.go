package dto

type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries a human readable message and, for client faults,
// the underlying detail.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
	Cache    string `json:"cache,omitempty"`
}

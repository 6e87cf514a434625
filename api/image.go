package api

import "time"

const (
	StatusOK        = "ok"
	StatusError     = "error"
	StatusUnhealthy = "unhealthy"
)

type UploadResponse struct {
	Status string `json:"status" example:"ok"`
	Size   int64  `json:"size" example:"8287"`
}

type ErrorResponse struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message" example:"Image has not been uploaded yet"`
}

type UploadInfo struct {
	Key         string    `json:"key" example:"cat.png"`
	Size        int64     `json:"size" example:"8287"`
	SHA256      string    `json:"sha256"`
	ContentType string    `json:"content_type" example:"image/png"`
	UpdatedAt   time.Time `json:"updated_at"`
	CreatedAt   time.Time `json:"created_at"`
}

type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Message string `json:"message,omitempty"`
}

package handler

import "time"

// EvaluateResponse is the HTTP response for both evaluate endpoints.
type EvaluateResponse struct {
	EvaluationID string    `json:"evaluation_id"`
	Decision     string    `json:"decision"`
	EvaluatedAt  time.Time `json:"evaluated_at"`
}

// LookupCountResponse is the HTTP response for GET /applications/lookups.
type LookupCountResponse struct {
	LookupCount int64 `json:"lookup_count"`
}

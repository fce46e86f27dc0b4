package model

import "time"

type JobStatus string

const (
	JobStatusQueued    JobStatus = "queued"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// GenerationJob asks a worker to assemble a PRD for a stored context.
type GenerationJob struct {
	ID              int64     `json:"job_id"`
	ContextID       string    `json:"context_id"`
	IncludeGuidance bool      `json:"include_guidance"`
	Status          JobStatus `json:"status"`
	Attempt         int       `json:"attempt"`
	TraceID         string    `json:"trace_id,omitempty"`
	RequestedAt     time.Time `json:"requested_at"`
	PRDID           string    `json:"prd_id,omitempty"`
	Error           string    `json:"error,omitempty"`
}

package dto

import "basegraph.app/blueprint/internal/model"

// Empty requirements are accepted and analyzed as-is.
type ParseRequest struct {
	Text string `json:"text"`
}

type ProcessRequest struct {
	Requirement string         `json:"requirement"`
	Context     map[string]any `json:"context,omitempty"`
}

type GitLabIssueRequest struct {
	Project  string         `json:"project" binding:"required"`
	IssueIID int64          `json:"issue_iid" binding:"required,min=1"`
	Context  map[string]any `json:"context,omitempty"`
}

type UpdateContextRequest struct {
	Updates map[string]any `json:"updates" binding:"required"`
}

type UpdateContextResponse struct {
	Success   bool   `json:"success"`
	ContextID string `json:"context_id"`
}

type HistoryResponse struct {
	Entries []model.HistoryEntry `json:"entries"`
	Count   int                  `json:"count"`
}

func ToHistoryResponse(entries []model.HistoryEntry) HistoryResponse {
	if entries == nil {
		entries = []model.HistoryEntry{}
	}
	return HistoryResponse{Entries: entries, Count: len(entries)}
}

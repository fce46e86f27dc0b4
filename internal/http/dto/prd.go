package dto

import "basegraph.app/blueprint/internal/model"

type GeneratePRDRequest struct {
	ContextID       string `json:"context_id" binding:"required"`
	IncludeGuidance bool   `json:"include_guidance"`
	// Async queues the generation and returns a job instead of a document.
	Async bool `json:"async"`
}

type JobResponse struct {
	Job       *model.GenerationJob `json:"job"`
	StatusURL string               `json:"status_url"`
}

type PRDListResponse struct {
	PRDs  []model.PRDListing `json:"prds"`
	Count int                `json:"count"`
}

func ToPRDListResponse(listings []model.PRDListing) PRDListResponse {
	if listings == nil {
		listings = []model.PRDListing{}
	}
	return PRDListResponse{PRDs: listings, Count: len(listings)}
}

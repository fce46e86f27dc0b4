package dto

type DocTypeRequest struct {
	Entity     string   `json:"entity" binding:"required"`
	Industry   string   `json:"industry"`
	Attributes []string `json:"attributes"`
}

type FeasibilityRequest struct {
	Requirement string `json:"requirement" binding:"required"`
}

type IndustriesResponse struct {
	Industries []string `json:"industries"`
}

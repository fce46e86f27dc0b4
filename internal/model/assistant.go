package model

// AssistantReply is what the conversational front end returns for a prompt.
type AssistantReply struct {
	Success   bool           `json:"success"`
	Response  map[string]any `json:"response"`
	Reasoning string         `json:"reasoning"`
	Error     string         `json:"error,omitempty"`
	Model     string         `json:"model,omitempty"`
}

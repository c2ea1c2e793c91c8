package api

// ScenarioResponse describes one selectable reply scenario.
type ScenarioResponse struct {
	Slug            string `json:"slug"`
	Label           string `json:"label"`
	AcceptsTracking bool   `json:"accepts_tracking"`
}

// ScenarioListResponse is the response for GET /api/v1/scenarios.
type ScenarioListResponse struct {
	Scenarios []ScenarioResponse `json:"scenarios"`
}

// CreateReplyRequest is the request body for POST /api/v1/replies.
type CreateReplyRequest struct {
	Scenario     string `json:"scenario"`
	CustomerName string `json:"customer_name"`
	OrderID      string `json:"order_id"`
	TrackingID   string `json:"tracking_id,omitempty"`
	CourierURL   string `json:"courier_url,omitempty"`
	Notes        string `json:"notes,omitempty"`
	// DryRun returns the composed prompt without calling the completion service.
	DryRun bool `json:"dry_run,omitempty"`
}

// PromptResponse is the composed instruction pair.
type PromptResponse struct {
	System string `json:"system"`
	User   string `json:"user"`
}

// ReplyResponse is the response for POST /api/v1/replies.
type ReplyResponse struct {
	RequestID string          `json:"request_id"`
	Scenario  string          `json:"scenario"`
	Reply     string          `json:"reply,omitempty"`
	Prompt    *PromptResponse `json:"prompt,omitempty"`
}

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

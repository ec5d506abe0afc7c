package models

// Wire types for the action-dispatched JSON endpoints. Every request body
// carries an "action" discriminator plus action-specific fields; responses
// carry either "success" or "error" (with optional discriminator fields such
// as "requiresPin").

// CaseRequest is the request body of the /api/cases endpoint.
type CaseRequest struct {
	Action   string    `json:"action"`
	CaseID   string    `json:"caseId,omitempty"`
	PIN      string    `json:"pin,omitempty"`
	Messages []Message `json:"messages,omitempty"`
	Language string    `json:"language,omitempty"`
	Context  string    `json:"context,omitempty"`
}

// ConsentRequest is the request body of the /api/consent endpoint.
type ConsentRequest struct {
	Action         string      `json:"action"`
	CaseID         string      `json:"case_id,omitempty"`
	Flag           ConsentFlag `json:"flag,omitempty"`
	Value          bool        `json:"value,omitempty"`
	RequiredAction string      `json:"required_action,omitempty"`
}

// ConsentCheckResult is the response body of a consent "check" action.
type ConsentCheckResult struct {
	Allowed      bool        `json:"allowed"`
	RequiredFlag ConsentFlag `json:"required_flag,omitempty"`
	CurrentValue bool        `json:"current_value"`
}

// RiskRequest is the request body of the /api/risk endpoint. Content is the
// current inbound message; Messages is the recent conversation history.
type RiskRequest struct {
	Content  string    `json:"content"`
	Messages []Message `json:"messages,omitempty"`
}

// GuardrailRequest is the request body of the /api/guardrails endpoint.
type GuardrailRequest struct {
	Response          string `json:"response"`
	Language          string `json:"language,omitempty"`
	HasUrgencyConsent bool   `json:"has_urgency_consent,omitempty"`
}

// RetentionRequest is the request body of the /api/retention endpoint.
type RetentionRequest struct {
	Action        string `json:"action"`
	CaseID        string `json:"caseId,omitempty"`
	RetentionDays int    `json:"retentionDays,omitempty"`
}

// ExpiringCase is one entry of a retention "get_expiring" report.
type ExpiringCase struct {
	CaseID        string `json:"case_id"`
	ExpiresInDays int    `json:"expires_in_days"`
}

// HandoffRequest is the request body of the /api/handoff endpoint.
type HandoffRequest struct {
	Action  string  `json:"action"`
	CaseID  string  `json:"case_id,omitempty"`
	Urgency Urgency `json:"urgency,omitempty"`
}

// SummaryRequest is the request body of the /api/summary endpoint.
type SummaryRequest struct {
	Messages []Message `json:"messages"`
	Language string    `json:"language,omitempty"`
}

// CaseExport is the user-facing export of a case: the full history plus
// metadata for client-side formatting. Export never mutates the case.
type CaseExport struct {
	CaseID       string    `json:"case_id"`
	CreatedAt    string    `json:"created_at"`
	Language     string    `json:"language"`
	Context      string    `json:"context"`
	MessageCount int       `json:"message_count"`
	Messages     []Message `json:"messages"`
}

// ErrorResponse is the uniform error body. RequiresPIN distinguishes
// "PIN required" from "invalid PIN" inside the 401 status; RequiresConsent
// names the flags that would satisfy a 403.
type ErrorResponse struct {
	Error           string        `json:"error"`
	RequiresPIN     bool          `json:"requiresPin,omitempty"`
	RequiresConsent []ConsentFlag `json:"requires_consent,omitempty"`
}

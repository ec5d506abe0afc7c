package models

// Violation tags recorded by the guardrail filter. At most one tag per
// policy category is recorded for a given response.
const (
	ViolationLegalAdvice   = "legal_advice"
	ViolationMedicalAdvice = "medical_advice"
	ViolationVictimBlaming = "victim_blaming"
	ViolationUrgency       = "urgency"
)

// GuardrailResult is the outcome of checking a generated assistant response
// against the safety policy before it is shown to the user.
type GuardrailResult struct {
	// Safe reports whether the response may be shown unchanged.
	Safe bool `json:"safe"`

	// Violations lists the policy categories the response violated.
	// Empty when Safe is true.
	Violations []string `json:"violations"`

	// FallbackResponse is the canned, language-appropriate reply to show
	// instead of the unsafe response. Nil when Safe is true. The unsafe
	// text is never partially edited: partial edits to generated language
	// risk leaving subtler violations intact.
	FallbackResponse *string `json:"fallback_response"`
}

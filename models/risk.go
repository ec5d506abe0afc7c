package models

// RiskLevel is the overall classification of a message plus its recent
// history.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Signal tags attached to a risk assessment. Signals name the kind of
// pattern that matched, never the matched text.
const (
	SignalImmediateDanger  = "immediate_danger_indicator"
	SignalControlOrFear    = "control_or_fear_indicator"
	SignalConcern          = "concern_indicator"
	SignalRepeatedHighRisk = "repeated_high_risk_patterns"
	SignalRepeatedConcern  = "repeated_concern_patterns"
)

// RiskAssessment is the advisory result of classifying one inbound message.
// It is recomputed per message and never persisted with the case. The
// assessment only changes which options the UI offers; it never triggers
// action on its own.
type RiskAssessment struct {
	// RiskLevel is the overall classification.
	RiskLevel RiskLevel `json:"risk_level"`

	// Signals is the deduplicated set of signal tags that contributed to
	// the classification.
	Signals []string `json:"signals"`

	// RecommendSafetyCheck is true whenever RiskLevel is not low.
	RecommendSafetyCheck bool `json:"recommend_safety_check"`

	// RecommendResources is true only at high risk.
	RecommendResources bool `json:"recommend_resources"`
}

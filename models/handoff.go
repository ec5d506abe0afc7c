package models

import "time"

// Urgency grades a partner handoff.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// Valid reports whether u is one of the three known urgency grades.
func (u Urgency) Valid() bool {
	return u == UrgencyLow || u == UrgencyMedium || u == UrgencyHigh
}

// HandoffPackage is the minimal disclosure object produced when a user hands
// a case to a support partner. It references the case through a one-time
// opaque token and never embeds the message history or any field that was
// not explicitly summarized.
type HandoffPackage struct {
	// Summary is a short, non-identifying synopsis of the conversation.
	// Its size is bounded independent of the history length.
	Summary string `json:"summary"`

	// Language is the conversation language, so the partner can respond
	// in kind.
	Language string `json:"language"`

	// Urgency is the grade chosen by the user when initiating the handoff.
	Urgency Urgency `json:"urgency"`

	// CaseReference is a one-time opaque token of the form "HO-XXXXXXXX".
	// It lets the partner refer back to the handoff without learning the
	// case ID.
	CaseReference string `json:"case_reference"`

	// Method is how the package is delivered to the partner.
	Method string `json:"handoff_method"`
}

// HandoffRecord is the audit entry appended to a case when a handoff is
// initiated. It records the reference, time, and urgency — never the
// summary content.
type HandoffRecord struct {
	Reference   string    `json:"reference"`
	InitiatedAt time.Time `json:"initiated_at"`
	Urgency     Urgency   `json:"urgency"`
	Status      string    `json:"status"`
}

// Partner describes a support organisation a case can be handed to.
type Partner struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Available bool   `json:"available"`
}

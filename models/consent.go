package models

import "time"

// ConsentFlag names the individual permissions a user can grant on a case.
// Consent is deliberately not a single bit: each flag gates a different
// side-effecting action, and no component may perform an action while its
// flag is false.
type ConsentFlag string

const (
	// FlagStoreConversation permits persisting the conversation history.
	FlagStoreConversation ConsentFlag = "store_conversation"

	// FlagShareSummary permits sharing a generated summary with a partner.
	FlagShareSummary ConsentFlag = "share_summary"

	// FlagAllowEscalation permits escalating the case to a counselor.
	FlagAllowEscalation ConsentFlag = "allow_escalation"

	// FlagEmergencyContact permits surfacing emergency contact details.
	FlagEmergencyContact ConsentFlag = "emergency_contact"

	// FlagPartnerHandoff permits handing the case summary to a support
	// partner organisation.
	FlagPartnerHandoff ConsentFlag = "partner_handoff"
)

// ConsentFlags is the per-case permission set. The zero value is the
// correct default: nothing is permitted until the user explicitly says so.
type ConsentFlags struct {
	StoreConversation bool `json:"store_conversation"`
	ShareSummary      bool `json:"share_summary"`
	AllowEscalation   bool `json:"allow_escalation"`
	EmergencyContact  bool `json:"emergency_contact"`
	PartnerHandoff    bool `json:"partner_handoff"`
}

// Value returns the current value of the named flag. Unknown flag names
// report false and ok=false so callers can reject them.
func (f ConsentFlags) Value(flag ConsentFlag) (value bool, ok bool) {
	switch flag {
	case FlagStoreConversation:
		return f.StoreConversation, true
	case FlagShareSummary:
		return f.ShareSummary, true
	case FlagAllowEscalation:
		return f.AllowEscalation, true
	case FlagEmergencyContact:
		return f.EmergencyContact, true
	case FlagPartnerHandoff:
		return f.PartnerHandoff, true
	default:
		return false, false
	}
}

// ConsentAuditEntry is one immutable record of a consent flag change.
// Audit entries are append-only and removed only by whole-case deletion.
type ConsentAuditEntry struct {
	// Flag is the consent flag that changed.
	Flag ConsentFlag `json:"flag"`

	// PreviousValue is the flag value before the change.
	PreviousValue bool `json:"previous_value"`

	// NewValue is the flag value after the change.
	NewValue bool `json:"new_value"`

	// Timestamp is when the change was recorded.
	Timestamp time.Time `json:"timestamp"`
}

package models

import "time"

// Role identifies the author of a conversation message.
type Role string

const (
	// RoleUser marks a message written by the person seeking support.
	RoleUser Role = "user"

	// RoleAssistant marks a message generated by the assistant.
	RoleAssistant Role = "assistant"
)

// Supported conversation languages. Each language carries its own risk and
// guardrail pattern tables; there is no translation step anywhere in the
// system.
const (
	LanguageEnglish = "en"
	LanguageSwahili = "sw"
	LanguageSheng   = "sheng"
)

// Conversation contexts copied from the originating session.
const (
	ContextGeneral  = "general"
	ContextObserver = "observer"
)

// Message is a single entry of a case's conversation history.
type Message struct {
	// Role is the author of the message: "user" or "assistant".
	Role Role `json:"role"`

	// Content is the message text.
	Content string `json:"content"`
}

// Case is the unit of persistence: one anonymous conversation plus its
// consent state. A case is only ever created by explicit user action and
// carries no identity — whoever holds the case ID (and PIN, when set) owns
// the case.
type Case struct {
	// CaseID is a 6-character identifier drawn from an alphabet without
	// visually confusable characters. Stored and compared in uppercase.
	CaseID string `json:"caseId"`

	// PINHash is the hex-encoded Argon2id digest of the 4-digit PIN, or
	// empty when the case has no PIN. The raw PIN is never stored.
	PINHash string `json:"-"`

	// PINSalt is the per-case random salt the PIN was hashed with.
	// Empty when the case has no PIN.
	PINSalt []byte `json:"-"`

	// Messages is the ordered conversation history. Updates replace the
	// whole slice; messages are never edited in place.
	Messages []Message `json:"messages"`

	// Language is the conversation language ("en", "sw", "sheng").
	Language string `json:"language"`

	// Context records how the conversation started: "general" for the
	// person affected, "observer" for a concerned third party.
	Context string `json:"context"`

	// Consent is the per-case permission set. All flags default to false.
	Consent ConsentFlags `json:"consent"`

	// ConsentAudit is the append-only record of consent flag changes.
	ConsentAudit []ConsentAuditEntry `json:"consent_audit"`

	// HandoffHistory is the append-only record of partner handoffs
	// initiated from this case. It holds references only, never summaries.
	HandoffHistory []HandoffRecord `json:"handoff_history"`

	// CreatedAt is when the case was created.
	CreatedAt time.Time `json:"created_at"`

	// LastAccessedAt is the retention clock: the retention sweep deletes
	// cases whose LastAccessedAt is older than the retention window.
	LastAccessedAt time.Time `json:"last_accessed_at"`
}

// HasPIN reports whether the case is PIN-protected.
func (c *Case) HasPIN() bool {
	return c.PINHash != ""
}

// TableName returns the name of the database table associated with the
// Case model.
func (c *Case) TableName() string {
	return "cases"
}

package store

import (
	"context"
	"time"

	"github.com/salamaline/salama/models"
)

// CaseRepository is the persistence contract for cases. All methods expect
// case IDs already normalised to uppercase; normalisation happens once at
// the service boundary.
type CaseRepository interface {
	// CreateCase inserts a new case. Uniqueness of the case ID is enforced
	// by the storage layer; a collision is reported as [ErrCaseIDTaken].
	CreateCase(ctx context.Context, c models.Case) (models.Case, error)

	// GetCase returns the full case record, or [ErrCaseNotFound].
	GetCase(ctx context.Context, caseID string) (models.Case, error)

	// UpdateCase replaces the message history, language, and context of an
	// existing case (full-overwrite semantics) and refreshes the
	// last-accessed timestamp.
	UpdateCase(ctx context.Context, caseID string, messages []models.Message, language, caseContext string) error

	// DeleteCase removes the case permanently. There is no soft delete:
	// a subsequent GetCase returns [ErrCaseNotFound].
	DeleteCase(ctx context.Context, caseID string) error

	// TouchCase refreshes the last-accessed timestamp, which doubles as the
	// retention clock.
	TouchCase(ctx context.Context, caseID string) error

	// UpdateConsentFlag flips a single consent flag and appends the audit
	// entry in one atomic statement. Concurrent updates to different flags
	// on the same case never clobber each other.
	UpdateConsentFlag(ctx context.Context, caseID string, entry models.ConsentAuditEntry) (models.ConsentFlags, error)

	// AppendHandoffRecord appends a handoff audit record to the case.
	AppendHandoffRecord(ctx context.Context, caseID string, record models.HandoffRecord) error

	// DeleteExpiredCases removes every case whose last-accessed timestamp is
	// older than cutoff and returns the deleted case IDs. Idempotent: a
	// second run with no new expirations deletes nothing.
	DeleteExpiredCases(ctx context.Context, cutoff time.Time) ([]string, error)

	// GetCasesAccessedBetween returns case IDs and last-accessed timestamps
	// for cases whose last access falls inside (from, to). Used for the
	// expiring-cases report.
	GetCasesAccessedBetween(ctx context.Context, from, to time.Time) (map[string]time.Time, error)
}

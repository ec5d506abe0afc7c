package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"

	"github.com/salamaline/salama/internal/logger"
	"github.com/salamaline/salama/models"
)

// caseRepository is the PostgreSQL-backed implementation of [CaseRepository].
// It executes all case CRUD operations directly against the "cases" table
// using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (case_id, counts). Conversation content never appears in
// log output.
type caseRepository struct {
	*DB
	logger *logger.Logger
}

// NewCaseRepository constructs a [CaseRepository] backed by the provided
// database connection and logger.
func NewCaseRepository(db *DB, logger *logger.Logger) CaseRepository {
	logger.Debug().Msg("creating case repository")
	return &caseRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateCase persists a new case and returns it with the server-assigned
// timestamps filled in.
//
// Uniqueness of the case ID rests on the table's primary key, not on a
// SELECT-then-INSERT pre-check, so two concurrent creations of the same
// candidate ID cannot both succeed.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrCaseIDTaken]; the caller
//     regenerates the ID and retries.
//   - Any other driver-level error → wrapped as [ErrExecutingQuery].
func (r *caseRepository) CreateCase(ctx context.Context, c models.Case) (models.Case, error) {
	log := logger.FromContext(ctx)

	messagesJSON, err := json.Marshal(c.Messages)
	if err != nil {
		return models.Case{}, fmt.Errorf("marshaling messages: %w", err)
	}
	consentJSON, err := json.Marshal(c.Consent)
	if err != nil {
		return models.Case{}, fmt.Errorf("marshaling consent: %w", err)
	}

	var pinHash sql.NullString
	if c.PINHash != "" {
		pinHash = sql.NullString{String: c.PINHash, Valid: true}
	}

	row := r.DB.QueryRowContext(ctx, createCase,
		c.CaseID, pinHash, c.PINSalt, messagesJSON, c.Language, c.Context, consentJSON)

	if err := row.Scan(&c.CreatedAt, &c.LastAccessedAt); err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			log.Debug().Str("case_id", c.CaseID).Msg("case id collision, caller will retry")
			return models.Case{}, ErrCaseIDTaken
		default:
			log.Err(err).
				Str("func", "caseRepository.CreateCase").
				Bool("retryable", r.errorClassificator.Classify(err) == Retryable).
				Msg("failed to insert case")
			return models.Case{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return c, nil
}

// GetCase retrieves the full case record for the given (already uppercased)
// case ID.
//
// Returns [ErrCaseNotFound] when no row matches.
func (r *caseRepository) GetCase(ctx context.Context, caseID string) (models.Case, error) {
	log := logger.FromContext(ctx)

	var (
		c            models.Case
		pinHash      sql.NullString
		messagesJSON []byte
		consentJSON  []byte
		auditJSON    []byte
		handoffJSON  []byte
	)

	row := r.DB.QueryRowContext(ctx, getCase, caseID)
	err := row.Scan(
		&c.CaseID,
		&pinHash,
		&c.PINSalt,
		&messagesJSON,
		&c.Language,
		&c.Context,
		&consentJSON,
		&auditJSON,
		&handoffJSON,
		&c.CreatedAt,
		&c.LastAccessedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Case{}, ErrCaseNotFound
		}
		log.Err(err).
			Str("func", "caseRepository.GetCase").
			Str("case_id", caseID).
			Msg("failed to scan case row")
		return models.Case{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	c.PINHash = pinHash.String

	if err := json.Unmarshal(messagesJSON, &c.Messages); err != nil {
		return models.Case{}, fmt.Errorf("%w: messages: %w", ErrScanningRow, err)
	}
	if err := json.Unmarshal(consentJSON, &c.Consent); err != nil {
		return models.Case{}, fmt.Errorf("%w: consent: %w", ErrScanningRow, err)
	}
	if err := json.Unmarshal(auditJSON, &c.ConsentAudit); err != nil {
		return models.Case{}, fmt.Errorf("%w: consent audit: %w", ErrScanningRow, err)
	}
	if err := json.Unmarshal(handoffJSON, &c.HandoffHistory); err != nil {
		return models.Case{}, fmt.Errorf("%w: handoff history: %w", ErrScanningRow, err)
	}

	return c, nil
}

// UpdateCase replaces the message history, language, and context of the case
// and refreshes the last-accessed timestamp. The message array is replaced
// wholesale; callers send the complete current history.
//
// Returns [ErrCaseNotFound] when the case does not exist.
func (r *caseRepository) UpdateCase(ctx context.Context, caseID string, messages []models.Message, language, caseContext string) error {
	log := logger.FromContext(ctx)

	messagesJSON, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("marshaling messages: %w", err)
	}

	result, err := r.DB.ExecContext(ctx, updateCase, caseID, messagesJSON, language, caseContext)
	if err != nil {
		log.Err(err).
			Str("func", "caseRepository.UpdateCase").
			Str("case_id", caseID).
			Int("message_count", len(messages)).
			Msg("failed to update case")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return r.requireOneRow(result, caseID)
}

// DeleteCase removes the case permanently. Deletion is irreversible: there
// is no soft-delete state that a later request could resurrect.
//
// Returns [ErrCaseNotFound] when the case does not exist.
func (r *caseRepository) DeleteCase(ctx context.Context, caseID string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteCase, caseID)
	if err != nil {
		log.Err(err).
			Str("func", "caseRepository.DeleteCase").
			Str("case_id", caseID).
			Msg("failed to delete case")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return r.requireOneRow(result, caseID)
}

// TouchCase refreshes the last-accessed timestamp of the case, pushing its
// retention expiry out by a full window.
func (r *caseRepository) TouchCase(ctx context.Context, caseID string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, touchCase, caseID)
	if err != nil {
		log.Err(err).
			Str("func", "caseRepository.TouchCase").
			Str("case_id", caseID).
			Msg("failed to touch case")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return r.requireOneRow(result, caseID)
}

// UpdateConsentFlag flips one consent flag and appends its audit entry in a
// single UPDATE statement, so the two can never be persisted separately.
// The returned flag set is the post-update state read back from the same
// statement.
//
// Returns [ErrCaseNotFound] when the case does not exist.
func (r *caseRepository) UpdateConsentFlag(ctx context.Context, caseID string, entry models.ConsentAuditEntry) (models.ConsentFlags, error) {
	log := logger.FromContext(ctx)

	auditJSON, err := json.Marshal([]models.ConsentAuditEntry{entry})
	if err != nil {
		return models.ConsentFlags{}, fmt.Errorf("marshaling audit entry: %w", err)
	}

	var consentJSON []byte
	row := r.DB.QueryRowContext(ctx, updateConsentFlag, caseID, string(entry.Flag), entry.NewValue, auditJSON)
	if err := row.Scan(&consentJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ConsentFlags{}, ErrCaseNotFound
		}
		log.Err(err).
			Str("func", "caseRepository.UpdateConsentFlag").
			Str("case_id", caseID).
			Str("flag", string(entry.Flag)).
			Msg("failed to update consent flag")
		return models.ConsentFlags{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var flags models.ConsentFlags
	if err := json.Unmarshal(consentJSON, &flags); err != nil {
		return models.ConsentFlags{}, fmt.Errorf("%w: consent: %w", ErrScanningRow, err)
	}

	log.Info().
		Str("case_id", caseID).
		Str("flag", string(entry.Flag)).
		Bool("value", entry.NewValue).
		Msg("consent flag updated")

	return flags, nil
}

// AppendHandoffRecord appends one handoff audit record to the case's
// handoff history. The record carries the reference, timestamp, urgency,
// and status only — never the summary content.
func (r *caseRepository) AppendHandoffRecord(ctx context.Context, caseID string, record models.HandoffRecord) error {
	log := logger.FromContext(ctx)

	recordJSON, err := json.Marshal([]models.HandoffRecord{record})
	if err != nil {
		return fmt.Errorf("marshaling handoff record: %w", err)
	}

	result, err := r.DB.ExecContext(ctx, appendHandoffRecord, caseID, recordJSON)
	if err != nil {
		log.Err(err).
			Str("func", "caseRepository.AppendHandoffRecord").
			Str("case_id", caseID).
			Msg("failed to append handoff record")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return r.requireOneRow(result, caseID)
}

// DeleteExpiredCases removes every case last accessed before cutoff and
// returns the deleted IDs. Running it twice with no intervening access is a
// no-op the second time: the predicate is pure, so already-deleted rows
// simply no longer match.
func (r *caseRepository) DeleteExpiredCases(ctx context.Context, cutoff time.Time) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, deleteExpiredCases, cutoff)
	if err != nil {
		log.Err(err).
			Str("func", "caseRepository.DeleteExpiredCases").
			Time("cutoff", cutoff).
			Msg("failed to delete expired cases")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	deleted := make([]string, 0, 16)
	for rows.Next() {
		var caseID string
		if scanErr := rows.Scan(&caseID); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		deleted = append(deleted, caseID)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	log.Info().
		Int("deleted_count", len(deleted)).
		Time("cutoff", cutoff).
		Msg("expired cases deleted")

	return deleted, nil
}

// GetCasesAccessedBetween returns case IDs with last-accessed timestamps in
// the open interval (from, to). Read-only; used by the expiring-cases
// report.
func (r *caseRepository) GetCasesAccessedBetween(ctx context.Context, from, to time.Time) (map[string]time.Time, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getCasesAccessedBetween, from, to)
	if err != nil {
		log.Err(err).
			Str("func", "caseRepository.GetCasesAccessedBetween").
			Msg("failed to query expiring cases")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make(map[string]time.Time, 16)
	for rows.Next() {
		var (
			caseID       string
			lastAccessed time.Time
		)
		if scanErr := rows.Scan(&caseID, &lastAccessed); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		result[caseID] = lastAccessed
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return result, nil
}

// requireOneRow converts a zero-rows-affected result into the appropriate
// sentinel: the statement ran fine but targeted a case that does not exist.
func (r *caseRepository) requireOneRow(result sql.Result, caseID string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrCaseNotFound
	}

	return nil
}

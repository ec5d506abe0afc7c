package store

const (
	createCase = `INSERT INTO cases (case_id, pin_hash, pin_salt, messages, language, context, consent)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING created_at, last_accessed_at;`

	getCase = `SELECT case_id, pin_hash, pin_salt, messages, language, context, consent, consent_audit, handoff_history, created_at, last_accessed_at
    FROM cases
    WHERE case_id = $1;`

	updateCase = `UPDATE cases
    SET messages = $2, language = $3, context = $4, last_accessed_at = NOW()
    WHERE case_id = $1;`

	deleteCase = `DELETE FROM cases
    WHERE case_id = $1;`

	touchCase = `UPDATE cases
    SET last_accessed_at = NOW()
    WHERE case_id = $1;`

	// updateConsentFlag flips exactly one key inside the consent document and
	// appends the audit entry in the same statement. Updating at flag
	// granularity means two concurrent updates to different flags merge
	// instead of clobbering each other, and the flag change can never be
	// persisted without its audit record.
	updateConsentFlag = `UPDATE cases
    SET consent = jsonb_set(consent, ARRAY[$2::text], to_jsonb($3::boolean), true),
        consent_audit = consent_audit || $4::jsonb
    WHERE case_id = $1
    RETURNING consent;`

	appendHandoffRecord = `UPDATE cases
    SET handoff_history = handoff_history || $2::jsonb
    WHERE case_id = $1;`

	deleteExpiredCases = `DELETE FROM cases
    WHERE last_accessed_at < $1
    RETURNING case_id;`

	getCasesAccessedBetween = `SELECT case_id, last_accessed_at
    FROM cases
    WHERE last_accessed_at > $1 AND last_accessed_at < $2;`
)

package service

import (
	"context"
	"sync"
	"time"

	"github.com/salamaline/salama/internal/store"
	"github.com/salamaline/salama/models"
)

// memoryCaseRepository is an in-memory stand-in for the Postgres-backed
// repository, faithful to its error contract (ErrCaseNotFound,
// ErrCaseIDTaken).
type memoryCaseRepository struct {
	mu    sync.Mutex
	cases map[string]models.Case

	// failCreates makes the next N CreateCase calls report an ID collision.
	failCreates int
	createCalls int
}

func newMemoryCaseRepository() *memoryCaseRepository {
	return &memoryCaseRepository{cases: make(map[string]models.Case)}
}

func (m *memoryCaseRepository) CreateCase(_ context.Context, c models.Case) (models.Case, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.createCalls++
	if m.failCreates > 0 {
		m.failCreates--
		return models.Case{}, store.ErrCaseIDTaken
	}
	if _, exists := m.cases[c.CaseID]; exists {
		return models.Case{}, store.ErrCaseIDTaken
	}

	now := time.Now().UTC()
	c.CreatedAt = now
	c.LastAccessedAt = now
	m.cases[c.CaseID] = c

	return c, nil
}

func (m *memoryCaseRepository) GetCase(_ context.Context, caseID string) (models.Case, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.cases[caseID]
	if !ok {
		return models.Case{}, store.ErrCaseNotFound
	}

	return c, nil
}

func (m *memoryCaseRepository) UpdateCase(_ context.Context, caseID string, messages []models.Message, language, caseContext string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.cases[caseID]
	if !ok {
		return store.ErrCaseNotFound
	}

	c.Messages = messages
	c.Language = language
	c.Context = caseContext
	c.LastAccessedAt = time.Now().UTC()
	m.cases[caseID] = c

	return nil
}

func (m *memoryCaseRepository) DeleteCase(_ context.Context, caseID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.cases[caseID]; !ok {
		return store.ErrCaseNotFound
	}
	delete(m.cases, caseID)

	return nil
}

func (m *memoryCaseRepository) TouchCase(_ context.Context, caseID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.cases[caseID]
	if !ok {
		return store.ErrCaseNotFound
	}

	c.LastAccessedAt = time.Now().UTC()
	m.cases[caseID] = c

	return nil
}

func (m *memoryCaseRepository) UpdateConsentFlag(_ context.Context, caseID string, entry models.ConsentAuditEntry) (models.ConsentFlags, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.cases[caseID]
	if !ok {
		return models.ConsentFlags{}, store.ErrCaseNotFound
	}

	switch entry.Flag {
	case models.FlagStoreConversation:
		c.Consent.StoreConversation = entry.NewValue
	case models.FlagShareSummary:
		c.Consent.ShareSummary = entry.NewValue
	case models.FlagAllowEscalation:
		c.Consent.AllowEscalation = entry.NewValue
	case models.FlagEmergencyContact:
		c.Consent.EmergencyContact = entry.NewValue
	case models.FlagPartnerHandoff:
		c.Consent.PartnerHandoff = entry.NewValue
	}
	c.ConsentAudit = append(c.ConsentAudit, entry)
	m.cases[caseID] = c

	return c.Consent, nil
}

func (m *memoryCaseRepository) AppendHandoffRecord(_ context.Context, caseID string, record models.HandoffRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.cases[caseID]
	if !ok {
		return store.ErrCaseNotFound
	}

	c.HandoffHistory = append(c.HandoffHistory, record)
	m.cases[caseID] = c

	return nil
}

func (m *memoryCaseRepository) DeleteExpiredCases(_ context.Context, cutoff time.Time) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	deleted := make([]string, 0)
	for id, c := range m.cases {
		if c.LastAccessedAt.Before(cutoff) {
			deleted = append(deleted, id)
			delete(m.cases, id)
		}
	}

	return deleted, nil
}

func (m *memoryCaseRepository) GetCasesAccessedBetween(_ context.Context, from, to time.Time) (map[string]time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]time.Time)
	for id, c := range m.cases {
		if c.LastAccessedAt.After(from) && c.LastAccessedAt.Before(to) {
			out[id] = c.LastAccessedAt
		}
	}

	return out, nil
}

// seed installs a case directly, bypassing the service layer.
func (m *memoryCaseRepository) seed(c models.Case) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	if c.LastAccessedAt.IsZero() {
		c.LastAccessedAt = time.Now().UTC()
	}
	m.cases[c.CaseID] = c
}

// get returns the stored case without the not-found error dance.
func (m *memoryCaseRepository) get(caseID string) (models.Case, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.cases[caseID]
	return c, ok
}

// fakeSummarizer records calls and returns a fixed summary or error.
type fakeSummarizer struct {
	summary string
	err     error
	calls   int

	lastLanguage string
}

func (f *fakeSummarizer) Summarize(_ context.Context, _ []models.Message, language string) (string, error) {
	f.calls++
	f.lastLanguage = language
	if f.err != nil {
		return "", f.err
	}

	return f.summary, nil
}

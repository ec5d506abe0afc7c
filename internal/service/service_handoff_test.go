package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salamaline/salama/internal/logger"
	"github.com/salamaline/salama/internal/store"
	"github.com/salamaline/salama/models"
)

func newHandoffServiceWithDeps(summarizer *fakeSummarizer) (HandoffService, *memoryCaseRepository) {
	repo := newMemoryCaseRepository()
	consent := NewConsentService(repo, logger.Nop())
	return NewHandoffService(repo, consent, summarizer, logger.Nop()), repo
}

func seedConsentedCase(repo *memoryCaseRepository) {
	repo.seed(models.Case{
		CaseID:   "ABC234",
		Messages: []models.Message{{Role: models.RoleUser, Content: "I need help"}},
		Language: "sw",
		Consent:  models.ConsentFlags{PartnerHandoff: true},
	})
}

func TestHandoffInitiate_Success(t *testing.T) {
	summarizer := &fakeSummarizer{summary: "User seeking support about safety at home."}
	svc, repo := newHandoffServiceWithDeps(summarizer)
	seedConsentedCase(repo)

	pkg, err := svc.Initiate(context.Background(), "abc234", models.UrgencyHigh)
	require.NoError(t, err)

	assert.Equal(t, "User seeking support about safety at home.", pkg.Summary)
	assert.Equal(t, "sw", pkg.Language)
	assert.Equal(t, models.UrgencyHigh, pkg.Urgency)
	assert.True(t, strings.HasPrefix(pkg.CaseReference, "HO-"))
	assert.Len(t, pkg.CaseReference, 11)
	assert.Equal(t, "secure_api", pkg.Method)
	assert.Equal(t, "sw", summarizer.lastLanguage)
}

func TestHandoffInitiate_AppendsAuditRecord(t *testing.T) {
	svc, repo := newHandoffServiceWithDeps(&fakeSummarizer{summary: "s"})
	seedConsentedCase(repo)

	pkg, err := svc.Initiate(context.Background(), "ABC234", models.UrgencyLow)
	require.NoError(t, err)

	stored, _ := repo.get("ABC234")
	require.Len(t, stored.HandoffHistory, 1)
	record := stored.HandoffHistory[0]
	assert.Equal(t, pkg.CaseReference, record.Reference)
	assert.Equal(t, models.UrgencyLow, record.Urgency)
	assert.Equal(t, "pending", record.Status)
	assert.False(t, record.InitiatedAt.IsZero())
}

func TestHandoffInitiate_NoConsent(t *testing.T) {
	summarizer := &fakeSummarizer{summary: "s"}
	svc, repo := newHandoffServiceWithDeps(summarizer)
	repo.seed(models.Case{
		CaseID:   "ABC234",
		Messages: []models.Message{{Role: models.RoleUser, Content: "hello"}},
		Language: "en",
	})

	_, err := svc.Initiate(context.Background(), "ABC234", models.UrgencyMedium)
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrConsentDenied)
	var consentErr *ConsentRequiredError
	require.True(t, errors.As(err, &consentErr))
	assert.Equal(t, []models.ConsentFlag{models.FlagAllowEscalation, models.FlagPartnerHandoff}, consentErr.Flags)

	assert.Zero(t, summarizer.calls, "no content may reach the summarizer without consent")

	stored, _ := repo.get("ABC234")
	assert.Empty(t, stored.HandoffHistory)
}

func TestHandoffInitiate_EscalationConsentSuffices(t *testing.T) {
	svc, repo := newHandoffServiceWithDeps(&fakeSummarizer{summary: "s"})
	repo.seed(models.Case{
		CaseID:  "ABC234",
		Consent: models.ConsentFlags{AllowEscalation: true},
	})

	_, err := svc.Initiate(context.Background(), "ABC234", models.UrgencyMedium)
	assert.NoError(t, err)
}

func TestHandoffInitiate_DefaultUrgencyIsMedium(t *testing.T) {
	svc, repo := newHandoffServiceWithDeps(&fakeSummarizer{summary: "s"})
	seedConsentedCase(repo)

	pkg, err := svc.Initiate(context.Background(), "ABC234", "")
	require.NoError(t, err)
	assert.Equal(t, models.UrgencyMedium, pkg.Urgency)
}

func TestHandoffInitiate_InvalidUrgency(t *testing.T) {
	svc, repo := newHandoffServiceWithDeps(&fakeSummarizer{summary: "s"})
	seedConsentedCase(repo)

	_, err := svc.Initiate(context.Background(), "ABC234", "critical")
	assert.ErrorIs(t, err, ErrInvalidUrgency)
}

func TestHandoffInitiate_CaseNotFound(t *testing.T) {
	svc, _ := newHandoffServiceWithDeps(&fakeSummarizer{summary: "s"})

	_, err := svc.Initiate(context.Background(), "MISSNG", models.UrgencyMedium)
	assert.ErrorIs(t, err, store.ErrCaseNotFound)
}

func TestHandoffInitiate_EmptyCaseID(t *testing.T) {
	svc, _ := newHandoffServiceWithDeps(&fakeSummarizer{summary: "s"})

	_, err := svc.Initiate(context.Background(), "", models.UrgencyMedium)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestHandoffInitiate_SummarizerFailureDegrades(t *testing.T) {
	svc, repo := newHandoffServiceWithDeps(&fakeSummarizer{err: errors.New("gateway down")})
	seedConsentedCase(repo)

	pkg, err := svc.Initiate(context.Background(), "ABC234", models.UrgencyMedium)
	require.NoError(t, err, "handoff must survive a summarizer outage")
	assert.Equal(t, summaryUnavailable, pkg.Summary)
}

func TestHandoffInitiate_NoMessagesSkipsSummarizer(t *testing.T) {
	summarizer := &fakeSummarizer{summary: "s"}
	svc, repo := newHandoffServiceWithDeps(summarizer)
	repo.seed(models.Case{
		CaseID:  "ABC234",
		Consent: models.ConsentFlags{PartnerHandoff: true},
	})

	pkg, err := svc.Initiate(context.Background(), "ABC234", models.UrgencyMedium)
	require.NoError(t, err)
	assert.Equal(t, summaryNoMessages, pkg.Summary)
	assert.Zero(t, summarizer.calls)
}

func TestHandoffInitiate_DistinctReferences(t *testing.T) {
	svc, repo := newHandoffServiceWithDeps(&fakeSummarizer{summary: "s"})
	seedConsentedCase(repo)

	first, err := svc.Initiate(context.Background(), "ABC234", models.UrgencyMedium)
	require.NoError(t, err)
	second, err := svc.Initiate(context.Background(), "ABC234", models.UrgencyMedium)
	require.NoError(t, err)

	assert.NotEqual(t, first.CaseReference, second.CaseReference)

	stored, _ := repo.get("ABC234")
	assert.Len(t, stored.HandoffHistory, 2)
}

func TestListPartners(t *testing.T) {
	svc, _ := newHandoffServiceWithDeps(&fakeSummarizer{summary: "s"})

	partners := svc.ListPartners()
	require.Len(t, partners, 3)

	types := make([]string, 0, len(partners))
	for _, p := range partners {
		types = append(types, p.Type)
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
	}
	assert.ElementsMatch(t, []string{"healthcare", "legal", "counseling"}, types)
}

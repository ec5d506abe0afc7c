package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salamaline/salama/internal/logger"
	"github.com/salamaline/salama/internal/store"
	"github.com/salamaline/salama/models"
)

func newCaseServiceWithRepo() (CaseService, *memoryCaseRepository) {
	repo := newMemoryCaseRepository()
	return NewCaseService(repo, logger.Nop()), repo
}

func TestCaseCreate_NoPIN(t *testing.T) {
	svc, repo := newCaseServiceWithRepo()

	caseID, err := svc.Create(context.Background(), "", []models.Message{
		{Role: models.RoleUser, Content: "hello"},
	}, "en", "general")
	require.NoError(t, err)

	assert.Len(t, caseID, 6)
	assert.Equal(t, strings.ToUpper(caseID), caseID)

	stored, ok := repo.get(caseID)
	require.True(t, ok)
	assert.False(t, stored.HasPIN())
	assert.Equal(t, models.ConsentFlags{}, stored.Consent, "all consent defaults to false")
}

func TestCaseCreate_WithPIN(t *testing.T) {
	svc, repo := newCaseServiceWithRepo()

	caseID, err := svc.Create(context.Background(), "1234", nil, "sw", "observer")
	require.NoError(t, err)

	stored, ok := repo.get(caseID)
	require.True(t, ok)
	assert.True(t, stored.HasPIN())
	assert.NotEqual(t, "1234", stored.PINHash)
	assert.NotEmpty(t, stored.PINSalt)
	assert.Equal(t, "sw", stored.Language)
	assert.Equal(t, "observer", stored.Context)
}

func TestCaseCreate_InvalidPINFormat(t *testing.T) {
	svc, _ := newCaseServiceWithRepo()

	for _, pin := range []string{"123", "12345", "abcd", "12 4"} {
		_, err := svc.Create(context.Background(), pin, nil, "en", "general")
		assert.ErrorIs(t, err, ErrInvalidPINFormat, "pin %q", pin)
	}
}

func TestCaseCreate_DefaultsLanguageAndContext(t *testing.T) {
	svc, repo := newCaseServiceWithRepo()

	caseID, err := svc.Create(context.Background(), "", nil, "klingon", "unknown")
	require.NoError(t, err)

	stored, _ := repo.get(caseID)
	assert.Equal(t, models.LanguageEnglish, stored.Language)
	assert.Equal(t, models.ContextGeneral, stored.Context)
}

func TestCaseCreate_RetriesOnCollision(t *testing.T) {
	svc, repo := newCaseServiceWithRepo()
	repo.failCreates = 2

	caseID, err := svc.Create(context.Background(), "", nil, "en", "general")
	require.NoError(t, err)
	assert.NotEmpty(t, caseID)
	assert.Equal(t, 3, repo.createCalls)
}

func TestCaseCreate_CollisionBudgetExhausted(t *testing.T) {
	svc, repo := newCaseServiceWithRepo()
	repo.failCreates = maxCaseIDAttempts

	_, err := svc.Create(context.Background(), "", nil, "en", "general")
	assert.ErrorIs(t, err, ErrCaseIDGenerationFailed)
	assert.Equal(t, maxCaseIDAttempts, repo.createCalls)
}

func TestCaseLoad_Success(t *testing.T) {
	svc, repo := newCaseServiceWithRepo()
	repo.seed(models.Case{
		CaseID:   "ABC234",
		Messages: []models.Message{{Role: models.RoleUser, Content: "hello"}},
		Language: "en",
		Context:  "general",
	})

	loaded, err := svc.Load(context.Background(), "ABC234", "")
	require.NoError(t, err)
	assert.Len(t, loaded.Messages, 1)
}

func TestCaseLoad_NormalizesCaseID(t *testing.T) {
	svc, repo := newCaseServiceWithRepo()
	repo.seed(models.Case{CaseID: "ABC234"})

	_, err := svc.Load(context.Background(), "  abc234 ", "")
	assert.NoError(t, err)
}

func TestCaseLoad_NotFound(t *testing.T) {
	svc, _ := newCaseServiceWithRepo()

	_, err := svc.Load(context.Background(), "MISSNG", "")
	assert.ErrorIs(t, err, store.ErrCaseNotFound)
}

func TestCaseLoad_PINRequired(t *testing.T) {
	svc, repo := newCaseServiceWithRepo()
	hash, salt, err := hashPIN("1234")
	require.NoError(t, err)
	repo.seed(models.Case{CaseID: "ABC234", PINHash: hash, PINSalt: salt})

	_, err = svc.Load(context.Background(), "ABC234", "")
	assert.ErrorIs(t, err, ErrPINRequired)
}

func TestCaseLoad_InvalidPIN(t *testing.T) {
	svc, repo := newCaseServiceWithRepo()
	hash, salt, err := hashPIN("1234")
	require.NoError(t, err)
	repo.seed(models.Case{CaseID: "ABC234", PINHash: hash, PINSalt: salt})

	_, err = svc.Load(context.Background(), "ABC234", "9999")
	assert.ErrorIs(t, err, ErrInvalidPIN)
}

func TestCaseLoad_CorrectPIN(t *testing.T) {
	svc, repo := newCaseServiceWithRepo()
	hash, salt, err := hashPIN("1234")
	require.NoError(t, err)
	repo.seed(models.Case{CaseID: "ABC234", PINHash: hash, PINSalt: salt})

	_, err = svc.Load(context.Background(), "ABC234", "1234")
	assert.NoError(t, err)
}

func TestCaseLoad_RefreshesRetentionClock(t *testing.T) {
	svc, repo := newCaseServiceWithRepo()
	old := time.Now().AddDate(0, 0, -20)
	repo.seed(models.Case{CaseID: "ABC234", LastAccessedAt: old})

	_, err := svc.Load(context.Background(), "ABC234", "")
	require.NoError(t, err)

	stored, _ := repo.get("ABC234")
	assert.True(t, stored.LastAccessedAt.After(old), "load must refresh last_accessed_at")
}

func TestCaseUpdate_OverwritesMessages(t *testing.T) {
	svc, repo := newCaseServiceWithRepo()
	repo.seed(models.Case{
		CaseID:   "ABC234",
		Messages: []models.Message{{Role: models.RoleUser, Content: "old"}},
		Language: "en",
		Context:  "general",
	})

	newMessages := []models.Message{
		{Role: models.RoleUser, Content: "first"},
		{Role: models.RoleAssistant, Content: "second"},
	}
	err := svc.Update(context.Background(), "ABC234", "", newMessages, "", "")
	require.NoError(t, err)

	stored, _ := repo.get("ABC234")
	assert.Equal(t, newMessages, stored.Messages)
	assert.Equal(t, "en", stored.Language, "empty language keeps the stored one")
}

func TestCaseUpdate_WrongPINLeavesCaseUntouched(t *testing.T) {
	svc, repo := newCaseServiceWithRepo()
	hash, salt, err := hashPIN("1234")
	require.NoError(t, err)
	original := []models.Message{{Role: models.RoleUser, Content: "original"}}
	repo.seed(models.Case{CaseID: "ABC234", PINHash: hash, PINSalt: salt, Messages: original})

	err = svc.Update(context.Background(), "ABC234", "0000", nil, "en", "general")
	assert.ErrorIs(t, err, ErrInvalidPIN)

	stored, _ := repo.get("ABC234")
	assert.Equal(t, original, stored.Messages)
}

func TestCaseDelete_HardDelete(t *testing.T) {
	svc, repo := newCaseServiceWithRepo()
	repo.seed(models.Case{CaseID: "ABC234"})

	require.NoError(t, svc.Delete(context.Background(), "ABC234", ""))

	_, err := svc.Load(context.Background(), "ABC234", "")
	assert.ErrorIs(t, err, store.ErrCaseNotFound)
}

func TestCaseDelete_PINGated(t *testing.T) {
	svc, repo := newCaseServiceWithRepo()
	hash, salt, err := hashPIN("1234")
	require.NoError(t, err)
	repo.seed(models.Case{CaseID: "ABC234", PINHash: hash, PINSalt: salt})

	assert.ErrorIs(t, svc.Delete(context.Background(), "ABC234", ""), ErrPINRequired)
	assert.ErrorIs(t, svc.Delete(context.Background(), "ABC234", "0000"), ErrInvalidPIN)

	_, ok := repo.get("ABC234")
	assert.True(t, ok, "failed delete must not remove the case")
}

func TestCaseExport_MetadataAndMessages(t *testing.T) {
	svc, repo := newCaseServiceWithRepo()
	created := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	repo.seed(models.Case{
		CaseID: "ABC234",
		Messages: []models.Message{
			{Role: models.RoleUser, Content: "one"},
			{Role: models.RoleAssistant, Content: "two"},
		},
		Language:  "sw",
		Context:   "observer",
		CreatedAt: created,
	})

	export, err := svc.Export(context.Background(), "ABC234", "")
	require.NoError(t, err)

	assert.Equal(t, "ABC234", export.CaseID)
	assert.Equal(t, created.Format(time.RFC3339), export.CreatedAt)
	assert.Equal(t, "sw", export.Language)
	assert.Equal(t, "observer", export.Context)
	assert.Equal(t, 2, export.MessageCount)
	assert.Len(t, export.Messages, 2)
}

func TestCaseExport_DoesNotTouchRetentionClock(t *testing.T) {
	svc, repo := newCaseServiceWithRepo()
	old := time.Now().AddDate(0, 0, -10)
	repo.seed(models.Case{CaseID: "ABC234", LastAccessedAt: old})

	_, err := svc.Export(context.Background(), "ABC234", "")
	require.NoError(t, err)

	stored, _ := repo.get("ABC234")
	assert.Equal(t, old, stored.LastAccessedAt, "export is read-only")
}

func TestCase_EmptyCaseID(t *testing.T) {
	svc, _ := newCaseServiceWithRepo()

	_, err := svc.Load(context.Background(), "   ", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

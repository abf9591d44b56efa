package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/influencer-sales-api/infrastructure/repository"
	"github.com/vfg2006/influencer-sales-api/internal/domain"
)

func TestStore_VerificationCodes(t *testing.T) {
	ctx := context.Background()
	store := New()
	repo := store.Acceptances()
	expires := time.Date(2025, 10, 1, 12, 5, 0, 0, time.UTC)

	first := &domain.VerificationCode{UserID: 42, Code: "042315", ExpiresAt: expires}
	require.NoError(t, repo.InsertCode(ctx, first))
	assert.NotZero(t, first.ID)

	found, err := repo.FindCode(ctx, 42, "042315")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.False(t, found.Used)

	missing, err := repo.FindCode(ctx, 7, "042315")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.InvalidateCodes(ctx, 42))
	found, err = repo.FindCode(ctx, 42, "042315")
	require.NoError(t, err)
	assert.True(t, found.Used)

	// o mesmo valor reenviado prevalece sobre o invalidado
	second := &domain.VerificationCode{UserID: 42, Code: "042315", ExpiresAt: expires.Add(time.Minute)}
	require.NoError(t, repo.InsertCode(ctx, second))
	found, err = repo.FindCode(ctx, 42, "042315")
	require.NoError(t, err)
	assert.Equal(t, second.ID, found.ID)
	assert.False(t, found.Used)

	require.NoError(t, repo.MarkCodeUsed(ctx, second.ID))
	found, err = repo.FindCode(ctx, 42, "042315")
	require.NoError(t, err)
	assert.True(t, found.Used)

	assert.ErrorIs(t, repo.MarkCodeUsed(ctx, 999), repository.ErrNotFound)
}

func TestStore_LatestAcceptance(t *testing.T) {
	ctx := context.Background()
	repo := New().Acceptances()
	accepted := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

	latest, err := repo.LatestAcceptance(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, latest)

	require.NoError(t, repo.InsertAcceptance(ctx, &domain.TermsAcceptance{UserID: 42, TermsVersion: "parceria-v2", AcceptedAt: accepted}))
	require.NoError(t, repo.InsertAcceptance(ctx, &domain.TermsAcceptance{UserID: 42, TermsVersion: "parceria-v1", AcceptedAt: accepted.Add(-time.Hour)}))
	require.NoError(t, repo.InsertAcceptance(ctx, &domain.TermsAcceptance{UserID: 7, TermsVersion: "parceria-v3", AcceptedAt: accepted.Add(time.Hour)}))

	latest, err = repo.LatestAcceptance(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "parceria-v2", latest.TermsVersion)
	assert.NotZero(t, latest.ID)
}

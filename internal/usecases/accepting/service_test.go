package accepting

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mailmocks "github.com/vfg2006/influencer-sales-api/infrastructure/mail/mocks"
	"github.com/vfg2006/influencer-sales-api/infrastructure/repository/memory"
	"github.com/vfg2006/influencer-sales-api/internal/config"
	"github.com/vfg2006/influencer-sales-api/internal/domain"
	"github.com/vfg2006/influencer-sales-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var (
	master     = &domain.Claims{UserID: 1, Role: domain.RoleMaster}
	influencer = &domain.Claims{UserID: 42, Role: domain.RoleInfluencer}
	fixedNow   = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	origin     = domain.AcceptanceOrigin{IPAddress: "200.1.2.3", UserAgent: "Mozilla/5.0"}
)

func int64Ptr(v int64) *int64 {
	return &v
}

func newTestService(t *testing.T, store *memory.Store, sender *mailmocks.MockCodeSender) *Service {
	t.Helper()

	service := NewService(store.Acceptances(), store.Affiliates(), sender, Terms{Version: "parceria-v1", Hash: "abc123"}, 5*time.Minute).(*Service)
	service.now = func() time.Time { return fixedNow }
	service.newCode = func() (string, error) { return "042315", nil }

	return service
}

func seedInfluencer(t *testing.T, store *memory.Store, email string) {
	t.Helper()

	affiliate := &domain.Affiliate{Name: "Ana", Instagram: "@ana", Email: email, LinkedUserID: int64Ptr(influencer.UserID)}
	require.NoError(t, store.Affiliates().Create(context.Background(), affiliate))
}

func assertAcceptanceCode(t *testing.T, err error, code string) {
	t.Helper()

	var acceptanceErr *AcceptanceError
	require.True(t, errors.As(err, &acceptanceErr), "esperado AcceptanceError, obtido %v", err)
	assert.Equal(t, code, acceptanceErr.Code)
}

func TestService_SendAndValidateCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	store := memory.New()
	seedInfluencer(t, store, " ana@exemplo.com ")

	sender := mailmocks.NewMockCodeSender(ctrl)
	sender.EXPECT().SendVerificationCode(gomock.Any(), "ana@exemplo.com", "042315", 5*time.Minute).Return(nil)

	service := newTestService(t, store, sender)

	accepted, err := service.SendCode(ctx, influencer)
	require.NoError(t, err)
	assert.False(t, accepted)

	status, err := service.Status(ctx, influencer)
	require.NoError(t, err)
	assert.False(t, status.Accepted)
	assert.Nil(t, status.Record)

	accepted, err = service.ValidateCode(ctx, influencer, " 042-315 ", origin)
	require.NoError(t, err)
	assert.False(t, accepted)

	status, err = service.Status(ctx, influencer)
	require.NoError(t, err)
	assert.True(t, status.Accepted)
	assert.Equal(t, "parceria-v1", status.CurrentVersion)
	require.NotNil(t, status.Record)
	assert.Equal(t, "abc123", status.Record.TermsHash)
	assert.Equal(t, fixedNow, status.Record.AcceptedAt)

	latest, err := store.Acceptances().LatestAcceptance(ctx, influencer.UserID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "200.1.2.3", latest.IPAddress)
	assert.Equal(t, "Mozilla/5.0", latest.UserAgent)
	assert.Equal(t, domain.AcceptanceChannelEmailCode, latest.Channel)
	assert.Equal(t, domain.AcceptanceStatusAccepted, latest.Status)

	// com o aceite da versão vigente nenhum código novo é enviado
	accepted, err = service.SendCode(ctx, influencer)
	require.NoError(t, err)
	assert.True(t, accepted)

	accepted, err = service.ValidateCode(ctx, influencer, "999999", origin)
	require.NoError(t, err)
	assert.True(t, accepted)
}

func TestService_NewVersionRequiresAcceptance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	store := memory.New()
	seedInfluencer(t, store, "ana@exemplo.com")

	require.NoError(t, store.Acceptances().InsertAcceptance(ctx, &domain.TermsAcceptance{
		UserID:       influencer.UserID,
		TermsVersion: "parceria-v0",
		AcceptedAt:   fixedNow.Add(-24 * time.Hour),
	}))

	sender := mailmocks.NewMockCodeSender(ctrl)
	sender.EXPECT().SendVerificationCode(gomock.Any(), "ana@exemplo.com", "042315", 5*time.Minute).Return(nil)

	service := newTestService(t, store, sender)

	status, err := service.Status(ctx, influencer)
	require.NoError(t, err)
	assert.False(t, status.Accepted)

	accepted, err := service.SendCode(ctx, influencer)
	require.NoError(t, err)
	assert.False(t, accepted)
}

func TestService_SendCodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		claims *domain.Claims
		email  string
		send   error
		code   string
	}{
		{"sem autenticação", nil, "ana@exemplo.com", nil, apiErrors.ErrInvalidToken},
		{"perfil master", master, "ana@exemplo.com", nil, apiErrors.ErrInsufficientPrivilege},
		{"sem email cadastrado", influencer, "  ", nil, apiErrors.ErrAcceptanceValidation},
		{"falha no envio", influencer, "ana@exemplo.com", errors.New("sendgrid fora"), apiErrors.ErrExternalService},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := memory.New()
			seedInfluencer(t, store, tt.email)

			sender := mailmocks.NewMockCodeSender(ctrl)
			if tt.send != nil {
				sender.EXPECT().SendVerificationCode(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.send)
			}

			_, err := newTestService(t, store, sender).SendCode(context.Background(), tt.claims)
			assertAcceptanceCode(t, err, tt.code)
		})
	}
}

func TestService_SendCodeInvalidatesPreviousCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	store := memory.New()
	seedInfluencer(t, store, "ana@exemplo.com")

	sender := mailmocks.NewMockCodeSender(ctrl)
	sender.EXPECT().SendVerificationCode(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	service := newTestService(t, store, sender)

	_, err := service.SendCode(ctx, influencer)
	require.NoError(t, err)

	service.newCode = func() (string, error) { return "777777", nil }
	_, err = service.SendCode(ctx, influencer)
	require.NoError(t, err)

	_, err = service.ValidateCode(ctx, influencer, "042315", origin)
	assertAcceptanceCode(t, err, apiErrors.ErrAcceptanceCode)

	_, err = service.ValidateCode(ctx, influencer, "777777", origin)
	require.NoError(t, err)
}

func TestService_ValidateCodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		claims  *domain.Claims
		code    string
		advance time.Duration
		errCode string
		is      error
	}{
		{"sem autenticação", nil, "042315", 0, apiErrors.ErrInvalidToken, ErrMissingCredentials},
		{"perfil master", master, "042315", 0, apiErrors.ErrInsufficientPrivilege, ErrNotInfluencer},
		{"código curto", influencer, "0423", 0, apiErrors.ErrAcceptanceValidation, ErrInvalidCode},
		{"código com letras", influencer, "abcdef", 0, apiErrors.ErrAcceptanceValidation, ErrInvalidCode},
		{"código diferente", influencer, "111111", 0, apiErrors.ErrAcceptanceCode, ErrInvalidCode},
		{"código expirado", influencer, "042315", 6 * time.Minute, apiErrors.ErrAcceptanceCode, ErrExpiredCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := memory.New()
			require.NoError(t, store.Acceptances().InsertCode(ctx, &domain.VerificationCode{
				UserID:    influencer.UserID,
				Code:      "042315",
				ExpiresAt: fixedNow.Add(5 * time.Minute),
			}))

			service := newTestService(t, store, nil)
			service.now = func() time.Time { return fixedNow.Add(tt.advance) }

			_, err := service.ValidateCode(ctx, tt.claims, tt.code, origin)
			assertAcceptanceCode(t, err, tt.errCode)
			assert.ErrorIs(t, err, tt.is)
		})
	}
}

func TestService_ValidateCodeIsSingleUse(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Acceptances().InsertCode(ctx, &domain.VerificationCode{
		UserID:    influencer.UserID,
		Code:      "042315",
		ExpiresAt: fixedNow.Add(5 * time.Minute),
	}))

	service := newTestService(t, store, nil)

	_, err := service.ValidateCode(ctx, influencer, "042315", origin)
	require.NoError(t, err)

	// nova versão do termo exige novo código; o anterior já foi consumido
	service.terms = Terms{Version: "parceria-v2", Hash: "def456"}
	_, err = service.ValidateCode(ctx, influencer, "042315", origin)
	assertAcceptanceCode(t, err, apiErrors.ErrAcceptanceCode)
}

func TestService_StatusForMaster(t *testing.T) {
	service := newTestService(t, memory.New(), nil)

	status, err := service.Status(context.Background(), master)
	require.NoError(t, err)
	assert.True(t, status.Accepted)
	assert.Equal(t, "master", status.Role)
	assert.Equal(t, "parceria-v1", status.CurrentVersion)

	_, err = service.Status(context.Background(), nil)
	assertAcceptanceCode(t, err, apiErrors.ErrInvalidToken)
}

func TestLoadTerms(t *testing.T) {
	fromVersion, err := LoadTerms(config.Terms{Version: "parceria-v1"})
	require.NoError(t, err)
	assert.Equal(t, "parceria-v1", fromVersion.Version)
	assert.Len(t, fromVersion.Hash, 64)

	path := filepath.Join(t.TempDir(), "termo.txt")
	require.NoError(t, os.WriteFile(path, []byte("Termo de parceria"), 0o600))

	fromFile, err := LoadTerms(config.Terms{Version: "parceria-v1", File: path})
	require.NoError(t, err)
	assert.Len(t, fromFile.Hash, 64)
	assert.NotEqual(t, fromVersion.Hash, fromFile.Hash)

	_, err = LoadTerms(config.Terms{Version: "parceria-v1", File: filepath.Join(t.TempDir(), "ausente.txt")})
	assert.Error(t, err)
}

package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/influencer-sales-api/internal/config"
	"github.com/vfg2006/influencer-sales-api/internal/domain"
)

func newTestService(secret string) *Service {
	return NewService(&config.Config{SecretKey: secret}).(*Service)
}

func TestService_GenerateAndValidateToken(t *testing.T) {
	service := newTestService("segredo")

	token, err := service.GenerateToken(42, "Ana", domain.RoleInfluencer)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "Ana", claims.UserName)
	assert.False(t, claims.IsMaster())
}

func TestService_ValidateTokenErrors(t *testing.T) {
	service := newTestService("segredo")

	valid, err := service.GenerateToken(1, "Master", domain.RoleMaster)
	require.NoError(t, err)

	otherKey, err := newTestService("outro-segredo").GenerateToken(1, "Master", domain.RoleMaster)
	require.NoError(t, err)

	expiredService := newTestService("segredo")
	expiredService.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	expired, err := expiredService.GenerateToken(1, "Master", domain.RoleMaster)
	require.NoError(t, err)

	unknownRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.Claims{UserID: 3, Role: 9}).SignedString([]byte("segredo"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"token vazio", "", ErrMissingToken},
		{"token malformado", "abc.def", ErrInvalidToken},
		{"assinado com outra chave", otherKey, ErrInvalidToken},
		{"token expirado", expired, ErrExpiredToken},
		{"perfil desconhecido", unknownRole, ErrUnknownRole},
		{"token válido", valid, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.True(t, claims.IsMaster())
		})
	}
}

func TestService_GenerateTokenRequiresSecretAndRole(t *testing.T) {
	_, err := newTestService("").GenerateToken(1, "Master", domain.RoleMaster)
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = newTestService("segredo").GenerateToken(1, "Master", 7)
	assert.ErrorIs(t, err, ErrUnknownRole)
}

package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/influencer-sales-api/internal/config"
	"github.com/vfg2006/influencer-sales-api/internal/domain"
	"github.com/vfg2006/influencer-sales-api/pkg/apiErrors"
)

// O login e o cadastro de usuários ficam em outro serviço; aqui os tokens são
// apenas emitidos e validados com a chave compartilhada.
const tokenTTL = 24 * time.Hour

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks -source=service.go
type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
	GenerateToken(userID int64, userName string, role int) (string, error)
}

type Service struct {
	cfg *config.Config
	now func() time.Time
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		cfg: cfg,
		now: time.Now,
	}
}

func (s *Service) GenerateToken(userID int64, userName string, role int) (string, error) {
	if s.cfg.SecretKey == "" {
		return "", NewAuthError(ErrMissingSecret, apiErrors.ErrInternalServer, "SECRET_KEY não configurada")
	}
	if role != domain.RoleMaster && role != domain.RoleInfluencer {
		return "", NewUserAuthError(ErrUnknownRole, apiErrors.ErrInvalidRequest, userID, fmt.Sprintf("perfil %d", role))
	}

	claims := domain.Claims{
		UserID:   userID,
		UserName: userName,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(s.now().Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if tokenString == "" {
		return nil, NewAuthError(ErrMissingToken, apiErrors.ErrInvalidToken, "Token nao informado.")
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Token expirado.")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token invalido ou expirado.")
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token invalido ou expirado.")
	}

	if claims.Role != domain.RoleMaster && claims.Role != domain.RoleInfluencer {
		return nil, NewUserAuthError(ErrUnknownRole, apiErrors.ErrInsufficientPrivilege, claims.UserID, "Perfil de acesso desconhecido.")
	}

	return claims, nil
}

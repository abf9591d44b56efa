// Package accepting controla o aceite do termo de parceria pelas influenciadoras:
// envio de código por email, confirmação e consulta da situação.
package accepting

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/vfg2006/influencer-sales-api/infrastructure/mail"
	"github.com/vfg2006/influencer-sales-api/infrastructure/repository"
	"github.com/vfg2006/influencer-sales-api/internal/config"
	"github.com/vfg2006/influencer-sales-api/internal/domain"
	"github.com/vfg2006/influencer-sales-api/pkg/apiErrors"
	"github.com/vfg2006/influencer-sales-api/pkg/log"
	"github.com/vfg2006/influencer-sales-api/pkg/utils"
)

const (
	codeLength     = 6
	defaultCodeTTL = 5 * time.Minute
)

type TermsAcceptor interface {
	SendCode(ctx context.Context, claims *domain.Claims) (alreadyAccepted bool, err error)
	ValidateCode(ctx context.Context, claims *domain.Claims, code string, origin domain.AcceptanceOrigin) (alreadyAccepted bool, err error)
	Status(ctx context.Context, claims *domain.Claims) (*domain.AcceptanceStatus, error)
}

// Terms identifica a versão vigente do termo e o hash do seu conteúdo
type Terms struct {
	Version string
	Hash    string
}

// LoadTerms calcula o hash SHA-256 do arquivo do termo. Sem arquivo, o hash é
// calculado sobre a própria versão.
func LoadTerms(cfg config.Terms) (Terms, error) {
	content := []byte(cfg.Version)
	if cfg.File != "" {
		data, err := os.ReadFile(cfg.File)
		if err != nil {
			return Terms{}, fmt.Errorf("erro ao ler o termo de parceria: %w", err)
		}
		content = data
	}

	sum := sha256.Sum256(content)

	return Terms{Version: cfg.Version, Hash: hex.EncodeToString(sum[:])}, nil
}

type Service struct {
	acceptanceRepo repository.AcceptanceRepository
	affiliateRepo  repository.AffiliateRepository
	sender         mail.CodeSender
	terms          Terms
	codeTTL        time.Duration
	now            func() time.Time
	newCode        func() (string, error)
}

func NewService(
	acceptanceRepo repository.AcceptanceRepository,
	affiliateRepo repository.AffiliateRepository,
	sender mail.CodeSender,
	terms Terms,
	codeTTL time.Duration,
) TermsAcceptor {
	if sender == nil {
		sender = mail.LogSender{}
	}
	if codeTTL <= 0 {
		codeTTL = defaultCodeTTL
	}

	return &Service{
		acceptanceRepo: acceptanceRepo,
		affiliateRepo:  affiliateRepo,
		sender:         sender,
		terms:          terms,
		codeTTL:        codeTTL,
		now:            func() time.Time { return time.Now().UTC() },
		newCode:        utils.GenerateVerificationCode,
	}
}

// SendCode invalida os códigos pendentes e envia um novo para o email da
// influenciadora vinculada ao usuário.
func (s *Service) SendCode(ctx context.Context, claims *domain.Claims) (bool, error) {
	if err := requireInfluencer(claims); err != nil {
		return false, err
	}

	accepted, err := s.hasAcceptedCurrent(ctx, claims.UserID)
	if err != nil || accepted {
		return accepted, err
	}

	affiliate, err := s.affiliateRepo.FindByUserID(ctx, claims.UserID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("user_id", claims.UserID).Error("Erro ao buscar influenciadora do usuário")
		return false, newDatabaseError(claims.UserID)
	}
	if affiliate == nil || strings.TrimSpace(affiliate.Email) == "" {
		return false, NewAcceptanceError(ErrMissingEmail, apiErrors.ErrAcceptanceValidation, claims.UserID, "Nao foi possivel localizar o email cadastrado.")
	}

	if err := s.acceptanceRepo.InvalidateCodes(ctx, claims.UserID); err != nil {
		log.ForContext(ctx).WithError(err).WithField("user_id", claims.UserID).Error("Erro ao invalidar códigos anteriores")
		return false, newDatabaseError(claims.UserID)
	}

	code, err := s.newCode()
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao gerar código de verificação")
		return false, newDatabaseError(claims.UserID)
	}

	verification := &domain.VerificationCode{
		UserID:    claims.UserID,
		Code:      code,
		ExpiresAt: s.now().Add(s.codeTTL),
	}
	if err := s.acceptanceRepo.InsertCode(ctx, verification); err != nil {
		log.ForContext(ctx).WithError(err).WithField("user_id", claims.UserID).Error("Erro ao gravar código de verificação")
		return false, newDatabaseError(claims.UserID)
	}

	if err := s.sender.SendVerificationCode(ctx, strings.TrimSpace(affiliate.Email), code, s.codeTTL); err != nil {
		log.ForContext(ctx).WithError(err).WithField("user_id", claims.UserID).Error("Erro ao enviar código de verificação")
		return false, NewAcceptanceError(ErrDeliveryFailure, apiErrors.ErrExternalService, claims.UserID, "Nao foi possivel enviar o codigo de verificacao.")
	}

	return false, nil
}

// ValidateCode confere o código enviado e registra o aceite da versão vigente
func (s *Service) ValidateCode(ctx context.Context, claims *domain.Claims, code string, origin domain.AcceptanceOrigin) (bool, error) {
	if err := requireInfluencer(claims); err != nil {
		return false, err
	}

	code = cleanCode(code)
	if len(code) != codeLength {
		return false, NewAcceptanceError(ErrInvalidCode, apiErrors.ErrAcceptanceValidation, claims.UserID, "Informe o codigo de 6 digitos enviado ao email.")
	}

	accepted, err := s.hasAcceptedCurrent(ctx, claims.UserID)
	if err != nil || accepted {
		return accepted, err
	}

	verification, err := s.acceptanceRepo.FindCode(ctx, claims.UserID, code)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("user_id", claims.UserID).Error("Erro ao buscar código de verificação")
		return false, newDatabaseError(claims.UserID)
	}
	if verification == nil || verification.Used {
		return false, NewAcceptanceError(ErrInvalidCode, apiErrors.ErrAcceptanceCode, claims.UserID, "Codigo invalido ou ja utilizado.")
	}

	now := s.now()
	if verification.ExpiresAt.Before(now) {
		return false, NewAcceptanceError(ErrExpiredCode, apiErrors.ErrAcceptanceCode, claims.UserID, "Codigo expirado. Solicite um novo envio.")
	}

	if err := s.acceptanceRepo.MarkCodeUsed(ctx, verification.ID); err != nil {
		log.ForContext(ctx).WithError(err).WithField("user_id", claims.UserID).Error("Erro ao marcar código como usado")
		return false, newDatabaseError(claims.UserID)
	}

	acceptance := &domain.TermsAcceptance{
		UserID:       claims.UserID,
		TermsVersion: s.terms.Version,
		TermsHash:    s.terms.Hash,
		AcceptedAt:   now,
		IPAddress:    origin.IPAddress,
		UserAgent:    origin.UserAgent,
		Channel:      domain.AcceptanceChannelEmailCode,
		Status:       domain.AcceptanceStatusAccepted,
	}
	if err := s.acceptanceRepo.InsertAcceptance(ctx, acceptance); err != nil {
		log.ForContext(ctx).WithError(err).WithField("user_id", claims.UserID).Error("Erro ao registrar aceite")
		return false, newDatabaseError(claims.UserID)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"user_id":       claims.UserID,
		"terms_version": s.terms.Version,
	}).Info("Aceite do termo registrado")

	return false, nil
}

// Status informa se a versão vigente foi aceita. Apenas influenciadoras
// precisam de aceite; os demais perfis aparecem como aceitos.
func (s *Service) Status(ctx context.Context, claims *domain.Claims) (*domain.AcceptanceStatus, error) {
	if claims == nil {
		return nil, NewAcceptanceError(ErrMissingCredentials, apiErrors.ErrInvalidToken, 0, "Usuario nao autenticado.")
	}

	if claims.Role != domain.RoleInfluencer {
		return &domain.AcceptanceStatus{Accepted: true, CurrentVersion: s.terms.Version, Role: "master"}, nil
	}

	latest, err := s.acceptanceRepo.LatestAcceptance(ctx, claims.UserID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("user_id", claims.UserID).Error("Erro ao consultar aceite")
		return nil, newDatabaseError(claims.UserID)
	}

	status := &domain.AcceptanceStatus{CurrentVersion: s.terms.Version}
	if latest != nil && latest.TermsVersion == s.terms.Version {
		status.Accepted = true
		status.Record = &domain.AcceptanceRecord{AcceptedAt: latest.AcceptedAt, TermsHash: latest.TermsHash}
	}

	return status, nil
}

func (s *Service) hasAcceptedCurrent(ctx context.Context, userID int64) (bool, error) {
	latest, err := s.acceptanceRepo.LatestAcceptance(ctx, userID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("user_id", userID).Error("Erro ao consultar aceite")
		return false, newDatabaseError(userID)
	}

	return latest != nil && latest.TermsVersion == s.terms.Version, nil
}

func requireInfluencer(claims *domain.Claims) error {
	if claims == nil {
		return NewAcceptanceError(ErrMissingCredentials, apiErrors.ErrInvalidToken, 0, "Usuario nao autenticado.")
	}
	if claims.Role != domain.RoleInfluencer {
		return NewAcceptanceError(ErrNotInfluencer, apiErrors.ErrInsufficientPrivilege, claims.UserID, "Somente influenciadoras precisam confirmar o aceite.")
	}
	return nil
}

// cleanCode mantém só os dígitos, limitados ao tamanho do código
func cleanCode(raw string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)

	if len(digits) > codeLength {
		return digits[:codeLength]
	}
	return digits
}

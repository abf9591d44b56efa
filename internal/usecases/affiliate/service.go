package affiliate

import (
	"context"
	"errors"

	"github.com/vfg2006/influencer-sales-api/infrastructure/cache"
	"github.com/vfg2006/influencer-sales-api/infrastructure/repository"
	"github.com/vfg2006/influencer-sales-api/internal/domain"
	"github.com/vfg2006/influencer-sales-api/internal/normalize"
	"github.com/vfg2006/influencer-sales-api/pkg/apiErrors"
	"github.com/vfg2006/influencer-sales-api/pkg/log"
)

type AffiliateDirectory interface {
	FindByCoupon(ctx context.Context, coupon string) (*domain.Affiliate, error)
	FindByID(ctx context.Context, id int64) (*domain.Affiliate, error)
	FindByLinkedUser(ctx context.Context, userID int64) (*domain.Affiliate, error)
	List(ctx context.Context, claims *domain.Claims) ([]*domain.Affiliate, error)
	Create(ctx context.Context, input domain.AffiliateInput) (*domain.Affiliate, error)
	Update(ctx context.Context, claims *domain.Claims, id int64, input domain.AffiliateInput) (*domain.Affiliate, error)
	Delete(ctx context.Context, id int64) error
	ResolveAccess(ctx context.Context, claims *domain.Claims, id int64) (*domain.Affiliate, error)
}

type Service struct {
	affiliateRepo repository.AffiliateRepository
	consultation  cache.ConsultationCache
}

func NewService(affiliateRepo repository.AffiliateRepository, consultation cache.ConsultationCache) AffiliateDirectory {
	if consultation == nil {
		consultation = cache.NoopConsultationCache{}
	}

	return &Service{
		affiliateRepo: affiliateRepo,
		consultation:  consultation,
	}
}

func (s *Service) FindByCoupon(ctx context.Context, coupon string) (*domain.Affiliate, error) {
	coupon = normalize.Coupon(coupon)
	if coupon == "" {
		return nil, NewAffiliateError(ErrAffiliateNotFound, apiErrors.ErrAffiliateNotFound, "Cupom nao encontrado.")
	}

	affiliate, err := s.affiliateRepo.FindByCoupon(ctx, coupon)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("coupon", coupon).Error("Erro ao buscar influenciadora pelo cupom")
		return nil, newDatabaseError("Nao foi possivel consultar o cupom.")
	}
	if affiliate == nil {
		return nil, NewAffiliateError(ErrAffiliateNotFound, apiErrors.ErrAffiliateNotFound, "Cupom nao encontrado.")
	}

	return affiliate, nil
}

func (s *Service) FindByID(ctx context.Context, id int64) (*domain.Affiliate, error) {
	if id <= 0 {
		return nil, NewAffiliateError(ErrInvalidID, apiErrors.ErrInvalidRequest, "ID invalido.")
	}

	affiliate, err := s.affiliateRepo.FindByID(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("affiliate_id", id).Error("Erro ao buscar influenciadora")
		return nil, newDatabaseError("Nao foi possivel consultar a influenciadora.")
	}
	if affiliate == nil {
		return nil, newNotFoundError(id)
	}

	return affiliate, nil
}

func (s *Service) FindByLinkedUser(ctx context.Context, userID int64) (*domain.Affiliate, error) {
	affiliate, err := s.affiliateRepo.FindByUserID(ctx, userID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("user_id", userID).Error("Erro ao buscar influenciadora do usuário")
		return nil, newDatabaseError("Nao foi possivel consultar a influenciadora.")
	}
	if affiliate == nil {
		return nil, NewAffiliateError(ErrAffiliateNotFound, apiErrors.ErrAffiliateNotFound, "Influenciadora nao encontrada.")
	}

	return affiliate, nil
}

// List devolve todas as influenciadoras para o master e apenas a própria para
// a influenciadora autenticada.
func (s *Service) List(ctx context.Context, claims *domain.Claims) ([]*domain.Affiliate, error) {
	if claims == nil {
		return nil, NewAffiliateError(ErrMissingCredentials, apiErrors.ErrInvalidToken, "Token nao informado.")
	}

	if claims.IsMaster() {
		affiliates, err := s.affiliateRepo.List(ctx)
		if err != nil {
			log.ForContext(ctx).WithError(err).Error("Erro ao listar influenciadoras")
			return nil, newDatabaseError("Nao foi possivel listar as influenciadoras.")
		}
		return affiliates, nil
	}

	own, err := s.affiliateRepo.FindByUserID(ctx, claims.UserID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("user_id", claims.UserID).Error("Erro ao listar influenciadoras")
		return nil, newDatabaseError("Nao foi possivel listar as influenciadoras.")
	}
	if own == nil {
		return []*domain.Affiliate{}, nil
	}

	return []*domain.Affiliate{own}, nil
}

func (s *Service) Create(ctx context.Context, input domain.AffiliateInput) (*domain.Affiliate, error) {
	affiliate, err := normalizePayload(input)
	if err != nil {
		return nil, err
	}

	if err := s.affiliateRepo.Create(ctx, affiliate); err != nil {
		if conflict := conflictError(err); conflict != nil {
			return nil, conflict
		}
		log.ForContext(ctx).WithError(err).WithField("instagram", affiliate.Instagram).Error("Erro ao cadastrar influenciadora")
		return nil, newDatabaseError("Nao foi possivel cadastrar a influenciadora.")
	}

	s.invalidateConsultation(ctx)

	log.ForContext(ctx).WithField("affiliate_id", affiliate.ID).Info("Influenciadora cadastrada")

	return affiliate, nil
}

// Update substitui o cadastro. A influenciadora pode editar os próprios dados,
// mas cupom, comissão e vínculo de usuário só mudam pelo master.
func (s *Service) Update(ctx context.Context, claims *domain.Claims, id int64, input domain.AffiliateInput) (*domain.Affiliate, error) {
	current, err := s.ResolveAccess(ctx, claims, id)
	if err != nil {
		return nil, err
	}

	affiliate, err := normalizePayload(input)
	if err != nil {
		return nil, err
	}

	affiliate.ID = current.ID
	if !claims.IsMaster() {
		affiliate.Coupon = current.Coupon
		affiliate.CommissionRate = current.CommissionRate
		affiliate.LinkedUserID = current.LinkedUserID
	}

	if err := s.affiliateRepo.Update(ctx, affiliate); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, newNotFoundError(id)
		}
		if conflict := conflictError(err); conflict != nil {
			return nil, conflict
		}
		log.ForContext(ctx).WithError(err).WithField("affiliate_id", id).Error("Erro ao atualizar influenciadora")
		return nil, newDatabaseError("Nao foi possivel atualizar a influenciadora.")
	}

	s.invalidateConsultation(ctx)

	return s.FindByID(ctx, id)
}

// Delete remove a influenciadora e, em cascata, todas as suas vendas
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewAffiliateError(ErrInvalidID, apiErrors.ErrInvalidRequest, "ID invalido.")
	}

	if err := s.affiliateRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return newNotFoundError(id)
		}
		log.ForContext(ctx).WithError(err).WithField("affiliate_id", id).Error("Erro ao remover influenciadora")
		return newDatabaseError("Nao foi possivel remover a influenciadora.")
	}

	s.invalidateConsultation(ctx)

	return nil
}

// ResolveAccess carrega a influenciadora se o usuário autenticado puder vê-la
func (s *Service) ResolveAccess(ctx context.Context, claims *domain.Claims, id int64) (*domain.Affiliate, error) {
	if claims == nil {
		return nil, NewAffiliateError(ErrMissingCredentials, apiErrors.ErrInvalidToken, "Token nao informado.")
	}

	affiliate, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if claims.IsMaster() {
		return affiliate, nil
	}

	if affiliate.LinkedUserID == nil || *affiliate.LinkedUserID != claims.UserID {
		return nil, NewAffiliateErrorWithID(ErrAccessDenied, apiErrors.ErrInsufficientPrivilege, id, "Acesso negado.")
	}

	return affiliate, nil
}

func conflictError(err error) *AffiliateError {
	switch {
	case errors.Is(err, repository.ErrDuplicateCoupon):
		return NewAffiliateError(ErrAffiliateConflict, apiErrors.ErrAffiliateConflict, "Cupom ja cadastrado.")
	case errors.Is(err, repository.ErrDuplicateInstagram):
		return NewAffiliateError(ErrAffiliateConflict, apiErrors.ErrAffiliateConflict, "Instagram ja cadastrado.")
	case errors.Is(err, repository.ErrDuplicateLinkedUser):
		return NewAffiliateError(ErrAffiliateConflict, apiErrors.ErrAffiliateConflict, "Usuario ja vinculado a outra influenciadora.")
	}
	return nil
}

func (s *Service) invalidateConsultation(ctx context.Context) {
	if err := s.consultation.Invalidate(ctx); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao invalidar cache da consulta geral")
	}
}

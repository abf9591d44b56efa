package sales

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/influencer-sales-api/infrastructure/cache"
	"github.com/vfg2006/influencer-sales-api/infrastructure/repository"
	"github.com/vfg2006/influencer-sales-api/internal/config"
	"github.com/vfg2006/influencer-sales-api/internal/domain"
	"github.com/vfg2006/influencer-sales-api/internal/normalize"
	"github.com/vfg2006/influencer-sales-api/pkg/log"
	"github.com/vfg2006/influencer-sales-api/pkg/utils"
)

const defaultConsultationTTL = 5 * time.Minute

type SalesService interface {
	CreateSale(ctx context.Context, input domain.SaleInput) (*domain.Sale, error)
	UpdateSale(ctx context.Context, id int64, input domain.SaleInput) (*domain.Sale, error)
	DeleteSale(ctx context.Context, id int64) error
	GetSale(ctx context.Context, id int64) (*domain.Sale, error)
	ListByAffiliate(ctx context.Context, affiliateID int64) ([]*domain.Sale, error)
	CheckOrders(ctx context.Context, orders []string) ([]*domain.Sale, error)

	PreviewImport(ctx context.Context, text string) (*domain.ImportAnalysis, error)
	ConfirmImport(ctx context.Context, text string) (*domain.ImportResult, error)

	Summary(ctx context.Context, affiliateID int64) (*domain.AffiliateSalesSummary, error)
	Consultation(ctx context.Context) ([]*domain.ConsultationRow, error)
	RefreshSummaries(ctx context.Context) (int, error)
}

type Service struct {
	affiliateRepo repository.AffiliateRepository
	saleRepo      repository.SaleRepository
	consultation  cache.ConsultationCache
	cfg           *config.Config
	newBatchID    func() (string, error)
}

func NewService(
	affiliateRepo repository.AffiliateRepository,
	saleRepo repository.SaleRepository,
	consultation cache.ConsultationCache,
	cfg *config.Config,
) SalesService {
	if consultation == nil {
		consultation = cache.NoopConsultationCache{}
	}

	return &Service{
		affiliateRepo: affiliateRepo,
		saleRepo:      saleRepo,
		consultation:  consultation,
		cfg:           cfg,
		newBatchID:    utils.GenerateBatchID,
	}
}

// validSale é uma venda avulsa já normalizada e com a influenciadora resolvida
type validSale struct {
	orderNumber string
	date        string
	gross       float64
	discount    float64
	affiliate   *domain.Affiliate
}

func (s *Service) CreateSale(ctx context.Context, input domain.SaleInput) (*domain.Sale, error) {
	valid, err := s.validateSale(ctx, input)
	if err != nil {
		return nil, err
	}

	existing, err := s.saleRepo.FindByOrderNumber(ctx, valid.orderNumber)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("order_number", valid.orderNumber).Error("Erro ao consultar pedido")
		return nil, newStorageError("Nao foi possivel cadastrar a venda.")
	}
	if existing != nil {
		return nil, newDuplicateError()
	}

	sale := valid.toSale()
	if err := s.saleRepo.Insert(ctx, sale); err != nil {
		if errors.Is(err, repository.ErrDuplicateOrderNumber) {
			return nil, newDuplicateError()
		}
		log.ForContext(ctx).WithError(err).WithField("order_number", sale.OrderNumber).Error("Erro ao cadastrar venda")
		return nil, newStorageError("Nao foi possivel cadastrar a venda.")
	}

	s.invalidateConsultation(ctx)

	return sale, nil
}

func (s *Service) UpdateSale(ctx context.Context, id int64, input domain.SaleInput) (*domain.Sale, error) {
	current, err := s.saleRepo.FindByID(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("sale_id", id).Error("Erro ao consultar venda")
		return nil, newStorageError("Nao foi possivel atualizar a venda.")
	}
	if current == nil {
		return nil, newNotFoundError("Venda nao encontrada.")
	}

	valid, err := s.validateSale(ctx, input)
	if err != nil {
		return nil, err
	}

	owner, err := s.saleRepo.FindByOrderNumber(ctx, valid.orderNumber)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("order_number", valid.orderNumber).Error("Erro ao consultar pedido")
		return nil, newStorageError("Nao foi possivel atualizar a venda.")
	}
	if owner != nil && owner.ID != id {
		return nil, newDuplicateError()
	}

	sale := valid.toSale()
	sale.ID = id
	if err := s.saleRepo.Update(ctx, sale); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateOrderNumber):
			return nil, newDuplicateError()
		case errors.Is(err, repository.ErrNotFound):
			return nil, newNotFoundError("Venda nao encontrada.")
		}
		log.ForContext(ctx).WithError(err).WithField("sale_id", id).Error("Erro ao atualizar venda")
		return nil, newStorageError("Nao foi possivel atualizar a venda.")
	}

	s.invalidateConsultation(ctx)

	return sale, nil
}

func (s *Service) DeleteSale(ctx context.Context, id int64) error {
	if err := s.saleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return newNotFoundError("Venda nao encontrada.")
		}
		log.ForContext(ctx).WithError(err).WithField("sale_id", id).Error("Erro ao remover venda")
		return newStorageError("Nao foi possivel remover a venda.")
	}

	s.invalidateConsultation(ctx)

	return nil
}

func (s *Service) GetSale(ctx context.Context, id int64) (*domain.Sale, error) {
	sale, err := s.saleRepo.FindByID(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("sale_id", id).Error("Erro ao consultar venda")
		return nil, newStorageError("Nao foi possivel consultar a venda.")
	}
	if sale == nil {
		return nil, newNotFoundError("Venda nao encontrada.")
	}

	return sale, nil
}

func (s *Service) ListByAffiliate(ctx context.Context, affiliateID int64) ([]*domain.Sale, error) {
	sales, err := s.saleRepo.ListByAffiliate(ctx, affiliateID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("affiliate_id", affiliateID).Error("Erro ao listar vendas")
		return nil, newStorageError("Nao foi possivel listar as vendas.")
	}

	return sales, nil
}

// CheckOrders devolve as vendas já cadastradas entre os pedidos informados
func (s *Service) CheckOrders(ctx context.Context, orders []string) ([]*domain.Sale, error) {
	found := make([]*domain.Sale, 0)
	seen := make(map[string]bool, len(orders))

	for _, raw := range orders {
		orderNumber := normalize.OrderNumber(raw)
		if orderNumber == "" || seen[orderNumber] {
			continue
		}
		seen[orderNumber] = true

		sale, err := s.saleRepo.FindByOrderNumber(ctx, orderNumber)
		if err != nil {
			log.ForContext(ctx).WithError(err).WithField("order_number", orderNumber).Error("Erro ao verificar pedido")
			return nil, newStorageError("Nao foi possivel verificar os pedidos.")
		}
		if sale != nil {
			found = append(found, sale)
		}
	}

	return found, nil
}

func (s *Service) validateSale(ctx context.Context, input domain.SaleInput) (*validSale, error) {
	orderNumber := normalize.OrderNumber(input.OrderNumber)
	if orderNumber == "" {
		return nil, newValidationError("Informe o numero do pedido.")
	}
	if len([]rune(orderNumber)) > normalize.MaxOrderNumberLength {
		return nil, newValidationError(fmt.Sprintf("Numero do pedido deve ter no maximo %d caracteres.", normalize.MaxOrderNumberLength))
	}

	coupon := normalize.Coupon(input.Coupon)
	if coupon == "" {
		return nil, newValidationError("Informe o cupom da influenciadora.")
	}

	date, err := normalize.ParseCanonicalDate(input.Date)
	if err != nil {
		return nil, newValidationError("Informe uma data valida (DD/MM/AAAA ou AAAA-MM-DD).")
	}

	gross, err := parseAmount(input.GrossValue, false)
	if err != nil {
		return nil, newValidationError("Valor bruto deve ser um numero maior ou igual a zero.")
	}

	discount, err := parseAmount(input.Discount, true)
	if err != nil {
		return nil, newValidationError("Desconto deve ser um numero maior ou igual a zero.")
	}

	if discount > gross {
		return nil, newValidationError("Desconto nao pode ser maior que o valor bruto.")
	}

	affiliate, err := s.affiliateRepo.FindByCoupon(ctx, coupon)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("coupon", coupon).Error("Erro ao consultar cupom")
		return nil, newStorageError("Nao foi possivel consultar o cupom.")
	}
	if affiliate == nil {
		return nil, newNotFoundError("Cupom nao encontrado.")
	}

	return &validSale{
		orderNumber: orderNumber,
		date:        date,
		gross:       gross,
		discount:    discount,
		affiliate:   affiliate,
	}, nil
}

func (v *validSale) toSale() *domain.Sale {
	netValue, commission := ComputeTotals(v.gross, v.discount, v.affiliate.CommissionRate)

	return &domain.Sale{
		OrderNumber:    v.orderNumber,
		AffiliateID:    v.affiliate.ID,
		Date:           v.date,
		GrossValue:     v.gross,
		Discount:       v.discount,
		NetValue:       netValue,
		Commission:     commission,
		Coupon:         v.affiliate.Coupon,
		AffiliateName:  v.affiliate.Name,
		CommissionRate: v.affiliate.CommissionRate,
	}
}

// parseAmount rejeita valores negativos; vazio só é aceito (como zero) quando optional
func parseAmount(value any, optional bool) (float64, error) {
	amount, err := normalize.ParseCurrency(value)
	if errors.Is(err, normalize.ErrEmptyValue) && optional {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if amount < 0 {
		return 0, normalize.ErrInvalidNumber
	}

	return amount, nil
}

func (s *Service) consultationTTL() time.Duration {
	if s.cfg == nil || s.cfg.Redis.ConsultationTTL <= 0 {
		return defaultConsultationTTL
	}
	return s.cfg.Redis.ConsultationTTL
}

func (s *Service) maxImportRows() int {
	if s.cfg == nil {
		return 0
	}
	return s.cfg.Import.MaxRows
}

func (s *Service) invalidateConsultation(ctx context.Context) {
	if err := s.consultation.Invalidate(ctx); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao invalidar cache da consulta geral")
	}
}

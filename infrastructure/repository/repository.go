package repository

import (
	"context"
	"errors"

	"github.com/vfg2006/influencer-sales-api/internal/domain"
)

var (
	ErrNotFound             = errors.New("registro não encontrado")
	ErrDuplicateOrderNumber = errors.New("número de pedido já cadastrado")
	ErrDuplicateCoupon      = errors.New("cupom já cadastrado")
	ErrDuplicateInstagram   = errors.New("instagram já cadastrado")
	ErrDuplicateLinkedUser  = errors.New("usuário já vinculado a outra influenciadora")
)

// AffiliateRepository persiste as influenciadoras. Buscas sem resultado
// retornam (nil, nil).
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks -source=repository.go
type AffiliateRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Affiliate, error)
	FindByCoupon(ctx context.Context, coupon string) (*domain.Affiliate, error)
	FindByUserID(ctx context.Context, userID int64) (*domain.Affiliate, error)
	List(ctx context.Context) ([]*domain.Affiliate, error)
	Create(ctx context.Context, affiliate *domain.Affiliate) error
	Update(ctx context.Context, affiliate *domain.Affiliate) error
	Delete(ctx context.Context, id int64) error
}

// SaleRepository persiste as vendas. Buscas sem resultado retornam (nil, nil).
type SaleRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Sale, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Sale, error)
	FindByOrderNumbers(ctx context.Context, orderNumbers []string) (map[string]int64, error)
	ListByAffiliate(ctx context.Context, affiliateID int64) ([]*domain.Sale, error)
	Insert(ctx context.Context, sale *domain.Sale) error
	InsertBatch(ctx context.Context, sales []*domain.Sale) error
	Update(ctx context.Context, sale *domain.Sale) error
	Delete(ctx context.Context, id int64) error
	Summarize(ctx context.Context, affiliateID int64) (*domain.AffiliateSalesSummary, error)
	ListAffiliateSummaries(ctx context.Context) ([]*domain.ConsultationRow, error)
	RefreshAffiliateTotals(ctx context.Context) (int, error)
}

// AcceptanceRepository guarda os códigos de verificação e os aceites do termo.
// Buscas sem resultado retornam (nil, nil).
type AcceptanceRepository interface {
	InvalidateCodes(ctx context.Context, userID int64) error
	InsertCode(ctx context.Context, code *domain.VerificationCode) error
	FindCode(ctx context.Context, userID int64, code string) (*domain.VerificationCode, error)
	MarkCodeUsed(ctx context.Context, id int64) error
	InsertAcceptance(ctx context.Context, acceptance *domain.TermsAcceptance) error
	LatestAcceptance(ctx context.Context, userID int64) (*domain.TermsAcceptance, error)
}

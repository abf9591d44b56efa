// Package memory implementa os repositórios em memória, com as mesmas
// garantias de unicidade e atomicidade do driver PostgreSQL. Usado com
// DATABASE_DRIVER=memory e nos testes.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/vfg2006/influencer-sales-api/infrastructure/repository"
	"github.com/vfg2006/influencer-sales-api/internal/domain"
	"github.com/vfg2006/influencer-sales-api/pkg/utils"
)

type Store struct {
	mu              sync.RWMutex
	nextAffiliateID int64
	nextSaleID      int64
	affiliates      map[int64]domain.Affiliate
	sales           map[int64]domain.Sale
	saleByOrder     map[string]int64
	now             func() time.Time

	nextCodeID       int64
	nextAcceptanceID int64
	codes            map[int64]domain.VerificationCode
	acceptances      []domain.TermsAcceptance
}

func New() *Store {
	return &Store{
		affiliates:  make(map[int64]domain.Affiliate),
		sales:       make(map[int64]domain.Sale),
		saleByOrder: make(map[string]int64),
		codes:       make(map[int64]domain.VerificationCode),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Affiliates expõe o store como repositório de influenciadoras
func (s *Store) Affiliates() repository.AffiliateRepository {
	return affiliateStore{s}
}

// Sales expõe o store como repositório de vendas
func (s *Store) Sales() repository.SaleRepository {
	return saleStore{s}
}

// Acceptances expõe o store como repositório de aceites do termo
func (s *Store) Acceptances() repository.AcceptanceRepository {
	return acceptanceStore{s}
}

// SaleCount retorna quantas vendas estão gravadas
func (s *Store) SaleCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sales)
}

type affiliateStore struct {
	*Store
}

func (s affiliateStore) FindByID(_ context.Context, id int64) (*domain.Affiliate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	affiliate, ok := s.affiliates[id]
	if !ok {
		return nil, nil
	}

	return &affiliate, nil
}

func (s affiliateStore) FindByCoupon(_ context.Context, coupon string) (*domain.Affiliate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.findAffiliate(func(a domain.Affiliate) bool {
		return a.Coupon != "" && strings.EqualFold(a.Coupon, coupon)
	}), nil
}

func (s affiliateStore) FindByUserID(_ context.Context, userID int64) (*domain.Affiliate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.findAffiliate(func(a domain.Affiliate) bool {
		return a.LinkedUserID != nil && *a.LinkedUserID == userID
	}), nil
}

func (s affiliateStore) List(_ context.Context) ([]*domain.Affiliate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	affiliates := make([]*domain.Affiliate, 0, len(s.affiliates))
	for _, a := range s.affiliates {
		affiliate := a
		affiliates = append(affiliates, &affiliate)
	}

	sort.Slice(affiliates, func(i, j int) bool {
		return byName(affiliates[i].Name, affiliates[i].ID, affiliates[j].Name, affiliates[j].ID)
	})

	return affiliates, nil
}

func (s affiliateStore) Create(_ context.Context, affiliate *domain.Affiliate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAffiliateConflicts(affiliate); err != nil {
		return err
	}

	s.nextAffiliateID++
	affiliate.ID = s.nextAffiliateID
	affiliate.CreatedAt = s.now()
	s.affiliates[affiliate.ID] = *affiliate

	return nil
}

func (s affiliateStore) Update(_ context.Context, affiliate *domain.Affiliate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.affiliates[affiliate.ID]
	if !ok {
		return repository.ErrNotFound
	}

	if err := s.checkAffiliateConflicts(affiliate); err != nil {
		return err
	}

	affiliate.CreatedAt = current.CreatedAt
	affiliate.SalesCount = current.SalesCount
	affiliate.SalesTotal = current.SalesTotal
	s.affiliates[affiliate.ID] = *affiliate

	return nil
}

func (s affiliateStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.affiliates[id]; !ok {
		return repository.ErrNotFound
	}

	delete(s.affiliates, id)
	for saleID, sale := range s.sales {
		if sale.AffiliateID == id {
			delete(s.sales, saleID)
			delete(s.saleByOrder, sale.OrderNumber)
		}
	}

	return nil
}

func (s *Store) findAffiliate(match func(domain.Affiliate) bool) *domain.Affiliate {
	for _, a := range s.affiliates {
		if match(a) {
			affiliate := a
			return &affiliate
		}
	}
	return nil
}

func (s *Store) checkAffiliateConflicts(affiliate *domain.Affiliate) error {
	for id, other := range s.affiliates {
		if id == affiliate.ID {
			continue
		}
		if affiliate.Coupon != "" && strings.EqualFold(other.Coupon, affiliate.Coupon) {
			return repository.ErrDuplicateCoupon
		}
		if other.Instagram == affiliate.Instagram {
			return repository.ErrDuplicateInstagram
		}
		if affiliate.LinkedUserID != nil && other.LinkedUserID != nil && *other.LinkedUserID == *affiliate.LinkedUserID {
			return repository.ErrDuplicateLinkedUser
		}
	}
	return nil
}

type saleStore struct {
	*Store
}

func (s saleStore) FindByID(_ context.Context, id int64) (*domain.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sale, ok := s.sales[id]
	if !ok {
		return nil, nil
	}

	return s.withAffiliate(sale), nil
}

func (s saleStore) FindByOrderNumber(_ context.Context, orderNumber string) (*domain.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.saleByOrder[orderNumber]
	if !ok {
		return nil, nil
	}

	return s.withAffiliate(s.sales[id]), nil
}

func (s saleStore) FindByOrderNumbers(_ context.Context, orderNumbers []string) (map[string]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := make(map[string]int64)
	for _, orderNumber := range orderNumbers {
		if id, ok := s.saleByOrder[orderNumber]; ok {
			found[orderNumber] = id
		}
	}

	return found, nil
}

func (s saleStore) ListByAffiliate(_ context.Context, affiliateID int64) ([]*domain.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sales := make([]*domain.Sale, 0)
	for _, sale := range s.sales {
		if sale.AffiliateID == affiliateID {
			sales = append(sales, s.withAffiliate(sale))
		}
	}

	sort.Slice(sales, func(i, j int) bool {
		if sales[i].Date != sales[j].Date {
			return sales[i].Date > sales[j].Date
		}
		return sales[i].ID > sales[j].ID
	})

	return sales, nil
}

func (s saleStore) Insert(_ context.Context, sale *domain.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkSale(sale, nil); err != nil {
		return err
	}

	s.insert(sale)

	return nil
}

// InsertBatch valida o lote inteiro antes de gravar qualquer venda
func (s saleStore) InsertBatch(_ context.Context, sales []*domain.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	batch := make(map[string]bool, len(sales))
	for _, sale := range sales {
		if err := s.checkSale(sale, batch); err != nil {
			return err
		}
		batch[sale.OrderNumber] = true
	}

	for _, sale := range sales {
		s.insert(sale)
	}

	return nil
}

func (s saleStore) Update(_ context.Context, sale *domain.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.sales[sale.ID]
	if !ok {
		return repository.ErrNotFound
	}

	if id, taken := s.saleByOrder[sale.OrderNumber]; taken && id != sale.ID {
		return repository.ErrDuplicateOrderNumber
	}

	if _, ok := s.affiliates[sale.AffiliateID]; !ok {
		return fmt.Errorf("%w: influenciadora %d", repository.ErrNotFound, sale.AffiliateID)
	}

	sale.CreatedAt = current.CreatedAt
	sale.ImportBatchID = current.ImportBatchID

	delete(s.saleByOrder, current.OrderNumber)
	s.sales[sale.ID] = *sale
	s.saleByOrder[sale.OrderNumber] = sale.ID

	return nil
}

func (s saleStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sale, ok := s.sales[id]
	if !ok {
		return repository.ErrNotFound
	}

	delete(s.sales, id)
	delete(s.saleByOrder, sale.OrderNumber)

	return nil
}

func (s saleStore) Summarize(_ context.Context, affiliateID int64) (*domain.AffiliateSalesSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	affiliate, ok := s.affiliates[affiliateID]
	if !ok {
		return nil, nil
	}

	totals := s.totalsByAffiliate()[affiliateID]

	return &domain.AffiliateSalesSummary{
		AffiliateID:     affiliate.ID,
		Coupon:          affiliate.Coupon,
		CommissionRate:  affiliate.CommissionRate,
		TotalNet:        utils.FromCents(totals.net),
		TotalCommission: utils.FromCents(totals.commission),
	}, nil
}

func (s saleStore) ListAffiliateSummaries(_ context.Context) ([]*domain.ConsultationRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	totals := s.totalsByAffiliate()

	consultation := make([]*domain.ConsultationRow, 0, len(s.affiliates))
	for _, affiliate := range s.affiliates {
		t := totals[affiliate.ID]
		consultation = append(consultation, &domain.ConsultationRow{
			ID:                   affiliate.ID,
			Name:                 affiliate.Name,
			Instagram:            affiliate.Instagram,
			Coupon:               affiliate.Coupon,
			CommissionRate:       affiliate.CommissionRate,
			SalesCount:           t.count,
			SalesTotalNet:        utils.FromCents(t.net),
			SalesTotalCommission: utils.FromCents(t.commission),
		})
	}

	sort.Slice(consultation, func(i, j int) bool {
		return byName(consultation[i].Name, consultation[i].ID, consultation[j].Name, consultation[j].ID)
	})

	return consultation, nil
}

func (s saleStore) RefreshAffiliateTotals(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	totals := s.totalsByAffiliate()
	for id, affiliate := range s.affiliates {
		t := totals[id]
		affiliate.SalesCount = t.count
		affiliate.SalesTotal = utils.FromCents(t.net)
		s.affiliates[id] = affiliate
	}

	return len(s.affiliates), nil
}

type saleTotals struct {
	count      int
	net        int64
	commission int64
}

// totalsByAffiliate acumula em centavos para não propagar erro de ponto flutuante
func (s *Store) totalsByAffiliate() map[int64]saleTotals {
	totals := make(map[int64]saleTotals, len(s.affiliates))
	for _, sale := range s.sales {
		t := totals[sale.AffiliateID]
		t.count++
		t.net += utils.ToCents(sale.NetValue)
		t.commission += utils.ToCents(sale.Commission)
		totals[sale.AffiliateID] = t
	}
	return totals
}

func (s *Store) checkSale(sale *domain.Sale, batch map[string]bool) error {
	if _, taken := s.saleByOrder[sale.OrderNumber]; taken || batch[sale.OrderNumber] {
		return repository.ErrDuplicateOrderNumber
	}

	if _, ok := s.affiliates[sale.AffiliateID]; !ok {
		return fmt.Errorf("%w: influenciadora %d", repository.ErrNotFound, sale.AffiliateID)
	}

	return nil
}

func (s *Store) insert(sale *domain.Sale) {
	s.nextSaleID++
	sale.ID = s.nextSaleID
	sale.CreatedAt = s.now()

	stored := *sale
	stored.Coupon = ""
	stored.AffiliateName = ""
	stored.CommissionRate = 0

	s.sales[sale.ID] = stored
	s.saleByOrder[sale.OrderNumber] = sale.ID
}

func (s *Store) withAffiliate(sale domain.Sale) *domain.Sale {
	if affiliate, ok := s.affiliates[sale.AffiliateID]; ok {
		sale.Coupon = affiliate.Coupon
		sale.AffiliateName = affiliate.Name
		sale.CommissionRate = affiliate.CommissionRate
	}
	return &sale
}

func byName(nameA string, idA int64, nameB string, idB int64) bool {
	a, b := strings.ToLower(nameA), strings.ToLower(nameB)
	if a != b {
		return a < b
	}
	return idA < idB
}

package sales

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cachemocks "github.com/vfg2006/influencer-sales-api/infrastructure/cache/mocks"
	"github.com/vfg2006/influencer-sales-api/infrastructure/repository/memory"
	"github.com/vfg2006/influencer-sales-api/infrastructure/repository/mocks"
	"github.com/vfg2006/influencer-sales-api/internal/config"
	"github.com/vfg2006/influencer-sales-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_Summary(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	ana := seedAffiliate(t, store, "Ana", "ANA10", 10)
	service := newTestService(store, nil)

	_, err := service.CreateSale(ctx, domain.SaleInput{OrderNumber: "PED-1", Coupon: "ANA10", Date: "2025-10-01", GrossValue: 1000, Discount: 100})
	require.NoError(t, err)
	_, err = service.CreateSale(ctx, domain.SaleInput{OrderNumber: "PED-2", Coupon: "ana10", Date: "2025-10-02", GrossValue: "200,00"})
	require.NoError(t, err)

	summary, err := service.Summary(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, ana.ID, summary.AffiliateID)
	assert.Equal(t, "ANA10", summary.Coupon)
	assert.Equal(t, 1100.0, summary.TotalNet)
	assert.Equal(t, 110.0, summary.TotalCommission)

	_, err = service.Summary(ctx, 999)
	assertSalesError(t, err, ErrNotFound, "")
}

func TestService_ConsultationUsesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rows := []*domain.ConsultationRow{{ID: 1, Name: "Ana", Coupon: "ANA10", SalesCount: 2, SalesTotalNet: 300.3}}

	saleRepo := mocks.NewMockSaleRepository(ctrl)
	saleRepo.EXPECT().ListAffiliateSummaries(gomock.Any()).Return(rows, nil).Times(1)

	consultationCache := cachemocks.NewMockConsultationCache(ctrl)
	gomock.InOrder(
		consultationCache.EXPECT().Get(gomock.Any()).Return(nil, false, nil),
		consultationCache.EXPECT().Set(gomock.Any(), rows, defaultConsultationTTL).Return(nil),
		consultationCache.EXPECT().Get(gomock.Any()).Return(rows, true, nil),
	)

	service := NewService(mocks.NewMockAffiliateRepository(ctrl), saleRepo, consultationCache, &config.Config{})

	first, err := service.Consultation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, rows, first)

	second, err := service.Consultation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, rows, second)
}

func TestService_RefreshSummaries(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	ana := seedAffiliate(t, store, "Ana", "ANA10", 10)
	seedAffiliate(t, store, "Bia", "BIA5", 5)
	service := newTestService(store, nil)

	_, err := service.CreateSale(ctx, domain.SaleInput{OrderNumber: "PED-1", Coupon: "ANA10", Date: "2025-10-01", GrossValue: 1000, Discount: 100})
	require.NoError(t, err)

	updated, err := service.RefreshSummaries(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, updated)

	refreshed, err := store.Affiliates().FindByID(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, refreshed.SalesCount)
	assert.Equal(t, 900.0, refreshed.SalesTotal)
}

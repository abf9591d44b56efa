package sales

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/influencer-sales-api/infrastructure/repository"
	"github.com/vfg2006/influencer-sales-api/infrastructure/repository/memory"
	"github.com/vfg2006/influencer-sales-api/infrastructure/repository/mocks"
	"github.com/vfg2006/influencer-sales-api/internal/config"
	"github.com/vfg2006/influencer-sales-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_PreviewImportFlagsEveryRepeatedOrder(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	seedAffiliate(t, store, "Ana", "ANA10", 10)
	service := newTestService(store, nil)

	text := "Pedido;Cupom;Data;Valor Bruto;Desconto\n" +
		"PED-1;ANA10;01/10/2025;100,00;0\n" +
		"PED-1;ana10;02/10/2025;50;0\n" +
		"PED-9;ANA10;03/10/2025;10;0\n"

	analysis, err := service.PreviewImport(ctx, text)
	require.NoError(t, err)

	assert.True(t, analysis.HasHeader)
	assert.Equal(t, "semicolon", analysis.Delimiter)
	assert.Equal(t, 3, analysis.TotalCount)
	assert.Equal(t, 1, analysis.ValidCount)
	assert.Equal(t, 2, analysis.ErrorCount)
	assert.True(t, analysis.HasErrors)

	require.Len(t, analysis.Rows, 3)
	assert.Equal(t, 2, analysis.Rows[0].Line)
	assert.Equal(t, []string{msgRepeatedInBatch}, analysis.Rows[0].Errors)
	assert.Equal(t, []string{msgRepeatedInBatch}, analysis.Rows[1].Errors)
	assert.Empty(t, analysis.Rows[2].Errors)

	_, err = service.ConfirmImport(ctx, text)
	assertSalesError(t, err, ErrConflictAnalysis, "")

	var salesErr *SalesError
	require.True(t, errors.As(err, &salesErr))
	require.NotNil(t, salesErr.Analysis)
	assert.Equal(t, 2, salesErr.Analysis.ErrorCount)
	assert.Equal(t, 0, store.SaleCount())
}

func TestService_ImportPED2(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	ana := seedAffiliate(t, store, "Ana", "ANA10", 10)
	service := newTestService(store, nil)

	text := "PED-2;ANA10;05/10/2025;1000;100"

	preview, err := service.PreviewImport(ctx, text)
	require.NoError(t, err)
	assert.False(t, preview.HasHeader)
	require.Len(t, preview.Rows, 1)

	row := preview.Rows[0]
	assert.Empty(t, row.Errors)
	assert.Equal(t, 1, row.Line)
	assert.Equal(t, ana.ID, row.AffiliateID)
	assert.Equal(t, "2025-10-05", row.Date)
	assert.Equal(t, 900.0, row.NetValue)
	assert.Equal(t, 90.0, row.Commission)

	result, err := service.ConfirmImport(ctx, text)
	require.NoError(t, err)
	assert.Equal(t, "IMP-TESTE", result.BatchID)
	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, preview.Summary, result.Summary)
	assert.Equal(t, 900.0, result.Summary.TotalNet)
	assert.Equal(t, 90.0, result.Summary.TotalCommission)
	assert.Equal(t, 1, store.SaleCount())

	stored, err := service.CheckOrders(ctx, []string{"PED-2"})
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "IMP-TESTE", stored[0].ImportBatchID)

	_, err = service.ConfirmImport(ctx, text)
	assertSalesError(t, err, ErrConflictAnalysis, "")

	var salesErr *SalesError
	require.True(t, errors.As(err, &salesErr))
	assert.Equal(t, []string{msgAlreadyRegistered}, salesErr.Analysis.Rows[0].Errors)
	assert.Equal(t, 1, store.SaleCount())
}

func TestService_PreviewImportRowErrors(t *testing.T) {
	store := memory.New()
	seedAffiliate(t, store, "Ana", "ANA10", 10)
	service := newTestService(store, nil)

	tests := []struct {
		name   string
		line   string
		errors []string
	}{
		{"cupom desconhecido", "PED-1;OUTRO;01/10/2025;10;0", []string{msgCouponNotRegistered}},
		{"data inexistente", "PED-1;ANA10;31/02/2024;10;0", []string{msgInvalidDate}},
		{"desconto maior que o bruto", "PED-1;ANA10;01/10/2025;10;20", []string{msgDiscountAboveGross}},
		{"bruto vazio", "PED-1;ANA10;01/10/2025;;0", []string{msgInvalidGross}},
		{"bruto acima do limite", "PED-X;ANA10;01/10/2025;99999999999999999999;0", []string{msgInvalidGross}},
		{"vários erros de conversão na mesma linha", ";;ontem;abc;xyz", []string{msgInvalidDate, msgInvalidGross, msgInvalidDiscount}},
		{"pedido e cupom ausentes", ";;01/10/2025;10;0", []string{msgOrderRequired, msgCouponRequired}},
		{"data inválida não consulta o cupom", "PED-1;OUTRO;31/02/2024;10;0", []string{msgInvalidDate}},
		{"bruto inválido não consulta o cupom", "PED-1;OUTRO;01/10/2025;abc;0", []string{msgInvalidGross}},
		{"bruto inválido não compara com o desconto", "PED-1;ANA10;01/10/2025;abc;20", []string{msgInvalidGross}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis, err := service.PreviewImport(context.Background(), tt.line)
			require.NoError(t, err)
			require.Len(t, analysis.Rows, 1)
			assert.Equal(t, tt.errors, analysis.Rows[0].Errors)
			assert.Equal(t, 0, analysis.Summary.Count)
		})
	}
}

func TestService_PreviewImportHeaderWithOtherDelimiter(t *testing.T) {
	store := memory.New()
	seedAffiliate(t, store, "Ana", "ANA10", 10)
	service := newTestService(store, nil)

	text := "Pedido\tCupom\tData\tValor Bruto\tDesconto\n" +
		"PED-1;ANA10;01/10/2025;100,00;10,00\n" +
		"PED-2;ANA10;02/10/2025;50;0\n"

	analysis, err := service.PreviewImport(context.Background(), text)
	require.NoError(t, err)

	assert.True(t, analysis.HasHeader)
	assert.Equal(t, "semicolon", analysis.Delimiter)
	assert.Equal(t, 2, analysis.ValidCount)
	assert.False(t, analysis.HasErrors)

	require.Len(t, analysis.Rows, 2)
	assert.Equal(t, "PED-1", analysis.Rows[0].OrderNumber)
	assert.Equal(t, "ANA10", analysis.Rows[0].Coupon)
	assert.Equal(t, 90.0, analysis.Rows[0].NetValue)
	assert.Equal(t, 140.0, analysis.Summary.TotalNet)
}

func TestService_PreviewImportKeepsOriginalLineNumbers(t *testing.T) {
	store := memory.New()
	seedAffiliate(t, store, "Ana", "ANA10", 12.5)
	service := newTestService(store, nil)

	text := "\r\nPED-1\tANA10\t2025-10-01\t1.000,00\t100,00\r\n\r\nPED-2\tANA10\t01/10/25\t10\t\r\n"

	analysis, err := service.PreviewImport(context.Background(), text)
	require.NoError(t, err)
	assert.Equal(t, "tab", analysis.Delimiter)
	require.Len(t, analysis.Rows, 2)

	assert.Equal(t, 4, analysis.Rows[1].Line)
	assert.Equal(t, 112.5, analysis.Rows[0].Commission)
	assert.Equal(t, "2025-10-01", analysis.Rows[1].Date)
	assert.Equal(t, 0.0, analysis.Rows[1].Discount)
	assert.Equal(t, 910.0, analysis.Summary.TotalNet)
}

func TestService_PreviewImportRejectsEmptyText(t *testing.T) {
	store := memory.New()
	service := newTestService(store, nil)

	for _, text := range []string{"", "  \n\n", "pedido;cupom;data;bruto;desconto\n;;;;"} {
		_, err := service.PreviewImport(context.Background(), text)
		assertSalesError(t, err, ErrValidation, msgNoSalesFound)
	}
}

func TestService_PreviewImportRowLimit(t *testing.T) {
	store := memory.New()
	seedAffiliate(t, store, "Ana", "ANA10", 10)
	service := newTestService(store, &config.Config{Import: config.Import{MaxRows: 1}})

	_, err := service.PreviewImport(context.Background(), "PED-1;ANA10;01/10/2025;10;0\nPED-2;ANA10;01/10/2025;10;0")
	assertSalesError(t, err, ErrValidation, "Limite de 1 linhas por importacao excedido.")
}

func TestService_ConfirmImportStorageRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	affiliateRepo := mocks.NewMockAffiliateRepository(ctrl)
	saleRepo := mocks.NewMockSaleRepository(ctrl)

	affiliateRepo.EXPECT().
		FindByCoupon(gomock.Any(), "ANA10").
		Return(&domain.Affiliate{ID: 7, Name: "Ana", Coupon: "ANA10", CommissionRate: 10}, nil)
	saleRepo.EXPECT().
		FindByOrderNumbers(gomock.Any(), []string{"PED-1", "PED-2"}).
		Return(map[string]int64{}, nil)
	saleRepo.EXPECT().
		InsertBatch(gomock.Any(), gomock.Len(2)).
		Return(repository.ErrDuplicateOrderNumber)

	service := NewService(affiliateRepo, saleRepo, nil, &config.Config{})

	_, err := service.ConfirmImport(context.Background(), "PED-1;ANA10;01/10/2025;10;0\nPED-2;ANA10;01/10/2025;10;0")
	assertSalesError(t, err, ErrDuplicate, "Pedido ja cadastrado.")
}

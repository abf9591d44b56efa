package sales

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vfg2006/influencer-sales-api/infrastructure/repository"
	"github.com/vfg2006/influencer-sales-api/internal/domain"
	"github.com/vfg2006/influencer-sales-api/internal/normalize"
	"github.com/vfg2006/influencer-sales-api/pkg/log"
	"github.com/vfg2006/influencer-sales-api/pkg/utils"
)

// Mensagens de erro por linha da importação
const (
	msgNoSalesFound        = "Nenhuma venda encontrada no texto informado."
	msgOrderRequired       = "Numero do pedido obrigatorio."
	msgCouponRequired      = "Cupom obrigatorio."
	msgInvalidDate         = "Data invalida. Use DD/MM/AAAA."
	msgInvalidGross        = "Valor bruto invalido."
	msgInvalidDiscount     = "Desconto invalido."
	msgDiscountAboveGross  = "Desconto nao pode ser maior que o valor bruto."
	msgCouponNotRegistered = "Cupom nao cadastrado."
	msgRepeatedInBatch     = "Numero de pedido repetido nos dados importados."
	msgAlreadyRegistered   = "Numero de pedido ja cadastrado."
)

// PreviewImport analisa o texto colado sem gravar nada
func (s *Service) PreviewImport(ctx context.Context, text string) (*domain.ImportAnalysis, error) {
	return s.analyze(ctx, text)
}

// ConfirmImport refaz a análise e grava todas as linhas em uma única transação.
// Qualquer linha com erro recusa o lote inteiro.
func (s *Service) ConfirmImport(ctx context.Context, text string) (*domain.ImportResult, error) {
	analysis, err := s.analyze(ctx, text)
	if err != nil {
		return nil, err
	}

	if analysis.HasErrors || analysis.ValidCount != analysis.TotalCount {
		return nil, newConflictError(analysis)
	}

	batchID, err := s.newBatchID()
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao gerar identificador do lote")
		return nil, newStorageError("Nao foi possivel gerar o identificador da importacao.")
	}

	sales := make([]*domain.Sale, 0, len(analysis.Rows))
	for _, row := range analysis.Rows {
		sales = append(sales, &domain.Sale{
			OrderNumber:    row.OrderNumber,
			AffiliateID:    row.AffiliateID,
			Date:           row.Date,
			GrossValue:     row.GrossValue,
			Discount:       row.Discount,
			NetValue:       row.NetValue,
			Commission:     row.Commission,
			ImportBatchID:  batchID,
			Coupon:         row.Coupon,
			AffiliateName:  row.AffiliateName,
			CommissionRate: row.CommissionRate,
		})
	}

	if err := s.saleRepo.InsertBatch(ctx, sales); err != nil {
		if errors.Is(err, repository.ErrDuplicateOrderNumber) {
			return nil, newDuplicateError()
		}
		log.ForContext(ctx).WithError(err).WithField("batch_id", batchID).Error("Erro ao gravar lote importado")
		return nil, newStorageError("Nao foi possivel importar as vendas.")
	}

	s.invalidateConsultation(ctx)

	log.ForContext(ctx).WithField("batch_id", batchID).Infof("%d vendas importadas", len(sales))

	return &domain.ImportResult{
		BatchID:  batchID,
		Inserted: len(sales),
		Rows:     sales,
		Summary:  analysis.Summary,
	}, nil
}

type dataLine struct {
	number int
	cells  []string
}

func (s *Service) analyze(ctx context.Context, text string) (*domain.ImportAnalysis, error) {
	lines := normalize.CleanText(text)

	first := -1
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			first = i
			break
		}
	}
	if first < 0 {
		return nil, newValidationError(msgNoSalesFound)
	}

	delimiter := normalize.DetectDelimiter(lines[first])
	columns, hasHeader := normalize.DetectHeader(normalize.SplitLine(lines[first], delimiter))
	if hasHeader {
		// planilhas exportadas podem trazer o cabeçalho com outro separador
		for _, line := range lines[first+1:] {
			if strings.TrimSpace(line) != "" {
				delimiter = normalize.DataDelimiter(delimiter, line)
				break
			}
		}
	}

	data := make([]dataLine, 0, len(lines))
	for i := first; i < len(lines); i++ {
		if i == first && hasHeader {
			continue
		}
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}

		cells := normalize.SplitLine(lines[i], delimiter)
		if blankCells(cells) {
			continue
		}
		data = append(data, dataLine{number: i + 1, cells: cells})
	}

	if len(data) == 0 {
		return nil, newValidationError(msgNoSalesFound)
	}

	if limit := s.maxImportRows(); limit > 0 && len(data) > limit {
		return nil, newValidationError(fmt.Sprintf("Limite de %d linhas por importacao excedido.", limit))
	}

	rows := make([]*domain.ImportRow, 0, len(data))
	affiliates := make(map[string]*domain.Affiliate)

	for _, line := range data {
		row := parseRow(line, columns)

		if len(row.Errors) == 0 {
			affiliate, err := s.resolveCoupon(ctx, affiliates, row.Coupon)
			if err != nil {
				return nil, err
			}
			if affiliate == nil {
				row.Errors = append(row.Errors, msgCouponNotRegistered)
			} else {
				row.AffiliateID = affiliate.ID
				row.AffiliateName = affiliate.Name
				row.CommissionRate = affiliate.CommissionRate
			}
		}

		rows = append(rows, row)
	}

	flagRepeatedOrders(rows)

	if err := s.flagPersistedOrders(ctx, rows); err != nil {
		return nil, err
	}

	return buildAnalysis(rows, delimiter, hasHeader), nil
}

// parseRow extrai e valida as células de uma linha. Erros de conversão são
// acumulados; as regras entre campos só rodam quando todos convertem.
func parseRow(line dataLine, columns normalize.ColumnMap) *domain.ImportRow {
	row := &domain.ImportRow{
		Line: line.number,
		Raw: domain.ImportRawValues{
			OrderNumber: columns.Cell(line.cells, normalize.ColumnOrder),
			Coupon:      columns.Cell(line.cells, normalize.ColumnCoupon),
			Date:        columns.Cell(line.cells, normalize.ColumnDate),
			GrossValue:  columns.Cell(line.cells, normalize.ColumnGross),
			Discount:    columns.Cell(line.cells, normalize.ColumnDiscount),
		},
		Errors: []string{},
	}

	row.OrderNumber = normalize.OrderNumber(row.Raw.OrderNumber)
	row.Coupon = normalize.Coupon(row.Raw.Coupon)

	if date, err := normalize.ParseCanonicalDate(row.Raw.Date); err != nil {
		row.Errors = append(row.Errors, msgInvalidDate)
	} else {
		row.Date = date
	}

	if gross, err := normalize.ParseMoney(row.Raw.GrossValue); err != nil {
		row.Errors = append(row.Errors, msgInvalidGross)
	} else {
		row.GrossValue = gross
	}

	if strings.TrimSpace(normalize.StripBOM(row.Raw.Discount)) != "" {
		if discount, err := normalize.ParseMoney(row.Raw.Discount); err != nil {
			row.Errors = append(row.Errors, msgInvalidDiscount)
		} else {
			row.Discount = discount
		}
	}

	if len(row.Errors) > 0 {
		return row
	}

	switch {
	case row.OrderNumber == "":
		row.Errors = append(row.Errors, msgOrderRequired)
	case len([]rune(row.OrderNumber)) > normalize.MaxOrderNumberLength:
		row.Errors = append(row.Errors, fmt.Sprintf("Numero do pedido deve ter no maximo %d caracteres.", normalize.MaxOrderNumberLength))
	}

	if row.Coupon == "" {
		row.Errors = append(row.Errors, msgCouponRequired)
	}

	if row.Discount > row.GrossValue {
		row.Errors = append(row.Errors, msgDiscountAboveGross)
	}

	return row
}

// resolveCoupon consulta cada cupom uma única vez por lote
func (s *Service) resolveCoupon(ctx context.Context, resolved map[string]*domain.Affiliate, coupon string) (*domain.Affiliate, error) {
	key := strings.ToLower(coupon)
	if affiliate, ok := resolved[key]; ok {
		return affiliate, nil
	}

	affiliate, err := s.affiliateRepo.FindByCoupon(ctx, coupon)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("coupon", coupon).Error("Erro ao consultar cupom da importacao")
		return nil, newStorageError("Nao foi possivel consultar os cupons da importacao.")
	}

	resolved[key] = affiliate

	return affiliate, nil
}

// flagRepeatedOrders marca todas as ocorrências de um pedido repetido no lote
func flagRepeatedOrders(rows []*domain.ImportRow) {
	occurrences := make(map[string]int, len(rows))
	for _, row := range rows {
		if row.OrderNumber != "" {
			occurrences[row.OrderNumber]++
		}
	}

	for _, row := range rows {
		if occurrences[row.OrderNumber] > 1 {
			row.Errors = append(row.Errors, msgRepeatedInBatch)
		}
	}
}

func (s *Service) flagPersistedOrders(ctx context.Context, rows []*domain.ImportRow) error {
	orderNumbers := make([]string, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		if row.OrderNumber == "" || seen[row.OrderNumber] {
			continue
		}
		seen[row.OrderNumber] = true
		orderNumbers = append(orderNumbers, row.OrderNumber)
	}

	if len(orderNumbers) == 0 {
		return nil
	}

	persisted, err := s.saleRepo.FindByOrderNumbers(ctx, orderNumbers)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao verificar pedidos ja cadastrados")
		return newStorageError("Nao foi possivel verificar os pedidos da importacao.")
	}

	for _, row := range rows {
		if _, exists := persisted[row.OrderNumber]; exists {
			row.Errors = append(row.Errors, msgAlreadyRegistered)
		}
	}

	return nil
}

func buildAnalysis(rows []*domain.ImportRow, delimiter normalize.Delimiter, hasHeader bool) *domain.ImportAnalysis {
	var gross, discount, net, commission int64
	valid := 0

	for _, row := range rows {
		if !row.Valid() {
			continue
		}

		row.NetValue, row.Commission = ComputeTotals(row.GrossValue, row.Discount, row.CommissionRate)

		valid++
		gross += utils.ToCents(row.GrossValue)
		discount += utils.ToCents(row.Discount)
		net += utils.ToCents(row.NetValue)
		commission += utils.ToCents(row.Commission)
	}

	return &domain.ImportAnalysis{
		Rows: rows,
		Summary: domain.ImportSummary{
			Count:           valid,
			TotalGross:      utils.FromCents(gross),
			TotalDiscount:   utils.FromCents(discount),
			TotalNet:        utils.FromCents(net),
			TotalCommission: utils.FromCents(commission),
		},
		TotalCount: len(rows),
		ValidCount: valid,
		ErrorCount: len(rows) - valid,
		HasErrors:  valid != len(rows),
		Delimiter:  delimiter.Name(),
		HasHeader:  hasHeader,
	}
}

func blankCells(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(normalize.StripBOM(cell)) != "" {
			return false
		}
	}
	return true
}

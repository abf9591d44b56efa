package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/influencer-sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/influencer-sales-api/internal/domain"
)

const (
	salesTable = "sales s"
	dateLayout = "2006-01-02"

	saleColumns = "s.id, s.order_number, s.affiliate_id, s.sale_date, s.gross_value, s.discount, " +
		"s.net_value, s.commission, COALESCE(s.import_batch_id, ''), s.created_at, " +
		"COALESCE(a.coupon, ''), a.name, a.commission_rate"
)

type saleRepository struct {
	conn postgres.Conn
}

func NewSaleRepository(conn postgres.Conn) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func (r *saleRepository) selectSales() squirrel.SelectBuilder {
	return squirrel.
		Select(saleColumns).
		From(salesTable).
		Join("affiliates a ON a.id = s.affiliate_id").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *saleRepository) FindByID(ctx context.Context, id int64) (*domain.Sale, error) {
	return r.findOne(ctx, squirrel.Eq{"s.id": id})
}

func (r *saleRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Sale, error) {
	return r.findOne(ctx, squirrel.Eq{"s.order_number": orderNumber})
}

func (r *saleRepository) findOne(ctx context.Context, where squirrel.Sqlizer) (*domain.Sale, error) {
	query, args, err := r.selectSales().Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	sale, err := scanSale(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar venda: %w", err)
	}

	return sale, nil
}

// FindByOrderNumbers devolve, dentre os números informados, os já cadastrados
// (número do pedido -> id da venda)
func (r *saleRepository) FindByOrderNumbers(ctx context.Context, orderNumbers []string) (map[string]int64, error) {
	found := make(map[string]int64)
	if len(orderNumbers) == 0 {
		return found, nil
	}

	query, args, err := squirrel.
		Select("id, order_number").
		From("sales").
		Where(squirrel.Eq{"order_number": orderNumbers}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar pedidos: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id          int64
			orderNumber string
		)
		if err := rows.Scan(&id, &orderNumber); err != nil {
			return nil, fmt.Errorf("erro ao ler pedido: %w", err)
		}
		found[orderNumber] = id
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return found, nil
}

// ListByAffiliate lista as vendas da influenciadora da mais recente para a mais antiga
func (r *saleRepository) ListByAffiliate(ctx context.Context, affiliateID int64) ([]*domain.Sale, error) {
	query, args, err := r.selectSales().
		Where(squirrel.Eq{"s.affiliate_id": affiliateID}).
		OrderBy("s.sale_date DESC", "s.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao deserializar venda: %w", err)
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return sales, nil
}

func (r *saleRepository) Insert(ctx context.Context, sale *domain.Sale) error {
	return insertSale(ctx, r.conn, sale)
}

// InsertBatch grava todas as vendas em uma única transação
func (r *saleRepository) InsertBatch(ctx context.Context, sales []*domain.Sale) error {
	if len(sales) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, sale := range sales {
			if err := insertSale(ctx, tx, sale); err != nil {
				return err
			}
		}
		return nil
	})
}

func insertSale(ctx context.Context, q postgres.Queryer, sale *domain.Sale) error {
	query, args, err := squirrel.
		Insert("sales").
		Columns(
			"order_number", "affiliate_id", "sale_date", "gross_value", "discount",
			"net_value", "commission", "import_batch_id",
		).
		Values(
			sale.OrderNumber,
			sale.AffiliateID,
			sale.Date,
			sale.GrossValue,
			sale.Discount,
			sale.NetValue,
			sale.Commission,
			nullString(sale.ImportBatchID),
		).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := q.QueryRowContext(ctx, query, args...).Scan(&sale.ID, &sale.CreatedAt); err != nil {
		return translateSaleError(err)
	}

	return nil
}

func (r *saleRepository) Update(ctx context.Context, sale *domain.Sale) error {
	query, args, err := squirrel.
		Update("sales").
		Set("order_number", sale.OrderNumber).
		Set("affiliate_id", sale.AffiliateID).
		Set("sale_date", sale.Date).
		Set("gross_value", sale.GrossValue).
		Set("discount", sale.Discount).
		Set("net_value", sale.NetValue).
		Set("commission", sale.Commission).
		Where(squirrel.Eq{"id": sale.ID}).
		Suffix("RETURNING created_at, COALESCE(import_batch_id, '')").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&sale.CreatedAt, &sale.ImportBatchID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return translateSaleError(err)
	}

	return nil
}

func (r *saleRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := squirrel.
		Delete("sales").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover venda: %w", err)
	}

	return requireAffected(result)
}

// Summarize soma líquido e comissão da influenciadora. Retorna nil quando ela
// não existe; sem vendas os totais são zero.
func (r *saleRepository) Summarize(ctx context.Context, affiliateID int64) (*domain.AffiliateSalesSummary, error) {
	query, args, err := squirrel.
		Select(
			"a.id",
			"COALESCE(a.coupon, '')",
			"a.commission_rate",
			"COALESCE(SUM(s.net_value), 0)",
			"COALESCE(SUM(s.commission), 0)",
		).
		From(affiliatesTable).
		LeftJoin("sales s ON s.affiliate_id = a.id").
		Where(squirrel.Eq{"a.id": affiliateID}).
		GroupBy("a.id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	summary := &domain.AffiliateSalesSummary{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&summary.AffiliateID,
		&summary.Coupon,
		&summary.CommissionRate,
		&summary.TotalNet,
		&summary.TotalCommission,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao resumir vendas: %w", err)
	}

	return summary, nil
}

// ListAffiliateSummaries monta a consulta geral: todas as influenciadoras, com
// ou sem vendas, ordenadas pelo nome
func (r *saleRepository) ListAffiliateSummaries(ctx context.Context) ([]*domain.ConsultationRow, error) {
	query, args, err := squirrel.
		Select(
			"a.id",
			"a.name",
			"a.instagram",
			"COALESCE(a.coupon, '')",
			"a.commission_rate",
			"COUNT(s.id)",
			"COALESCE(SUM(s.net_value), 0)",
			"COALESCE(SUM(s.commission), 0)",
		).
		From(affiliatesTable).
		LeftJoin("sales s ON s.affiliate_id = a.id").
		GroupBy("a.id").
		OrderBy("LOWER(a.name) ASC", "a.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar resumo das influenciadoras: %w", err)
	}
	defer rows.Close()

	consultation := make([]*domain.ConsultationRow, 0)
	for rows.Next() {
		row := &domain.ConsultationRow{}
		if err := rows.Scan(
			&row.ID,
			&row.Name,
			&row.Instagram,
			&row.Coupon,
			&row.CommissionRate,
			&row.SalesCount,
			&row.SalesTotalNet,
			&row.SalesTotalCommission,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar resumo: %w", err)
		}
		consultation = append(consultation, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return consultation, nil
}

// RefreshAffiliateTotals recalcula sales_count e sales_total de todas as
// influenciadoras e retorna quantas foram atualizadas
func (r *saleRepository) RefreshAffiliateTotals(ctx context.Context) (int, error) {
	query, args, err := squirrel.
		Update("affiliates").
		Set("sales_count", squirrel.Expr("(SELECT COUNT(*) FROM sales s WHERE s.affiliate_id = affiliates.id)")).
		Set("sales_total", squirrel.Expr("(SELECT COALESCE(SUM(s.net_value), 0) FROM sales s WHERE s.affiliate_id = affiliates.id)")).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao atualizar totais das influenciadoras: %w", err)
	}

	updated, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error getting rows affected: %w", err)
	}

	return int(updated), nil
}

func translateSaleError(err error) error {
	if postgres.IsUniqueViolation(err, postgres.ConstraintSaleOrderNumber) {
		return ErrDuplicateOrderNumber
	}
	return fmt.Errorf("erro ao salvar venda: %w", err)
}

func scanSale(row rowScanner) (*domain.Sale, error) {
	var (
		sale     domain.Sale
		saleDate time.Time
	)

	if err := row.Scan(
		&sale.ID,
		&sale.OrderNumber,
		&sale.AffiliateID,
		&saleDate,
		&sale.GrossValue,
		&sale.Discount,
		&sale.NetValue,
		&sale.Commission,
		&sale.ImportBatchID,
		&sale.CreatedAt,
		&sale.Coupon,
		&sale.AffiliateName,
		&sale.CommissionRate,
	); err != nil {
		return nil, err
	}

	sale.Date = saleDate.Format(dateLayout)

	return &sale, nil
}

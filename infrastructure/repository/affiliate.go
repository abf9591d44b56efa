// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/influencer-sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/influencer-sales-api/internal/domain"
)

const (
	affiliatesTable = "affiliates a"

	affiliateColumns = "a.id, a.name, a.instagram, a.tax_id, a.contact_phone, a.email, a.coupon, " +
		"a.commission_rate, a.postal_code, a.address_number, a.complement, a.street, a.district, " +
		"a.city, a.state, a.user_id, a.sales_count, a.sales_total, a.created_at"
)

type affiliateRepository struct {
	conn postgres.Conn
}

func NewAffiliateRepository(conn postgres.Conn) AffiliateRepository {
	return &affiliateRepository{
		conn: conn,
	}
}

func (r *affiliateRepository) FindByID(ctx context.Context, id int64) (*domain.Affiliate, error) {
	return r.findOne(ctx, squirrel.Eq{"a.id": id})
}

// FindByCoupon compara o cupom sem diferenciar maiúsculas de minúsculas
func (r *affiliateRepository) FindByCoupon(ctx context.Context, coupon string) (*domain.Affiliate, error) {
	return r.findOne(ctx, squirrel.Expr("LOWER(a.coupon) = LOWER(?)", coupon))
}

func (r *affiliateRepository) FindByUserID(ctx context.Context, userID int64) (*domain.Affiliate, error) {
	return r.findOne(ctx, squirrel.Eq{"a.user_id": userID})
}

func (r *affiliateRepository) findOne(ctx context.Context, where squirrel.Sqlizer) (*domain.Affiliate, error) {
	query, args, err := squirrel.
		Select(affiliateColumns).
		From(affiliatesTable).
		Where(where).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	affiliate, err := scanAffiliate(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar influenciadora: %w", err)
	}

	return affiliate, nil
}

func (r *affiliateRepository) List(ctx context.Context) ([]*domain.Affiliate, error) {
	query, args, err := squirrel.
		Select(affiliateColumns).
		From(affiliatesTable).
		OrderBy("LOWER(a.name) ASC", "a.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar influenciadoras: %w", err)
	}
	defer rows.Close()

	affiliates := make([]*domain.Affiliate, 0)
	for rows.Next() {
		affiliate, err := scanAffiliate(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao deserializar influenciadora: %w", err)
		}
		affiliates = append(affiliates, affiliate)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return affiliates, nil
}

func (r *affiliateRepository) Create(ctx context.Context, affiliate *domain.Affiliate) error {
	query, args, err := squirrel.
		Insert("affiliates").
		Columns(
			"name", "instagram", "tax_id", "contact_phone", "email", "coupon", "commission_rate",
			"postal_code", "address_number", "complement", "street", "district", "city", "state", "user_id",
		).
		Values(affiliateValues(affiliate)...).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&affiliate.ID, &affiliate.CreatedAt)
	if err != nil {
		return translateAffiliateError(err)
	}

	return nil
}

func (r *affiliateRepository) Update(ctx context.Context, affiliate *domain.Affiliate) error {
	values := affiliateValues(affiliate)

	query, args, err := squirrel.
		Update("affiliates").
		SetMap(map[string]any{
			"name":            values[0],
			"instagram":       values[1],
			"tax_id":          values[2],
			"contact_phone":   values[3],
			"email":           values[4],
			"coupon":          values[5],
			"commission_rate": values[6],
			"postal_code":     values[7],
			"address_number":  values[8],
			"complement":      values[9],
			"street":          values[10],
			"district":        values[11],
			"city":            values[12],
			"state":           values[13],
			"user_id":         values[14],
		}).
		Where(squirrel.Eq{"id": affiliate.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return translateAffiliateError(err)
	}

	return requireAffected(result)
}

// Delete remove a influenciadora e, em cascata, as suas vendas
func (r *affiliateRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := squirrel.
		Delete("affiliates").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover influenciadora: %w", err)
	}

	return requireAffected(result)
}

func affiliateValues(a *domain.Affiliate) []any {
	return []any{
		a.Name,
		a.Instagram,
		nullString(a.TaxID),
		nullString(a.ContactPhone),
		nullString(a.Email),
		nullString(a.Coupon),
		a.CommissionRate,
		nullString(a.Address.PostalCode),
		nullString(a.Address.Number),
		nullString(a.Address.Complement),
		nullString(a.Address.Street),
		nullString(a.Address.District),
		nullString(a.Address.City),
		nullString(a.Address.State),
		a.LinkedUserID,
	}
}

func translateAffiliateError(err error) error {
	switch {
	case postgres.IsUniqueViolation(err, postgres.ConstraintAffiliateCoupon):
		return ErrDuplicateCoupon
	case postgres.IsUniqueViolation(err, postgres.ConstraintAffiliateInstagram):
		return ErrDuplicateInstagram
	case postgres.IsUniqueViolation(err, postgres.ConstraintAffiliateLinkedUser):
		return ErrDuplicateLinkedUser
	default:
		return fmt.Errorf("erro ao salvar influenciadora: %w", err)
	}
}

func scanAffiliate(row rowScanner) (*domain.Affiliate, error) {
	var (
		affiliate                          domain.Affiliate
		taxID, contactPhone, email, coupon sql.NullString
		postalCode, number, complement     sql.NullString
		street, district, city, state      sql.NullString
		userID                             sql.NullInt64
	)

	if err := row.Scan(
		&affiliate.ID,
		&affiliate.Name,
		&affiliate.Instagram,
		&taxID,
		&contactPhone,
		&email,
		&coupon,
		&affiliate.CommissionRate,
		&postalCode,
		&number,
		&complement,
		&street,
		&district,
		&city,
		&state,
		&userID,
		&affiliate.SalesCount,
		&affiliate.SalesTotal,
		&affiliate.CreatedAt,
	); err != nil {
		return nil, err
	}

	affiliate.TaxID = taxID.String
	affiliate.ContactPhone = contactPhone.String
	affiliate.Email = email.String
	affiliate.Coupon = coupon.String
	affiliate.Address = domain.Address{
		PostalCode: postalCode.String,
		Number:     number.String,
		Complement: complement.String,
		Street:     street.String,
		District:   district.String,
		City:       city.String,
		State:      state.String,
	}
	if userID.Valid {
		id := userID.Int64
		affiliate.LinkedUserID = &id
	}

	return &affiliate, nil
}

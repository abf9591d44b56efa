package postgres

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Nomes das constraints usados para traduzir violações de unicidade
const (
	ConstraintSaleOrderNumber     = "sales_order_number_key"
	ConstraintAffiliateInstagram  = "affiliates_instagram_key"
	ConstraintAffiliateCoupon     = "affiliates_coupon_lower_idx"
	ConstraintAffiliateLinkedUser = "affiliates_user_id_key"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS affiliates (
		id               BIGSERIAL PRIMARY KEY,
		name             TEXT NOT NULL,
		instagram        TEXT NOT NULL,
		tax_id           TEXT,
		contact_phone    TEXT,
		email            TEXT,
		coupon           TEXT,
		commission_rate  NUMERIC(5,2) NOT NULL DEFAULT 0,
		postal_code      TEXT,
		address_number   TEXT,
		complement       TEXT,
		street           TEXT,
		district         TEXT,
		city             TEXT,
		state            TEXT,
		user_id          BIGINT,
		sales_count      INTEGER NOT NULL DEFAULT 0,
		sales_total      NUMERIC(14,2) NOT NULL DEFAULT 0,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT affiliates_instagram_key UNIQUE (instagram),
		CONSTRAINT affiliates_user_id_key UNIQUE (user_id),
		CONSTRAINT affiliates_commission_rate_check CHECK (commission_rate >= 0 AND commission_rate <= 100)
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS affiliates_coupon_lower_idx
		ON affiliates (LOWER(coupon)) WHERE coupon IS NOT NULL`,
	`CREATE TABLE IF NOT EXISTS sales (
		id               BIGSERIAL PRIMARY KEY,
		order_number     VARCHAR(100) NOT NULL,
		affiliate_id     BIGINT NOT NULL REFERENCES affiliates(id) ON DELETE CASCADE,
		sale_date        DATE NOT NULL,
		gross_value      NUMERIC(12,2) NOT NULL,
		discount         NUMERIC(12,2) NOT NULL DEFAULT 0,
		net_value        NUMERIC(12,2) NOT NULL,
		commission       NUMERIC(12,2) NOT NULL,
		import_batch_id  TEXT,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT sales_order_number_key UNIQUE (order_number),
		CONSTRAINT sales_discount_check CHECK (discount >= 0 AND discount <= gross_value)
	)`,
	`CREATE INDEX IF NOT EXISTS sales_affiliate_date_idx
		ON sales (affiliate_id, sale_date DESC, id DESC)`,
	`CREATE INDEX IF NOT EXISTS sales_import_batch_idx
		ON sales (import_batch_id) WHERE import_batch_id IS NOT NULL`,
	`CREATE TABLE IF NOT EXISTS verification_codes (
		id          BIGSERIAL PRIMARY KEY,
		user_id     BIGINT NOT NULL,
		code        VARCHAR(6) NOT NULL,
		expires_at  TIMESTAMPTZ NOT NULL,
		used        BOOLEAN NOT NULL DEFAULT FALSE,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS verification_codes_user_code_idx
		ON verification_codes (user_id, code)`,
	`CREATE TABLE IF NOT EXISTS terms_acceptances (
		id             BIGSERIAL PRIMARY KEY,
		user_id        BIGINT NOT NULL,
		terms_version  TEXT NOT NULL,
		terms_hash     TEXT NOT NULL,
		accepted_at    TIMESTAMPTZ NOT NULL,
		ip_address     TEXT,
		user_agent     TEXT,
		channel        TEXT NOT NULL,
		status         TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS terms_acceptances_user_idx
		ON terms_acceptances (user_id, accepted_at DESC)`,
}

// EnsureSchema cria as tabelas e índices ausentes. Não altera tabelas existentes.
func EnsureSchema(ctx context.Context, q Queryer) error {
	for _, stmt := range schemaStatements {
		if _, err := q.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "criando schema")
		}
	}

	logrus.Info("Schema do banco de dados verificado")

	return nil
}

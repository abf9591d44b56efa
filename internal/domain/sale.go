package domain

import "time"

// Sale é uma venda atribuída a uma influenciadora pelo cupom.
// NetValue e Commission são sempre recalculados na escrita.
type Sale struct {
	ID            int64     `json:"id"`
	OrderNumber   string    `json:"orderNumber"`
	AffiliateID   int64     `json:"influencerId"`
	Date          string    `json:"date"`
	GrossValue    float64   `json:"grossValue"`
	Discount      float64   `json:"discount"`
	NetValue      float64   `json:"netValue"`
	Commission    float64   `json:"commission"`
	ImportBatchID string    `json:"importBatchId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`

	// Campos de leitura vindos da influenciadora
	Coupon         string  `json:"cupom,omitempty"`
	AffiliateName  string  `json:"influencerName,omitempty"`
	CommissionRate float64 `json:"commissionRate"`
}

// SaleInput são os valores brutos de uma venda avulsa
type SaleInput struct {
	OrderNumber string
	Coupon      string
	Date        string
	GrossValue  any
	Discount    any
}

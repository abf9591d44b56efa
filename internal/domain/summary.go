package domain

// AffiliateSalesSummary são os totais de vendas de uma influenciadora
type AffiliateSalesSummary struct {
	AffiliateID     int64   `json:"influencerId"`
	Coupon          string  `json:"cupom"`
	CommissionRate  float64 `json:"commissionRate"`
	TotalNet        float64 `json:"totalNet"`
	TotalCommission float64 `json:"totalCommission"`
}

// ConsultationRow é uma linha da consulta geral do programa
type ConsultationRow struct {
	ID                   int64   `json:"id"`
	Name                 string  `json:"name"`
	Instagram            string  `json:"instagram"`
	Coupon               string  `json:"cupom"`
	CommissionRate       float64 `json:"commissionRate"`
	SalesCount           int     `json:"salesCount"`
	SalesTotalNet        float64 `json:"salesTotalNet"`
	SalesTotalCommission float64 `json:"salesTotalCommission"`
}

package domain

import "time"

// Affiliate é a influenciadora cadastrada no programa de comissões
type Affiliate struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Instagram      string    `json:"instagram"`
	TaxID          string    `json:"taxId,omitempty"`
	ContactPhone   string    `json:"contactPhone,omitempty"`
	Email          string    `json:"email,omitempty"`
	Coupon         string    `json:"coupon,omitempty"`
	CommissionRate float64   `json:"commissionRate"`
	Address        Address   `json:"address"`
	LinkedUserID   *int64    `json:"linkedUserId,omitempty"`
	SalesCount     int       `json:"salesCount"`
	SalesTotal     float64   `json:"salesTotal"`
	CreatedAt      time.Time `json:"createdAt"`
}

type Address struct {
	PostalCode string `json:"postalCode,omitempty"`
	Number     string `json:"number,omitempty"`
	Complement string `json:"complement,omitempty"`
	Street     string `json:"street,omitempty"`
	District   string `json:"district,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
}

// AffiliateInput é o payload de cadastro/edição, ainda não normalizado
type AffiliateInput struct {
	Name           string  `json:"name"`
	Instagram      string  `json:"instagram"`
	TaxID          string  `json:"taxId"`
	ContactPhone   string  `json:"contactPhone"`
	Email          string  `json:"email"`
	Coupon         string  `json:"coupon"`
	CommissionRate any     `json:"commissionRate"`
	Address        Address `json:"address"`
	LinkedUserID   *int64  `json:"linkedUserId"`
}

package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/influencer-sales-api/internal/domain"
	"github.com/vfg2006/influencer-sales-api/internal/usecases/affiliate"
	"github.com/vfg2006/influencer-sales-api/internal/usecases/sales"
	"github.com/vfg2006/influencer-sales-api/pkg/middleware"
)

// AffiliateRequest aceita o payload atual e os nomes em português do formulário antigo
type AffiliateRequest struct {
	domain.AffiliateInput

	Nome              string `json:"nome"`
	CPF               string `json:"cpf"`
	Contato           string `json:"contato"`
	Cupom             string `json:"cupom"`
	CommissionPercent any    `json:"commissionPercent"`
	CommissionSnake   any    `json:"commission_rate"`
	CEP               string `json:"cep"`
	Numero            string `json:"numero"`
	Complemento       string `json:"complemento"`
	Logradouro        string `json:"logradouro"`
	Bairro            string `json:"bairro"`
	Cidade            string `json:"cidade"`
	Estado            string `json:"estado"`
}

func (req AffiliateRequest) toInput() domain.AffiliateInput {
	input := req.AffiliateInput

	input.Name = firstText(input.Name, req.Nome)
	input.TaxID = firstText(input.TaxID, req.CPF)
	input.ContactPhone = firstText(input.ContactPhone, req.Contato)
	input.Coupon = firstText(input.Coupon, req.Cupom)
	input.CommissionRate = firstPresent(input.CommissionRate, req.CommissionPercent, req.CommissionSnake)

	input.Address.PostalCode = firstText(input.Address.PostalCode, req.CEP)
	input.Address.Number = firstText(input.Address.Number, req.Numero)
	input.Address.Complement = firstText(input.Address.Complement, req.Complemento)
	input.Address.Street = firstText(input.Address.Street, req.Logradouro)
	input.Address.District = firstText(input.Address.District, req.Bairro)
	input.Address.City = firstText(input.Address.City, req.Cidade)
	input.Address.State = firstText(input.Address.State, req.Estado)

	return input
}

func firstText(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

// ListAffiliates devolve todas para o master e apenas a própria para a influenciadora
func ListAffiliates(directory affiliate.AffiliateDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		affiliates, err := directory.List(r.Context(), middleware.ClaimsFromContext(r.Context()))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, affiliates)
	}
}

func CreateAffiliate(directory affiliate.AffiliateDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AffiliateRequest
		if !decodeBody(w, r, &req) {
			return
		}

		created, err := directory.Create(r.Context(), req.toInput())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, created)
	}
}

func GetAffiliate(directory affiliate.AffiliateDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		found, err := directory.ResolveAccess(r.Context(), middleware.ClaimsFromContext(r.Context()), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, found)
	}
}

func UpdateAffiliate(directory affiliate.AffiliateDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var req AffiliateRequest
		if !decodeBody(w, r, &req) {
			return
		}

		updated, err := directory.Update(r.Context(), middleware.ClaimsFromContext(r.Context()), id, req.toInput())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, updated)
	}
}

func DeleteAffiliate(directory affiliate.AffiliateDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		if err := directory.Delete(r.Context(), id); err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, messageResponse{Message: "Influenciadora removida com sucesso."})
	}
}

// ListAffiliateSales lista as vendas de uma influenciadora, mais recentes primeiro
func ListAffiliateSales(directory affiliate.AffiliateDirectory, service sales.SalesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		owner, err := directory.ResolveAccess(r.Context(), middleware.ClaimsFromContext(r.Context()), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		list, err := service.ListByAffiliate(r.Context(), owner.ID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, list)
	}
}

func GetSalesSummary(directory affiliate.AffiliateDirectory, service sales.SalesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "influencerId")
		if !ok {
			return
		}

		owner, err := directory.ResolveAccess(r.Context(), middleware.ClaimsFromContext(r.Context()), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		summary, err := service.Summary(r.Context(), owner.ID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	}
}

// GetConsultation é a visão geral do programa para o master
func GetConsultation(service sales.SalesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := service.Consultation(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, rows)
	}
}

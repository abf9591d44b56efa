package handler

import (
	"net/http"

	"github.com/vfg2006/influencer-sales-api/internal/usecases/sales"
)

type ImportRequest struct {
	Text string `json:"text"`
}

// PreviewImport analisa o texto colado sem gravar. Linhas com erro vêm na própria análise.
func PreviewImport(service sales.SalesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ImportRequest
		if !decodeBody(w, r, &req) {
			return
		}

		analysis, err := service.PreviewImport(r.Context(), req.Text)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, analysis)
	}
}

// ConfirmImport grava o lote inteiro ou nada; em conflito devolve a análise nos detalhes
func ConfirmImport(service sales.SalesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ImportRequest
		if !decodeBody(w, r, &req) {
			return
		}

		result, err := service.ConfirmImport(r.Context(), req.Text)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, result)
	}
}

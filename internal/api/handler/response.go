package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/influencer-sales-api/internal/usecases/accepting"
	"github.com/vfg2006/influencer-sales-api/internal/usecases/affiliate"
	"github.com/vfg2006/influencer-sales-api/internal/usecases/sales"
	"github.com/vfg2006/influencer-sales-api/pkg/apiErrors"
	"github.com/vfg2006/influencer-sales-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeServiceError traduz os erros dos casos de uso para o formato padronizado da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var salesErr *sales.SalesError
	if errors.As(err, &salesErr) {
		if salesErr.Analysis != nil {
			apiErrors.WriteError(w, salesErr.Code, salesErr.Details, salesErr.Analysis)
			return
		}
		apiErrors.WriteError(w, salesErr.Code, salesErr.Details, nil)
		return
	}

	var affiliateErr *affiliate.AffiliateError
	if errors.As(err, &affiliateErr) {
		if len(affiliateErr.Fields) > 0 {
			apiErrors.WriteError(w, affiliateErr.Code, affiliateErr.Details, map[string]any{"campos": affiliateErr.Fields})
			return
		}
		apiErrors.WriteError(w, affiliateErr.Code, affiliateErr.Details, nil)
		return
	}

	var acceptanceErr *accepting.AcceptanceError
	if errors.As(err, &acceptanceErr) {
		apiErrors.WriteError(w, acceptanceErr.Code, acceptanceErr.Details, nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("Erro não mapeado")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor.", nil)
}

// pathID lê um identificador numérico positivo da rota
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName(name)

	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID invalido.", nil)
		return 0, false
	}

	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, target any) bool {
	if r.Body == nil {
		return true
	}

	// Corpo vazio vale como objeto vazio; a validação fica com o caso de uso
	if err := json.NewDecoder(r.Body).Decode(target); err != nil && !errors.Is(err, io.EOF) {
		log.ForContext(r.Context()).WithError(err).Warn("Corpo da requisição inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "JSON invalido.", nil)
		return false
	}

	return true
}

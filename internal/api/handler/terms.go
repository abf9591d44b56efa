package handler

import (
	"net"
	"net/http"
	"strings"

	"github.com/vfg2006/influencer-sales-api/internal/domain"
	"github.com/vfg2006/influencer-sales-api/internal/usecases/accepting"
	"github.com/vfg2006/influencer-sales-api/pkg/middleware"
)

const msgTermsAlreadyAccepted = "Termo de parceria ja foi aceito."

// ValidateCodeRequest aceita o código em "codigo" ou no campo antigo "token"
type ValidateCodeRequest struct {
	Code  any `json:"codigo"`
	Token any `json:"token"`
}

type acceptanceResponse struct {
	Message         string `json:"message"`
	AlreadyAccepted bool   `json:"jaAceito"`
}

func SendAcceptanceCode(acceptor accepting.TermsAcceptor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accepted, err := acceptor.SendCode(r.Context(), middleware.ClaimsFromContext(r.Context()))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		if accepted {
			writeJSON(w, r, http.StatusOK, acceptanceResponse{Message: msgTermsAlreadyAccepted, AlreadyAccepted: true})
			return
		}

		writeJSON(w, r, http.StatusOK, acceptanceResponse{Message: "Codigo de verificacao enviado para o seu email cadastrado."})
	}
}

func ValidateAcceptanceCode(acceptor accepting.TermsAcceptor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ValidateCodeRequest
		if !decodeBody(w, r, &req) {
			return
		}

		origin := domain.AcceptanceOrigin{
			IPAddress: clientIP(r),
			UserAgent: r.UserAgent(),
		}

		code := textValue(firstPresent(req.Code, req.Token))
		accepted, err := acceptor.ValidateCode(r.Context(), middleware.ClaimsFromContext(r.Context()), code, origin)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		if accepted {
			writeJSON(w, r, http.StatusOK, acceptanceResponse{Message: msgTermsAlreadyAccepted, AlreadyAccepted: true})
			return
		}

		writeJSON(w, r, http.StatusOK, acceptanceResponse{Message: "Aceite registrado com sucesso."})
	}
}

func GetAcceptanceStatus(acceptor accepting.TermsAcceptor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := acceptor.Status(r.Context(), middleware.ClaimsFromContext(r.Context()))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}

// clientIP usa o primeiro endereço de X-Forwarded-For quando a API está atrás de proxy
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

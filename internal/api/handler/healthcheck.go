package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/influencer-sales-api/pkg/log"
)

// Pinger é qualquer dependência cuja disponibilidade entra no healthcheck
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthResponse struct {
	Status string            `json:"status"`
	Time   string            `json:"time"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HealthcheckHandler responde 200 enquanto todas as dependências respondem ao ping
func HealthcheckHandler(deps map[string]Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		response := healthResponse{
			Status: "ok",
			Time:   time.Now().Format(time.RFC3339),
		}
		status := http.StatusOK

		if len(deps) > 0 {
			response.Checks = make(map[string]string, len(deps))
		}
		for name, dep := range deps {
			if err := dep.Ping(ctx); err != nil {
				log.ForContext(r.Context()).WithError(err).WithField("dependency", name).Warn("Dependência indisponível no healthcheck")
				response.Checks[name] = "indisponivel"
				response.Status = "degraded"
				status = http.StatusServiceUnavailable
				continue
			}
			response.Checks[name] = "ok"
		}

		writeJSON(w, r, status, response)
	})
}

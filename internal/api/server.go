package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-sales-api/internal/api/handler"
	"github.com/vfg2006/influencer-sales-api/internal/api/handler/router"
	"github.com/vfg2006/influencer-sales-api/internal/config"
	"github.com/vfg2006/influencer-sales-api/internal/usecases/accepting"
	"github.com/vfg2006/influencer-sales-api/internal/usecases/affiliate"
	"github.com/vfg2006/influencer-sales-api/internal/usecases/authenticating"
	"github.com/vfg2006/influencer-sales-api/internal/usecases/sales"
	"github.com/vfg2006/influencer-sales-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Dependencies reúne os serviços expostos pela API
type Dependencies struct {
	Sales         sales.SalesService
	Affiliates    affiliate.AffiliateDirectory
	Authenticator authenticating.Authenticator
	Terms         accepting.TermsAcceptor
	SummarySync   handler.SyncJob
	Health        map[string]handler.Pinger
}

func New(config *config.Config, deps Dependencies) (*Server, error) {
	if deps.Sales == nil || deps.Affiliates == nil || deps.Authenticator == nil || deps.Terms == nil {
		return nil, fmt.Errorf("serviços de vendas, influenciadoras, aceite e autenticação são obrigatórios")
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, deps),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}, nil
}

// NewHandler monta a tabela de rotas com a cadeia de middlewares global
func NewHandler(config *config.Config, deps Dependencies) http.Handler {
	cronServices := handler.CronJobServices{
		SummarySyncService: deps.SummarySync,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(deps.Health)...),
		router.WithRoutes(handler.Sales(deps.Sales, deps.Affiliates)...),
		router.WithRoutes(handler.Imports(deps.Sales)...),
		router.WithRoutes(handler.Affiliates(deps.Affiliates, deps.Sales)...),
		router.WithRoutes(handler.Terms(deps.Terms)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(deps.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

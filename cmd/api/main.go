package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-sales-api/infrastructure/cache"
	"github.com/vfg2006/influencer-sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/influencer-sales-api/infrastructure/mail"
	"github.com/vfg2006/influencer-sales-api/infrastructure/repository"
	"github.com/vfg2006/influencer-sales-api/infrastructure/repository/memory"
	"github.com/vfg2006/influencer-sales-api/internal/api"
	"github.com/vfg2006/influencer-sales-api/internal/api/handler"
	"github.com/vfg2006/influencer-sales-api/internal/config"
	"github.com/vfg2006/influencer-sales-api/internal/scheduler"
	"github.com/vfg2006/influencer-sales-api/internal/usecases/accepting"
	"github.com/vfg2006/influencer-sales-api/internal/usecases/affiliate"
	"github.com/vfg2006/influencer-sales-api/internal/usecases/authenticating"
	"github.com/vfg2006/influencer-sales-api/internal/usecases/sales"
	"github.com/vfg2006/influencer-sales-api/pkg/log"
)

type stores struct {
	affiliates  repository.AffiliateRepository
	sales       repository.SaleRepository
	acceptances repository.AcceptanceRepository
	health      map[string]handler.Pinger
	close       func()
}

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st := openStores(ctx, cfg)
	defer st.close()

	consultationCache := consultationCache(ctx, cfg, st.health)

	authenticator := authenticating.NewService(cfg)
	affiliateDirectory := affiliate.NewService(st.affiliates, consultationCache)
	salesService := sales.NewService(st.affiliates, st.sales, consultationCache, cfg)

	terms, err := accepting.LoadTerms(cfg.Terms)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o termo de parceria")
	}
	termsAcceptor := accepting.NewService(st.acceptances, st.affiliates, codeSender(cfg.Mail), terms, cfg.Terms.CodeTTL)

	summarySyncService := scheduler.NewSummarySyncService(salesService, cfg)
	if err := summarySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de totais das influenciadoras")
	} else {
		logrus.Info("Agendador de totais das influenciadoras iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Dependencies{
		Sales:         salesService,
		Affiliates:    affiliateDirectory,
		Authenticator: authenticator,
		Terms:         termsAcceptor,
		SummarySync:   summarySyncService,
		Health:        st.health,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource permite achar o .env ao rodar com go run de qualquer diretório
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	if err := os.Chdir(path.Dir(file)); err != nil {
		logrus.WithError(err).Debug("Mantendo diretório de trabalho atual")
	}
}

// openStores escolhe o armazenamento pelo DATABASE_DRIVER
func openStores(ctx context.Context, cfg *config.Config) stores {
	if cfg.Database.Driver == config.DriverMemory {
		logrus.Warn("Usando armazenamento em memória; os dados serão perdidos ao reiniciar")
		store := memory.New()
		return stores{
			affiliates:  store.Affiliates(),
			sales:       store.Sales(),
			acceptances: store.Acceptances(),
			health:      map[string]handler.Pinger{},
			close:       func() {},
		}
	}

	conn := pgconn(ctx, cfg.Database)

	if cfg.Database.AutoMigrate {
		if err := postgres.EnsureSchema(ctx, conn); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar o esquema do banco de dados")
		}
	}

	return stores{
		affiliates:  repository.NewAffiliateRepository(conn),
		sales:       repository.NewSaleRepository(conn),
		acceptances: repository.NewAcceptanceRepository(conn),
		health:      map[string]handler.Pinger{"postgres": conn},
		close: func() {
			if err := conn.Close(); err != nil {
				logrus.WithError(err).Warn("Erro ao fechar conexão com PostgreSQL")
			}
		},
	}
}

// consultationCache usa Redis quando REDIS_ADDR está definido; sem ele a consulta não é cacheada
func consultationCache(ctx context.Context, cfg *config.Config, health map[string]handler.Pinger) cache.ConsultationCache {
	if cfg.Redis.Addr == "" {
		return cache.NoopConsultationCache{}
	}

	redisCache := cache.NewRedisConsultationCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(ctx); err != nil {
		logrus.WithError(err).Warn("Redis indisponível; consulta geral seguirá sem cache até a conexão voltar")
	} else {
		logrus.Info("Conexão com Redis estabelecida com sucesso")
	}

	health["redis"] = redisCache

	return redisCache
}

// codeSender usa o SendGrid quando SENDGRID_API_KEY está definida
func codeSender(cfg config.Mail) mail.CodeSender {
	if cfg.SendGridAPIKey == "" {
		logrus.Warn("SENDGRID_API_KEY ausente; códigos de verificação serão apenas registrados no log")
		return mail.LogSender{}
	}

	return mail.NewSendGridSender(cfg.SendGridAPIKey, cfg.From, cfg.FromName)
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

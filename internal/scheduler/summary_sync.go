package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-sales-api/internal/config"
)

// SummaryRefresher recalcula os totais das influenciadoras
type SummaryRefresher interface {
	RefreshSummaries(ctx context.Context) (int, error)
}

// SummarySyncConfig representa a configuração do agendador de totais
type SummarySyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// SummarySyncService agenda a atualização dos totais de vendas gravados em
// cada influenciadora e o aquecimento do cache da consulta geral.
type SummarySyncService struct {
	scheduler           *gocron.Scheduler
	config              SummarySyncConfig
	refresher           SummaryRefresher
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastUpdated         int
	lastError           string
}

// NewSummarySyncService cria uma nova instância do serviço de sincronização de totais
func NewSummarySyncService(refresher SummaryRefresher, appConfig *config.Config) *SummarySyncService {
	syncConfig := SummarySyncConfig{
		CronSchedule: appConfig.SummarySync.CronSchedule,
		SyncEnabled:  appConfig.SummarySync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de totais carregada")

	return &SummarySyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		refresher: refresher,
	}
}

// Start inicia o agendador
func (s *SummarySyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de totais desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de totais")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.Sync(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de totais: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de totais")
		s.scheduler.Stop()
	}()

	return nil
}

// Sync executa a atualização; execuções sobrepostas são ignoradas.
// Retorna false quando já havia uma sincronização em andamento.
func (s *SummarySyncService) Sync(ctx context.Context) bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de totais já em andamento, ignorando")
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	startTime := time.Now()
	updated, err := s.refresher.RefreshSummaries(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false

	if err != nil {
		s.lastError = err.Error()
		logrus.WithError(err).Error("Erro ao sincronizar totais das influenciadoras")
		return true
	}

	s.lastError = ""
	s.lastUpdated = updated
	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"duration":    time.Since(startTime).String(),
		"influencers": updated,
	}).Info("Sincronização de totais concluída")

	return true
}

// TriggerManualSync dispara a sincronização fora do agendamento
func (s *SummarySyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de totais já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de totais")
	go s.Sync(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *SummarySyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_updated":      s.lastUpdated,
		"last_sync_error":        s.lastError,
	}
}

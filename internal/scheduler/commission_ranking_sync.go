// Package scheduler contém os serviços de agendamento executados em segundo plano
package scheduler

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/kleandaily/klean-daily-api/infrastructure/repository"
	"github.com/kleandaily/klean-daily-api/internal/config"
	"github.com/kleandaily/klean-daily-api/internal/domain"
	"github.com/kleandaily/klean-daily-api/internal/usecases/commissioning"
	"github.com/kleandaily/klean-daily-api/pkg/log"
	"github.com/kleandaily/klean-daily-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

type CommissionRankingSyncConfig struct {
	CronSchedule      string
	SyncEnabled       bool
	MaxConcurrentJobs int
}

// CommissionRankingSyncService recalcula todos os dias o ranking de comissões
// do mês de ontem. No dia 1º isso fecha o mês anterior.
type CommissionRankingSyncService struct {
	scheduler           *gocron.Scheduler
	commissioner        commissioning.Commissioner
	saleRepo            repository.SaleRepository
	snapshotRepo        repository.CommissionSnapshotRepository
	config              CommissionRankingSyncConfig
	location            *time.Location
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncPeriod      string
	lastSyncError       string
}

func NewCommissionRankingSyncService(
	commissioner commissioning.Commissioner,
	saleRepo repository.SaleRepository,
	snapshotRepo repository.CommissionSnapshotRepository,
	cfg *config.Config,
) *CommissionRankingSyncService {
	syncConfig := CommissionRankingSyncConfig{
		CronSchedule:      cfg.CommissionRankingSync.CronSchedule,
		SyncEnabled:       cfg.CommissionRankingSync.Enabled,
		MaxConcurrentJobs: cfg.CommissionRankingSync.MaxConcurrentJobs,
	}
	if syncConfig.MaxConcurrentJobs < 1 {
		syncConfig.MaxConcurrentJobs = 1
	}

	location := cfg.App.Location()

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"timezone":            location.String(),
	}).Info("Configuração do agendador do ranking de comissões carregada")

	return &CommissionRankingSyncService{
		scheduler:    gocron.NewScheduler(location),
		commissioner: commissioner,
		saleRepo:     saleRepo,
		snapshotRepo: snapshotRepo,
		config:       syncConfig,
		location:     location,
		now:          time.Now,
	}
}

func (s *CommissionRankingSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron do ranking de comissões desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do ranking de comissões")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		jobCtx, _ := log.WithCorrelationID(ctx, "")
		if err := s.UpdateCommissionRanking(jobCtx); err != nil {
			log.ForContext(jobCtx).WithError(err).Error("Erro na atualização do ranking de comissões")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar ranking de comissões: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do ranking de comissões")
		s.scheduler.Stop()
	}()

	return nil
}

// UpdateCommissionRanking recalcula o ranking do mês de ontem. Execuções sobrepostas são ignoradas.
func (s *CommissionRankingSyncService) UpdateCommissionRanking(ctx context.Context) error {
	if !s.acquire() {
		log.ForContext(ctx).Warn("Atualização do ranking de comissões já está em execução")
		return nil
	}

	var runErr error
	defer func() { s.release(runErr) }()

	_, runErr = s.processCommissionRankingWithDate(ctx, s.now())
	return runErr
}

func (s *CommissionRankingSyncService) acquire() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	return true
}

func (s *CommissionRankingSyncService) release(err error) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
}

// processCommissionRankingWithDate apura o mês que contém o dia anterior a processingDate
func (s *CommissionRankingSyncService) processCommissionRankingWithDate(ctx context.Context, processingDate time.Time) ([]*domain.CommissionSnapshot, error) {
	yesterday := processingDate.In(s.location).AddDate(0, 0, -1)
	window := domain.NewMonthWindow(yesterday.Year(), yesterday.Month(), s.location)
	period := window.Period()

	logger := log.ForContext(ctx).WithFields(log.Fields{"job": "commission-ranking", "period": period})
	logger.Info("Iniciando atualização do ranking de comissões")

	sellerIDs, err := s.saleRepo.ListSellerIDs(ctx, window.End)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendedores: %w", err)
	}

	previous, err := s.snapshotRepo.ListByPeriod(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar ranking anterior: %w", err)
	}

	rankingsBeforeUpdate := make(map[string]domain.CommissionSnapshot, len(previous))
	for _, snapshot := range previous {
		rankingsBeforeUpdate[snapshot.SellerID] = snapshot
	}

	updatedRankings, err := s.computeSnapshots(ctx, sellerIDs, window)
	if err != nil {
		return nil, err
	}

	if err := s.updatePositions(updatedRankings, rankingsBeforeUpdate); err != nil {
		return nil, err
	}

	if err := s.snapshotRepo.ReplacePeriod(ctx, period, updatedRankings); err != nil {
		return nil, fmt.Errorf("erro ao salvar ranking de comissões: %w", err)
	}

	s.commissioner.InvalidateRanking(ctx, period)

	s.syncMutex.Lock()
	s.lastSyncPeriod = period
	s.syncMutex.Unlock()

	logger.Infof("Ranking de comissões atualizado com %d vendedores", len(updatedRankings))

	return updatedRankings, nil
}

type sellerResult struct {
	sellerID string
	snapshot *domain.CommissionSnapshot
	err      error
}

// computeSnapshots apura cada vendedor em paralelo, limitado por MaxConcurrentJobs.
// Vendedores sem movimento no mês ficam fora do ranking. Qualquer falha de apuração
// invalida a execução inteira, pois o ranking salvo é substituído por completo.
func (s *CommissionRankingSyncService) computeSnapshots(ctx context.Context, sellerIDs []string, window domain.PeriodWindow) ([]*domain.CommissionSnapshot, error) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	results := make(chan sellerResult, len(sellerIDs))
	var wg sync.WaitGroup

	for _, sellerID := range sellerIDs {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(sellerID string) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			summary, err := s.commissioner.GetSellerSummary(ctx, sellerID, window)
			if err != nil {
				log.ForContext(ctx).WithField("seller_id", sellerID).WithError(err).Error("Erro ao apurar comissão do vendedor")
				results <- sellerResult{sellerID: sellerID, err: err}
				return
			}

			if summary.EarnedPeriod == 0 && summary.WithheldPeriod == 0 {
				return
			}

			results <- sellerResult{
				sellerID: sellerID,
				snapshot: &domain.CommissionSnapshot{
					SellerID:        sellerID,
					Period:          window.Period(),
					EarnedPeriod:    summary.EarnedPeriod,
					WithheldPeriod:  summary.WithheldPeriod,
					EarnedAllTime:   summary.EarnedAllTime,
					WithheldAllTime: summary.WithheldAllTime,
				},
			}
		}(sellerID)
	}

	wg.Wait()
	close(results)

	snapshots := make([]*domain.CommissionSnapshot, 0, len(sellerIDs))
	failed := make([]string, 0)
	var firstErr error
	for result := range results {
		if result.err != nil {
			failed = append(failed, result.sellerID)
			if firstErr == nil {
				firstErr = result.err
			}
			continue
		}
		snapshots = append(snapshots, result.snapshot)
	}

	if len(failed) > 0 {
		sort.Strings(failed)
		return nil, fmt.Errorf("erro ao apurar %d vendedor(es) [%s], ranking mantido: %w", len(failed), strings.Join(failed, ", "), firstErr)
	}

	return snapshots, nil
}

// updatePositions ordena por comissão liberada no período e compara com a execução anterior do mesmo período
func (*CommissionRankingSyncService) updatePositions(
	updatedRankings []*domain.CommissionSnapshot,
	rankingsBeforeUpdate map[string]domain.CommissionSnapshot,
) error {
	sort.Slice(updatedRankings, func(i, j int) bool {
		if updatedRankings[i].EarnedPeriod != updatedRankings[j].EarnedPeriod {
			return updatedRankings[i].EarnedPeriod > updatedRankings[j].EarnedPeriod
		}
		return updatedRankings[i].SellerID < updatedRankings[j].SellerID
	})

	for i, ranking := range updatedRankings {
		ranking.Position = i + 1

		rankingBefore, exists := rankingsBeforeUpdate[ranking.SellerID]
		if exists {
			ranking.ID = rankingBefore.ID
			ranking.CreatedAt = rankingBefore.CreatedAt
			ranking.PositionChange = rankingBefore.Position - ranking.Position
			ranking.PreviousPosition = rankingBefore.Position
			continue
		}

		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar ID do snapshot: %w", err)
		}
		ranking.ID = id
	}

	return nil
}

// TriggerManualSync inicia manualmente a atualização do ranking de comissões
func (s *CommissionRankingSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Ranking de comissões já em atualização, ignorando solicitação manual")
		return
	}

	logrus.Info("Iniciando atualização manual do ranking de comissões")

	ctx, _ := log.WithCorrelationID(context.Background(), "")
	go func() {
		if err := s.UpdateCommissionRanking(ctx); err != nil {
			log.ForContext(ctx).WithError(err).Error("Erro na atualização manual do ranking de comissões")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *CommissionRankingSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_running":           s.syncRunning,
		"last_sync_period":       s.lastSyncPeriod,
		"last_sync_error":        s.lastSyncError,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

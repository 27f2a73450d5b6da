// Package commissioning orquestra a apuração de comissões: busca vendas e
// eventos de cobrança, roda o motor de comissões e expõe o ranking mensal.
package commissioning

import (
	"context"
	"time"

	"github.com/kleandaily/klean-daily-api/infrastructure/cache"
	"github.com/kleandaily/klean-daily-api/infrastructure/repository"
	"github.com/kleandaily/klean-daily-api/internal/commission"
	"github.com/kleandaily/klean-daily-api/internal/domain"
	"github.com/kleandaily/klean-daily-api/pkg/apiErrors"
	"github.com/kleandaily/klean-daily-api/pkg/log"
	"github.com/kleandaily/klean-daily-api/pkg/utils"
)

type Commissioner interface {
	GetSellerSummary(ctx context.Context, sellerID string, window domain.PeriodWindow) (*domain.CommissionSummary, error)
	GetVetCommission(ctx context.Context, vetID string, window domain.PeriodWindow) (*domain.VetCommission, error)
	GetSellerRanking(ctx context.Context, period string) (*domain.SellerRanking, error)
	InvalidateRanking(ctx context.Context, period string)
}

type Service struct {
	saleRepository       repository.SaleRepository
	settlementRepository repository.SettlementRepository
	snapshotRepository   repository.CommissionSnapshotRepository
	rankingCache         cache.RankingCache
	rates                commission.RateTable
	location             *time.Location
	now                  func() time.Time
}

func NewService(
	saleRepository repository.SaleRepository,
	settlementRepository repository.SettlementRepository,
	snapshotRepository repository.CommissionSnapshotRepository,
	rankingCache cache.RankingCache,
	rates commission.RateTable,
	location *time.Location,
) *Service {
	if rankingCache == nil {
		rankingCache = cache.NoopRankingCache{}
	}
	if rates == nil {
		rates = commission.DefaultRateTable()
	}
	if location == nil {
		location = time.Local
	}

	return &Service{
		saleRepository:       saleRepository,
		settlementRepository: settlementRepository,
		snapshotRepository:   snapshotRepository,
		rankingCache:         rankingCache,
		rates:                rates,
		location:             location,
		now:                  time.Now,
	}
}

// GetSellerSummary apura as comissões das vendas confirmadas do vendedor na janela
func (s *Service) GetSellerSummary(ctx context.Context, sellerID string, window domain.PeriodWindow) (*domain.CommissionSummary, error) {
	if sellerID == "" {
		return nil, NewCommissionError(ErrSellerIDRequired, apiErrors.ErrMissingRequiredData, "")
	}
	if !validWindow(window) {
		return nil, NewCommissionError(ErrInvalidWindow, apiErrors.ErrInvalidPeriod, "")
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"seller_id": sellerID,
		"period":    window.Period(),
	})

	sales, err := s.saleRepository.ListBySeller(ctx, sellerID)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar vendas do vendedor")
		return nil, NewCommissionError(ErrFetchSales, apiErrors.ErrDatabaseOperation, "Falha ao listar vendas no banco de dados")
	}

	confirmed := make([]domain.SaleRecord, 0, len(sales))
	saleIDs := make([]string, 0, len(sales))
	for _, sale := range sales {
		if sale.Status != domain.StatusConfirmed {
			continue
		}
		confirmed = append(confirmed, sale)
		if sale.PaymentMethod.IsCredit() {
			saleIDs = append(saleIDs, sale.ID)
		}
	}

	events, err := s.settlementRepository.ListBySaleIDs(ctx, saleIDs)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar eventos de cobrança")
		return nil, NewCommissionError(ErrFetchSettlements, apiErrors.ErrDatabaseOperation, "Falha ao listar eventos de cobrança no banco de dados")
	}

	summary := commission.Accumulate(confirmed, commission.LatestSettlements(events), window, s.rates)
	summary.SellerID = sellerID
	roundSummary(&summary)

	logger.Debugf("Comissão apurada: %d vendas confirmadas, %d a crédito", len(confirmed), len(saleIDs))

	return &summary, nil
}

// GetVetCommission aplica a escada do canal veterinário sobre os pagamentos recebidos na janela
func (s *Service) GetVetCommission(ctx context.Context, vetID string, window domain.PeriodWindow) (*domain.VetCommission, error) {
	if vetID == "" {
		return nil, NewCommissionError(ErrVetIDRequired, apiErrors.ErrMissingRequiredData, "")
	}
	if !validWindow(window) {
		return nil, NewCommissionError(ErrInvalidWindow, apiErrors.ErrInvalidPeriod, "")
	}

	payments, err := s.settlementRepository.ListPaymentsByVet(ctx, vetID, window)
	if err != nil {
		log.ForContext(ctx).WithField("vet_id", vetID).WithError(err).Error("Erro ao buscar pagamentos do veterinário")
		return nil, NewCommissionError(ErrFetchSettlements, apiErrors.ErrDatabaseOperation, "Falha ao listar pagamentos no banco de dados")
	}

	result := commission.ComputeVetCommission(vetID, payments, window)
	return &result, nil
}

// GetSellerRanking lê o ranking de um período, passando pelo cache.
// Falhas do cache são registradas e ignoradas.
func (s *Service) GetSellerRanking(ctx context.Context, period string) (*domain.SellerRanking, error) {
	if _, err := domain.ParsePeriod(period, s.location); err != nil {
		return nil, NewCommissionError(ErrInvalidPeriod, apiErrors.ErrInvalidPeriod, period)
	}

	logger := log.ForContext(ctx).WithField("period", period)

	cached, found, err := s.rankingCache.Get(ctx, period)
	if err != nil {
		logger.WithError(err).Warn("Erro ao ler ranking do cache")
	}
	if found && cached != nil {
		return cached, nil
	}

	snapshots, err := s.snapshotRepository.ListByPeriod(ctx, period)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar ranking de comissões")
		return nil, NewCommissionError(ErrFetchSnapshots, apiErrors.ErrDatabaseOperation, "Falha ao consultar ranking no banco de dados")
	}

	ranking := &domain.SellerRanking{
		Period:  period,
		Ranking: snapshots,
	}
	for _, snapshot := range snapshots {
		if snapshot.UpdatedAt.After(ranking.LastUpdate) {
			ranking.LastUpdate = snapshot.UpdatedAt
		}
	}
	if ranking.LastUpdate.IsZero() {
		ranking.LastUpdate = s.now()
	}

	if len(snapshots) > 0 {
		if err := s.rankingCache.Set(ctx, period, ranking); err != nil {
			logger.WithError(err).Warn("Erro ao gravar ranking no cache")
		}
	}

	return ranking, nil
}

func (s *Service) InvalidateRanking(ctx context.Context, period string) {
	if err := s.rankingCache.Delete(ctx, period); err != nil {
		log.ForContext(ctx).WithField("period", period).WithError(err).Warn("Erro ao invalidar ranking no cache")
	}
}

func validWindow(window domain.PeriodWindow) bool {
	return !window.IsZero() && window.End.After(window.Start)
}

func roundSummary(summary *domain.CommissionSummary) {
	summary.EarnedPeriod = utils.RoundWithTwoDecimalPlace(summary.EarnedPeriod)
	summary.WithheldPeriod = utils.RoundWithTwoDecimalPlace(summary.WithheldPeriod)
	summary.EarnedAllTime = utils.RoundWithTwoDecimalPlace(summary.EarnedAllTime)
	summary.WithheldAllTime = utils.RoundWithTwoDecimalPlace(summary.WithheldAllTime)
	for i := range summary.EarnedByDay {
		summary.EarnedByDay[i].Amount = utils.RoundWithTwoDecimalPlace(summary.EarnedByDay[i].Amount)
	}
}

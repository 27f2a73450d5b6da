package commissioning

import (
	"context"
	"errors"
	"testing"
	"time"

	cachemocks "github.com/kleandaily/klean-daily-api/infrastructure/cache/mocks"
	"github.com/kleandaily/klean-daily-api/infrastructure/repository/mocks"
	"github.com/kleandaily/klean-daily-api/internal/domain"
	"github.com/kleandaily/klean-daily-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	sales       *mocks.MockSaleRepository
	settlements *mocks.MockSettlementRepository
	snapshots   *mocks.MockCommissionSnapshotRepository
	cache       *cachemocks.MockRankingCache
}

func newTestService(t *testing.T) (*Service, serviceMocks) {
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		sales:       mocks.NewMockSaleRepository(ctrl),
		settlements: mocks.NewMockSettlementRepository(ctrl),
		snapshots:   mocks.NewMockCommissionSnapshotRepository(ctrl),
		cache:       cachemocks.NewMockRankingCache(ctrl),
	}

	service := NewService(m.sales, m.settlements, m.snapshots, m.cache, nil, time.UTC)
	return service, m
}

func at(month time.Month, day int) time.Time {
	return time.Date(2024, month, day, 10, 0, 0, 0, time.UTC)
}

func TestService_GetSellerSummary(t *testing.T) {
	window := domain.NewMonthWindow(2024, time.April, time.UTC)

	tests := []struct {
		name     string
		sellerID string
		window   domain.PeriodWindow
		setup    func(m serviceMocks)
		validate func(t *testing.T, summary *domain.CommissionSummary, err error)
	}{
		{
			name:     "Vendedor obrigatório",
			sellerID: "",
			window:   window,
			setup:    func(m serviceMocks) {},
			validate: func(t *testing.T, summary *domain.CommissionSummary, err error) {
				assert.ErrorIs(t, err, ErrSellerIDRequired)
				assert.True(t, IsValidationError(err))
				assert.Nil(t, summary)
			},
		},
		{
			name:     "Janela zerada é inválida",
			sellerID: "asesor-01",
			window:   domain.PeriodWindow{},
			setup:    func(m serviceMocks) {},
			validate: func(t *testing.T, summary *domain.CommissionSummary, err error) {
				var commissionErr *CommissionError
				require.True(t, errors.As(err, &commissionErr))
				assert.Equal(t, apiErrors.ErrInvalidPeriod, commissionErr.Code)
			},
		},
		{
			name:     "Apenas vendas confirmadas entram na apuração",
			sellerID: "asesor-01",
			window:   window,
			setup: func(m serviceMocks) {
				m.sales.EXPECT().
					ListBySeller(gomock.Any(), "asesor-01").
					Return([]domain.SaleRecord{
						{
							ID: "S1", SellerID: "asesor-01", CreatedAt: at(time.April, 3),
							PaymentMethod: domain.PaymentMethodCash, Status: domain.StatusConfirmed,
							Lines: []domain.ProductLine{{Product: "Derma Plus", Quantity: 2}},
						},
						{
							ID: "S2", SellerID: "asesor-01", CreatedAt: at(time.March, 20),
							PaymentMethod: domain.PaymentMethodCreditTerm, Status: domain.StatusConfirmed,
							Lines: []domain.ProductLine{{Product: "Klean Shampoo", Quantity: 1}},
						},
						{
							ID: "S3", SellerID: "asesor-01", CreatedAt: at(time.April, 5),
							PaymentMethod: domain.PaymentMethodCash, Status: domain.StatusPendingConfirm,
							Lines: []domain.ProductLine{{Product: "Derma Plus", Quantity: 10}},
						},
					}, nil)

				m.settlements.EXPECT().
					ListBySaleIDs(gomock.Any(), []string{"S2"}).
					Return([]domain.SettlementEvent{
						{ID: "E1", SaleID: "S2", Type: domain.EventTypePartialPayment, Amount: 100, OccurredAt: at(time.April, 1)},
						{ID: "E2", SaleID: "S2", Type: domain.EventTypeFullSettlement, OccurredAt: at(time.April, 10)},
					}, nil)
			},
			validate: func(t *testing.T, summary *domain.CommissionSummary, err error) {
				require.NoError(t, err)
				assert.Equal(t, "asesor-01", summary.SellerID)
				assert.Equal(t, 13000.0, summary.EarnedPeriod)
				assert.Equal(t, 13000.0, summary.EarnedAllTime)
				assert.Equal(t, 0.0, summary.WithheldAllTime)
				assert.Equal(t, []domain.DayTotal{
					{Date: "2024-04-03", Amount: 10000},
					{Date: "2024-04-10", Amount: 3000},
				}, summary.EarnedByDay)
				assert.Equal(t, []domain.ProductUnits{{Product: "Derma Plus", Units: 2}}, summary.Products)
			},
		},
		{
			name:     "Erro ao buscar vendas",
			sellerID: "asesor-01",
			window:   window,
			setup: func(m serviceMocks) {
				m.sales.EXPECT().
					ListBySeller(gomock.Any(), "asesor-01").
					Return(nil, errors.New("conexão recusada"))
			},
			validate: func(t *testing.T, summary *domain.CommissionSummary, err error) {
				assert.ErrorIs(t, err, ErrFetchSales)
				var commissionErr *CommissionError
				require.True(t, errors.As(err, &commissionErr))
				assert.Equal(t, apiErrors.ErrDatabaseOperation, commissionErr.Code)
			},
		},
		{
			name:     "Erro ao buscar eventos de cobrança",
			sellerID: "asesor-01",
			window:   window,
			setup: func(m serviceMocks) {
				m.sales.EXPECT().ListBySeller(gomock.Any(), "asesor-01").Return([]domain.SaleRecord{}, nil)
				m.settlements.EXPECT().ListBySaleIDs(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
			},
			validate: func(t *testing.T, summary *domain.CommissionSummary, err error) {
				assert.ErrorIs(t, err, ErrFetchSettlements)
				assert.Nil(t, summary)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)
			tt.setup(m)

			summary, err := service.GetSellerSummary(context.Background(), tt.sellerID, tt.window)
			tt.validate(t, summary, err)
		})
	}
}

func TestService_GetVetCommission(t *testing.T) {
	window := domain.NewMonthWindow(2024, time.April, time.UTC)

	t.Run("Aplica a escada sobre os pagamentos do mês", func(t *testing.T) {
		service, m := newTestService(t)

		m.settlements.EXPECT().
			ListPaymentsByVet(gomock.Any(), "vet-01", window).
			Return([]domain.SettlementEvent{
				{SaleID: "S1", Type: domain.EventTypePartialPayment, Amount: 15_000_000, OccurredAt: at(time.April, 2)},
				{SaleID: "S2", Type: domain.EventTypeFullSettlement, Amount: 10_000_000, OccurredAt: at(time.April, 20)},
			}, nil)

		result, err := service.GetVetCommission(context.Background(), "vet-01", window)

		require.NoError(t, err)
		assert.Equal(t, 25_000_000.0, result.PaidTotal)
		assert.Equal(t, 3.0, result.RatePercent)
		assert.Equal(t, 750_000.0, result.Commission)
		assert.Equal(t, 2, result.Payments)
	})

	t.Run("Veterinário obrigatório", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.GetVetCommission(context.Background(), "", window)
		assert.ErrorIs(t, err, ErrVetIDRequired)
	})

	t.Run("Erro de banco", func(t *testing.T) {
		service, m := newTestService(t)
		m.settlements.EXPECT().ListPaymentsByVet(gomock.Any(), "vet-01", window).Return(nil, errors.New("falhou"))

		_, err := service.GetVetCommission(context.Background(), "vet-01", window)
		assert.ErrorIs(t, err, ErrFetchSettlements)
	})
}

func TestService_GetSellerRanking(t *testing.T) {
	updatedAt := time.Date(2024, 4, 2, 5, 0, 0, 0, time.UTC)
	snapshots := []domain.CommissionSnapshot{
		{ID: "A", SellerID: "asesor-01", Period: "03-2024", Position: 1, UpdatedAt: updatedAt},
		{ID: "B", SellerID: "asesor-02", Period: "03-2024", Position: 2, UpdatedAt: updatedAt.Add(-time.Hour)},
	}

	tests := []struct {
		name     string
		period   string
		setup    func(m serviceMocks)
		validate func(t *testing.T, ranking *domain.SellerRanking, err error)
	}{
		{
			name:   "Período inválido",
			period: "2024-03",
			setup:  func(m serviceMocks) {},
			validate: func(t *testing.T, ranking *domain.SellerRanking, err error) {
				assert.ErrorIs(t, err, ErrInvalidPeriod)
			},
		},
		{
			name:   "Retorna do cache sem consultar o banco",
			period: "03-2024",
			setup: func(m serviceMocks) {
				m.cache.EXPECT().Get(gomock.Any(), "03-2024").
					Return(&domain.SellerRanking{Period: "03-2024", Ranking: snapshots}, true, nil)
			},
			validate: func(t *testing.T, ranking *domain.SellerRanking, err error) {
				require.NoError(t, err)
				assert.Len(t, ranking.Ranking, 2)
			},
		},
		{
			name:   "Cache vazio consulta o banco e grava o resultado",
			period: "03-2024",
			setup: func(m serviceMocks) {
				m.cache.EXPECT().Get(gomock.Any(), "03-2024").Return(nil, false, nil)
				m.snapshots.EXPECT().ListByPeriod(gomock.Any(), "03-2024").Return(snapshots, nil)
				m.cache.EXPECT().Set(gomock.Any(), "03-2024", gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, ranking *domain.SellerRanking, err error) {
				require.NoError(t, err)
				assert.Equal(t, "03-2024", ranking.Period)
				assert.Equal(t, updatedAt, ranking.LastUpdate)
				assert.Equal(t, "asesor-01", ranking.Ranking[0].SellerID)
			},
		},
		{
			name:   "Falha do cache é ignorada",
			period: "03-2024",
			setup: func(m serviceMocks) {
				m.cache.EXPECT().Get(gomock.Any(), "03-2024").Return(nil, false, errors.New("redis fora"))
				m.snapshots.EXPECT().ListByPeriod(gomock.Any(), "03-2024").Return(snapshots, nil)
				m.cache.EXPECT().Set(gomock.Any(), "03-2024", gomock.Any()).Return(errors.New("redis fora"))
			},
			validate: func(t *testing.T, ranking *domain.SellerRanking, err error) {
				require.NoError(t, err)
				assert.Len(t, ranking.Ranking, 2)
			},
		},
		{
			name:   "Período sem snapshots não é gravado no cache",
			period: "05-2024",
			setup: func(m serviceMocks) {
				m.cache.EXPECT().Get(gomock.Any(), "05-2024").Return(nil, false, nil)
				m.snapshots.EXPECT().ListByPeriod(gomock.Any(), "05-2024").Return([]domain.CommissionSnapshot{}, nil)
			},
			validate: func(t *testing.T, ranking *domain.SellerRanking, err error) {
				require.NoError(t, err)
				assert.Empty(t, ranking.Ranking)
				assert.False(t, ranking.LastUpdate.IsZero())
			},
		},
		{
			name:   "Erro de banco",
			period: "03-2024",
			setup: func(m serviceMocks) {
				m.cache.EXPECT().Get(gomock.Any(), "03-2024").Return(nil, false, nil)
				m.snapshots.EXPECT().ListByPeriod(gomock.Any(), "03-2024").Return(nil, errors.New("falhou"))
			},
			validate: func(t *testing.T, ranking *domain.SellerRanking, err error) {
				assert.ErrorIs(t, err, ErrFetchSnapshots)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)
			tt.setup(m)

			ranking, err := service.GetSellerRanking(context.Background(), tt.period)
			tt.validate(t, ranking, err)
		})
	}
}

func TestService_InvalidateRanking(t *testing.T) {
	service, m := newTestService(t)

	m.cache.EXPECT().Delete(gomock.Any(), "03-2024").Return(errors.New("redis fora"))

	assert.NotPanics(t, func() {
		service.InvalidateRanking(context.Background(), "03-2024")
	})
}

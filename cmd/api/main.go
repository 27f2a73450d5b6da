package main

import (
	"context"

	"github.com/kleandaily/klean-daily-api/infrastructure/cache"
	"github.com/kleandaily/klean-daily-api/infrastructure/database/postgres"
	"github.com/kleandaily/klean-daily-api/infrastructure/repository"
	"github.com/kleandaily/klean-daily-api/internal/api"
	"github.com/kleandaily/klean-daily-api/internal/commission"
	"github.com/kleandaily/klean-daily-api/internal/config"
	"github.com/kleandaily/klean-daily-api/internal/scheduler"
	"github.com/kleandaily/klean-daily-api/internal/usecases/commissioning"
	"github.com/kleandaily/klean-daily-api/pkg/log"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	saleRepo := repository.NewSaleRepository(pgConn)
	settlementRepo := repository.NewSettlementRepository(pgConn)
	snapshotRepo := repository.NewCommissionSnapshotRepository(pgConn)

	rates, err := commission.DefaultRateTable().WithOverrides(cfg.Commission.RateOverrides)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar tarifas de comissão")
	}
	if len(cfg.Commission.RateOverrides) > 0 {
		logrus.WithField("overrides", len(cfg.Commission.RateOverrides)).Info("Tarifas de comissão sobrescritas por configuração")
	}

	rankingCache, closeCache := rankingCache(ctx, cfg.Redis)
	defer closeCache()

	commissionService := commissioning.NewService(
		saleRepo,
		settlementRepo,
		snapshotRepo,
		rankingCache,
		rates,
		cfg.App.Location(),
	)

	commissionRankingSyncService := scheduler.NewCommissionRankingSyncService(
		commissionService,
		saleRepo,
		snapshotRepo,
		cfg,
	)

	if err := commissionRankingSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do ranking de comissões")
	} else {
		logrus.Info("Agendador do ranking de comissões iniciado com sucesso")
	}

	server, err := api.New(cfg, commissionService, pgConn, commissionRankingSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
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

// rankingCache usa Redis quando REDIS_ADDR está configurado; sem Redis o ranking é lido direto do banco
func rankingCache(ctx context.Context, redisConfig config.Redis) (cache.RankingCache, func()) {
	if !redisConfig.Enabled() {
		logrus.Info("Redis não configurado, ranking sem cache")
		return cache.NoopRankingCache{}, func() {}
	}

	redisCache := cache.NewRedisRankingCache(redisConfig)
	if err := redisCache.Ping(ctx); err != nil {
		logrus.WithError(err).Warn("Redis indisponível, ranking sem cache")
		_ = redisCache.Close()
		return cache.NoopRankingCache{}, func() {}
	}

	logrus.WithField("addr", redisConfig.Addr).Info("Cache do ranking conectado ao Redis")
	return redisCache, func() { _ = redisCache.Close() }
}

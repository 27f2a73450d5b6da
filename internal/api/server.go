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
	"github.com/kleandaily/klean-daily-api/internal/api/handler"
	"github.com/kleandaily/klean-daily-api/internal/api/handler/router"
	"github.com/kleandaily/klean-daily-api/internal/config"
	"github.com/kleandaily/klean-daily-api/internal/scheduler"
	"github.com/kleandaily/klean-daily-api/internal/usecases/commissioning"
	"github.com/kleandaily/klean-daily-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

const healthcheckPath = "/healthcheck"

type Server struct {
	httpServer *http.Server
}

func New(
	cfg *config.Config,
	commissioner commissioning.Commissioner,
	db handler.Pinger,
	commissionRankingSyncService *scheduler.CommissionRankingSyncService,
) (*Server, error) {
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("AUTH_JWT_SECRET não configurado")
	}

	cronServices := handler.CronJobServices{}
	if commissionRankingSyncService != nil {
		cronServices.CommissionRankingSyncService = commissionRankingSyncService
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(db)...),
		router.WithRoutes(handler.Commissions(commissioner, cfg.App.Location())...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
		middleware.AuthMiddleware(cfg.Auth.JWTSecret, healthcheckPath),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
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

	logrus.WithField("timeout", "15s").Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}

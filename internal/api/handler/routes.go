package handler

import (
	"net/http"
	"time"

	"github.com/kleandaily/klean-daily-api/internal/api/handler/router"
	"github.com/kleandaily/klean-daily-api/internal/usecases/commissioning"
	"github.com/kleandaily/klean-daily-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Commissions(service commissioning.Commissioner, loc *time.Location) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/commissions/summary",
			Method:  http.MethodGet,
			Handler: GetSellerSummary(service, loc),
		},
		{
			Path:    "/v1/commissions/vets/:id",
			Method:  http.MethodGet,
			Handler: GetVetCommission(service, loc),
		},
		{
			Path:        "/v1/commissions/ranking",
			Method:      http.MethodGet,
			Handler:     GetSellerRanking(service, loc),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

package handler

import (
	"net/http"
	"sort"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/kleandaily/klean-daily-api/pkg/apiErrors"
	"github.com/kleandaily/klean-daily-api/pkg/log"
)

// Tipos de cron job aceitos em /v1/cron/:type/run
const (
	CronJobTypeCommissionRanking = "commission-ranking"
	CronJobTypeAll               = "all"
)

// CronJob é implementado pelos serviços do pacote scheduler
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	CommissionRankingSyncService CronJob
}

func (s CronJobServices) jobs() map[string]CronJob {
	jobs := make(map[string]CronJob)
	if s.CommissionRankingSyncService != nil {
		jobs[CronJobTypeCommissionRanking] = s.CommissionRankingSyncService
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		jobs := services.jobs()

		if cronType == CronJobTypeAll {
			for _, job := range jobs {
				job.TriggerManualSync()
			}
		} else {
			job, ok := jobs[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrJobNotFound, "Tipo de cron job inválido. Valores aceitos: "+acceptedJobTypes(jobs), nil)
				return
			}
			job.TriggerManualSync()
		}

		log.ForContext(r.Context()).WithField("job", cronType).Info("Cron job disparada manualmente")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any)
		for name, job := range services.jobs() {
			status[name] = job.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}

func acceptedJobTypes(jobs map[string]CronJob) string {
	names := make([]string, 0, len(jobs)+1)
	for name := range jobs {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(append(names, CronJobTypeAll), ", ")
}

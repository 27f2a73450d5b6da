package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/kleandaily/klean-daily-api/internal/domain"
	"github.com/kleandaily/klean-daily-api/internal/usecases/commissioning"
	"github.com/kleandaily/klean-daily-api/pkg/apiErrors"
	"github.com/kleandaily/klean-daily-api/pkg/middleware"
	"github.com/kleandaily/klean-daily-api/pkg/utils"
	"github.com/pkg/errors"
)

var (
	errPartialMonth = errors.New("month e year devem ser informados juntos")
	errPartialRange = errors.New("start e end devem ser informados juntos")
	errInvalidMonth = errors.New("month deve estar entre 1 e 12")
	errInvalidYear  = errors.New("year inválido")
	errInvalidDate  = errors.New("data deve estar no formato yyyy-mm-dd")
)

// parseWindow monta a janela a partir da query: day=yyyy-mm-dd, start/end (end inclusivo)
// ou month/year. Sem parâmetros usa o mês corrente.
func parseWindow(query url.Values, loc *time.Location, now time.Time) (domain.PeriodWindow, error) {
	if day := query.Get("day"); day != "" {
		date, err := utils.ParseDate(day, loc)
		if err != nil {
			return domain.PeriodWindow{}, errors.Wrapf(errInvalidDate, "day %q", day)
		}
		return domain.NewDayWindow(date), nil
	}

	start, end := query.Get("start"), query.Get("end")
	if start != "" || end != "" {
		if start == "" || end == "" {
			return domain.PeriodWindow{}, errPartialRange
		}
		startDate, err := utils.ParseDate(start, loc)
		if err != nil {
			return domain.PeriodWindow{}, errors.Wrapf(errInvalidDate, "start %q", start)
		}
		endDate, err := utils.ParseDate(end, loc)
		if err != nil {
			return domain.PeriodWindow{}, errors.Wrapf(errInvalidDate, "end %q", end)
		}
		return domain.NewRangeWindow(startDate, endDate.AddDate(0, 0, 1))
	}

	month, year := query.Get("month"), query.Get("year")
	if month == "" && year == "" {
		current := now.In(loc)
		return domain.NewMonthWindow(current.Year(), current.Month(), loc), nil
	}
	if month == "" || year == "" {
		return domain.PeriodWindow{}, errPartialMonth
	}

	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return domain.PeriodWindow{}, errInvalidMonth
	}
	y, err := strconv.Atoi(year)
	if err != nil || y < 2000 || y > 9999 {
		return domain.PeriodWindow{}, errInvalidYear
	}

	return domain.NewMonthWindow(y, time.Month(m), loc), nil
}

// writeWindowError diferencia data mal formatada de janela inconsistente
func writeWindowError(w http.ResponseWriter, err error) {
	code := apiErrors.ErrInvalidPeriod
	if errors.Is(err, errInvalidDate) {
		code = apiErrors.ErrInvalidFormat
	}
	apiErrors.WriteError(w, code, err.Error(), nil)
}

// GetSellerSummary retorna a apuração de comissões de um vendedor.
// Asesores só consultam a si mesmos; admin e supervisor consultam qualquer vendedor.
func GetSellerSummary(service commissioning.Commissioner, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		sellerID := r.URL.Query().Get("seller_id")
		switch {
		case claims.IsManager():
			if sellerID == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "seller_id é obrigatório", nil)
				return
			}
		case claims.Role == domain.RoleSeller:
			if sellerID == "" {
				sellerID = claims.UserID()
			}
			if sellerID != claims.UserID() {
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você só pode consultar suas próprias comissões", nil)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
			return
		}

		window, err := parseWindow(r.URL.Query(), loc, time.Now())
		if err != nil {
			writeWindowError(w, err)
			return
		}

		summary, err := service.GetSellerSummary(r.Context(), sellerID, window)
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao apurar comissões do vendedor")
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	}
}

// GetVetCommission retorna a comissão escalonada de um veterinário no mês
func GetVetCommission(service commissioning.Commissioner, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		vetID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if vetID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do veterinário é obrigatório", nil)
			return
		}

		if !claims.IsManager() && (claims.Role != domain.RoleVet || claims.UserID() != vetID) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
			return
		}

		window, err := parseWindow(r.URL.Query(), loc, time.Now())
		if err != nil {
			writeWindowError(w, err)
			return
		}

		result, err := service.GetVetCommission(r.Context(), vetID, window)
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao apurar comissão do veterinário")
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}

// GetSellerRanking retorna o ranking mensal de comissões dos vendedores
func GetSellerRanking(service commissioning.Commissioner, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("day") != "" || query.Get("start") != "" || query.Get("end") != "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "O ranking é mensal, use month e year", nil)
			return
		}

		window, err := parseWindow(query, loc, time.Now())
		if err != nil {
			writeWindowError(w, err)
			return
		}

		ranking, err := service.GetSellerRanking(r.Context(), window.Period())
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao buscar ranking de comissões")
			return
		}

		writeJSON(w, r, http.StatusOK, ranking)
	}
}

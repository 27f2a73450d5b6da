package commission

import (
	"time"

	"github.com/kleandaily/klean-daily-api/internal/domain"
)

// MaxBy retorna o item com o maior timestamp. Em empate, vence o primeiro encontrado.
func MaxBy[T any](items []T, key func(T) time.Time) (T, bool) {
	var best T
	found := false
	for _, item := range items {
		if !found || key(item).After(key(best)) {
			best = item
			found = true
		}
	}
	return best, found
}

// LatestFullSettlement retorna o paz y salvo mais recente entre os eventos de uma venda
func LatestFullSettlement(events []domain.SettlementEvent) (domain.SettlementEvent, bool) {
	full := make([]domain.SettlementEvent, 0, len(events))
	for _, event := range events {
		if event.Type == domain.EventTypeFullSettlement {
			full = append(full, event)
		}
	}

	return MaxBy(full, func(e domain.SettlementEvent) time.Time { return e.OccurredAt })
}

// LatestSettlements agrupa os eventos por venda e mantém apenas o paz y salvo vigente.
// Vendas sem paz y salvo ficam fora do mapa.
func LatestSettlements(events []domain.SettlementEvent) map[string]domain.SettlementEvent {
	bySale := make(map[string][]domain.SettlementEvent)
	for _, event := range events {
		if event.SaleID == "" {
			continue
		}
		bySale[event.SaleID] = append(bySale[event.SaleID], event)
	}

	latest := make(map[string]domain.SettlementEvent, len(bySale))
	for saleID, saleEvents := range bySale {
		if event, ok := LatestFullSettlement(saleEvents); ok {
			latest[saleID] = event
		}
	}
	return latest
}

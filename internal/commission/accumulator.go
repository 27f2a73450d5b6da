package commission

import (
	"sort"
	"time"

	"github.com/kleandaily/klean-daily-api/internal/domain"
	"github.com/kleandaily/klean-daily-api/pkg/utils"
)

// Accumulate percorre as vendas uma única vez e separa a comissão em
// liberada (earned) e retida (withheld), no período e no histórico.
//
// Vendas que não são crédito liberam comissão na data da venda. Vendas a
// crédito com paz y salvo liberam na data do paz y salvo. Vendas a crédito
// sem paz y salvo ficam retidas, atribuídas à data da venda.
//
// settlements deve conter o paz y salvo vigente por ID de venda (ver LatestSettlements).
// As unidades por produto consideram as vendas criadas dentro da janela, ou
// todas quando a janela é zero.
func Accumulate(
	sales []domain.SaleRecord,
	settlements map[string]domain.SettlementEvent,
	window domain.PeriodWindow,
	rates RateTable,
) domain.CommissionSummary {
	summary := domain.CommissionSummary{Window: window}

	units := make(map[string]float64)
	labels := make(map[string]string)
	byDay := make(map[string]float64)

	for _, sale := range sales {
		countUnits := window.IsZero() || window.Contains(sale.CreatedAt)

		value := 0.0
		for _, line := range sale.Lines {
			if line.Product == "" || line.Quantity <= 0 {
				continue
			}
			value += rates.Resolve(line.Product) * line.Quantity

			if countUnits {
				key := utils.NormalizeToken(line.Product)
				if _, ok := labels[key]; !ok {
					labels[key] = line.Product
				}
				units[key] += line.Quantity
			}
		}

		if !sale.PaymentMethod.IsCredit() {
			summary.EarnedAllTime += value
			if window.Contains(sale.CreatedAt) {
				summary.EarnedPeriod += value
				addDay(byDay, sale.CreatedAt, window, value)
			}
			continue
		}

		if settlement, settled := settlements[sale.ID]; settled {
			summary.EarnedAllTime += value
			if window.Contains(settlement.OccurredAt) {
				summary.EarnedPeriod += value
				addDay(byDay, settlement.OccurredAt, window, value)
			}
			continue
		}

		summary.WithheldAllTime += value
		if window.Contains(sale.CreatedAt) {
			summary.WithheldPeriod += value
		}
	}

	summary.Products = rankProducts(units, labels)
	summary.EarnedByDay = sortDays(byDay)

	return summary
}

func addDay(byDay map[string]float64, at time.Time, window domain.PeriodWindow, value float64) {
	if value == 0 {
		return
	}
	byDay[at.In(window.Start.Location()).Format(time.DateOnly)] += value
}

func rankProducts(units map[string]float64, labels map[string]string) []domain.ProductUnits {
	ranked := make([]domain.ProductUnits, 0, len(units))
	for key, total := range units {
		ranked = append(ranked, domain.ProductUnits{Product: labels[key], Units: total})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Units != ranked[j].Units {
			return ranked[i].Units > ranked[j].Units
		}
		return ranked[i].Product < ranked[j].Product
	})

	return ranked
}

func sortDays(byDay map[string]float64) []domain.DayTotal {
	days := make([]domain.DayTotal, 0, len(byDay))
	for date, amount := range byDay {
		days = append(days, domain.DayTotal{Date: date, Amount: amount})
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})

	return days
}

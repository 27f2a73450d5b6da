package commission

import (
	"github.com/kleandaily/klean-daily-api/internal/domain"
	"github.com/kleandaily/klean-daily-api/pkg/utils"
)

// ComputeVetCommission soma os pagamentos recebidos dentro da janela e aplica a escada do canal veterinário
func ComputeVetCommission(vetID string, payments []domain.SettlementEvent, window domain.PeriodWindow) domain.VetCommission {
	result := domain.VetCommission{
		VetID:  vetID,
		Window: window,
	}

	for _, payment := range payments {
		if payment.Amount <= 0 || !window.Contains(payment.OccurredAt) {
			continue
		}
		result.PaidTotal += payment.Amount
		result.Payments++
	}

	rate := TieredRate(result.PaidTotal)
	result.RatePercent = utils.ToPercent(rate)
	result.Commission = utils.RoundWithTwoDecimalPlace(result.PaidTotal * rate)

	return result
}

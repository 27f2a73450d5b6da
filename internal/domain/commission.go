package domain

type ProductUnits struct {
	Product string  `json:"product"`
	Units   float64 `json:"units"`
}

type DayTotal struct {
	Date   string  `json:"date"` // yyyy-mm-dd
	Amount float64 `json:"amount"`
}

// CommissionSummary é o resultado da apuração de comissões de um vendedor
type CommissionSummary struct {
	SellerID        string         `json:"seller_id,omitempty"`
	Window          PeriodWindow   `json:"window"`
	EarnedPeriod    float64        `json:"earned_period"`
	WithheldPeriod  float64        `json:"withheld_period"`
	EarnedAllTime   float64        `json:"earned_all_time"`
	WithheldAllTime float64        `json:"withheld_all_time"`
	Products        []ProductUnits `json:"products"`
	EarnedByDay     []DayTotal     `json:"earned_by_day"`
}

// VetCommission é a comissão escalonada do canal veterinário
type VetCommission struct {
	VetID       string       `json:"vet_id"`
	Window      PeriodWindow `json:"window"`
	PaidTotal   float64      `json:"paid_total"`
	RatePercent float64      `json:"rate_percent"`
	Commission  float64      `json:"commission"`
	Payments    int          `json:"payments"`
}

// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// CommissionSnapshot é a comissão apurada de um vendedor em um mês, com sua posição no ranking
type CommissionSnapshot struct {
	ID               string    `json:"id"`
	SellerID         string    `json:"seller_id"`
	Period           string    `json:"period"` // Formato mm-yyyy (ex: 03-2024)
	EarnedPeriod     float64   `json:"earned_period"`
	WithheldPeriod   float64   `json:"withheld_period"`
	EarnedAllTime    float64   `json:"earned_all_time"`
	WithheldAllTime  float64   `json:"withheld_all_time"`
	Position         int       `json:"position"`
	PositionChange   int       `json:"position_change"` // Valor positivo = subiu, negativo = desceu, 0 = manteve
	PreviousPosition int       `json:"previous_position"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type SellerRanking struct {
	Period     string               `json:"period"`
	Ranking    []CommissionSnapshot `json:"ranking"`
	LastUpdate time.Time            `json:"last_update"`
}

// Package commission implementa a apuração de comissões: tabela de tarifas,
// classificação de pagamentos, rastreio de paz y salvo e o acumulador que
// separa comissão liberada de comissão retida.
package commission

import (
	"strconv"
	"strings"

	"github.com/kleandaily/klean-daily-api/pkg/utils"
	"github.com/pkg/errors"
)

// RateTable mapeia nome de produto normalizado para comissão fixa por unidade (COP)
type RateTable map[string]float64

var defaultRates = map[string]float64{
	"Derma Plus":        5000,
	"Derma Plus Spray":  4500,
	"Klean Shampoo":     3000,
	"Klean Ótico":       4000,
	"Klean Dental":      3500,
	"Klean Toallitas":   2000,
	"Antipulgas Klean":  6000,
	"Klean Desparasita": 5500,
}

// DefaultRateTable retorna uma cópia da tabela padrão
func DefaultRateTable() RateTable {
	return NewRateTable(defaultRates)
}

// NewRateTable normaliza as chaves de entries
func NewRateTable(entries map[string]float64) RateTable {
	table := make(RateTable, len(entries))
	for product, rate := range entries {
		table[utils.NormalizeToken(product)] = rate
	}
	return table
}

// WithOverrides devolve uma cópia da tabela com as tarifas "Produto=valor" aplicadas por cima
func (t RateTable) WithOverrides(overrides []string) (RateTable, error) {
	table := make(RateTable, len(t)+len(overrides))
	for key, rate := range t {
		table[key] = rate
	}

	for _, entry := range overrides {
		product, value, found := strings.Cut(entry, "=")
		product = strings.TrimSpace(product)
		if !found || product == "" {
			return nil, errors.Errorf("tarifa mal formatada: %q", entry)
		}

		rate, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || rate < 0 {
			return nil, errors.Errorf("valor inválido para %s: %q", product, value)
		}

		table[utils.NormalizeToken(product)] = rate
	}

	return table, nil
}

// Resolve retorna a comissão por unidade do produto, 0 se desconhecido
func (t RateTable) Resolve(product string) float64 {
	return t[utils.NormalizeToken(product)]
}

type tier struct {
	limit float64
	rate  float64
}

// Escada do canal veterinário sobre o total pago acumulado no mês
var vetTiers = []tier{
	{limit: 20_000_000, rate: 0.02},
	{limit: 30_000_000, rate: 0.03},
	{limit: 40_000_000, rate: 0.055},
	{limit: 50_000_000, rate: 0.06},
}

const vetTopRate = 0.07

// TieredRate retorna a fração de comissão (0.02 = 2%) para o total pago no mês
func TieredRate(total float64) float64 {
	if total <= 0 {
		return 0
	}
	for _, t := range vetTiers {
		if total <= t.limit {
			return t.rate
		}
	}
	return vetTopRate
}

package domain

import (
	"errors"
	"time"
)

var ErrInvalidWindow = errors.New("janela de período inválida")

// PeriodWindow é um intervalo semiaberto [Start, End)
type PeriodWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func NewDayWindow(day time.Time) PeriodWindow {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return PeriodWindow{Start: start, End: start.AddDate(0, 0, 1)}
}

func NewMonthWindow(year int, month time.Month, loc *time.Location) PeriodWindow {
	if loc == nil {
		loc = time.Local
	}
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return PeriodWindow{Start: start, End: start.AddDate(0, 1, 0)}
}

// NewRangeWindow cria uma janela personalizada; end precisa ser posterior a start
func NewRangeWindow(start, end time.Time) (PeriodWindow, error) {
	if start.IsZero() || end.IsZero() || !end.After(start) {
		return PeriodWindow{}, ErrInvalidWindow
	}
	return PeriodWindow{Start: start, End: end}, nil
}

func (w PeriodWindow) IsZero() bool {
	return w.Start.IsZero() && w.End.IsZero()
}

// Contains reporta se t está dentro da janela. Timestamps zerados nunca pertencem a uma janela.
func (w PeriodWindow) Contains(t time.Time) bool {
	if t.IsZero() || w.IsZero() {
		return false
	}
	return !t.Before(w.Start) && t.Before(w.End)
}

// Period retorna o mês de início no formato mm-yyyy
func (w PeriodWindow) Period() string {
	return w.Start.Format("01-2006")
}

// ParsePeriod converte mm-yyyy em janela mensal
func ParsePeriod(period string, loc *time.Location) (PeriodWindow, error) {
	if loc == nil {
		loc = time.Local
	}
	start, err := time.ParseInLocation("01-2006", period, loc)
	if err != nil {
		return PeriodWindow{}, ErrInvalidWindow
	}
	return NewMonthWindow(start.Year(), start.Month(), loc), nil
}

package syncing

import (
	"time"

	"github.com/kiendt120702/shopee-ads-sync/pkg/utils"
)

// MonthBounds devolve o primeiro e o último dia do mês do token informado
func MonthBounds(unit string) (time.Time, time.Time, error) {
	start, err := utils.ParseMonth(unit)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end := start.AddDate(0, 1, -1)
	return start, end, nil
}

// ChunkStart calcula o início do sub-período que termina em chunkEnd,
// limitado ao primeiro dia do mês. Os limites derivam sempre do valor
// persistido no checkpoint, nunca do relógio da invocação.
func ChunkStart(chunkEnd, monthStart time.Time, chunkDays int) time.Time {
	start := chunkEnd.AddDate(0, 0, -(chunkDays - 1))
	if start.Before(monthStart) {
		return monthStart
	}
	return start
}

// NextChunkEnd devolve o limite superior do próximo sub-período (um dia
// antes do início do sub-período recém-concluído)
func NextChunkEnd(chunkStart time.Time) time.Time {
	return chunkStart.AddDate(0, 0, -1)
}

// InitialChunkEnd devolve o limite superior do primeiro sub-período de um
// mês: o último dia do mês, ou hoje quando o mês ainda está em curso
func InitialChunkEnd(unit string, now time.Time) (time.Time, error) {
	_, monthEnd, err := MonthBounds(unit)
	if err != nil {
		return time.Time{}, err
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if today.Before(monthEnd) {
		return today, nil
	}
	return monthEnd, nil
}

// PreviousUnit devolve o token do mês anterior ao informado
func PreviousUnit(unit string) (string, error) {
	start, err := utils.ParseMonth(unit)
	if err != nil {
		return "", err
	}
	return utils.FormatMonth(start.AddDate(0, -1, 0)), nil
}

// WithinLookback indica se o mês do token ainda está dentro da janela
// de retenção de `lookback` meses contados a partir do mês corrente
func WithinLookback(unit string, now time.Time, lookback int) (bool, error) {
	start, err := utils.ParseMonth(unit)
	if err != nil {
		return false, err
	}
	oldest := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(lookback - 1), 0)
	return !start.Before(oldest), nil
}

package utils

import "time"

const monthLayout = "2006-01"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseMonth converte um token de mês ("2026-01") no primeiro dia do mês em UTC
func ParseMonth(monthStr string) (time.Time, error) {
	return time.Parse(monthLayout, monthStr)
}

// FormatMonth gera o token de mês usado nos checkpoints de sincronização
func FormatMonth(t time.Time) string {
	return t.Format(monthLayout)
}

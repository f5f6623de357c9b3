package domain

import "time"

// AdType identifica o tipo de anúncio alvo de uma regra de orçamento
type AdType string

const (
	AdTypeProduct AdType = "product"
	AdTypeShop    AdType = "shop"
)

// ScheduleRule é uma regra de ajuste de orçamento por faixa horária.
// Criada e editada pelo painel; este serviço apenas a consome.
// A janela nunca cruza a meia-noite: início < fim no mesmo dia,
// validado no momento da criação pelo painel.
type ScheduleRule struct {
	ID          string    `json:"id"`
	ShopID      int64     `json:"shop_id"`
	CampaignID  int64     `json:"campaign_id"`
	AdType      AdType    `json:"ad_type"`
	StartHour   int       `json:"start_hour"`
	StartMinute int       `json:"start_minute"`
	EndHour     int       `json:"end_hour"`
	EndMinute   int       `json:"end_minute"`
	Budget      float64   `json:"budget"`
	DaysOfWeek  []int     `json:"days_of_week"` // 0=domingo ... 6=sábado
	Dates       []string  `json:"dates"`        // datas específicas "2006-01-02"
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// WindowStart devolve o início da janela da regra no dia informado
func (r *ScheduleRule) WindowStart(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), r.StartHour, r.StartMinute, 0, 0, day.Location())
}

// WindowEnd devolve o fim da janela da regra no dia informado
func (r *ScheduleRule) WindowEnd(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), r.EndHour, r.EndMinute, 0, 0, day.Location())
}

// MatchesDay avalia o filtro de dia da regra.
// Datas específicas têm precedência sobre dias da semana;
// sem nenhum filtro, a regra vale todos os dias.
func (r *ScheduleRule) MatchesDay(day time.Time) bool {
	if len(r.Dates) > 0 {
		target := day.Format("2006-01-02")
		for _, d := range r.Dates {
			if d == target {
				return true
			}
		}
		return false
	}

	if len(r.DaysOfWeek) > 0 {
		weekday := int(day.Weekday())
		for _, d := range r.DaysOfWeek {
			if d == weekday {
				return true
			}
		}
		return false
	}

	return true
}

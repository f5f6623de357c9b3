package domain

import "time"

// ExecutionOutcome é o resultado de uma tentativa de execução de regra
type ExecutionOutcome string

const (
	ExecutionOutcomeSuccess ExecutionOutcome = "success"
	ExecutionOutcomeFailed  ExecutionOutcome = "failed"
)

// ExecutionLog registra uma tentativa de aplicação de orçamento.
// Append-only: uma linha por tentativa, sucesso ou falha. Serve de trilha
// de auditoria e de fonte para a janela de dedup do processador de regras.
type ExecutionLog struct {
	ID         int64            `json:"id"`
	ScheduleID string           `json:"schedule_id"`
	ShopID     int64            `json:"shop_id"`
	CampaignID int64            `json:"campaign_id"`
	Budget     float64          `json:"budget"`
	Outcome    ExecutionOutcome `json:"outcome"`
	ErrorText  string           `json:"error_text,omitempty"`
	ExecutedAt time.Time        `json:"executed_at"`
}

package domain

import "time"

// SyncCheckpoint é o ponteiro durável de progresso de uma sincronização
// multi-invocação. Mutado exclusivamente pelo motor de sincronização;
// a flag Syncing é uma dica de exclusão mútua, não um lock rígido.
type SyncCheckpoint struct {
	ShopID         int64     `json:"shop_id"`
	Unit           string    `json:"unit"`      // token do mês, ex: "2026-01"
	ChunkEnd       time.Time `json:"chunk_end"` // limite superior do próximo sub-período
	CompletedUnits []string  `json:"completed_units"`
	Syncing        bool      `json:"syncing"`
	LastError      string    `json:"last_error,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UnitCompleted indica se a unidade informada já foi totalmente sincronizada
func (c *SyncCheckpoint) UnitCompleted(unit string) bool {
	for _, u := range c.CompletedUnits {
		if u == unit {
			return true
		}
	}
	return false
}

// WalkComplete indica que a varredura retroativa terminou; a próxima
// invocação recomeça do sub-período mais recente
func (c *SyncCheckpoint) WalkComplete() bool {
	return c.Unit == ""
}

package syncing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/kiendt120702/shopee-ads-sync/infrastructure/integrator/shopee"
	shopeedomain "github.com/kiendt120702/shopee-ads-sync/infrastructure/integrator/shopee/domain"
	"github.com/kiendt120702/shopee-ads-sync/infrastructure/repository"
	"github.com/kiendt120702/shopee-ads-sync/internal/config"
	"github.com/kiendt120702/shopee-ads-sync/internal/domain"
	"github.com/kiendt120702/shopee-ads-sync/pkg/utils"
)

// ErrSyncInProgress sinaliza que outra invocação recente ainda detém a loja
var ErrSyncInProgress = errors.New("sincronização já em andamento para a loja")

// staleSyncThreshold é o tempo após o qual a flag Syncing deixada por uma
// invocação interrompida passa a ser ignorada (duas janelas do cron)
const staleSyncThreshold = 40 * time.Minute

// StepResult resume uma invocação do motor para uma loja
type StepResult struct {
	Unit          string   `json:"unit"`
	RecordsSynced int      `json:"records_synced"`
	UnitCompleted bool     `json:"unit_completed"`
	HasMore       bool     `json:"has_more"`
	PageErrors    []string `json:"page_errors,omitempty"`
}

// Engine é o motor de sincronização de pedidos em sub-períodos.
// Cada invocação retoma do checkpoint durável da loja, percorre o mês
// de trás para frente em janelas de ChunkDays dias e para ao esgotar
// o teto de registros da invocação. Os registros são gravados antes de
// o checkpoint avançar, então uma interrupção nunca perde progresso —
// no pior caso o mesmo sub-período é reprocessado de forma idempotente.
type Engine struct {
	cfg            *config.Config
	integrator     shopee.Integrator
	orderRepo      repository.OrderRepository
	checkpointRepo repository.SyncCheckpointRepository
}

func NewEngine(
	cfg *config.Config,
	integrator shopee.Integrator,
	orderRepo repository.OrderRepository,
	checkpointRepo repository.SyncCheckpointRepository,
) *Engine {
	return &Engine{
		cfg:            cfg,
		integrator:     integrator,
		orderRepo:      orderRepo,
		checkpointRepo: checkpointRepo,
	}
}

// Step executa uma invocação do motor para a loja: retoma do checkpoint,
// processa sub-períodos até esgotar o teto de registros ou concluir todas
// as unidades dentro da janela de retenção.
func (e *Engine) Step(ctx context.Context, shopID int64, now time.Time) (*StepResult, error) {
	cp, err := e.checkpointRepo.GetByShopID(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar checkpoint da loja %d: %w", shopID, err)
	}

	if cp == nil {
		cp, err = e.newCheckpoint(shopID, now)
		if err != nil {
			return nil, err
		}
	} else if cp.WalkComplete() {
		// A varredura anterior terminou: recomeça do sub-período mais
		// recente para captar pedidos criados desde então
		if err := e.restartWalk(cp, now); err != nil {
			return nil, err
		}
	}

	if cp.Syncing {
		// Flag recente: outra invocação provavelmente ainda está ativa.
		// Flag velha: sobra de uma invocação interrompida, pode ser ignorada.
		if now.Sub(cp.UpdatedAt) < staleSyncThreshold {
			return nil, ErrSyncInProgress
		}
		logrus.Warn("Flag de sincronização obsoleta ignorada", map[string]any{
			"shopID":    shopID,
			"updatedAt": cp.UpdatedAt,
		})
	}

	cp.Syncing = true
	cp.LastError = ""
	if err := e.checkpointRepo.Save(ctx, cp); err != nil {
		return nil, fmt.Errorf("erro ao marcar início da sincronização: %w", err)
	}

	result, runErr := e.run(ctx, shopID, cp, now)

	cp.Syncing = false
	if runErr != nil {
		cp.LastError = runErr.Error()
	}
	if saveErr := e.checkpointRepo.Save(ctx, cp); saveErr != nil {
		logrus.Error("Erro ao liberar flag de sincronização", map[string]any{
			"shopID": shopID,
			"error":  saveErr,
		})
	}

	if runErr != nil {
		return result, runErr
	}
	return result, nil
}

func (e *Engine) newCheckpoint(shopID int64, now time.Time) (*domain.SyncCheckpoint, error) {
	unit := utils.FormatMonth(now)
	chunkEnd, err := InitialChunkEnd(unit, now)
	if err != nil {
		return nil, fmt.Errorf("erro ao inicializar checkpoint da loja %d: %w", shopID, err)
	}
	return &domain.SyncCheckpoint{
		ShopID:   shopID,
		Unit:     unit,
		ChunkEnd: chunkEnd,
	}, nil
}

// restartWalk reposiciona o checkpoint no sub-período mais recente do mês
// corrente. O mês corrente sai da lista de concluídas (será re-sincronizado)
// e unidades fora da janela de retenção são descartadas.
func (e *Engine) restartWalk(cp *domain.SyncCheckpoint, now time.Time) error {
	unit := utils.FormatMonth(now)
	chunkEnd, err := InitialChunkEnd(unit, now)
	if err != nil {
		return fmt.Errorf("erro ao reiniciar checkpoint da loja %d: %w", cp.ShopID, err)
	}

	kept := make([]string, 0, len(cp.CompletedUnits))
	for _, u := range cp.CompletedUnits {
		within, err := WithinLookback(u, now, e.cfg.OrderSync.MonthLookback)
		if err != nil {
			return fmt.Errorf("unidade concluída inválida no checkpoint (%q): %w", u, err)
		}
		if within && u != unit {
			kept = append(kept, u)
		}
	}

	cp.Unit = unit
	cp.ChunkEnd = chunkEnd
	cp.CompletedUnits = kept
	return nil
}

// nextPendingUnit devolve o mês anterior ainda não concluído dentro da
// janela de retenção, ou vazio quando a varredura retroativa terminou
func (e *Engine) nextPendingUnit(cp *domain.SyncCheckpoint, now time.Time) (string, error) {
	unit := cp.Unit
	for {
		prev, err := PreviousUnit(unit)
		if err != nil {
			return "", err
		}
		within, err := WithinLookback(prev, now, e.cfg.OrderSync.MonthLookback)
		if err != nil {
			return "", err
		}
		if !within {
			return "", nil
		}
		if !cp.UnitCompleted(prev) {
			return prev, nil
		}
		unit = prev
	}
}

func (e *Engine) run(ctx context.Context, shopID int64, cp *domain.SyncCheckpoint, now time.Time) (*StepResult, error) {
	result := &StepResult{Unit: cp.Unit}
	budget := e.cfg.OrderSync.MaxRecordsPerRun

	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		monthStart, _, err := MonthBounds(cp.Unit)
		if err != nil {
			return result, fmt.Errorf("token de mês inválido no checkpoint (%q): %w", cp.Unit, err)
		}

		chunkStart := ChunkStart(cp.ChunkEnd, monthStart, e.cfg.OrderSync.ChunkDays)

		synced, pageErrors, err := e.syncChunk(ctx, shopID, chunkStart, cp.ChunkEnd, &budget)
		result.RecordsSynced += synced
		result.PageErrors = append(result.PageErrors, pageErrors...)
		if err != nil {
			// Falha de autenticação ou de paginação: o checkpoint fica onde
			// está e o sub-período inteiro é reprocessado na próxima invocação
			return result, err
		}

		if budget <= 0 {
			// Teto atingido no meio do sub-período: não avança o checkpoint
			result.HasMore = true
			return result, nil
		}

		// Sub-período concluído: avança o checkpoint
		if chunkStart.Equal(monthStart) {
			if !cp.UnitCompleted(cp.Unit) {
				cp.CompletedUnits = append(cp.CompletedUnits, cp.Unit)
			}
			result.UnitCompleted = true

			next, err := e.nextPendingUnit(cp, now)
			if err != nil {
				return result, err
			}
			if next == "" {
				// Varredura completa: limpa a unidade corrente para que a
				// próxima invocação recomece do sub-período mais recente
				cp.Unit = ""
				if err := e.checkpointRepo.Save(ctx, cp); err != nil {
					return result, fmt.Errorf("erro ao salvar checkpoint: %w", err)
				}
				return result, nil
			}

			cp.Unit = next
			result.Unit = next
			_, prevEnd, err := MonthBounds(next)
			if err != nil {
				return result, err
			}
			cp.ChunkEnd = prevEnd
		} else {
			cp.ChunkEnd = NextChunkEnd(chunkStart)
		}

		if err := e.checkpointRepo.Save(ctx, cp); err != nil {
			return result, fmt.Errorf("erro ao salvar checkpoint: %w", err)
		}
	}
}

// SyncDay sincroniza os pedidos de um único dia, sem tocar no checkpoint.
// Usado pela ressincronização pontual disparada pelo painel.
func (e *Engine) SyncDay(ctx context.Context, shopID int64, day time.Time) (*StepResult, error) {
	result := &StepResult{Unit: utils.FormatMonth(day)}
	budget := e.cfg.OrderSync.MaxRecordsPerRun

	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	synced, pageErrors, err := e.syncChunk(ctx, shopID, day, day, &budget)
	result.RecordsSynced = synced
	result.PageErrors = pageErrors
	if err != nil {
		return result, err
	}

	result.HasMore = budget <= 0
	return result, nil
}

// Backfill reposiciona o checkpoint da loja no mês informado para que as
// próximas invocações o reprocessem do zero. A unidade sai da lista de
// concluídas; os registros já gravados permanecem e são re-upsertados.
func (e *Engine) Backfill(ctx context.Context, shopID int64, unit string) error {
	_, monthEnd, err := MonthBounds(unit)
	if err != nil {
		return fmt.Errorf("token de mês inválido (%q): %w", unit, err)
	}

	cp, err := e.checkpointRepo.GetByShopID(ctx, shopID)
	if err != nil {
		return fmt.Errorf("erro ao carregar checkpoint da loja %d: %w", shopID, err)
	}
	if cp == nil {
		cp = &domain.SyncCheckpoint{ShopID: shopID}
	}

	remaining := make([]string, 0, len(cp.CompletedUnits))
	for _, u := range cp.CompletedUnits {
		if u != unit {
			remaining = append(remaining, u)
		}
	}

	cp.Unit = unit
	cp.ChunkEnd = monthEnd
	cp.CompletedUnits = remaining
	cp.Syncing = false
	cp.LastError = ""

	if err := e.checkpointRepo.Save(ctx, cp); err != nil {
		return fmt.Errorf("erro ao salvar checkpoint reposicionado: %w", err)
	}

	return nil
}

// syncChunk sincroniza os pedidos de um sub-período: lista os IDs por cursor
// e busca os detalhes em sub-lotes, gravando cada pedido antes de prosseguir.
// Erros de lote de detalhe são agregados e o restante do sub-período continua;
// erros de autenticação e de paginação interrompem o sub-período.
func (e *Engine) syncChunk(ctx context.Context, shopID int64, from, to time.Time, budget *int) (int, []string, error) {
	synced := 0
	pageErrors := make([]string, 0)

	// O fim do sub-período é inclusivo: estende até o último segundo do dia
	toEnd := to.AddDate(0, 0, 1).Add(-time.Second)

	cursor := ""
	for {
		page, err := e.integrator.ListOrderIDs(ctx, shopID, from, toEnd, cursor, e.cfg.OrderSync.PageSize)
		if err != nil {
			return synced, pageErrors, fmt.Errorf("erro ao listar pedidos da loja %d: %w", shopID, err)
		}

		for _, batch := range splitBatches(page.OrderSNs, e.cfg.OrderSync.DetailBatchSize) {
			orders, err := e.integrator.GetOrderDetails(ctx, shopID, batch)
			if err != nil {
				var authErr *shopeedomain.AuthError
				if errors.As(err, &authErr) {
					return synced, pageErrors, err
				}
				// Lote perdido não derruba o sub-período; fica registrado
				// no resultado e o pedido volta na próxima reprocessada
				logrus.Error("Erro ao buscar detalhes de pedidos", map[string]any{
					"shopID": shopID,
					"batch":  len(batch),
					"error":  err,
				})
				pageErrors = append(pageErrors, err.Error())
				continue
			}

			for _, order := range orders {
				if err := e.orderRepo.SaveOrUpdate(ctx, order); err != nil {
					return synced, pageErrors, fmt.Errorf("erro ao gravar pedido %s: %w", order.OrderSN, err)
				}
				synced++
				*budget--
			}

			if *budget <= 0 {
				return synced, pageErrors, nil
			}

			e.pause(ctx)
		}

		if !page.More || page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}

	if len(pageErrors) > 0 {
		return synced, pageErrors, fmt.Errorf("sub-período com %d lote(s) com falha: %s",
			len(pageErrors), strings.Join(pageErrors, "; "))
	}

	return synced, pageErrors, nil
}

func (e *Engine) pause(ctx context.Context) {
	delay := time.Duration(e.cfg.OrderSync.RequestDelaySeconds) * time.Second
	if delay <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(delay):
	}
}

func splitBatches(items []string, size int) [][]string {
	if size <= 0 {
		size = len(items)
	}
	batches := make([][]string, 0)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		batches = append(batches, items[start:end])
	}
	return batches
}

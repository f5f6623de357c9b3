package budgeting

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kiendt120702/shopee-ads-sync/infrastructure/integrator/shopee"
	"github.com/kiendt120702/shopee-ads-sync/infrastructure/repository"
	"github.com/kiendt120702/shopee-ads-sync/internal/config"
	"github.com/kiendt120702/shopee-ads-sync/internal/domain"
)

// ProcessResult resume uma passada do processador de regras
type ProcessResult struct {
	Evaluated  int `json:"evaluated"`
	Dispatched int `json:"dispatched"`
	Skipped    int `json:"skipped"`
	Failed     int `json:"failed"`
}

// Matcher avalia as regras de orçamento por faixa horária e aplica na
// Shopee as que vencem no bucket corrente. Uma regra vence quando o início
// da sua janela cai dentro do bucket de disparo e o agora ainda está antes
// do fim da janela. O log de execuções serve de trava de dedup: uma regra
// com sucesso dentro da janela de lookback não dispara de novo, então um
// disparo atrasado do cron não aplica o mesmo orçamento duas vezes.
type Matcher struct {
	cfg        *config.Config
	integrator shopee.Integrator
	ruleRepo   repository.ScheduleRuleRepository
	logRepo    repository.ExecutionLogRepository
}

func NewMatcher(
	cfg *config.Config,
	integrator shopee.Integrator,
	ruleRepo repository.ScheduleRuleRepository,
	logRepo repository.ExecutionLogRepository,
) *Matcher {
	return &Matcher{
		cfg:        cfg,
		integrator: integrator,
		ruleRepo:   ruleRepo,
		logRepo:    logRepo,
	}
}

// BucketStart devolve o início do bucket de disparo que contém o instante
func (m *Matcher) BucketStart(now time.Time) time.Time {
	bucket := time.Duration(m.cfg.BudgetSchedule.BucketMinutes) * time.Minute
	return now.Truncate(bucket)
}

// IsDue avalia se a regra vence no bucket que contém o instante informado
func (m *Matcher) IsDue(rule *domain.ScheduleRule, now time.Time) bool {
	if !rule.MatchesDay(now) {
		return false
	}

	bucketStart := m.BucketStart(now)
	bucketEnd := bucketStart.Add(time.Duration(m.cfg.BudgetSchedule.BucketMinutes) * time.Minute)

	windowStart := rule.WindowStart(now)
	if windowStart.Before(bucketStart) || !windowStart.Before(bucketEnd) {
		return false
	}

	return now.Before(rule.WindowEnd(now))
}

// ProcessDue percorre as regras ativas e aplica as vencidas no bucket
// corrente. Falhas são isoladas por regra: cada tentativa gera uma linha
// no log de execuções e a passada continua com as demais.
func (m *Matcher) ProcessDue(ctx context.Context, now time.Time) (*ProcessResult, error) {
	rules, err := m.ruleRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar regras ativas: %w", err)
	}

	result := &ProcessResult{}

	for _, rule := range rules {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result.Evaluated++

		if !m.IsDue(rule, now) {
			continue
		}

		lookback := time.Duration(m.cfg.BudgetSchedule.DedupLookbackMinutes) * time.Minute
		applied, err := m.logRepo.HasRecentSuccess(ctx, rule.ID, now.Add(-lookback))
		if err != nil {
			logrus.Error("Erro ao consultar dedup da regra, pulando por segurança", map[string]any{
				"scheduleID": rule.ID,
				"error":      err,
			})
			result.Skipped++
			continue
		}
		if applied {
			result.Skipped++
			continue
		}

		if err := m.apply(ctx, rule, now); err != nil {
			result.Failed++
			logrus.Error("Erro ao aplicar regra de orçamento", map[string]any{
				"scheduleID": rule.ID,
				"shopID":     rule.ShopID,
				"campaignID": rule.CampaignID,
				"error":      err,
			})
			continue
		}

		result.Dispatched++
	}

	return result, nil
}

// ApplyNow aplica uma regra imediatamente, ignorando o bucket e a trava de
// dedup. Disparada manualmente pelo painel; a tentativa entra no log de
// execuções como qualquer outra.
func (m *Matcher) ApplyNow(ctx context.Context, scheduleID string, now time.Time) error {
	rule, err := m.ruleRepo.GetByID(ctx, scheduleID)
	if err != nil {
		return fmt.Errorf("erro ao carregar regra %s: %w", scheduleID, err)
	}
	if rule == nil {
		return fmt.Errorf("regra de agendamento não encontrada: %s", scheduleID)
	}

	return m.apply(ctx, rule, now)
}

func (m *Matcher) apply(ctx context.Context, rule *domain.ScheduleRule, now time.Time) error {
	applyErr := m.integrator.UpdateCampaignBudget(ctx, rule.ShopID, rule.CampaignID, rule.AdType, rule.Budget)

	entry := &domain.ExecutionLog{
		ScheduleID: rule.ID,
		ShopID:     rule.ShopID,
		CampaignID: rule.CampaignID,
		Budget:     rule.Budget,
		Outcome:    domain.ExecutionOutcomeSuccess,
		ExecutedAt: now,
	}
	if applyErr != nil {
		entry.Outcome = domain.ExecutionOutcomeFailed
		entry.ErrorText = applyErr.Error()
	}

	if err := m.logRepo.Append(ctx, entry); err != nil {
		logrus.Error("Erro ao registrar execução da regra", map[string]any{
			"scheduleID": rule.ID,
			"error":      err,
		})
	}

	return applyErr
}

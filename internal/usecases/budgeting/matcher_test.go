package budgeting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	shopeemocks "github.com/kiendt120702/shopee-ads-sync/infrastructure/integrator/shopee/mocks"
	"github.com/kiendt120702/shopee-ads-sync/infrastructure/repository/mocks"
	"github.com/kiendt120702/shopee-ads-sync/internal/config"
	"github.com/kiendt120702/shopee-ads-sync/internal/domain"
)

func newTestConfig() *config.Config {
	return &config.Config{
		BudgetSchedule: config.BudgetSchedule{
			BucketMinutes:        30,
			DedupLookbackMinutes: 25,
		},
	}
}

func newRule(id string, startHour, startMinute, endHour, endMinute int) *domain.ScheduleRule {
	return &domain.ScheduleRule{
		ID:          id,
		ShopID:      400123,
		CampaignID:  777,
		AdType:      domain.AdTypeProduct,
		StartHour:   startHour,
		StartMinute: startMinute,
		EndHour:     endHour,
		EndMinute:   endMinute,
		Budget:      150.0,
		Active:      true,
	}
}

func TestMatcher_IsDue(t *testing.T) {
	matcher := NewMatcher(newTestConfig(), nil, nil, nil)

	// Quinta-feira, 15 de janeiro de 2026, 08:00
	runAt := time.Date(2026, time.January, 15, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		rule     *domain.ScheduleRule
		now      time.Time
		expected bool
	}{
		{
			name:     "Janela começando exatamente no bucket vence",
			rule:     newRule("R1", 8, 0, 11, 30),
			now:      runAt,
			expected: true,
		},
		{
			name:     "Janela começando dentro do bucket vence",
			rule:     newRule("R2", 8, 15, 11, 30),
			now:      runAt,
			expected: true,
		},
		{
			name:     "Janela começando antes do bucket não vence",
			rule:     newRule("R3", 7, 45, 11, 30),
			now:      runAt,
			expected: false,
		},
		{
			name:     "Janela começando no bucket seguinte não vence",
			rule:     newRule("R4", 8, 30, 11, 30),
			now:      runAt,
			expected: false,
		},
		{
			name:     "Janela já encerrada não vence",
			rule:     newRule("R5", 8, 0, 8, 10),
			now:      time.Date(2026, time.January, 15, 8, 20, 0, 0, time.UTC),
			expected: false,
		},
		{
			name: "Dia da semana fora do filtro não vence",
			rule: func() *domain.ScheduleRule {
				r := newRule("R6", 8, 0, 11, 30)
				r.DaysOfWeek = []int{0, 6} // somente fim de semana
				return r
			}(),
			now:      runAt, // quinta-feira
			expected: false,
		},
		{
			name: "Data específica tem precedência sobre o dia da semana",
			rule: func() *domain.ScheduleRule {
				r := newRule("R7", 8, 0, 11, 30)
				r.DaysOfWeek = []int{0, 6}
				r.Dates = []string{"2026-01-15"}
				return r
			}(),
			now:      runAt,
			expected: true,
		},
		{
			name:     "Disparo atrasado dentro do bucket ainda vence",
			rule:     newRule("R8", 8, 0, 11, 30),
			now:      time.Date(2026, time.January, 15, 8, 7, 0, 0, time.UTC),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, matcher.IsDue(tt.rule, tt.now))
		})
	}
}

func TestMatcher_ProcessDue(t *testing.T) {
	runAt := time.Date(2026, time.January, 15, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		rules    []*domain.ScheduleRule
		setup    func(integrator *shopeemocks.MockIntegrator, logRepo *mocks.MockExecutionLogRepository)
		validate func(t *testing.T, result *ProcessResult, logged []*domain.ExecutionLog)
	}{
		{
			name:  "Regra vencida é aplicada e registrada com sucesso",
			rules: []*domain.ScheduleRule{newRule("R1", 8, 0, 11, 30)},
			setup: func(integrator *shopeemocks.MockIntegrator, logRepo *mocks.MockExecutionLogRepository) {
				logRepo.EXPECT().
					HasRecentSuccess(gomock.Any(), "R1", runAt.Add(-25*time.Minute)).
					Return(false, nil)
				integrator.EXPECT().
					UpdateCampaignBudget(gomock.Any(), int64(400123), int64(777), domain.AdTypeProduct, 150.0).
					Return(nil)
			},
			validate: func(t *testing.T, result *ProcessResult, logged []*domain.ExecutionLog) {
				assert.Equal(t, 1, result.Dispatched)
				assert.Equal(t, 0, result.Failed)
				require.Len(t, logged, 1)
				assert.Equal(t, domain.ExecutionOutcomeSuccess, logged[0].Outcome)
				assert.Equal(t, 150.0, logged[0].Budget)
			},
		},
		{
			name:  "Sucesso recente na janela de dedup é pulado sem nova chamada",
			rules: []*domain.ScheduleRule{newRule("R1", 8, 0, 11, 30)},
			setup: func(integrator *shopeemocks.MockIntegrator, logRepo *mocks.MockExecutionLogRepository) {
				logRepo.EXPECT().
					HasRecentSuccess(gomock.Any(), "R1", gomock.Any()).
					Return(true, nil)
			},
			validate: func(t *testing.T, result *ProcessResult, logged []*domain.ExecutionLog) {
				assert.Equal(t, 0, result.Dispatched)
				assert.Equal(t, 1, result.Skipped)
				assert.Empty(t, logged)
			},
		},
		{
			name: "Falha em uma regra não impede as demais",
			rules: []*domain.ScheduleRule{
				newRule("R1", 8, 0, 11, 30),
				newRule("R2", 8, 15, 11, 30),
			},
			setup: func(integrator *shopeemocks.MockIntegrator, logRepo *mocks.MockExecutionLogRepository) {
				logRepo.EXPECT().
					HasRecentSuccess(gomock.Any(), "R1", gomock.Any()).
					Return(false, nil)
				logRepo.EXPECT().
					HasRecentSuccess(gomock.Any(), "R2", gomock.Any()).
					Return(false, nil)

				gomock.InOrder(
					integrator.EXPECT().
						UpdateCampaignBudget(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
						Return(errors.New("limite de requisições excedido")),
					integrator.EXPECT().
						UpdateCampaignBudget(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
						Return(nil),
				)
			},
			validate: func(t *testing.T, result *ProcessResult, logged []*domain.ExecutionLog) {
				assert.Equal(t, 1, result.Dispatched)
				assert.Equal(t, 1, result.Failed)
				require.Len(t, logged, 2)
				assert.Equal(t, domain.ExecutionOutcomeFailed, logged[0].Outcome)
				assert.NotEmpty(t, logged[0].ErrorText)
				assert.Equal(t, domain.ExecutionOutcomeSuccess, logged[1].Outcome)
			},
		},
		{
			name:  "Regra fora do bucket não é avaliada para dedup",
			rules: []*domain.ScheduleRule{newRule("R1", 14, 0, 18, 0)},
			setup: func(integrator *shopeemocks.MockIntegrator, logRepo *mocks.MockExecutionLogRepository) {
			},
			validate: func(t *testing.T, result *ProcessResult, logged []*domain.ExecutionLog) {
				assert.Equal(t, 1, result.Evaluated)
				assert.Equal(t, 0, result.Dispatched)
				assert.Empty(t, logged)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockIntegrator := shopeemocks.NewMockIntegrator(ctrl)
			mockRuleRepo := mocks.NewMockScheduleRuleRepository(ctrl)
			mockLogRepo := mocks.NewMockExecutionLogRepository(ctrl)

			mockRuleRepo.EXPECT().
				ListActive(gomock.Any()).
				Return(tt.rules, nil)

			logged := make([]*domain.ExecutionLog, 0)
			mockLogRepo.EXPECT().
				Append(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, entry *domain.ExecutionLog) error {
					logged = append(logged, entry)
					return nil
				}).
				AnyTimes()

			tt.setup(mockIntegrator, mockLogRepo)

			matcher := NewMatcher(newTestConfig(), mockIntegrator, mockRuleRepo, mockLogRepo)
			result, err := matcher.ProcessDue(context.Background(), runAt)
			require.NoError(t, err)
			tt.validate(t, result, logged)
		})
	}
}

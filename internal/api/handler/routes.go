package handler

import (
	"net/http"

	"github.com/kiendt120702/shopee-ads-sync/infrastructure/repository"
	"github.com/kiendt120702/shopee-ads-sync/internal/api/handler/router"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Jobs expõe o endpoint de disparo de operações dos agendadores.
// A checagem de privilégio é feita no handler: a resposta é sempre 200
// com o erro no corpo.
func Jobs(services JobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/jobs",
			Method:  http.MethodPost,
			Handler: RunJob(services),
		},
	}
}

// Shops expõe consultas de lojas e seus checkpoints de sincronização
func Shops(shopRepo repository.ShopRepository, checkpointRepo repository.SyncCheckpointRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/shops",
			Method:  http.MethodGet,
			Handler: ListShops(shopRepo),
		},
		{
			Path:    "/v1/shops/:id/checkpoint",
			Method:  http.MethodGet,
			Handler: GetShopCheckpoint(checkpointRepo),
		},
	}
}

// Schedules expõe consultas das regras de orçamento e do histórico de execuções
func Schedules(ruleRepo repository.ScheduleRuleRepository, logRepo repository.ExecutionLogRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/schedules",
			Method:  http.MethodGet,
			Handler: ListSchedules(ruleRepo),
		},
		{
			Path:    "/v1/schedules/:id/executions",
			Method:  http.MethodGet,
			Handler: ListScheduleExecutions(logRepo),
		},
	}
}

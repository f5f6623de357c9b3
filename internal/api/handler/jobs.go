package handler

import (
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	shopeedomain "github.com/kiendt120702/shopee-ads-sync/infrastructure/integrator/shopee/domain"
	"github.com/kiendt120702/shopee-ads-sync/internal/domain"
	"github.com/kiendt120702/shopee-ads-sync/internal/scheduler"
	"github.com/kiendt120702/shopee-ads-sync/pkg/apiErrors"
	"github.com/kiendt120702/shopee-ads-sync/pkg/middleware"
	"github.com/kiendt120702/shopee-ads-sync/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Action identifica a operação de job solicitada pelo painel.
// O conjunto é fechado: qualquer outro valor é rejeitado na borda.
type Action string

const (
	ActionSync      Action = "sync"       // sincronização completa (pedidos + métricas)
	ActionSyncChunk Action = "sync_chunk" // uma invocação do motor de pedidos para uma loja
	ActionSyncDay   Action = "sync_day"   // ressincroniza os pedidos de um dia
	ActionBackfill  Action = "backfill"   // reposiciona o checkpoint em um mês
	ActionProcess   Action = "process"    // passada das regras de orçamento
	ActionRunNow    Action = "run-now"    // aplica uma regra específica agora
	ActionStatus    Action = "status"     // status dos agendadores
)

// JobServices agrupa os agendadores acionáveis pelo endpoint de jobs
type JobServices struct {
	OrderSyncService       *scheduler.OrderSyncService
	PerformanceSyncService *scheduler.PerformanceSyncService
	BudgetScheduleService  *scheduler.BudgetScheduleService
}

// JobRequest é o corpo aceito pelo endpoint de jobs
type JobRequest struct {
	Action     Action `json:"action"`
	ShopID     int64  `json:"shop_id,omitempty"`
	Date       string `json:"date,omitempty"`  // "2006-01-02", exigido por sync_day
	Month      string `json:"month,omitempty"` // "2006-01", exigido por backfill
	ScheduleID string `json:"schedule_id,omitempty"`
}

// JobResponse é o envelope de resposta do endpoint de jobs. O status HTTP é
// sempre 200: o painel lê o resultado do corpo, inclusive em caso de falha.
type JobResponse struct {
	OK     bool                `json:"ok"`
	JobID  string              `json:"job_id,omitempty"`
	Action Action              `json:"action"`
	Result any                 `json:"result,omitempty"`
	Error  *apiErrors.APIError `json:"error,omitempty"`
}

// RunJob despacha uma operação de job para o agendador responsável
func RunJob(services JobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunJob")

		var req JobRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJobResponse(w, &JobResponse{
				Action: req.Action,
				Error:  &apiErrors.APIError{Code: apiErrors.ErrInvalidRequest, Message: "Corpo da requisição inválido"},
			})
			return
		}

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || !userClaims.IsAdmin() {
			writeJobResponse(w, &JobResponse{
				Action: req.Action,
				Error:  &apiErrors.APIError{Code: apiErrors.ErrInsufficientPrivilege, Message: "Apenas administradores podem executar jobs"},
			})
			return
		}

		jobID, _ := utils.GenerateID()
		logrus.WithFields(logrus.Fields{
			"job_id":  jobID,
			"action":  req.Action,
			"shop_id": req.ShopID,
			"user_id": userClaims.UserID,
		}).Info("Job solicitado pelo painel")

		resp := dispatchJob(r, services, &req)
		resp.JobID = jobID
		writeJobResponse(w, resp)
	}
}

func dispatchJob(r *http.Request, services JobServices, req *JobRequest) *JobResponse {
	resp := &JobResponse{Action: req.Action}

	switch req.Action {
	case ActionSync:
		services.OrderSyncService.TriggerManualSync(r.Context())
		services.PerformanceSyncService.TriggerManualSync(r.Context())
		resp.OK = true
		resp.Result = "sincronização disparada"

	case ActionSyncChunk:
		if req.ShopID == 0 {
			resp.Error = &apiErrors.APIError{Code: apiErrors.ErrMissingRequiredData, Message: "shop_id é obrigatório para sync_chunk"}
			return resp
		}
		result, err := services.OrderSyncService.TriggerShopStep(r.Context(), req.ShopID)
		if err != nil {
			resp.Error = jobError(err)
			return resp
		}
		resp.OK = true
		resp.Result = result

	case ActionSyncDay:
		if req.ShopID == 0 || req.Date == "" {
			resp.Error = &apiErrors.APIError{Code: apiErrors.ErrMissingRequiredData, Message: "shop_id e date são obrigatórios para sync_day"}
			return resp
		}
		day, err := utils.ParseDate(req.Date)
		if err != nil {
			resp.Error = &apiErrors.APIError{Code: apiErrors.ErrInvalidFormat, Message: "date deve estar no formato 2006-01-02"}
			return resp
		}
		result, err := services.OrderSyncService.TriggerDaySync(r.Context(), req.ShopID, *day)
		if err != nil {
			resp.Error = jobError(err)
			return resp
		}
		resp.OK = true
		resp.Result = result

	case ActionBackfill:
		if req.ShopID == 0 || req.Month == "" {
			resp.Error = &apiErrors.APIError{Code: apiErrors.ErrMissingRequiredData, Message: "shop_id e month são obrigatórios para backfill"}
			return resp
		}
		if _, err := utils.ParseMonth(req.Month); err != nil {
			resp.Error = &apiErrors.APIError{Code: apiErrors.ErrInvalidFormat, Message: "month deve estar no formato 2006-01"}
			return resp
		}
		if err := services.OrderSyncService.TriggerBackfill(r.Context(), req.ShopID, req.Month); err != nil {
			resp.Error = jobError(err)
			return resp
		}
		resp.OK = true
		resp.Result = "checkpoint reposicionado para " + req.Month

	case ActionProcess:
		services.BudgetScheduleService.TriggerManualRun(r.Context())
		resp.OK = true
		resp.Result = "passada de regras disparada"

	case ActionRunNow:
		if req.ScheduleID == "" {
			resp.Error = &apiErrors.APIError{Code: apiErrors.ErrMissingRequiredData, Message: "schedule_id é obrigatório para run-now"}
			return resp
		}
		if err := services.BudgetScheduleService.ApplyRuleNow(r.Context(), req.ScheduleID); err != nil {
			resp.Error = jobError(err)
			return resp
		}
		resp.OK = true
		resp.Result = "regra aplicada"

	case ActionStatus:
		resp.OK = true
		resp.Result = map[string]any{
			"order_sync":       services.OrderSyncService.GetStatus(),
			"performance_sync": services.PerformanceSyncService.GetStatus(),
			"budget_schedule":  services.BudgetScheduleService.GetStatus(),
			"server_time":      time.Now().UTC(),
		}

	default:
		resp.Error = &apiErrors.APIError{
			Code:    apiErrors.ErrUnknownAction,
			Message: "Ação desconhecida: " + string(req.Action),
		}
	}

	return resp
}

func jobError(err error) *apiErrors.APIError {
	var authErr *shopeedomain.AuthError
	var rateErr *shopeedomain.RateLimitError
	var validationErr *shopeedomain.ValidationError

	code := apiErrors.ErrInternalServer
	switch {
	case errors.As(err, &authErr):
		code = apiErrors.ErrShopeeAuth
	case errors.As(err, &rateErr):
		code = apiErrors.ErrRateLimited
	case errors.As(err, &validationErr):
		code = apiErrors.ErrExternalService
	}

	apiErr := apiErrors.FromError(err, code)
	return &apiErr
}

func writeJobResponse(w http.ResponseWriter, resp *JobResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logrus.WithError(err).Error("Erro ao serializar resposta de job")
	}
}

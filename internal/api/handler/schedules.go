package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/kiendt120702/shopee-ads-sync/infrastructure/repository"
	"github.com/kiendt120702/shopee-ads-sync/pkg/apiErrors"
)

const defaultExecutionLogLimit = 50

// ListSchedules lista as regras de orçamento, opcionalmente por loja.
// As regras são criadas e editadas pelo painel; este endpoint é só leitura.
func ListSchedules(ruleRepo repository.ScheduleRuleRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var shopID int64
		if raw := r.URL.Query().Get("shop_id"); raw != "" {
			parsed, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "shop_id deve ser numérico", nil)
				return
			}
			shopID = parsed
		}

		var err error
		var rules any
		if shopID != 0 {
			rules, err = ruleRepo.ListByShop(r.Context(), shopID)
		} else {
			rules, err = ruleRepo.ListActive(r.Context())
		}
		if err != nil {
			logrus.Error("Erro ao listar regras de agendamento:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar regras de agendamento", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rules); err != nil {
			logrus.Error("Erro ao enviar resposta de regras:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ListScheduleExecutions lista o histórico de execuções de uma regra
func ListScheduleExecutions(logRepo repository.ExecutionLogRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scheduleID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if scheduleID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da regra não especificado", nil)
			return
		}

		limit := uint64(defaultExecutionLogLimit)
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser numérico", nil)
				return
			}
			limit = parsed
		}

		logs, err := logRepo.ListByScheduleID(r.Context(), scheduleID, limit)
		if err != nil {
			logrus.Error("Erro ao listar execuções da regra:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar execuções da regra", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(logs); err != nil {
			logrus.Error("Erro ao enviar resposta de execuções:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/kiendt120702/shopee-ads-sync/infrastructure/repository"
	"github.com/kiendt120702/shopee-ads-sync/pkg/apiErrors"
)

// ListShops lista as lojas ativas cadastradas
func ListShops(shopRepo repository.ShopRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shops, err := shopRepo.ListActive(r.Context())
		if err != nil {
			logrus.Error("Erro ao listar lojas:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar lojas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(shops); err != nil {
			logrus.Error("Erro ao enviar resposta de lojas:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetShopCheckpoint expõe o checkpoint de sincronização de uma loja
func GetShopCheckpoint(checkpointRepo repository.SyncCheckpointRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		shopID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da loja deve ser numérico", nil)
			return
		}

		checkpoint, err := checkpointRepo.GetByShopID(r.Context(), shopID)
		if err != nil {
			logrus.Error("Erro ao buscar checkpoint da loja:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar checkpoint da loja", nil)
			return
		}

		if checkpoint == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Loja ainda sem checkpoint de sincronização", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(checkpoint); err != nil {
			logrus.Error("Erro ao enviar resposta de checkpoint:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-ops-api/internal/domain"
	"github.com/vfg2006/ads-ops-api/internal/usecases/accountmapping"
	"github.com/vfg2006/ads-ops-api/internal/usecases/bulkops"
	"github.com/vfg2006/ads-ops-api/pkg/apiErrors"
)

func AssignCampaignAccount(service accountmapping.AccountMappingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AssignCampaignAccount")

		var req domain.AssignAccountRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		mapping, err := service.Assign(r.Context(), req)
		if err != nil {
			writeMappingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, mapping)
	}
}

func BulkAssignCampaignAccount(runner bulkops.BulkOperations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - BulkAssignCampaignAccount")

		var req domain.BulkAssignAccountRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		if len(req.CampaignIDs) == 0 || req.AccountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "campaign_ids e account_id são obrigatórios", nil)
			return
		}

		writeJSON(w, http.StatusOK, runner.AssignAccount(r.Context(), req))
	}
}

// ListCampaignAccounts aceita campaign_ids separados por vírgula
func ListCampaignAccounts(service accountmapping.AccountMappingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ids []string
		for _, id := range strings.Split(r.URL.Query().Get("campaign_ids"), ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
		if len(ids) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "campaign_ids é obrigatório", nil)
			return
		}

		mappings, err := service.List(r.Context(), ids)
		if err != nil {
			writeMappingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, mappings)
	}
}

func writeMappingError(w http.ResponseWriter, err error) {
	var mappingErr *accountmapping.MappingError
	if errors.As(err, &mappingErr) && mappingErr.Code != "" {
		apiErrors.WriteError(w, mappingErr.Code, mappingErr.Error(), nil)
		return
	}

	logrus.WithError(err).Error("Erro no mapeamento de contas")
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar mapeamento de contas", nil)
}

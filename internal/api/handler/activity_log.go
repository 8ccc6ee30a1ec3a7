package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-ops-api/internal/api/handler/router"
	"github.com/vfg2006/ads-ops-api/internal/domain"
	"github.com/vfg2006/ads-ops-api/internal/usecases/activitylog"
	"github.com/vfg2006/ads-ops-api/pkg/apiErrors"
)

// ListActivityLog devolve o histórico de mutações da entidade, do mais recente ao mais antigo
func ListActivityLog(service activitylog.ActivityLogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListActivityLog")

		var limit uint64
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Limite inválido", nil)
				return
			}
			limit = parsed
		}

		entries, err := service.List(r.Context(), router.Param(r, "entityId"), limit)
		if err != nil {
			if errors.Is(err, domain.ErrValidation) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
				return
			}
			logrus.WithError(err).Error("Erro ao listar histórico de atividades")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar histórico", nil)
			return
		}

		writeJSON(w, http.StatusOK, entries)
	}
}

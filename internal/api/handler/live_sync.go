package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-ops-api/internal/domain"
	"github.com/vfg2006/ads-ops-api/internal/platform"
	"github.com/vfg2006/ads-ops-api/internal/scheduler"
	"github.com/vfg2006/ads-ops-api/pkg/apiErrors"
)

type SyncAccepted struct {
	Platform   domain.Platform `json:"platform"`
	Status     string          `json:"status"`
	DeliveryID string          `json:"delivery_id,omitempty"`
}

// TriggerSync enfileira o resync da plataforma e responde imediatamente
func TriggerSync(sync scheduler.SyncService, adapters platform.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - TriggerSync")

		p, ok := configuredPlatform(w, r, adapters)
		if !ok {
			return
		}

		sync.Trigger(p)
		writeJSON(w, http.StatusAccepted, SyncAccepted{Platform: p, Status: "accepted"})
	}
}

func SyncStatus(sync scheduler.SyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, sync.GetStatus())
	}
}

// PlatformWebhook recebe notificações de alteração das plataformas. A assinatura é
// verificada pelo middleware; o conteúdo só serve de gatilho para o resync.
func PlatformWebhook(sync scheduler.SyncService, adapters platform.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := configuredPlatform(w, r, adapters)
		if !ok {
			return
		}

		deliveryID := uuid.NewString()
		logrus.WithFields(logrus.Fields{
			"platform":    p,
			"delivery_id": deliveryID,
		}).Info("Webhook recebido, resync agendado")

		sync.Trigger(p)
		writeJSON(w, http.StatusAccepted, SyncAccepted{Platform: p, Status: "accepted", DeliveryID: deliveryID})
	}
}

func configuredPlatform(w http.ResponseWriter, r *http.Request, adapters platform.Resolver) (domain.Platform, bool) {
	p, err := pathPlatform(r)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return "", false
	}

	if _, err := adapters.Adapter(p); err != nil {
		writeLiveError(w, err)
		return "", false
	}

	return p, true
}

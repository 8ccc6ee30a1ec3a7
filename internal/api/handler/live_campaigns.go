package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-ops-api/internal/api/handler/router"
	"github.com/vfg2006/ads-ops-api/internal/domain"
	"github.com/vfg2006/ads-ops-api/internal/usecases/livecampaign"
	"github.com/vfg2006/ads-ops-api/pkg/apiErrors"
)

// ListLiveCampaigns lista as campanhas de uma ou de todas as plataformas.
// Plataformas que falharem ficam de fora e são informadas no header X-Platform-Errors.
func ListLiveCampaigns(service livecampaign.LiveCampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListLiveCampaigns")

		var filter domain.CampaignFilter
		if raw := r.URL.Query().Get("platform"); raw != "" {
			p, err := domain.ParsePlatform(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
				return
			}
			filter.Platform = p
		}

		rng, err := parseDateRange(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Período inválido, use YYYY-MM-DD", nil)
			return
		}
		filter.DateRange = rng
		filter.AccountID = r.URL.Query().Get("account")

		result, err := service.ListCampaigns(r.Context(), filter)
		if err != nil {
			writeLiveError(w, err)
			return
		}

		setPlatformErrors(w, result.PlatformErrors)
		writeJSON(w, http.StatusOK, result.Campaigns)
	}
}

func ListLiveAdsets(service livecampaign.LiveCampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListLiveAdsets")

		key, ok := liveKey(w, r, domain.EntityTypeCampaign, "campaignId")
		if !ok {
			return
		}

		rng, err := parseDateRange(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Período inválido, use YYYY-MM-DD", nil)
			return
		}

		adsets, err := service.ListAdsets(r.Context(), key, rng, parseRefresh(r))
		if err != nil {
			writeLiveError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, adsets)
	}
}

func ListLiveAds(service livecampaign.LiveCampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListLiveAds")

		key, ok := liveKey(w, r, domain.EntityTypeAdset, "adsetId")
		if !ok {
			return
		}

		rng, err := parseDateRange(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Período inválido, use YYYY-MM-DD", nil)
			return
		}

		ads, err := service.ListAds(r.Context(), key, rng, parseRefresh(r))
		if err != nil {
			writeLiveError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ads)
	}
}

// Collapse descarta a subárvore carregada e cancela expansões em andamento
func Collapse(service livecampaign.LiveCampaignService, entityType domain.EntityType, param string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, ok := liveKey(w, r, entityType, param)
		if !ok {
			return
		}

		if err := service.Collapse(key); err != nil {
			writeLiveError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// liveKey monta a chave da entidade a partir da rota, escrevendo o erro quando inválida
func liveKey(w http.ResponseWriter, r *http.Request, entityType domain.EntityType, param string) (domain.EntityKey, bool) {
	p, err := pathPlatform(r)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return domain.EntityKey{}, false
	}

	key := domain.NewEntityKey(p, entityType, router.Param(r, param))
	if err := key.Validate(); err != nil {
		writeLiveError(w, domain.WrapLiveError(err, key, ""))
		return domain.EntityKey{}, false
	}

	return key, true
}

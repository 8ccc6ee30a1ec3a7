package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-ops-api/internal/api/handler/router"
	"github.com/vfg2006/ads-ops-api/internal/domain"
	"github.com/vfg2006/ads-ops-api/internal/platform"
	"github.com/vfg2006/ads-ops-api/pkg/apiErrors"
	"github.com/vfg2006/ads-ops-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// HeaderPlatformErrors lista as plataformas que falharam numa listagem parcial
const HeaderPlatformErrors = "X-Platform-Errors"

type liveErrorDetails struct {
	Platform   domain.Platform   `json:"platform,omitempty"`
	EntityType domain.EntityType `json:"entity_type,omitempty"`
	EntityID   string            `json:"entity_id,omitempty"`
	Action     domain.Action     `json:"action,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

func decodeBody(r *http.Request, out any) error {
	if r.Body == nil {
		return errors.New("empty body")
	}
	return json.NewDecoder(r.Body).Decode(out)
}

// parseDateRange lê start e end (YYYY-MM-DD) da query
func parseDateRange(r *http.Request) (domain.DateRange, error) {
	start, err := utils.ParseOptionalDate(r.URL.Query().Get("start"))
	if err != nil {
		return domain.DateRange{}, err
	}
	end, err := utils.ParseOptionalDate(r.URL.Query().Get("end"))
	if err != nil {
		return domain.DateRange{}, err
	}
	if start != nil && end != nil && end.Before(*start) {
		return domain.DateRange{}, errors.New("end before start")
	}
	return domain.DateRange{Start: start, End: end}, nil
}

func parseRefresh(r *http.Request) bool {
	refresh, _ := strconv.ParseBool(r.URL.Query().Get("refresh"))
	return refresh
}

func pathPlatform(r *http.Request) (domain.Platform, error) {
	return domain.ParsePlatform(router.Param(r, "platform"))
}

func pathEntityType(r *http.Request) (domain.EntityType, error) {
	return domain.ParseEntityType(router.Param(r, "entityType"))
}

// liveErrorCode traduz a taxonomia de erros das campanhas ao vivo para os códigos da API
func liveErrorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrBusy):
		return apiErrors.ErrLiveBusy
	case errors.Is(err, platform.ErrPlatformNotConfigured):
		return apiErrors.ErrPlatformDisabled
	case errors.Is(err, domain.ErrUnsupported):
		return apiErrors.ErrLiveUnsupported
	case errors.Is(err, domain.ErrParentNotExpanded):
		return apiErrors.ErrLiveNotExpanded
	case errors.Is(err, domain.ErrValidation):
		return apiErrors.ErrLiveValidation
	case errors.Is(err, domain.ErrConflict):
		return apiErrors.ErrLiveConflict
	case errors.Is(err, domain.ErrRateLimited):
		return apiErrors.ErrLiveRateLimited
	case errors.Is(err, domain.ErrEntityNotFound):
		return apiErrors.ErrNotFound
	case errors.Is(err, domain.ErrUpstream),
		errors.Is(err, domain.ErrSync),
		errors.Is(err, context.DeadlineExceeded):
		return apiErrors.ErrLiveUpstream
	default:
		return apiErrors.ErrInternalServer
	}
}

func writeLiveError(w http.ResponseWriter, err error) {
	code := liveErrorCode(err)

	var details *liveErrorDetails
	var liveErr *domain.LiveError
	if errors.As(err, &liveErr) {
		details = &liveErrorDetails{
			Platform:   liveErr.Platform,
			EntityType: liveErr.EntityType,
			EntityID:   liveErr.EntityID,
			Action:     liveErr.Action,
		}
	}

	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logrus.WithError(err).Error("Erro nas campanhas ao vivo")
	}

	apiErrors.WriteError(w, code, err.Error(), details)
}

// setPlatformErrors marca a resposta como parcial, na ordem de exibição das plataformas
func setPlatformErrors(w http.ResponseWriter, errs map[domain.Platform]error) {
	if len(errs) == 0 {
		return
	}

	failed := make([]string, 0, len(errs))
	for _, p := range domain.Platforms {
		if err, ok := errs[p]; ok {
			failed = append(failed, string(p))
			logrus.WithFields(logrus.Fields{
				"platform": p,
				"error":    err,
			}).Warn("Plataforma omitida da listagem")
		}
	}
	w.Header().Set(HeaderPlatformErrors, strings.Join(failed, ","))
}

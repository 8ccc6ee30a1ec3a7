package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-ops-api/internal/api/handler/router"
	"github.com/vfg2006/ads-ops-api/internal/domain"
	"github.com/vfg2006/ads-ops-api/internal/usecases/bulkops"
	"github.com/vfg2006/ads-ops-api/internal/usecases/mutating"
	"github.com/vfg2006/ads-ops-api/pkg/apiErrors"
	"github.com/vfg2006/ads-ops-api/pkg/middleware"
)

type StatusRequest struct {
	Enable *bool `json:"enable"`
}

type BudgetRequest struct {
	NewBudgetCents      *int64            `json:"new_budget_cents"`
	PreviousBudgetCents *int64            `json:"previous_budget_cents"`
	EntityType          domain.EntityType `json:"entity_type"`
}

type BidCapRequest struct {
	NewBidCapCents *int64 `json:"new_bid_cap_cents"`
}

type DuplicateRequest struct {
	TargetParentID string          `json:"target_parent_id"`
	Platform       domain.Platform `json:"platform"`
}

type MutationResponse struct {
	Key           string               `json:"entity_key"`
	MutationState domain.MutationState `json:"mutation_state"`
}

func SetLiveStatus(service mutating.MutationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SetLiveStatus")

		p, err := pathPlatform(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}
		entityType, err := pathEntityType(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		var req StatusRequest
		if err := decodeBody(r, &req); err != nil || req.Enable == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo enable é obrigatório", nil)
			return
		}

		key := domain.NewEntityKey(p, entityType, router.Param(r, "entityId"))
		err = service.SetStatus(r.Context(), mutating.StatusRequest{
			Key:    key,
			Enable: *req.Enable,
			UserID: middleware.UserIDFromContext(r.Context()),
		})
		if err != nil {
			writeLiveError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MutationResponse{Key: key.String(), MutationState: service.State(key)})
	}
}

// SetLiveBudget altera o orçamento diário. Sem entity_type a entidade é tratada como conjunto de anúncios.
func SetLiveBudget(service mutating.MutationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SetLiveBudget")

		p, err := pathPlatform(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		var req BudgetRequest
		if err := decodeBody(r, &req); err != nil || req.NewBudgetCents == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo new_budget_cents é obrigatório", nil)
			return
		}

		entityType := domain.EntityTypeAdset
		if req.EntityType != "" {
			entityType, err = domain.ParseEntityType(string(req.EntityType))
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
				return
			}
		}

		key := domain.NewEntityKey(p, entityType, router.Param(r, "entityId"))
		err = service.SetBudget(r.Context(), mutating.BudgetRequest{
			Key:                 key,
			NewBudgetCents:      *req.NewBudgetCents,
			PreviousBudgetCents: req.PreviousBudgetCents,
			UserID:              middleware.UserIDFromContext(r.Context()),
		})
		if err != nil {
			writeLiveError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MutationResponse{Key: key.String(), MutationState: service.State(key)})
	}
}

func SetLiveBidCap(service mutating.MutationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SetLiveBidCap")

		p, err := pathPlatform(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		var req BidCapRequest
		if err := decodeBody(r, &req); err != nil || req.NewBidCapCents == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo new_bid_cap_cents é obrigatório", nil)
			return
		}

		key := domain.NewEntityKey(p, domain.EntityTypeAdset, router.Param(r, "entityId"))
		err = service.SetBidCap(r.Context(), mutating.BidCapRequest{
			Key:            key,
			NewBidCapCents: *req.NewBidCapCents,
			UserID:         middleware.UserIDFromContext(r.Context()),
		})
		if err != nil {
			writeLiveError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MutationResponse{Key: key.String(), MutationState: service.State(key)})
	}
}

// DuplicateLiveEntity cria a cópia pausada. A cópia aparece na árvore depois do resync.
func DuplicateLiveEntity(service mutating.MutationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DuplicateLiveEntity")

		entityType, err := pathEntityType(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		var req DuplicateRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		p, err := domain.ParsePlatform(string(req.Platform))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo platform é obrigatório", nil)
			return
		}

		result, err := service.Duplicate(r.Context(), mutating.DuplicateRequest{
			Key:            domain.NewEntityKey(p, entityType, router.Param(r, "entityId")),
			TargetParentID: req.TargetParentID,
			UserID:         middleware.UserIDFromContext(r.Context()),
		})
		if err != nil {
			writeLiveError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// BulkSetStatus pausa ou ativa várias campanhas; falhas individuais não interrompem o lote
func BulkSetStatus(runner bulkops.BulkOperations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - BulkSetStatus")

		var req domain.BulkStatusRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		if len(req.Campaigns) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nenhuma campanha informada", nil)
			return
		}

		result := runner.SetStatus(r.Context(), req.Campaigns, req.Enable, middleware.UserIDFromContext(r.Context()))
		writeJSON(w, http.StatusOK, result)
	}
}

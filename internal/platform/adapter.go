package platform

import (
	"context"

	"github.com/vfg2006/ads-ops-api/internal/domain"
)

//go:generate mockgen -source=adapter.go -destination=mocks/mock_adapter.go -package=mocks

// Adapter traduz o modelo interno para a API de uma plataforma de anúncios.
// Orçamentos e lances são sempre em centavos.
type Adapter interface {
	Platform() domain.Platform
	ListCampaigns(ctx context.Context, filter domain.CampaignFilter) ([]domain.LiveCampaign, error)
	ListAdsets(ctx context.Context, campaignID string, rng domain.DateRange) ([]domain.LiveAdset, error)
	ListAds(ctx context.Context, adsetID string, rng domain.DateRange) ([]domain.LiveAd, error)
	// SetEntityStatus é idempotente: habilitar uma entidade ativa não é erro
	SetEntityStatus(ctx context.Context, entityType domain.EntityType, entityID string, enable bool) error
	// SetBudget devolve ErrConflict quando previousBudgetCents não bate com o valor atual na plataforma
	SetBudget(ctx context.Context, entityType domain.EntityType, entityID string, newBudgetCents int64, previousBudgetCents *int64) error
	SetBidCap(ctx context.Context, entityID string, newBidCapCents int64) error
	Duplicate(ctx context.Context, entityType domain.EntityType, entityID string, targetParentID string) (string, error)
}

// Resolver localiza o adaptador de uma plataforma
type Resolver interface {
	Adapter(p domain.Platform) (Adapter, error)
	Platforms() []domain.Platform
}

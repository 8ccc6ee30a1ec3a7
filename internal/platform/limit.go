package platform

import (
	"context"

	"github.com/vfg2006/ads-ops-api/internal/domain"
	"golang.org/x/sync/semaphore"
)

// limited limita o número de chamadas simultâneas a uma plataforma
type limited struct {
	next Adapter
	sem  *semaphore.Weighted
}

// WithConcurrencyLimit envolve o adaptador com um semáforo de n chamadas.
// n <= 0 devolve o adaptador sem limite.
func WithConcurrencyLimit(a Adapter, n int64) Adapter {
	if n <= 0 {
		return a
	}
	return &limited{next: a, sem: semaphore.NewWeighted(n)}
}

func (l *limited) acquire(ctx context.Context) (func(), error) {
	if err := l.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	return func() { l.sem.Release(1) }, nil
}

func (l *limited) Platform() domain.Platform {
	return l.next.Platform()
}

func (l *limited) ListCampaigns(ctx context.Context, filter domain.CampaignFilter) ([]domain.LiveCampaign, error) {
	release, err := l.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	return l.next.ListCampaigns(ctx, filter)
}

func (l *limited) ListAdsets(ctx context.Context, campaignID string, rng domain.DateRange) ([]domain.LiveAdset, error) {
	release, err := l.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	return l.next.ListAdsets(ctx, campaignID, rng)
}

func (l *limited) ListAds(ctx context.Context, adsetID string, rng domain.DateRange) ([]domain.LiveAd, error) {
	release, err := l.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	return l.next.ListAds(ctx, adsetID, rng)
}

func (l *limited) SetEntityStatus(ctx context.Context, entityType domain.EntityType, entityID string, enable bool) error {
	release, err := l.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	return l.next.SetEntityStatus(ctx, entityType, entityID, enable)
}

func (l *limited) SetBudget(ctx context.Context, entityType domain.EntityType, entityID string, newBudgetCents int64, previousBudgetCents *int64) error {
	release, err := l.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	return l.next.SetBudget(ctx, entityType, entityID, newBudgetCents, previousBudgetCents)
}

func (l *limited) SetBidCap(ctx context.Context, entityID string, newBidCapCents int64) error {
	release, err := l.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	return l.next.SetBidCap(ctx, entityID, newBidCapCents)
}

func (l *limited) Duplicate(ctx context.Context, entityType domain.EntityType, entityID string, targetParentID string) (string, error) {
	release, err := l.acquire(ctx)
	if err != nil {
		return "", err
	}
	defer release()

	return l.next.Duplicate(ctx, entityType, entityID, targetParentID)
}

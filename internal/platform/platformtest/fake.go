// Package platformtest fornece um adaptador em memória para testes de integração entre componentes.
package platformtest

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/vfg2006/ads-ops-api/internal/domain"
)

type Fake struct {
	mu        sync.Mutex
	platform  domain.Platform
	campaigns map[string]*domain.LiveCampaign
	adsets    map[string]*domain.LiveAdset
	ads       map[string]*domain.LiveAd
	calls     map[string]int
	failures  map[string]error
	gate      chan struct{}
	nextID    int

	// IgnoreCancel faz as listagens retornarem dados mesmo com o contexto cancelado
	IgnoreCancel bool
}

func NewFake(p domain.Platform) *Fake {
	return &Fake{
		platform:  p,
		campaigns: make(map[string]*domain.LiveCampaign),
		adsets:    make(map[string]*domain.LiveAdset),
		ads:       make(map[string]*domain.LiveAd),
		calls:     make(map[string]int),
		failures:  make(map[string]error),
	}
}

func (f *Fake) AddCampaign(id string, budgetCents int64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.campaigns[id] = &domain.LiveCampaign{
		CampaignID:       id,
		Platform:         f.platform,
		CampaignName:     "campaign " + id,
		Status:           domain.EntityStatusActive,
		DailyBudgetCents: domain.Int64Ptr(budgetCents),
	}
}

func (f *Fake) AddAdset(campaignID, id string, budgetCents int64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.adsets[id] = &domain.LiveAdset{
		AdsetID:          id,
		CampaignID:       campaignID,
		Platform:         f.platform,
		AdsetName:        "adset " + id,
		Status:           domain.EntityStatusActive,
		DailyBudgetCents: domain.Int64Ptr(budgetCents),
	}
}

func (f *Fake) AddAd(adsetID, id string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.ads[id] = &domain.LiveAd{
		AdID:     id,
		AdsetID:  adsetID,
		Platform: f.platform,
		AdName:   "ad " + id,
		Status:   domain.EntityStatusActive,
	}
}

// Block faz as listagens aguardarem até Release
func (f *Fake) Block() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gate = make(chan struct{})
}

func (f *Fake) Release() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gate != nil {
		close(f.gate)
		f.gate = nil
	}
}

// FailOn faz qualquer chamada envolvendo o id retornar err
func (f *Fake) FailOn(id string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[id] = err
}

func (f *Fake) Calls(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

// AdsetStatus lê o estado atual na "plataforma"
func (f *Fake) AdsetStatus(id string) domain.EntityStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.adsets[id]; ok {
		return a.Status
	}
	return domain.EntityStatusUnknown
}

func (f *Fake) begin(ctx context.Context, method, id string) error {
	f.mu.Lock()
	f.calls[method]++
	gate := f.gate
	err := f.failures[id]
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			if !f.IgnoreCancel {
				return ctx.Err()
			}
			<-gate
		}
	}

	return err
}

func (f *Fake) Platform() domain.Platform {
	return f.platform
}

func (f *Fake) ListCampaigns(ctx context.Context, _ domain.CampaignFilter) ([]domain.LiveCampaign, error) {
	if err := f.begin(ctx, "ListCampaigns", ""); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]domain.LiveCampaign, 0, len(f.campaigns))
	for _, c := range f.campaigns {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CampaignID < out[j].CampaignID })
	return out, nil
}

func (f *Fake) ListAdsets(ctx context.Context, campaignID string, _ domain.DateRange) ([]domain.LiveAdset, error) {
	if err := f.begin(ctx, "ListAdsets", campaignID); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]domain.LiveAdset, 0)
	for _, a := range f.adsets {
		if a.CampaignID == campaignID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AdsetID < out[j].AdsetID })
	return out, nil
}

func (f *Fake) ListAds(ctx context.Context, adsetID string, _ domain.DateRange) ([]domain.LiveAd, error) {
	if err := f.begin(ctx, "ListAds", adsetID); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]domain.LiveAd, 0)
	for _, a := range f.ads {
		if a.AdsetID == adsetID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AdID < out[j].AdID })
	return out, nil
}

func (f *Fake) SetEntityStatus(ctx context.Context, entityType domain.EntityType, entityID string, enable bool) error {
	if err := f.begin(ctx, "SetEntityStatus", entityID); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	status := domain.StatusFromEnabled(enable)
	switch entityType {
	case domain.EntityTypeCampaign:
		if c, ok := f.campaigns[entityID]; ok {
			c.Status = status
			return nil
		}
	case domain.EntityTypeAdset:
		if a, ok := f.adsets[entityID]; ok {
			a.Status = status
			return nil
		}
	case domain.EntityTypeAd:
		if a, ok := f.ads[entityID]; ok {
			a.Status = status
			return nil
		}
	}

	return fmt.Errorf("%w: %s %s", domain.ErrEntityNotFound, entityType, entityID)
}

func (f *Fake) SetBudget(ctx context.Context, entityType domain.EntityType, entityID string, newBudgetCents int64, previousBudgetCents *int64) error {
	if err := f.begin(ctx, "SetBudget", entityID); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	var current **int64
	switch entityType {
	case domain.EntityTypeCampaign:
		if c, ok := f.campaigns[entityID]; ok {
			current = &c.DailyBudgetCents
		}
	case domain.EntityTypeAdset:
		if a, ok := f.adsets[entityID]; ok {
			current = &a.DailyBudgetCents
		}
	}
	if current == nil {
		return fmt.Errorf("%w: %s %s", domain.ErrEntityNotFound, entityType, entityID)
	}

	if previousBudgetCents != nil && *current != nil && **current != *previousBudgetCents {
		return fmt.Errorf("%w: expected %d, platform has %d", domain.ErrConflict, *previousBudgetCents, **current)
	}

	*current = domain.Int64Ptr(newBudgetCents)
	return nil
}

func (f *Fake) SetBidCap(ctx context.Context, entityID string, newBidCapCents int64) error {
	if err := f.begin(ctx, "SetBidCap", entityID); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	a, ok := f.adsets[entityID]
	if !ok {
		return fmt.Errorf("%w: adset %s", domain.ErrEntityNotFound, entityID)
	}
	a.BidCapCents = domain.Int64Ptr(newBidCapCents)
	return nil
}

func (f *Fake) Duplicate(ctx context.Context, entityType domain.EntityType, entityID string, targetParentID string) (string, error) {
	if err := f.begin(ctx, "Duplicate", entityID); err != nil {
		return "", err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	newID := fmt.Sprintf("%s_copy_%d", entityID, f.nextID)

	switch entityType {
	case domain.EntityTypeAd:
		src, ok := f.ads[entityID]
		if !ok {
			return "", fmt.Errorf("%w: ad %s", domain.ErrEntityNotFound, entityID)
		}
		cp := *src
		cp.AdID = newID
		cp.Status = domain.EntityStatusPaused
		if targetParentID != "" {
			cp.AdsetID = targetParentID
		}
		f.ads[newID] = &cp
	case domain.EntityTypeAdset:
		src, ok := f.adsets[entityID]
		if !ok {
			return "", fmt.Errorf("%w: adset %s", domain.ErrEntityNotFound, entityID)
		}
		cp := *src
		cp.AdsetID = newID
		cp.Status = domain.EntityStatusPaused
		if targetParentID != "" {
			cp.CampaignID = targetParentID
		}
		f.adsets[newID] = &cp
	case domain.EntityTypeCampaign:
		src, ok := f.campaigns[entityID]
		if !ok {
			return "", fmt.Errorf("%w: campaign %s", domain.ErrEntityNotFound, entityID)
		}
		cp := *src
		cp.CampaignID = newID
		cp.Status = domain.EntityStatusPaused
		f.campaigns[newID] = &cp
	}

	return newID, nil
}

package newsbreak

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-ops-api/internal/config"
	"github.com/vfg2006/ads-ops-api/internal/domain"
)

const (
	statusOn  = "ON"
	statusOff = "OFF"
)

// NewsBreakIntegrator implementa platform.Adapter. Orçamento e lance ficam no conjunto de anúncios.
type NewsBreakIntegrator struct {
	cfg    config.NewsBreak
	client *Client
}

func New(cfg config.NewsBreak, client *Client) *NewsBreakIntegrator {
	return &NewsBreakIntegrator{cfg: cfg, client: client}
}

func (s *NewsBreakIntegrator) Platform() domain.Platform {
	return domain.PlatformNewsBreak
}

func (s *NewsBreakIntegrator) ListCampaigns(ctx context.Context, filter domain.CampaignFilter) ([]domain.LiveCampaign, error) {
	out := make([]domain.LiveCampaign, 0)

	for _, accountID := range s.cfg.AdAccountIDs {
		campaigns, err := s.client.ListCampaigns(ctx, accountID)
		if err != nil {
			return nil, errors.Wrapf(err, "listing campaigns of account %s", accountID)
		}

		ids := make([]string, 0, len(campaigns))
		for _, c := range campaigns {
			ids = append(ids, c.ID)
		}
		metrics := s.report(ctx, "CAMPAIGN", ids, filter.DateRange)

		for _, c := range campaigns {
			out = append(out, domain.LiveCampaign{
				CampaignID:   c.ID,
				Platform:     domain.PlatformNewsBreak,
				CampaignName: c.Name,
				AccountName:  accountID,
				Status:       mapStatus(c.Status),
				AdsetCount:   c.AdSetCount,
				Metrics:      metrics[c.ID],
			})
		}
	}

	return out, nil
}

func (s *NewsBreakIntegrator) ListAdsets(ctx context.Context, campaignID string, rng domain.DateRange) ([]domain.LiveAdset, error) {
	adSets, err := s.client.ListAdSets(ctx, campaignID)
	if err != nil {
		return nil, errors.Wrapf(err, "listing adsets of campaign %s", campaignID)
	}

	ids := make([]string, 0, len(adSets))
	for _, a := range adSets {
		ids = append(ids, a.ID)
	}
	metrics := s.report(ctx, "AD_SET", ids, rng)

	out := make([]domain.LiveAdset, 0, len(adSets))
	for _, a := range adSets {
		out = append(out, domain.LiveAdset{
			AdsetID:          a.ID,
			CampaignID:       a.CampaignID,
			Platform:         domain.PlatformNewsBreak,
			AdsetName:        a.Name,
			Status:           mapStatus(a.Status),
			DailyBudgetCents: positive(a.Budget),
			BidCapCents:      positive(a.BidRate),
			AdCount:          a.AdCount,
			Metrics:          metrics[a.ID],
		})
	}

	return out, nil
}

func (s *NewsBreakIntegrator) ListAds(ctx context.Context, adsetID string, rng domain.DateRange) ([]domain.LiveAd, error) {
	ads, err := s.client.ListAds(ctx, adsetID)
	if err != nil {
		return nil, errors.Wrapf(err, "listing ads of adset %s", adsetID)
	}

	ids := make([]string, 0, len(ads))
	for _, a := range ads {
		ids = append(ids, a.ID)
	}
	metrics := s.report(ctx, "AD", ids, rng)

	out := make([]domain.LiveAd, 0, len(ads))
	for _, a := range ads {
		out = append(out, domain.LiveAd{
			AdID:     a.ID,
			AdsetID:  a.AdSetID,
			Platform: domain.PlatformNewsBreak,
			AdName:   a.Name,
			Status:   mapStatus(a.Status),
			Metrics:  metrics[a.ID],
		})
	}

	return out, nil
}

func (s *NewsBreakIntegrator) SetEntityStatus(ctx context.Context, entityType domain.EntityType, entityID string, enable bool) error {
	status := statusOff
	if enable {
		status = statusOn
	}
	return s.client.UpdateStatus(ctx, resource(entityType), entityID, status)
}

func (s *NewsBreakIntegrator) SetBudget(ctx context.Context, entityType domain.EntityType, entityID string, newBudgetCents int64, previousBudgetCents *int64) error {
	if entityType != domain.EntityTypeAdset {
		return fmt.Errorf("%w: newsbreak budgets live on adsets", domain.ErrUnsupported)
	}

	if previousBudgetCents != nil {
		current, err := s.client.GetAdSet(ctx, entityID)
		if err != nil {
			return errors.Wrapf(err, "reading current budget of %s", entityID)
		}
		if current.Budget != *previousBudgetCents {
			return fmt.Errorf("%w: expected budget %d, platform has %d", domain.ErrConflict, *previousBudgetCents, current.Budget)
		}
	}

	return s.client.UpdateAdSet(ctx, entityID, map[string]any{"budget": newBudgetCents})
}

func (s *NewsBreakIntegrator) SetBidCap(ctx context.Context, entityID string, newBidCapCents int64) error {
	return s.client.UpdateAdSet(ctx, entityID, map[string]any{"bidRate": newBidCapCents})
}

func (s *NewsBreakIntegrator) Duplicate(ctx context.Context, entityType domain.EntityType, entityID string, targetParentID string) (string, error) {
	return s.client.Copy(ctx, resource(entityType), entityID, targetParentID)
}

func (s *NewsBreakIntegrator) report(ctx context.Context, level string, ids []string, rng domain.DateRange) map[string]domain.Metrics {
	out := make(map[string]domain.Metrics)
	if len(ids) == 0 {
		return out
	}

	start, end := rng.Resolve(time.Now())
	rows, err := s.client.Report(ctx, level, ids, start.Format(time.DateOnly), end.Format(time.DateOnly))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"platform": domain.PlatformNewsBreak,
			"level":    level,
			"error":    err,
		}).Warn("live: failed to get newsbreak report")
		return out
	}

	for _, r := range rows {
		out[r.ID] = out[r.ID].Add(domain.Metrics{
			Spend:           r.Cost,
			Clicks:          r.Clicks,
			Impressions:     r.Impressions,
			Conversions:     r.Conversions,
			ConversionValue: r.Value,
		})
	}
	return out
}

func resource(entityType domain.EntityType) string {
	switch entityType {
	case domain.EntityTypeAdset:
		return "adSet"
	case domain.EntityTypeAd:
		return "ad"
	default:
		return "campaign"
	}
}

func mapStatus(status string) domain.EntityStatus {
	switch status {
	case statusOn:
		return domain.EntityStatusActive
	case statusOff:
		return domain.EntityStatusPaused
	default:
		return domain.EntityStatusUnknown
	}
}

func positive(v int64) *int64 {
	if v <= 0 {
		return nil
	}
	return domain.Int64Ptr(v)
}

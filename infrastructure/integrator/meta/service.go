package meta

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-ops-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-ops-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-ops-api/internal/config"
	"github.com/vfg2006/ads-ops-api/internal/domain"
)

// MetaIntegrator implementa platform.Adapter sobre a Graph API
type MetaIntegrator struct {
	cfg    config.Meta
	Client metaclient.Client
}

func New(cfg config.Meta, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *MetaIntegrator) Platform() domain.Platform {
	return domain.PlatformMeta
}

func (s *MetaIntegrator) ListCampaigns(ctx context.Context, filter domain.CampaignFilter) ([]domain.LiveCampaign, error) {
	out := make([]domain.LiveCampaign, 0)

	for _, accountID := range s.cfg.AdAccountIDs {
		accountName := accountID
		if account, err := s.Client.GetAdAccount(ctx, accountID); err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"error":      err,
			}).Warn("live: failed to get meta ad account name")
		} else if account.Name != "" {
			accountName = account.Name
		}

		campaigns, err := s.Client.ListCampaigns(ctx, accountID, filter.DateRange)
		if err != nil {
			return nil, errors.Wrapf(err, "listing campaigns of account %s", accountID)
		}

		for _, c := range campaigns {
			out = append(out, s.factoryCampaign(c, accountName))
		}
	}

	logrus.WithFields(logrus.Fields{
		"accounts":  len(s.cfg.AdAccountIDs),
		"campaigns": len(out),
	}).Debug("live: meta campaigns listed")

	return out, nil
}

func (s *MetaIntegrator) ListAdsets(ctx context.Context, campaignID string, rng domain.DateRange) ([]domain.LiveAdset, error) {
	adSets, err := s.Client.ListAdSets(ctx, campaignID, rng)
	if err != nil {
		return nil, errors.Wrapf(err, "listing adsets of campaign %s", campaignID)
	}

	out := make([]domain.LiveAdset, 0, len(adSets))
	for _, a := range adSets {
		adCount := 0
		if a.Ads != nil {
			adCount = a.Ads.Summary.TotalCount
		}

		out = append(out, domain.LiveAdset{
			AdsetID:          a.ID,
			CampaignID:       a.CampaignID,
			Platform:         domain.PlatformMeta,
			AdsetName:        a.Name,
			Status:           mapStatus(a.Status),
			DailyBudgetCents: metadomain.ParseCents(a.DailyBudget),
			BidCapCents:      a.BidAmount,
			AdCount:          adCount,
			Metrics:          a.Insights.Metrics(s.cfg.ConversionActionTypes),
		})
	}

	return out, nil
}

func (s *MetaIntegrator) ListAds(ctx context.Context, adsetID string, rng domain.DateRange) ([]domain.LiveAd, error) {
	ads, err := s.Client.ListAds(ctx, adsetID, rng)
	if err != nil {
		return nil, errors.Wrapf(err, "listing ads of adset %s", adsetID)
	}

	out := make([]domain.LiveAd, 0, len(ads))
	for _, a := range ads {
		out = append(out, domain.LiveAd{
			AdID:     a.ID,
			AdsetID:  a.AdSetID,
			Platform: domain.PlatformMeta,
			AdName:   a.Name,
			Status:   mapStatus(a.Status),
			Metrics:  a.Insights.Metrics(s.cfg.ConversionActionTypes),
		})
	}

	return out, nil
}

func (s *MetaIntegrator) SetEntityStatus(ctx context.Context, _ domain.EntityType, entityID string, enable bool) error {
	fields := url.Values{}
	fields.Set("status", string(domain.StatusFromEnabled(enable)))

	return s.Client.Update(ctx, entityID, fields)
}

func (s *MetaIntegrator) SetBudget(ctx context.Context, entityType domain.EntityType, entityID string, newBudgetCents int64, previousBudgetCents *int64) error {
	if entityType == domain.EntityTypeAd {
		return fmt.Errorf("%w: ads have no budget", domain.ErrValidation)
	}

	if previousBudgetCents != nil {
		current, err := s.Client.GetDailyBudget(ctx, entityID)
		if err != nil {
			return errors.Wrapf(err, "reading current budget of %s", entityID)
		}
		if current == nil {
			return fmt.Errorf("%w: expected budget %d, platform has no daily budget", domain.ErrConflict, *previousBudgetCents)
		}
		if *current != *previousBudgetCents {
			return fmt.Errorf("%w: expected budget %d, platform has %d", domain.ErrConflict, *previousBudgetCents, *current)
		}
	}

	fields := url.Values{}
	fields.Set("daily_budget", strconv.FormatInt(newBudgetCents, 10))

	return s.Client.Update(ctx, entityID, fields)
}

func (s *MetaIntegrator) SetBidCap(ctx context.Context, entityID string, newBidCapCents int64) error {
	fields := url.Values{}
	fields.Set("bid_amount", strconv.FormatInt(newBidCapCents, 10))

	return s.Client.Update(ctx, entityID, fields)
}

// Duplicate cria a cópia pausada; sem destino a cópia fica sob o mesmo pai
func (s *MetaIntegrator) Duplicate(ctx context.Context, entityType domain.EntityType, entityID string, targetParentID string) (string, error) {
	fields := url.Values{}
	fields.Set("status_option", "PAUSED")

	switch entityType {
	case domain.EntityTypeCampaign:
		fields.Set("deep_copy", "true")
	case domain.EntityTypeAdset:
		fields.Set("deep_copy", "true")
		if targetParentID != "" {
			fields.Set("campaign_id", targetParentID)
		}
	case domain.EntityTypeAd:
		if targetParentID != "" {
			fields.Set("adset_id", targetParentID)
		}
	}

	return s.Client.Copy(ctx, entityID, fields)
}

func (s *MetaIntegrator) factoryCampaign(c metadomain.Campaign, accountName string) domain.LiveCampaign {
	campaign := domain.LiveCampaign{
		CampaignID:       c.ID,
		Platform:         domain.PlatformMeta,
		CampaignName:     c.Name,
		AccountName:      accountName,
		Status:           mapStatus(c.Status),
		DailyBudgetCents: metadomain.ParseCents(c.DailyBudget),
		Metrics:          c.Insights.Metrics(s.cfg.ConversionActionTypes),
	}
	if c.AdSets != nil {
		campaign.AdsetCount = c.AdSets.Summary.TotalCount
	}
	if c.Ads != nil {
		campaign.AdCount = c.Ads.Summary.TotalCount
	}

	return campaign
}

func mapStatus(status string) domain.EntityStatus {
	switch status {
	case "ACTIVE":
		return domain.EntityStatusActive
	case "PAUSED", "CAMPAIGN_PAUSED", "ADSET_PAUSED":
		return domain.EntityStatusPaused
	default:
		return domain.EntityStatusUnknown
	}
}

package tiktok

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	tiktokdomain "github.com/vfg2006/ads-ops-api/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/ads-ops-api/infrastructure/integrator/tiktok/tiktokclient"
	"github.com/vfg2006/ads-ops-api/internal/config"
	"github.com/vfg2006/ads-ops-api/internal/domain"
	"github.com/vfg2006/ads-ops-api/pkg/utils"
)

// TikTokIntegrator implementa platform.Adapter sobre a Business API.
// Como toda chamada exige o advertiser_id, o dono de cada entidade listada fica em cache.
type TikTokIntegrator struct {
	cfg    config.TikTok
	Client tiktokclient.Client

	mu         sync.RWMutex
	advertiser map[string]string
}

func New(cfg config.TikTok, client tiktokclient.Client) *TikTokIntegrator {
	return &TikTokIntegrator{
		cfg:        cfg,
		Client:     client,
		advertiser: make(map[string]string),
	}
}

func (s *TikTokIntegrator) Platform() domain.Platform {
	return domain.PlatformTikTok
}

func (s *TikTokIntegrator) ListCampaigns(ctx context.Context, filter domain.CampaignFilter) ([]domain.LiveCampaign, error) {
	out := make([]domain.LiveCampaign, 0)

	for _, advertiserID := range s.cfg.AdvertiserIDs {
		campaigns, err := s.Client.ListCampaigns(ctx, advertiserID, nil)
		if err != nil {
			return nil, errors.Wrapf(err, "listing campaigns of advertiser %s", advertiserID)
		}

		metrics := s.report(ctx, advertiserID, tiktokclient.ReportLevelCampaign, filter.DateRange)

		for _, c := range campaigns {
			s.remember(c.CampaignID, advertiserID)
			out = append(out, domain.LiveCampaign{
				CampaignID:       c.CampaignID,
				Platform:         domain.PlatformTikTok,
				CampaignName:     c.CampaignName,
				AccountName:      advertiserID,
				Status:           mapStatus(c.OperationStatus),
				DailyBudgetCents: dailyBudget(c.BudgetMode, c.Budget),
				Metrics:          metrics[c.CampaignID],
			})
		}
	}

	return out, nil
}

func (s *TikTokIntegrator) ListAdsets(ctx context.Context, campaignID string, rng domain.DateRange) ([]domain.LiveAdset, error) {
	advertiserID, err := s.owner(campaignID)
	if err != nil {
		return nil, err
	}

	groups, err := s.Client.ListAdGroups(ctx, advertiserID, campaignID, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "listing adgroups of campaign %s", campaignID)
	}

	metrics := s.report(ctx, advertiserID, tiktokclient.ReportLevelAdGroup, rng)

	out := make([]domain.LiveAdset, 0, len(groups))
	for _, g := range groups {
		s.remember(g.AdGroupID, advertiserID)

		var bidCap *int64
		if g.BidPrice > 0 {
			bidCap = domain.Int64Ptr(utils.UnitsToCents(g.BidPrice))
		}

		out = append(out, domain.LiveAdset{
			AdsetID:          g.AdGroupID,
			CampaignID:       g.CampaignID,
			Platform:         domain.PlatformTikTok,
			AdsetName:        g.AdGroupName,
			Status:           mapStatus(g.OperationStatus),
			DailyBudgetCents: dailyBudget(g.BudgetMode, g.Budget),
			BidCapCents:      bidCap,
			Metrics:          metrics[g.AdGroupID],
		})
	}

	return out, nil
}

func (s *TikTokIntegrator) ListAds(ctx context.Context, adsetID string, rng domain.DateRange) ([]domain.LiveAd, error) {
	advertiserID, err := s.owner(adsetID)
	if err != nil {
		return nil, err
	}

	ads, err := s.Client.ListAds(ctx, advertiserID, adsetID)
	if err != nil {
		return nil, errors.Wrapf(err, "listing ads of adgroup %s", adsetID)
	}

	metrics := s.report(ctx, advertiserID, tiktokclient.ReportLevelAd, rng)

	out := make([]domain.LiveAd, 0, len(ads))
	for _, a := range ads {
		s.remember(a.AdID, advertiserID)
		out = append(out, domain.LiveAd{
			AdID:     a.AdID,
			AdsetID:  a.AdGroupID,
			Platform: domain.PlatformTikTok,
			AdName:   a.AdName,
			Status:   mapStatus(a.OperationStatus),
			Metrics:  metrics[a.AdID],
		})
	}

	return out, nil
}

func (s *TikTokIntegrator) SetEntityStatus(ctx context.Context, entityType domain.EntityType, entityID string, enable bool) error {
	advertiserID, err := s.owner(entityID)
	if err != nil {
		return err
	}

	return s.Client.UpdateStatus(ctx, advertiserID, entityType, entityID, enable)
}

func (s *TikTokIntegrator) SetBudget(ctx context.Context, entityType domain.EntityType, entityID string, newBudgetCents int64, previousBudgetCents *int64) error {
	advertiserID, err := s.owner(entityID)
	if err != nil {
		return err
	}

	if entityType == domain.EntityTypeAd {
		return fmt.Errorf("%w: ads have no budget", domain.ErrValidation)
	}

	if previousBudgetCents != nil {
		current, err := s.currentBudget(ctx, advertiserID, entityType, entityID)
		if err != nil {
			return err
		}
		if current == nil {
			return fmt.Errorf("%w: expected budget %d, platform has no daily budget", domain.ErrConflict, *previousBudgetCents)
		}
		if *current != *previousBudgetCents {
			return fmt.Errorf("%w: expected budget %d, platform has %d", domain.ErrConflict, *previousBudgetCents, *current)
		}
	}

	fields := map[string]any{"budget": utils.CentsToUnits(newBudgetCents)}

	switch entityType {
	case domain.EntityTypeCampaign:
		return s.Client.UpdateCampaign(ctx, advertiserID, entityID, fields)
	case domain.EntityTypeAdset:
		return s.Client.UpdateAdGroup(ctx, advertiserID, entityID, fields)
	default:
		return fmt.Errorf("%w: ads have no budget", domain.ErrValidation)
	}
}

func (s *TikTokIntegrator) SetBidCap(ctx context.Context, entityID string, newBidCapCents int64) error {
	advertiserID, err := s.owner(entityID)
	if err != nil {
		return err
	}

	return s.Client.UpdateAdGroup(ctx, advertiserID, entityID, map[string]any{
		"bid_price": utils.CentsToUnits(newBidCapCents),
	})
}

// Duplicate só é suportado para campanhas, via tarefa de cópia
func (s *TikTokIntegrator) Duplicate(ctx context.Context, entityType domain.EntityType, entityID string, _ string) (string, error) {
	if entityType != domain.EntityTypeCampaign {
		return "", fmt.Errorf("%w: tiktok only duplicates campaigns", domain.ErrUnsupported)
	}

	advertiserID, err := s.owner(entityID)
	if err != nil {
		return "", err
	}

	newID, err := s.Client.CopyCampaign(ctx, advertiserID, entityID)
	if err != nil {
		return "", err
	}

	s.remember(newID, advertiserID)
	return newID, nil
}

func (s *TikTokIntegrator) currentBudget(ctx context.Context, advertiserID string, entityType domain.EntityType, entityID string) (*int64, error) {
	switch entityType {
	case domain.EntityTypeCampaign:
		campaigns, err := s.Client.ListCampaigns(ctx, advertiserID, []string{entityID})
		if err != nil {
			return nil, errors.Wrapf(err, "reading current budget of %s", entityID)
		}
		if len(campaigns) == 0 {
			return nil, fmt.Errorf("%w: campaign %s", domain.ErrEntityNotFound, entityID)
		}
		return dailyBudget(campaigns[0].BudgetMode, campaigns[0].Budget), nil
	case domain.EntityTypeAdset:
		groups, err := s.Client.ListAdGroups(ctx, advertiserID, "", []string{entityID})
		if err != nil {
			return nil, errors.Wrapf(err, "reading current budget of %s", entityID)
		}
		if len(groups) == 0 {
			return nil, fmt.Errorf("%w: adgroup %s", domain.ErrEntityNotFound, entityID)
		}
		return dailyBudget(groups[0].BudgetMode, groups[0].Budget), nil
	}

	return nil, nil
}

// report não falha a listagem: sem relatório as métricas ficam zeradas
func (s *TikTokIntegrator) report(ctx context.Context, advertiserID string, level tiktokclient.ReportLevel, rng domain.DateRange) map[string]domain.Metrics {
	out := make(map[string]domain.Metrics)

	rows, err := s.Client.Report(ctx, advertiserID, level, rng)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"platform":      domain.PlatformTikTok,
			"advertiser_id": advertiserID,
			"level":         level,
			"error":         err,
		}).Warn("live: failed to get tiktok report")
		return out
	}

	for _, row := range rows {
		id := row.Dimensions[level.Dimension()]
		out[id] = out[id].Add(domain.Metrics{
			Spend:           row.Float("spend"),
			Clicks:          row.Int("clicks"),
			Impressions:     row.Int("impressions"),
			Conversions:     row.Float("conversion"),
			ConversionValue: row.Float("total_purchase_value"),
		})
	}

	return out
}

func (s *TikTokIntegrator) remember(entityID, advertiserID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.advertiser[entityID] = advertiserID
}

// owner resolve o anunciante da entidade. Com um único anunciante configurado não há ambiguidade.
func (s *TikTokIntegrator) owner(entityID string) (string, error) {
	s.mu.RLock()
	advertiserID, ok := s.advertiser[entityID]
	s.mu.RUnlock()

	if ok {
		return advertiserID, nil
	}
	if len(s.cfg.AdvertiserIDs) == 1 {
		return s.cfg.AdvertiserIDs[0], nil
	}

	return "", fmt.Errorf("%w: advertiser of %s is unknown, list campaigns first", domain.ErrEntityNotFound, entityID)
}

func mapStatus(status string) domain.EntityStatus {
	switch status {
	case tiktokdomain.StatusEnable:
		return domain.EntityStatusActive
	case tiktokdomain.StatusDisable:
		return domain.EntityStatusPaused
	default:
		return domain.EntityStatusUnknown
	}
}

// dailyBudget ignora orçamentos vitalícios e ilimitados
func dailyBudget(mode string, budget float64) *int64 {
	if mode != "BUDGET_MODE_DAY" || budget <= 0 {
		return nil
	}
	return domain.Int64Ptr(utils.UnitsToCents(budget))
}

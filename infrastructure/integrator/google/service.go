package google

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-ops-api/internal/config"
	"github.com/vfg2006/ads-ops-api/internal/domain"
	"github.com/vfg2006/ads-ops-api/pkg/utils"
)

const (
	statusEnabled = "ENABLED"
	statusPaused  = "PAUSED"
)

// GoogleIntegrator implementa platform.Adapter. O orçamento diário fica na campanha
// e o lance máximo (CPC) no grupo de anúncios; duplicação não é oferecida pela API.
type GoogleIntegrator struct {
	cfg    config.Google
	client *Client

	mu       sync.RWMutex
	customer map[string]string
	adGroup  map[string]string
}

func New(cfg config.Google, client *Client) *GoogleIntegrator {
	return &GoogleIntegrator{
		cfg:      cfg,
		client:   client,
		customer: make(map[string]string),
		adGroup:  make(map[string]string),
	}
}

func (s *GoogleIntegrator) Platform() domain.Platform {
	return domain.PlatformGoogle
}

func (s *GoogleIntegrator) ListCampaigns(ctx context.Context, filter domain.CampaignFilter) ([]domain.LiveCampaign, error) {
	out := make([]domain.LiveCampaign, 0)

	for _, customerID := range s.cfg.CustomerIDs {
		rows, err := s.client.Search(ctx, customerID,
			"SELECT campaign.id, campaign.name, campaign.status, campaign_budget.amount_micros "+
				"FROM campaign WHERE campaign.status != 'REMOVED'")
		if err != nil {
			return nil, errors.Wrapf(err, "listing campaigns of customer %s", customerID)
		}

		metrics := s.metrics(ctx, customerID, "campaign", "", filter.DateRange)

		for _, row := range rows {
			if row.Campaign == nil {
				continue
			}
			id := row.Campaign.ID.String()
			s.remember(domain.EntityTypeCampaign, id, customerID)

			var budget *int64
			if row.CampaignBudget != nil && row.CampaignBudget.AmountMicros > 0 {
				budget = domain.Int64Ptr(utils.MicrosToCents(int64(row.CampaignBudget.AmountMicros)))
			}

			out = append(out, domain.LiveCampaign{
				CampaignID:       id,
				Platform:         domain.PlatformGoogle,
				CampaignName:     row.Campaign.Name,
				AccountName:      customerID,
				Status:           mapStatus(row.Campaign.Status),
				DailyBudgetCents: budget,
				Metrics:          metrics[id],
			})
		}
	}

	return out, nil
}

func (s *GoogleIntegrator) ListAdsets(ctx context.Context, campaignID string, rng domain.DateRange) ([]domain.LiveAdset, error) {
	customerID, err := s.owner(domain.EntityTypeCampaign, campaignID)
	if err != nil {
		return nil, err
	}

	rows, err := s.client.Search(ctx, customerID, fmt.Sprintf(
		"SELECT ad_group.id, ad_group.name, ad_group.status, ad_group.campaign, ad_group.cpc_bid_micros "+
			"FROM ad_group WHERE campaign.id = %s AND ad_group.status != 'REMOVED'", campaignID))
	if err != nil {
		return nil, errors.Wrapf(err, "listing ad groups of campaign %s", campaignID)
	}

	metrics := s.metrics(ctx, customerID, "ad_group", "campaign.id = "+campaignID, rng)

	out := make([]domain.LiveAdset, 0, len(rows))
	for _, row := range rows {
		if row.AdGroup == nil {
			continue
		}
		id := row.AdGroup.ID.String()
		s.remember(domain.EntityTypeAdset, id, customerID)

		var bidCap *int64
		if row.AdGroup.CpcBidMicros > 0 {
			bidCap = domain.Int64Ptr(utils.MicrosToCents(int64(row.AdGroup.CpcBidMicros)))
		}

		out = append(out, domain.LiveAdset{
			AdsetID:     id,
			CampaignID:  campaignID,
			Platform:    domain.PlatformGoogle,
			AdsetName:   row.AdGroup.Name,
			Status:      mapStatus(row.AdGroup.Status),
			BidCapCents: bidCap,
			Metrics:     metrics[id],
		})
	}

	return out, nil
}

func (s *GoogleIntegrator) ListAds(ctx context.Context, adsetID string, rng domain.DateRange) ([]domain.LiveAd, error) {
	customerID, err := s.owner(domain.EntityTypeAdset, adsetID)
	if err != nil {
		return nil, err
	}

	rows, err := s.client.Search(ctx, customerID, fmt.Sprintf(
		"SELECT ad_group_ad.ad.id, ad_group_ad.ad.name, ad_group_ad.status "+
			"FROM ad_group_ad WHERE ad_group.id = %s AND ad_group_ad.status != 'REMOVED'", adsetID))
	if err != nil {
		return nil, errors.Wrapf(err, "listing ads of ad group %s", adsetID)
	}

	metrics := s.metrics(ctx, customerID, "ad_group_ad", "ad_group.id = "+adsetID, rng)

	out := make([]domain.LiveAd, 0, len(rows))
	for _, row := range rows {
		if row.AdGroupAd == nil {
			continue
		}
		id := row.AdGroupAd.Ad.ID.String()
		s.remember(domain.EntityTypeAd, id, customerID)
		s.mu.Lock()
		s.adGroup[id] = adsetID
		s.mu.Unlock()

		out = append(out, domain.LiveAd{
			AdID:     id,
			AdsetID:  adsetID,
			Platform: domain.PlatformGoogle,
			AdName:   row.AdGroupAd.Ad.Name,
			Status:   mapStatus(row.AdGroupAd.Status),
			Metrics:  metrics[id],
		})
	}

	return out, nil
}

func (s *GoogleIntegrator) SetEntityStatus(ctx context.Context, entityType domain.EntityType, entityID string, enable bool) error {
	customerID, err := s.owner(entityType, entityID)
	if err != nil {
		return err
	}

	resource, resourceName, err := s.resourceName(customerID, entityType, entityID)
	if err != nil {
		return err
	}

	status := statusPaused
	if enable {
		status = statusEnabled
	}

	return s.client.Mutate(ctx, customerID, resource, map[string]any{
		"resourceName": resourceName,
		"status":       status,
	}, "status")
}

// SetBudget altera o orçamento vinculado à campanha. Orçamentos compartilhados afetam todas as campanhas que os usam.
func (s *GoogleIntegrator) SetBudget(ctx context.Context, entityType domain.EntityType, entityID string, newBudgetCents int64, previousBudgetCents *int64) error {
	if entityType != domain.EntityTypeCampaign {
		return fmt.Errorf("%w: google ads budgets live on campaigns", domain.ErrUnsupported)
	}

	customerID, err := s.owner(entityType, entityID)
	if err != nil {
		return err
	}
	if err := numericID(entityID); err != nil {
		return err
	}

	rows, err := s.client.Search(ctx, customerID, fmt.Sprintf(
		"SELECT campaign.id, campaign_budget.resource_name, campaign_budget.amount_micros "+
			"FROM campaign WHERE campaign.id = %s", entityID))
	if err != nil {
		return errors.Wrapf(err, "reading budget of campaign %s", entityID)
	}
	if len(rows) == 0 || rows[0].CampaignBudget == nil || rows[0].CampaignBudget.ResourceName == "" {
		return fmt.Errorf("%w: campaign %s has no budget", domain.ErrEntityNotFound, entityID)
	}
	budget := rows[0].CampaignBudget

	if previousBudgetCents != nil {
		current := utils.MicrosToCents(int64(budget.AmountMicros))
		if current != *previousBudgetCents {
			return fmt.Errorf("%w: expected budget %d, platform has %d", domain.ErrConflict, *previousBudgetCents, current)
		}
	}

	return s.client.Mutate(ctx, customerID, "campaignBudgets", map[string]any{
		"resourceName": budget.ResourceName,
		"amountMicros": fmt.Sprint(utils.CentsToMicros(newBudgetCents)),
	}, "amount_micros")
}

func (s *GoogleIntegrator) SetBidCap(ctx context.Context, entityID string, newBidCapCents int64) error {
	customerID, err := s.owner(domain.EntityTypeAdset, entityID)
	if err != nil {
		return err
	}

	resource, resourceName, err := s.resourceName(customerID, domain.EntityTypeAdset, entityID)
	if err != nil {
		return err
	}

	return s.client.Mutate(ctx, customerID, resource, map[string]any{
		"resourceName": resourceName,
		"cpcBidMicros": fmt.Sprint(utils.CentsToMicros(newBidCapCents)),
	}, "cpc_bid_micros")
}

func (s *GoogleIntegrator) Duplicate(ctx context.Context, entityType domain.EntityType, entityID string, targetParentID string) (string, error) {
	return "", fmt.Errorf("%w: google ads does not support duplication", domain.ErrUnsupported)
}

// metrics consulta as métricas do período agregadas por entidade do recurso informado
func (s *GoogleIntegrator) metrics(ctx context.Context, customerID, resource, where string, rng domain.DateRange) map[string]domain.Metrics {
	out := make(map[string]domain.Metrics)

	idField := resource + ".id"
	if resource == "ad_group_ad" {
		idField = "ad_group_ad.ad.id"
	}

	start, end := rng.Resolve(time.Now())
	conditions := []string{fmt.Sprintf("segments.date BETWEEN '%s' AND '%s'", start.Format(time.DateOnly), end.Format(time.DateOnly))}
	if where != "" {
		conditions = append(conditions, where)
	}

	query := fmt.Sprintf("SELECT %s, metrics.cost_micros, metrics.clicks, metrics.impressions, "+
		"metrics.conversions, metrics.conversions_value FROM %s WHERE %s",
		idField, resource, strings.Join(conditions, " AND "))

	rows, err := s.client.Search(ctx, customerID, query)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"platform": domain.PlatformGoogle,
			"resource": resource,
			"error":    err,
		}).Warn("live: failed to get google ads metrics")
		return out
	}

	for _, row := range rows {
		if row.Metrics == nil {
			continue
		}

		var id string
		switch {
		case row.Campaign != nil && resource == "campaign":
			id = row.Campaign.ID.String()
		case row.AdGroup != nil && resource == "ad_group":
			id = row.AdGroup.ID.String()
		case row.AdGroupAd != nil:
			id = row.AdGroupAd.Ad.ID.String()
		default:
			continue
		}

		out[id] = out[id].Add(domain.Metrics{
			Spend:           float64(row.Metrics.CostMicros) / 1_000_000,
			Clicks:          int64(row.Metrics.Clicks),
			Impressions:     int64(row.Metrics.Impressions),
			Conversions:     row.Metrics.Conversions,
			ConversionValue: row.Metrics.ConversionsValue,
		})
	}

	return out
}

func (s *GoogleIntegrator) resourceName(customerID string, entityType domain.EntityType, entityID string) (string, string, error) {
	if err := numericID(entityID); err != nil {
		return "", "", err
	}

	switch entityType {
	case domain.EntityTypeCampaign:
		return "campaigns", fmt.Sprintf("customers/%s/campaigns/%s", customerID, entityID), nil
	case domain.EntityTypeAdset:
		return "adGroups", fmt.Sprintf("customers/%s/adGroups/%s", customerID, entityID), nil
	default:
		s.mu.RLock()
		adGroupID, ok := s.adGroup[entityID]
		s.mu.RUnlock()
		if !ok {
			return "", "", fmt.Errorf("%w: ad %s was never listed", domain.ErrEntityNotFound, entityID)
		}
		return "adGroupAds", fmt.Sprintf("customers/%s/adGroupAds/%s~%s", customerID, adGroupID, entityID), nil
	}
}

func (s *GoogleIntegrator) remember(entityType domain.EntityType, entityID, customerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customer[string(entityType)+":"+entityID] = customerID
}

// owner resolve o customer dono da entidade, usando o único configurado quando não houver cache
func (s *GoogleIntegrator) owner(entityType domain.EntityType, entityID string) (string, error) {
	if err := numericID(entityID); err != nil {
		return "", err
	}

	s.mu.RLock()
	customerID, ok := s.customer[string(entityType)+":"+entityID]
	s.mu.RUnlock()
	if ok {
		return customerID, nil
	}

	if len(s.cfg.CustomerIDs) == 1 {
		return s.cfg.CustomerIDs[0], nil
	}
	return "", fmt.Errorf("%w: unknown customer for %s %s", domain.ErrEntityNotFound, entityType, entityID)
}

// numericID impede que valores arbitrários sejam interpolados nas consultas GAQL
func numericID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty google ads id", domain.ErrValidation)
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: google ads ids are numeric, got %q", domain.ErrValidation, id)
		}
	}
	return nil
}

func mapStatus(status string) domain.EntityStatus {
	switch status {
	case statusEnabled:
		return domain.EntityStatusActive
	case statusPaused:
		return domain.EntityStatusPaused
	default:
		return domain.EntityStatusUnknown
	}
}

package tiktokclient

import (
	"context"
	"net/url"
	"strconv"
	"time"

	tiktokdomain "github.com/vfg2006/ads-ops-api/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/ads-ops-api/internal/domain"
)

const pageSize = 1000

type ReportLevel string

const (
	ReportLevelCampaign ReportLevel = "AUCTION_CAMPAIGN"
	ReportLevelAdGroup  ReportLevel = "AUCTION_ADGROUP"
	ReportLevelAd       ReportLevel = "AUCTION_AD"
)

// Dimension devolve a dimensão do relatório que identifica a entidade
func (l ReportLevel) Dimension() string {
	switch l {
	case ReportLevelAdGroup:
		return "adgroup_id"
	case ReportLevelAd:
		return "ad_id"
	default:
		return "campaign_id"
	}
}

var reportMetrics = []string{"spend", "clicks", "impressions", "conversion", "total_purchase_value"}

func (c *TikTokClient) ListCampaigns(ctx context.Context, advertiserID string, campaignIDs []string) ([]tiktokdomain.Campaign, error) {
	filtering := map[string]any{}
	if len(campaignIDs) > 0 {
		filtering["campaign_ids"] = campaignIDs
	}
	return listAll[tiktokdomain.Campaign](ctx, c, "/campaign/get/", advertiserID, filtering)
}

func (c *TikTokClient) ListAdGroups(ctx context.Context, advertiserID string, campaignID string, adGroupIDs []string) ([]tiktokdomain.AdGroup, error) {
	filtering := map[string]any{}
	if campaignID != "" {
		filtering["campaign_ids"] = []string{campaignID}
	}
	if len(adGroupIDs) > 0 {
		filtering["adgroup_ids"] = adGroupIDs
	}
	return listAll[tiktokdomain.AdGroup](ctx, c, "/adgroup/get/", advertiserID, filtering)
}

func (c *TikTokClient) ListAds(ctx context.Context, advertiserID string, adGroupID string) ([]tiktokdomain.Ad, error) {
	filtering := map[string]any{"adgroup_ids": []string{adGroupID}}
	return listAll[tiktokdomain.Ad](ctx, c, "/ad/get/", advertiserID, filtering)
}

func (c *TikTokClient) Report(ctx context.Context, advertiserID string, level ReportLevel, rng domain.DateRange) ([]tiktokdomain.ReportRow, error) {
	start, end := rng.Resolve(time.Now())

	params := url.Values{}
	params.Set("advertiser_id", advertiserID)
	params.Set("report_type", "BASIC")
	params.Set("data_level", string(level))
	params.Set("dimensions", encodeJSON([]string{level.Dimension()}))
	params.Set("metrics", encodeJSON(reportMetrics))
	params.Set("start_date", start.Format(time.DateOnly))
	params.Set("end_date", end.Format(time.DateOnly))

	var out []tiktokdomain.ReportRow
	for page := 1; ; page++ {
		params.Set("page", strconv.Itoa(page))
		params.Set("page_size", strconv.Itoa(pageSize))

		var data tiktokdomain.List[tiktokdomain.ReportRow]
		if err := c.get(ctx, "/report/integrated/get/", params, &data); err != nil {
			return nil, err
		}
		out = append(out, data.List...)

		if page >= data.PageInfo.TotalPage {
			return out, nil
		}
	}
}

func listAll[T any](ctx context.Context, c *TikTokClient, path, advertiserID string, filtering map[string]any) ([]T, error) {
	params := url.Values{}
	params.Set("advertiser_id", advertiserID)
	if len(filtering) > 0 {
		params.Set("filtering", encodeJSON(filtering))
	}

	var out []T
	for page := 1; ; page++ {
		params.Set("page", strconv.Itoa(page))
		params.Set("page_size", strconv.Itoa(pageSize))

		var data tiktokdomain.List[T]
		if err := c.get(ctx, path, params, &data); err != nil {
			return nil, err
		}
		out = append(out, data.List...)

		if page >= data.PageInfo.TotalPage {
			return out, nil
		}
	}
}

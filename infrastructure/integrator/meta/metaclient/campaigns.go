package metaclient

import (
	"context"
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/ads-ops-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-ops-api/internal/domain"
)

const (
	pageLimit     = "200"
	insightFields = "spend,clicks,impressions,actions,action_values"
)

func insightsField(rng domain.DateRange) string {
	return fmt.Sprintf("insights.time_range(%s){%s}", timeRange(rng), insightFields)
}

func (c *MetaClient) ListCampaigns(ctx context.Context, accountID string, rng domain.DateRange) ([]metadomain.Campaign, error) {
	params := url.Values{}
	params.Add("fields", "id,name,status,effective_status,account_id,daily_budget,"+
		"adsets.limit(0).summary(total_count),ads.limit(0).summary(total_count),"+insightsField(rng))
	params.Add("limit", pageLimit)

	return listAll[metadomain.Campaign](ctx, c, fmt.Sprintf("%s/%s/campaigns", c.cfg.URL, actID(accountID)), params)
}

func (c *MetaClient) ListAdSets(ctx context.Context, campaignID string, rng domain.DateRange) ([]metadomain.AdSet, error) {
	params := url.Values{}
	params.Add("fields", "id,name,status,campaign_id,daily_budget,bid_amount,"+
		"ads.limit(0).summary(total_count),"+insightsField(rng))
	params.Add("limit", pageLimit)

	return listAll[metadomain.AdSet](ctx, c, fmt.Sprintf("%s/%s/adsets", c.cfg.URL, campaignID), params)
}

func (c *MetaClient) ListAds(ctx context.Context, adSetID string, rng domain.DateRange) ([]metadomain.Ad, error) {
	params := url.Values{}
	params.Add("fields", "id,name,status,adset_id,"+insightsField(rng))
	params.Add("limit", pageLimit)

	return listAll[metadomain.Ad](ctx, c, fmt.Sprintf("%s/%s/ads", c.cfg.URL, adSetID), params)
}

// listAll segue o cursor "after" até a última página
func listAll[T any](ctx context.Context, c *MetaClient, endpoint string, params url.Values) ([]T, error) {
	var out []T
	for {
		var page metadomain.Page[T]
		if err := c.get(ctx, endpoint, params, &page); err != nil {
			return nil, err
		}
		out = append(out, page.Data...)

		if page.Paging.Next == "" || page.Paging.Cursors.After == "" {
			return out, nil
		}
		params.Set("after", page.Paging.Cursors.After)
	}
}

package tiktokclient

import (
	"context"
	"fmt"
	"net/url"
	"time"

	tiktokdomain "github.com/vfg2006/ads-ops-api/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/ads-ops-api/internal/domain"
)

const (
	copyTaskPollInterval = time.Second
	copyTaskMaxPolls     = 30
)

func (c *TikTokClient) UpdateStatus(ctx context.Context, advertiserID string, entityType domain.EntityType, entityID string, enable bool) error {
	status := tiktokdomain.StatusDisable
	if enable {
		status = tiktokdomain.StatusEnable
	}

	payload := map[string]any{
		"advertiser_id":    advertiserID,
		"operation_status": status,
	}

	var path string
	switch entityType {
	case domain.EntityTypeCampaign:
		path = "/campaign/status/update/"
		payload["campaign_ids"] = []string{entityID}
	case domain.EntityTypeAdset:
		path = "/adgroup/status/update/"
		payload["adgroup_ids"] = []string{entityID}
	case domain.EntityTypeAd:
		path = "/ad/status/update/"
		payload["ad_ids"] = []string{entityID}
	default:
		return fmt.Errorf("%w: unknown entity type %q", domain.ErrValidation, entityType)
	}

	return c.post(ctx, path, payload, nil)
}

func (c *TikTokClient) UpdateCampaign(ctx context.Context, advertiserID, campaignID string, fields map[string]any) error {
	payload := map[string]any{
		"advertiser_id": advertiserID,
		"campaign_id":   campaignID,
	}
	for k, v := range fields {
		payload[k] = v
	}
	return c.post(ctx, "/campaign/update/", payload, nil)
}

func (c *TikTokClient) UpdateAdGroup(ctx context.Context, advertiserID, adGroupID string, fields map[string]any) error {
	payload := map[string]any{
		"advertiser_id": advertiserID,
		"adgroup_id":    adGroupID,
	}
	for k, v := range fields {
		payload[k] = v
	}
	return c.post(ctx, "/adgroup/update/", payload, nil)
}

// CopyCampaign cria a tarefa de cópia e espera a conclusão
func (c *TikTokClient) CopyCampaign(ctx context.Context, advertiserID, campaignID string) (string, error) {
	var task tiktokdomain.CopyTask
	err := c.post(ctx, "/campaign/copy/task/create/", map[string]any{
		"advertiser_id": advertiserID,
		"campaign_ids":  []string{campaignID},
	}, &task)
	if err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("advertiser_id", advertiserID)
	params.Set("task_id", task.TaskID)

	ticker := time.NewTicker(copyTaskPollInterval)
	defer ticker.Stop()

	for i := 0; i < copyTaskMaxPolls; i++ {
		var result tiktokdomain.CopyTaskResult
		if err := c.get(ctx, "/campaign/copy/task/check/", params, &result); err != nil {
			return "", err
		}

		switch result.Status {
		case "SUCCESS":
			if len(result.CampaignIDs) == 0 {
				return "", fmt.Errorf("%w: copy task %s returned no campaign", domain.ErrUpstream, task.TaskID)
			}
			return result.CampaignIDs[0], nil
		case "FAILED":
			return "", fmt.Errorf("%w: copy task %s failed", domain.ErrUpstream, task.TaskID)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-ticker.C:
		}
	}

	return "", fmt.Errorf("%w: copy task %s did not finish", domain.ErrUpstream, task.TaskID)
}

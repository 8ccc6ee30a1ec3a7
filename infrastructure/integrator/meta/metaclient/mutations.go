package metaclient

import (
	"context"
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/ads-ops-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-ops-api/internal/domain"
)

// GetDailyBudget lê o orçamento atual, usado na verificação de concorrência otimista
func (c *MetaClient) GetDailyBudget(ctx context.Context, entityID string) (*int64, error) {
	params := url.Values{}
	params.Add("fields", "id,daily_budget")

	var entity struct {
		ID          string `json:"id"`
		DailyBudget string `json:"daily_budget"`
	}
	if err := c.get(ctx, fmt.Sprintf("%s/%s", c.cfg.URL, entityID), params, &entity); err != nil {
		return nil, err
	}

	return metadomain.ParseCents(entity.DailyBudget), nil
}

// Update altera campos de uma campanha, conjunto ou anúncio
func (c *MetaClient) Update(ctx context.Context, entityID string, fields url.Values) error {
	var resp metadomain.SuccessResponse
	if err := c.post(ctx, fmt.Sprintf("%s/%s", c.cfg.URL, entityID), fields, &resp); err != nil {
		return err
	}

	if !resp.Success {
		return fmt.Errorf("%w: update of %s not acknowledged", domain.ErrUpstream, entityID)
	}
	return nil
}

// Copy duplica a entidade e devolve o id da cópia
func (c *MetaClient) Copy(ctx context.Context, entityID string, fields url.Values) (string, error) {
	var resp metadomain.CopyResponse
	if err := c.post(ctx, fmt.Sprintf("%s/%s/copies", c.cfg.URL, entityID), fields, &resp); err != nil {
		return "", err
	}

	if resp.ID() == "" {
		return "", fmt.Errorf("%w: copy of %s returned no id", domain.ErrUpstream, entityID)
	}
	return resp.ID(), nil
}

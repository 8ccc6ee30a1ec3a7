package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-ops-api/infrastructure/integrator/httpx"
	metadomain "github.com/vfg2006/ads-ops-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-ops-api/internal/config"
	"github.com/vfg2006/ads-ops-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetAdAccount(ctx context.Context, accountID string) (*metadomain.AdAccount, error)
	ListCampaigns(ctx context.Context, accountID string, rng domain.DateRange) ([]metadomain.Campaign, error)
	ListAdSets(ctx context.Context, campaignID string, rng domain.DateRange) ([]metadomain.AdSet, error)
	ListAds(ctx context.Context, adSetID string, rng domain.DateRange) ([]metadomain.Ad, error)
	GetDailyBudget(ctx context.Context, entityID string) (*int64, error)
	Update(ctx context.Context, entityID string, fields url.Values) error
	Copy(ctx context.Context, entityID string, fields url.Values) (string, error)
}

type MetaClient struct {
	cfg          config.Meta
	requester    *httpx.Requester
	TokenManager *TokenManager
}

func NewClient(cfg config.Meta, requester *httpx.Requester, tokenManager *TokenManager) *MetaClient {
	return &MetaClient{
		cfg:          cfg,
		requester:    requester,
		TokenManager: tokenManager,
	}
}

// get consulta a Graph API. Um token expirado é renovado e a consulta refeita uma vez.
func (c *MetaClient) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	return c.call(ctx, true, func() (*httpx.Response, error) {
		p := url.Values{}
		for k, v := range params {
			p[k] = v
		}
		p.Set("access_token", c.TokenManager.AccessToken())
		return c.requester.Get(ctx, endpoint, p, nil)
	}, out)
}

func (c *MetaClient) post(ctx context.Context, endpoint string, fields url.Values, out any) error {
	return c.call(ctx, true, func() (*httpx.Response, error) {
		f := url.Values{}
		for k, v := range fields {
			f[k] = v
		}
		f.Set("access_token", c.TokenManager.AccessToken())
		return c.requester.PostForm(ctx, endpoint, f, nil)
	}, out)
}

func (c *MetaClient) call(ctx context.Context, allowRefresh bool, send func() (*httpx.Response, error), out any) error {
	resp, err := send()
	if err != nil {
		return err
	}

	if resp.OK() {
		if out == nil {
			return nil
		}
		return resp.Decode(out)
	}

	var errorResp metadomain.ErrorResponse
	if jsonErr := resp.Decode(&errorResp); jsonErr == nil && errorResp.IsTokenExpired() && allowRefresh {
		logrus.Warnf("Token expirado detectado pela API Meta. Código: %d, Subcódigo: %d",
			errorResp.Error.Code, errorResp.Error.ErrorSubcode)

		if refreshErr := c.TokenManager.RefreshToken(ctx); refreshErr != nil {
			return fmt.Errorf("%w: erro ao renovar token expirado: %v", domain.ErrUpstream, refreshErr)
		}
		// O token expirado garante que a chamada anterior não foi aplicada
		return c.call(ctx, false, send, out)
	}

	return parseError(resp.Body)
}

// parseError classifica o envelope de erro da Graph API
func parseError(body []byte) error {
	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil || errorResp.Error.Code == 0 {
		return fmt.Errorf("%w: unexpected response: %s", domain.ErrUpstream, string(body))
	}

	switch {
	case errorResp.IsRateLimited():
		return fmt.Errorf("%w: %s", domain.ErrRateLimited, errorResp.Error)
	case errorResp.IsInvalidParameter():
		return fmt.Errorf("%w: %s", domain.ErrValidation, errorResp.Error)
	}

	return fmt.Errorf("%w: %s", domain.ErrUpstream, errorResp.Error)
}

func timeRange(rng domain.DateRange) string {
	start, end := rng.Resolve(time.Now())
	return fmt.Sprintf(`{"since":"%s","until":"%s"}`, start.Format(time.DateOnly), end.Format(time.DateOnly))
}

package tiktokclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ads-ops-api/infrastructure/integrator/httpx"
	tiktokdomain "github.com/vfg2006/ads-ops-api/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/ads-ops-api/internal/config"
	"github.com/vfg2006/ads-ops-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	ListCampaigns(ctx context.Context, advertiserID string, campaignIDs []string) ([]tiktokdomain.Campaign, error)
	ListAdGroups(ctx context.Context, advertiserID string, campaignID string, adGroupIDs []string) ([]tiktokdomain.AdGroup, error)
	ListAds(ctx context.Context, advertiserID string, adGroupID string) ([]tiktokdomain.Ad, error)
	Report(ctx context.Context, advertiserID string, level ReportLevel, rng domain.DateRange) ([]tiktokdomain.ReportRow, error)
	UpdateStatus(ctx context.Context, advertiserID string, entityType domain.EntityType, entityID string, enable bool) error
	UpdateCampaign(ctx context.Context, advertiserID, campaignID string, fields map[string]any) error
	UpdateAdGroup(ctx context.Context, advertiserID, adGroupID string, fields map[string]any) error
	CopyCampaign(ctx context.Context, advertiserID, campaignID string) (string, error)
}

type TikTokClient struct {
	cfg       config.TikTok
	requester *httpx.Requester
}

func NewClient(cfg config.TikTok, requester *httpx.Requester) *TikTokClient {
	return &TikTokClient{
		cfg:       cfg,
		requester: requester,
	}
}

func (c *TikTokClient) header() http.Header {
	h := http.Header{}
	h.Set("Access-Token", c.cfg.AccessToken)
	h.Set("Accept", "application/json")
	return h
}

func (c *TikTokClient) get(ctx context.Context, path string, params url.Values, out any) error {
	resp, err := c.requester.Get(ctx, c.cfg.BaseURL+path, params, c.header())
	if err != nil {
		return err
	}
	return decodeEnvelope(resp, out)
}

func (c *TikTokClient) post(ctx context.Context, path string, payload any, out any) error {
	resp, err := c.requester.PostJSON(ctx, c.cfg.BaseURL+path, payload, c.header())
	if err != nil {
		return err
	}
	return decodeEnvelope(resp, out)
}

// decodeEnvelope valida o código do envelope e decodifica data em out
func decodeEnvelope(resp *httpx.Response, out any) error {
	var envelope tiktokdomain.Envelope
	if err := resp.Decode(&envelope); err != nil {
		return err
	}

	switch envelope.Code {
	case tiktokdomain.CodeOK:
	case tiktokdomain.CodeRateLimited:
		return fmt.Errorf("%w: tiktok %d: %s", domain.ErrRateLimited, envelope.Code, envelope.Message)
	case tiktokdomain.CodeInvalidArgs:
		return fmt.Errorf("%w: tiktok %d: %s", domain.ErrValidation, envelope.Code, envelope.Message)
	default:
		return fmt.Errorf("%w: tiktok %d: %s", domain.ErrUpstream, envelope.Code, envelope.Message)
	}

	if out == nil || len(envelope.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("%w: invalid tiktok data: %v", domain.ErrUpstream, err)
	}
	return nil
}

func encodeJSON(v any) string {
	b, _ := json.Marshal(v)
	return string(b)
}

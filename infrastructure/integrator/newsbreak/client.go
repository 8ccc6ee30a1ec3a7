package newsbreak

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ads-ops-api/infrastructure/integrator/httpx"
	"github.com/vfg2006/ads-ops-api/internal/config"
	"github.com/vfg2006/ads-ops-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const pageSize = 500

type envelope struct {
	Code int                 `json:"code"`
	Msg  string              `json:"msg"`
	Data jsoniter.RawMessage `json:"data"`
}

type page[T any] struct {
	Rows  []T `json:"rows"`
	Total int `json:"total"`
}

type Campaign struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	AdAccountID string `json:"adAccountId"`
	AdSetCount  int    `json:"adSetCount"`
}

type AdSet struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CampaignID string `json:"campaignId"`
	Status     string `json:"status"`
	Budget     int64  `json:"budget"`
	BidRate    int64  `json:"bidRate"`
	AdCount    int    `json:"adCount"`
}

type Ad struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	AdSetID string `json:"adSetId"`
	Status  string `json:"status"`
}

type ReportRow struct {
	ID          string  `json:"id"`
	Cost        float64 `json:"cost"`
	Clicks      int64   `json:"clicks"`
	Impressions int64   `json:"impressions"`
	Conversions float64 `json:"conversions"`
	Value       float64 `json:"conversionValue"`
}

const (
	codeOK          = 0
	codeRateLimited = 429
	codeInvalidArgs = 400
)

// Client fala com a NewsBreak Ads API. Budgets e lances trafegam em centavos.
type Client struct {
	cfg       config.NewsBreak
	requester *httpx.Requester
}

func NewClient(cfg config.NewsBreak, requester *httpx.Requester) *Client {
	return &Client{cfg: cfg, requester: requester}
}

func (c *Client) header() http.Header {
	h := http.Header{}
	h.Set("Access-Token", c.cfg.AccessToken)
	return h
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	resp, err := c.requester.Get(ctx, c.cfg.BaseURL+path, params, c.header())
	if err != nil {
		return err
	}
	return decode(resp, out)
}

func (c *Client) post(ctx context.Context, path string, payload any, out any) error {
	resp, err := c.requester.PostJSON(ctx, c.cfg.BaseURL+path, payload, c.header())
	if err != nil {
		return err
	}
	return decode(resp, out)
}

func decode(resp *httpx.Response, out any) error {
	var env envelope
	if err := resp.Decode(&env); err != nil {
		return err
	}

	switch env.Code {
	case codeOK:
	case codeRateLimited:
		return fmt.Errorf("%w: newsbreak: %s", domain.ErrRateLimited, env.Msg)
	case codeInvalidArgs:
		return fmt.Errorf("%w: newsbreak: %s", domain.ErrValidation, env.Msg)
	default:
		return fmt.Errorf("%w: newsbreak %d: %s", domain.ErrUpstream, env.Code, env.Msg)
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: invalid newsbreak data: %v", domain.ErrUpstream, err)
	}
	return nil
}

func getList[T any](ctx context.Context, c *Client, path string, params url.Values) ([]T, error) {
	var out []T
	for pageNo := 1; ; pageNo++ {
		params.Set("pageNo", strconv.Itoa(pageNo))
		params.Set("pageSize", strconv.Itoa(pageSize))

		var p page[T]
		if err := c.get(ctx, path, params, &p); err != nil {
			return nil, err
		}
		out = append(out, p.Rows...)

		if len(p.Rows) == 0 || len(out) >= p.Total {
			return out, nil
		}
	}
}

func (c *Client) ListCampaigns(ctx context.Context, adAccountID string) ([]Campaign, error) {
	params := url.Values{}
	params.Set("adAccountId", adAccountID)
	return getList[Campaign](ctx, c, "/campaign/getList", params)
}

func (c *Client) ListAdSets(ctx context.Context, campaignID string) ([]AdSet, error) {
	params := url.Values{}
	params.Set("campaignId", campaignID)
	return getList[AdSet](ctx, c, "/adSet/getList", params)
}

func (c *Client) GetAdSet(ctx context.Context, adSetID string) (*AdSet, error) {
	params := url.Values{}
	params.Set("id", adSetID)

	var adSet AdSet
	if err := c.get(ctx, "/adSet/get", params, &adSet); err != nil {
		return nil, err
	}
	return &adSet, nil
}

func (c *Client) ListAds(ctx context.Context, adSetID string) ([]Ad, error) {
	params := url.Values{}
	params.Set("adSetId", adSetID)
	return getList[Ad](ctx, c, "/ad/getList", params)
}

// Report busca métricas agregadas por entidade no nível informado (CAMPAIGN, AD_SET, AD)
func (c *Client) Report(ctx context.Context, level string, ids []string, start, end string) ([]ReportRow, error) {
	var rows []ReportRow
	err := c.post(ctx, "/report/getIntegratedReport", map[string]any{
		"level":     level,
		"ids":       ids,
		"startDate": start,
		"endDate":   end,
	}, &rows)
	return rows, err
}

func (c *Client) UpdateStatus(ctx context.Context, resource, id string, status string) error {
	return c.post(ctx, "/"+resource+"/updateStatus", map[string]any{"id": id, "status": status}, nil)
}

func (c *Client) UpdateAdSet(ctx context.Context, id string, fields map[string]any) error {
	payload := map[string]any{"id": id}
	for k, v := range fields {
		payload[k] = v
	}
	return c.post(ctx, "/adSet/update", payload, nil)
}

func (c *Client) Copy(ctx context.Context, resource, id, targetParentID string) (string, error) {
	payload := map[string]any{"id": id}
	if targetParentID != "" {
		payload["targetId"] = targetParentID
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := c.post(ctx, "/"+resource+"/copy", payload, &out); err != nil {
		return "", err
	}
	if out.ID == "" {
		return "", fmt.Errorf("%w: newsbreak copy of %s returned no id", domain.ErrUpstream, id)
	}
	return out.ID, nil
}

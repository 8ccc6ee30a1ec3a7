package google

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vfg2006/ads-ops-api/infrastructure/integrator/httpx"
	"github.com/vfg2006/ads-ops-api/internal/config"
	"github.com/vfg2006/ads-ops-api/internal/domain"
	"golang.org/x/oauth2"
)

// NewHTTPClient devolve um client que renova o access token a partir do refresh token configurado
func NewHTTPClient(ctx context.Context, cfg config.Google) *http.Client {
	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     oauth2.Endpoint{TokenURL: cfg.TokenURL},
	}

	return oauth2.NewClient(ctx, oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken}))
}

// Client executa consultas GAQL e mutações na Google Ads API
type Client struct {
	cfg       config.Google
	requester *httpx.Requester
}

func NewClient(cfg config.Google, requester *httpx.Requester) *Client {
	return &Client{cfg: cfg, requester: requester}
}

func (c *Client) header() http.Header {
	h := http.Header{}
	h.Set("developer-token", c.cfg.DeveloperToken)
	if c.cfg.LoginCustomerID != "" {
		h.Set("login-customer-id", c.cfg.LoginCustomerID)
	}
	return h
}

// Search executa a consulta e percorre todas as páginas
func (c *Client) Search(ctx context.Context, customerID, query string) ([]Row, error) {
	endpoint := fmt.Sprintf("%s/customers/%s/googleAds:search", c.cfg.BaseURL, customerID)

	var rows []Row
	pageToken := ""
	for {
		payload := map[string]any{"query": query}
		if pageToken != "" {
			payload["pageToken"] = pageToken
		}

		resp, err := c.requester.PostJSON(ctx, endpoint, payload, c.header())
		if err != nil {
			return nil, err
		}
		if err := checkResponse(resp); err != nil {
			return nil, err
		}

		var page searchResponse
		if err := resp.Decode(&page); err != nil {
			return nil, err
		}
		rows = append(rows, page.Results...)

		if page.NextPageToken == "" {
			return rows, nil
		}
		pageToken = page.NextPageToken
	}
}

// Mutate aplica uma única operação de update no recurso (campaigns, adGroups, adGroupAds, campaignBudgets)
func (c *Client) Mutate(ctx context.Context, customerID, resource string, update map[string]any, mask string) error {
	endpoint := fmt.Sprintf("%s/customers/%s/%s:mutate", c.cfg.BaseURL, customerID, resource)

	resp, err := c.requester.PostJSON(ctx, endpoint, map[string]any{
		"operations": []mutateOperation{{Update: update, UpdateMask: mask}},
	}, c.header())
	if err != nil {
		return err
	}
	return checkResponse(resp)
}

func checkResponse(resp *httpx.Response) error {
	if resp.OK() {
		return nil
	}

	var body errorResponse
	_ = json.Unmarshal(resp.Body, &body)
	msg := body.Error.Message
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	switch resp.StatusCode {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: google ads: %s", domain.ErrValidation, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: google ads: %s", domain.ErrEntityNotFound, msg)
	default:
		return fmt.Errorf("%w: google ads %d %s: %s", domain.ErrUpstream, resp.StatusCode, body.Error.Status, msg)
	}
}

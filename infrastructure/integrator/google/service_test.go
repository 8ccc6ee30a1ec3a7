package google

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-ops-api/infrastructure/integrator/httpx"
	"github.com/vfg2006/ads-ops-api/internal/config"
	"github.com/vfg2006/ads-ops-api/internal/domain"
)

type testServer struct {
	tokenCalls atomic.Int32
}

func newTestIntegrator(t *testing.T, customers []string, handler func(w http.ResponseWriter, r *http.Request, query string)) (*GoogleIntegrator, *testServer) {
	t.Helper()

	ts := &testServer{}
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		ts.tokenCalls.Add(1)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "rt", r.PostForm.Get("refresh_token"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/customers/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer at", r.Header.Get("Authorization"))
		assert.Equal(t, "dev-token", r.Header.Get("developer-token"))

		body, _ := io.ReadAll(r.Body)
		var payload struct {
			Query string `json:"query"`
		}
		_ = json.Unmarshal(body, &payload)
		if payload.Query == "" {
			payload.Query = string(body)
		}
		handler(w, r, payload.Query)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	cfg := config.Google{
		BaseURL:        server.URL,
		DeveloperToken: "dev-token",
		CustomerIDs:    customers,
		ClientID:       "cid",
		ClientSecret:   "secret",
		RefreshToken:   "rt",
		TokenURL:       server.URL + "/token",
	}
	requester := httpx.NewRequester(domain.PlatformGoogle, httpx.Options{
		Timeout: 2 * time.Second,
		Backoff: time.Millisecond,
		Client:  NewHTTPClient(context.Background(), cfg),
	})

	return New(cfg, NewClient(cfg, requester)), ts
}

func TestGoogleIntegrator_ListCampaigns(t *testing.T) {
	integrator, ts := newTestIntegrator(t, []string{"111"}, func(w http.ResponseWriter, r *http.Request, query string) {
		assert.Equal(t, "/customers/111/googleAds:search", r.URL.Path)

		if strings.Contains(query, "metrics.cost_micros") {
			assert.Contains(t, query, "segments.date BETWEEN")
			_, _ = w.Write([]byte(`{"results":[
				{"campaign":{"id":"1"},"metrics":{"costMicros":"12500000","clicks":"30","impressions":"1000","conversions":2,"conversionsValue":80.5}}
			]}`))
			return
		}

		_, _ = w.Write([]byte(`{"results":[
			{"campaign":{"id":"1","name":"G 1","status":"ENABLED"},"campaignBudget":{"amountMicros":"50000000"}},
			{"campaign":{"id":"2","name":"G 2","status":"PAUSED"},"campaignBudget":{"amountMicros":"0"}}
		]}`))
	})

	campaigns, err := integrator.ListCampaigns(context.Background(), domain.CampaignFilter{})
	require.NoError(t, err)
	require.Len(t, campaigns, 2)

	assert.Equal(t, "1", campaigns[0].CampaignID)
	assert.Equal(t, domain.EntityStatusActive, campaigns[0].Status)
	require.NotNil(t, campaigns[0].DailyBudgetCents)
	assert.Equal(t, int64(5000), *campaigns[0].DailyBudgetCents)
	assert.InDelta(t, 12.5, campaigns[0].Metrics.Spend, 0.0001)
	assert.Equal(t, int64(30), campaigns[0].Metrics.Clicks)

	assert.Equal(t, domain.EntityStatusPaused, campaigns[1].Status)
	assert.Nil(t, campaigns[1].DailyBudgetCents)

	// O token é obtido uma vez e reaproveitado
	assert.Equal(t, int32(1), ts.tokenCalls.Load())
}

func TestGoogleIntegrator_Paginacao(t *testing.T) {
	var calls atomic.Int32
	integrator, _ := newTestIntegrator(t, []string{"111"}, func(w http.ResponseWriter, r *http.Request, query string) {
		if strings.Contains(query, "metrics.cost_micros") {
			_, _ = w.Write([]byte(`{"results":[]}`))
			return
		}

		if calls.Add(1) == 1 {
			_, _ = w.Write([]byte(`{"results":[{"campaign":{"id":"1","status":"ENABLED"}}],"nextPageToken":"p2"}`))
			return
		}
		_, _ = w.Write([]byte(`{"results":[{"campaign":{"id":"2","status":"ENABLED"}}]}`))
	})

	campaigns, err := integrator.ListCampaigns(context.Background(), domain.CampaignFilter{})
	require.NoError(t, err)
	assert.Len(t, campaigns, 2)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGoogleIntegrator_SetBudget(t *testing.T) {
	tests := []struct {
		name       string
		entityType domain.EntityType
		entityID   string
		previous   *int64
		wantErr    error
		wantMutate bool
	}{
		{
			name:       "campanha sem valor anterior",
			entityType: domain.EntityTypeCampaign,
			entityID:   "1",
			wantMutate: true,
		},
		{
			name:       "valor anterior confere",
			entityType: domain.EntityTypeCampaign,
			entityID:   "1",
			previous:   domain.Int64Ptr(5000),
			wantMutate: true,
		},
		{
			name:       "valor anterior divergente",
			entityType: domain.EntityTypeCampaign,
			entityID:   "1",
			previous:   domain.Int64Ptr(4000),
			wantErr:    domain.ErrConflict,
		},
		{
			name:       "grupo de anúncios não suportado",
			entityType: domain.EntityTypeAdset,
			entityID:   "9",
			wantErr:    domain.ErrUnsupported,
		},
		{
			name:       "id não numérico",
			entityType: domain.EntityTypeCampaign,
			entityID:   "1 OR 1=1",
			wantErr:    domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var mutated atomic.Bool
			integrator, _ := newTestIntegrator(t, []string{"111"}, func(w http.ResponseWriter, r *http.Request, query string) {
				if strings.HasSuffix(r.URL.Path, "campaignBudgets:mutate") {
					mutated.Store(true)
					assert.Contains(t, query, `"amountMicros":"70000000"`)
					assert.Contains(t, query, `"updateMask":"amount_micros"`)
					_, _ = w.Write([]byte(`{"results":[{"resourceName":"customers/111/campaignBudgets/77"}]}`))
					return
				}

				_, _ = w.Write([]byte(`{"results":[{"campaign":{"id":"1"},"campaignBudget":{"resourceName":"customers/111/campaignBudgets/77","amountMicros":"50000000"}}]}`))
			})

			err := integrator.SetBudget(context.Background(), tt.entityType, tt.entityID, 7000, tt.previous)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantMutate, mutated.Load())
		})
	}
}

func TestGoogleIntegrator_SetEntityStatusDeAnuncio(t *testing.T) {
	integrator, _ := newTestIntegrator(t, []string{"111"}, func(w http.ResponseWriter, r *http.Request, query string) {
		switch {
		case strings.HasSuffix(r.URL.Path, "adGroupAds:mutate"):
			assert.Contains(t, query, `"resourceName":"customers/111/adGroupAds/5~8"`)
			assert.Contains(t, query, `"status":"PAUSED"`)
			_, _ = w.Write([]byte(`{"results":[{}]}`))
		case strings.Contains(query, "metrics.cost_micros"):
			_, _ = w.Write([]byte(`{"results":[]}`))
		default:
			_, _ = w.Write([]byte(`{"results":[{"adGroupAd":{"status":"ENABLED","ad":{"id":"8","name":"Ad"}}}]}`))
		}
	})

	// Anúncio nunca listado não tem grupo conhecido
	err := integrator.SetEntityStatus(context.Background(), domain.EntityTypeAd, "8", false)
	assert.True(t, errors.Is(err, domain.ErrEntityNotFound), "got %v", err)

	ads, err := integrator.ListAds(context.Background(), "5", domain.DateRange{})
	require.NoError(t, err)
	require.Len(t, ads, 1)

	require.NoError(t, integrator.SetEntityStatus(context.Background(), domain.EntityTypeAd, "8", false))
}

func TestGoogleIntegrator_ErrosHTTP(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "argumento inválido", status: http.StatusBadRequest, wantErr: domain.ErrValidation},
		{name: "recurso inexistente", status: http.StatusNotFound, wantErr: domain.ErrEntityNotFound},
		{name: "sem permissão", status: http.StatusForbidden, wantErr: domain.ErrUpstream},
		{name: "limite de requisições", status: http.StatusTooManyRequests, wantErr: domain.ErrRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integrator, _ := newTestIntegrator(t, []string{"111"}, func(w http.ResponseWriter, r *http.Request, query string) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error":{"code":1,"message":"nope","status":"X"}}`))
			})

			err := integrator.SetBidCap(context.Background(), "9", 150)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestGoogleIntegrator_ClienteDesconhecido(t *testing.T) {
	integrator, _ := newTestIntegrator(t, []string{"111", "222"}, func(w http.ResponseWriter, r *http.Request, query string) {
		t.Errorf("unexpected call %s", r.URL.Path)
	})

	_, err := integrator.ListAdsets(context.Background(), "1", domain.DateRange{})
	assert.True(t, errors.Is(err, domain.ErrEntityNotFound), "got %v", err)

	_, err = integrator.Duplicate(context.Background(), domain.EntityTypeCampaign, "1", "")
	assert.True(t, errors.Is(err, domain.ErrUnsupported), "got %v", err)
}

package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repoMocks "github.com/vfg2006/ads-ops-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-ops-api/internal/api/handler/router"
	"github.com/vfg2006/ads-ops-api/internal/domain"
	"github.com/vfg2006/ads-ops-api/internal/platform"
	"github.com/vfg2006/ads-ops-api/internal/platform/platformtest"
	"github.com/vfg2006/ads-ops-api/internal/scheduler"
	schedulerMocks "github.com/vfg2006/ads-ops-api/internal/scheduler/mocks"
	"github.com/vfg2006/ads-ops-api/internal/usecases/accountmapping"
	accountMocks "github.com/vfg2006/ads-ops-api/internal/usecases/accountmapping/mocks"
	activityMocks "github.com/vfg2006/ads-ops-api/internal/usecases/activitylog/mocks"
	authMocks "github.com/vfg2006/ads-ops-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/ads-ops-api/internal/usecases/bulkops"
	bulkMocks "github.com/vfg2006/ads-ops-api/internal/usecases/bulkops/mocks"
	"github.com/vfg2006/ads-ops-api/internal/usecases/livecampaign"
	liveMocks "github.com/vfg2006/ads-ops-api/internal/usecases/livecampaign/mocks"
	"github.com/vfg2006/ads-ops-api/internal/usecases/mutating"
	mutatingMocks "github.com/vfg2006/ads-ops-api/internal/usecases/mutating/mocks"
	"github.com/vfg2006/ads-ops-api/pkg/apiErrors"
	"github.com/vfg2006/ads-ops-api/pkg/log"
	"github.com/vfg2006/ads-ops-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

type fixedStats map[domain.Platform]int

func (f fixedStats) Stats() map[domain.Platform]int {
	return f
}

const webhookSecret = "segredo-de-teste"

type testAPI struct {
	live     *liveMocks.MockLiveCampaignService
	mutation *mutatingMocks.MockMutationService
	bulk     *bulkMocks.MockBulkOperations
	sync     *schedulerMocks.MockSyncService
	activity *activityMocks.MockActivityLogService
	mapping  *accountMocks.MockAccountMappingService
	auth     *authMocks.MockAuthenticator
	handler  http.Handler
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	ctrl := gomock.NewController(t)
	api := &testAPI{
		live:     liveMocks.NewMockLiveCampaignService(ctrl),
		mutation: mutatingMocks.NewMockMutationService(ctrl),
		bulk:     bulkMocks.NewMockBulkOperations(ctrl),
		sync:     schedulerMocks.NewMockSyncService(ctrl),
		activity: activityMocks.NewMockActivityLogService(ctrl),
		mapping:  accountMocks.NewMockAccountMappingService(ctrl),
		auth:     authMocks.NewMockAuthenticator(ctrl),
	}

	adapters := platform.NewRegistry(platformtest.NewFake(domain.PlatformMeta), platformtest.NewFake(domain.PlatformTikTok))

	api.handler = router.New(
		router.WithRoutes(Healthcheck(adapters, fixedStats{domain.PlatformMeta: 3})...),
		router.WithRoutes(Authentication(api.auth)...),
		router.WithRoutes(LiveCampaigns(api.live)...),
		router.WithRoutes(LiveMutations(api.mutation, api.bulk)...),
		router.WithRoutes(LiveSync(api.sync, adapters, webhookSecret)...),
		router.WithRoutes(ActivityLog(api.activity)...),
		router.WithRoutes(AccountMap(api.mapping, api.bulk)...),
	)

	return api
}

// do executa a requisição como o usuário do role informado; role 0 é anônimo
func (a *testAPI) do(method, path string, body string, role int) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if role != 0 {
		req = req.WithContext(middleware.WithClaims(req.Context(), &domain.Claims{UserID: 7, UserRoleID: role}))
	}

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr.Code
}

func TestHealthcheck(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/api/health", "", 0)

	require.Equal(t, http.StatusOK, rec.Code)
	var body healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, []domain.Platform{domain.PlatformMeta, domain.PlatformTikTok}, body.Platforms)
	assert.Equal(t, 3, body.LoadedNodes[domain.PlatformMeta])
}

func TestListLiveCampaigns(t *testing.T) {
	t.Run("listagem parcial informa plataformas com falha", func(t *testing.T) {
		api := newTestAPI(t)
		api.live.EXPECT().
			ListCampaigns(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter domain.CampaignFilter) (*livecampaign.CampaignList, error) {
				assert.Empty(t, filter.Platform)
				assert.Equal(t, "acc-1", filter.AccountID)
				require.NotNil(t, filter.DateRange.Start)
				assert.Equal(t, "2026-01-01", filter.DateRange.Start.Format("2006-01-02"))
				return &livecampaign.CampaignList{
					Campaigns: []domain.CampaignView{{LiveCampaign: domain.LiveCampaign{CampaignID: "1", Platform: domain.PlatformMeta}}},
					PlatformErrors: map[domain.Platform]error{
						domain.PlatformGoogle: errors.New("down"),
						domain.PlatformTikTok: errors.New("down"),
					},
				}, nil
			})

		rec := api.do(http.MethodGet, "/api/campaigns/live?start=2026-01-01&end=2026-01-31&account=acc-1", "", middleware.RoleClient)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "tiktok,google", rec.Header().Get(HeaderPlatformErrors))

		var campaigns []domain.CampaignView
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &campaigns))
		require.Len(t, campaigns, 1)
		assert.Equal(t, "1", campaigns[0].CampaignID)
	})

	t.Run("plataforma desconhecida", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodGet, "/api/campaigns/live?platform=orkut", "", middleware.RoleClient)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, errorCode(t, rec))
	})

	t.Run("período invertido", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodGet, "/api/campaigns/live?start=2026-02-01&end=2026-01-01", "", middleware.RoleClient)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("sem autenticação", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodGet, "/api/campaigns/live", "", 0)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestListLiveAdsets(t *testing.T) {
	api := newTestAPI(t)
	key := domain.NewEntityKey(domain.PlatformMeta, domain.EntityTypeCampaign, "c1")
	api.live.EXPECT().
		ListAdsets(gomock.Any(), key, gomock.Any(), true).
		Return([]domain.AdsetView{{LiveAdset: domain.LiveAdset{AdsetID: "a1", CampaignID: "c1"}}}, nil)

	rec := api.do(http.MethodGet, "/api/campaigns/live/meta/c1/adsets?refresh=true", "", middleware.RoleClient)

	require.Equal(t, http.StatusOK, rec.Code)
	var adsets []domain.AdsetView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &adsets))
	require.Len(t, adsets, 1)
	assert.Equal(t, "a1", adsets[0].AdsetID)
}

func TestListLiveAds_PaiNaoExpandido(t *testing.T) {
	api := newTestAPI(t)
	key := domain.NewEntityKey(domain.PlatformTikTok, domain.EntityTypeAdset, "a1")
	api.live.EXPECT().
		ListAds(gomock.Any(), key, gomock.Any(), false).
		Return(nil, domain.NewLiveError(domain.ErrParentNotExpanded, key, "", ""))

	rec := api.do(http.MethodGet, "/api/campaigns/live/tiktok/a1/ads", "", middleware.RoleClient)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrLiveNotExpanded, errorCode(t, rec))
}

func TestCollapse(t *testing.T) {
	api := newTestAPI(t)
	api.live.EXPECT().Collapse(domain.NewEntityKey(domain.PlatformMeta, domain.EntityTypeAdset, "a1")).Return(nil)

	rec := api.do(http.MethodDelete, "/api/campaigns/live/meta/a1/ads", "", middleware.RoleClient)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSetLiveStatus(t *testing.T) {
	key := domain.NewEntityKey(domain.PlatformMeta, domain.EntityTypeAdset, "a1")

	tests := []struct {
		name       string
		body       string
		role       int
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "pausa confirmada",
			body:       `{"enable": false}`,
			role:       middleware.RoleSupervisor,
			wantStatus: http.StatusOK,
		},
		{
			name:       "mutação em andamento",
			body:       `{"enable": true}`,
			role:       middleware.RoleAdmin,
			err:        domain.NewLiveError(domain.ErrBusy, key, domain.ActionSetStatus, ""),
			wantStatus: http.StatusConflict,
			wantCode:   apiErrors.ErrLiveBusy,
		},
		{
			name:       "falha da plataforma",
			body:       `{"enable": true}`,
			role:       middleware.RoleAdmin,
			err:        domain.WrapLiveError(errors.New("timeout"), key, domain.ActionSetStatus),
			wantStatus: http.StatusBadGateway,
			wantCode:   apiErrors.ErrLiveUpstream,
		},
		{
			name:       "sem campo enable",
			body:       `{}`,
			role:       middleware.RoleAdmin,
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name:       "cliente não pode alterar",
			body:       `{"enable": true}`,
			role:       middleware.RoleClient,
			wantStatus: http.StatusForbidden,
			wantCode:   apiErrors.ErrInsufficientPrivilege,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)

			if tt.wantCode == "" || tt.err != nil {
				api.mutation.EXPECT().
					SetStatus(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req mutating.StatusRequest) error {
						assert.Equal(t, key, req.Key)
						require.NotNil(t, req.UserID)
						assert.Equal(t, 7, *req.UserID)
						return tt.err
					})
			}
			if tt.err == nil && tt.wantCode == "" {
				api.mutation.EXPECT().State(key).Return(domain.MutationCommitted)
			}

			rec := api.do(http.MethodPatch, "/api/campaigns/live/meta/adset/a1/status", tt.body, tt.role)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorCode(t, rec))
				return
			}

			var resp MutationResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "meta:a1", resp.Key)
			assert.Equal(t, domain.MutationCommitted, resp.MutationState)
		})
	}
}

func TestSetLiveBudget(t *testing.T) {
	t.Run("tipo padrão é conjunto de anúncios", func(t *testing.T) {
		api := newTestAPI(t)
		key := domain.NewEntityKey(domain.PlatformTikTok, domain.EntityTypeAdset, "a1")
		api.mutation.EXPECT().
			SetBudget(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req mutating.BudgetRequest) error {
				assert.Equal(t, key, req.Key)
				assert.Equal(t, int64(5000), req.NewBudgetCents)
				require.NotNil(t, req.PreviousBudgetCents)
				assert.Equal(t, int64(4000), *req.PreviousBudgetCents)
				return nil
			})
		api.mutation.EXPECT().State(key).Return(domain.MutationCommitted)

		rec := api.do(http.MethodPatch, "/api/campaigns/live/tiktok/a1/budget",
			`{"new_budget_cents": 5000, "previous_budget_cents": 4000}`, middleware.RoleAdmin)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("orçamento de campanha com conflito", func(t *testing.T) {
		api := newTestAPI(t)
		key := domain.NewEntityKey(domain.PlatformMeta, domain.EntityTypeCampaign, "c1")
		api.mutation.EXPECT().
			SetBudget(gomock.Any(), gomock.Any()).
			Return(domain.WrapLiveError(domain.ErrConflict, key, domain.ActionSetBudget))

		rec := api.do(http.MethodPatch, "/api/campaigns/live/meta/c1/budget",
			`{"new_budget_cents": 5000, "entity_type": "campaign"}`, middleware.RoleAdmin)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, apiErrors.ErrLiveConflict, errorCode(t, rec))
	})

	t.Run("plataforma não suporta", func(t *testing.T) {
		api := newTestAPI(t)
		key := domain.NewEntityKey(domain.PlatformMeta, domain.EntityTypeCampaign, "c1")
		api.mutation.EXPECT().
			SetBudget(gomock.Any(), gomock.Any()).
			Return(domain.WrapLiveError(domain.ErrUnsupported, key, domain.ActionSetBudget))

		rec := api.do(http.MethodPatch, "/api/campaigns/live/meta/c1/budget",
			`{"new_budget_cents": 5000, "entity_type": "campaign"}`, middleware.RoleAdmin)

		assert.Equal(t, apiErrors.ErrLiveUnsupported, errorCode(t, rec))
	})

	t.Run("sem valor", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodPatch, "/api/campaigns/live/meta/c1/budget", `{}`, middleware.RoleAdmin)

		assert.Equal(t, apiErrors.ErrMissingRequiredData, errorCode(t, rec))
	})
}

func TestSetLiveBidCap(t *testing.T) {
	api := newTestAPI(t)
	key := domain.NewEntityKey(domain.PlatformMeta, domain.EntityTypeAdset, "a1")
	api.mutation.EXPECT().
		SetBidCap(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req mutating.BidCapRequest) error {
			assert.Equal(t, key, req.Key)
			assert.Equal(t, int64(150), req.NewBidCapCents)
			return nil
		})
	api.mutation.EXPECT().State(key).Return(domain.MutationCommitted)

	rec := api.do(http.MethodPatch, "/api/campaigns/live/meta/a1/bid-cap", `{"new_bid_cap_cents": 150}`, middleware.RoleSupervisor)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDuplicateLiveEntity(t *testing.T) {
	t.Run("cópia criada", func(t *testing.T) {
		api := newTestAPI(t)
		api.mutation.EXPECT().
			Duplicate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req mutating.DuplicateRequest) (*mutating.DuplicateResult, error) {
				assert.Equal(t, domain.NewEntityKey(domain.PlatformMeta, domain.EntityTypeAdset, "a1"), req.Key)
				assert.Equal(t, "c2", req.TargetParentID)
				return &mutating.DuplicateResult{Platform: domain.PlatformMeta, EntityType: domain.EntityTypeAdset, SourceID: "a1", NewEntityID: "a9"}, nil
			})

		rec := api.do(http.MethodPost, "/api/campaigns/live/adset/a1/duplicate",
			`{"platform": "meta", "target_parent_id": "c2"}`, middleware.RoleAdmin)

		require.Equal(t, http.StatusOK, rec.Code)
		var result mutating.DuplicateResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, "a9", result.NewEntityID)
	})

	t.Run("sem plataforma", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodPost, "/api/campaigns/live/adset/a1/duplicate", `{}`, middleware.RoleAdmin)

		assert.Equal(t, apiErrors.ErrMissingRequiredData, errorCode(t, rec))
	})
}

func TestBulkSetStatus(t *testing.T) {
	api := newTestAPI(t)
	refs := []domain.CampaignRef{{Platform: domain.PlatformMeta, CampaignID: "c1"}, {Platform: domain.PlatformTikTok, CampaignID: "c2"}}
	api.bulk.EXPECT().
		SetStatus(gomock.Any(), refs, false, gomock.Any()).
		Return(&domain.BulkResult{Succeeded: 1, Failed: 1})

	rec := api.do(http.MethodPost, "/api/campaigns/bulk/status",
		`{"enable": false, "campaigns": [{"platform": "meta", "campaign_id": "c1"}, {"platform": "tiktok", "campaign_id": "c2"}]}`,
		middleware.RoleAdmin)

	require.Equal(t, http.StatusOK, rec.Code)
	var result domain.BulkResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 1, result.Failed)
}

func TestTriggerSync(t *testing.T) {
	t.Run("plataforma configurada", func(t *testing.T) {
		api := newTestAPI(t)
		api.sync.EXPECT().Trigger(domain.PlatformMeta)

		rec := api.do(http.MethodPost, "/api/campaigns/sync/meta", "", middleware.RoleAdmin)

		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("plataforma sem credenciais", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodPost, "/api/campaigns/sync/google", "", middleware.RoleAdmin)

		assert.Equal(t, apiErrors.ErrPlatformDisabled, errorCode(t, rec))
	})
}

func TestSyncStatus(t *testing.T) {
	api := newTestAPI(t)
	api.sync.EXPECT().GetStatus().Return([]scheduler.PlatformSyncStatus{{Platform: domain.PlatformMeta, Runs: 3}})

	rec := api.do(http.MethodGet, "/api/campaigns/sync/status", "", middleware.RoleClient)

	require.Equal(t, http.StatusOK, rec.Code)
	var status []scheduler.PlatformSyncStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	require.Len(t, status, 1)
	assert.Equal(t, int64(3), status[0].Runs)
}

func TestPlatformWebhook(t *testing.T) {
	body := `{"object": "ad_account", "entry": []}`

	t.Run("assinatura válida agenda resync", func(t *testing.T) {
		api := newTestAPI(t)
		api.sync.EXPECT().Trigger(domain.PlatformTikTok)

		req := httptest.NewRequest(http.MethodPost, "/api/webhooks/tiktok", bytes.NewBufferString(body))
		req.Header.Set(middleware.HeaderSignature, middleware.Sign(webhookSecret, []byte(body)))
		rec := httptest.NewRecorder()
		api.handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusAccepted, rec.Code)
		var accepted SyncAccepted
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &accepted))
		assert.NotEmpty(t, accepted.DeliveryID)
	})

	t.Run("assinatura inválida", func(t *testing.T) {
		api := newTestAPI(t)

		req := httptest.NewRequest(http.MethodPost, "/api/webhooks/tiktok", bytes.NewBufferString(body))
		req.Header.Set(middleware.HeaderSignature, middleware.Sign("outro", []byte(body)))
		rec := httptest.NewRecorder()
		api.handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestListActivityLog(t *testing.T) {
	t.Run("limite repassado", func(t *testing.T) {
		api := newTestAPI(t)
		api.activity.EXPECT().
			List(gomock.Any(), "a1", uint64(5)).
			Return([]*domain.ActivityLogEntryResponse{{ActivityLogEntry: domain.ActivityLogEntry{EntityID: "a1"}}}, nil)

		rec := api.do(http.MethodGet, "/api/campaigns/live/a1/activity-log?limit=5", "", middleware.RoleClient)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("limite inválido", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodGet, "/api/campaigns/live/a1/activity-log?limit=-1", "", middleware.RoleClient)

		assert.Equal(t, apiErrors.ErrInvalidFormat, errorCode(t, rec))
	})

	t.Run("falha no banco", func(t *testing.T) {
		api := newTestAPI(t)
		api.activity.EXPECT().List(gomock.Any(), "a1", uint64(0)).Return(nil, errors.New("conn refused"))

		rec := api.do(http.MethodGet, "/api/campaigns/live/a1/activity-log", "", middleware.RoleClient)

		assert.Equal(t, apiErrors.ErrDatabaseOperation, errorCode(t, rec))
	})
}

func TestAccountMap(t *testing.T) {
	t.Run("associação com conta inexistente", func(t *testing.T) {
		api := newTestAPI(t)
		api.mapping.EXPECT().
			Assign(gomock.Any(), domain.AssignAccountRequest{CampaignID: "c1", Platform: domain.PlatformMeta, AccountID: "x"}).
			Return(nil, accountmapping.NewMappingError(accountmapping.ErrAccountNotFound, apiErrors.ErrNotFound, "c1", "x"))

		rec := api.do(http.MethodPost, "/api/campaigns/account-map",
			`{"campaign_id": "c1", "platform": "meta", "account_id": "x"}`, middleware.RoleAdmin)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("associação em lote", func(t *testing.T) {
		api := newTestAPI(t)
		api.bulk.EXPECT().
			AssignAccount(gomock.Any(), domain.BulkAssignAccountRequest{CampaignIDs: []string{"c1", "c2"}, Platform: domain.PlatformMeta, AccountID: "acc"}).
			Return(&domain.BulkResult{Succeeded: 2})

		rec := api.do(http.MethodPost, "/api/campaigns/account-map/bulk",
			`{"campaign_ids": ["c1", "c2"], "platform": "meta", "account_id": "acc"}`, middleware.RoleAdmin)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("consulta por ids", func(t *testing.T) {
		api := newTestAPI(t)
		api.mapping.EXPECT().
			List(gomock.Any(), []string{"c1", "c2"}).
			Return([]*domain.CampaignAccountMap{{CampaignID: "c1", AccountID: "acc"}}, nil)

		rec := api.do(http.MethodGet, "/api/campaigns/account-map?campaign_ids=c1,%20c2,", "", middleware.RoleClient)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("consulta sem ids", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodGet, "/api/campaigns/account-map", "", middleware.RoleClient)

		assert.Equal(t, apiErrors.ErrMissingRequiredData, errorCode(t, rec))
	})
}

// Corpos sem plataforma passam pelo serviço real de mapeamento
func TestAccountMap_CorpoSemPlataforma(t *testing.T) {
	newMappingAPI := func(t *testing.T) (http.Handler, *repoMocks.MockCampaignAccountMapRepository, *repoMocks.MockAccountRepository) {
		ctrl := gomock.NewController(t)
		mappingRepo := repoMocks.NewMockCampaignAccountMapRepository(ctrl)
		accountRepo := repoMocks.NewMockAccountRepository(ctrl)

		service := accountmapping.NewService(mappingRepo, accountRepo)
		runner := bulkops.NewRunner(mutatingMocks.NewMockMutationService(ctrl), service, mutatingMocks.NewMockResyncTrigger(ctrl))

		return router.New(router.WithRoutes(AccountMap(service, runner)...)), mappingRepo, accountRepo
	}

	do := func(h http.Handler, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
		req = req.WithContext(middleware.WithClaims(req.Context(), &domain.Claims{UserID: 7, UserRoleID: middleware.RoleAdmin}))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	activeAccount := &domain.AdAccount{ID: "ACC001", Status: domain.AdAccountStatusActive}

	t.Run("associação individual", func(t *testing.T) {
		h, mappingRepo, accountRepo := newMappingAPI(t)
		accountRepo.EXPECT().GetAccountByID(gomock.Any(), "ACC001").Return(activeAccount, nil)
		mappingRepo.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m *domain.CampaignAccountMap) error {
				assert.Equal(t, "120200", m.CampaignID)
				assert.Empty(t, m.Platform)
				assert.Equal(t, "ACC001", m.AccountID)
				return nil
			})

		rec := do(h, "/api/campaigns/account-map", `{"campaign_id":"120200","account_id":"ACC001"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var mapping domain.CampaignAccountMap
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &mapping))
		assert.Equal(t, "120200", mapping.CampaignID)
		assert.Equal(t, "ACC001", mapping.AccountID)
	})

	t.Run("associação em lote", func(t *testing.T) {
		h, mappingRepo, accountRepo := newMappingAPI(t)
		accountRepo.EXPECT().GetAccountByID(gomock.Any(), "ACC001").Return(activeAccount, nil).Times(2)
		mappingRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		rec := do(h, "/api/campaigns/account-map/bulk", `{"campaign_ids":["120200","120201"],"account_id":"ACC001"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var result domain.BulkResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, 2, result.Succeeded)
		assert.Zero(t, result.Failed)
	})

	t.Run("plataforma informada continua validada", func(t *testing.T) {
		h, _, _ := newMappingAPI(t)

		rec := do(h, "/api/campaigns/account-map", `{"campaign_id":"120200","platform":"snap","account_id":"ACC001"}`)

		assert.Equal(t, apiErrors.ErrInvalidFormat, errorCode(t, rec))
	})
}

func TestRotaInexistente(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/api/nada", "", middleware.RoleAdmin)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrNotFound, errorCode(t, rec))
}

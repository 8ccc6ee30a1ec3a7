package handler

import (
	"net/http"

	"github.com/vfg2006/ads-ops-api/internal/api/handler/router"
	"github.com/vfg2006/ads-ops-api/internal/domain"
	"github.com/vfg2006/ads-ops-api/internal/platform"
	"github.com/vfg2006/ads-ops-api/internal/scheduler"
	"github.com/vfg2006/ads-ops-api/internal/usecases/accountmapping"
	"github.com/vfg2006/ads-ops-api/internal/usecases/activitylog"
	"github.com/vfg2006/ads-ops-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-ops-api/internal/usecases/bulkops"
	"github.com/vfg2006/ads-ops-api/internal/usecases/livecampaign"
	"github.com/vfg2006/ads-ops-api/internal/usecases/mutating"
	"github.com/vfg2006/ads-ops-api/pkg/middleware"
)

type middlewares = []func(http.Handler) http.Handler

func Healthcheck(adapters platform.Resolver, tree TreeStats) []router.Route {
	return []router.Route{
		{
			Path:    "/api/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(adapters, tree),
		},
	}
}

func Authentication(authenticator authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/api/login",
			Method:  http.MethodPost,
			Handler: Login(authenticator),
		},
		{
			Path:        "/api/me",
			Method:      http.MethodGet,
			Handler:     GetMe(authenticator),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func LiveCampaigns(service livecampaign.LiveCampaignService) []router.Route {
	return []router.Route{
		{
			Path:        "/api/campaigns/live",
			Method:      http.MethodGet,
			Handler:     ListLiveCampaigns(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/api/campaigns/live/{platform}/{campaignId}/adsets",
			Method:      http.MethodGet,
			Handler:     ListLiveAdsets(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/api/campaigns/live/{platform}/{campaignId}/adsets",
			Method:      http.MethodDelete,
			Handler:     Collapse(service, domain.EntityTypeCampaign, "campaignId"),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/api/campaigns/live/{platform}/{adsetId}/ads",
			Method:      http.MethodGet,
			Handler:     ListLiveAds(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/api/campaigns/live/{platform}/{adsetId}/ads",
			Method:      http.MethodDelete,
			Handler:     Collapse(service, domain.EntityTypeAdset, "adsetId"),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func LiveMutations(service mutating.MutationService, runner bulkops.BulkOperations) []router.Route {
	return []router.Route{
		{
			Path:        "/api/campaigns/live/{platform}/{entityType}/{entityId}/status",
			Method:      http.MethodPatch,
			Handler:     SetLiveStatus(service),
			Middlewares: middlewares{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/api/campaigns/live/{platform}/{entityId}/budget",
			Method:      http.MethodPatch,
			Handler:     SetLiveBudget(service),
			Middlewares: middlewares{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/api/campaigns/live/{platform}/{entityId}/bid-cap",
			Method:      http.MethodPatch,
			Handler:     SetLiveBidCap(service),
			Middlewares: middlewares{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/api/campaigns/live/{entityType}/{entityId}/duplicate",
			Method:      http.MethodPost,
			Handler:     DuplicateLiveEntity(service),
			Middlewares: middlewares{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/api/campaigns/bulk/status",
			Method:      http.MethodPost,
			Handler:     BulkSetStatus(runner),
			Middlewares: middlewares{middleware.AdminOrSupervisor()},
		},
	}
}

func LiveSync(sync scheduler.SyncService, adapters platform.Resolver, webhookSecret string) []router.Route {
	return []router.Route{
		{
			Path:        "/api/campaigns/sync/status",
			Method:      http.MethodGet,
			Handler:     SyncStatus(sync),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/api/campaigns/sync/{platform}",
			Method:      http.MethodPost,
			Handler:     TriggerSync(sync, adapters),
			Middlewares: middlewares{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/api/webhooks/{platform}",
			Method:      http.MethodPost,
			Handler:     PlatformWebhook(sync, adapters),
			Middlewares: middlewares{middleware.WebhookSignature(webhookSecret)},
		},
	}
}

func ActivityLog(service activitylog.ActivityLogService) []router.Route {
	return []router.Route{
		{
			Path:        "/api/campaigns/live/{entityId}/activity-log",
			Method:      http.MethodGet,
			Handler:     ListActivityLog(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func AccountMap(service accountmapping.AccountMappingService, runner bulkops.BulkOperations) []router.Route {
	return []router.Route{
		{
			Path:        "/api/campaigns/account-map",
			Method:      http.MethodGet,
			Handler:     ListCampaignAccounts(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/api/campaigns/account-map",
			Method:      http.MethodPost,
			Handler:     AssignCampaignAccount(service),
			Middlewares: middlewares{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/api/campaigns/account-map/bulk",
			Method:      http.MethodPost,
			Handler:     BulkAssignCampaignAccount(runner),
			Middlewares: middlewares{middleware.AdminOrSupervisor()},
		},
	}
}

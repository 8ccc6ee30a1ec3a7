package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-ops-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-ops-api/infrastructure/integrator/google"
	"github.com/vfg2006/ads-ops-api/infrastructure/integrator/httpx"
	"github.com/vfg2006/ads-ops-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-ops-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-ops-api/infrastructure/integrator/newsbreak"
	"github.com/vfg2006/ads-ops-api/infrastructure/integrator/tiktok"
	"github.com/vfg2006/ads-ops-api/infrastructure/integrator/tiktok/tiktokclient"
	"github.com/vfg2006/ads-ops-api/infrastructure/repository"
	"github.com/vfg2006/ads-ops-api/internal/api"
	"github.com/vfg2006/ads-ops-api/internal/config"
	"github.com/vfg2006/ads-ops-api/internal/domain"
	"github.com/vfg2006/ads-ops-api/internal/livetree"
	"github.com/vfg2006/ads-ops-api/internal/platform"
	"github.com/vfg2006/ads-ops-api/internal/scheduler"
	"github.com/vfg2006/ads-ops-api/internal/usecases/accountmapping"
	"github.com/vfg2006/ads-ops-api/internal/usecases/activitylog"
	"github.com/vfg2006/ads-ops-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-ops-api/internal/usecases/bulkops"
	"github.com/vfg2006/ads-ops-api/internal/usecases/livecampaign"
	"github.com/vfg2006/ads-ops-api/internal/usecases/mutating"
	"github.com/vfg2006/ads-ops-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	accountRepo := repository.NewAccountRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	accountMapRepo := repository.NewCampaignAccountMapRepository(pgConn)
	activityLogRepo := repository.NewActivityLogRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	activityLogService := activitylog.NewService(activityLogRepo)
	accountMappingService := accountmapping.NewService(accountMapRepo, accountRepo)

	adapters := platformRegistry(ctx, cfg)
	if len(adapters.Platforms()) == 0 {
		logrus.Warn("Nenhuma plataforma configurada, a listagem de campanhas ao vivo ficará vazia")
	}

	store := livetree.NewStore(ctx, adapters, cfg.Live.FetchTimeout)

	resyncService := scheduler.NewResyncService(store, adapters, scheduler.ResyncConfigFrom(cfg))
	if err := resyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de resync de campanhas ao vivo")
	}
	defer resyncService.Stop()

	coordinator := mutating.NewCoordinator(adapters, store, activityLogService, resyncService, mutating.Options{
		MinBudgetCents: cfg.Live.MinBudgetCents,
		Timeout:        cfg.Live.MutationTimeout,
	})
	resyncService.OnSynced(coordinator.Settle)

	liveCampaignService := livecampaign.NewService(store, adapters, coordinator, accountMappingService)
	bulkRunner := bulkops.NewRunner(coordinator, accountMappingService, resyncService)

	server, err := api.New(cfg, api.Services{
		Adapters:       adapters,
		Tree:           store,
		Authenticator:  authenticator,
		LiveCampaigns:  liveCampaignService,
		Mutations:      coordinator,
		Bulk:           bulkRunner,
		Sync:           resyncService,
		ActivityLog:    activityLogService,
		AccountMapping: accountMappingService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// platformRegistry registra apenas as plataformas com credenciais configuradas
func platformRegistry(ctx context.Context, cfg *config.Config) *platform.Registry {
	registry := platform.NewRegistry()
	limit := func(a platform.Adapter) platform.Adapter {
		return platform.WithConcurrencyLimit(a, cfg.Live.PlatformConcurrency)
	}

	if cfg.MetaEnabled() {
		requester := httpx.NewRequester(domain.PlatformMeta, requesterOptions(cfg))
		tokenManager := metaclient.NewTokenManager(cfg.Meta, requester)
		if cfg.Meta.TokenRefreshEnabled {
			go tokenManager.StartAutoRefresh(ctx)
		}

		client := metaclient.NewClient(cfg.Meta, requester, tokenManager)
		registry.Register(limit(meta.New(cfg.Meta, client)))
	}

	if cfg.TikTokEnabled() {
		client := tiktokclient.NewClient(cfg.TikTok, httpx.NewRequester(domain.PlatformTikTok, requesterOptions(cfg)))
		registry.Register(limit(tiktok.New(cfg.TikTok, client)))
	}

	if cfg.NewsBreakEnabled() {
		client := newsbreak.NewClient(cfg.NewsBreak, httpx.NewRequester(domain.PlatformNewsBreak, requesterOptions(cfg)))
		registry.Register(limit(newsbreak.New(cfg.NewsBreak, client)))
	}

	if cfg.GoogleEnabled() {
		opts := requesterOptions(cfg)
		opts.Client = google.NewHTTPClient(ctx, cfg.Google)
		client := google.NewClient(cfg.Google, httpx.NewRequester(domain.PlatformGoogle, opts))
		registry.Register(limit(google.New(cfg.Google, client)))
	}

	logrus.WithField("platforms", registry.Platforms()).Info("Plataformas de anúncios registradas")
	return registry
}

func requesterOptions(cfg *config.Config) httpx.Options {
	return httpx.Options{
		Timeout: cfg.Live.HTTPTimeout,
		Retries: cfg.Live.HTTPRetries,
		Backoff: cfg.Live.HTTPRetryBackoff,
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

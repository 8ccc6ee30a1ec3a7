package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-ops-api/internal/api/handler"
	"github.com/vfg2006/ads-ops-api/internal/api/handler/router"
	"github.com/vfg2006/ads-ops-api/internal/config"
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

// Services reúne as dependências expostas pela API
type Services struct {
	Adapters       platform.Resolver
	Tree           handler.TreeStats
	Authenticator  authenticating.Authenticator
	LiveCampaigns  livecampaign.LiveCampaignService
	Mutations      mutating.MutationService
	Bulk           bulkops.BulkOperations
	Sync           scheduler.SyncService
	ActivityLog    activitylog.ActivityLogService
	AccountMapping accountmapping.AccountMappingService
}

type Server struct {
	httpServer *http.Server
}

func New(config *config.Config, services Services) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.Adapters, services.Tree)...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.LiveCampaigns(services.LiveCampaigns)...),
		router.WithRoutes(handler.LiveMutations(services.Mutations, services.Bulk)...),
		router.WithRoutes(handler.LiveSync(services.Sync, services.Adapters, config.Webhook.Secret)...),
		router.WithRoutes(handler.ActivityLog(services.ActivityLog)...),
		router.WithRoutes(handler.AccountMap(services.AccountMapping, services.Bulk)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}

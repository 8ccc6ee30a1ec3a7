package metaclient

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-ops-api/infrastructure/integrator/httpx"
	"github.com/vfg2006/ads-ops-api/internal/config"
)

const (
	refreshInterval = 23 * time.Hour
	retryInterval   = time.Hour
)

// TokenManager guarda o token de acesso da API do Meta e o renova
type TokenManager struct {
	cfg       config.Meta
	requester *httpx.Requester
	now       func() time.Time

	mu        sync.RWMutex
	token     string
	expiresAt time.Time

	refreshMutex sync.Mutex
}

func NewTokenManager(cfg config.Meta, requester *httpx.Requester) *TokenManager {
	return &TokenManager{
		cfg:       cfg,
		requester: requester,
		now:       time.Now,
		token:     cfg.AccessToken,
		expiresAt: cfg.TokenExpiresAt,
	}
}

func (tm *TokenManager) AccessToken() string {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return tm.token
}

func (tm *TokenManager) ExpiresAt() time.Time {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return tm.expiresAt
}

// RefreshToken troca o token atual por um novo token de longa duração.
// Chamadas simultâneas resultam em uma única troca.
func (tm *TokenManager) RefreshToken(ctx context.Context) error {
	current := tm.AccessToken()

	tm.refreshMutex.Lock()
	defer tm.refreshMutex.Unlock()

	// Outra goroutine já renovou enquanto esperávamos
	if tm.AccessToken() != current {
		return nil
	}

	if tm.cfg.AppID == "" || tm.cfg.AppSecret == "" {
		return fmt.Errorf("renovação de token requer META_APP_ID e META_APP_SECRET")
	}

	logrus.Info("Iniciando renovação do token...")
	tokenResponse, err := GetLongLivedToken(ctx, tm.requester, current, tm.cfg.AppID, tm.cfg.AppSecret, tm.cfg.URL)
	if err != nil {
		logrus.Errorf("Erro ao renovar token: %v", err)
		return fmt.Errorf("erro ao obter novo token de longa duração: %w", err)
	}

	tm.mu.Lock()
	tm.token = tokenResponse.AccessToken
	tm.expiresAt = CalculateTokenExpiration(tm.now(), tokenResponse.ExpiresIn)
	expiresAt := tm.expiresAt
	tm.mu.Unlock()

	logrus.Infof("Token de longa duração atualizado com sucesso. Expira em: %s", expiresAt.Format(time.RFC3339))
	return nil
}

// StartAutoRefresh renova o token periodicamente até o contexto terminar
func (tm *TokenManager) StartAutoRefresh(ctx context.Context) {
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			logrus.Info("Iniciando renovação periódica do token da Meta")
			if err := tm.RefreshToken(ctx); err != nil {
				logrus.Errorf("Erro na renovação periódica do token: %v", err)

				// Se falhar, tente novamente em um intervalo mais curto
				ticker.Reset(retryInterval)
				continue
			}

			logrus.Info("Renovação periódica do token concluída com sucesso")
			ticker.Reset(refreshInterval)
		case <-ctx.Done():
			logrus.Info("Encerrando goroutine de renovação periódica do token")
			return
		}
	}
}

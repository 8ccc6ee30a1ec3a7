package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/ads-ops-api/internal/domain"
	"github.com/vfg2006/ads-ops-api/internal/platform"
)

// TreeStats informa quantas entidades estão materializadas em memória por plataforma
type TreeStats interface {
	Stats() map[domain.Platform]int
}

type healthResponse struct {
	Status      string                  `json:"status"`
	Time        time.Time               `json:"time"`
	Platforms   []domain.Platform       `json:"platforms"`
	LoadedNodes map[domain.Platform]int `json:"loaded_nodes,omitempty"`
}

// HealthcheckHandler informa também as plataformas com credenciais configuradas
func HealthcheckHandler(adapters platform.Resolver, tree TreeStats) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := healthResponse{
			Status:    "ok",
			Time:      time.Now(),
			Platforms: adapters.Platforms(),
		}
		if tree != nil {
			resp.LoadedNodes = tree.Stats()
		}

		writeJSON(w, http.StatusOK, resp)
	})
}

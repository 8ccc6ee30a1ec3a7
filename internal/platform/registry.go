package platform

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-ops-api/internal/domain"
)

// ErrPlatformNotConfigured indica uma plataforma conhecida mas sem adaptador registrado
var ErrPlatformNotConfigured = fmt.Errorf("%w: platform not configured", domain.ErrValidation)

type Registry struct {
	mu       sync.RWMutex
	adapters map[domain.Platform]Adapter
}

func NewRegistry(adapters ...Adapter) *Registry {
	r := &Registry{adapters: make(map[domain.Platform]Adapter)}
	for _, a := range adapters {
		r.Register(a)
	}
	return r
}

func (r *Registry) Register(a Adapter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.adapters[a.Platform()]; exists {
		logrus.WithField("platform", a.Platform()).Warn("Adaptador de plataforma substituído")
	}
	r.adapters[a.Platform()] = a
}

func (r *Registry) Adapter(p domain.Platform) (Adapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.adapters[p]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPlatformNotConfigured, p)
	}
	return a, nil
}

// Platforms devolve as plataformas registradas na ordem de exibição
func (r *Registry) Platforms() []domain.Platform {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Platform, 0, len(r.adapters))
	for _, p := range domain.Platforms {
		if _, ok := r.adapters[p]; ok {
			out = append(out, p)
		}
	}
	return out
}

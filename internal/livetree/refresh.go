package livetree

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-ops-api/internal/domain"
)

type expandedSnapshot struct {
	key domain.EntityKey
	rng domain.DateRange
	gen uint64
}

// Refresh busca de novo tudo o que está materializado para a plataforma.
// Um nó recolhido ou re-expandido durante a busca não recebe o resultado.
func (s *Store) Refresh(ctx context.Context, p domain.Platform) error {
	adapter, err := s.adapters.Adapter(p)
	if err != nil {
		return domain.NewSyncError(p, err)
	}

	root, campaigns, adsets, seq := s.snapshot(p)
	if root == nil && len(campaigns) == 0 {
		return nil
	}

	var errs []error

	if root != nil {
		list, err := adapter.ListCampaigns(ctx, root.filter)
		if err != nil {
			errs = append(errs, err)
		} else {
			s.commitCampaigns(p, root.filter, list, seq)
		}
	}

	for _, snap := range campaigns {
		list, err := adapter.ListAdsets(ctx, snap.key.ID, snap.rng)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		s.commitRefresh(snap, func(n *node) { s.replaceAdsets(n, list, seq) })
	}

	for _, snap := range adsets {
		list, err := adapter.ListAds(ctx, snap.key.ID, snap.rng)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		s.commitRefresh(snap, func(n *node) { s.replaceAds(n, list, seq) })
	}

	s.dropOrphanOverrides(p, seq)

	if len(errs) > 0 {
		return domain.NewSyncError(p, errors.Join(errs...))
	}

	logrus.WithFields(logrus.Fields{
		"platform":  p,
		"campaigns": len(campaigns),
		"adsets":    len(adsets),
	}).Debug("Árvore ressincronizada")

	return nil
}

func (s *Store) snapshot(p domain.Platform) (*rootList, []expandedSnapshot, []expandedSnapshot, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var root *rootList
	if r, ok := s.roots[p]; ok {
		root = &rootList{filter: r.filter}
	}

	var campaigns, adsets []expandedSnapshot
	for _, n := range s.nodes {
		if n.key.Platform != p || !n.expanded {
			continue
		}

		snap := expandedSnapshot{key: n.key, rng: n.rng, gen: n.gen}
		switch n.key.Type {
		case domain.EntityTypeCampaign:
			campaigns = append(campaigns, snap)
		case domain.EntityTypeAdset:
			adsets = append(adsets, snap)
		}
	}

	return root, campaigns, adsets, s.seq
}

func (s *Store) commitRefresh(snap expandedSnapshot, apply func(n *node)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := snap.key.String()
	n, ok := s.nodes[k]
	if !ok || !n.expanded || n.gen != snap.gen {
		return
	}
	if _, loading := s.pending[k]; loading {
		return
	}

	apply(n)
}

// dropOrphanOverrides remove overrides de entidades que nunca foram materializadas
func (s *Store) dropOrphanOverrides(p domain.Platform, seq uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefix := string(p) + ":"
	for k := range s.overrides {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		if _, ok := s.nodes[k]; ok {
			continue
		}
		s.clearOverridesUpTo(k, seq)
	}
}

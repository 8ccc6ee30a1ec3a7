package livetree

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-ops-api/internal/domain"
	"github.com/vfg2006/ads-ops-api/internal/platform"
	"golang.org/x/sync/singleflight"
)

type NodeState string

const (
	StateCollapsed NodeState = "collapsed"
	StateLoading   NodeState = "loading"
	StateLoaded    NodeState = "loaded"
)

// Store mantém a árvore campanha → conjunto de anúncios → anúncio materializada sob demanda.
// O lock protege apenas os mapas e nunca é mantido durante chamadas de rede.
type Store struct {
	adapters     platform.Resolver
	baseCtx      context.Context
	fetchTimeout time.Duration

	mu        sync.RWMutex
	nodes     map[string]*node
	roots     map[domain.Platform]*rootList
	pending   map[string]*pendingFetch
	overrides map[string]*overrideSet
	seq       uint64
	gen       uint64

	group singleflight.Group
}

type node struct {
	key      domain.EntityKey
	parent   string
	campaign *domain.LiveCampaign
	adset    *domain.LiveAdset
	ad       *domain.LiveAd
	children []string
	expanded bool
	rng      domain.DateRange
	gen      uint64
}

type rootList struct {
	filter domain.CampaignFilter
	keys   []string
}

type pendingFetch struct {
	gen       uint64
	flightKey string
	cancel    context.CancelFunc
}

// NewStore cria o store. ctx limita a vida de todas as buscas iniciadas por ele.
func NewStore(ctx context.Context, adapters platform.Resolver, fetchTimeout time.Duration) *Store {
	return &Store{
		adapters:     adapters,
		baseCtx:      ctx,
		fetchTimeout: fetchTimeout,
		nodes:        make(map[string]*node),
		roots:        make(map[domain.Platform]*rootList),
		pending:      make(map[string]*pendingFetch),
		overrides:    make(map[string]*overrideSet),
	}
}

// LoadCampaigns busca a lista de campanhas da plataforma e a torna raiz da árvore.
// Chamadas simultâneas para a mesma plataforma e período compartilham a mesma busca.
func (s *Store) LoadCampaigns(ctx context.Context, p domain.Platform, filter domain.CampaignFilter) ([]domain.LiveCampaign, error) {
	rootKey := domain.NewEntityKey(p, "", "")

	adapter, err := s.adapters.Adapter(p)
	if err != nil {
		return nil, domain.WrapLiveError(err, rootKey, domain.ActionListCampaigns)
	}

	filter.Platform = p
	flightKey := "campaigns|" + string(p) + "|" + filter.DateRange.String()

	val, err := s.do(ctx, flightKey, func() (any, error) {
		fetchCtx, cancel := s.fetchContext()
		defer cancel()

		seq := s.currentSeq()
		campaigns, err := adapter.ListCampaigns(fetchCtx, filter)
		if err != nil {
			return nil, domain.WrapLiveError(err, rootKey, domain.ActionListCampaigns)
		}

		s.commitCampaigns(p, filter, campaigns, seq)
		return campaigns, nil
	})
	if err != nil {
		return nil, err
	}

	return s.effectiveCampaigns(val.([]domain.LiveCampaign)), nil
}

// Expand carrega os conjuntos de anúncios de uma campanha.
// Com force falso devolve o que já está materializado para o mesmo período.
func (s *Store) Expand(ctx context.Context, key domain.EntityKey, rng domain.DateRange, force bool) ([]domain.LiveAdset, error) {
	if err := key.Validate(); err != nil {
		return nil, domain.WrapLiveError(err, key, domain.ActionListAdsets)
	}
	if key.Type != domain.EntityTypeCampaign {
		return nil, domain.Validationf(key, domain.ActionListAdsets, "only campaigns expand into adsets")
	}

	if !force {
		if adsets, ok := s.loadedAdsets(key, rng); ok {
			return adsets, nil
		}
	}

	adapter, err := s.adapters.Adapter(key.Platform)
	if err != nil {
		return nil, domain.WrapLiveError(err, key, domain.ActionListAdsets)
	}

	flightKey := "adsets|" + key.String() + "|" + rng.String()
	val, err := s.do(ctx, flightKey, func() (any, error) {
		fetchCtx, gen, seq := s.beginFetch(key, flightKey)
		defer s.endFetch(key, gen)

		adsets, err := adapter.ListAdsets(fetchCtx, key.ID, rng)
		if err != nil {
			if s.superseded(key, gen) {
				return nil, domain.NewLiveError(domain.ErrExpansionCancelled, key, domain.ActionListAdsets, "")
			}
			return nil, domain.WrapLiveError(err, key, domain.ActionListAdsets)
		}

		if !s.commitAdsets(key, gen, seq, rng, adsets) {
			return nil, domain.NewLiveError(domain.ErrExpansionCancelled, key, domain.ActionListAdsets, "")
		}
		return adsets, nil
	})
	if err != nil {
		return nil, err
	}

	return s.effectiveAdsets(val.([]domain.LiveAdset)), nil
}

// ExpandAdset carrega os anúncios de um conjunto já materializado sob uma campanha expandida
func (s *Store) ExpandAdset(ctx context.Context, key domain.EntityKey, rng domain.DateRange, force bool) ([]domain.LiveAd, error) {
	if err := key.Validate(); err != nil {
		return nil, domain.WrapLiveError(err, key, domain.ActionListAds)
	}
	if key.Type != domain.EntityTypeAdset {
		return nil, domain.Validationf(key, domain.ActionListAds, "only adsets expand into ads")
	}

	if !s.parentExpanded(key) {
		return nil, domain.NewLiveError(domain.ErrParentNotExpanded, key, domain.ActionListAds, "expand the campaign first")
	}

	if !force {
		if ads, ok := s.loadedAds(key, rng); ok {
			return ads, nil
		}
	}

	adapter, err := s.adapters.Adapter(key.Platform)
	if err != nil {
		return nil, domain.WrapLiveError(err, key, domain.ActionListAds)
	}

	flightKey := "ads|" + key.String() + "|" + rng.String()
	val, err := s.do(ctx, flightKey, func() (any, error) {
		fetchCtx, gen, seq := s.beginFetch(key, flightKey)
		defer s.endFetch(key, gen)

		ads, err := adapter.ListAds(fetchCtx, key.ID, rng)
		if err != nil {
			if s.superseded(key, gen) {
				return nil, domain.NewLiveError(domain.ErrExpansionCancelled, key, domain.ActionListAds, "")
			}
			return nil, domain.WrapLiveError(err, key, domain.ActionListAds)
		}

		if !s.commitAds(key, gen, seq, rng, ads) {
			return nil, domain.NewLiveError(domain.ErrExpansionCancelled, key, domain.ActionListAds, "")
		}
		return ads, nil
	})
	if err != nil {
		return nil, err
	}

	return s.effectiveAds(val.([]domain.LiveAd)), nil
}

// Collapse remove a subárvore da entidade e cancela apenas as buscas dessa subárvore.
// Mutações em andamento não são afetadas.
func (s *Store) Collapse(key domain.EntityKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key.String()
	s.cancelPending(k)

	n, ok := s.nodes[k]
	if !ok {
		return
	}

	for _, child := range n.children {
		s.removeSubtree(child)
	}
	n.children = nil
	n.expanded = false
	n.rng = domain.DateRange{}

	logrus.WithFields(logrus.Fields{
		"entity_key": k,
	}).Debug("Subárvore recolhida")
}

func (s *Store) State(key domain.EntityKey) NodeState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	k := key.String()
	if _, ok := s.pending[k]; ok {
		return StateLoading
	}
	if n, ok := s.nodes[k]; ok && n.expanded {
		return StateLoaded
	}
	return StateCollapsed
}

func (s *Store) do(ctx context.Context, flightKey string, fn func() (any, error)) (any, error) {
	ch := s.group.DoChan(flightKey, fn)

	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Store) fetchContext() (context.Context, context.CancelFunc) {
	if s.fetchTimeout > 0 {
		return context.WithTimeout(s.baseCtx, s.fetchTimeout)
	}
	return context.WithCancel(s.baseCtx)
}

// beginFetch registra a busca pendente da chave, substituindo uma anterior
func (s *Store) beginFetch(key domain.EntityKey, flightKey string) (context.Context, uint64, uint64) {
	fetchCtx, cancel := s.fetchContext()

	s.mu.Lock()
	defer s.mu.Unlock()

	k := key.String()
	s.cancelPending(k)

	s.gen++
	s.pending[k] = &pendingFetch{gen: s.gen, flightKey: flightKey, cancel: cancel}

	return fetchCtx, s.gen, s.seq
}

func (s *Store) endFetch(key domain.EntityKey, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key.String()
	if p, ok := s.pending[k]; ok && p.gen == gen {
		p.cancel()
		delete(s.pending, k)
	}
}

func (s *Store) superseded(key domain.EntityKey, gen uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.pending[key.String()]
	return !ok || p.gen != gen
}

// cancelPending deve ser chamado com o lock de escrita
func (s *Store) cancelPending(k string) {
	if p, ok := s.pending[k]; ok {
		p.cancel()
		s.group.Forget(p.flightKey)
		delete(s.pending, k)
	}
}

// removeSubtree deve ser chamado com o lock de escrita
func (s *Store) removeSubtree(k string) {
	s.cancelPending(k)

	if n, ok := s.nodes[k]; ok {
		for _, child := range n.children {
			s.removeSubtree(child)
		}
	}

	delete(s.nodes, k)
	delete(s.overrides, k)
}

func (s *Store) currentSeq() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seq
}

func (s *Store) parentExpanded(adsetKey domain.EntityKey) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.nodes[adsetKey.String()]
	if !ok || n.adset == nil {
		return false
	}
	parent, ok := s.nodes[n.parent]
	return ok && parent.expanded
}

func (s *Store) loadedAdsets(key domain.EntityKey, rng domain.DateRange) ([]domain.LiveAdset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.nodes[key.String()]
	if !ok || !n.expanded || !n.rng.Equal(rng) {
		return nil, false
	}

	out := make([]domain.LiveAdset, 0, len(n.children))
	for _, c := range n.children {
		if child, ok := s.nodes[c]; ok && child.adset != nil {
			out = append(out, s.applyAdset(*child.adset))
		}
	}
	return out, true
}

func (s *Store) loadedAds(key domain.EntityKey, rng domain.DateRange) ([]domain.LiveAd, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.nodes[key.String()]
	if !ok || !n.expanded || !n.rng.Equal(rng) {
		return nil, false
	}

	out := make([]domain.LiveAd, 0, len(n.children))
	for _, c := range n.children {
		if child, ok := s.nodes[c]; ok && child.ad != nil {
			out = append(out, s.applyAd(*child.ad))
		}
	}
	return out, true
}

func (s *Store) commitCampaigns(p domain.Platform, filter domain.CampaignFilter, campaigns []domain.LiveCampaign, seq uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.roots[p]
	listed := make(map[string]struct{}, len(campaigns))
	keys := make([]string, 0, len(campaigns))

	for i := range campaigns {
		c := campaigns[i]
		k := c.Key().String()
		listed[k] = struct{}{}
		keys = append(keys, k)

		n, ok := s.nodes[k]
		if !ok {
			n = &node{key: c.Key()}
			s.nodes[k] = n
		}
		n.campaign = &c
		s.clearOverridesUpTo(k, seq)
	}

	// Campanhas que saíram da lista e não estão expandidas deixam de existir
	if previous != nil {
		for _, k := range previous.keys {
			if _, ok := listed[k]; ok {
				continue
			}
			if n, ok := s.nodes[k]; ok && !n.expanded {
				s.removeSubtree(k)
			}
		}
	}

	s.roots[p] = &rootList{filter: filter, keys: keys}
}

func (s *Store) commitAdsets(key domain.EntityKey, gen, seq uint64, rng domain.DateRange, adsets []domain.LiveAdset) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key.String()
	p, ok := s.pending[k]
	if !ok || p.gen != gen {
		return false
	}
	delete(s.pending, k)

	n, ok := s.nodes[k]
	if !ok {
		n = &node{key: key}
		s.nodes[k] = n
	}

	s.replaceAdsets(n, adsets, seq)
	n.expanded = true
	n.rng = rng
	n.gen = gen
	return true
}

func (s *Store) commitAds(key domain.EntityKey, gen, seq uint64, rng domain.DateRange, ads []domain.LiveAd) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key.String()
	p, ok := s.pending[k]
	if !ok || p.gen != gen {
		return false
	}
	delete(s.pending, k)

	n, ok := s.nodes[k]
	if !ok {
		return false
	}
	if parent, ok := s.nodes[n.parent]; !ok || !parent.expanded {
		return false
	}

	s.replaceAds(n, ads, seq)
	n.expanded = true
	n.rng = rng
	n.gen = gen
	return true
}

// replaceAdsets deve ser chamado com o lock de escrita. Conjuntos que continuam
// na lista mantêm seus anúncios expandidos.
func (s *Store) replaceAdsets(n *node, adsets []domain.LiveAdset, seq uint64) {
	parentKey := n.key.String()
	children := make([]string, 0, len(adsets))
	kept := make(map[string]struct{}, len(adsets))

	for i := range adsets {
		a := adsets[i]
		k := a.Key().String()
		kept[k] = struct{}{}
		children = append(children, k)

		child, ok := s.nodes[k]
		if !ok {
			child = &node{key: a.Key(), parent: parentKey}
			s.nodes[k] = child
		}
		child.adset = &a
		child.parent = parentKey
		s.clearOverridesUpTo(k, seq)
	}

	for _, old := range n.children {
		if _, ok := kept[old]; !ok {
			s.removeSubtree(old)
		}
	}
	n.children = children
}

func (s *Store) replaceAds(n *node, ads []domain.LiveAd, seq uint64) {
	parentKey := n.key.String()
	children := make([]string, 0, len(ads))
	kept := make(map[string]struct{}, len(ads))

	for i := range ads {
		a := ads[i]
		k := a.Key().String()
		kept[k] = struct{}{}
		children = append(children, k)

		child, ok := s.nodes[k]
		if !ok {
			child = &node{key: a.Key(), parent: parentKey}
			s.nodes[k] = child
		}
		child.ad = &a
		child.parent = parentKey
		s.clearOverridesUpTo(k, seq)
	}

	for _, old := range n.children {
		if _, ok := kept[old]; !ok {
			s.removeSubtree(old)
		}
	}
	n.children = children
}

// Stats devolve a quantidade de nós materializados por plataforma
func (s *Store) Stats() map[domain.Platform]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[domain.Platform]int)
	for _, n := range s.nodes {
		out[n.key.Platform]++
	}
	return out
}

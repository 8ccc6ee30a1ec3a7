package livetree

import (
	"github.com/vfg2006/ads-ops-api/internal/domain"
)

// overrideSet guarda, por campo, o valor confirmado e o número de sequência em que foi aplicado
type overrideSet struct {
	status    *bool
	statusSeq uint64
	budget    *int64
	budgetSeq uint64
	bidCap    *int64
	bidCapSeq uint64
}

func (o *overrideSet) empty() bool {
	return o.status == nil && o.budget == nil && o.bidCap == nil
}

// ApplyOverride registra um valor confirmado pela plataforma. Ele prevalece sobre
// o dado buscado até que uma busca iniciada depois dele o substitua.
func (s *Store) ApplyOverride(key domain.EntityKey, o domain.Override) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	k := key.String()

	set, ok := s.overrides[k]
	if !ok {
		set = &overrideSet{}
		s.overrides[k] = set
	}

	switch o.Field {
	case domain.OverrideStatus:
		enabled := o.Enabled
		set.status, set.statusSeq = &enabled, s.seq
	case domain.OverrideBudget:
		set.budget, set.budgetSeq = domain.Int64Ptr(o.Cents), s.seq
	case domain.OverrideBidCap:
		set.bidCap, set.bidCapSeq = domain.Int64Ptr(o.Cents), s.seq
	}
}

func (s *Store) ClearOverride(key domain.EntityKey, field domain.OverrideField) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key.String()
	set, ok := s.overrides[k]
	if !ok {
		return
	}

	switch field {
	case domain.OverrideStatus:
		set.status = nil
	case domain.OverrideBudget:
		set.budget = nil
	case domain.OverrideBidCap:
		set.bidCap = nil
	}

	if set.empty() {
		delete(s.overrides, k)
	}
}

// clearOverridesUpTo deve ser chamado com o lock de escrita.
// Só remove campos aplicados antes do início da busca que trouxe o dado novo.
func (s *Store) clearOverridesUpTo(k string, seq uint64) {
	set, ok := s.overrides[k]
	if !ok {
		return
	}

	if set.status != nil && set.statusSeq <= seq {
		set.status = nil
	}
	if set.budget != nil && set.budgetSeq <= seq {
		set.budget = nil
	}
	if set.bidCap != nil && set.bidCapSeq <= seq {
		set.bidCap = nil
	}

	if set.empty() {
		delete(s.overrides, k)
	}
}

// EffectiveBudget devolve o orçamento diário exibido hoje para a entidade materializada
func (s *Store) EffectiveBudget(key domain.EntityKey) (*int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	k := key.String()
	if set, ok := s.overrides[k]; ok && set.budget != nil {
		return domain.Int64Ptr(*set.budget), true
	}

	n, ok := s.nodes[k]
	if !ok {
		return nil, false
	}

	var budget *int64
	switch {
	case n.campaign != nil:
		budget = n.campaign.DailyBudgetCents
	case n.adset != nil:
		budget = n.adset.DailyBudgetCents
	default:
		return nil, false
	}

	if budget == nil {
		return nil, true
	}
	return domain.Int64Ptr(*budget), true
}

// Campaign devolve a campanha materializada com overrides aplicados
func (s *Store) Campaign(key domain.EntityKey) (domain.LiveCampaign, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.nodes[key.String()]
	if !ok || n.campaign == nil {
		return domain.LiveCampaign{}, false
	}
	return s.applyCampaign(*n.campaign), true
}

func (s *Store) Adset(key domain.EntityKey) (domain.LiveAdset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.nodes[key.String()]
	if !ok || n.adset == nil {
		return domain.LiveAdset{}, false
	}
	return s.applyAdset(*n.adset), true
}

func (s *Store) effectiveCampaigns(in []domain.LiveCampaign) []domain.LiveCampaign {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.LiveCampaign, len(in))
	for i := range in {
		out[i] = s.applyCampaign(in[i])
	}
	return out
}

func (s *Store) effectiveAdsets(in []domain.LiveAdset) []domain.LiveAdset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.LiveAdset, len(in))
	for i := range in {
		out[i] = s.applyAdset(in[i])
	}
	return out
}

func (s *Store) effectiveAds(in []domain.LiveAd) []domain.LiveAd {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.LiveAd, len(in))
	for i := range in {
		out[i] = s.applyAd(in[i])
	}
	return out
}

// As funções apply* recebem cópias e nunca alteram o registro base
func (s *Store) applyCampaign(c domain.LiveCampaign) domain.LiveCampaign {
	set, ok := s.overrides[c.Key().String()]
	if !ok {
		return c
	}

	if set.status != nil {
		c.Status = domain.StatusFromEnabled(*set.status)
	}
	if set.budget != nil {
		c.DailyBudgetCents = domain.Int64Ptr(*set.budget)
	}
	return c
}

func (s *Store) applyAdset(a domain.LiveAdset) domain.LiveAdset {
	set, ok := s.overrides[a.Key().String()]
	if !ok {
		return a
	}

	if set.status != nil {
		a.Status = domain.StatusFromEnabled(*set.status)
	}
	if set.budget != nil {
		a.DailyBudgetCents = domain.Int64Ptr(*set.budget)
	}
	if set.bidCap != nil {
		a.BidCapCents = domain.Int64Ptr(*set.bidCap)
	}
	return a
}

func (s *Store) applyAd(a domain.LiveAd) domain.LiveAd {
	set, ok := s.overrides[a.Key().String()]
	if !ok {
		return a
	}

	if set.status != nil {
		a.Status = domain.StatusFromEnabled(*set.status)
	}
	return a
}

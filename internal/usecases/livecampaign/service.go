package livecampaign

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-ops-api/internal/domain"
	"github.com/vfg2006/ads-ops-api/internal/platform"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// LiveTree é a parte de leitura do EntityStore
type LiveTree interface {
	LoadCampaigns(ctx context.Context, p domain.Platform, filter domain.CampaignFilter) ([]domain.LiveCampaign, error)
	Expand(ctx context.Context, key domain.EntityKey, rng domain.DateRange, force bool) ([]domain.LiveAdset, error)
	ExpandAdset(ctx context.Context, key domain.EntityKey, rng domain.DateRange, force bool) ([]domain.LiveAd, error)
	Collapse(key domain.EntityKey)
}

type MutationStates interface {
	State(key domain.EntityKey) domain.MutationState
}

type AccountLookup interface {
	Lookup(ctx context.Context, campaignIDs []string) (map[string]string, error)
	CampaignIDs(ctx context.Context, accountID string) ([]string, error)
}

type LiveCampaignService interface {
	ListCampaigns(ctx context.Context, filter domain.CampaignFilter) (*CampaignList, error)
	ListAdsets(ctx context.Context, key domain.EntityKey, rng domain.DateRange, refresh bool) ([]domain.AdsetView, error)
	ListAds(ctx context.Context, key domain.EntityKey, rng domain.DateRange, refresh bool) ([]domain.AdView, error)
	Collapse(key domain.EntityKey) error
}

// CampaignList junta as campanhas das plataformas que responderam e as falhas das demais
type CampaignList struct {
	Campaigns      []domain.CampaignView
	PlatformErrors map[domain.Platform]error
}

type Service struct {
	tree      LiveTree
	adapters  platform.Resolver
	mutations MutationStates
	accounts  AccountLookup
}

func NewService(tree LiveTree, adapters platform.Resolver, mutations MutationStates, accounts AccountLookup) *Service {
	return &Service{
		tree:      tree,
		adapters:  adapters,
		mutations: mutations,
		accounts:  accounts,
	}
}

// ListCampaigns consulta a plataforma pedida ou todas as configuradas.
// Com mais de uma plataforma, a falha de uma não derruba a listagem.
func (s *Service) ListCampaigns(ctx context.Context, filter domain.CampaignFilter) (*CampaignList, error) {
	platforms := s.adapters.Platforms()
	if filter.Platform != "" {
		platforms = []domain.Platform{filter.Platform}
	}

	results := make([][]domain.LiveCampaign, len(platforms))
	failures := make(map[domain.Platform]error)
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range platforms {
		g.Go(func() error {
			campaigns, err := s.tree.LoadCampaigns(gctx, p, filter)
			if err != nil {
				if len(platforms) == 1 {
					return err
				}

				logrus.WithFields(logrus.Fields{
					"platform": p,
					"error":    err,
				}).Warn("Falha ao listar campanhas da plataforma")

				mu.Lock()
				failures[p] = err
				mu.Unlock()
				return nil
			}

			results[i] = campaigns
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(platforms) > 0 && len(failures) == len(platforms) {
		errs := make([]error, 0, len(failures))
		for _, p := range platforms {
			errs = append(errs, failures[p])
		}
		return nil, errors.Join(errs...)
	}

	var campaigns []domain.LiveCampaign
	for _, r := range results {
		campaigns = append(campaigns, r...)
	}

	accountMap, err := s.lookupAccounts(ctx, campaigns, filter.AccountID)
	if err != nil {
		if filter.AccountID != "" {
			return nil, err
		}
		logrus.WithError(err).Warn("Listando campanhas sem mapeamento de contas")
	}

	views := make([]domain.CampaignView, 0, len(campaigns))
	for _, c := range campaigns {
		accountID := accountMap[c.CampaignID]
		if filter.AccountID != "" && accountID != filter.AccountID {
			continue
		}

		views = append(views, domain.CampaignView{
			LiveCampaign:  c,
			AccountID:     accountID,
			MutationState: s.mutations.State(c.Key()),
		})
	}

	return &CampaignList{Campaigns: views, PlatformErrors: failures}, nil
}

func (s *Service) ListAdsets(ctx context.Context, key domain.EntityKey, rng domain.DateRange, refresh bool) ([]domain.AdsetView, error) {
	adsets, err := s.tree.Expand(ctx, key, rng, refresh)
	if err != nil {
		return nil, err
	}

	views := make([]domain.AdsetView, 0, len(adsets))
	for _, a := range adsets {
		views = append(views, domain.AdsetView{LiveAdset: a, MutationState: s.mutations.State(a.Key())})
	}
	return views, nil
}

// ListAds lê direto da plataforma quando o conjunto não está materializado na árvore
func (s *Service) ListAds(ctx context.Context, key domain.EntityKey, rng domain.DateRange, refresh bool) ([]domain.AdView, error) {
	ads, err := s.tree.ExpandAdset(ctx, key, rng, refresh)
	if errors.Is(err, domain.ErrParentNotExpanded) {
		ads, err = s.passThroughAds(ctx, key, rng)
	}
	if err != nil {
		return nil, err
	}

	views := make([]domain.AdView, 0, len(ads))
	for _, a := range ads {
		views = append(views, domain.AdView{LiveAd: a, MutationState: s.mutations.State(a.Key())})
	}
	return views, nil
}

func (s *Service) Collapse(key domain.EntityKey) error {
	if err := key.Validate(); err != nil {
		return domain.WrapLiveError(err, key, domain.ActionListAdsets)
	}

	s.tree.Collapse(key)
	return nil
}

func (s *Service) passThroughAds(ctx context.Context, key domain.EntityKey, rng domain.DateRange) ([]domain.LiveAd, error) {
	adapter, err := s.adapters.Adapter(key.Platform)
	if err != nil {
		return nil, domain.WrapLiveError(err, key, domain.ActionListAds)
	}

	logrus.WithField("entity_key", key.String()).Debug("Conjunto não materializado, lendo anúncios direto da plataforma")

	ads, err := adapter.ListAds(ctx, key.ID, rng)
	if err != nil {
		return nil, domain.WrapLiveError(err, key, domain.ActionListAds)
	}
	return ads, nil
}

// lookupAccounts devolve campaign_id -> account_id. Com filtro de conta, só
// as campanhas da conta são consultadas.
func (s *Service) lookupAccounts(ctx context.Context, campaigns []domain.LiveCampaign, accountID string) (map[string]string, error) {
	if s.accounts == nil || len(campaigns) == 0 {
		return map[string]string{}, nil
	}

	if accountID != "" {
		ids, err := s.accounts.CampaignIDs(ctx, accountID)
		if err != nil {
			return nil, err
		}

		out := make(map[string]string, len(ids))
		for _, id := range ids {
			out[id] = accountID
		}
		return out, nil
	}

	ids := make([]string, 0, len(campaigns))
	for _, c := range campaigns {
		ids = append(ids, c.CampaignID)
	}

	return s.accounts.Lookup(ctx, ids)
}

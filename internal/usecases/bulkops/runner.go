package bulkops

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-ops-api/internal/domain"
	"github.com/vfg2006/ads-ops-api/internal/usecases/mutating"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks

type StatusSetter interface {
	SetStatus(ctx context.Context, req mutating.StatusRequest) error
}

type AccountAssigner interface {
	Assign(ctx context.Context, req domain.AssignAccountRequest) (*domain.CampaignAccountMap, error)
}

type ResyncTrigger interface {
	Trigger(p domain.Platform)
}

type BulkOperations interface {
	SetStatus(ctx context.Context, refs []domain.CampaignRef, enable bool, userID *int) *domain.BulkResult
	AssignAccount(ctx context.Context, req domain.BulkAssignAccountRequest) *domain.BulkResult
}

// Runner aplica uma ação a uma seleção de campanhas. Itens da mesma plataforma
// rodam em sequência, plataformas diferentes em paralelo, e uma falha nunca
// interrompe o lote.
type Runner struct {
	mutations StatusSetter
	accounts  AccountAssigner
	resync    ResyncTrigger
}

func NewRunner(mutations StatusSetter, accounts AccountAssigner, resync ResyncTrigger) *Runner {
	return &Runner{
		mutations: mutations,
		accounts:  accounts,
		resync:    resync,
	}
}

// SetStatus devolve um resultado por campanha, na ordem recebida
func (r *Runner) SetStatus(ctx context.Context, refs []domain.CampaignRef, enable bool, userID *int) *domain.BulkResult {
	items := make([]domain.BulkItemResult, len(refs))
	byPlatform := make(map[domain.Platform][]int)
	var order []domain.Platform

	for i, ref := range refs {
		items[i] = domain.BulkItemResult{CampaignID: ref.CampaignID, Platform: ref.Platform}

		if _, err := domain.ParsePlatform(string(ref.Platform)); err != nil {
			items[i].Error = err.Error()
			continue
		}

		if _, ok := byPlatform[ref.Platform]; !ok {
			order = append(order, ref.Platform)
		}
		byPlatform[ref.Platform] = append(byPlatform[ref.Platform], i)
	}

	var g errgroup.Group
	for _, p := range order {
		indexes := byPlatform[p]
		g.Go(func() error {
			for _, i := range indexes {
				err := r.mutations.SetStatus(ctx, mutating.StatusRequest{
					Key:    refs[i].Key(),
					Enable: enable,
					UserID: userID,
				})
				if err != nil {
					items[i].Error = err.Error()
					continue
				}
				items[i].Success = true
			}
			return nil
		})
	}
	_ = g.Wait()

	result := summarize(items)
	r.reload(order)

	logrus.WithFields(logrus.Fields{
		"enable":    enable,
		"total":     len(items),
		"succeeded": result.Succeeded,
		"failed":    result.Failed,
	}).Info("Alteração de status em lote concluída")

	return result
}

// AssignAccount associa cada campanha à conta. A plataforma é opcional e o lote roda em sequência.
func (r *Runner) AssignAccount(ctx context.Context, req domain.BulkAssignAccountRequest) *domain.BulkResult {
	items := make([]domain.BulkItemResult, len(req.CampaignIDs))

	for i, campaignID := range req.CampaignIDs {
		items[i] = domain.BulkItemResult{CampaignID: campaignID, Platform: req.Platform}

		_, err := r.accounts.Assign(ctx, domain.AssignAccountRequest{
			CampaignID: campaignID,
			Platform:   req.Platform,
			AccountID:  req.AccountID,
		})
		if err != nil {
			items[i].Error = err.Error()
			continue
		}
		items[i].Success = true
	}

	// Sem plataforma informada o mapeamento aparece na próxima listagem
	result := summarize(items)
	if result.Succeeded > 0 && req.Platform != "" {
		r.reload([]domain.Platform{req.Platform})
	}

	logrus.WithFields(logrus.Fields{
		"account_id": req.AccountID,
		"total":      len(items),
		"succeeded":  result.Succeeded,
		"failed":     result.Failed,
	}).Info("Associação de contas em lote concluída")

	return result
}

func (r *Runner) reload(platforms []domain.Platform) {
	for _, p := range platforms {
		r.resync.Trigger(p)
	}
}

func summarize(items []domain.BulkItemResult) *domain.BulkResult {
	result := &domain.BulkResult{Items: items}
	for _, item := range items {
		if item.Success {
			result.Succeeded++
		} else {
			result.Failed++
		}
	}
	return result
}

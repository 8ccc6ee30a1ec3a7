package mutating

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-ops-api/internal/domain"
	"github.com/vfg2006/ads-ops-api/internal/platform"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// LiveStore é a parte do EntityStore que o coordenador escreve
type LiveStore interface {
	ApplyOverride(key domain.EntityKey, o domain.Override)
	EffectiveBudget(key domain.EntityKey) (*int64, bool)
}

type ActivityRecorder interface {
	Record(ctx context.Context, entry domain.ActivityLogEntry) (*domain.ActivityLogEntry, error)
}

type ResyncTrigger interface {
	Trigger(p domain.Platform)
}

type MutationService interface {
	SetStatus(ctx context.Context, req StatusRequest) error
	SetBudget(ctx context.Context, req BudgetRequest) error
	SetBidCap(ctx context.Context, req BidCapRequest) error
	Duplicate(ctx context.Context, req DuplicateRequest) (*DuplicateResult, error)
	State(key domain.EntityKey) domain.MutationState
}

type StatusRequest struct {
	Key    domain.EntityKey
	Enable bool
	UserID *int
}

type BudgetRequest struct {
	Key                 domain.EntityKey
	NewBudgetCents      int64
	PreviousBudgetCents *int64
	UserID              *int
}

type BidCapRequest struct {
	Key            domain.EntityKey
	NewBidCapCents int64
	UserID         *int
}

type DuplicateRequest struct {
	Key            domain.EntityKey
	TargetParentID string
	UserID         *int
}

type DuplicateResult struct {
	Platform    domain.Platform   `json:"platform"`
	EntityType  domain.EntityType `json:"entity_type"`
	SourceID    string            `json:"source_id"`
	NewEntityID string            `json:"new_entity_id"`
}

type Options struct {
	MinBudgetCents int64
	Timeout        time.Duration
}

// Coordinator executa uma mutação por entidade de cada vez e só altera o
// EntityStore depois que a plataforma confirma.
type Coordinator struct {
	adapters platform.Resolver
	store    LiveStore
	activity ActivityRecorder
	resync   ResyncTrigger
	opts     Options

	mu     sync.Mutex
	states map[string]mutationEntry
}

type mutationEntry struct {
	state     domain.MutationState
	settledAt time.Time
}

func NewCoordinator(
	adapters platform.Resolver,
	store LiveStore,
	activity ActivityRecorder,
	resync ResyncTrigger,
	opts Options,
) *Coordinator {
	return &Coordinator{
		adapters: adapters,
		store:    store,
		activity: activity,
		resync:   resync,
		opts:     opts,
		states:   make(map[string]mutationEntry),
	}
}

// State devolve o estado da última mutação da entidade, idle quando nunca houve uma
func (c *Coordinator) State(key domain.EntityKey) domain.MutationState {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.states[key.String()]; ok {
		return entry.state
	}
	return domain.MutationIdle
}

// Settle esquece os estados finais da plataforma registrados antes de before.
// Depois de um resync o dado da plataforma já reflete essas mutações.
func (c *Coordinator) Settle(p domain.Platform, before time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	prefix := string(p) + ":"
	for k, entry := range c.states {
		if !strings.HasPrefix(k, prefix) || entry.state == domain.MutationSubmitting {
			continue
		}
		if entry.settledAt.Before(before) {
			delete(c.states, k)
		}
	}
}

func (c *Coordinator) SetStatus(ctx context.Context, req StatusRequest) error {
	if err := req.Key.Validate(); err != nil {
		return domain.WrapLiveError(err, req.Key, domain.ActionSetStatus)
	}

	action := domain.ActivityPause
	if req.Enable {
		action = domain.ActivityResume
	}

	return c.run(ctx, req.Key, domain.ActionSetStatus, func(ctx context.Context, adapter platform.Adapter) error {
		if err := adapter.SetEntityStatus(ctx, req.Key.Type, req.Key.ID, req.Enable); err != nil {
			return err
		}

		c.store.ApplyOverride(req.Key, domain.StatusOverride(req.Enable))
		c.record(ctx, domain.ActivityLogEntry{
			Platform:   req.Key.Platform,
			EntityType: req.Key.Type,
			EntityID:   req.Key.ID,
			Action:     action,
			UserID:     req.UserID,
		})
		return nil
	})
}

func (c *Coordinator) SetBudget(ctx context.Context, req BudgetRequest) error {
	if err := req.Key.Validate(); err != nil {
		return domain.WrapLiveError(err, req.Key, domain.ActionSetBudget)
	}
	if req.Key.Type == domain.EntityTypeAd {
		return domain.Validationf(req.Key, domain.ActionSetBudget, "ads have no budget")
	}
	if req.NewBudgetCents < c.opts.MinBudgetCents {
		return domain.Validationf(req.Key, domain.ActionSetBudget,
			"budget must be at least %d cents, got %d", c.opts.MinBudgetCents, req.NewBudgetCents)
	}

	return c.run(ctx, req.Key, domain.ActionSetBudget, func(ctx context.Context, adapter platform.Adapter) error {
		oldBudget := req.PreviousBudgetCents
		if oldBudget == nil {
			oldBudget, _ = c.store.EffectiveBudget(req.Key)
		}

		if err := adapter.SetBudget(ctx, req.Key.Type, req.Key.ID, req.NewBudgetCents, req.PreviousBudgetCents); err != nil {
			return err
		}

		c.store.ApplyOverride(req.Key, domain.BudgetOverride(req.NewBudgetCents))
		c.record(ctx, domain.ActivityLogEntry{
			Platform:   req.Key.Platform,
			EntityType: req.Key.Type,
			EntityID:   req.Key.ID,
			Action:     domain.ActivityBudgetChange,
			OldBudget:  oldBudget,
			NewBudget:  domain.Int64Ptr(req.NewBudgetCents),
			UserID:     req.UserID,
		})
		return nil
	})
}

func (c *Coordinator) SetBidCap(ctx context.Context, req BidCapRequest) error {
	if err := req.Key.Validate(); err != nil {
		return domain.WrapLiveError(err, req.Key, domain.ActionSetBidCap)
	}
	if req.Key.Type != domain.EntityTypeAdset {
		return domain.Validationf(req.Key, domain.ActionSetBidCap, "bid cap applies to adsets only")
	}
	if req.NewBidCapCents <= 0 {
		return domain.Validationf(req.Key, domain.ActionSetBidCap, "bid cap must be greater than zero")
	}

	return c.run(ctx, req.Key, domain.ActionSetBidCap, func(ctx context.Context, adapter platform.Adapter) error {
		if err := adapter.SetBidCap(ctx, req.Key.ID, req.NewBidCapCents); err != nil {
			return err
		}

		c.store.ApplyOverride(req.Key, domain.BidCapOverride(req.NewBidCapCents))
		c.record(ctx, domain.ActivityLogEntry{
			Platform:   req.Key.Platform,
			EntityType: req.Key.Type,
			EntityID:   req.Key.ID,
			Action:     domain.ActivityBidCapChange,
			UserID:     req.UserID,
		})
		return nil
	})
}

// Duplicate não aplica override: a cópia só aparece na árvore depois do resync
func (c *Coordinator) Duplicate(ctx context.Context, req DuplicateRequest) (*DuplicateResult, error) {
	if err := req.Key.Validate(); err != nil {
		return nil, domain.WrapLiveError(err, req.Key, domain.ActionDuplicate)
	}
	if req.TargetParentID != "" {
		if err := domain.ValidateEntityID(req.TargetParentID); err != nil {
			return nil, domain.WrapLiveError(err, req.Key, domain.ActionDuplicate)
		}
	}

	var newID string
	err := c.run(ctx, req.Key, domain.ActionDuplicate, func(ctx context.Context, adapter platform.Adapter) error {
		id, err := adapter.Duplicate(ctx, req.Key.Type, req.Key.ID, req.TargetParentID)
		if err != nil {
			return err
		}

		newID = id
		c.record(ctx, domain.ActivityLogEntry{
			Platform:   req.Key.Platform,
			EntityType: req.Key.Type,
			EntityID:   req.Key.ID,
			Action:     domain.ActivityDuplicate,
			UserID:     req.UserID,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &DuplicateResult{
		Platform:    req.Key.Platform,
		EntityType:  req.Key.Type,
		SourceID:    req.Key.ID,
		NewEntityID: newID,
	}, nil
}

// run controla a máquina de estados da entidade em volta da chamada ao adaptador.
// A chamada roda desacoplada do contexto do chamador e sempre termina.
func (c *Coordinator) run(ctx context.Context, key domain.EntityKey, action domain.Action, call func(ctx context.Context, adapter platform.Adapter) error) (err error) {
	adapter, err := c.adapters.Adapter(key.Platform)
	if err != nil {
		return domain.WrapLiveError(err, key, action)
	}

	if !c.begin(key) {
		return domain.NewLiveError(domain.ErrBusy, key, action, "")
	}

	// Pânico no adaptador não pode deixar a entidade presa em submitting
	defer func() {
		if r := recover(); r != nil {
			c.finish(key, domain.MutationRolledBack)
			logrus.WithFields(logrus.Fields{
				"platform":   key.Platform,
				"entity_key": key.String(),
				"action":     action,
				"panic":      r,
			}).Error("Pânico durante mutação")
			err = domain.WrapLiveError(fmt.Errorf("%w: adapter panic: %v", domain.ErrUpstream, r), key, action)
		}
	}()

	mutationCtx := context.WithoutCancel(ctx)
	if c.opts.Timeout > 0 {
		var cancel context.CancelFunc
		mutationCtx, cancel = context.WithTimeout(mutationCtx, c.opts.Timeout)
		defer cancel()
	}

	logger := logrus.WithFields(logrus.Fields{
		"platform":   key.Platform,
		"entity_key": key.String(),
		"action":     action,
	})

	if callErr := call(mutationCtx, adapter); callErr != nil {
		c.finish(key, domain.MutationRolledBack)
		logger.WithError(callErr).Warn("Mutação rejeitada pela plataforma")
		return domain.WrapLiveError(callErr, key, action)
	}

	c.finish(key, domain.MutationCommitted)
	logger.Info("Mutação confirmada pela plataforma")

	c.resync.Trigger(key.Platform)
	return nil
}

func (c *Coordinator) begin(key domain.EntityKey) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	k := key.String()
	if c.states[k].state == domain.MutationSubmitting {
		return false
	}
	c.states[k] = mutationEntry{state: domain.MutationSubmitting}
	return true
}

func (c *Coordinator) finish(key domain.EntityKey, state domain.MutationState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.states[key.String()] = mutationEntry{state: state, settledAt: time.Now()}
}

// record nunca falha a mutação: a plataforma já confirmou
func (c *Coordinator) record(ctx context.Context, entry domain.ActivityLogEntry) {
	if c.activity == nil {
		return
	}

	if _, err := c.activity.Record(ctx, entry); err != nil {
		logrus.WithFields(logrus.Fields{
			"platform":  entry.Platform,
			"entity_id": entry.EntityID,
			"action":    entry.Action,
			"error":     err,
		}).Error("Erro ao registrar atividade")
	}
}

package mutating_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-ops-api/internal/domain"
	"github.com/vfg2006/ads-ops-api/internal/livetree"
	"github.com/vfg2006/ads-ops-api/internal/platform"
	platformmocks "github.com/vfg2006/ads-ops-api/internal/platform/mocks"
	"github.com/vfg2006/ads-ops-api/internal/platform/platformtest"
	"github.com/vfg2006/ads-ops-api/internal/usecases/mutating"
	"github.com/vfg2006/ads-ops-api/internal/usecases/mutating/mocks"
	"go.uber.org/mock/gomock"
)

type testEnv struct {
	coord    *mutating.Coordinator
	store    *livetree.Store
	fake     *platformtest.Fake
	activity *mocks.MockActivityRecorder
	resync   *mocks.MockResyncTrigger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	fake := platformtest.NewFake(domain.PlatformMeta)
	fake.AddCampaign("c1", 10000)
	fake.AddAdset("c1", "as_1", 2000)
	fake.AddAdset("c1", "as_7", 3000)
	fake.AddAd("as_1", "ad_42")

	registry := platform.NewRegistry(fake)
	store := livetree.NewStore(context.Background(), registry, 5*time.Second)

	_, err := store.Expand(context.Background(), adsetParent(), domain.DateRange{}, false)
	require.NoError(t, err)

	env := &testEnv{
		store:    store,
		fake:     fake,
		activity: mocks.NewMockActivityRecorder(ctrl),
		resync:   mocks.NewMockResyncTrigger(ctrl),
	}
	env.coord = mutating.NewCoordinator(registry, store, env.activity, env.resync, mutating.Options{
		MinBudgetCents: 500,
		Timeout:        5 * time.Second,
	})
	return env
}

func adsetParent() domain.EntityKey {
	return domain.NewEntityKey(domain.PlatformMeta, domain.EntityTypeCampaign, "c1")
}

func adset(id string) domain.EntityKey {
	return domain.NewEntityKey(domain.PlatformMeta, domain.EntityTypeAdset, id)
}

func TestCoordinator_SetBudget(t *testing.T) {
	tests := []struct {
		name           string
		newBudget      int64
		wantErr        error
		expectedBudget int64
		expectedCalls  int
		expectedState  domain.MutationState
	}{
		{
			name:           "Orçamento exatamente no piso é aceito",
			newBudget:      500,
			expectedBudget: 500,
			expectedCalls:  1,
			expectedState:  domain.MutationCommitted,
		},
		{
			name:           "Orçamento abaixo do piso nunca chega na plataforma",
			newBudget:      499,
			wantErr:        domain.ErrValidation,
			expectedBudget: 2000,
			expectedCalls:  0,
			expectedState:  domain.MutationIdle,
		},
		{
			name:           "Orçamento zero é rejeitado",
			newBudget:      0,
			wantErr:        domain.ErrValidation,
			expectedBudget: 2000,
			expectedCalls:  0,
			expectedState:  domain.MutationIdle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			if tt.wantErr == nil {
				env.activity.EXPECT().
					Record(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, entry domain.ActivityLogEntry) (*domain.ActivityLogEntry, error) {
						assert.Equal(t, domain.ActivityBudgetChange, entry.Action)
						require.NotNil(t, entry.OldBudget)
						assert.Equal(t, int64(2000), *entry.OldBudget)
						assert.Equal(t, tt.newBudget, *entry.NewBudget)
						return &entry, nil
					})
				env.resync.EXPECT().Trigger(domain.PlatformMeta)
			}

			err := env.coord.SetBudget(context.Background(), mutating.BudgetRequest{
				Key:            adset("as_1"),
				NewBudgetCents: tt.newBudget,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.expectedCalls, env.fake.Calls("SetBudget"))
			assert.Equal(t, tt.expectedState, env.coord.State(adset("as_1")))

			budget, ok := env.store.EffectiveBudget(adset("as_1"))
			require.True(t, ok)
			assert.Equal(t, tt.expectedBudget, *budget)
		})
	}
}

func TestCoordinator_SetBudget_ConflitoNaoAlteraStore(t *testing.T) {
	env := newTestEnv(t)

	err := env.coord.SetBudget(context.Background(), mutating.BudgetRequest{
		Key:                 adset("as_1"),
		NewBudgetCents:      1500,
		PreviousBudgetCents: domain.Int64Ptr(1800),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)

	var liveErr *domain.LiveError
	require.ErrorAs(t, err, &liveErr)
	assert.Equal(t, "as_1", liveErr.EntityID)
	assert.Equal(t, domain.PlatformMeta, liveErr.Platform)
	assert.Equal(t, domain.ActionSetBudget, liveErr.Action)

	assert.Equal(t, domain.MutationRolledBack, env.coord.State(adset("as_1")))
	budget, _ := env.store.EffectiveBudget(adset("as_1"))
	assert.Equal(t, int64(2000), *budget)
}

func TestCoordinator_SetBudget_AnuncioNaoTemOrcamento(t *testing.T) {
	env := newTestEnv(t)

	err := env.coord.SetBudget(context.Background(), mutating.BudgetRequest{
		Key:            domain.NewEntityKey(domain.PlatformMeta, domain.EntityTypeAd, "ad_42"),
		NewBudgetCents: 1000,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, 0, env.fake.Calls("SetBudget"))
}

func TestCoordinator_SetBidCap(t *testing.T) {
	env := newTestEnv(t)

	err := env.coord.SetBidCap(context.Background(), mutating.BidCapRequest{Key: adset("as_1"), NewBidCapCents: 0})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, 0, env.fake.Calls("SetBidCap"))

	env.activity.EXPECT().Record(gomock.Any(), gomock.Any()).Return(&domain.ActivityLogEntry{}, nil)
	env.resync.EXPECT().Trigger(domain.PlatformMeta)

	err = env.coord.SetBidCap(context.Background(), mutating.BidCapRequest{Key: adset("as_1"), NewBidCapCents: 150})
	require.NoError(t, err)

	a, ok := env.store.Adset(adset("as_1"))
	require.True(t, ok)
	require.NotNil(t, a.BidCapCents)
	assert.Equal(t, int64(150), *a.BidCapCents)
}

func TestCoordinator_SetStatus_Idempotente(t *testing.T) {
	env := newTestEnv(t)

	env.activity.EXPECT().Record(gomock.Any(), gomock.Any()).Return(&domain.ActivityLogEntry{}, nil).Times(2)
	env.resync.EXPECT().Trigger(domain.PlatformMeta).Times(2)

	for i := 0; i < 2; i++ {
		err := env.coord.SetStatus(context.Background(), mutating.StatusRequest{Key: adset("as_1"), Enable: true})
		require.NoError(t, err)
	}

	a, _ := env.store.Adset(adset("as_1"))
	assert.Equal(t, domain.EntityStatusActive, a.Status)
}

func TestCoordinator_SetStatus_AplicaOverride(t *testing.T) {
	env := newTestEnv(t)

	env.activity.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry domain.ActivityLogEntry) (*domain.ActivityLogEntry, error) {
			assert.Equal(t, domain.ActivityPause, entry.Action)
			return &entry, nil
		})
	env.resync.EXPECT().Trigger(domain.PlatformMeta)

	require.NoError(t, env.coord.SetStatus(context.Background(), mutating.StatusRequest{Key: adset("as_1"), Enable: false}))

	a, _ := env.store.Adset(adset("as_1"))
	assert.Equal(t, domain.EntityStatusPaused, a.Status)
	assert.Equal(t, domain.EntityStatusPaused, env.fake.AdsetStatus("as_1"))
}

func TestCoordinator_Busy(t *testing.T) {
	env := newTestEnv(t)
	env.activity.EXPECT().Record(gomock.Any(), gomock.Any()).Return(&domain.ActivityLogEntry{}, nil)
	env.resync.EXPECT().Trigger(domain.PlatformMeta)

	env.fake.Block()

	errCh := make(chan error, 1)
	go func() {
		errCh <- env.coord.SetBudget(context.Background(), mutating.BudgetRequest{Key: adset("as_1"), NewBudgetCents: 1000})
	}()

	require.Eventually(t, func() bool {
		return env.coord.State(adset("as_1")) == domain.MutationSubmitting
	}, time.Second, 5*time.Millisecond)

	err := env.coord.SetBudget(context.Background(), mutating.BudgetRequest{Key: adset("as_1"), NewBudgetCents: 1200})
	assert.ErrorIs(t, err, domain.ErrBusy)

	env.fake.Release()
	require.NoError(t, <-errCh)
	assert.Equal(t, 1, env.fake.Calls("SetBudget"))
	assert.Equal(t, domain.MutationCommitted, env.coord.State(adset("as_1")))
}

func TestCoordinator_CancelamentoDoChamadorNaoInterrompeMutacao(t *testing.T) {
	env := newTestEnv(t)
	env.activity.EXPECT().Record(gomock.Any(), gomock.Any()).Return(&domain.ActivityLogEntry{}, nil)
	env.resync.EXPECT().Trigger(domain.PlatformMeta)

	env.fake.Block()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- env.coord.SetStatus(ctx, mutating.StatusRequest{Key: adset("as_7"), Enable: false})
	}()

	require.Eventually(t, func() bool {
		return env.coord.State(adset("as_7")) == domain.MutationSubmitting
	}, time.Second, 5*time.Millisecond)

	cancel()
	env.fake.Release()

	require.NoError(t, <-errCh)
	assert.Equal(t, domain.EntityStatusPaused, env.fake.AdsetStatus("as_7"))
}

func TestCoordinator_FalhaNaPlataforma(t *testing.T) {
	env := newTestEnv(t)
	env.fake.FailOn("as_1", fmt.Errorf("%w: status 500", domain.ErrUpstream))

	err := env.coord.SetStatus(context.Background(), mutating.StatusRequest{Key: adset("as_1"), Enable: false})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.Contains(t, err.Error(), "status 500")

	assert.Equal(t, domain.MutationRolledBack, env.coord.State(adset("as_1")))
	a, _ := env.store.Adset(adset("as_1"))
	assert.Equal(t, domain.EntityStatusActive, a.Status)
}

func TestCoordinator_FalhaAoRegistrarAtividadeNaoFalhaMutacao(t *testing.T) {
	env := newTestEnv(t)
	env.activity.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
	env.resync.EXPECT().Trigger(domain.PlatformMeta)

	err := env.coord.SetStatus(context.Background(), mutating.StatusRequest{Key: adset("as_1"), Enable: false})
	assert.NoError(t, err)
	assert.Equal(t, domain.MutationCommitted, env.coord.State(adset("as_1")))
}

func TestCoordinator_PlataformaNaoConfigurada(t *testing.T) {
	env := newTestEnv(t)

	err := env.coord.SetStatus(context.Background(), mutating.StatusRequest{
		Key:    domain.NewEntityKey(domain.PlatformGoogle, domain.EntityTypeCampaign, "123"),
		Enable: true,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCoordinator_Duplicate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.activity.EXPECT().Record(gomock.Any(), gomock.Any()).Return(&domain.ActivityLogEntry{}, nil)
	env.resync.EXPECT().Trigger(domain.PlatformMeta)

	ads, err := env.store.ExpandAdset(ctx, adset("as_7"), domain.DateRange{}, false)
	require.NoError(t, err)
	assert.Empty(t, ads)

	result, err := env.coord.Duplicate(ctx, mutating.DuplicateRequest{
		Key:            domain.NewEntityKey(domain.PlatformMeta, domain.EntityTypeAd, "ad_42"),
		TargetParentID: "as_7",
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.NewEntityID)
	assert.Equal(t, "ad_42", result.SourceID)

	ads, err = env.store.ExpandAdset(ctx, adset("as_7"), domain.DateRange{}, true)
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, result.NewEntityID, ads[0].AdID)
	assert.Equal(t, domain.EntityStatusPaused, ads[0].Status)
}

func TestCoordinator_PanicoNoAdaptadorFazRollback(t *testing.T) {
	ctrl := gomock.NewController(t)

	adapter := platformmocks.NewMockAdapter(ctrl)
	adapter.EXPECT().Platform().Return(domain.PlatformMeta).AnyTimes()
	adapter.EXPECT().
		SetEntityStatus(gomock.Any(), domain.EntityTypeAdset, "as_1", false).
		DoAndReturn(func(context.Context, domain.EntityType, string, bool) error {
			panic("resposta inesperada")
		})
	adapter.EXPECT().
		SetEntityStatus(gomock.Any(), domain.EntityTypeAdset, "as_1", false).
		Return(nil)

	store := mocks.NewMockLiveStore(ctrl)
	store.EXPECT().ApplyOverride(adset("as_1"), domain.StatusOverride(false))
	activity := mocks.NewMockActivityRecorder(ctrl)
	activity.EXPECT().Record(gomock.Any(), gomock.Any()).Return(&domain.ActivityLogEntry{}, nil)
	resync := mocks.NewMockResyncTrigger(ctrl)
	resync.EXPECT().Trigger(domain.PlatformMeta)

	coord := mutating.NewCoordinator(platform.NewRegistry(adapter), store, activity, resync, mutating.Options{Timeout: time.Second})

	err := coord.SetStatus(context.Background(), mutating.StatusRequest{Key: adset("as_1"), Enable: false})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.Contains(t, err.Error(), "resposta inesperada")
	assert.Equal(t, domain.MutationRolledBack, coord.State(adset("as_1")))

	// A entidade não fica presa em submitting
	require.NoError(t, coord.SetStatus(context.Background(), mutating.StatusRequest{Key: adset("as_1"), Enable: false}))
	assert.Equal(t, domain.MutationCommitted, coord.State(adset("as_1")))
}

func TestCoordinator_SettleEsqueceEstadosFinaisAnterioresAoResync(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.activity.EXPECT().Record(gomock.Any(), gomock.Any()).Return(&domain.ActivityLogEntry{}, nil).Times(2)
	env.resync.EXPECT().Trigger(domain.PlatformMeta).Times(2)

	require.NoError(t, env.coord.SetStatus(ctx, mutating.StatusRequest{Key: adset("as_1"), Enable: false}))
	env.fake.FailOn("as_7", fmt.Errorf("%w: status 500", domain.ErrUpstream))
	require.Error(t, env.coord.SetStatus(ctx, mutating.StatusRequest{Key: adset("as_7"), Enable: false}))

	syncStarted := time.Now()
	require.NoError(t, env.coord.SetBidCap(ctx, mutating.BidCapRequest{Key: adset("as_1"), NewBidCapCents: 120}))

	// Plataforma diferente não é afetada
	env.coord.Settle(domain.PlatformTikTok, time.Now())
	assert.Equal(t, domain.MutationCommitted, env.coord.State(adset("as_1")))
	assert.Equal(t, domain.MutationRolledBack, env.coord.State(adset("as_7")))

	// as_1 foi confirmada de novo depois do início do resync e continua visível
	env.coord.Settle(domain.PlatformMeta, syncStarted)
	assert.Equal(t, domain.MutationCommitted, env.coord.State(adset("as_1")))
	assert.Equal(t, domain.MutationIdle, env.coord.State(adset("as_7")))

	env.coord.Settle(domain.PlatformMeta, time.Now().Add(time.Millisecond))
	assert.Equal(t, domain.MutationIdle, env.coord.State(adset("as_1")))
}

func TestCoordinator_SettleNaoEsqueceMutacaoEmAndamento(t *testing.T) {
	env := newTestEnv(t)
	env.activity.EXPECT().Record(gomock.Any(), gomock.Any()).Return(&domain.ActivityLogEntry{}, nil)
	env.resync.EXPECT().Trigger(domain.PlatformMeta)

	env.fake.Block()

	errCh := make(chan error, 1)
	go func() {
		errCh <- env.coord.SetStatus(context.Background(), mutating.StatusRequest{Key: adset("as_1"), Enable: false})
	}()

	require.Eventually(t, func() bool {
		return env.coord.State(adset("as_1")) == domain.MutationSubmitting
	}, time.Second, 5*time.Millisecond)

	env.coord.Settle(domain.PlatformMeta, time.Now().Add(time.Hour))
	assert.Equal(t, domain.MutationSubmitting, env.coord.State(adset("as_1")))

	env.fake.Release()
	require.NoError(t, <-errCh)
}

package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-ops-api/internal/domain"
	"go.uber.org/goleak"
)

type fakeRefresher struct {
	mu     sync.Mutex
	calls  map[domain.Platform]int
	starts map[domain.Platform][]time.Time
	errs   map[domain.Platform]error
	block  map[domain.Platform]chan struct{}
}

func newFakeRefresher() *fakeRefresher {
	return &fakeRefresher{
		calls:  make(map[domain.Platform]int),
		starts: make(map[domain.Platform][]time.Time),
		errs:   make(map[domain.Platform]error),
		block:  make(map[domain.Platform]chan struct{}),
	}
}

func (f *fakeRefresher) Refresh(ctx context.Context, p domain.Platform) error {
	f.mu.Lock()
	f.calls[p]++
	f.starts[p] = append(f.starts[p], time.Now())
	block := f.block[p]
	err := f.errs[p]
	f.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return err
}

func (f *fakeRefresher) Calls(p domain.Platform) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[p]
}

func (f *fakeRefresher) Starts(p domain.Platform) []time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]time.Time(nil), f.starts[p]...)
}

type staticPlatforms []domain.Platform

func (s staticPlatforms) Platforms() []domain.Platform {
	return s
}

func newTestResync(refresher Refresher, cfg ResyncConfig) *ResyncService {
	return NewResyncService(refresher, staticPlatforms{domain.PlatformMeta, domain.PlatformTikTok}, cfg)
}

func TestResyncService_DebounceAgrupaDisparos(t *testing.T) {
	defer goleak.VerifyNone(t)

	refresher := newFakeRefresher()
	svc := newTestResync(refresher, ResyncConfig{DebounceWindow: 50 * time.Millisecond, JobTimeout: time.Second})
	defer svc.Stop()

	for i := 0; i < 5; i++ {
		svc.Trigger(domain.PlatformMeta)
	}

	require.Eventually(t, func() bool {
		return refresher.Calls(domain.PlatformMeta) == 1
	}, time.Second, 5*time.Millisecond)

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, 1, refresher.Calls(domain.PlatformMeta))

	status := findStatus(svc.GetStatus(), domain.PlatformMeta)
	assert.Equal(t, int64(5), status.Triggers)
	assert.Equal(t, int64(1), status.Runs)
}

func TestResyncService_PlataformasIndependentes(t *testing.T) {
	defer goleak.VerifyNone(t)

	refresher := newFakeRefresher()
	refresher.block[domain.PlatformMeta] = make(chan struct{})

	svc := newTestResync(refresher, ResyncConfig{DebounceWindow: 10 * time.Millisecond, JobTimeout: 5 * time.Second})
	defer svc.Stop()

	svc.Trigger(domain.PlatformMeta)
	svc.Trigger(domain.PlatformTikTok)

	require.Eventually(t, func() bool {
		return refresher.Calls(domain.PlatformTikTok) == 1
	}, time.Second, 5*time.Millisecond)

	assert.Eventually(t, func() bool {
		return findStatus(svc.GetStatus(), domain.PlatformTikTok).LastCompletedAt != nil
	}, time.Second, 5*time.Millisecond)

	// Meta continua presa sem afetar o TikTok
	assert.Eventually(t, func() bool {
		return findStatus(svc.GetStatus(), domain.PlatformMeta).Running
	}, time.Second, 5*time.Millisecond)

	close(refresher.block[domain.PlatformMeta])
}

func TestResyncService_DisparoDuranteJobGeraNovoJob(t *testing.T) {
	defer goleak.VerifyNone(t)

	refresher := newFakeRefresher()
	block := make(chan struct{})
	refresher.block[domain.PlatformMeta] = block

	svc := newTestResync(refresher, ResyncConfig{DebounceWindow: 10 * time.Millisecond, JobTimeout: 5 * time.Second})
	defer svc.Stop()

	svc.Trigger(domain.PlatformMeta)
	require.Eventually(t, func() bool {
		return refresher.Calls(domain.PlatformMeta) == 1
	}, time.Second, 5*time.Millisecond)

	// Mutação confirmada enquanto o job anterior ainda roda
	svc.Trigger(domain.PlatformMeta)
	svc.Trigger(domain.PlatformMeta)

	refresher.mu.Lock()
	refresher.block[domain.PlatformMeta] = nil
	refresher.mu.Unlock()
	close(block)

	require.Eventually(t, func() bool {
		return refresher.Calls(domain.PlatformMeta) == 2
	}, time.Second, 5*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 2, refresher.Calls(domain.PlatformMeta))
}

func TestResyncService_IntervaloMinimoEntreJobs(t *testing.T) {
	defer goleak.VerifyNone(t)

	refresher := newFakeRefresher()
	svc := newTestResync(refresher, ResyncConfig{MinInterval: 200 * time.Millisecond, JobTimeout: time.Second})
	defer svc.Stop()

	svc.Trigger(domain.PlatformMeta)
	require.Eventually(t, func() bool {
		return refresher.Calls(domain.PlatformMeta) == 1
	}, time.Second, 5*time.Millisecond)

	svc.Trigger(domain.PlatformMeta)
	require.Eventually(t, func() bool {
		return refresher.Calls(domain.PlatformMeta) == 2
	}, 2*time.Second, 5*time.Millisecond)

	starts := refresher.Starts(domain.PlatformMeta)
	require.Len(t, starts, 2)
	assert.GreaterOrEqual(t, starts[1].Sub(starts[0]), 200*time.Millisecond)
}

func TestResyncService_FalhaApenasRegistrada(t *testing.T) {
	defer goleak.VerifyNone(t)

	refresher := newFakeRefresher()
	refresher.errs[domain.PlatformMeta] = domain.NewSyncError(domain.PlatformMeta, errors.New("boom"))

	svc := newTestResync(refresher, ResyncConfig{JobTimeout: time.Second})
	defer svc.Stop()

	svc.Trigger(domain.PlatformMeta)

	require.Eventually(t, func() bool {
		return findStatus(svc.GetStatus(), domain.PlatformMeta).Failures == 1
	}, time.Second, 5*time.Millisecond)

	status := findStatus(svc.GetStatus(), domain.PlatformMeta)
	assert.Contains(t, status.LastError, "boom")
	assert.False(t, status.Running)
}

func TestResyncService_SyncNow(t *testing.T) {
	defer goleak.VerifyNone(t)

	refresher := newFakeRefresher()
	refresher.errs[domain.PlatformTikTok] = errors.New("upstream down")

	svc := newTestResync(refresher, ResyncConfig{JobTimeout: time.Second})
	defer svc.Stop()

	require.NoError(t, svc.SyncNow(context.Background(), domain.PlatformMeta))
	assert.Equal(t, 1, refresher.Calls(domain.PlatformMeta))

	err := svc.SyncNow(context.Background(), domain.PlatformTikTok)
	assert.EqualError(t, err, "upstream down")
}

func TestResyncService_OnSyncedSoAposSucesso(t *testing.T) {
	defer goleak.VerifyNone(t)

	refresher := newFakeRefresher()
	refresher.errs[domain.PlatformTikTok] = errors.New("upstream down")

	svc := newTestResync(refresher, ResyncConfig{JobTimeout: time.Second})
	defer svc.Stop()

	var mu sync.Mutex
	synced := make(map[domain.Platform]time.Time)
	svc.OnSynced(func(p domain.Platform, startedAt time.Time) {
		mu.Lock()
		defer mu.Unlock()
		synced[p] = startedAt
	})

	before := time.Now()
	require.NoError(t, svc.SyncNow(context.Background(), domain.PlatformMeta))
	require.Error(t, svc.SyncNow(context.Background(), domain.PlatformTikTok))

	mu.Lock()
	defer mu.Unlock()
	require.Contains(t, synced, domain.PlatformMeta)
	assert.False(t, synced[domain.PlatformMeta].Before(before))
	assert.NotContains(t, synced, domain.PlatformTikTok)
}

func TestResyncService_StopCancelaJobEmAndamento(t *testing.T) {
	defer goleak.VerifyNone(t)

	refresher := newFakeRefresher()
	refresher.block[domain.PlatformMeta] = make(chan struct{})

	svc := newTestResync(refresher, ResyncConfig{JobTimeout: 10 * time.Second})
	svc.Trigger(domain.PlatformMeta)

	require.Eventually(t, func() bool {
		return refresher.Calls(domain.PlatformMeta) == 1
	}, time.Second, 5*time.Millisecond)

	svc.Stop()

	// Depois de parado, disparos são ignorados
	svc.Trigger(domain.PlatformMeta)
	assert.Equal(t, 1, refresher.Calls(domain.PlatformMeta))
	assert.Error(t, svc.SyncNow(context.Background(), domain.PlatformMeta))
}

func TestResyncService_GetStatusListaTodasAsPlataformas(t *testing.T) {
	svc := newTestResync(newFakeRefresher(), ResyncConfig{})
	defer svc.Stop()

	status := svc.GetStatus()
	require.Len(t, status, len(domain.Platforms))
	for i, p := range domain.Platforms {
		assert.Equal(t, p, status[i].Platform)
		assert.Zero(t, status[i].Runs)
	}
}

func findStatus(all []PlatformSyncStatus, p domain.Platform) PlatformSyncStatus {
	for _, s := range all {
		if s.Platform == p {
			return s
		}
	}
	return PlatformSyncStatus{}
}

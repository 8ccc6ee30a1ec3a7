package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-ops-api/internal/config"
	"github.com/vfg2006/ads-ops-api/internal/domain"
)

//go:generate mockgen -source=live_resync.go -destination=mocks/mock_live_resync.go -package=mocks

// Refresher executa o resync de uma plataforma
type Refresher interface {
	Refresh(ctx context.Context, p domain.Platform) error
}

type PlatformLister interface {
	Platforms() []domain.Platform
}

// SyncService é o que a API expõe do resync
type SyncService interface {
	Trigger(p domain.Platform)
	SyncNow(ctx context.Context, p domain.Platform) error
	GetStatus() []PlatformSyncStatus
}

// ResyncConfig representa a configuração do resync das campanhas ao vivo
type ResyncConfig struct {
	DebounceWindow time.Duration
	MinInterval    time.Duration
	JobTimeout     time.Duration
	CronSchedule   string
	CronEnabled    bool
}

func ResyncConfigFrom(cfg *config.Config) ResyncConfig {
	return ResyncConfig{
		DebounceWindow: cfg.LiveResync.DebounceWindow,
		MinInterval:    cfg.LiveResync.MinInterval,
		JobTimeout:     cfg.LiveResync.JobTimeout,
		CronSchedule:   cfg.LiveResync.CronSchedule,
		CronEnabled:    cfg.LiveResync.CronEnabled,
	}
}

// PlatformSyncStatus é o retrato do worker de uma plataforma
type PlatformSyncStatus struct {
	Platform        domain.Platform `json:"platform"`
	Running         bool            `json:"running"`
	Pending         bool            `json:"pending"`
	Triggers        int64           `json:"triggers"`
	Runs            int64           `json:"runs"`
	Failures        int64           `json:"failures"`
	LastStartedAt   *time.Time      `json:"last_started_at,omitempty"`
	LastCompletedAt *time.Time      `json:"last_completed_at,omitempty"`
	LastError       string          `json:"last_error,omitempty"`
}

// ResyncService mantém um worker por plataforma. Disparos dentro da janela de
// debounce viram um único job e jobs da mesma plataforma nunca se sobrepõem.
type ResyncService struct {
	refresher Refresher
	platforms PlatformLister
	config    ResyncConfig
	scheduler *gocron.Scheduler

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.Mutex
	workers  map[domain.Platform]*resyncWorker
	stopped  bool
	onSynced []func(p domain.Platform, startedAt time.Time)
}

type resyncWorker struct {
	platform domain.Platform
	trigger  chan struct{}
	run      sync.Mutex

	mu     sync.Mutex
	status PlatformSyncStatus
}

func NewResyncService(refresher Refresher, platforms PlatformLister, cfg ResyncConfig) *ResyncService {
	ctx, cancel := context.WithCancel(context.Background())

	logrus.WithFields(logrus.Fields{
		"debounce_window": cfg.DebounceWindow.String(),
		"min_interval":    cfg.MinInterval.String(),
		"job_timeout":     cfg.JobTimeout.String(),
		"cron_schedule":   cfg.CronSchedule,
		"cron_enabled":    cfg.CronEnabled,
	}).Info("Configuração do resync de campanhas ao vivo carregada")

	return &ResyncService{
		refresher: refresher,
		platforms: platforms,
		config:    cfg,
		ctx:       ctx,
		cancel:    cancel,
		workers:   make(map[domain.Platform]*resyncWorker),
	}
}

// Start agenda o resync periódico de todas as plataformas, quando habilitado
func (s *ResyncService) Start(ctx context.Context) error {
	go func() {
		select {
		case <-ctx.Done():
			s.Stop()
		case <-s.ctx.Done():
		}
	}()

	if !s.config.CronEnabled {
		logrus.Info("Resync periódico de campanhas ao vivo desabilitado por configuração")
		return nil
	}

	s.scheduler = gocron.NewScheduler(time.Local)
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		for _, p := range s.platforms.Platforms() {
			s.Trigger(p)
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar resync de campanhas ao vivo: %w", err)
	}

	s.scheduler.StartAsync()
	logrus.WithField("cron", s.config.CronSchedule).Info("Agendador de resync de campanhas ao vivo iniciado")

	return nil
}

// Stop cancela os jobs em andamento e espera os workers terminarem
func (s *ResyncService) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	s.mu.Unlock()

	if s.scheduler != nil {
		s.scheduler.Stop()
	}
	s.cancel()
	s.wg.Wait()

	logrus.Info("Workers de resync finalizados")
}

// OnSynced registra uma função chamada depois de cada resync bem-sucedido,
// com o instante em que o job começou
func (s *ResyncService) OnSynced(fn func(p domain.Platform, startedAt time.Time)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onSynced = append(s.onSynced, fn)
}

// Trigger enfileira um resync para a plataforma sem bloquear
func (s *ResyncService) Trigger(p domain.Platform) {
	w := s.worker(p)
	if w == nil {
		return
	}

	w.mu.Lock()
	w.status.Triggers++
	w.mu.Unlock()

	select {
	case w.trigger <- struct{}{}:
	default:
		// Já existe um job pendente que vai cobrir este disparo
	}
}

// SyncNow executa o resync imediatamente, serializado com o worker da plataforma
func (s *ResyncService) SyncNow(ctx context.Context, p domain.Platform) error {
	w := s.worker(p)
	if w == nil {
		return fmt.Errorf("resync service stopped")
	}

	return s.runJob(ctx, w)
}

func (s *ResyncService) GetStatus() []PlatformSyncStatus {
	s.mu.Lock()
	workers := make(map[domain.Platform]*resyncWorker, len(s.workers))
	for p, w := range s.workers {
		workers[p] = w
	}
	s.mu.Unlock()

	out := make([]PlatformSyncStatus, 0, len(domain.Platforms))
	for _, p := range domain.Platforms {
		w, ok := workers[p]
		if !ok {
			out = append(out, PlatformSyncStatus{Platform: p})
			continue
		}

		w.mu.Lock()
		status := w.status
		w.mu.Unlock()
		status.Pending = len(w.trigger) > 0
		out = append(out, status)
	}

	return out
}

func (s *ResyncService) worker(p domain.Platform) *resyncWorker {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return nil
	}

	if w, ok := s.workers[p]; ok {
		return w
	}

	w := &resyncWorker{
		platform: p,
		trigger:  make(chan struct{}, 1),
		status:   PlatformSyncStatus{Platform: p},
	}
	s.workers[p] = w

	s.wg.Add(1)
	go s.loop(w)

	return w
}

func (s *ResyncService) loop(w *resyncWorker) {
	defer s.wg.Done()

	var lastStart time.Time
	for {
		select {
		case <-s.ctx.Done():
			return
		case <-w.trigger:
		}

		if !s.sleep(s.config.DebounceWindow) {
			return
		}

		if wait := s.config.MinInterval - time.Since(lastStart); !lastStart.IsZero() && wait > 0 {
			if !s.sleep(wait) {
				return
			}
		}

		// Disparos durante a espera são cobertos por este job
		select {
		case <-w.trigger:
		default:
		}

		lastStart = time.Now()
		if err := s.runJob(s.ctx, w); err != nil {
			logrus.WithFields(logrus.Fields{
				"platform": w.platform,
				"error":    err,
			}).Error("Erro no resync de campanhas ao vivo")
		}
	}
}

func (s *ResyncService) runJob(ctx context.Context, w *resyncWorker) error {
	w.run.Lock()
	defer w.run.Unlock()

	jobCtx := ctx
	if s.config.JobTimeout > 0 {
		var cancel context.CancelFunc
		jobCtx, cancel = context.WithTimeout(ctx, s.config.JobTimeout)
		defer cancel()
	}

	startedAt := time.Now()
	w.mu.Lock()
	w.status.Running = true
	w.status.Runs++
	w.status.LastStartedAt = &startedAt
	w.mu.Unlock()

	err := s.refresher.Refresh(jobCtx, w.platform)

	completedAt := time.Now()
	w.mu.Lock()
	w.status.Running = false
	w.status.LastCompletedAt = &completedAt
	if err != nil {
		w.status.Failures++
		w.status.LastError = err.Error()
	} else {
		w.status.LastError = ""
	}
	w.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"platform": w.platform,
		"duration": completedAt.Sub(startedAt).String(),
		"success":  err == nil,
	}).Info("Resync de campanhas ao vivo concluído")

	if err == nil {
		s.mu.Lock()
		hooks := make([]func(domain.Platform, time.Time), len(s.onSynced))
		copy(hooks, s.onSynced)
		s.mu.Unlock()

		for _, fn := range hooks {
			fn(w.platform, startedAt)
		}
	}

	return err
}

func (s *ResyncService) sleep(d time.Duration) bool {
	if d <= 0 {
		return s.ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-s.ctx.Done():
		return false
	}
}

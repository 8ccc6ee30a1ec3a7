package activitylog

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-ops-api/infrastructure/repository"
	"github.com/vfg2006/ads-ops-api/internal/domain"
	"github.com/vfg2006/ads-ops-api/pkg/utils"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type ActivityLogService interface {
	Record(ctx context.Context, entry domain.ActivityLogEntry) (*domain.ActivityLogEntry, error)
	List(ctx context.Context, entityID string, limit uint64) ([]*domain.ActivityLogEntryResponse, error)
}

type Service struct {
	repo  repository.ActivityLogRepository
	now   func() time.Time
	newID func() (string, error)
}

func NewService(repo repository.ActivityLogRepository) *Service {
	return &Service{
		repo:  repo,
		now:   time.Now,
		newID: utils.GenerateID,
	}
}

// Record grava a entrada no histórico. O log é apenas de inserção.
func (s *Service) Record(ctx context.Context, entry domain.ActivityLogEntry) (*domain.ActivityLogEntry, error) {
	if err := domain.ValidateEntityID(entry.EntityID); err != nil {
		return nil, err
	}

	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("error generating activity id: %w", err)
	}

	entry.ID = id
	entry.CreatedAt = s.now().UTC()

	if err := s.repo.Insert(ctx, &entry); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"entity_id": entry.EntityID,
		"platform":  entry.Platform,
		"action":    entry.Action,
	}).Debug("Atividade registrada")

	return &entry, nil
}

// List devolve o histórico da entidade do mais recente para o mais antigo, com o resumo de orçamento
func (s *Service) List(ctx context.Context, entityID string, limit uint64) ([]*domain.ActivityLogEntryResponse, error) {
	if err := domain.ValidateEntityID(entityID); err != nil {
		return nil, err
	}

	switch {
	case limit == 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}

	entries, err := s.repo.ListByEntity(ctx, entityID, limit)
	if err != nil {
		return nil, err
	}

	return Summarize(entries), nil
}

// Summarize calcula a variação de orçamento de cada entrada
func Summarize(entries []*domain.ActivityLogEntry) []*domain.ActivityLogEntryResponse {
	out := make([]*domain.ActivityLogEntryResponse, 0, len(entries))
	for _, entry := range entries {
		resp := &domain.ActivityLogEntryResponse{ActivityLogEntry: *entry}

		if delta, pct, ok := entry.BudgetDelta(); ok {
			resp.BudgetDeltaCents = &delta
			if *entry.OldBudget != 0 {
				resp.BudgetChangePct = &pct
			}
		}

		out = append(out, resp)
	}

	return out
}

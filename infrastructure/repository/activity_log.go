package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-ops-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-ops-api/internal/domain"
)

const activityLogTable = "campaign_activity_log"

//go:generate mockgen -source=activity_log.go -destination=mocks/mock_activity_log.go -package=mocks

type ActivityLogRepository interface {
	Insert(ctx context.Context, entry *domain.ActivityLogEntry) error
	ListByEntity(ctx context.Context, entityID string, limit uint64) ([]*domain.ActivityLogEntry, error)
}

type activityLogRepository struct {
	conn postgres.Queryer
}

func NewActivityLogRepository(conn postgres.Queryer) ActivityLogRepository {
	return &activityLogRepository{
		conn: conn,
	}
}

func (r *activityLogRepository) Insert(ctx context.Context, entry *domain.ActivityLogEntry) error {
	insertSQL, args, err := squirrel.
		Insert(activityLogTable).
		Columns("id", "platform", "entity_type", "entity_id", "action", "old_budget", "new_budget", "user_id", "created_at").
		Values(
			entry.ID,
			entry.Platform,
			entry.EntityType,
			entry.EntityID,
			entry.Action,
			entry.OldBudget,
			entry.NewBudget,
			entry.UserID,
			entry.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, insertSQL, args...); err != nil {
		return fmt.Errorf("failed to insert activity log entry: %w", err)
	}

	return nil
}

// ListByEntity devolve as entradas mais recentes primeiro
func (r *activityLogRepository) ListByEntity(ctx context.Context, entityID string, limit uint64) ([]*domain.ActivityLogEntry, error) {
	queryBuilder := squirrel.
		Select("id", "platform", "entity_type", "entity_id", "action", "old_budget", "new_budget", "user_id", "created_at").
		From(activityLogTable).
		Where(squirrel.Eq{"entity_id": entityID}).
		OrderBy("created_at DESC", "id DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(limit)
	}

	selectSQL, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, selectSQL, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar histórico: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.ActivityLogEntry, 0)
	for rows.Next() {
		entry := &domain.ActivityLogEntry{}
		if err := rows.Scan(
			&entry.ID,
			&entry.Platform,
			&entry.EntityType,
			&entry.EntityID,
			&entry.Action,
			&entry.OldBudget,
			&entry.NewBudget,
			&entry.UserID,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return entries, nil
}

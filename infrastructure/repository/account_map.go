package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-ops-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-ops-api/internal/domain"
)

const campaignAccountMapTable = "campaign_account_map"

//go:generate mockgen -source=account_map.go -destination=mocks/mock_account_map.go -package=mocks

type CampaignAccountMapRepository interface {
	Upsert(ctx context.Context, m *domain.CampaignAccountMap) error
	GetByCampaignIDs(ctx context.Context, campaignIDs []string) ([]*domain.CampaignAccountMap, error)
	ListByAccount(ctx context.Context, accountID string) ([]*domain.CampaignAccountMap, error)
}

type campaignAccountMapRepository struct {
	conn postgres.Queryer
}

func NewCampaignAccountMapRepository(conn postgres.Queryer) CampaignAccountMapRepository {
	return &campaignAccountMapRepository{
		conn: conn,
	}
}

func (r *campaignAccountMapRepository) Upsert(ctx context.Context, m *domain.CampaignAccountMap) error {
	upsertSQL, args, err := squirrel.
		Insert(campaignAccountMapTable).
		Columns("platform", "campaign_id", "account_id", "updated_at").
		Values(m.Platform, m.CampaignID, m.AccountID, m.UpdatedAt).
		Suffix(`
			ON CONFLICT (campaign_id) DO UPDATE SET
				platform = COALESCE(NULLIF(EXCLUDED.platform, ''), campaign_account_map.platform),
				account_id = EXCLUDED.account_id,
				updated_at = EXCLUDED.updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, upsertSQL, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// GetByCampaignIDs sem ids devolve o mapeamento completo
func (r *campaignAccountMapRepository) GetByCampaignIDs(ctx context.Context, campaignIDs []string) ([]*domain.CampaignAccountMap, error) {
	queryBuilder := r.selectBuilder()
	if len(campaignIDs) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"campaign_id": campaignIDs})
	}

	return r.list(ctx, queryBuilder)
}

func (r *campaignAccountMapRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.CampaignAccountMap, error) {
	return r.list(ctx, r.selectBuilder().Where(squirrel.Eq{"account_id": accountID}))
}

func (r *campaignAccountMapRepository) selectBuilder() squirrel.SelectBuilder {
	return squirrel.
		Select("platform", "campaign_id", "account_id", "updated_at").
		From(campaignAccountMapTable).
		OrderBy("campaign_id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *campaignAccountMapRepository) list(ctx context.Context, queryBuilder squirrel.SelectBuilder) ([]*domain.CampaignAccountMap, error) {
	selectSQL, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, selectSQL, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar mapeamento de contas: %w", err)
	}
	defer rows.Close()

	mappings := make([]*domain.CampaignAccountMap, 0)
	for rows.Next() {
		m := &domain.CampaignAccountMap{}
		if err := rows.Scan(&m.Platform, &m.CampaignID, &m.AccountID, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		mappings = append(mappings, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return mappings, nil
}

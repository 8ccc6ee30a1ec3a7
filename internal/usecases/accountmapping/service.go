package accountmapping

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-ops-api/infrastructure/repository"
	"github.com/vfg2006/ads-ops-api/internal/domain"
	"github.com/vfg2006/ads-ops-api/pkg/apiErrors"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type AccountMappingService interface {
	Assign(ctx context.Context, req domain.AssignAccountRequest) (*domain.CampaignAccountMap, error)
	Lookup(ctx context.Context, campaignIDs []string) (map[string]string, error)
	CampaignIDs(ctx context.Context, accountID string) ([]string, error)
	List(ctx context.Context, campaignIDs []string) ([]*domain.CampaignAccountMap, error)
}

type Service struct {
	mappingRepo repository.CampaignAccountMapRepository
	accountRepo repository.AccountRepository
	now         func() time.Time
}

func NewService(
	mappingRepo repository.CampaignAccountMapRepository,
	accountRepo repository.AccountRepository,
) *Service {
	return &Service{
		mappingRepo: mappingRepo,
		accountRepo: accountRepo,
		now:         time.Now,
	}
}

// Assign associa a campanha a uma conta interna existente e ativa
func (s *Service) Assign(ctx context.Context, req domain.AssignAccountRequest) (*domain.CampaignAccountMap, error) {
	campaignID := strings.TrimSpace(req.CampaignID)
	if campaignID == "" {
		return nil, NewMappingError(ErrCampaignIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}
	if err := domain.ValidateEntityID(campaignID); err != nil {
		return nil, NewMappingError(err, apiErrors.ErrInvalidFormat, campaignID, "")
	}
	if req.Platform != "" {
		if _, err := domain.ParsePlatform(string(req.Platform)); err != nil {
			return nil, NewMappingError(err, apiErrors.ErrInvalidFormat, campaignID, "")
		}
	}

	accountID := strings.TrimSpace(req.AccountID)
	if accountID == "" {
		return nil, NewMappingError(ErrAccountIDRequired, apiErrors.ErrMissingRequiredData, campaignID, "")
	}

	account, err := s.accountRepo.GetAccountByID(ctx, accountID)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).Error("Erro ao buscar conta")
		return nil, NewMappingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, "Falha ao buscar conta")
	}
	if account == nil {
		return nil, NewMappingError(ErrAccountNotFound, apiErrors.ErrNotFound, campaignID, accountID)
	}
	if account.Status == domain.AdAccountStatusInactive {
		return nil, NewMappingError(ErrAccountInactive, apiErrors.ErrInvalidRequest, campaignID, account.DisplayName())
	}

	mapping := &domain.CampaignAccountMap{
		CampaignID: campaignID,
		Platform:   req.Platform,
		AccountID:  account.ID,
		UpdatedAt:  s.now().UTC(),
	}

	if err := s.mappingRepo.Upsert(ctx, mapping); err != nil {
		logrus.WithError(err).WithField("campaign_id", campaignID).Error("Erro ao salvar mapeamento de conta")
		return nil, NewMappingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, "Falha ao salvar mapeamento")
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaignID,
		"platform":    req.Platform,
		"account_id":  account.ID,
	}).Info("Campanha associada à conta")

	return mapping, nil
}

// Lookup devolve o mapa campaign_id -> account_id
func (s *Service) Lookup(ctx context.Context, campaignIDs []string) (map[string]string, error) {
	mappings, err := s.List(ctx, campaignIDs)
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(mappings))
	for _, m := range mappings {
		out[m.CampaignID] = m.AccountID
	}

	return out, nil
}

// CampaignIDs lista as campanhas associadas à conta
func (s *Service) CampaignIDs(ctx context.Context, accountID string) ([]string, error) {
	mappings, err := s.mappingRepo.ListByAccount(ctx, accountID)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).Error("Erro ao buscar campanhas da conta")
		return nil, NewMappingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", "Falha ao buscar campanhas da conta")
	}

	ids := make([]string, 0, len(mappings))
	for _, m := range mappings {
		ids = append(ids, m.CampaignID)
	}
	return ids, nil
}

func (s *Service) List(ctx context.Context, campaignIDs []string) ([]*domain.CampaignAccountMap, error) {
	mappings, err := s.mappingRepo.GetByCampaignIDs(ctx, campaignIDs)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar mapeamento de contas")
		return nil, NewMappingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", "Falha ao buscar mapeamento")
	}

	return mappings, nil
}

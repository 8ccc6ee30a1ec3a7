package livecampaign_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-ops-api/internal/domain"
	"github.com/vfg2006/ads-ops-api/internal/livetree"
	"github.com/vfg2006/ads-ops-api/internal/platform"
	"github.com/vfg2006/ads-ops-api/internal/platform/platformtest"
	"github.com/vfg2006/ads-ops-api/internal/usecases/livecampaign"
	"github.com/vfg2006/ads-ops-api/internal/usecases/livecampaign/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	service  *livecampaign.Service
	meta     *platformtest.Fake
	tiktok   *platformtest.Fake
	states   *mocks.MockMutationStates
	accounts *mocks.MockAccountLookup
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	meta := platformtest.NewFake(domain.PlatformMeta)
	meta.AddCampaign("m1", 10000)
	meta.AddCampaign("m2", 20000)
	meta.AddAdset("m1", "ma1", 5000)
	meta.AddAd("ma1", "mad1")

	tiktok := platformtest.NewFake(domain.PlatformTikTok)
	tiktok.AddCampaign("t1", 30000)

	registry := platform.NewRegistry(meta, tiktok)
	store := livetree.NewStore(context.Background(), registry, 5*time.Second)

	states := mocks.NewMockMutationStates(ctrl)
	states.EXPECT().State(gomock.Any()).Return(domain.MutationIdle).AnyTimes()

	accounts := mocks.NewMockAccountLookup(ctrl)

	return &fixture{
		service:  livecampaign.NewService(store, registry, states, accounts),
		meta:     meta,
		tiktok:   tiktok,
		states:   states,
		accounts: accounts,
	}
}

func TestService_ListCampaigns(t *testing.T) {
	tests := []struct {
		name          string
		filter        domain.CampaignFilter
		setup         func(f *fixture)
		expectedIDs   []string
		expectedFails []domain.Platform
		expectErr     bool
	}{
		{
			name:   "Todas as plataformas com conta associada",
			filter: domain.CampaignFilter{},
			setup: func(f *fixture) {
				f.accounts.EXPECT().Lookup(gomock.Any(), gomock.Any()).Return(map[string]string{
					"m1": "ACC001",
				}, nil)
			},
			expectedIDs: []string{"m1", "m2", "t1"},
		},
		{
			name:   "Filtra por conta",
			filter: domain.CampaignFilter{AccountID: "ACC001"},
			setup: func(f *fixture) {
				f.accounts.EXPECT().CampaignIDs(gomock.Any(), "ACC001").Return([]string{"m1", "gone"}, nil)
			},
			expectedIDs: []string{"m1"},
		},
		{
			name:   "Conta sem campanhas associadas",
			filter: domain.CampaignFilter{AccountID: "ACC404"},
			setup: func(f *fixture) {
				f.accounts.EXPECT().CampaignIDs(gomock.Any(), "ACC404").Return([]string{}, nil)
			},
			expectedIDs: []string{},
		},
		{
			name:   "Falha parcial de uma plataforma",
			filter: domain.CampaignFilter{},
			setup: func(f *fixture) {
				f.tiktok.FailOn("", errors.New("tiktok fora do ar"))
				f.accounts.EXPECT().Lookup(gomock.Any(), gomock.Any()).Return(map[string]string{}, nil)
			},
			expectedIDs:   []string{"m1", "m2"},
			expectedFails: []domain.Platform{domain.PlatformTikTok},
		},
		{
			name:   "Plataforma única com falha devolve erro",
			filter: domain.CampaignFilter{Platform: domain.PlatformTikTok},
			setup: func(f *fixture) {
				f.tiktok.FailOn("", errors.New("tiktok fora do ar"))
			},
			expectErr: true,
		},
		{
			name:   "Todas as plataformas falham",
			filter: domain.CampaignFilter{},
			setup: func(f *fixture) {
				f.meta.FailOn("", errors.New("meta fora do ar"))
				f.tiktok.FailOn("", errors.New("tiktok fora do ar"))
			},
			expectErr: true,
		},
		{
			name:   "Falha no mapeamento não impede listagem sem filtro de conta",
			filter: domain.CampaignFilter{Platform: domain.PlatformMeta},
			setup: func(f *fixture) {
				f.accounts.EXPECT().Lookup(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedIDs: []string{"m1", "m2"},
		},
		{
			name:   "Falha no mapeamento com filtro de conta devolve erro",
			filter: domain.CampaignFilter{Platform: domain.PlatformMeta, AccountID: "ACC001"},
			setup: func(f *fixture) {
				f.accounts.EXPECT().CampaignIDs(gomock.Any(), "ACC001").Return(nil, errors.New("db down"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			list, err := f.service.ListCampaigns(context.Background(), tt.filter)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, list)
				return
			}

			require.NoError(t, err)
			ids := make([]string, 0, len(list.Campaigns))
			for _, c := range list.Campaigns {
				ids = append(ids, c.CampaignID)
				assert.Equal(t, domain.MutationIdle, c.MutationState)
			}
			assert.Equal(t, tt.expectedIDs, ids)

			assert.Len(t, list.PlatformErrors, len(tt.expectedFails))
			for _, p := range tt.expectedFails {
				assert.Contains(t, list.PlatformErrors, p)
			}
		})
	}
}

func TestService_ListCampaigns_EnriqueceConta(t *testing.T) {
	f := newFixture(t)
	f.accounts.EXPECT().Lookup(gomock.Any(), []string{"m1", "m2"}).Return(map[string]string{"m2": "ACC009"}, nil)

	list, err := f.service.ListCampaigns(context.Background(), domain.CampaignFilter{Platform: domain.PlatformMeta})
	require.NoError(t, err)
	require.Len(t, list.Campaigns, 2)
	assert.Empty(t, list.Campaigns[0].AccountID)
	assert.Equal(t, "ACC009", list.Campaigns[1].AccountID)
}

func TestService_ListCampaigns_FiltroDeContaPreencheConta(t *testing.T) {
	f := newFixture(t)
	f.accounts.EXPECT().CampaignIDs(gomock.Any(), "ACC001").Return([]string{"t1", "m2"}, nil)

	list, err := f.service.ListCampaigns(context.Background(), domain.CampaignFilter{AccountID: "ACC001"})
	require.NoError(t, err)
	require.Len(t, list.Campaigns, 2)
	assert.Equal(t, "m2", list.Campaigns[0].CampaignID)
	assert.Equal(t, "t1", list.Campaigns[1].CampaignID)
	for _, c := range list.Campaigns {
		assert.Equal(t, "ACC001", c.AccountID)
	}
}

func TestService_ListAdsetsEAds(t *testing.T) {
	f := newFixture(t)
	campaign := domain.NewEntityKey(domain.PlatformMeta, domain.EntityTypeCampaign, "m1")
	adset := domain.NewEntityKey(domain.PlatformMeta, domain.EntityTypeAdset, "ma1")

	adsets, err := f.service.ListAdsets(context.Background(), campaign, domain.DateRange{}, false)
	require.NoError(t, err)
	require.Len(t, adsets, 1)
	assert.Equal(t, "ma1", adsets[0].AdsetID)
	assert.Equal(t, domain.MutationIdle, adsets[0].MutationState)

	ads, err := f.service.ListAds(context.Background(), adset, domain.DateRange{}, false)
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, "mad1", ads[0].AdID)
}

func TestService_ListAds_LeituraDiretaSemCampanhaExpandida(t *testing.T) {
	f := newFixture(t)
	adset := domain.NewEntityKey(domain.PlatformMeta, domain.EntityTypeAdset, "ma1")

	ads, err := f.service.ListAds(context.Background(), adset, domain.DateRange{}, false)
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, "mad1", ads[0].AdID)
	assert.Equal(t, 1, f.meta.Calls("ListAds"))
}

func TestService_Collapse(t *testing.T) {
	ctrl := gomock.NewController(t)
	tree := mocks.NewMockLiveTree(ctrl)
	service := livecampaign.NewService(tree, platform.NewRegistry(), mocks.NewMockMutationStates(ctrl), nil)

	key := domain.NewEntityKey(domain.PlatformMeta, domain.EntityTypeCampaign, "m1")
	tree.EXPECT().Collapse(key)
	require.NoError(t, service.Collapse(key))

	err := service.Collapse(domain.NewEntityKey(domain.PlatformMeta, domain.EntityTypeCampaign, ""))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-ops-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-ops-api/internal/config"
	"github.com/vfg2006/ads-ops-api/internal/domain"
	"github.com/vfg2006/ads-ops-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{SecretKey: "test-secret", Auth: config.Auth{TokenTTL: time.Hour}}
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestService_LoginUser(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		mockFn   func(repo *mocks.MockUserRepository)
		wantErr  error
		wantCode string
	}{
		{
			name:     "dados ausentes",
			email:    "",
			password: "x",
			mockFn:   func(repo *mocks.MockUserRepository) {},
			wantErr:  ErrMissingRequiredData,
			wantCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:     "usuário inexistente",
			email:    "ghost@ads.com",
			password: "x",
			mockFn: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "ghost@ads.com").Return(nil, nil)
			},
			wantErr:  ErrUserNotFound,
			wantCode: apiErrors.ErrUserNotFound,
		},
		{
			name:     "usuário desativado",
			email:    "off@ads.com",
			password: "secret",
			mockFn: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "off@ads.com").
					Return(&domain.User{ID: 2, Email: "off@ads.com", Active: false}, nil)
			},
			wantErr:  ErrUserDisabled,
			wantCode: apiErrors.ErrUserDisabled,
		},
		{
			name:     "senha incorreta",
			email:    "ana@ads.com",
			password: "wrong",
			mockFn: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "ana@ads.com").
					Return(&domain.User{ID: 1, Email: "ana@ads.com", Active: true, PasswordHash: hashed(t, "secret")}, nil)
			},
			wantErr:  ErrInvalidCredentials,
			wantCode: apiErrors.ErrInvalidCredentials,
		},
		{
			name:     "erro no banco",
			email:    "ana@ads.com",
			password: "secret",
			mockFn: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "ana@ads.com").Return(nil, errors.New("conn refused"))
			},
			wantErr:  ErrDatabaseOperation,
			wantCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockUserRepository(ctrl)
			tt.mockFn(repo)

			svc := NewService(repo, testConfig())
			token, err := svc.LoginUser(context.Background(), tt.email, tt.password)

			require.Error(t, err)
			assert.Empty(t, token)
			assert.True(t, errors.Is(err, tt.wantErr))

			var authErr *AuthError
			require.True(t, errors.As(err, &authErr))
			assert.Equal(t, tt.wantCode, authErr.Code)
		})
	}
}

func TestService_LoginEValidacaoDoToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	repo.EXPECT().GetUserByEmail(gomock.Any(), "ana@ads.com").
		Return(&domain.User{ID: 7, Name: "Ana", Email: "ana@ads.com", Active: true, RoleID: 2, PasswordHash: hashed(t, "secret")}, nil)

	svc := NewService(repo, testConfig())

	// Email é normalizado antes da consulta
	token, err := svc.LoginUser(context.Background(), " Ana@Ads.com ", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, 2, claims.UserRoleID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestService_ValidateToken(t *testing.T) {
	svc := NewService(nil, testConfig())

	sign := func(secret string, expiresAt time.Time) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.Claims{
			UserID:           1,
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(expiresAt)},
		})
		s, err := token.SignedString([]byte(secret))
		require.NoError(t, err)
		return s
	}

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "token expirado", token: sign("test-secret", time.Now().Add(-time.Hour)), wantErr: ErrExpiredToken},
		{name: "assinatura de outro segredo", token: sign("other", time.Now().Add(time.Hour)), wantErr: ErrInvalidToken},
		{name: "token malformado", token: "abc.def", wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tt.token)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestService_GetUserProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	repo.EXPECT().GetUserByID(gomock.Any(), 7).Return(&domain.User{ID: 7, PasswordHash: "hash"}, nil)
	repo.EXPECT().GetUserByID(gomock.Any(), 8).Return(nil, nil)

	svc := NewService(repo, testConfig())

	user, err := svc.GetUserProfile(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)

	_, err = svc.GetUserProfile(context.Background(), 8)
	assert.True(t, errors.Is(err, ErrUserNotFound))
}

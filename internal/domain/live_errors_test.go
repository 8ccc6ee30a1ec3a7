package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapLiveError(t *testing.T) {
	key := NewEntityKey(PlatformMeta, EntityTypeAdset, "as_1")

	tests := []struct {
		name          string
		err           error
		expectedClass error
		alsoMatches   []error
	}{
		{
			name:          "Limite de requisições também é falha da plataforma",
			err:           fmt.Errorf("%w: status 429", ErrRateLimited),
			expectedClass: ErrRateLimited,
			alsoMatches:   []error{ErrUpstream},
		},
		{
			name:          "Conflito de orçamento",
			err:           fmt.Errorf("%w: budget 1800 != 2000", ErrConflict),
			expectedClass: ErrConflict,
		},
		{
			name:          "Operação não suportada vira validação",
			err:           ErrUnsupported,
			expectedClass: ErrValidation,
			alsoMatches:   []error{ErrUnsupported},
		},
		{
			name:          "Erro desconhecido vira falha da plataforma",
			err:           errors.New("connection reset"),
			expectedClass: ErrUpstream,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapLiveError(tt.err, key, ActionSetBudget)

			var liveErr *LiveError
			require.ErrorAs(t, err, &liveErr)
			assert.Equal(t, tt.expectedClass, liveErr.Err)
			assert.ErrorIs(t, err, tt.err)
			for _, target := range tt.alsoMatches {
				assert.ErrorIs(t, err, target)
			}
			assert.Contains(t, err.Error(), "as_1")
			assert.Contains(t, err.Error(), string(ActionSetBudget))
		})
	}
}

func TestWrapLiveError_ConflitoNaoEhFalhaDaPlataforma(t *testing.T) {
	err := WrapLiveError(ErrConflict, NewEntityKey(PlatformMeta, EntityTypeAdset, "as_1"), ActionSetBudget)
	assert.NotErrorIs(t, err, ErrUpstream)
	assert.NotErrorIs(t, err, ErrRateLimited)
}

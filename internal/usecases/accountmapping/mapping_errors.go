package accountmapping

import (
	"errors"
	"fmt"
)

// Erros específicos do mapeamento de campanhas para contas internas
var (
	ErrAccountIDRequired  = errors.New("account ID is required")
	ErrCampaignIDRequired = errors.New("campaign ID is required")
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountInactive    = errors.New("account is inactive")

	ErrDatabaseOperation = errors.New("database operation error")
)

// MappingError carrega o código da API junto do erro base
type MappingError struct {
	Err        error
	Code       string
	CampaignID string
	Details    string
}

func (e *MappingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *MappingError) Unwrap() error {
	return e.Err
}

func NewMappingError(err error, code string, campaignID string, details string) *MappingError {
	return &MappingError{
		Err:        err,
		Code:       code,
		CampaignID: campaignID,
		Details:    details,
	}
}

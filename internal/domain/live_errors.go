package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation         = errors.New("validation error")
	ErrUnsupported        = errors.New("operation not supported by platform")
	ErrConflict           = errors.New("platform state changed since last read")
	ErrUpstream           = errors.New("platform request failed")
	ErrRateLimited        = fmt.Errorf("%w: rate limit exceeded", ErrUpstream)
	ErrBusy               = errors.New("a mutation is already in flight for this entity")
	ErrSync               = errors.New("resync failed")
	ErrExpansionCancelled = errors.New("expansion cancelled by collapse")
	ErrParentNotExpanded  = errors.New("parent entity is not expanded")
	ErrEntityNotFound     = errors.New("entity not found on platform")
)

// Action identifica a operação em que um erro ocorreu
type Action string

const (
	ActionListCampaigns Action = "list_campaigns"
	ActionListAdsets    Action = "list_adsets"
	ActionListAds       Action = "list_ads"
	ActionSetStatus     Action = "set_status"
	ActionSetBudget     Action = "set_budget"
	ActionSetBidCap     Action = "set_bid_cap"
	ActionDuplicate     Action = "duplicate"
	ActionResync        Action = "resync"
)

// LiveError carrega o contexto de plataforma e entidade de uma falha.
// Err é a classe do erro (ErrConflict, ErrUpstream...) e Cause o erro original do adaptador.
type LiveError struct {
	Err        error
	Cause      error
	Platform   Platform
	EntityType EntityType
	EntityID   string
	Action     Action
	Details    string
}

func (e *LiveError) Error() string {
	var b strings.Builder

	b.WriteString(string(e.Platform))
	if e.EntityType != "" {
		b.WriteString(" " + string(e.EntityType))
	}
	if e.EntityID != "" {
		b.WriteString(" " + e.EntityID)
	}
	if e.Action != "" {
		b.WriteString(" (" + string(e.Action) + ")")
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())

	if e.Details != "" {
		b.WriteString(": " + e.Details)
	}
	if e.Cause != nil {
		b.WriteString(": " + e.Cause.Error())
	}

	return b.String()
}

func (e *LiveError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func NewLiveError(class error, key EntityKey, action Action, details string) *LiveError {
	return &LiveError{
		Err:        class,
		Platform:   key.Platform,
		EntityType: key.Type,
		EntityID:   key.ID,
		Action:     action,
		Details:    details,
	}
}

// WrapLiveError anexa o contexto da entidade a um erro de adaptador.
// Um LiveError já tipado é devolvido sem alteração.
func WrapLiveError(err error, key EntityKey, action Action) error {
	if err == nil {
		return nil
	}

	var liveErr *LiveError
	if errors.As(err, &liveErr) {
		return err
	}

	class := ErrUpstream
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrUnsupported):
		class = ErrValidation
	case errors.Is(err, ErrConflict):
		class = ErrConflict
	case errors.Is(err, ErrRateLimited):
		class = ErrRateLimited
	}

	return &LiveError{
		Err:        class,
		Cause:      err,
		Platform:   key.Platform,
		EntityType: key.Type,
		EntityID:   key.ID,
		Action:     action,
	}
}

// NewSyncError agrega as falhas de um resync de plataforma
func NewSyncError(platform Platform, cause error) *LiveError {
	return &LiveError{
		Err:      ErrSync,
		Cause:    cause,
		Platform: platform,
		Action:   ActionResync,
	}
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrUnsupported)
}

// Validationf cria um erro de validação com contexto
func Validationf(key EntityKey, action Action, format string, args ...any) *LiveError {
	return NewLiveError(ErrValidation, key, action, fmt.Sprintf(format, args...))
}

package domain

import (
	"fmt"
	"strings"
	"time"
)

type Platform string

const (
	PlatformMeta      Platform = "meta"
	PlatformTikTok    Platform = "tiktok"
	PlatformNewsBreak Platform = "newsbreak"
	PlatformGoogle    Platform = "google"
)

// Platforms lista as plataformas conhecidas na ordem de exibição
var Platforms = []Platform{PlatformMeta, PlatformTikTok, PlatformNewsBreak, PlatformGoogle}

func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Platforms {
		if p == known {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w: unknown platform %q", ErrValidation, s)
}

type EntityType string

const (
	EntityTypeCampaign EntityType = "campaign"
	EntityTypeAdset    EntityType = "adset"
	EntityTypeAd       EntityType = "ad"
)

func ParseEntityType(s string) (EntityType, error) {
	switch t := EntityType(strings.ToLower(strings.TrimSpace(s))); t {
	case EntityTypeCampaign, EntityTypeAdset, EntityTypeAd:
		return t, nil
	}

	return "", fmt.Errorf("%w: unknown entity type %q", ErrValidation, s)
}

type EntityStatus string

const (
	EntityStatusActive  EntityStatus = "ACTIVE"
	EntityStatusPaused  EntityStatus = "PAUSED"
	EntityStatusUnknown EntityStatus = "UNKNOWN"
)

// StatusFromEnabled converte o flag de habilitação usado nas mutações
func StatusFromEnabled(enable bool) EntityStatus {
	if enable {
		return EntityStatusActive
	}
	return EntityStatusPaused
}

// EntityKey identifica uma entidade de forma única entre plataformas.
// A forma textual "platform:entity_id" é a chave de todos os mapas em memória.
type EntityKey struct {
	Platform Platform
	Type     EntityType
	ID       string
}

func NewEntityKey(platform Platform, entityType EntityType, id string) EntityKey {
	return EntityKey{Platform: platform, Type: entityType, ID: id}
}

func (k EntityKey) String() string {
	return string(k.Platform) + ":" + k.ID
}

// Validate rejeita chaves malformadas antes de qualquer chamada externa
func (k EntityKey) Validate() error {
	if _, err := ParsePlatform(string(k.Platform)); err != nil {
		return err
	}

	if _, err := ParseEntityType(string(k.Type)); err != nil {
		return err
	}

	return ValidateEntityID(k.ID)
}

// ValidateEntityID aceita apenas ids sem espaços, separadores de caminho ou da chave
func ValidateEntityID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: entity id is required", ErrValidation)
	}

	if strings.ContainsAny(id, " \t\n/:?#") {
		return fmt.Errorf("%w: malformed entity id %q", ErrValidation, id)
	}

	return nil
}

// DateRange é inclusivo nas duas pontas. Um intervalo vazio significa a janela padrão da plataforma.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

func (r DateRange) IsZero() bool {
	return r.Start == nil && r.End == nil
}

// Resolve devolve o intervalo concreto, usando hoje quando vazio
func (r DateRange) Resolve(now time.Time) (time.Time, time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	start, end := today, today
	if r.Start != nil {
		start = *r.Start
	}
	if r.End != nil {
		end = *r.End
	}
	if r.Start != nil && r.End == nil {
		end = today
	}
	if r.End != nil && r.Start == nil {
		start = end
	}

	return start, end
}

func (r DateRange) String() string {
	if r.IsZero() {
		return "default"
	}

	var start, end string
	if r.Start != nil {
		start = r.Start.Format(time.DateOnly)
	}
	if r.End != nil {
		end = r.End.Format(time.DateOnly)
	}

	return start + ".." + end
}

func (r DateRange) Equal(other DateRange) bool {
	return r.String() == other.String()
}

// CampaignFilter restringe a listagem de campanhas
type CampaignFilter struct {
	Platform  Platform
	DateRange DateRange
	AccountID string
}

type LiveCampaign struct {
	CampaignID       string       `json:"campaign_id"`
	Platform         Platform     `json:"platform"`
	CampaignName     string       `json:"campaign_name"`
	AccountName      string       `json:"account_name"`
	Status           EntityStatus `json:"status"`
	DailyBudgetCents *int64       `json:"daily_budget,omitempty"`
	AdsetCount       int          `json:"adset_count"`
	AdCount          int          `json:"ad_count"`
	Metrics          Metrics      `json:"metrics"`
}

func (c LiveCampaign) Key() EntityKey {
	return NewEntityKey(c.Platform, EntityTypeCampaign, c.CampaignID)
}

type LiveAdset struct {
	AdsetID          string       `json:"adset_id"`
	CampaignID       string       `json:"campaign_id"`
	Platform         Platform     `json:"platform"`
	AdsetName        string       `json:"adset_name"`
	Status           EntityStatus `json:"status"`
	DailyBudgetCents *int64       `json:"daily_budget,omitempty"`
	BidCapCents      *int64       `json:"bid_cap,omitempty"`
	AdCount          int          `json:"ad_count"`
	Metrics          Metrics      `json:"metrics"`
}

func (a LiveAdset) Key() EntityKey {
	return NewEntityKey(a.Platform, EntityTypeAdset, a.AdsetID)
}

type LiveAd struct {
	AdID     string       `json:"ad_id"`
	AdsetID  string       `json:"adset_id"`
	Platform Platform     `json:"platform"`
	AdName   string       `json:"ad_name"`
	Status   EntityStatus `json:"status"`
	Metrics  Metrics      `json:"metrics"`
}

func (a LiveAd) Key() EntityKey {
	return NewEntityKey(a.Platform, EntityTypeAd, a.AdID)
}

// MutationState é o estado da última mutação conhecida de uma entidade
type MutationState string

const (
	MutationIdle       MutationState = "idle"
	MutationSubmitting MutationState = "submitting"
	MutationCommitted  MutationState = "committed"
	MutationRolledBack MutationState = "rolled_back"
)

type CampaignView struct {
	LiveCampaign
	AccountID     string        `json:"account_id,omitempty"`
	MutationState MutationState `json:"mutation_state"`
}

type AdsetView struct {
	LiveAdset
	MutationState MutationState `json:"mutation_state"`
}

type AdView struct {
	LiveAd
	MutationState MutationState `json:"mutation_state"`
}

// CampaignRef é usado nas operações em lote
type CampaignRef struct {
	Platform   Platform `json:"platform"`
	CampaignID string   `json:"campaign_id"`
}

func (r CampaignRef) Key() EntityKey {
	return NewEntityKey(r.Platform, EntityTypeCampaign, r.CampaignID)
}

func Int64Ptr(v int64) *int64 {
	return &v
}

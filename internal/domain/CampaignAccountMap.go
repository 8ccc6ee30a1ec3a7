package domain

import "time"

// CampaignAccountMap associa uma campanha a uma conta interna. O id da campanha
// não se repete entre plataformas, então a plataforma é só informativa.
type CampaignAccountMap struct {
	CampaignID string    `json:"campaign_id"`
	Platform   Platform  `json:"platform,omitempty"`
	AccountID  string    `json:"account_id"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type AssignAccountRequest struct {
	CampaignID string   `json:"campaign_id"`
	Platform   Platform `json:"platform,omitempty"`
	AccountID  string   `json:"account_id"`
}

type BulkAssignAccountRequest struct {
	CampaignIDs []string `json:"campaign_ids"`
	Platform    Platform `json:"platform,omitempty"`
	AccountID   string   `json:"account_id"`
}

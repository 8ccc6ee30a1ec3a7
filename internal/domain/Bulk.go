package domain

// BulkStatusRequest pausa ou ativa uma seleção de campanhas de várias plataformas
type BulkStatusRequest struct {
	Campaigns []CampaignRef `json:"campaigns"`
	Enable    bool          `json:"enable"`
}

type BulkItemResult struct {
	CampaignID string   `json:"campaign_id"`
	Platform   Platform `json:"platform,omitempty"`
	Success    bool     `json:"success"`
	Error      string   `json:"error,omitempty"`
}

type BulkResult struct {
	Items     []BulkItemResult `json:"items"`
	Succeeded int              `json:"succeeded"`
	Failed    int              `json:"failed"`
}

package metadomain

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}

// Page é o envelope das listagens da Graph API
type Page[T any] struct {
	Data   []T    `json:"data"`
	Paging Paging `json:"paging"`
}

type Campaign struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Status          string        `json:"status"`
	EffectiveStatus string        `json:"effective_status"`
	AccountID       string        `json:"account_id"`
	DailyBudget     string        `json:"daily_budget,omitempty"`
	Insights        *InsightsEdge `json:"insights,omitempty"`
	AdSets          *SummaryEdge  `json:"adsets,omitempty"`
	Ads             *SummaryEdge  `json:"ads,omitempty"`
}

type AdSet struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Status      string        `json:"status"`
	CampaignID  string        `json:"campaign_id"`
	DailyBudget string        `json:"daily_budget,omitempty"`
	BidAmount   *int64        `json:"bid_amount,omitempty"`
	Insights    *InsightsEdge `json:"insights,omitempty"`
	Ads         *SummaryEdge  `json:"ads,omitempty"`
}

type Ad struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Status   string        `json:"status"`
	AdSetID  string        `json:"adset_id"`
	Insights *InsightsEdge `json:"insights,omitempty"`
}

// SummaryEdge é usado apenas para contar filhos via summary=total_count
type SummaryEdge struct {
	Summary struct {
		TotalCount int `json:"total_count"`
	} `json:"summary"`
}

type CopyResponse struct {
	CopiedCampaignID string `json:"copied_campaign_id,omitempty"`
	CopiedAdSetID    string `json:"copied_adset_id,omitempty"`
	CopiedAdID       string `json:"copied_ad_id,omitempty"`
}

// ID devolve o id da cópia, qualquer que seja o nível
func (c CopyResponse) ID() string {
	switch {
	case c.CopiedCampaignID != "":
		return c.CopiedCampaignID
	case c.CopiedAdSetID != "":
		return c.CopiedAdSetID
	default:
		return c.CopiedAdID
	}
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

package google

import (
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Int64 aceita os int64 que a API REST serializa como string
type Int64 int64

func (v *Int64) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*v = 0
		return nil
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*v = Int64(n)
	return nil
}

type searchResponse struct {
	Results       []Row  `json:"results"`
	NextPageToken string `json:"nextPageToken"`
}

type Row struct {
	Campaign       *CampaignRow  `json:"campaign,omitempty"`
	CampaignBudget *BudgetRow    `json:"campaignBudget,omitempty"`
	AdGroup        *AdGroupRow   `json:"adGroup,omitempty"`
	AdGroupAd      *AdGroupAdRow `json:"adGroupAd,omitempty"`
	Metrics        *MetricsRow   `json:"metrics,omitempty"`
}

type CampaignRow struct {
	ResourceName string `json:"resourceName"`
	ID           Int64  `json:"id"`
	Name         string `json:"name"`
	Status       string `json:"status"`
}

type BudgetRow struct {
	ResourceName string `json:"resourceName"`
	AmountMicros Int64  `json:"amountMicros"`
}

type AdGroupRow struct {
	ResourceName string `json:"resourceName"`
	ID           Int64  `json:"id"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	Campaign     string `json:"campaign"`
	CpcBidMicros Int64  `json:"cpcBidMicros"`
}

type AdGroupAdRow struct {
	ResourceName string `json:"resourceName"`
	Status       string `json:"status"`
	Ad           struct {
		ID   Int64  `json:"id"`
		Name string `json:"name"`
	} `json:"ad"`
}

type MetricsRow struct {
	CostMicros       Int64   `json:"costMicros"`
	Clicks           Int64   `json:"clicks"`
	Impressions      Int64   `json:"impressions"`
	Conversions      float64 `json:"conversions"`
	ConversionsValue float64 `json:"conversionsValue"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

type mutateOperation struct {
	Update     map[string]any `json:"update"`
	UpdateMask string         `json:"updateMask"`
}

func (id Int64) String() string {
	return strconv.FormatInt(int64(id), 10)
}

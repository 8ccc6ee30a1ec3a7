package tiktokdomain

import (
	"encoding/json"
	"strconv"
)

// Envelope é a resposta padrão da Business API: code 0 indica sucesso
type Envelope struct {
	Code      int             `json:"code"`
	Message   string          `json:"message"`
	RequestID string          `json:"request_id"`
	Data      json.RawMessage `json:"data"`
}

const (
	CodeOK          = 0
	CodeRateLimited = 40100
	CodeInvalidArgs = 40002
)

type PageInfo struct {
	Page        int `json:"page"`
	PageSize    int `json:"page_size"`
	TotalNumber int `json:"total_number"`
	TotalPage   int `json:"total_page"`
}

type List[T any] struct {
	List     []T      `json:"list"`
	PageInfo PageInfo `json:"page_info"`
}

const (
	StatusEnable  = "ENABLE"
	StatusDisable = "DISABLE"
)

type Campaign struct {
	CampaignID      string  `json:"campaign_id"`
	CampaignName    string  `json:"campaign_name"`
	AdvertiserID    string  `json:"advertiser_id"`
	OperationStatus string  `json:"operation_status"`
	BudgetMode      string  `json:"budget_mode"`
	Budget          float64 `json:"budget"`
}

type AdGroup struct {
	AdGroupID       string  `json:"adgroup_id"`
	AdGroupName     string  `json:"adgroup_name"`
	CampaignID      string  `json:"campaign_id"`
	AdvertiserID    string  `json:"advertiser_id"`
	OperationStatus string  `json:"operation_status"`
	BudgetMode      string  `json:"budget_mode"`
	Budget          float64 `json:"budget"`
	BidPrice        float64 `json:"bid_price"`
}

type Ad struct {
	AdID            string `json:"ad_id"`
	AdName          string `json:"ad_name"`
	AdGroupID       string `json:"adgroup_id"`
	AdvertiserID    string `json:"advertiser_id"`
	OperationStatus string `json:"operation_status"`
}

// ReportRow é uma linha do relatório integrado; métricas chegam como texto
type ReportRow struct {
	Dimensions map[string]string `json:"dimensions"`
	Metrics    map[string]string `json:"metrics"`
}

func (r ReportRow) Float(metric string) float64 {
	v, err := strconv.ParseFloat(r.Metrics[metric], 64)
	if err != nil {
		return 0
	}
	return v
}

func (r ReportRow) Int(metric string) int64 {
	return int64(r.Float(metric))
}

type CopyTask struct {
	TaskID string `json:"task_id"`
}

type CopyTaskResult struct {
	Status      string   `json:"status"`
	CampaignIDs []string `json:"campaign_ids"`
}

package metadomain

import (
	"strconv"

	"github.com/vfg2006/ads-ops-api/internal/domain"
)

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

type Insight struct {
	Spend        string   `json:"spend"`
	Clicks       string   `json:"clicks"`
	Impressions  string   `json:"impressions"`
	Actions      []Action `json:"actions"`
	ActionValues []Action `json:"action_values"`
	DateStart    string   `json:"date_start"`
	DateStop     string   `json:"date_stop"`
}

// InsightsEdge é a expansão insights.time_range(...) de uma entidade
type InsightsEdge struct {
	Data []Insight `json:"data"`
}

// Metrics soma as linhas de insights. conversionTypes define quais action_type contam como conversão.
func (e *InsightsEdge) Metrics(conversionTypes []string) domain.Metrics {
	var m domain.Metrics
	if e == nil {
		return m
	}

	wanted := make(map[string]struct{}, len(conversionTypes))
	for _, t := range conversionTypes {
		wanted[t] = struct{}{}
	}

	for _, row := range e.Data {
		m = m.Add(domain.Metrics{
			Spend:           parseFloat(row.Spend),
			Clicks:          parseInt(row.Clicks),
			Impressions:     parseInt(row.Impressions),
			Conversions:     sumActions(row.Actions, wanted),
			ConversionValue: sumActions(row.ActionValues, wanted),
		})
	}

	return m
}

func sumActions(actions []Action, wanted map[string]struct{}) float64 {
	var total float64
	for _, a := range actions {
		if _, ok := wanted[a.ActionType]; ok {
			total += parseFloat(a.Value)
		}
	}
	return total
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseCents converte os valores monetários da Graph API, já em centavos, para ponteiro
func ParseCents(s string) *int64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

package domain

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ads-ops-api/pkg/utils"
)

// Metrics guarda apenas os valores brutos reportados pela plataforma.
// Os derivados são calculados na serialização e nunca armazenados.
type Metrics struct {
	Spend           float64 `json:"spend"`
	Clicks          int64   `json:"clicks"`
	Impressions     int64   `json:"impressions"`
	Conversions     float64 `json:"conversions"`
	ConversionValue float64 `json:"conversion_value"`
}

func (m Metrics) ROAS() float64 {
	return ratio(m.ConversionValue, m.Spend)
}

func (m Metrics) CPA() float64 {
	return ratio(m.Spend, m.Conversions)
}

func (m Metrics) CTR() float64 {
	return ratio(float64(m.Clicks), float64(m.Impressions)) * 100
}

func (m Metrics) CPC() float64 {
	return ratio(m.Spend, float64(m.Clicks))
}

func (m Metrics) CPM() float64 {
	return ratio(m.Spend, float64(m.Impressions)) * 1000
}

func (m Metrics) NetProfit() float64 {
	return m.ConversionValue - m.Spend
}

// Add soma métricas, usado para agregar relatórios paginados
func (m Metrics) Add(other Metrics) Metrics {
	return Metrics{
		Spend:           m.Spend + other.Spend,
		Clicks:          m.Clicks + other.Clicks,
		Impressions:     m.Impressions + other.Impressions,
		Conversions:     m.Conversions + other.Conversions,
		ConversionValue: m.ConversionValue + other.ConversionValue,
	}
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

type metricsJSON struct {
	Spend           float64 `json:"spend"`
	Clicks          int64   `json:"clicks"`
	Impressions     int64   `json:"impressions"`
	Conversions     float64 `json:"conversions"`
	ConversionValue float64 `json:"conversion_value"`
	ROAS            float64 `json:"roas"`
	CPA             float64 `json:"cpa"`
	CTR             float64 `json:"ctr"`
	CPC             float64 `json:"cpc"`
	CPM             float64 `json:"cpm"`
	NetProfit       float64 `json:"net_profit"`
}

func (m Metrics) MarshalJSON() ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(metricsJSON{
		Spend:           utils.RoundWithTwoDecimalPlace(m.Spend),
		Clicks:          m.Clicks,
		Impressions:     m.Impressions,
		Conversions:     m.Conversions,
		ConversionValue: utils.RoundWithTwoDecimalPlace(m.ConversionValue),
		ROAS:            utils.RoundWithTwoDecimalPlace(m.ROAS()),
		CPA:             utils.RoundWithTwoDecimalPlace(m.CPA()),
		CTR:             utils.RoundWithTwoDecimalPlace(m.CTR()),
		CPC:             utils.RoundWithTwoDecimalPlace(m.CPC()),
		CPM:             utils.RoundWithTwoDecimalPlace(m.CPM()),
		NetProfit:       utils.RoundWithTwoDecimalPlace(m.NetProfit()),
	})
}

func (m *Metrics) UnmarshalJSON(data []byte) error {
	var raw metricsJSON
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &raw); err != nil {
		return err
	}

	*m = Metrics{
		Spend:           raw.Spend,
		Clicks:          raw.Clicks,
		Impressions:     raw.Impressions,
		Conversions:     raw.Conversions,
		ConversionValue: raw.ConversionValue,
	}
	return nil
}

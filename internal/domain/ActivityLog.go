package domain

import (
	"time"

	"github.com/vfg2006/ads-ops-api/pkg/utils"
)

type ActivityAction string

const (
	ActivityPause        ActivityAction = "pause"
	ActivityResume       ActivityAction = "resume"
	ActivityBudgetChange ActivityAction = "budget_change"
	ActivityBidCapChange ActivityAction = "bid_cap_change"
	ActivityDuplicate    ActivityAction = "duplicate"
)

type ActivityLogEntry struct {
	ID         string         `json:"id"`
	Platform   Platform       `json:"platform"`
	EntityType EntityType     `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	Action     ActivityAction `json:"action"`
	OldBudget  *int64         `json:"old_budget,omitempty"`
	NewBudget  *int64         `json:"new_budget,omitempty"`
	UserID     *int           `json:"user_id,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// BudgetDelta devolve a diferença em centavos e a variação percentual.
// ok é falso quando a entrada não tem orçamento antigo e novo.
func (e ActivityLogEntry) BudgetDelta() (deltaCents int64, percent float64, ok bool) {
	if e.OldBudget == nil || e.NewBudget == nil {
		return 0, 0, false
	}

	deltaCents = *e.NewBudget - *e.OldBudget
	if *e.OldBudget != 0 {
		percent = utils.RoundWithTwoDecimalPlace(float64(deltaCents) / float64(*e.OldBudget) * 100)
	}

	return deltaCents, percent, true
}

type ActivityLogEntryResponse struct {
	ActivityLogEntry
	BudgetDeltaCents *int64   `json:"budget_delta_cents,omitempty"`
	BudgetChangePct  *float64 `json:"budget_change_pct,omitempty"`
}

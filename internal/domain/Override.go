package domain

type OverrideField string

const (
	OverrideStatus OverrideField = "status"
	OverrideBudget OverrideField = "budget"
	OverrideBidCap OverrideField = "bid_cap"
)

// Override é um valor confirmado pela plataforma que ainda não voltou num fetch
type Override struct {
	Field   OverrideField
	Enabled bool
	Cents   int64
}

func StatusOverride(enable bool) Override {
	return Override{Field: OverrideStatus, Enabled: enable}
}

func BudgetOverride(cents int64) Override {
	return Override{Field: OverrideBudget, Cents: cents}
}

func BidCapOverride(cents int64) Override {
	return Override{Field: OverrideBidCap, Cents: cents}
}

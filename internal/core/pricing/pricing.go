package pricing

import (
	"math"

	"royale-campaigns/internal/core/domain"
)

// Table is the immutable pricing configuration: one monthly price per
// campaign goal and per advertisement type, in whole naira. It is injected
// into the Engine at construction so tests can substitute alternate tiers.
type Table struct {
	Goals   map[domain.CampaignGoal]int64
	AdTypes map[domain.AdvertisementType]int64
}

// DefaultTable returns the production pricing tier.
func DefaultTable() Table {
	return Table{
		Goals: map[domain.CampaignGoal]int64{
			domain.GoalLeads:      60000,
			domain.GoalSales:      80000,
			domain.GoalEngagement: 40000,
		},
		AdTypes: map[domain.AdvertisementType]int64{
			domain.AdContent:  30000,
			domain.AdPlatform: 60000, // 15,000/week billed monthly
		},
	}
}

// Baseline monthly outcome per goal before ad-type multipliers.
const (
	baseLeads      = 500
	baseSales      = 200
	baseEngagement = 10000
)

// Outcome multipliers per advertisement type. They compose when both
// types are selected.
const (
	contentMultiplier  = 1.5
	platformMultiplier = 2.0
)

// Engine computes quotes from campaign selections. All methods are pure
// and deterministic; selections are treated as sets, so duplicates never
// double-count.
type Engine struct {
	table Table
}

// NewEngine creates an engine bound to the given pricing table.
func NewEngine(table Table) *Engine {
	return &Engine{table: table}
}

// CalculatePrice sums the price of each distinct goal and advertisement
// type. Empty selections price at zero.
func (e *Engine) CalculatePrice(goals []domain.CampaignGoal, adTypes []domain.AdvertisementType) int64 {
	var total int64
	seen := make(map[domain.CampaignGoal]bool, len(goals))
	for _, g := range goals {
		if seen[g] {
			continue
		}
		seen[g] = true
		total += e.table.Goals[g]
	}
	seenAd := make(map[domain.AdvertisementType]bool, len(adTypes))
	for _, t := range adTypes {
		if seenAd[t] {
			continue
		}
		seenAd[t] = true
		total += e.table.AdTypes[t]
	}
	return total
}

// CalculateExpectedResults projects monthly outcomes for each selected
// goal. Selecting content ads multiplies the baseline by 1.5, platform ads
// by 2; both together by 3. Counts round half away from zero. Goals that
// were not selected stay absent from the result.
func (e *Engine) CalculateExpectedResults(goals []domain.CampaignGoal, adTypes []domain.AdvertisementType) domain.ExpectedResults {
	var hasContent, hasPlatform bool
	for _, t := range adTypes {
		switch t {
		case domain.AdContent:
			hasContent = true
		case domain.AdPlatform:
			hasPlatform = true
		}
	}
	multiplier := 1.0
	if hasContent {
		multiplier *= contentMultiplier
	}
	if hasPlatform {
		multiplier *= platformMultiplier
	}

	var res domain.ExpectedResults
	for _, g := range goals {
		switch g {
		case domain.GoalLeads:
			res.Leads = project(baseLeads, multiplier)
		case domain.GoalSales:
			res.Sales = project(baseSales, multiplier)
		case domain.GoalEngagement:
			res.Engagement = project(baseEngagement, multiplier)
		}
	}
	return res
}

func project(base int64, multiplier float64) *int64 {
	n := int64(math.Round(float64(base) * multiplier))
	return &n
}

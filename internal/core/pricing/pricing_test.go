package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"royale-campaigns/internal/core/domain"
)

func TestCalculatePriceAdditivity(t *testing.T) {
	engine := NewEngine(DefaultTable())

	tests := []struct {
		name    string
		goals   []domain.CampaignGoal
		adTypes []domain.AdvertisementType
		want    int64
	}{
		{
			name:    "leads and sales with content ads",
			goals:   []domain.CampaignGoal{domain.GoalLeads, domain.GoalSales},
			adTypes: []domain.AdvertisementType{domain.AdContent},
			want:    60000 + 80000 + 30000,
		},
		{
			name:  "sales only",
			goals: []domain.CampaignGoal{domain.GoalSales},
			want:  80000,
		},
		{
			name:    "everything",
			goals:   []domain.CampaignGoal{domain.GoalLeads, domain.GoalSales, domain.GoalEngagement},
			adTypes: []domain.AdvertisementType{domain.AdContent, domain.AdPlatform},
			want:    60000 + 80000 + 40000 + 30000 + 60000,
		},
		{
			name:    "ad types without goals",
			adTypes: []domain.AdvertisementType{domain.AdPlatform},
			want:    60000,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.CalculatePrice(tt.goals, tt.adTypes))
		})
	}
}

func TestCalculatePriceSetSemantics(t *testing.T) {
	engine := NewEngine(DefaultTable())

	duplicated := engine.CalculatePrice(
		[]domain.CampaignGoal{domain.GoalLeads, domain.GoalLeads},
		[]domain.AdvertisementType{domain.AdContent, domain.AdContent},
	)
	distinct := engine.CalculatePrice(
		[]domain.CampaignGoal{domain.GoalLeads},
		[]domain.AdvertisementType{domain.AdContent},
	)
	assert.Equal(t, distinct, duplicated, "duplicate selections must not double-count")
}

func TestCalculatePriceEmptySelection(t *testing.T) {
	engine := NewEngine(DefaultTable())
	assert.Zero(t, engine.CalculatePrice(nil, nil))
}

func TestExpectedResultsScaling(t *testing.T) {
	engine := NewEngine(DefaultTable())

	res := engine.CalculateExpectedResults(
		[]domain.CampaignGoal{domain.GoalLeads},
		[]domain.AdvertisementType{domain.AdContent, domain.AdPlatform},
	)
	require.NotNil(t, res.Leads)
	assert.Equal(t, int64(1500), *res.Leads) // round(500 * 1.5 * 2)
	assert.Nil(t, res.Sales)
	assert.Nil(t, res.Engagement)
}

func TestExpectedResultsPerAdType(t *testing.T) {
	engine := NewEngine(DefaultTable())

	tests := []struct {
		name    string
		adTypes []domain.AdvertisementType
		want    int64
	}{
		{"no ads", nil, 200},
		{"content only", []domain.AdvertisementType{domain.AdContent}, 300},
		{"platform only", []domain.AdvertisementType{domain.AdPlatform}, 400},
		{"both", []domain.AdvertisementType{domain.AdContent, domain.AdPlatform}, 600},
		{"duplicate platform", []domain.AdvertisementType{domain.AdPlatform, domain.AdPlatform}, 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := engine.CalculateExpectedResults([]domain.CampaignGoal{domain.GoalSales}, tt.adTypes)
			require.NotNil(t, res.Sales)
			assert.Equal(t, tt.want, *res.Sales)
		})
	}
}

func TestProjectRoundsHalfAwayFromZero(t *testing.T) {
	// exact .5 products distinguish this from banker's rounding
	assert.Equal(t, int64(3), *project(5, 0.5))
	assert.Equal(t, int64(2), *project(3, 0.5))
	assert.Equal(t, int64(1), *project(2, 0.25))
}

func TestExpectedResultsAbsenceIsNotZero(t *testing.T) {
	engine := NewEngine(DefaultTable())

	// ad types alone project nothing
	res := engine.CalculateExpectedResults(nil, []domain.AdvertisementType{domain.AdPlatform})
	assert.True(t, res.Empty())

	// empty selection projects nothing
	res = engine.CalculateExpectedResults(nil, nil)
	assert.True(t, res.Empty())

	// a selected goal is present even though another goal is absent
	res = engine.CalculateExpectedResults([]domain.CampaignGoal{domain.GoalEngagement}, nil)
	require.NotNil(t, res.Engagement)
	assert.Equal(t, int64(10000), *res.Engagement)
	assert.Nil(t, res.Leads)
	assert.Nil(t, res.Sales)
}

func TestAlternatePricingTable(t *testing.T) {
	engine := NewEngine(Table{
		Goals: map[domain.CampaignGoal]int64{
			domain.GoalLeads: 100,
		},
		AdTypes: map[domain.AdvertisementType]int64{
			domain.AdContent: 7,
		},
	})
	got := engine.CalculatePrice(
		[]domain.CampaignGoal{domain.GoalLeads},
		[]domain.AdvertisementType{domain.AdContent},
	)
	assert.Equal(t, int64(107), got)
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "NGN 0"},
		{500, "NGN 500"},
		{80000, "NGN 80,000"},
		{170000, "NGN 170,000"},
		{2400000, "NGN 2,400,000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrency(tt.amount))
	}
}

package domain

import "time"

// CampaignGoal is a campaign objective. Each goal carries its own monthly
// price and outcome-projection baseline in the pricing configuration.
type CampaignGoal string

const (
	GoalLeads      CampaignGoal = "leads"
	GoalSales      CampaignGoal = "sales"
	GoalEngagement CampaignGoal = "engagement"
)

// Goals lists every known campaign goal.
var Goals = []CampaignGoal{GoalLeads, GoalSales, GoalEngagement}

// Valid reports whether g is a known goal.
func (g CampaignGoal) Valid() bool {
	switch g {
	case GoalLeads, GoalSales, GoalEngagement:
		return true
	}
	return false
}

// AdvertisementType is a delivery channel. Each type carries its own
// monthly price and acts as a multiplier on projected outcomes.
type AdvertisementType string

const (
	AdContent  AdvertisementType = "content"
	AdPlatform AdvertisementType = "platform"
)

// AdvertisementTypes lists every known advertisement type.
var AdvertisementTypes = []AdvertisementType{AdContent, AdPlatform}

// Valid reports whether t is a known advertisement type.
func (t AdvertisementType) Valid() bool {
	switch t {
	case AdContent, AdPlatform:
		return true
	}
	return false
}

// PaymentStatus tracks where a campaign stands in its payment lifecycle.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// ExpectedResults holds the projected monthly outcome per selected goal. A
// nil field means the goal was not selected; absence is distinct from zero.
type ExpectedResults struct {
	Leads      *int64 `json:"leads,omitempty"`
	Sales      *int64 `json:"sales,omitempty"`
	Engagement *int64 `json:"engagement,omitempty"`
}

// Empty reports whether no goal projection is present.
func (r ExpectedResults) Empty() bool {
	return r.Leads == nil && r.Sales == nil && r.Engagement == nil
}

// Campaign is a single checkout record representing one customer's
// requested marketing engagement. Prices are whole naira, no minor units.
type Campaign struct {
	ID                 string
	FullName           string
	BrandName          string
	Email              string
	Phone              string
	AboutProduct       string
	ProductLink        string
	UploadedFiles      []string
	CampaignGoals      []CampaignGoal
	AdvertisementTypes []AdvertisementType
	TotalPrice         int64
	ExpectedResults    ExpectedResults
	PaymentStatus      PaymentStatus
	PaymentReference   string // empty until a verified payment attaches one
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

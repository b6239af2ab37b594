package port

import (
	"context"

	"royale-campaigns/internal/core/domain"
)

// Step is a position in the checkout flow.
type Step int

const (
	StepDetails Step = iota + 1
	StepSelections
	StepReview
	StepCompleted
)

func (s Step) String() string {
	switch s {
	case StepDetails:
		return "details"
	case StepSelections:
		return "selections"
	case StepReview:
		return "review"
	case StepCompleted:
		return "completed"
	}
	return "unknown"
}

// CampaignDetails holds the step-1 form fields. Phone, product link and
// uploads are optional.
type CampaignDetails struct {
	FullName      string   `json:"fullName"`
	BrandName     string   `json:"brandName"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	AboutProduct  string   `json:"aboutProduct"`
	ProductLink   string   `json:"productLink"`
	UploadedFiles []string `json:"uploadedFiles"`
}

// CampaignSelections holds the step-2 choices.
type CampaignSelections struct {
	Goals   []domain.CampaignGoal      `json:"campaignGoals"`
	AdTypes []domain.AdvertisementType `json:"advertisementTypes"`
}

// Quote is a live price computation over the current selections.
type Quote struct {
	TotalPrice      int64                  `json:"totalPrice"`
	FormattedTotal  string                 `json:"formattedTotal"`
	ExpectedResults domain.ExpectedResults `json:"expectedResults"`
}

// SessionView is a read snapshot of a checkout session. The quote is
// recomputed on every read.
type SessionView struct {
	Step       Step
	Details    CampaignDetails
	Selections CampaignSelections
	Quote      Quote
	CampaignID string // set once a payment attempt persisted a record
}

// PayStatus classifies the outcome of one Pay call.
type PayStatus string

const (
	PayCompleted PayStatus = "completed"
	PayCancelled PayStatus = "cancelled"
	PayFailed    PayStatus = "failed"
)

// PayOutcome reports how a payment attempt ended. CampaignID identifies
// the record persisted for the attempt; Reference is set only when the
// payment completed and verified.
type PayOutcome struct {
	Status     PayStatus
	CampaignID string
	Reference  string
	Message    string
}

// CheckoutUseCase is the inbound port for the campaign checkout state
// machine. One session holds one in-progress draft; sessions are
// independent and a completed session is terminal.
type CheckoutUseCase interface {
	// Start opens a fresh session at the details step and returns its id.
	Start() string
	// UpdateDetails replaces the draft's step-1 fields. Edits are allowed
	// at any step before completion and are never lost by going back.
	UpdateDetails(sessionID string, d CampaignDetails) error
	// UpdateSelections replaces the draft's goal/ad-type choices. Unknown
	// enum values are rejected.
	UpdateSelections(sessionID string, s CampaignSelections) error
	// Advance moves the session one step forward, enforcing the step
	// guards. A blocked transition leaves the state unchanged.
	Advance(sessionID string) (Step, error)
	// Back moves one step backward without discarding any draft data.
	Back(sessionID string) (Step, error)
	// Session returns a snapshot with a freshly computed quote.
	Session(sessionID string) (SessionView, error)
	// Pay runs the payment leg from the review step: validate, persist a
	// pending campaign, await the collector, verify and reconcile.
	Pay(ctx context.Context, sessionID string) (PayOutcome, error)
}

// ApplicationUseCase is the inbound port for the lead-capture forms.
type ApplicationUseCase interface {
	SubmitAcademyEnrollment(ctx context.Context, e domain.AcademyEnrollment) error
	SubmitModelApplication(ctx context.Context, a domain.ModelApplication) error
	SubmitBrandApplication(ctx context.Context, a domain.BrandApplication) error
	SubmitServiceInquiry(ctx context.Context, i domain.ServiceInquiry) error
}

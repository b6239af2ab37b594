package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"royale-campaigns/internal/core/domain"
	"royale-campaigns/internal/core/port"
	"royale-campaigns/internal/core/pricing"
)

var (
	ErrSessionNotFound   = errors.New("checkout session not found")
	ErrDetailsIncomplete = errors.New("full name, brand name, email and product description are required")
	ErrNoGoalsSelected   = errors.New("select at least one campaign goal")
	ErrInvalidSelection  = errors.New("unknown campaign goal or advertisement type")
	ErrCheckoutCompleted = errors.New("checkout already completed")
	ErrPaymentRequired   = errors.New("complete payment to finish checkout")
	ErrNotAtReview       = errors.New("checkout is not at the review step")
	ErrPaymentInFlight   = errors.New("a payment attempt is already in progress")
)

// sessionTTL bounds how long an idle draft is kept. Abandoned sessions are
// swept when a new one starts.
const sessionTTL = 24 * time.Hour

// session is one in-progress checkout draft. Fields are guarded by the
// Checkout mutex; a draft survives backward transitions untouched.
type session struct {
	step       port.Step
	details    port.CampaignDetails
	selections port.CampaignSelections
	campaignID string
	paying     bool
	touched    time.Time
}

// Checkout implements port.CheckoutUseCase. It owns the in-memory session
// registry and orchestrates the pricing engine, the record store and the
// external payment collaborators. Pricing is recomputed on every read; the
// store is only touched when a payment attempt starts.
type Checkout struct {
	mu       sync.Mutex
	sessions map[string]*session

	engine    *pricing.Engine
	repo      port.CampaignRepository
	collector port.PaymentCollector
	verifier  port.PaymentVerifier
	refs      port.ReferenceStore // optional; nil disables the replay guard
	logger    *slog.Logger
	now       func() time.Time
}

// NewCheckout wires the checkout state machine. refs may be nil when no
// reference store is configured.
func NewCheckout(
	engine *pricing.Engine,
	repo port.CampaignRepository,
	collector port.PaymentCollector,
	verifier port.PaymentVerifier,
	refs port.ReferenceStore,
	logger *slog.Logger,
) *Checkout {
	return &Checkout{
		sessions:  make(map[string]*session),
		engine:    engine,
		repo:      repo,
		collector: collector,
		verifier:  verifier,
		refs:      refs,
		logger:    logger,
		now:       time.Now,
	}
}

// Start opens a fresh session at the details step and sweeps drafts that
// have been idle past the TTL. Sessions with a payment in flight are
// never swept.
func (c *Checkout) Start() string {
	id := uuid.NewString()
	now := c.now()
	c.mu.Lock()
	for sid, s := range c.sessions {
		if !s.paying && now.Sub(s.touched) > sessionTTL {
			delete(c.sessions, sid)
		}
	}
	c.sessions[id] = &session{step: port.StepDetails, touched: now}
	c.mu.Unlock()
	return id
}

// get looks up a session and refreshes its idle timer. Callers must hold
// the mutex.
func (c *Checkout) get(sessionID string) (*session, bool) {
	s, ok := c.sessions[sessionID]
	if ok {
		s.touched = c.now()
	}
	return s, ok
}

// UpdateDetails replaces the draft's contact and content fields. No
// validation happens here; guards apply on forward transitions only.
func (c *Checkout) UpdateDetails(sessionID string, d port.CampaignDetails) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.get(sessionID)
	if !ok {
		return ErrSessionNotFound
	}
	if s.step == port.StepCompleted {
		return ErrCheckoutCompleted
	}
	s.details = d
	return nil
}

// UpdateSelections replaces the draft's goal and ad-type choices. Unknown
// enum values are a contract violation and rejected outright.
func (c *Checkout) UpdateSelections(sessionID string, sel port.CampaignSelections) error {
	for _, g := range sel.Goals {
		if !g.Valid() {
			return ErrInvalidSelection
		}
	}
	for _, t := range sel.AdTypes {
		if !t.Valid() {
			return ErrInvalidSelection
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.get(sessionID)
	if !ok {
		return ErrSessionNotFound
	}
	if s.step == port.StepCompleted {
		return ErrCheckoutCompleted
	}
	s.selections = sel
	return nil
}

// Advance moves the session forward one step. Guard violations block the
// transition and leave the session exactly where it was; no record is
// created.
func (c *Checkout) Advance(sessionID string) (port.Step, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.get(sessionID)
	if !ok {
		return 0, ErrSessionNotFound
	}
	switch s.step {
	case port.StepDetails:
		if !detailsComplete(s.details) {
			return s.step, ErrDetailsIncomplete
		}
		s.step = port.StepSelections
	case port.StepSelections:
		if len(s.selections.Goals) == 0 {
			return s.step, ErrNoGoalsSelected
		}
		s.step = port.StepReview
	case port.StepReview:
		return s.step, ErrPaymentRequired
	case port.StepCompleted:
		return s.step, ErrCheckoutCompleted
	}
	return s.step, nil
}

// Back moves the session one step backward. The draft is untouched, so the
// transition is lossless. Backing up from the first step is a no-op;
// completed sessions are terminal.
func (c *Checkout) Back(sessionID string) (port.Step, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.get(sessionID)
	if !ok {
		return 0, ErrSessionNotFound
	}
	switch s.step {
	case port.StepSelections:
		s.step = port.StepDetails
	case port.StepReview:
		s.step = port.StepSelections
	case port.StepCompleted:
		return s.step, ErrCheckoutCompleted
	}
	return s.step, nil
}

// Session returns a snapshot of the draft with a freshly computed quote.
func (c *Checkout) Session(sessionID string) (port.SessionView, error) {
	c.mu.Lock()
	s, ok := c.get(sessionID)
	if !ok {
		c.mu.Unlock()
		return port.SessionView{}, ErrSessionNotFound
	}
	view := port.SessionView{
		Step:       s.step,
		Details:    s.details,
		Selections: s.selections,
		CampaignID: s.campaignID,
	}
	c.mu.Unlock()

	total := c.engine.CalculatePrice(view.Selections.Goals, view.Selections.AdTypes)
	view.Quote = port.Quote{
		TotalPrice:      total,
		FormattedTotal:  pricing.FormatCurrency(total),
		ExpectedResults: c.engine.CalculateExpectedResults(view.Selections.Goals, view.Selections.AdTypes),
	}
	return view, nil
}

// Pay runs the payment leg from the review step. It re-validates the
// draft, persists a pending campaign under a fresh id, awaits the
// collector and reconciles the verified outcome into the record. Every
// failure returns the session to a re-enterable state; only a verified
// success advances to completed.
func (c *Checkout) Pay(ctx context.Context, sessionID string) (port.PayOutcome, error) {
	c.mu.Lock()
	s, ok := c.get(sessionID)
	if !ok {
		c.mu.Unlock()
		return port.PayOutcome{}, ErrSessionNotFound
	}
	if s.step == port.StepCompleted {
		c.mu.Unlock()
		return port.PayOutcome{}, ErrCheckoutCompleted
	}
	if s.step != port.StepReview {
		c.mu.Unlock()
		return port.PayOutcome{}, ErrNotAtReview
	}
	if s.paying {
		c.mu.Unlock()
		return port.PayOutcome{}, ErrPaymentInFlight
	}
	if !detailsComplete(s.details) {
		c.mu.Unlock()
		return port.PayOutcome{}, ErrDetailsIncomplete
	}
	if len(s.selections.Goals) == 0 {
		c.mu.Unlock()
		return port.PayOutcome{}, ErrNoGoalsSelected
	}
	s.paying = true
	details := s.details
	selections := s.selections
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		s.paying = false
		c.mu.Unlock()
	}()

	// Each attempt gets its own record; a failed record stays queryable.
	now := c.now().UTC()
	campaign := &domain.Campaign{
		ID:                 uuid.NewString(),
		FullName:           details.FullName,
		BrandName:          details.BrandName,
		Email:              details.Email,
		Phone:              details.Phone,
		AboutProduct:       details.AboutProduct,
		ProductLink:        details.ProductLink,
		UploadedFiles:      details.UploadedFiles,
		CampaignGoals:      selections.Goals,
		AdvertisementTypes: selections.AdTypes,
		TotalPrice:         c.engine.CalculatePrice(selections.Goals, selections.AdTypes),
		ExpectedResults:    c.engine.CalculateExpectedResults(selections.Goals, selections.AdTypes),
		PaymentStatus:      domain.PaymentPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := c.repo.Insert(ctx, campaign); err != nil {
		return port.PayOutcome{}, err
	}
	c.mu.Lock()
	s.campaignID = campaign.ID
	c.mu.Unlock()

	result, err := c.collector.Initiate(ctx, port.PaymentRequest{
		Reference: campaign.ID,
		Email:     campaign.Email,
		Amount:    campaign.TotalPrice,
		Currency:  "NGN",
		Metadata: map[string]string{
			"campaign_id": campaign.ID,
			"brand_name":  campaign.BrandName,
		},
	})
	if err != nil {
		// transport failure before any outcome; record stays pending
		return port.PayOutcome{}, err
	}

	switch result.State {
	case port.PaymentCancelled:
		return port.PayOutcome{
			Status:     port.PayCancelled,
			CampaignID: campaign.ID,
			Message:    "payment was cancelled",
		}, nil
	case port.PaymentFailed:
		if err := c.repo.UpdatePayment(ctx, campaign.ID, domain.PaymentFailed, ""); err != nil {
			c.logger.Error("failed to record payment failure",
				slog.String("campaign_id", campaign.ID), slog.Any("error", err))
		}
		msg := result.Reason
		if msg == "" {
			msg = "payment failed"
		}
		return port.PayOutcome{
			Status:     port.PayFailed,
			CampaignID: campaign.ID,
			Message:    msg,
		}, nil
	}

	return c.settle(ctx, s, campaign.ID, result.Reference, campaign.TotalPrice)
}

// settle verifies a successful collector result and reconciles the record.
// The campaign's total price rides along so verification can reject a
// capture whose amount does not match the quote.
func (c *Checkout) settle(ctx context.Context, s *session, campaignID, reference string, amount int64) (port.PayOutcome, error) {
	if outcome, done := c.rejectReplayed(ctx, campaignID, reference); done {
		return outcome, nil
	}

	verified, err := c.verifier.Verify(ctx, reference, amount)
	if err != nil {
		// verification could not run; the record stays pending and the
		// attempt may be repeated
		return port.PayOutcome{}, err
	}
	if !verified {
		if err := c.repo.UpdatePayment(ctx, campaignID, domain.PaymentFailed, ""); err != nil {
			c.logger.Error("failed to record verification failure",
				slog.String("campaign_id", campaignID), slog.Any("error", err))
		}
		return port.PayOutcome{
			Status:     port.PayFailed,
			CampaignID: campaignID,
			Message:    "payment verification failed, please contact support",
		}, nil
	}

	if err := c.repo.UpdatePayment(ctx, campaignID, domain.PaymentCompleted, reference); err != nil {
		// verified but not reconciled; keep the session on review so the
		// customer is not told more than the store knows
		return port.PayOutcome{}, err
	}
	if c.refs != nil {
		if err := c.refs.Remember(ctx, reference, campaignID); err != nil {
			c.logger.Warn("failed to remember payment reference",
				slog.String("reference", reference), slog.Any("error", err))
		}
	}

	c.mu.Lock()
	s.step = port.StepCompleted
	c.mu.Unlock()

	return port.PayOutcome{
		Status:     port.PayCompleted,
		CampaignID: campaignID,
		Reference:  reference,
	}, nil
}

// rejectReplayed fails the attempt when the reference was already consumed
// by a different campaign. Store errors only log; availability wins over
// the guard.
func (c *Checkout) rejectReplayed(ctx context.Context, campaignID, reference string) (port.PayOutcome, bool) {
	if c.refs == nil {
		return port.PayOutcome{}, false
	}
	owner, ok, err := c.refs.Recall(ctx, reference)
	if err != nil {
		c.logger.Warn("reference store unavailable",
			slog.String("reference", reference), slog.Any("error", err))
		return port.PayOutcome{}, false
	}
	if !ok || owner == campaignID {
		return port.PayOutcome{}, false
	}
	if err := c.repo.UpdatePayment(ctx, campaignID, domain.PaymentFailed, ""); err != nil {
		c.logger.Error("failed to record replayed reference",
			slog.String("campaign_id", campaignID), slog.Any("error", err))
	}
	return port.PayOutcome{
		Status:     port.PayFailed,
		CampaignID: campaignID,
		Message:    "payment reference was already used",
	}, true
}

func detailsComplete(d port.CampaignDetails) bool {
	return strings.TrimSpace(d.FullName) != "" &&
		strings.TrimSpace(d.BrandName) != "" &&
		strings.TrimSpace(d.Email) != "" &&
		strings.TrimSpace(d.AboutProduct) != ""
}

var _ port.CheckoutUseCase = (*Checkout)(nil)

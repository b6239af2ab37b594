package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"royale-campaigns/internal/core/domain"
	"royale-campaigns/internal/core/port"
	"royale-campaigns/internal/core/pricing"
)

type paymentUpdate struct {
	id        string
	status    domain.PaymentStatus
	reference string
}

// fakeCampaignRepo records inserts and payment updates in memory.
type fakeCampaignRepo struct {
	mu        sync.Mutex
	inserted  []domain.Campaign
	updates   []paymentUpdate
	insertErr error
	updateErr error
}

func (f *fakeCampaignRepo) Insert(_ context.Context, c *domain.Campaign) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inserted = append(f.inserted, *c)
	return nil
}

func (f *fakeCampaignRepo) UpdatePayment(_ context.Context, id string, status domain.PaymentStatus, reference string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, paymentUpdate{id: id, status: status, reference: reference})
	return nil
}

func (f *fakeCampaignRepo) GetByID(context.Context, string) (*domain.Campaign, error) {
	return nil, port.ErrNotFound
}

func (f *fakeCampaignRepo) List(context.Context, port.CampaignFilter) ([]domain.Campaign, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Campaign(nil), f.inserted...), nil
}

func (f *fakeCampaignRepo) Delete(context.Context, string) error { return nil }

func (f *fakeCampaignRepo) Stats(context.Context) (port.CampaignStats, error) {
	return port.CampaignStats{}, nil
}

// record returns the final state of the single persisted campaign: the
// inserted row with all payment updates applied in order.
func (f *fakeCampaignRepo) record(t *testing.T) domain.Campaign {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.Len(t, f.inserted, 1)
	c := f.inserted[0]
	for _, u := range f.updates {
		require.Equal(t, c.ID, u.id)
		c.PaymentStatus = u.status
		c.PaymentReference = u.reference
	}
	return c
}

// fakeCollector returns a scripted result and captures the request.
type fakeCollector struct {
	result port.PaymentResult
	err    error
	last   port.PaymentRequest
}

func (f *fakeCollector) Initiate(_ context.Context, req port.PaymentRequest) (port.PaymentResult, error) {
	f.last = req
	if f.err != nil {
		return port.PaymentResult{}, f.err
	}
	res := f.result
	if res.Reference == "" && res.State == port.PaymentSucceeded {
		res.Reference = req.Reference
	}
	return res, nil
}

// fakeVerifier returns a scripted verdict and records what it was asked.
type fakeVerifier struct {
	verified   bool
	err        error
	calls      int
	lastAmount int64
}

func (f *fakeVerifier) Verify(_ context.Context, _ string, amount int64) (bool, error) {
	f.calls++
	f.lastAmount = amount
	return f.verified, f.err
}

// fakeRefStore is an in-memory port.ReferenceStore.
type fakeRefStore struct {
	refs map[string]string
	err  error
}

func (f *fakeRefStore) Remember(_ context.Context, reference, campaignID string) error {
	if f.err != nil {
		return f.err
	}
	if f.refs == nil {
		f.refs = map[string]string{}
	}
	f.refs[reference] = campaignID
	return nil
}

func (f *fakeRefStore) Recall(_ context.Context, reference string) (string, bool, error) {
	if f.err != nil {
		return "", false, f.err
	}
	owner, ok := f.refs[reference]
	return owner, ok, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestCheckout(repo *fakeCampaignRepo, collector *fakeCollector, verifier *fakeVerifier, refs port.ReferenceStore) *Checkout {
	return NewCheckout(pricing.NewEngine(pricing.DefaultTable()), repo, collector, verifier, refs, testLogger())
}

func validDetails() port.CampaignDetails {
	return port.CampaignDetails{
		FullName:     "Ada Obi",
		BrandName:    "Obi Foods",
		Email:        "ada@obifoods.ng",
		Phone:        "+234 801 234 5678",
		AboutProduct: "Packaged spice blends for West African cuisine",
	}
}

// driveToReview walks a fresh session to the review step with the given
// selections.
func driveToReview(t *testing.T, c *Checkout, sel port.CampaignSelections) string {
	t.Helper()
	id := c.Start()
	require.NoError(t, c.UpdateDetails(id, validDetails()))
	step, err := c.Advance(id)
	require.NoError(t, err)
	require.Equal(t, port.StepSelections, step)
	require.NoError(t, c.UpdateSelections(id, sel))
	step, err = c.Advance(id)
	require.NoError(t, err)
	require.Equal(t, port.StepReview, step)
	return id
}

func TestCheckoutHappyPath(t *testing.T) {
	repo := &fakeCampaignRepo{}
	collector := &fakeCollector{result: port.PaymentResult{State: port.PaymentSucceeded, Reference: "ref-123"}}
	verifier := &fakeVerifier{verified: true}
	c := newTestCheckout(repo, collector, verifier, nil)

	id := driveToReview(t, c, port.CampaignSelections{Goals: []domain.CampaignGoal{domain.GoalSales}})

	outcome, err := c.Pay(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, port.PayCompleted, outcome.Status)
	assert.Equal(t, "ref-123", outcome.Reference)

	assert.Equal(t, int64(80000), collector.last.Amount)
	assert.Equal(t, "NGN", collector.last.Currency)
	assert.Equal(t, outcome.CampaignID, collector.last.Reference)
	assert.Equal(t, int64(80000), verifier.lastAmount, "verification checks the quoted amount")

	record := repo.record(t)
	assert.Equal(t, domain.PaymentCompleted, record.PaymentStatus)
	assert.Equal(t, "ref-123", record.PaymentReference)
	assert.Equal(t, int64(80000), record.TotalPrice)

	view, err := c.Session(id)
	require.NoError(t, err)
	assert.Equal(t, port.StepCompleted, view.Step)
}

func TestCheckoutVerificationFailure(t *testing.T) {
	repo := &fakeCampaignRepo{}
	collector := &fakeCollector{result: port.PaymentResult{State: port.PaymentSucceeded, Reference: "ref-123"}}
	verifier := &fakeVerifier{verified: false}
	c := newTestCheckout(repo, collector, verifier, nil)

	id := driveToReview(t, c, port.CampaignSelections{Goals: []domain.CampaignGoal{domain.GoalSales}})

	outcome, err := c.Pay(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, port.PayFailed, outcome.Status)
	assert.NotEmpty(t, outcome.Message)

	record := repo.record(t)
	assert.Equal(t, domain.PaymentFailed, record.PaymentStatus)
	assert.Empty(t, record.PaymentReference)

	// the draft stays on review so the customer can try again
	view, err := c.Session(id)
	require.NoError(t, err)
	assert.Equal(t, port.StepReview, view.Step)
}

func TestCheckoutBlockedDetailsStep(t *testing.T) {
	repo := &fakeCampaignRepo{}
	c := newTestCheckout(repo, &fakeCollector{}, &fakeVerifier{}, nil)

	id := c.Start()
	details := validDetails()
	details.BrandName = ""
	require.NoError(t, c.UpdateDetails(id, details))

	step, err := c.Advance(id)
	assert.ErrorIs(t, err, ErrDetailsIncomplete)
	assert.Equal(t, port.StepDetails, step)
	assert.Empty(t, repo.inserted, "no record may be created by a blocked transition")
}

func TestCheckoutBlockedSelectionsStep(t *testing.T) {
	repo := &fakeCampaignRepo{}
	c := newTestCheckout(repo, &fakeCollector{}, &fakeVerifier{}, nil)

	id := c.Start()
	require.NoError(t, c.UpdateDetails(id, validDetails()))
	_, err := c.Advance(id)
	require.NoError(t, err)

	step, err := c.Advance(id)
	assert.ErrorIs(t, err, ErrNoGoalsSelected)
	assert.Equal(t, port.StepSelections, step)
	assert.Empty(t, repo.inserted)
}

func TestCheckoutCancelledPayment(t *testing.T) {
	repo := &fakeCampaignRepo{}
	collector := &fakeCollector{result: port.PaymentResult{State: port.PaymentCancelled}}
	verifier := &fakeVerifier{}
	c := newTestCheckout(repo, collector, verifier, nil)

	id := driveToReview(t, c, port.CampaignSelections{Goals: []domain.CampaignGoal{domain.GoalLeads}})

	outcome, err := c.Pay(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, port.PayCancelled, outcome.Status)
	assert.Zero(t, verifier.calls)

	// cancel is not an error: the record stays pending untouched
	record := repo.record(t)
	assert.Equal(t, domain.PaymentPending, record.PaymentStatus)
	assert.Empty(t, repo.updates)

	view, err := c.Session(id)
	require.NoError(t, err)
	assert.Equal(t, port.StepReview, view.Step)
}

func TestCheckoutCollectorFailure(t *testing.T) {
	repo := &fakeCampaignRepo{}
	collector := &fakeCollector{result: port.PaymentResult{State: port.PaymentFailed, Reason: "card declined"}}
	c := newTestCheckout(repo, collector, &fakeVerifier{}, nil)

	id := driveToReview(t, c, port.CampaignSelections{Goals: []domain.CampaignGoal{domain.GoalLeads}})

	outcome, err := c.Pay(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, port.PayFailed, outcome.Status)
	assert.Equal(t, "card declined", outcome.Message)

	record := repo.record(t)
	assert.Equal(t, domain.PaymentFailed, record.PaymentStatus)
}

func TestCheckoutVerifierErrorKeepsRecordPending(t *testing.T) {
	repo := &fakeCampaignRepo{}
	collector := &fakeCollector{result: port.PaymentResult{State: port.PaymentSucceeded}}
	verifier := &fakeVerifier{err: errors.New("gateway timeout")}
	c := newTestCheckout(repo, collector, verifier, nil)

	id := driveToReview(t, c, port.CampaignSelections{Goals: []domain.CampaignGoal{domain.GoalSales}})

	_, err := c.Pay(context.Background(), id)
	require.Error(t, err)

	record := repo.record(t)
	assert.Equal(t, domain.PaymentPending, record.PaymentStatus)
	assert.Empty(t, repo.updates)

	view, err := c.Session(id)
	require.NoError(t, err)
	assert.Equal(t, port.StepReview, view.Step)
}

func TestCheckoutBackIsLossless(t *testing.T) {
	c := newTestCheckout(&fakeCampaignRepo{}, &fakeCollector{}, &fakeVerifier{}, nil)

	sel := port.CampaignSelections{
		Goals:   []domain.CampaignGoal{domain.GoalLeads, domain.GoalEngagement},
		AdTypes: []domain.AdvertisementType{domain.AdContent},
	}
	id := driveToReview(t, c, sel)

	step, err := c.Back(id)
	require.NoError(t, err)
	assert.Equal(t, port.StepSelections, step)
	step, err = c.Back(id)
	require.NoError(t, err)
	assert.Equal(t, port.StepDetails, step)
	// backing up from the first step stays put
	step, err = c.Back(id)
	require.NoError(t, err)
	assert.Equal(t, port.StepDetails, step)

	view, err := c.Session(id)
	require.NoError(t, err)
	assert.Equal(t, validDetails(), view.Details)
	assert.Equal(t, sel, view.Selections)
	assert.Equal(t, int64(60000+40000+30000), view.Quote.TotalPrice)
}

func TestCheckoutQuoteRecomputes(t *testing.T) {
	c := newTestCheckout(&fakeCampaignRepo{}, &fakeCollector{}, &fakeVerifier{}, nil)

	id := c.Start()
	require.NoError(t, c.UpdateSelections(id, port.CampaignSelections{
		Goals: []domain.CampaignGoal{domain.GoalLeads},
	}))
	view, err := c.Session(id)
	require.NoError(t, err)
	assert.Equal(t, int64(60000), view.Quote.TotalPrice)
	assert.Equal(t, "NGN 60,000", view.Quote.FormattedTotal)

	require.NoError(t, c.UpdateSelections(id, port.CampaignSelections{
		Goals:   []domain.CampaignGoal{domain.GoalLeads},
		AdTypes: []domain.AdvertisementType{domain.AdPlatform},
	}))
	view, err = c.Session(id)
	require.NoError(t, err)
	assert.Equal(t, int64(120000), view.Quote.TotalPrice)
	require.NotNil(t, view.Quote.ExpectedResults.Leads)
	assert.Equal(t, int64(1000), *view.Quote.ExpectedResults.Leads)
}

func TestCheckoutPayRequiresReviewStep(t *testing.T) {
	c := newTestCheckout(&fakeCampaignRepo{}, &fakeCollector{}, &fakeVerifier{}, nil)

	id := c.Start()
	_, err := c.Pay(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotAtReview)
}

func TestCheckoutCompletedIsTerminal(t *testing.T) {
	repo := &fakeCampaignRepo{}
	collector := &fakeCollector{result: port.PaymentResult{State: port.PaymentSucceeded, Reference: "ref-1"}}
	c := newTestCheckout(repo, collector, &fakeVerifier{verified: true}, nil)

	id := driveToReview(t, c, port.CampaignSelections{Goals: []domain.CampaignGoal{domain.GoalSales}})
	_, err := c.Pay(context.Background(), id)
	require.NoError(t, err)

	_, err = c.Advance(id)
	assert.ErrorIs(t, err, ErrCheckoutCompleted)
	_, err = c.Back(id)
	assert.ErrorIs(t, err, ErrCheckoutCompleted)
	_, err = c.Pay(context.Background(), id)
	assert.ErrorIs(t, err, ErrCheckoutCompleted)
	assert.ErrorIs(t, c.UpdateDetails(id, validDetails()), ErrCheckoutCompleted)

	// a fresh session starts over with its own campaign
	id2 := c.Start()
	view, err := c.Session(id2)
	require.NoError(t, err)
	assert.Equal(t, port.StepDetails, view.Step)
	assert.Empty(t, view.CampaignID)
}

func TestCheckoutRejectsReplayedReference(t *testing.T) {
	repo := &fakeCampaignRepo{}
	collector := &fakeCollector{result: port.PaymentResult{State: port.PaymentSucceeded, Reference: "ref-xyz"}}
	verifier := &fakeVerifier{verified: true}
	refs := &fakeRefStore{refs: map[string]string{"ref-xyz": "some-other-campaign"}}
	c := newTestCheckout(repo, collector, verifier, refs)

	id := driveToReview(t, c, port.CampaignSelections{Goals: []domain.CampaignGoal{domain.GoalSales}})

	outcome, err := c.Pay(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, port.PayFailed, outcome.Status)
	assert.Zero(t, verifier.calls, "a replayed reference must not reach verification")

	record := repo.record(t)
	assert.Equal(t, domain.PaymentFailed, record.PaymentStatus)
}

func TestCheckoutRemembersConsumedReference(t *testing.T) {
	repo := &fakeCampaignRepo{}
	collector := &fakeCollector{result: port.PaymentResult{State: port.PaymentSucceeded, Reference: "ref-7"}}
	refs := &fakeRefStore{}
	c := newTestCheckout(repo, collector, &fakeVerifier{verified: true}, refs)

	id := driveToReview(t, c, port.CampaignSelections{Goals: []domain.CampaignGoal{domain.GoalSales}})
	outcome, err := c.Pay(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, outcome.CampaignID, refs.refs["ref-7"])
}

func TestCheckoutRejectsUnknownSelections(t *testing.T) {
	c := newTestCheckout(&fakeCampaignRepo{}, &fakeCollector{}, &fakeVerifier{}, nil)

	id := c.Start()
	err := c.UpdateSelections(id, port.CampaignSelections{
		Goals: []domain.CampaignGoal{"world-domination"},
	})
	assert.ErrorIs(t, err, ErrInvalidSelection)
	err = c.UpdateSelections(id, port.CampaignSelections{
		AdTypes: []domain.AdvertisementType{"skywriting"},
	})
	assert.ErrorIs(t, err, ErrInvalidSelection)
}

func TestCheckoutInsertErrorLeavesSessionUsable(t *testing.T) {
	repo := &fakeCampaignRepo{insertErr: errors.New("store unreachable")}
	c := newTestCheckout(repo, &fakeCollector{}, &fakeVerifier{}, nil)

	id := driveToReview(t, c, port.CampaignSelections{Goals: []domain.CampaignGoal{domain.GoalSales}})

	_, err := c.Pay(context.Background(), id)
	require.Error(t, err)

	// the draft survives the failed attempt
	view, err := c.Session(id)
	require.NoError(t, err)
	assert.Equal(t, port.StepReview, view.Step)
	assert.Equal(t, validDetails(), view.Details)
}

func TestCheckoutFreshCampaignIDPerAttempt(t *testing.T) {
	repo := &fakeCampaignRepo{}
	collector := &fakeCollector{result: port.PaymentResult{State: port.PaymentSucceeded}}
	verifier := &fakeVerifier{verified: false}
	c := newTestCheckout(repo, collector, verifier, nil)

	id := driveToReview(t, c, port.CampaignSelections{Goals: []domain.CampaignGoal{domain.GoalSales}})

	first, err := c.Pay(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, port.PayFailed, first.Status)

	second, err := c.Pay(context.Background(), id)
	require.NoError(t, err)
	assert.NotEqual(t, first.CampaignID, second.CampaignID)
	assert.Len(t, repo.inserted, 2)
}

func TestCheckoutIdleSessionsExpire(t *testing.T) {
	c := newTestCheckout(&fakeCampaignRepo{}, &fakeCollector{}, &fakeVerifier{}, nil)
	base := time.Now()
	c.now = func() time.Time { return base }

	stale := c.Start()
	fresh := c.Start()

	// fresh keeps getting touched, stale goes idle
	c.now = func() time.Time { return base.Add(sessionTTL - time.Minute) }
	require.NoError(t, c.UpdateDetails(fresh, validDetails()))

	c.now = func() time.Time { return base.Add(sessionTTL + time.Minute) }
	c.Start()

	_, err := c.Session(stale)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	view, err := c.Session(fresh)
	require.NoError(t, err)
	assert.Equal(t, validDetails(), view.Details)
}

func TestCheckoutSessionNotFound(t *testing.T) {
	c := newTestCheckout(&fakeCampaignRepo{}, &fakeCollector{}, &fakeVerifier{}, nil)

	_, err := c.Session("nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = c.Advance("nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = c.Pay(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

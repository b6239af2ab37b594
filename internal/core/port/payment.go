package port

import "context"

// PaymentState is the terminal state of a payment attempt as reported by
// the external collector.
type PaymentState string

const (
	// PaymentSucceeded means the collector reports a captured payment. The
	// reference still has to be verified before the campaign is completed.
	PaymentSucceeded PaymentState = "succeeded"
	// PaymentCancelled means the customer abandoned the hosted payment
	// page. Not an error; the draft record stays pending.
	PaymentCancelled PaymentState = "cancelled"
	// PaymentFailed means the collector could not capture the payment.
	PaymentFailed PaymentState = "failed"
)

// PaymentRequest describes one payment attempt handed to the collector.
// Amount is in whole currency units; adapters convert to minor units if
// their gateway requires it.
type PaymentRequest struct {
	Reference string // campaign id, doubles as the gateway reference
	Email     string
	Amount    int64
	Currency  string
	Metadata  map[string]string
}

// PaymentResult is the outcome of a payment attempt. Reference is set only
// on success. Reason carries the gateway's failure detail when present.
type PaymentResult struct {
	State            PaymentState
	Reference        string
	Reason           string
	AuthorizationURL string // hosted payment page, when the gateway exposes one
}

// PaymentCollector is the external hosted payment widget/page. Initiate
// blocks until the attempt reaches a terminal state or ctx is cancelled;
// cancelling ctx yields a Cancelled result, not an error. Errors are
// reserved for transport failures before an outcome is known.
type PaymentCollector interface {
	Initiate(ctx context.Context, req PaymentRequest) (PaymentResult, error)
}

// PaymentVerifier confirms the authenticity of a payment reference against
// the gateway. Amount is the expected charge in whole currency units; the
// check passes only when the gateway confirms the status and the captured
// amount matches. The boolean is authoritative; errors mean the check
// could not be performed and the attempt may be retried.
type PaymentVerifier interface {
	Verify(ctx context.Context, reference string, amount int64) (bool, error)
}

// ReferenceStore remembers which campaign consumed a payment reference so
// a replayed reference cannot complete a second campaign. Implementations
// may expire entries.
type ReferenceStore interface {
	Remember(ctx context.Context, reference, campaignID string) error
	// Recall returns the campaign id bound to the reference, if any.
	Recall(ctx context.Context, reference string) (string, bool, error)
}

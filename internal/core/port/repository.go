package port

import (
	"context"
	"errors"

	"royale-campaigns/internal/core/domain"
)

// ErrNotFound is returned when a record does not exist in the store.
var ErrNotFound = errors.New("record not found")

// CampaignFilter narrows campaign listings. Zero values mean "no filter".
type CampaignFilter struct {
	// Status restricts results to one payment status.
	Status domain.PaymentStatus
	// Search matches full name, brand name or email, case-insensitively.
	Search string
}

// CampaignStats aggregates the dashboard overview numbers.
type CampaignStats struct {
	Total            int64
	Completed        int64
	Pending          int64
	Failed           int64
	CompletedRevenue int64
}

// CampaignRepository is the outbound persistence port for campaign
// records. Implementations must treat single-record writes as atomic; no
// cross-record transactions are required.
type CampaignRepository interface {
	// Insert stores a new campaign under its pre-assigned id.
	Insert(ctx context.Context, c *domain.Campaign) error
	// UpdatePayment reconciles the payment outcome into an existing record
	// and bumps its updated_at. An empty reference clears the column.
	UpdatePayment(ctx context.Context, id string, status domain.PaymentStatus, reference string) error
	// GetByID returns a campaign or ErrNotFound.
	GetByID(ctx context.Context, id string) (*domain.Campaign, error)
	// List returns campaigns matching the filter, newest first.
	List(ctx context.Context, filter CampaignFilter) ([]domain.Campaign, error)
	// Delete removes a campaign. Missing ids return ErrNotFound.
	Delete(ctx context.Context, id string) error
	// Stats aggregates counts and completed revenue across all campaigns.
	Stats(ctx context.Context) (CampaignStats, error)
}

// ApplicationRepository is the outbound persistence port for the
// lead-capture tables adjacent to the checkout flow.
type ApplicationRepository interface {
	InsertAcademyEnrollment(ctx context.Context, e *domain.AcademyEnrollment) error
	InsertModelApplication(ctx context.Context, a *domain.ModelApplication) error
	InsertBrandApplication(ctx context.Context, a *domain.BrandApplication) error
	InsertServiceInquiry(ctx context.Context, i *domain.ServiceInquiry) error

	ListAcademyEnrollments(ctx context.Context) ([]domain.AcademyEnrollment, error)
	ListModelApplications(ctx context.Context) ([]domain.ModelApplication, error)
	ListBrandApplications(ctx context.Context) ([]domain.BrandApplication, error)
	ListServiceInquiries(ctx context.Context) ([]domain.ServiceInquiry, error)
}

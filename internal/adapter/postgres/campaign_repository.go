package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"royale-campaigns/internal/core/domain"
	"royale-campaigns/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool.
// Writes touch a single row each, so plain statements are sufficient; no
// cross-record transactions are needed.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `id, full_name, brand_name, email, phone, about_product, product_link,
            uploaded_files, campaign_goals, advertisement_types, total_price,
            expected_leads, expected_sales, expected_engagement,
            payment_status, payment_reference, created_at, updated_at`

// Insert stores a new campaign under its pre-assigned id.
func (r *CampaignRepository) Insert(ctx context.Context, c *domain.Campaign) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO campaigns
        (id, full_name, brand_name, email, phone, about_product, product_link,
         uploaded_files, campaign_goals, advertisement_types, total_price,
         expected_leads, expected_sales, expected_engagement,
         payment_status, payment_reference, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,NULLIF($16,''),$17,$18)`,
		c.ID, c.FullName, c.BrandName, c.Email, c.Phone, c.AboutProduct, c.ProductLink,
		c.UploadedFiles, goalsToStrings(c.CampaignGoals), adTypesToStrings(c.AdvertisementTypes), c.TotalPrice,
		c.ExpectedResults.Leads, c.ExpectedResults.Sales, c.ExpectedResults.Engagement,
		string(c.PaymentStatus), c.PaymentReference, c.CreatedAt, c.UpdatedAt)
	return err
}

// UpdatePayment reconciles a payment outcome into an existing record. An
// empty reference clears the column.
func (r *CampaignRepository) UpdatePayment(ctx context.Context, id string, status domain.PaymentStatus, reference string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns
        SET payment_status = $2, payment_reference = NULLIF($3,''), updated_at = now()
        WHERE id = $1`, id, string(status), reference)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// GetByID returns a campaign or port.ErrNotFound.
func (r *CampaignRepository) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	c, err := scanCampaign(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, port.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

// List returns campaigns matching the filter, newest first.
func (r *CampaignRepository) List(ctx context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE 1=1`
	args := []interface{}{}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		query += fmt.Sprintf(" AND payment_status = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (full_name ILIKE $%d OR brand_name ILIKE $%d OR email ILIKE $%d)", n, n, n)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
}

// Delete removes a campaign. Missing ids return port.ErrNotFound.
func (r *CampaignRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// Stats aggregates counts per payment status and revenue over completed
// campaigns.
func (r *CampaignRepository) Stats(ctx context.Context) (port.CampaignStats, error) {
	var stats port.CampaignStats
	err := r.pool.QueryRow(ctx, `SELECT
            count(*),
            count(*) FILTER (WHERE payment_status = 'completed'),
            count(*) FILTER (WHERE payment_status = 'pending'),
            count(*) FILTER (WHERE payment_status = 'failed'),
            COALESCE(sum(total_price) FILTER (WHERE payment_status = 'completed'), 0)
        FROM campaigns`).Scan(
		&stats.Total, &stats.Completed, &stats.Pending, &stats.Failed, &stats.CompletedRevenue)
	if err != nil {
		return port.CampaignStats{}, err
	}
	return stats, nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanCampaign(row scannable) (*domain.Campaign, error) {
	var (
		c         domain.Campaign
		goals     []string
		adTypes   []string
		status    string
		reference *string
	)
	err := row.Scan(
		&c.ID, &c.FullName, &c.BrandName, &c.Email, &c.Phone, &c.AboutProduct, &c.ProductLink,
		&c.UploadedFiles, &goals, &adTypes, &c.TotalPrice,
		&c.ExpectedResults.Leads, &c.ExpectedResults.Sales, &c.ExpectedResults.Engagement,
		&status, &reference, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.CampaignGoals = goalsFromStrings(goals)
	c.AdvertisementTypes = adTypesFromStrings(adTypes)
	c.PaymentStatus = domain.PaymentStatus(status)
	if reference != nil {
		c.PaymentReference = *reference
	}
	return &c, nil
}

func goalsToStrings(goals []domain.CampaignGoal) []string {
	out := make([]string, len(goals))
	for i, g := range goals {
		out[i] = string(g)
	}
	return out
}

func goalsFromStrings(values []string) []domain.CampaignGoal {
	out := make([]domain.CampaignGoal, len(values))
	for i, v := range values {
		out[i] = domain.CampaignGoal(v)
	}
	return out
}

func adTypesToStrings(types []domain.AdvertisementType) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}

func adTypesFromStrings(values []string) []domain.AdvertisementType {
	out := make([]domain.AdvertisementType, len(values))
	for i, v := range values {
		out[i] = domain.AdvertisementType(v)
	}
	return out
}

var _ port.CampaignRepository = (*CampaignRepository)(nil)

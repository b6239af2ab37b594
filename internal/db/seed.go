package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"royale-campaigns/internal/core/domain"
	"royale-campaigns/internal/core/pricing"
)

// Seed inserts demo campaign records so the admin dashboard has data to
// show during local development. Prices and projections come from the
// default pricing table.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	engine := pricing.NewEngine(pricing.DefaultTable())

	demos := []struct {
		brand   string
		goals   []domain.CampaignGoal
		adTypes []domain.AdvertisementType
		status  domain.PaymentStatus
	}{
		{"Aurora Cosmetics", []domain.CampaignGoal{domain.GoalLeads, domain.GoalSales}, []domain.AdvertisementType{domain.AdContent}, domain.PaymentCompleted},
		{"Lagos Street Wear", []domain.CampaignGoal{domain.GoalEngagement}, []domain.AdvertisementType{domain.AdPlatform}, domain.PaymentCompleted},
		{"Kola Foods", []domain.CampaignGoal{domain.GoalSales}, nil, domain.PaymentPending},
		{"Zenith Fitness", []domain.CampaignGoal{domain.GoalLeads}, []domain.AdvertisementType{domain.AdContent, domain.AdPlatform}, domain.PaymentFailed},
	}

	for i, d := range demos {
		id := uuid.NewString()
		results := engine.CalculateExpectedResults(d.goals, d.adTypes)
		reference := ""
		if d.status == domain.PaymentCompleted {
			reference = "demo-ref-" + id[:8]
		}
		createdAt := time.Now().UTC().AddDate(0, 0, -i)
		_, err := pool.Exec(ctx, `INSERT INTO campaigns
            (id, full_name, brand_name, email, phone, about_product, product_link,
             uploaded_files, campaign_goals, advertisement_types, total_price,
             expected_leads, expected_sales, expected_engagement,
             payment_status, payment_reference, created_at, updated_at)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,NULLIF($16,''),$17,$17)
            ON CONFLICT DO NOTHING`,
			id,
			fmt.Sprintf("Demo Customer %d", i+1),
			d.brand,
			fmt.Sprintf("demo%d@example.com", i+1),
			"+234 800 000 0000",
			"Demo product seeded for local development",
			"https://example.com",
			[]string{},
			enumStrings(d.goals),
			adStrings(d.adTypes),
			engine.CalculatePrice(d.goals, d.adTypes),
			results.Leads, results.Sales, results.Engagement,
			string(d.status), reference, createdAt)
		if err != nil {
			return err
		}
	}
	return nil
}

func enumStrings(goals []domain.CampaignGoal) []string {
	out := make([]string, len(goals))
	for i, g := range goals {
		out[i] = string(g)
	}
	return out
}

func adStrings(types []domain.AdvertisementType) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}

package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"royale-campaigns/internal/core/domain"
	"royale-campaigns/internal/core/port"
)

// ApplicationRepository implements port.ApplicationRepository using
// pgxpool. Each lead kind has its own table; all inserts are append-only.
type ApplicationRepository struct {
	pool *pgxpool.Pool
}

// NewApplicationRepository returns a new repository instance.
func NewApplicationRepository(pool *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{pool: pool}
}

func (r *ApplicationRepository) InsertAcademyEnrollment(ctx context.Context, e *domain.AcademyEnrollment) error {
	return r.pool.QueryRow(ctx, `INSERT INTO academy_enrollments
        (name, email, phone, age, experience, goals, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id`,
		e.Name, e.Email, e.Phone, e.Age, e.Experience, e.Goals, e.CreatedAt).Scan(&e.ID)
}

func (r *ApplicationRepository) InsertModelApplication(ctx context.Context, a *domain.ModelApplication) error {
	return r.pool.QueryRow(ctx, `INSERT INTO model_applications
        (first_name, last_name, email, phone, age, location,
         height, weight, measurements, experience, portfolio, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12) RETURNING id`,
		a.FirstName, a.LastName, a.Email, a.Phone, a.Age, a.Location,
		a.Height, a.Weight, a.Measurements, a.Experience, a.Portfolio, a.CreatedAt).Scan(&a.ID)
}

func (r *ApplicationRepository) InsertBrandApplication(ctx context.Context, a *domain.BrandApplication) error {
	return r.pool.QueryRow(ctx, `INSERT INTO brand_applications
        (first_name, last_name, email, phone, age, location,
         company_name, industry, budget, goals, timeline, previous_campaigns, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13) RETURNING id`,
		a.FirstName, a.LastName, a.Email, a.Phone, a.Age, a.Location,
		a.CompanyName, a.Industry, a.Budget, a.Goals, a.Timeline, a.PreviousCampaigns, a.CreatedAt).Scan(&a.ID)
}

func (r *ApplicationRepository) InsertServiceInquiry(ctx context.Context, i *domain.ServiceInquiry) error {
	return r.pool.QueryRow(ctx, `INSERT INTO service_inquiries
        (name, email, phone, subject, message, created_at)
        VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`,
		i.Name, i.Email, i.Phone, i.Subject, i.Message, i.CreatedAt).Scan(&i.ID)
}

func (r *ApplicationRepository) ListAcademyEnrollments(ctx context.Context) ([]domain.AcademyEnrollment, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, email, phone, age, experience, goals, created_at
        FROM academy_enrollments ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AcademyEnrollment, error) {
		var e domain.AcademyEnrollment
		err := row.Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.Age, &e.Experience, &e.Goals, &e.CreatedAt)
		return e, err
	})
}

func (r *ApplicationRepository) ListModelApplications(ctx context.Context) ([]domain.ModelApplication, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, first_name, last_name, email, phone, age, location,
            height, weight, measurements, experience, portfolio, created_at
        FROM model_applications ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ModelApplication, error) {
		var a domain.ModelApplication
		err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Phone, &a.Age, &a.Location,
			&a.Height, &a.Weight, &a.Measurements, &a.Experience, &a.Portfolio, &a.CreatedAt)
		return a, err
	})
}

func (r *ApplicationRepository) ListBrandApplications(ctx context.Context) ([]domain.BrandApplication, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, first_name, last_name, email, phone, age, location,
            company_name, industry, budget, goals, timeline, previous_campaigns, created_at
        FROM brand_applications ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.BrandApplication, error) {
		var a domain.BrandApplication
		err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Phone, &a.Age, &a.Location,
			&a.CompanyName, &a.Industry, &a.Budget, &a.Goals, &a.Timeline, &a.PreviousCampaigns, &a.CreatedAt)
		return a, err
	})
}

func (r *ApplicationRepository) ListServiceInquiries(ctx context.Context) ([]domain.ServiceInquiry, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, email, phone, subject, message, created_at
        FROM service_inquiries ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ServiceInquiry, error) {
		var i domain.ServiceInquiry
		err := row.Scan(&i.ID, &i.Name, &i.Email, &i.Phone, &i.Subject, &i.Message, &i.CreatedAt)
		return i, err
	})
}

var _ port.ApplicationRepository = (*ApplicationRepository)(nil)

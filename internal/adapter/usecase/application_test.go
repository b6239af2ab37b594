package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"royale-campaigns/internal/core/domain"
)

// fakeApplicationRepo collects submitted forms in memory.
type fakeApplicationRepo struct {
	enrollments []domain.AcademyEnrollment
	models      []domain.ModelApplication
	brands      []domain.BrandApplication
	inquiries   []domain.ServiceInquiry
}

func (f *fakeApplicationRepo) InsertAcademyEnrollment(_ context.Context, e *domain.AcademyEnrollment) error {
	e.ID = int64(len(f.enrollments) + 1)
	f.enrollments = append(f.enrollments, *e)
	return nil
}

func (f *fakeApplicationRepo) InsertModelApplication(_ context.Context, m *domain.ModelApplication) error {
	m.ID = int64(len(f.models) + 1)
	f.models = append(f.models, *m)
	return nil
}

func (f *fakeApplicationRepo) InsertBrandApplication(_ context.Context, b *domain.BrandApplication) error {
	b.ID = int64(len(f.brands) + 1)
	f.brands = append(f.brands, *b)
	return nil
}

func (f *fakeApplicationRepo) InsertServiceInquiry(_ context.Context, i *domain.ServiceInquiry) error {
	i.ID = int64(len(f.inquiries) + 1)
	f.inquiries = append(f.inquiries, *i)
	return nil
}

func (f *fakeApplicationRepo) ListAcademyEnrollments(context.Context) ([]domain.AcademyEnrollment, error) {
	return f.enrollments, nil
}

func (f *fakeApplicationRepo) ListModelApplications(context.Context) ([]domain.ModelApplication, error) {
	return f.models, nil
}

func (f *fakeApplicationRepo) ListBrandApplications(context.Context) ([]domain.BrandApplication, error) {
	return f.brands, nil
}

func (f *fakeApplicationRepo) ListServiceInquiries(context.Context) ([]domain.ServiceInquiry, error) {
	return f.inquiries, nil
}

func TestSubmitAcademyEnrollment(t *testing.T) {
	repo := &fakeApplicationRepo{}
	apps := NewApplications(repo, testLogger())

	err := apps.SubmitAcademyEnrollment(context.Background(), domain.AcademyEnrollment{
		Name:  "Chidi Okeke",
		Email: "chidi@example.com",
		Goals: "learn influencer marketing",
	})
	require.NoError(t, err)
	require.Len(t, repo.enrollments, 1)
	assert.False(t, repo.enrollments[0].CreatedAt.IsZero())
}

func TestSubmitAcademyEnrollmentMissingEmail(t *testing.T) {
	repo := &fakeApplicationRepo{}
	apps := NewApplications(repo, testLogger())

	err := apps.SubmitAcademyEnrollment(context.Background(), domain.AcademyEnrollment{
		Name: "Chidi Okeke",
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, repo.enrollments, "nothing is stored on validation failure")
}

func TestSubmitModelApplication(t *testing.T) {
	repo := &fakeApplicationRepo{}
	apps := NewApplications(repo, testLogger())

	app := domain.ModelApplication{
		FirstName:  "Ngozi",
		LastName:   "Eze",
		Email:      "ngozi@example.com",
		Phone:      "+234 802 000 0000",
		Age:        "24",
		Location:   "Lagos",
		Experience: "2 years runway",
	}
	require.NoError(t, apps.SubmitModelApplication(context.Background(), app))
	require.Len(t, repo.models, 1)

	// whitespace-only fields count as missing
	app.Location = "   "
	err := apps.SubmitModelApplication(context.Background(), app)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Len(t, repo.models, 1)
}

func TestSubmitBrandApplicationRequiresCompanyFields(t *testing.T) {
	repo := &fakeApplicationRepo{}
	apps := NewApplications(repo, testLogger())

	err := apps.SubmitBrandApplication(context.Background(), domain.BrandApplication{
		FirstName: "Tunde",
		LastName:  "Bello",
		Email:     "tunde@brand.com",
	})
	assert.ErrorIs(t, err, ErrValidation)

	require.NoError(t, apps.SubmitBrandApplication(context.Background(), domain.BrandApplication{
		FirstName:   "Tunde",
		LastName:    "Bello",
		Email:       "tunde@brand.com",
		CompanyName: "Bello Beverages",
		Industry:    "FMCG",
		Budget:      "500k-1m",
		Goals:       "brand awareness",
	}))
	require.Len(t, repo.brands, 1)
	assert.Equal(t, int64(1), repo.brands[0].ID)
}

func TestSubmitServiceInquiry(t *testing.T) {
	repo := &fakeApplicationRepo{}
	apps := NewApplications(repo, testLogger())

	err := apps.SubmitServiceInquiry(context.Background(), domain.ServiceInquiry{
		Name:  "Amaka",
		Email: "amaka@example.com",
	})
	assert.ErrorIs(t, err, ErrValidation)

	require.NoError(t, apps.SubmitServiceInquiry(context.Background(), domain.ServiceInquiry{
		Name:    "Amaka",
		Email:   "amaka@example.com",
		Message: "Interested in a product launch campaign",
	}))
	require.Len(t, repo.inquiries, 1)
}

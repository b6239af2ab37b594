package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"royale-campaigns/internal/core/domain"
	"royale-campaigns/internal/core/port"
)

// ErrValidation wraps required-field violations on lead-form submissions.
// Nothing is persisted when validation fails.
var ErrValidation = errors.New("validation failed")

// Applications handles the lead-capture form submissions that share the
// record store with the checkout flow.
type Applications struct {
	repo   port.ApplicationRepository
	logger *slog.Logger
	now    func() time.Time
}

// NewApplications creates the lead-form usecase.
func NewApplications(repo port.ApplicationRepository, logger *slog.Logger) *Applications {
	return &Applications{repo: repo, logger: logger, now: time.Now}
}

// SubmitAcademyEnrollment validates and stores an academy enrollment.
func (a *Applications) SubmitAcademyEnrollment(ctx context.Context, e domain.AcademyEnrollment) error {
	if err := requireFields(map[string]string{
		"name":  e.Name,
		"email": e.Email,
	}); err != nil {
		return err
	}
	e.CreatedAt = a.now().UTC()
	if err := a.repo.InsertAcademyEnrollment(ctx, &e); err != nil {
		return err
	}
	a.logger.Info("academy enrollment received", slog.String("email", e.Email))
	return nil
}

// SubmitModelApplication validates and stores a model application.
func (a *Applications) SubmitModelApplication(ctx context.Context, m domain.ModelApplication) error {
	if err := requireFields(map[string]string{
		"firstName":  m.FirstName,
		"lastName":   m.LastName,
		"email":      m.Email,
		"phone":      m.Phone,
		"age":        m.Age,
		"location":   m.Location,
		"experience": m.Experience,
	}); err != nil {
		return err
	}
	m.CreatedAt = a.now().UTC()
	if err := a.repo.InsertModelApplication(ctx, &m); err != nil {
		return err
	}
	a.logger.Info("model application received", slog.String("email", m.Email))
	return nil
}

// SubmitBrandApplication validates and stores a brand partnership request.
func (a *Applications) SubmitBrandApplication(ctx context.Context, b domain.BrandApplication) error {
	if err := requireFields(map[string]string{
		"firstName":   b.FirstName,
		"lastName":    b.LastName,
		"email":       b.Email,
		"companyName": b.CompanyName,
		"industry":    b.Industry,
		"budget":      b.Budget,
		"goals":       b.Goals,
	}); err != nil {
		return err
	}
	b.CreatedAt = a.now().UTC()
	if err := a.repo.InsertBrandApplication(ctx, &b); err != nil {
		return err
	}
	a.logger.Info("brand application received", slog.String("company", b.CompanyName))
	return nil
}

// SubmitServiceInquiry validates and stores a contact-form message.
func (a *Applications) SubmitServiceInquiry(ctx context.Context, i domain.ServiceInquiry) error {
	if err := requireFields(map[string]string{
		"name":    i.Name,
		"email":   i.Email,
		"message": i.Message,
	}); err != nil {
		return err
	}
	i.CreatedAt = a.now().UTC()
	if err := a.repo.InsertServiceInquiry(ctx, &i); err != nil {
		return err
	}
	a.logger.Info("service inquiry received", slog.String("email", i.Email))
	return nil
}

func requireFields(fields map[string]string) error {
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s is required", ErrValidation, name)
		}
	}
	return nil
}

var _ port.ApplicationUseCase = (*Applications)(nil)

package companies

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/sarmini1/biztime/internal/shared"
)

// Service handles company business logic.
type Service struct {
	repo     Repository
	validate *validator.Validate
}

// NewService builds a Service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, validate: validator.New()}
}

// List returns all companies ordered by code ascending.
func (s *Service) List(ctx context.Context) ([]Company, error) {
	return s.repo.List(ctx)
}

// Get returns a company with the ascending IDs of its invoices. The two
// lookups run as independent statements: the not-found check on the
// company short-circuits before the invoice query, and a concurrent
// delete between the two is an accepted race.
func (s *Service) Get(ctx context.Context, code string) (CompanyDetail, error) {
	company, err := s.repo.Get(ctx, code)
	if err != nil {
		return CompanyDetail{}, err
	}
	ids, err := s.repo.InvoiceIDs(ctx, code)
	if err != nil {
		return CompanyDetail{}, err
	}
	return CompanyDetail{Company: company, Invoices: ids}, nil
}

// Create inserts a new company. Presence checks only; uniqueness is
// enforced by storage and surfaces as a conflict.
func (s *Service) Create(ctx context.Context, input CreateCompanyInput) (Company, error) {
	if err := s.validate.Struct(input); err != nil {
		return Company{}, shared.BadRequestf("code, name and description are required")
	}
	return s.repo.Create(ctx, Company{
		Code:        input.Code,
		Name:        input.Name,
		Description: input.Description,
	})
}

// Update changes name and description for the company at code. A code
// field in the body is rejected regardless of whether the path code
// exists.
func (s *Service) Update(ctx context.Context, code string, input UpdateCompanyInput) (Company, error) {
	if input.Code != nil {
		return Company{}, shared.BadRequestf("company code may not be changed")
	}
	if err := s.validate.Struct(input); err != nil {
		return Company{}, shared.BadRequestf("name and description are required")
	}
	return s.repo.Update(ctx, code, input.Name, input.Description)
}

// Delete removes the company at code.
func (s *Service) Delete(ctx context.Context, code string) error {
	return s.repo.Delete(ctx, code)
}

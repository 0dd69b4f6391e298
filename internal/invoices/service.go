package invoices

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/sarmini1/biztime/internal/shared"
)

// Service handles invoice business logic.
type Service struct {
	repo     Repository
	validate *validator.Validate
}

// NewService builds a Service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, validate: validator.New()}
}

// List returns all invoices ordered by comp_code ascending.
func (s *Service) List(ctx context.Context) ([]ListItem, error) {
	return s.repo.List(ctx)
}

// Get returns an invoice with its owning company merged in place of the
// raw comp_code. Two independent statements; the not-found check on the
// invoice short-circuits before the company lookup, and a concurrent
// delete between the two is an accepted race.
func (s *Service) Get(ctx context.Context, id int64) (InvoiceDetail, error) {
	inv, err := s.repo.Get(ctx, id)
	if err != nil {
		return InvoiceDetail{}, err
	}
	company, err := s.repo.GetCompany(ctx, inv.CompCode)
	if err != nil {
		return InvoiceDetail{}, err
	}
	return InvoiceDetail{
		ID:       inv.ID,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate,
		PaidDate: inv.PaidDate,
		Company:  company,
	}, nil
}

// Create inserts a new invoice. Presence checks only; a comp_code that
// references no company surfaces from storage as a client error.
func (s *Service) Create(ctx context.Context, input CreateInvoiceInput) (Invoice, error) {
	if err := s.validate.Struct(input); err != nil {
		return Invoice{}, shared.BadRequestf("comp_code and amt are required")
	}
	return s.repo.Create(ctx, input.CompCode, *input.Amt)
}

// Update changes the amount for the invoice at id. An id field in the
// body is rejected regardless of whether the path id exists.
func (s *Service) Update(ctx context.Context, id int64, input UpdateInvoiceInput) (Invoice, error) {
	if input.ID != nil {
		return Invoice{}, shared.BadRequestf("invoice id may not be changed")
	}
	if err := s.validate.Struct(input); err != nil {
		return Invoice{}, shared.BadRequestf("amt is required")
	}
	return s.repo.UpdateAmt(ctx, id, *input.Amt)
}

// Delete removes the invoice at id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

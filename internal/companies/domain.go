// Package companies exposes CRUD over the company resource.
package companies

// Company model. The code is client-supplied, unique and immutable
// after creation.
type Company struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CompanyDetail is the single-item response shape: the company plus the
// ascending IDs of its invoices. Response-only, never persisted.
type CompanyDetail struct {
	Company
	Invoices []int64 `json:"invoices"`
}

// CreateCompanyInput for creating companies.
type CreateCompanyInput struct {
	Code        string `json:"code" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// UpdateCompanyInput for updating name and description. Code is decoded
// as a pointer so its mere presence in the body can be rejected: clients
// may not rename a company through this path.
type UpdateCompanyInput struct {
	Code        *string `json:"code"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
}

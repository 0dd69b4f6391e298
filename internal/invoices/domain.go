// Package invoices exposes CRUD over the invoice resource.
package invoices

import (
	"time"

	"github.com/sarmini1/biztime/internal/companies"
)

// Invoice model. ID is storage-generated; AddDate is assigned at insert
// and immutable; PaidDate stays null unless a future write path sets it
// alongside Paid (the pairing is not enforced here).
type Invoice struct {
	ID       int64      `json:"id"`
	CompCode string     `json:"comp_code"`
	Amt      float64    `json:"amt"`
	Paid     bool       `json:"paid"`
	AddDate  time.Time  `json:"add_date"`
	PaidDate *time.Time `json:"paid_date"`
}

// ListItem is the projection returned by the list operation.
type ListItem struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}

// InvoiceDetail is the single-item response shape: the invoice fields
// with the raw comp_code replaced by the full owning company record.
type InvoiceDetail struct {
	ID       int64             `json:"id"`
	Amt      float64           `json:"amt"`
	Paid     bool              `json:"paid"`
	AddDate  time.Time         `json:"add_date"`
	PaidDate *time.Time        `json:"paid_date"`
	Company  companies.Company `json:"company"`
}

// CreateInvoiceInput for creating invoices. Amt is a pointer so that a
// missing amount is distinguishable from an explicit zero; no numeric
// range validation happens here beyond presence.
type CreateInvoiceInput struct {
	CompCode string   `json:"comp_code" validate:"required"`
	Amt      *float64 `json:"amt" validate:"required"`
}

// UpdateInvoiceInput for updating the amount. ID is decoded as a pointer
// so its mere presence in the body can be rejected.
type UpdateInvoiceInput struct {
	ID  *int64   `json:"id"`
	Amt *float64 `json:"amt" validate:"required"`
}

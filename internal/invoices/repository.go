package invoices

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sarmini1/biztime/internal/companies"
	"github.com/sarmini1/biztime/internal/shared"
)

// Repository defines data access for invoices.
type Repository interface {
	List(ctx context.Context) ([]ListItem, error)
	Get(ctx context.Context, id int64) (Invoice, error)
	GetCompany(ctx context.Context, code string) (companies.Company, error)
	Create(ctx context.Context, compCode string, amt float64) (Invoice, error)
	UpdateAmt(ctx context.Context, id int64, amt float64) (Invoice, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const invoiceColumns = `id, comp_code, amt, paid, add_date, paid_date`

func (r *repository) List(ctx context.Context) ([]ListItem, error) {
	const query = `
		SELECT id, comp_code
		FROM invoices
		ORDER BY comp_code`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := []ListItem{}
	for rows.Next() {
		var item ListItem
		if err := rows.Scan(&item.ID, &item.CompCode); err != nil {
			return nil, err
		}
		invoices = append(invoices, item)
	}
	return invoices, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Invoice, error) {
	const query = `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE id = $1`

	return r.scanInvoice(r.pool.QueryRow(ctx, query, id), id)
}

// GetCompany fetches the company owning an invoice. Issued as a second,
// independent statement after Get, mirroring the two-step join in the
// company detail lookup.
func (r *repository) GetCompany(ctx context.Context, code string) (companies.Company, error) {
	const query = `
		SELECT code, name, description
		FROM companies
		WHERE code = $1`

	var c companies.Company
	err := r.pool.QueryRow(ctx, query, code).Scan(&c.Code, &c.Name, &c.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return companies.Company{}, shared.NotFoundf("no matching company: %s", code)
	}
	if err != nil {
		return companies.Company{}, err
	}
	return c, nil
}

func (r *repository) Create(ctx context.Context, compCode string, amt float64) (Invoice, error) {
	const query = `
		INSERT INTO invoices (comp_code, amt)
		VALUES ($1, $2)
		RETURNING ` + invoiceColumns

	inv, err := r.scanInvoiceErr(r.pool.QueryRow(ctx, query, compCode, amt))
	if err != nil {
		return Invoice{}, shared.TranslateConstraint(err)
	}
	return inv, nil
}

func (r *repository) UpdateAmt(ctx context.Context, id int64, amt float64) (Invoice, error) {
	const query = `
		UPDATE invoices
		SET amt = $2
		WHERE id = $1
		RETURNING ` + invoiceColumns

	return r.scanInvoice(r.pool.QueryRow(ctx, query, id, amt), id)
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	const query = `
		DELETE FROM invoices
		WHERE id = $1
		RETURNING id`

	var deleted int64
	err := r.pool.QueryRow(ctx, query, id).Scan(&deleted)
	if errors.Is(err, pgx.ErrNoRows) {
		return shared.NotFoundf("no matching invoice: %d", id)
	}
	return err
}

func (r *repository) scanInvoice(row pgx.Row, id int64) (Invoice, error) {
	inv, err := r.scanInvoiceErr(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Invoice{}, shared.NotFoundf("no matching invoice: %d", id)
	}
	if err != nil {
		return Invoice{}, err
	}
	return inv, nil
}

func (r *repository) scanInvoiceErr(row pgx.Row) (Invoice, error) {
	var inv Invoice
	var addDate pgtype.Date
	var paidDate pgtype.Date

	err := row.Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &addDate, &paidDate)
	if err != nil {
		return Invoice{}, err
	}

	if addDate.Valid {
		inv.AddDate = addDate.Time
	}
	if paidDate.Valid {
		t := paidDate.Time
		inv.PaidDate = &t
	}
	return inv, nil
}

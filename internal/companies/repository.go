package companies

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sarmini1/biztime/internal/shared"
)

// Repository defines data access for companies.
type Repository interface {
	List(ctx context.Context) ([]Company, error)
	Get(ctx context.Context, code string) (Company, error)
	InvoiceIDs(ctx context.Context, code string) ([]int64, error)
	Create(ctx context.Context, company Company) (Company, error)
	Update(ctx context.Context, code, name, description string) (Company, error)
	Delete(ctx context.Context, code string) error
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) List(ctx context.Context) ([]Company, error) {
	const query = `
		SELECT code, name, description
		FROM companies
		ORDER BY code`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := []Company{}
	for rows.Next() {
		var c Company
		if err := rows.Scan(&c.Code, &c.Name, &c.Description); err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

func (r *repository) Get(ctx context.Context, code string) (Company, error) {
	const query = `
		SELECT code, name, description
		FROM companies
		WHERE code = $1`

	var c Company
	err := r.pool.QueryRow(ctx, query, code).Scan(&c.Code, &c.Name, &c.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return Company{}, shared.NotFoundf("no matching company: %s", code)
	}
	if err != nil {
		return Company{}, err
	}
	return c, nil
}

// InvoiceIDs returns the ascending invoice IDs belonging to a company.
// Runs as a separate statement from Get; no transaction wraps the pair.
func (r *repository) InvoiceIDs(ctx context.Context, code string) ([]int64, error) {
	const query = `
		SELECT id
		FROM invoices
		WHERE comp_code = $1
		ORDER BY id`

	rows, err := r.pool.Query(ctx, query, code)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *repository) Create(ctx context.Context, company Company) (Company, error) {
	const query = `
		INSERT INTO companies (code, name, description)
		VALUES ($1, $2, $3)
		RETURNING code, name, description`

	var c Company
	err := r.pool.QueryRow(ctx, query, company.Code, company.Name, company.Description).
		Scan(&c.Code, &c.Name, &c.Description)
	if err != nil {
		return Company{}, shared.TranslateConstraint(err)
	}
	return c, nil
}

func (r *repository) Update(ctx context.Context, code, name, description string) (Company, error) {
	const query = `
		UPDATE companies
		SET name = $1, description = $2
		WHERE code = $3
		RETURNING code, name, description`

	var c Company
	err := r.pool.QueryRow(ctx, query, name, description, code).
		Scan(&c.Code, &c.Name, &c.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return Company{}, shared.NotFoundf("no matching company: %s", code)
	}
	if err != nil {
		return Company{}, err
	}
	return c, nil
}

func (r *repository) Delete(ctx context.Context, code string) error {
	const query = `
		DELETE FROM companies
		WHERE code = $1
		RETURNING code`

	var deleted string
	err := r.pool.QueryRow(ctx, query, code).Scan(&deleted)
	if errors.Is(err, pgx.ErrNoRows) {
		return shared.NotFoundf("no matching company: %s", code)
	}
	return err
}

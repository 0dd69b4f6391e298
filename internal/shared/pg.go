package shared

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes surfaced by constraint violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// TranslateConstraint maps PostgreSQL constraint violations onto the
// error taxonomy: uniqueness clashes become conflicts, referential and
// check failures become client errors. Anything else passes through for
// the boundary to treat as infrastructure failure.
func TranslateConstraint(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return Conflictf("duplicate key: %s", pgErr.ConstraintName)
	case pgForeignKeyViolation:
		return BadRequestf("referenced row does not exist: %s", pgErr.ConstraintName)
	case pgCheckViolation:
		return BadRequestf("constraint violated: %s", pgErr.ConstraintName)
	default:
		return err
	}
}

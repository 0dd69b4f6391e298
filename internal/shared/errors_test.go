package shared

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestWrappersKeepSentinelAndMessage(t *testing.T) {
	err := NotFoundf("no matching company: %s", "apple")
	require.ErrorIs(t, err, ErrNotFound)
	require.Contains(t, err.Error(), "apple")

	err = BadRequestf("company code may not be changed")
	require.ErrorIs(t, err, ErrBadRequest)

	err = Conflictf("duplicate key: %s", "companies_pkey")
	require.ErrorIs(t, err, ErrConflict)
}

func TestTranslateConstraintUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "companies_pkey"}

	err := TranslateConstraint(pgErr)
	require.ErrorIs(t, err, ErrConflict)
	require.Contains(t, err.Error(), "companies_pkey")
}

func TestTranslateConstraintForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "invoices_comp_code_fkey"}

	err := TranslateConstraint(pgErr)
	require.ErrorIs(t, err, ErrBadRequest)
}

func TestTranslateConstraintCheckViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23514", ConstraintName: "invoices_amt_check"}

	err := TranslateConstraint(pgErr)
	require.ErrorIs(t, err, ErrBadRequest)
}

func TestTranslateConstraintPassesThroughOtherErrors(t *testing.T) {
	plain := errors.New("connection refused")
	require.Equal(t, plain, TranslateConstraint(plain))

	pgErr := &pgconn.PgError{Code: "57014"}
	require.Equal(t, error(pgErr), TranslateConstraint(pgErr))
}

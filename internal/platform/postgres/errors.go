package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/banquito/backoffice/internal/store"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes of the integrity violations the stores translate.
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
	notNullViolationCode    = "23502"
)

// invalidEntityViolations names the violations that mean the row itself was
// rejected, as opposed to colliding with another row.
var invalidEntityViolations = map[string]string{
	foreignKeyViolationCode: "foreign key violation",
	checkViolationCode:      "check constraint violation",
	notNullViolationCode:    "not null violation",
}

// MapError translates driver errors into the store sentinels. Errors it does
// not recognize are returned unchanged.
func MapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	if pgErr.Code == uniqueViolationCode {
		return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
	}
	if kind, ok := invalidEntityViolations[pgErr.Code]; ok {
		subject := pgErr.ConstraintName
		if pgErr.Code == notNullViolationCode {
			subject = pgErr.ColumnName
		}
		return fmt.Errorf("%w: %s (%s): %v", store.ErrInvalidEntity, kind, subject, err)
	}

	return err
}

// IsUniqueViolation checks if the given error is a PostgreSQL unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// MapUniqueViolation maps a unique violation on constraintName to specificError.
// Violations of other constraints go through MapError, and errors that are
// not unique violations are returned as MapError would map them.
func MapUniqueViolation(err error, constraintName string, specificError error) error {
	if !IsUniqueViolation(err) {
		return MapError(err)
	}

	var pgErr *pgconn.PgError
	if specificError == nil || !errors.As(err, &pgErr) || pgErr.ConstraintName != constraintName {
		return MapError(err)
	}
	return fmt.Errorf("%w: %v", specificError, err)
}

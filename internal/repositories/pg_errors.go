package repositories

import (
	"errors"
	"net/http"

	apperrors "gearguard/pkg/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateConstraintError maps postgres constraint violations onto 400-level
// application errors so uniqueness and bad references surface as validation
// failures instead of opaque 500s.
func translateConstraintError(err error, entity string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		return apperrors.NewHttpError(
			http.StatusBadRequest,
			entity+" violates a uniqueness constraint",
			err,
			map[string]interface{}{"constraint": pgErr.ConstraintName},
		)
	case pgForeignKeyViolation:
		return apperrors.NewHttpError(
			http.StatusBadRequest,
			entity+" references a record that does not exist",
			err,
			map[string]interface{}{"constraint": pgErr.ConstraintName},
		)
	}

	return err
}

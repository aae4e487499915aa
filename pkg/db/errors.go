package db

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const uniqueViolationCode = "23505"

// IsUniqueViolation reports whether the provided error is a Postgres unique
// violation. When constraint names are given, at least one must match.
func IsUniqueViolation(err error, constraintNames ...string) bool {
	if err == nil {
		return false
	}

	var constraint string
	var pgErr *pgconn.PgError
	var pqErr *pq.Error
	switch {
	case errors.As(err, &pgErr):
		if pgErr.Code != uniqueViolationCode {
			return false
		}
		constraint = pgErr.ConstraintName
	case errors.As(err, &pqErr):
		if string(pqErr.Code) != uniqueViolationCode {
			return false
		}
		constraint = pqErr.Constraint
	default:
		if !strings.Contains(err.Error(), "duplicate key value") {
			return false
		}
		constraint = err.Error()
	}

	if len(constraintNames) == 0 {
		return true
	}
	for _, name := range constraintNames {
		if strings.Contains(constraint, name) {
			return true
		}
	}
	return false
}

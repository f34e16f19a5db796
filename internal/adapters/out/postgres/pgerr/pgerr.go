// Package pgerr classifies constraint violations reported by gorm drivers.
//
// With gorm's TranslateError enabled the drivers return gorm.ErrDuplicatedKey and
// gorm.ErrForeignKeyViolated; without it postgres reports a *pgconn.PgError carrying the
// SQLSTATE code and the violated constraint name. Both forms are recognised.
package pgerr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// IsUniqueViolation reports whether err is a unique constraint violation. When constraint
// is not empty and the driver exposes the constraint name, the names must match.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode &&
			(constraint == "" || pgErr.ConstraintName == constraint)
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// IsForeignKeyViolation reports whether err is a foreign key violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == foreignKeyViolationCode
	}
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

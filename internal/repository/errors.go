package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html#23505:~:text=foreign_key_violation-,23505,-unique_violation
const PgErrUniqueViolation = "23505"

// 22P02 - например, не-uuid строка в колонке uuid.
const PgErrInvalidTextRepresentation = "22P02"

// 40001 и 40P01 - конфликт сериализуемой транзакции, повтор безопасен.
const (
	PgErrSerializationFailure = "40001"
	PgErrDeadlockDetected     = "40P01"
)

func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

func IsSerializationConflict(err error) bool {
	return IsPgErrorWithCode(err, PgErrSerializationFailure) || IsPgErrorWithCode(err, PgErrDeadlockDetected)
}

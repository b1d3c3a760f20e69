package postgres

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

const (
	pqForeignKeyViolation    = "23503"
	pqInvalidTextRepresent   = "22P02"
	pqCheckConstraintViolate = "23514"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func pqCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// isBadReference reports errors caused by a transfer pointing at a player or team that
// does not exist, or at an id that is not a uuid.
func isBadReference(err error) bool {
	switch pqCode(err) {
	case pqForeignKeyViolation, pqInvalidTextRepresent:
		return true
	default:
		return false
	}
}

func isCheckViolation(err error) bool {
	return pqCode(err) == pqCheckConstraintViolate
}

func nullString(v sql.NullString) string {
	if !v.Valid {
		return ""
	}
	return v.String
}

func nullInt(v sql.NullInt64) int {
	if !v.Valid {
		return 0
	}
	return int(v.Int64)
}

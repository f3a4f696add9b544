package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes this service cares about.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgExclusionViolation  = "23P01"
	pgRaiseException      = "P0001"
)

// conflictMarker is the agenda-clash marker raised by the stored procedures.
// Matching is case-insensitive and kept only as the RAISE message channel;
// the primary signal is the SQLSTATE itself.
const conflictMarker = "conflicto de agenda"

// IsUniqueViolation checks for a unique constraint violation whose constraint
// name contains constraintName.
func IsUniqueViolation(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation &&
			strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName))
	}
	return false
}

// IsForeignKeyViolation checks for a foreign key violation (a turno referencing
// a nonexistent paciente, profesional, servicio or sucursal).
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	return false
}

// IsConstraintViolation checks for any integrity constraint or data exception
// (SQLSTATE classes 22 and 23): bad input rather than a broken store.
func IsConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, "22") || strings.HasPrefix(pgErr.Code, "23")
	}
	return false
}

// IsScheduleConflict reports whether err is the stored procedures' scheduling
// clash signal: the exclusion constraint on overlapping turnos per
// professional, or a RAISE carrying the agenda-conflict marker. As a last
// resort the marker is also matched against the flat error text, for stores
// that surface procedure errors without SQLSTATE metadata.
func IsScheduleConflict(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgExclusionViolation {
			return true
		}
		if pgErr.Code == pgRaiseException &&
			strings.Contains(strings.ToLower(pgErr.Message), conflictMarker) {
			return true
		}
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), conflictMarker)
}

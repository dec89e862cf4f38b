package postgres

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/store"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// classifyError maps driver errors onto the store error kinds. Errors it does
// not recognize are returned unchanged.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505":
			return store.Unique(pqErr.Constraint, pqErr.Detail)
		case "23503":
			return store.ForeignKey(pqErr.Constraint, pqErr.Detail)
		case "23514":
			return store.Check(pqErr.Constraint, pqErr.Message)
		case "23502":
			return store.Check(pqErr.Column, pqErr.Message)
		case "40001", "40P01":
			return transient(err)
		}
		switch pqErr.Code.Class() {
		case "22":
			return store.Check(pqErr.Column, pqErr.Message)
		case "08", "53", "57":
			return transient(err)
		}
		return err
	}

	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return transient(err)
	}
	return err
}

func transient(err error) error {
	return fmt.Errorf("%w: %w", store.ErrTransient, err)
}

func nullString(value string) sql.NullString {
	value = strings.TrimSpace(value)
	return sql.NullString{String: value, Valid: value != ""}
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func int64SliceToAny(items []int64) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return out
}

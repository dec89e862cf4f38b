package store

import (
	"errors"
	"fmt"
)

var (
	ErrUniqueViolation     = errors.New("unique violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrCheckViolation      = errors.New("check violation")
	// ErrTransient marks connection or operational failures the caller may retry.
	ErrTransient = errors.New("transient storage failure")
)

// ConstraintError is a write rejected by a schema constraint.
type ConstraintError struct {
	Kind       error
	Constraint string
	Detail     string
}

func (e *ConstraintError) Error() string {
	msg := e.Kind.Error()
	if e.Constraint != "" {
		msg = fmt.Sprintf("%s on %s", msg, e.Constraint)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	return msg
}

func (e *ConstraintError) Unwrap() error {
	return e.Kind
}

func Unique(constraint, detail string) error {
	return &ConstraintError{Kind: ErrUniqueViolation, Constraint: constraint, Detail: detail}
}

func ForeignKey(constraint, detail string) error {
	return &ConstraintError{Kind: ErrForeignKeyViolation, Constraint: constraint, Detail: detail}
}

func Check(constraint, detail string) error {
	return &ConstraintError{Kind: ErrCheckViolation, Constraint: constraint, Detail: detail}
}

// ConstraintName returns the violated constraint carried by err, if any.
func ConstraintName(err error) string {
	var ce *ConstraintError
	if errors.As(err, &ce) {
		return ce.Constraint
	}
	return ""
}

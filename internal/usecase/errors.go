package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/store"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/tournamentimport"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrConflict              = errors.New("referential conflict")
	ErrImportConsistency     = errors.New("import consistency error")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

var (
	ErrSeasonNotFound         = fmt.Errorf("%w: season", ErrNotFound)
	ErrTournamentNotFound     = fmt.Errorf("%w: tournament", ErrNotFound)
	ErrTournamentTypeNotFound = fmt.Errorf("%w: tournament type", ErrNotFound)
	ErrPlayerNotFound         = fmt.Errorf("%w: player", ErrNotFound)
	ErrDeckNotFound           = fmt.Errorf("%w: deck", ErrNotFound)
	ErrMatchNotFound          = fmt.Errorf("%w: match", ErrNotFound)
	ErrGameNotFound           = fmt.Errorf("%w: game", ErrNotFound)
)

var (
	ErrTournamentTypeMismatch       = fmt.Errorf("%w: tournament type id and name refer to different types", ErrImportConsistency)
	ErrDefaultTournamentTypeMissing = fmt.Errorf("%w: default tournament type is missing", ErrImportConsistency)
	ErrUndefinedDeckReference       = fmt.Errorf("%w: undefined deck reference", ErrImportConsistency)
	ErrUnknownGameWinner            = fmt.Errorf("%w: unknown game winner", ErrImportConsistency)
	ErrUnresolvedReference          = fmt.Errorf("%w: unresolved reference", ErrImportConsistency)
)

// ValidationError reports every structural violation found in an import payload.
type ValidationError struct {
	Violations []tournamentimport.Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// storageFailure translates a storage-layer error into the usecase taxonomy.
// Foreign key violations mean a missing reference on writes and a blocked
// delete otherwise.
func storageFailure(op string, err error, deleting bool) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrTransient):
		return fmt.Errorf("%w: %s: %w", ErrDependencyUnavailable, op, err)
	case errors.Is(err, store.ErrUniqueViolation):
		return fmt.Errorf("%w: %s: %w", ErrConflict, op, err)
	case errors.Is(err, store.ErrForeignKeyViolation) && deleting:
		return fmt.Errorf("%w: %s: %w", ErrConflict, op, err)
	case errors.Is(err, store.ErrForeignKeyViolation), errors.Is(err, store.ErrCheckViolation):
		return fmt.Errorf("%w: %s: %w", ErrInvalidInput, op, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

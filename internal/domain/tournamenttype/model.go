package tournamenttype

import (
	"fmt"
	"strings"
)

// DefaultName is the tournament type used when an import names no type.
const DefaultName = "LGS Tournament"

// TournamentType weights standings points for every tournament hosted under it.
type TournamentType struct {
	ID          int64
	Name        string
	PointsWin   int
	PointsDraw  int
	Description string
}

func (t TournamentType) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("tournament type name is required")
	}
	if t.PointsWin < 0 {
		return fmt.Errorf("tournament type points_win must be >= 0")
	}
	if t.PointsDraw < 0 {
		return fmt.Errorf("tournament type points_draw must be >= 0")
	}

	return nil
}

// SameName reports whether two type names collide under case-insensitive uniqueness.
func SameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

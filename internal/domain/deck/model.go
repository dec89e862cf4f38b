package deck

import (
	"fmt"
	"strings"
	"time"
)

const (
	DefaultColorIdentity = "C"
	DefaultArchetypeType = "Other"
)

// Archetype is a named deck strategy, independent of any card list.
type Archetype struct {
	ID            int64
	Name          string
	ColorIdentity string
	ArchetypeType string
	Description   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (a Archetype) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("deck name is required")
	}
	if len(a.ColorIdentity) > 10 {
		return fmt.Errorf("deck color identity must be at most 10 characters")
	}

	return nil
}

// WithDefaults fills the optional descriptive fields left empty.
func (a Archetype) WithDefaults() Archetype {
	if strings.TrimSpace(a.ColorIdentity) == "" {
		a.ColorIdentity = DefaultColorIdentity
	}
	if strings.TrimSpace(a.ArchetypeType) == "" {
		a.ArchetypeType = DefaultArchetypeType
	}
	return a
}

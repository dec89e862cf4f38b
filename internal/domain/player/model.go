package player

import (
	"fmt"
	"strings"
	"time"
)

// Player is a person who reports match results. Name is the natural key used
// by import resolution.
type Player struct {
	ID               int64
	Name             string
	Email            string
	Active           bool
	RegistrationDate time.Time
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if email := strings.TrimSpace(p.Email); email != "" && !strings.Contains(email, "@") {
		return fmt.Errorf("player email is invalid")
	}

	return nil
}

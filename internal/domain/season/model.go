package season

import (
	"fmt"
	"strings"
	"time"
)

// Season groups tournaments played over a period of time.
type Season struct {
	ID          int64
	Name        string
	StartDate   time.Time
	EndDate     *time.Time
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (s Season) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("season name is required")
	}
	if s.StartDate.IsZero() {
		return fmt.Errorf("season start date is required")
	}
	if s.EndDate != nil && s.EndDate.Before(s.StartDate) {
		return fmt.Errorf("season end date must not be before start date")
	}

	return nil
}

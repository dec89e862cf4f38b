package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/season"
)

type seasonTableModel struct {
	ID          int64      `db:"id"`
	Name        string     `db:"name"`
	StartDate   time.Time  `db:"start_date"`
	EndDate     *time.Time `db:"end_date"`
	Description string     `db:"description"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

type seasonInsertModel struct {
	Name        string         `db:"name"`
	StartDate   time.Time      `db:"start_date"`
	EndDate     *time.Time     `db:"end_date"`
	Description sql.NullString `db:"description"`
}

func (m seasonTableModel) toDomain() season.Season {
	return season.Season{
		ID:          m.ID,
		Name:        m.Name,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

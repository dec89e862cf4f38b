package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/tournament"
)

type tournamentTableModel struct {
	ID               int64     `db:"id"`
	SeasonID         int64     `db:"season_id"`
	TournamentTypeID int64     `db:"tournament_type_id"`
	Name             string    `db:"name"`
	Date             time.Time `db:"tournament_date"`
	Location         string    `db:"location"`
	Format           string    `db:"format"`
	Description      string    `db:"description"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

type tournamentInsertModel struct {
	SeasonID         int64          `db:"season_id"`
	TournamentTypeID int64          `db:"tournament_type_id"`
	Name             string         `db:"name"`
	Date             time.Time      `db:"tournament_date"`
	Location         sql.NullString `db:"location"`
	Format           sql.NullString `db:"format"`
	Description      sql.NullString `db:"description"`
}

func (m tournamentTableModel) toDomain() tournament.Tournament {
	return tournament.Tournament{
		ID:               m.ID,
		SeasonID:         m.SeasonID,
		TournamentTypeID: m.TournamentTypeID,
		Name:             m.Name,
		Date:             m.Date,
		Location:         m.Location,
		Format:           m.Format,
		Description:      m.Description,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

package statistics

import "context"

// Repository is the read side of the match store. Only completed matches are
// returned, with game wins counted from WIN games.
type Repository interface {
	ListMatchRecords(ctx context.Context, filter Filter) ([]MatchRecord, error)
}

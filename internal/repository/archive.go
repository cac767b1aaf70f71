package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rocketscienceinc/marbles-backend/internal/entity"
)

// ArchivedGame - the durable record of a finished game; the live aggregate
// stays in redis until the session is deleted.
type ArchivedGame struct {
	ID         string    `json:"id"`
	Winner     int       `json:"winner"`
	Players    int       `json:"players"`
	Turns      int       `json:"turns"`
	FinishedAt time.Time `json:"finished_at"`
}

type ArchiveRepository interface {
	Save(ctx context.Context, game *entity.Game) error
	Recent(ctx context.Context, limit int) ([]ArchivedGame, error)
}

type dbArchive struct {
	conn *sql.DB
}

func NewArchiveRepository(conn *sql.DB) ArchiveRepository {
	return &dbArchive{
		conn: conn,
	}
}

func (that *dbArchive) Save(ctx context.Context, game *entity.Game) error {
	if game.Winner == nil {
		return fmt.Errorf("cannot archive game %s: no winner", game.ID)
	}

	query := `INSERT OR REPLACE INTO games_archive (id, winner, players, turns, finished_at)
	          VALUES (?, ?, ?, ?, ?)`

	_, err := that.conn.ExecContext(ctx, query, game.ID, *game.Winner, len(game.Players), game.TurnCount, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to archive game: %w", err)
	}

	return nil
}

func (that *dbArchive) Recent(ctx context.Context, limit int) ([]ArchivedGame, error) {
	query := `SELECT id, winner, players, turns, finished_at
	          FROM games_archive ORDER BY finished_at DESC LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query archive: %w", err)
	}
	defer rows.Close()

	var games []ArchivedGame
	for rows.Next() {
		var game ArchivedGame
		if err := rows.Scan(&game.ID, &game.Winner, &game.Players, &game.Turns, &game.FinishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan archived game: %w", err)
		}
		games = append(games, game)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read archive rows: %w", err)
	}

	return games, nil
}

package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// savedGame is the YAML document stored in the saves table.
type savedGame struct {
	Mode  string  `yaml:"mode"`
	Size  int     `yaml:"size"`
	Board [][]int `yaml:"board,flow"`
	Score int     `yaml:"score"`
	Moves int     `yaml:"moves"`
	Level int     `yaml:"level,omitempty"`
}

// SavedGame is a checkpoint loaded from the database.
type SavedGame struct {
	ID         string
	GameID     string
	Checkpoint core.Checkpoint
	UpdatedAt  time.Time
}

// SaveGame stores the checkpoint as the single saved game for gameID,
// replacing any previous one.
func (s *Store) SaveGame(gameID string, cp core.Checkpoint) error {
	if err := checkBoard(cp); err != nil {
		return fmt.Errorf("storage: cannot save game: %w", err)
	}

	data, err := yaml.Marshal(savedGame{
		Mode:  cp.Mode,
		Size:  cp.Size,
		Board: cp.Board,
		Score: cp.Score,
		Moves: cp.Moves,
		Level: cp.Level,
	})
	if err != nil {
		return fmt.Errorf("storage: cannot encode game: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO saves (game_id, id, data, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(game_id) DO UPDATE SET id = excluded.id, data = excluded.data, updated_at = excluded.updated_at`,
		gameID, uuid.NewString(), string(data), s.timestamp(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save game: %w", err)
	}
	return nil
}

// LoadGame returns the saved game for gameID, or nil if there is none.
func (s *Store) LoadGame(gameID string) (*SavedGame, error) {
	var (
		saved     SavedGame
		data      string
		updatedAt any
	)
	err := s.db.QueryRow(
		"SELECT id, game_id, data, updated_at FROM saves WHERE game_id = ?",
		gameID,
	).Scan(&saved.ID, &saved.GameID, &data, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load game: %w", err)
	}

	var doc savedGame
	if err := yaml.Unmarshal([]byte(data), &doc); err != nil {
		return nil, fmt.Errorf("storage: cannot decode saved game %s: %w", saved.ID, err)
	}
	saved.Checkpoint = core.Checkpoint{
		Mode:  doc.Mode,
		Size:  doc.Size,
		Board: doc.Board,
		Score: doc.Score,
		Moves: doc.Moves,
		Level: doc.Level,
	}
	if err := checkBoard(saved.Checkpoint); err != nil {
		return nil, fmt.Errorf("storage: saved game %s: %w", saved.ID, err)
	}
	saved.UpdatedAt = parseTime(updatedAt)

	return &saved, nil
}

// DeleteGame removes the saved game for gameID. Deleting a missing save is not an error.
func (s *Store) DeleteGame(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM saves WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot delete saved game: %w", err)
	}
	return nil
}

// checkBoard verifies the board matches the declared size.
func checkBoard(cp core.Checkpoint) error {
	if cp.Size < 1 || len(cp.Board) != cp.Size {
		return fmt.Errorf("board has %d rows, want %d", len(cp.Board), cp.Size)
	}
	for i, row := range cp.Board {
		if len(row) != cp.Size {
			return fmt.Errorf("board row %d has %d cells, want %d", i, len(row), cp.Size)
		}
	}
	return nil
}

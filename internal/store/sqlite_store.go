package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fakhrymubarak/sunny-weather/internal/config"
	"github.com/fakhrymubarak/sunny-weather/internal/model"

	_ "modernc.org/sqlite"
)

// SQLitePlaceStore keeps preferences in a local SQLite file, one row per namespace+key.
type SQLitePlaceStore struct {
	db        *sql.DB
	namespace string
}

// NewSQLitePlaceStore opens (or creates) the database at path and applies the schema.
func NewSQLitePlaceStore(path, namespace string) (*SQLitePlaceStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		config.GetLogger().Warnw("could not set WAL mode", "path", path, "error", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS preferences (
        namespace TEXT NOT NULL,
        key TEXT NOT NULL,
        value TEXT NOT NULL,
        PRIMARY KEY (namespace, key)
    );`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply sqlite schema: %w", err)
	}

	return &SQLitePlaceStore{db: db, namespace: namespace}, nil
}

func (s *SQLitePlaceStore) SavePlace(ctx context.Context, place model.Place) error {
	raw, err := encodePlace(place)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO preferences(namespace, key, value) VALUES(?,?,?)
         ON CONFLICT(namespace, key) DO UPDATE SET value = excluded.value`,
		s.namespace, PlaceKey, raw)
	return err
}

func (s *SQLitePlaceStore) GetSavedPlace(ctx context.Context) (*model.Place, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE namespace = ? AND key = ?`,
		s.namespace, PlaceKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlaceNotSaved
	}
	if err != nil {
		return nil, err
	}
	return decodePlace(raw)
}

func (s *SQLitePlaceStore) IsPlaceSaved(ctx context.Context) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM preferences WHERE namespace = ? AND key = ?`,
		s.namespace, PlaceKey).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SQLitePlaceStore) Close() error {
	return s.db.Close()
}

// Package store keeps the single "selected place" record in local key-value storage.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fakhrymubarak/sunny-weather/internal/config"
	"github.com/fakhrymubarak/sunny-weather/internal/model"
	"github.com/fakhrymubarak/sunny-weather/internal/redis"
)

// PlaceKey is the fixed key the place is saved under inside its namespace.
const PlaceKey = "place"

var ErrPlaceNotSaved = errors.New("no place saved")

// PlaceStore saves one place, overwriting whatever was saved before.
type PlaceStore interface {
	SavePlace(ctx context.Context, place model.Place) error
	GetSavedPlace(ctx context.Context) (*model.Place, error)
	IsPlaceSaved(ctx context.Context) (bool, error)
	Close() error
}

// NewPlaceStore returns the backend named by place_store.driver.
func NewPlaceStore() (PlaceStore, error) {
	namespace := config.GetPlaceStoreNamespace()
	switch driver := config.GetPlaceStoreDriver(); driver {
	case "", "redis":
		return NewRedisPlaceStore(redis.GetClient(), namespace), nil
	case "sqlite":
		s, err := NewSQLitePlaceStore(config.GetSQLitePath(), namespace)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown place store driver %q", driver)
	}
}

func encodePlace(place model.Place) (string, error) {
	b, err := json.Marshal(place)
	if err != nil {
		return "", fmt.Errorf("encode place: %w", err)
	}
	return string(b), nil
}

func decodePlace(raw string) (*model.Place, error) {
	var place model.Place
	if err := json.Unmarshal([]byte(raw), &place); err != nil {
		return nil, fmt.Errorf("decode saved place: %w", err)
	}
	return &place, nil
}

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fakhrymubarak/sunny-weather/internal/config"
	"github.com/fakhrymubarak/sunny-weather/internal/model"
)

var beijing = model.Place{
	Name:     "北京市",
	Address:  "中国北京市",
	Location: model.Location{Lng: "116.4073963", Lat: "39.9041999"},
}

var shanghai = model.Place{
	Name:     "上海市",
	Address:  "中国上海市",
	Location: model.Location{Lng: "121.4737", Lat: "31.2304"},
}

func newRedisStore(t *testing.T) (PlaceStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redisv9.NewClient(&redisv9.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisPlaceStore(client, "sunny_weather"), mr
}

func newSQLiteStore(t *testing.T) PlaceStore {
	t.Helper()
	s, err := NewSQLitePlaceStore(filepath.Join(t.TempDir(), "prefs.db"), "sunny_weather")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestPlaceStore_Backends(t *testing.T) {
	backends := map[string]func(t *testing.T) PlaceStore{
		"redis": func(t *testing.T) PlaceStore {
			s, _ := newRedisStore(t)
			return s
		},
		"sqlite": newSQLiteStore,
	}

	for name, newStore := range backends {
		t.Run(name+"/empty store", func(t *testing.T) {
			s := newStore(t)
			ctx := context.Background()

			saved, err := s.IsPlaceSaved(ctx)
			require.NoError(t, err)
			assert.False(t, saved)

			_, err = s.GetSavedPlace(ctx)
			assert.ErrorIs(t, err, ErrPlaceNotSaved)
		})

		t.Run(name+"/save then load round-trips", func(t *testing.T) {
			s := newStore(t)
			ctx := context.Background()

			require.NoError(t, s.SavePlace(ctx, beijing))

			saved, err := s.IsPlaceSaved(ctx)
			require.NoError(t, err)
			assert.True(t, saved)

			got, err := s.GetSavedPlace(ctx)
			require.NoError(t, err)
			assert.Equal(t, beijing, *got)
		})

		t.Run(name+"/save overwrites", func(t *testing.T) {
			s := newStore(t)
			ctx := context.Background()

			require.NoError(t, s.SavePlace(ctx, beijing))
			require.NoError(t, s.SavePlace(ctx, shanghai))

			got, err := s.GetSavedPlace(ctx)
			require.NoError(t, err)
			assert.Equal(t, shanghai, *got)
		})
	}
}

func TestRedisPlaceStore_Key(t *testing.T) {
	s, mr := newRedisStore(t)
	require.NoError(t, s.SavePlace(context.Background(), beijing))

	raw, err := mr.Get("sunny_weather:place")
	require.NoError(t, err)
	assert.Contains(t, raw, `"formatted_address":"中国北京市"`)
	assert.Equal(t, time.Duration(0), mr.TTL("sunny_weather:place"))
}

func TestRedisPlaceStore_CorruptRecord(t *testing.T) {
	s, mr := newRedisStore(t)
	require.NoError(t, mr.Set("sunny_weather:place", "not-json"))

	_, err := s.GetSavedPlace(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPlaceNotSaved)
}

func TestRedisPlaceStore_Unreachable(t *testing.T) {
	s, mr := newRedisStore(t)
	mr.Close()

	_, err := s.IsPlaceSaved(context.Background())
	assert.Error(t, err)
	_, err = s.GetSavedPlace(context.Background())
	assert.Error(t, err)
	assert.Error(t, s.SavePlace(context.Background(), beijing))
}

func TestSQLitePlaceStore_NamespacesAreIsolated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")
	a, err := NewSQLitePlaceStore(path, "a")
	require.NoError(t, err)
	defer a.Close()
	b, err := NewSQLitePlaceStore(path, "b")
	require.NoError(t, err)
	defer b.Close()

	ctx := context.Background()
	require.NoError(t, a.SavePlace(ctx, beijing))

	saved, err := b.IsPlaceSaved(ctx)
	require.NoError(t, err)
	assert.False(t, saved)
}

func TestSQLitePlaceStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")
	ctx := context.Background()

	first, err := NewSQLitePlaceStore(path, "sunny_weather")
	require.NoError(t, err)
	require.NoError(t, first.SavePlace(ctx, beijing))
	require.NoError(t, first.Close())

	second, err := NewSQLitePlaceStore(path, "sunny_weather")
	require.NoError(t, err)
	defer second.Close()
	got, err := second.GetSavedPlace(ctx)
	require.NoError(t, err)
	assert.Equal(t, beijing, *got)
}

func TestNewPlaceStore_Driver(t *testing.T) {
	old := config.GetPlaceStoreDriver()
	defer viper.Set("place_store.driver", old)

	viper.Set("place_store.driver", "redis")
	s, err := NewPlaceStore()
	require.NoError(t, err)
	assert.IsType(t, &redisPlaceStore{}, s)

	viper.Set("place_store.driver", "sqlite")
	oldPath := config.GetSQLitePath()
	defer viper.Set("place_store.sqlite_path", oldPath)
	viper.Set("place_store.sqlite_path", filepath.Join(t.TempDir(), "driver.db"))
	s, err = NewPlaceStore()
	require.NoError(t, err)
	assert.IsType(t, &SQLitePlaceStore{}, s)
	require.NoError(t, s.Close())

	viper.Set("place_store.driver", "bogus")
	_, err = NewPlaceStore()
	assert.Error(t, err)
}

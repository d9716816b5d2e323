package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/fakhrymubarak/sunny-weather/internal/caiyun"
	"github.com/fakhrymubarak/sunny-weather/internal/config"
	"github.com/fakhrymubarak/sunny-weather/internal/model"
	"github.com/fakhrymubarak/sunny-weather/internal/redis"
	"github.com/fakhrymubarak/sunny-weather/internal/store"
)

const statusOK = "ok"

var (
	ErrStatusNotOK = errors.New("caiyun status not ok")
	ErrPanicked    = errors.New("panicked")
)

// WeatherClient is the remote API the repository reads from.
type WeatherClient interface {
	SearchPlaces(ctx context.Context, query string) (*model.PlaceResponse, error)
	GetRealtimeWeather(ctx context.Context, lng, lat string) (*model.RealtimeResponse, error)
	GetDailyWeather(ctx context.Context, lng, lat string) (*model.DailyResponse, error)
}

// RedisClient is the subset of the Redis client used for the search cache.
type RedisClient interface {
	Get(ctx context.Context, key string) *redisv9.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redisv9.StatusCmd
}

// Repository is the single entry point for place and weather data.
type Repository interface {
	SearchPlaces(ctx context.Context, query string) ([]model.Place, error)
	RefreshWeather(ctx context.Context, lng, lat string) (*model.Weather, error)
	SavePlace(ctx context.Context, place model.Place) error
	GetSavedPlace(ctx context.Context) (*model.Place, error)
	IsPlaceSaved(ctx context.Context) (bool, error)
}

type repository struct {
	client      WeatherClient
	places      store.PlaceStore
	redisClient RedisClient
	cacheTTL    time.Duration
}

// NewRepository wires the remote client and the place store. A nil client falls back
// to caiyun.NewClient(); search results are cached in the shared Redis client.
func NewRepository(client WeatherClient, places store.PlaceStore) Repository {
	if client == nil {
		client = caiyun.NewClient()
	}
	return &repository{
		client:      client,
		places:      places,
		redisClient: redis.GetClient(),
		cacheTTL:    config.GetSearchCacheExpiration(),
	}
}

// SearchPlaces returns the places matching query, from cache when possible.
func (r *repository) SearchPlaces(ctx context.Context, query string) ([]model.Place, error) {
	if cached, err := r.getFromCache(ctx, query); err == nil {
		return cached, nil
	}

	resp, err := r.client.SearchPlaces(ctx, query)
	if err != nil {
		return nil, err
	}
	if resp.Status != statusOK {
		return nil, fmt.Errorf("%w: response status is %s", ErrStatusNotOK, resp.Status)
	}

	r.cachePlaces(ctx, query, resp.Places)
	return resp.Places, nil
}

// RefreshWeather fetches realtime and daily weather concurrently and joins them.
// Either request failing, or answering with a non-ok status, fails the whole refresh.
func (r *repository) RefreshWeather(ctx context.Context, lng, lat string) (*model.Weather, error) {
	var (
		realtime *model.RealtimeResponse
		daily    *model.DailyResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(recovered("realtime weather", func() error {
		resp, err := r.client.GetRealtimeWeather(gctx, lng, lat)
		if err != nil {
			return fmt.Errorf("realtime weather: %w", err)
		}
		realtime = resp
		return nil
	}))
	g.Go(recovered("daily weather", func() error {
		resp, err := r.client.GetDailyWeather(gctx, lng, lat)
		if err != nil {
			return fmt.Errorf("daily weather: %w", err)
		}
		daily = resp
		return nil
	}))
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if realtime.Status != statusOK || daily.Status != statusOK {
		return nil, fmt.Errorf("%w: realtime response status is %s daily response status is %s",
			ErrStatusNotOK, realtime.Status, daily.Status)
	}
	return &model.Weather{
		Realtime: realtime.Result.Realtime,
		Daily:    daily.Result.Daily,
	}, nil
}

// recovered turns a panic inside an errgroup goroutine into that goroutine's error;
// the caller's recover cannot see it.
func recovered(op string, fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if rec := recover(); rec != nil {
				err = fmt.Errorf("%s: %w: %v", op, ErrPanicked, rec)
			}
		}()
		return fn()
	}
}

func (r *repository) SavePlace(ctx context.Context, place model.Place) error {
	return r.places.SavePlace(ctx, place)
}

func (r *repository) GetSavedPlace(ctx context.Context) (*model.Place, error) {
	return r.places.GetSavedPlace(ctx)
}

func (r *repository) IsPlaceSaved(ctx context.Context) (bool, error) {
	return r.places.IsPlaceSaved(ctx)
}

func searchCacheKey(query string) string {
	return redis.Key("place_search", query)
}

// getFromCache retrieves search results from Redis
func (r *repository) getFromCache(ctx context.Context, query string) ([]model.Place, error) {
	val, err := r.redisClient.Get(ctx, searchCacheKey(query)).Result()
	if err != nil {
		return nil, err
	}

	var places []model.Place
	if err := json.Unmarshal([]byte(val), &places); err != nil {
		return nil, err
	}
	return places, nil
}

// cachePlaces stores search results in Redis; failures only cost a cache miss later.
func (r *repository) cachePlaces(ctx context.Context, query string, places []model.Place) {
	if b, err := json.Marshal(places); err == nil {
		_ = r.redisClient.Set(ctx, searchCacheKey(query), b, r.cacheTTL).Err()
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/fakhrymubarak/sunny-weather/internal/model"
	"github.com/fakhrymubarak/sunny-weather/internal/repository"
	"github.com/fakhrymubarak/sunny-weather/internal/store"
)

var ErrNoPlaceSelected = errors.New("no place selected")

// Target is the place a weather refresh is for.
type Target struct {
	Lng       string
	Lat       string
	PlaceName string
}

type WeatherServiceInterface interface {
	ResolveTarget(ctx context.Context, lng, lat, placeName string) (Target, error)
	RefreshWeather(ctx context.Context, lng, lat string) Result[*model.Weather]
	ShowWeather(placeName string, weather *model.Weather) model.WeatherView
}

type WeatherService struct {
	Repo repository.Repository
}

func NewWeatherService(repo repository.Repository) *WeatherService {
	return &WeatherService{Repo: repo}
}

// ResolveTarget prefers explicit coordinates and falls back to the saved place.
func (s *WeatherService) ResolveTarget(ctx context.Context, lng, lat, placeName string) (Target, error) {
	if lng != "" && lat != "" {
		return Target{Lng: lng, Lat: lat, PlaceName: placeName}, nil
	}
	place, err := s.Repo.GetSavedPlace(ctx)
	if errors.Is(err, store.ErrPlaceNotSaved) {
		return Target{}, ErrNoPlaceSelected
	}
	if err != nil {
		return Target{}, fmt.Errorf("load saved place: %w", err)
	}
	return Target{Lng: place.Location.Lng, Lat: place.Location.Lat, PlaceName: place.Name}, nil
}

func (s *WeatherService) RefreshWeather(ctx context.Context, lng, lat string) Result[*model.Weather] {
	return fire("refresh weather", func() (*model.Weather, error) {
		return s.Repo.RefreshWeather(ctx, lng, lat)
	})
}

// ShowWeather renders weather for display. Only today's life-index entries are kept.
func (s *WeatherService) ShowWeather(placeName string, weather *model.Weather) model.WeatherView {
	realtime := weather.Realtime
	daily := weather.Daily
	currentSky := model.GetSky(realtime.Skycon)

	view := model.WeatherView{
		PlaceName:   placeName,
		CurrentTemp: fmt.Sprintf("%d ℃", truncate(realtime.Temperature)),
		CurrentSky:  currentSky.Info,
		CurrentAQI:  fmt.Sprintf("空气数据 %d", truncate(realtime.AirQuality.AQI.Chn)),
		Background:  currentSky.Background,
		Forecast:    make([]model.ForecastItem, 0, len(daily.Skycon)),
	}

	for i, skycon := range daily.Skycon {
		sky := model.GetSky(skycon.Value)
		item := model.ForecastItem{
			SkyIcon: sky.Icon,
			SkyInfo: sky.Info,
		}
		if !skycon.Date.IsZero() {
			item.Date = skycon.Date.Format("2006-01-02")
		}
		if i < len(daily.Temperature) {
			temp := daily.Temperature[i]
			item.Temperature = fmt.Sprintf("%d ~ %d ℃", truncate(temp.Min), truncate(temp.Max))
		}
		view.Forecast = append(view.Forecast, item)
	}

	lifeIndex := daily.LifeIndex
	view.LifeIndex = model.LifeIndexView{
		ColdRisk:    firstDesc(lifeIndex.ColdRisk),
		Dressing:    firstDesc(lifeIndex.Dressing),
		Ultraviolet: firstDesc(lifeIndex.Ultraviolet),
		CarWashing:  firstDesc(lifeIndex.CarWashing),
	}
	return view
}

// truncate drops the fraction toward zero, matching a float-to-int conversion.
func truncate(f float64) int {
	return int(math.Trunc(f))
}

func firstDesc(entries []model.LifeDescription) string {
	if len(entries) == 0 {
		return ""
	}
	return entries[0].Desc
}

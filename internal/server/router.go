package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fakhrymubarak/sunny-weather/internal/handler"
	"github.com/fakhrymubarak/sunny-weather/internal/middleware"
	"github.com/fakhrymubarak/sunny-weather/internal/repository"
	"github.com/fakhrymubarak/sunny-weather/internal/service"
)

// NewRouter wires every route on top of repo.
func NewRouter(repo repository.Repository) http.Handler {
	placeService := service.NewPlaceService(repo)
	weatherService := service.NewWeatherService(repo)
	places := handler.NewPlaceHandler(placeService, weatherService)
	weather := handler.NewWeatherHandler(weatherService)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)

	r.Get("/healthz", places.HandleHealth)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimitMiddleware)
		r.Get("/places", places.HandleSearchPlaces)
		r.Get("/weather", weather.HandleWeather)
	})

	r.Route("/place", func(r chi.Router) {
		r.Get("/", places.HandleGetPlace)
		r.Put("/", places.HandleSavePlace)
		r.Post("/select", places.HandleSelectPlace)
	})

	return r
}

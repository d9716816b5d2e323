package handler

import (
	"errors"
	"net/http"

	"github.com/fakhrymubarak/sunny-weather/internal/config"
	"github.com/fakhrymubarak/sunny-weather/internal/model"
	"github.com/fakhrymubarak/sunny-weather/internal/service"
)

// Query parameters carried from the place list to the weather screen.
const (
	ParamLng       = "location_lng"
	ParamLat       = "location_lat"
	ParamPlaceName = "place_name"
)

type WeatherHandler struct {
	WeatherService service.WeatherServiceInterface
}

func NewWeatherHandler(svc service.WeatherServiceInterface) *WeatherHandler {
	return &WeatherHandler{WeatherService: svc}
}

// HandleWeather serves GET /weather. Without coordinates it falls back to the saved place.
func (h *WeatherHandler) HandleWeather(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	q := r.URL.Query()
	target, err := h.WeatherService.ResolveTarget(r.Context(), q.Get(ParamLng), q.Get(ParamLat), q.Get(ParamPlaceName))
	if errors.Is(err, service.ErrNoPlaceSelected) {
		writeError(w, http.StatusBadRequest, MsgNoPlaceSelected)
		return
	}
	if err != nil {
		config.GetLogger().Errorw("Resolving weather target failed", "error", err)
		writeError(w, http.StatusInternalServerError, MsgLoadPlaceFailed)
		return
	}

	writeWeather(w, r, h.WeatherService, target)
}

func writeWeather(w http.ResponseWriter, r *http.Request, svc service.WeatherServiceInterface, target service.Target) {
	result := svc.RefreshWeather(r.Context(), target.Lng, target.Lat)
	weather, ok := result.GetOrNil()
	if !ok {
		config.GetLogger().Errorw("Weather refresh failed",
			"lng", target.Lng, "lat", target.Lat, "error", result.ExceptionOrNil())
		writeError(w, http.StatusInternalServerError, MsgWeatherFailed)
		return
	}

	writeJSONResponse(w, http.StatusOK, model.NewDataResponse(svc.ShowWeather(target.PlaceName, weather)))
}

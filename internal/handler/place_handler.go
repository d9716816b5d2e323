package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fakhrymubarak/sunny-weather/internal/config"
	"github.com/fakhrymubarak/sunny-weather/internal/model"
	"github.com/fakhrymubarak/sunny-weather/internal/service"
	"github.com/fakhrymubarak/sunny-weather/internal/store"
)

type PlaceHandler struct {
	PlaceService   service.PlaceServiceInterface
	WeatherService service.WeatherServiceInterface
}

func NewPlaceHandler(places service.PlaceServiceInterface, weather service.WeatherServiceInterface) *PlaceHandler {
	return &PlaceHandler{PlaceService: places, WeatherService: weather}
}

// HandleSearchPlaces serves GET /places?query=.
func (h *PlaceHandler) HandleSearchPlaces(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	query := r.URL.Query().Get("query")
	result := h.PlaceService.SearchPlaces(r.Context(), query)
	places, ok := result.GetOrNil()
	if !ok {
		config.GetLogger().Errorw("Place search failed", "query", query, "error", result.ExceptionOrNil())
		writeError(w, http.StatusInternalServerError, MsgNoPlacesFound)
		return
	}

	writeJSONResponse(w, http.StatusOK, model.NewDataResponse(places))
}

// HandleGetPlace serves GET /place.
func (h *PlaceHandler) HandleGetPlace(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	place, err := h.PlaceService.GetSavedPlace(r.Context())
	if errors.Is(err, store.ErrPlaceNotSaved) {
		writeError(w, http.StatusNotFound, MsgNoPlaceSaved)
		return
	}
	if err != nil {
		config.GetLogger().Errorw("Loading saved place failed", "error", err)
		writeError(w, http.StatusInternalServerError, MsgLoadPlaceFailed)
		return
	}

	writeJSONResponse(w, http.StatusOK, model.NewDataResponse(place))
}

// HandleSavePlace serves PUT /place. Each save replaces the previous place.
func (h *PlaceHandler) HandleSavePlace(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPut) {
		return
	}

	place, ok := decodePlace(w, r)
	if !ok {
		return
	}
	if err := h.PlaceService.SavePlace(r.Context(), place); err != nil {
		config.GetLogger().Errorw("Saving place failed", "place", place.Name, "error", err)
		writeError(w, http.StatusInternalServerError, MsgSavePlaceFailed)
		return
	}

	writeJSONResponse(w, http.StatusOK, model.NewDataResponse(place))
}

// HandleSelectPlace serves POST /place/select: it saves the chosen place and
// answers with that place's weather.
func (h *PlaceHandler) HandleSelectPlace(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	place, ok := decodePlace(w, r)
	if !ok {
		return
	}
	if err := h.PlaceService.SavePlace(r.Context(), place); err != nil {
		config.GetLogger().Errorw("Saving place failed", "place", place.Name, "error", err)
		writeError(w, http.StatusInternalServerError, MsgSavePlaceFailed)
		return
	}

	target := service.Target{Lng: place.Location.Lng, Lat: place.Location.Lat, PlaceName: place.Name}
	writeWeather(w, r, h.WeatherService, target)
}

const maxPlaceBodyBytes = 64 << 10

func decodePlace(w http.ResponseWriter, r *http.Request) (model.Place, bool) {
	var place model.Place
	r.Body = http.MaxBytesReader(w, r.Body, maxPlaceBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&place); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, MsgPlaceTooLarge)
			return place, false
		}
		writeError(w, http.StatusBadRequest, MsgInvalidPlace)
		return place, false
	}
	if place.Name == "" || place.Location.Lng == "" || place.Location.Lat == "" {
		writeError(w, http.StatusBadRequest, MsgInvalidPlace)
		return place, false
	}
	return place, true
}

// HandleHealth serves GET /healthz; it is healthy while the place store answers.
func (h *PlaceHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if _, err := h.PlaceService.IsPlaceSaved(r.Context()); err != nil {
		config.GetLogger().Errorw("Place store unavailable", "error", err)
		writeJSONResponse(w, http.StatusServiceUnavailable, map[string]any{"status": "unavailable"})
		return
	}
	writeJSONResponse(w, http.StatusOK, map[string]any{"status": "ok"})
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/fakhrymubarak/sunny-weather/internal/config"
	"github.com/fakhrymubarak/sunny-weather/internal/model"
)

// User-facing failure messages. The underlying error is only logged.
const (
	MsgNoPlacesFound    = "No places found"
	MsgWeatherFailed    = "Unable to fetch weather information"
	MsgNoPlaceSaved     = "No place saved"
	MsgNoPlaceSelected  = "No place selected: pass location_lng and location_lat or save a place first"
	MsgPlaceTooLarge    = "Place body too large"
	MsgInvalidPlace     = "Invalid place: name, location.lng and location.lat are required"
	MsgSavePlaceFailed  = "Failed to save place"
	MsgLoadPlaceFailed  = "Failed to load saved place"
	MsgMethodNotAllowed = "Method not allowed"
)

func writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		config.GetLogger().Errorw("could not encode json", "error", err)
	}
}

func writeError(w http.ResponseWriter, statusCode int, errMsg string) {
	writeJSONResponse(w, statusCode, model.NewErrorResponse(errMsg, "Error"))
}

// allowMethod writes a 405 and returns false unless r uses method.
func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
	return false
}

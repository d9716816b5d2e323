package model

import (
	"encoding/json"
	"strings"
)

// PlaceResponse mirrors the Caiyun place search payload.
type PlaceResponse struct {
	Status string  `json:"status"`
	Query  string  `json:"query,omitempty"`
	Places []Place `json:"places"`
}

// Place is a named location. It is also the record kept by the place store.
type Place struct {
	Name     string   `json:"name"`
	Location Location `json:"location"`
	Address  string   `json:"formatted_address"`
}

// Location keeps coordinates as text, the same form they are passed around in.
type Location struct {
	Lng string `json:"lng"`
	Lat string `json:"lat"`
}

// UnmarshalJSON accepts lng/lat either as JSON numbers or as strings.
func (l *Location) UnmarshalJSON(data []byte) error {
	var raw struct {
		Lng json.RawMessage `json:"lng"`
		Lat json.RawMessage `json:"lat"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	lng, err := coordinateText(raw.Lng)
	if err != nil {
		return err
	}
	lat, err := coordinateText(raw.Lat)
	if err != nil {
		return err
	}
	l.Lng, l.Lat = lng, lat
	return nil
}

func coordinateText(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	if strings.HasPrefix(string(raw), `"`) {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}

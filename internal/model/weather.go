package model

import (
	"encoding/json"
	"time"
)

// RealtimeResponse is the trimmed realtime.json payload.
type RealtimeResponse struct {
	Status string `json:"status"`
	Result struct {
		Realtime Realtime `json:"realtime"`
	} `json:"result"`
}

type Realtime struct {
	Skycon      string     `json:"skycon"`
	Temperature float64    `json:"temperature"`
	AirQuality  AirQuality `json:"air_quality"`
}

type AirQuality struct {
	AQI AQI `json:"aqi"`
}

type AQI struct {
	Chn float64 `json:"chn"`
}

// DailyResponse is the trimmed daily.json payload.
type DailyResponse struct {
	Status string `json:"status"`
	Result struct {
		Daily Daily `json:"daily"`
	} `json:"result"`
}

type Daily struct {
	Temperature []Temperature `json:"temperature"`
	Skycon      []Skycon      `json:"skycon"`
	LifeIndex   LifeIndex     `json:"life_index"`
}

type Temperature struct {
	Max float64 `json:"max"`
	Min float64 `json:"min"`
}

type Skycon struct {
	Value string       `json:"value"`
	Date  ForecastDate `json:"date"`
}

type LifeIndex struct {
	ColdRisk    []LifeDescription `json:"coldRisk"`
	CarWashing  []LifeDescription `json:"carWashing"`
	Ultraviolet []LifeDescription `json:"ultraviolet"`
	Dressing    []LifeDescription `json:"dressing"`
}

type LifeDescription struct {
	Desc string `json:"desc"`
}

// Weather joins one realtime snapshot with its daily forecast.
type Weather struct {
	Realtime Realtime `json:"realtime"`
	Daily    Daily    `json:"daily"`
}

// ForecastDate decodes Caiyun dates, which omit seconds ("2019-10-20T00:00+08:00").
type ForecastDate struct {
	time.Time
}

var forecastDateLayouts = []string{
	"2006-01-02T15:04Z07:00",
	time.RFC3339,
	"2006-01-02",
}

func (d *ForecastDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	var lastErr error
	for _, layout := range forecastDateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			d.Time = t
			return nil
		}
		lastErr = err
	}
	return lastErr
}

func (d ForecastDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(d.Format("2006-01-02T15:04Z07:00"))
}

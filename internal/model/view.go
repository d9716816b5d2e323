package model

// WeatherView is the display-ready rendering of a Weather for one place.
type WeatherView struct {
	PlaceName   string         `json:"place_name"`
	CurrentTemp string         `json:"current_temp"`
	CurrentSky  string         `json:"current_sky"`
	CurrentAQI  string         `json:"current_aqi"`
	Background  string         `json:"background"`
	Forecast    []ForecastItem `json:"forecast"`
	LifeIndex   LifeIndexView  `json:"life_index"`
}

type ForecastItem struct {
	Date        string `json:"date"`
	SkyIcon     string `json:"sky_icon"`
	SkyInfo     string `json:"sky_info"`
	Temperature string `json:"temperature"`
}

// LifeIndexView holds today's advisories only.
type LifeIndexView struct {
	ColdRisk    string `json:"cold_risk"`
	Dressing    string `json:"dressing"`
	Ultraviolet string `json:"ultraviolet"`
	CarWashing  string `json:"car_washing"`
}

package model

// Sky is the display form of a Caiyun skycon code.
type Sky struct {
	Info       string `json:"info"`
	Icon       string `json:"icon"`
	Background string `json:"background"`
}

var sky = map[string]Sky{
	"CLEAR_DAY":           {Info: "晴", Icon: "ic_clear_day", Background: "bg_clear_day"},
	"CLEAR_NIGHT":         {Info: "晴", Icon: "ic_clear_night", Background: "bg_clear_night"},
	"PARTLY_CLOUDY_DAY":   {Info: "多云", Icon: "ic_partly_cloud_day", Background: "bg_partly_cloudy_day"},
	"PARTLY_CLOUDY_NIGHT": {Info: "多云", Icon: "ic_partly_cloud_night", Background: "bg_partly_cloudy_night"},
	"CLOUDY":              {Info: "阴", Icon: "ic_cloudy", Background: "bg_cloudy"},
	"WIND":                {Info: "大风", Icon: "ic_cloudy", Background: "bg_wind"},
	"LIGHT_RAIN":          {Info: "小雨", Icon: "ic_light_rain", Background: "bg_rain"},
	"MODERATE_RAIN":       {Info: "中雨", Icon: "ic_moderate_rain", Background: "bg_rain"},
	"HEAVY_RAIN":          {Info: "大雨", Icon: "ic_heavy_rain", Background: "bg_rain"},
	"STORM":               {Info: "暴雨", Icon: "ic_storm", Background: "bg_rain"},
	"THUNDER_SHOWER":      {Info: "雷阵雨", Icon: "ic_thunder_shower", Background: "bg_rain"},
	"SLEET":               {Info: "雨夹雪", Icon: "ic_sleet", Background: "bg_rain"},
	"LIGHT_SNOW":          {Info: "小雪", Icon: "ic_light_snow", Background: "bg_snow"},
	"MODERATE_SNOW":       {Info: "中雪", Icon: "ic_moderate_snow", Background: "bg_snow"},
	"HEAVY_SNOW":          {Info: "大雪", Icon: "ic_heavy_snow", Background: "bg_snow"},
	"SNOWSTORM":           {Info: "暴雪", Icon: "ic_heavy_snow", Background: "bg_snow"},
	"HAIL":                {Info: "冰雹", Icon: "ic_hail", Background: "bg_snow"},
	"LIGHT_HAZE":          {Info: "轻度雾霾", Icon: "ic_light_haze", Background: "bg_fog"},
	"MODERATE_HAZE":       {Info: "中度雾霾", Icon: "ic_moderate_haze", Background: "bg_fog"},
	"HEAVY_HAZE":          {Info: "重度雾霾", Icon: "ic_heavy_haze", Background: "bg_fog"},
	"FOG":                 {Info: "雾", Icon: "ic_fog", Background: "bg_fog"},
	"DUST":                {Info: "浮尘", Icon: "ic_fog", Background: "bg_fog"},
}

// GetSky maps a skycon code to its display form. Unknown codes render as CLEAR_DAY.
func GetSky(skycon string) Sky {
	if s, ok := sky[skycon]; ok {
		return s
	}
	return sky["CLEAR_DAY"]
}

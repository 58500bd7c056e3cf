package model

// 天气类别
const (
	WeatherRainy   = "rainy"
	WeatherStormy  = "stormy"
	WeatherSunny   = "sunny"
	WeatherClear   = "clear"
	WeatherCloudy  = "cloudy"
	WeatherUnknown = "unknown"
)

// WeatherReport 粗粒度天气结果
// TempF 为空表示温度未知，与 0 度区分开
// swagger:model
type WeatherReport struct {
	Condition string   `json:"condition"`
	TempF     *float64 `json:"temperature_f"`
}

// UnknownWeather 查询失败时的占位结果
func UnknownWeather() WeatherReport {
	return WeatherReport{Condition: WeatherUnknown}
}

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"solo_edu_backend/internal/config"
	"solo_edu_backend/internal/model"
)

// OpenWeatherClient 当前天气查询客户端，华氏温度
type OpenWeatherClient struct {
	config config.WeatherConfig
	http   *http.Client
}

func NewOpenWeatherClient(cfg config.WeatherConfig) *OpenWeatherClient {
	return &OpenWeatherClient{
		config: cfg,
		http:   &http.Client{Timeout: cfg.RequestTimeout},
	}
}

type openWeatherResponse struct {
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

// Current 查询坐标处的当前天气，失败由调用方降级为 unknown
func (c *OpenWeatherClient) Current(ctx context.Context, coord model.Coordinate) (model.WeatherReport, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(coord.Lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(coord.Lng, 'f', -1, 64))
	params.Set("appid", c.config.APIKey)
	params.Set("units", "imperial")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return model.UnknownWeather(), err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return model.UnknownWeather(), err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return model.UnknownWeather(), fmt.Errorf("weather API error (status %d): %s", resp.StatusCode, string(body))
	}

	var parsed openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return model.UnknownWeather(), err
	}
	if len(parsed.Weather) == 0 {
		return model.UnknownWeather(), fmt.Errorf("weather API returned no condition")
	}

	temp := parsed.Main.Temp
	return model.WeatherReport{
		Condition: mapCondition(parsed.Weather[0].Main),
		TempF:     &temp,
	}, nil
}

// mapCondition 把供应商的天气主类目折叠为粗粒度类别
func mapCondition(main string) string {
	switch m := strings.ToLower(main); {
	case strings.Contains(m, "thunderstorm"):
		return model.WeatherStormy
	case strings.Contains(m, "rain"), strings.Contains(m, "drizzle"):
		return model.WeatherRainy
	case strings.Contains(m, "clear"):
		return model.WeatherSunny
	case strings.Contains(m, "cloud"):
		return model.WeatherCloudy
	default:
		return m
	}
}

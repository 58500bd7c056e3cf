package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"solo_edu_backend/internal/config"
	"solo_edu_backend/internal/model"
)

// OpenCageClient OpenCage 正/逆地理编码客户端
type OpenCageClient struct {
	config config.GeocodingConfig
	http   *http.Client
}

func NewOpenCageClient(cfg config.GeocodingConfig) *OpenCageClient {
	return &OpenCageClient{
		config: cfg,
		http:   &http.Client{Timeout: cfg.RequestTimeout},
	}
}

type openCageResponse struct {
	Results []struct {
		Formatted string `json:"formatted"`
		Geometry  struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"geometry"`
		Annotations struct {
			Timezone struct {
				Name string `json:"name"`
			} `json:"timezone"`
		} `json:"annotations"`
	} `json:"results"`
	Status struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"status"`
}

// Geocode 把自由文本解析为坐标、格式化地址和时区标注
func (c *OpenCageClient) Geocode(ctx context.Context, query string) ([]model.GeocodeResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("key", c.config.APIKey)
	params.Set("limit", "5")
	params.Set("no_annotations", "0")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("geocoding API error (status %d): %s", resp.StatusCode, string(body))
	}

	var parsed openCageResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	results := make([]model.GeocodeResult, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		results = append(results, model.GeocodeResult{
			Formatted: r.Formatted,
			Coordinate: model.Coordinate{
				Lat: r.Geometry.Lat,
				Lng: r.Geometry.Lng,
			},
			Timezone: r.Annotations.Timezone.Name,
		})
	}
	return results, nil
}

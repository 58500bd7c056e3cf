package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"solo_edu_backend/internal/config"
	"solo_edu_backend/internal/model"
)

// PlacesClient 附近兴趣点查询客户端
type PlacesClient struct {
	config config.PlacesConfig
	http   *http.Client
}

func NewPlacesClient(cfg config.PlacesConfig) *PlacesClient {
	return &PlacesClient{
		config: cfg,
		http:   &http.Client{Timeout: cfg.RequestTimeout},
	}
}

type placesResponse struct {
	Results []struct {
		Name     string `json:"name"`
		Vicinity string `json:"vicinity"`
		PlaceID  string `json:"place_id"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		OpeningHours *struct {
			OpenNow *bool `json:"open_now"`
		} `json:"opening_hours"`
		PriceLevel *int `json:"price_level"`
	} `json:"results"`
	Status string `json:"status"`
}

// NearestSite 按关键词搜索坐标附近的兴趣点，无结果返回 nil
func (c *PlacesClient) NearestSite(ctx context.Context, coord model.Coordinate, keyword string, radiusMeters int) (*model.SiteCandidate, error) {
	params := url.Values{}
	params.Set("location", strconv.FormatFloat(coord.Lat, 'f', -1, 64)+","+strconv.FormatFloat(coord.Lng, 'f', -1, 64))
	params.Set("radius", strconv.Itoa(radiusMeters))
	params.Set("keyword", keyword)
	params.Set("key", c.config.APIKey)

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
		return nil, fmt.Errorf("places API error (status %d): %s", resp.StatusCode, string(body))
	}

	var parsed placesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	if parsed.Status != "OK" && parsed.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("places API status %s", parsed.Status)
	}
	if len(parsed.Results) == 0 {
		return nil, nil
	}

	// 供应商按邻近度/权重排序，取第一条
	r := parsed.Results[0]
	site := &model.SiteCandidate{
		Name:    r.Name,
		Address: r.Vicinity,
		Coordinate: &model.Coordinate{
			Lat: r.Geometry.Location.Lat,
			Lng: r.Geometry.Location.Lng,
		},
		OpenStatus: model.SiteOpenUnknown,
		FeeStatus:  model.SiteFeeUnknown,
	}
	if r.PlaceID != "" {
		site.URL = "https://www.google.com/maps/place/?q=place_id:" + url.QueryEscape(r.PlaceID)
	}
	if r.OpeningHours != nil && r.OpeningHours.OpenNow != nil {
		if *r.OpeningHours.OpenNow {
			site.OpenStatus = model.SiteOpen
		} else {
			site.OpenStatus = model.SiteClosed
		}
	}
	// 只有明确的 0 档价位才算免费，付费档位数据不可靠仍按未知处理
	if r.PriceLevel != nil && *r.PriceLevel == 0 {
		site.FeeStatus = model.SiteFree
	}
	return site, nil
}

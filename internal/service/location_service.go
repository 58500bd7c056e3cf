package service

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"solo_edu_backend/internal/config"
	"solo_edu_backend/internal/model"
	"solo_edu_backend/pkg/logger"
	"solo_edu_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Geocoder 地理编码能力接口
type Geocoder interface {
	Geocode(ctx context.Context, query string) ([]model.GeocodeResult, error)
}

// LocationInput 原始位置输入，可能是坐标字段、"lat,lng" 字符串或自由文本
type LocationInput struct {
	Latitude  *float64
	Longitude *float64
	Location  string
}

type LocationService struct {
	geocoder Geocoder
	rdb      *redis.Client
	cacheTTL time.Duration
}

// NewLocationService rdb 可以为 nil，此时不启用地理编码缓存
func NewLocationService(geocoder Geocoder, rdb *redis.Client, cfg config.GeocodingConfig) *LocationService {
	return &LocationService{
		geocoder: geocoder,
		rdb:      rdb,
		cacheTTL: cfg.CacheTTL,
	}
}

// Resolve 按优先级归一化位置输入，失败不报错而是返回无坐标的结果
// 1. 显式经纬度字段
// 2. "lat,lng" 字符串，不触发地理编码
// 3. 自由文本走地理编码，取第一条结果
func (s *LocationService) Resolve(ctx context.Context, in LocationInput) model.LocationResolution {
	if in.Latitude != nil && in.Longitude != nil {
		coord := model.Coordinate{Lat: *in.Latitude, Lng: *in.Longitude}
		if !coord.Valid() {
			return model.LocationResolution{Label: in.Location}
		}
		return model.LocationResolution{
			Coordinate: &coord,
			Label:      in.Location,
		}
	}

	cleaned := cleanLocationString(in.Location)
	if coord, ok := parseCoordinatePair(cleaned); ok {
		return model.LocationResolution{
			Coordinate: coord,
			Label:      in.Location,
		}
	}

	if cleaned == "" {
		return model.LocationResolution{}
	}

	results, err := s.cachedGeocode(ctx, cleaned)
	if err != nil {
		logger.Log.Warn("geocoding failed",
			zap.String("query", cleaned),
			zap.Error(err))
		monitoring.ProviderFailureCounter.WithLabelValues("geocoder").Inc()
		return model.LocationResolution{Label: in.Location}
	}
	if len(results) == 0 {
		return model.LocationResolution{Label: in.Location}
	}

	first := results[0]
	coord := first.Coordinate
	return model.LocationResolution{
		Coordinate: &coord,
		Label:      first.Formatted,
		Timezone:   first.Timezone,
	}
}

// cachedGeocode 地理编码结果的可选 Redis 缓存，站点和天气数据不走缓存
func (s *LocationService) cachedGeocode(ctx context.Context, query string) ([]model.GeocodeResult, error) {
	if s.rdb == nil {
		return s.geocoder.Geocode(ctx, query)
	}

	key := "geocode:" + strings.ToLower(query)
	if raw, err := s.rdb.Get(ctx, key).Result(); err == nil {
		var cached []model.GeocodeResult
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return cached, nil
		}
	}

	results, err := s.geocoder.Geocode(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(results) > 0 {
		if raw, err := json.Marshal(results); err == nil {
			if err := s.rdb.Set(ctx, key, raw, s.cacheTTL).Err(); err != nil {
				logger.Log.Warn("geocode cache write failed", zap.Error(err))
			}
		}
	}
	return results, nil
}

// ResolveLocalTime 时区名可识别则取当地时间，否则回退 UTC，永不失败
// 只在记录创建时调用一次
func ResolveLocalTime(tzName string) (timestamp, timezone string) {
	loc := time.UTC
	timezone = "UTC"
	if tzName != "" {
		if l, err := time.LoadLocation(tzName); err == nil {
			loc = l
			timezone = tzName
		}
	}
	timestamp = time.Now().In(loc).Format("2006-01-02T15:04:05-07:00")
	return timestamp, timezone
}

func cleanLocationString(s string) string {
	cleaned := strings.NewReplacer(`"`, "", `'`, "").Replace(s)
	return strings.TrimSpace(cleaned)
}

func parseCoordinatePair(s string) (*model.Coordinate, bool) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return nil, false
	}
	lat, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		return nil, false
	}
	coord := model.Coordinate{Lat: lat, Lng: lng}
	if !coord.Valid() {
		return nil, false
	}
	return &coord, true
}

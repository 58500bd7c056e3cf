package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Geocoding GeocodingConfig `mapstructure:"geocoding"`
	Weather   WeatherConfig   `mapstructure:"weather"`
	Places    PlacesConfig    `mapstructure:"places"`
	Recommend RecommendConfig `mapstructure:"recommend"`
	Redis     RedisConfig
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type GeocodingConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	APIKey         string        `mapstructure:"api_key"`
	RequestTimeout time.Duration `mapstructure:"request_timeout_seconds"`
	CacheTTL       time.Duration `mapstructure:"cache_ttl_minutes"`
}

type WeatherConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	APIKey         string        `mapstructure:"api_key"`
	RequestTimeout time.Duration `mapstructure:"request_timeout_seconds"`
}

type PlacesConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	APIKey         string        `mapstructure:"api_key"`
	RequestTimeout time.Duration `mapstructure:"request_timeout_seconds"`
}

// RecommendConfig 推荐决策的可调参数，支持热更新
type RecommendConfig struct {
	SearchRadiusMeters int     `mapstructure:"search_radius_meters"`
	DistanceGateMeters float64 `mapstructure:"distance_gate_meters"`
	HotTempF           float64 `mapstructure:"hot_temp_f"`
	FallbackKeyword    string  `mapstructure:"fallback_keyword"`
}

type RedisConfig struct {
	Enabled  bool `mapstructure:"enabled"`
	Host     string
	Port     int
	Password string
	DB       int
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("SOLO_EDU")
	viper.AutomaticEnv()

	// Server
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.mode", "SERVER_MODE")

	// 外部供应商密钥
	viper.BindEnv("geocoding.api_key", "OPENCAGE_API_KEY")
	viper.BindEnv("weather.api_key", "OPENWEATHER_API_KEY")
	viper.BindEnv("places.api_key", "PLACES_API_KEY")

	// Redis
	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("geocoding.base_url", "https://api.opencagedata.com/geocode/v1/json")
	viper.SetDefault("geocoding.request_timeout_seconds", 12)
	viper.SetDefault("geocoding.cache_ttl_minutes", 60)
	viper.SetDefault("weather.base_url", "https://api.openweathermap.org/data/2.5/weather")
	viper.SetDefault("weather.request_timeout_seconds", 12)
	viper.SetDefault("places.base_url", "https://maps.googleapis.com/maps/api/place/nearbysearch/json")
	viper.SetDefault("places.request_timeout_seconds", 12)
	viper.SetDefault("recommend.search_radius_meters", 1500)
	viper.SetDefault("recommend.distance_gate_meters", 1000)
	viper.SetDefault("recommend.hot_temp_f", 96)
	viper.SetDefault("recommend.fallback_keyword", "cultural heritage")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.Geocoding.RequestTimeout *= time.Second
	cfg.Weather.RequestTimeout *= time.Second
	cfg.Places.RequestTimeout *= time.Second
	cfg.Geocoding.CacheTTL *= time.Minute

	// 生产环境必须配置供应商密钥，缺了只能一路降级到 Virtual
	if cfg.Server.Mode == "release" {
		if cfg.Geocoding.APIKey == "" {
			return nil, fmt.Errorf("geocoding api key is required in release mode")
		}
		if cfg.Weather.APIKey == "" {
			return nil, fmt.Errorf("weather api key is required in release mode")
		}
		if cfg.Places.APIKey == "" {
			return nil, fmt.Errorf("places api key is required in release mode")
		}
	}

	return &cfg, nil
}

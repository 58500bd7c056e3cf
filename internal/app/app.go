package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"solo_edu_backend/internal/client"
	"solo_edu_backend/internal/config"
	"solo_edu_backend/internal/controller"
	"solo_edu_backend/internal/repository"
	"solo_edu_backend/internal/service"
	"solo_edu_backend/pkg/configwatcher"
	"solo_edu_backend/pkg/database"
	"solo_edu_backend/pkg/logger"
	"solo_edu_backend/pkg/monitoring"
	"solo_edu_backend/pkg/security"
	"solo_edu_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	kcs     *repository.KCRepository
	history *repository.HistoryRepository
}

type services struct {
	location *service.LocationService
	solo     *service.SOLOService
	kc       *service.KCService
	history  *service.HistoryService
	reaction *service.ReactionService
}

type controllers struct {
	kc       *controller.KCController
	analysis *controller.AnalysisController
	history  *controller.HistoryController
	reaction *controller.ReactionController
	health   *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories() *repositories {
	return &repositories{
		kcs:     repository.NewKCRepository(),
		history: repository.NewHistoryRepository(),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	geocoder := client.NewOpenCageClient(cfg.Geocoding)
	weather := client.NewOpenWeatherClient(cfg.Weather)
	places := client.NewPlacesClient(cfg.Places)

	s.location = service.NewLocationService(geocoder, rdb, cfg.Geocoding)
	s.solo = service.NewSOLOService()
	s.kc = service.NewKCService(repos.kcs)
	s.history = service.NewHistoryService(repos.history, s.location)
	s.reaction = service.NewReactionService(repos.history, repos.kcs, places, weather, cfg.Recommend)

	return s
}

func (a *App) initControllers(s *services, repos *repositories, cfg *config.Config) *controllers {
	return &controllers{
		kc:       controller.NewKCController(s.kc),
		analysis: controller.NewAnalysisController(s.solo),
		history:  controller.NewHistoryController(s.history),
		reaction: controller.NewReactionController(s.reaction),
		health:   controller.NewHealthController(cfg, repos.kcs, repos.history),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 600
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// watchConfig 推荐参数热更新，其余配置仍需重启生效
func (a *App) watchConfig() {
	go configwatcher.WatchConfig("configs/config.yaml", func(cfg *config.Config) {
		logger.Log.Info("config reloaded",
			zap.Int("search_radius_meters", cfg.Recommend.SearchRadiusMeters),
			zap.Float64("distance_gate_meters", cfg.Recommend.DistanceGateMeters))
		for _, cb := range a.configCallbacks {
			cb(cfg)
		}
	})
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	// 地理编码缓存是可选的，Redis 不可用时直接裸跑
	var rdb *redis.Client
	if cfg.Redis.Enabled {
		var err error
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Warn("Redis unavailable, geocode cache disabled", zap.Error(err))
			rdb = nil
		}
	}

	app := &App{
		Config: cfg,
		Redis:  rdb,
	}

	repos := app.initRepositories()
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, repos, cfg)

	app.RegisterConfigCallback(func(newCfg *config.Config) {
		services.reaction.UpdateConfig(newCfg.Recommend)
	})

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("solo-edu-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

	app.watchConfig()

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.Redis != nil {
		a.Redis.Close()
	}

	log.Println("Server exiting")
}

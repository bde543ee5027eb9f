package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"thanawya_backend/internal/config"
	"thanawya_backend/internal/controller"
	"thanawya_backend/internal/service"
	"thanawya_backend/internal/state"
	"thanawya_backend/internal/store"
	"thanawya_backend/pkg/database"
	"thanawya_backend/pkg/logger"
	"thanawya_backend/pkg/monitoring"
	"thanawya_backend/pkg/security"
	"thanawya_backend/pkg/tracing"
)

type App struct {
	Config    *config.Config
	Router    *gin.Engine
	DB        *gorm.DB
	Redis     *redis.Client
	Container *state.Container

	services        *services
	bgCancel        context.CancelFunc
	configCallbacks []func(*config.Config)
}

type services struct {
	ai         service.AIClient
	storage    service.StorageProvider
	stats      *service.StatsService
	task       *service.TaskService
	curriculum *service.CurriculumService
	predictor  *service.PredictorService
	backlog    *service.BacklogService
	prayer     *service.PrayerService
	athkar     *service.AthkarService
	chat       *service.ChatService
	dashboard  *service.DashboardService
	resource   *service.ResourceService
	video      *service.VideoService
}

type controllers struct {
	dashboard  *controller.DashboardController
	task       *controller.TaskController
	curriculum *controller.CurriculumController
	predictor  *controller.PredictorController
	backlog    *controller.BacklogController
	schedule   *controller.ScheduleController
	chat       *controller.ChatController
	resource   *controller.ResourceController
	video      *controller.VideoController
	stats      *controller.StatsController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 配置热更新回调入口（configwatcher触发）
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
	logger.Log.Info("配置已热更新")
}

func (a *App) initServices(cfg *config.Config, container *state.Container, rdb *redis.Client) *services {
	s := &services{}

	storage, err := service.NewStorageProvider(&cfg.Storage)
	if err != nil {
		logger.Log.Fatal("初始化存储后端失败", zap.Error(err))
	}
	s.storage = storage

	s.ai = service.NewAIService(cfg.AI)
	s.stats = service.NewStatsService(container)
	s.task = service.NewTaskService(container, s.ai, s.stats)
	s.curriculum = service.NewCurriculumService(container, s.stats)
	s.predictor = service.NewPredictorService(container)
	s.backlog = service.NewBacklogService(container, s.ai)
	s.prayer = service.NewPrayerService(cfg.Prayer, container, rdb)
	s.athkar = service.NewAthkarService(container)
	s.chat = service.NewChatService(container, s.ai, s.task, s.stats)
	s.dashboard = service.NewDashboardService(container, s.task, s.predictor, s.stats)
	s.resource = service.NewResourceService(container, s.storage)
	s.video = service.NewVideoService()

	return s
}

func (a *App) initControllers(s *services, container *state.Container, db *gorm.DB) *controllers {
	return &controllers{
		dashboard:  controller.NewDashboardController(s.dashboard),
		task:       controller.NewTaskController(s.task),
		curriculum: controller.NewCurriculumController(s.curriculum),
		predictor:  controller.NewPredictorController(s.predictor),
		backlog:    controller.NewBacklogController(s.backlog),
		schedule:   controller.NewScheduleController(container, s.prayer, s.athkar),
		chat:       controller.NewChatController(s.chat),
		resource:   controller.NewResourceController(s.resource),
		video:      controller.NewVideoController(s.video),
		stats:      controller.NewStatsController(s.stats),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// startBackgroundTasks 礼拜闹钟每秒评估、首页文案定时轮换
func (a *App) startBackgroundTasks(s *services) {
	ctx, cancel := context.WithCancel(context.Background())
	a.bgCancel = cancel
	go s.prayer.RunTicker(ctx)
	go s.dashboard.RunQuoteTicker(ctx)
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// redis可选：起不来就降级到文档缓存
	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Warn("Redis不可用，礼拜时刻缓存降级到本地文档", zap.Error(err))
			rdb = nil
		}
	}

	st := store.NewStore(db, logger.Log)
	container := state.NewContainer(st)

	app := &App{
		Config:    cfg,
		DB:        db,
		Redis:     rdb,
		Container: container,
	}

	services := app.initServices(cfg, container, rdb)
	app.services = services
	controllers := app.initControllers(services, container, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("thanawya-planner", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startBackgroundTasks(services)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

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

	if a.bgCancel != nil {
		a.bgCancel()
	}

	// 退出前把内存状态写穿一遍
	a.Container.Flush()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}

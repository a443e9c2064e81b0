package main

import (
	"fmt"
	"net/http"
	"time"

	"bloggers/internal/api/handler"
	"bloggers/internal/api/middleware"
	"bloggers/internal/api/router"
	"bloggers/internal/config"
	"bloggers/internal/infra/database"
	infraES "bloggers/internal/infra/elasticsearch"
	infraKafka "bloggers/internal/infra/kafka"
	infraMinio "bloggers/internal/infra/minio"
	infraRedis "bloggers/internal/infra/redis"
	"bloggers/internal/model"
	"bloggers/internal/repository"
	"bloggers/internal/service"
	"bloggers/pkg/logger"

	_ "bloggers/api/openapi"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title Bloggers API
// @version 1.0
// @description 社交博客平台 API 服务

// @contact.name API Support
// @contact.email support@bloggers.dev

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host 127.0.0.1:8000
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 输入格式: Bearer {token}

func main() {
	// 加载配置文件
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 初始化日志系统
	if err := logger.Init(
		cfg.Log.Level,
		cfg.Log.Format,
		cfg.Log.Output,
		cfg.Log.FilePath,
	); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	// 初始化数据库
	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	// 自动迁移数据库表
	if err := database.AutoMigrate(
		&model.User{},
		&model.Follow{},
		&model.Blog{},
		&model.Comment{},
		&model.Like{},
	); err != nil {
		logger.Fatal("Failed to auto migrate", zap.Error(err))
	}

	// 初始化Redis（失败则时间线降级到 DB）
	if err := infraRedis.Init(&cfg.Redis); err != nil {
		logger.Warn("Redis init failed, timeline will fallback to DB", zap.Error(err))
	} else {
		defer infraRedis.Close()
	}

	// 初始化MinIO（失败则头像上传不可用）
	if err := infraMinio.Init(&cfg.MinIO); err != nil {
		logger.Warn("MinIO init failed, avatar upload disabled", zap.Error(err))
	}

	// 初始化Kafka生产者（失败则博客事件不发布）
	if err := infraKafka.InitProducer(&cfg.Kafka); err != nil {
		logger.Warn("Kafka producer init failed, blog events disabled", zap.Error(err))
	} else {
		defer infraKafka.CloseProducer()
	}

	// 初始化 Elasticsearch（可选，失败则搜索降级到 DB）
	if err := infraES.Init(&cfg.Elasticsearch); err != nil {
		logger.Warn("Elasticsearch init failed, search will fallback to DB", zap.Error(err))
	} else {
		defer infraES.Close()
		if err := infraES.InitIndexes(); err != nil {
			logger.Warn("Elasticsearch index init failed", zap.Error(err))
		}
	}

	// 设置Gin模式
	gin.SetMode(cfg.App.Mode)

	// 创建Gin路由器（不使用默认中间件）
	r := gin.New()

	// 使用自定义中间件
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())

	// 初始化依赖（Repository -> Service -> Handler）
	db := database.Get()
	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	timelineRepo := repository.NewTimelineRepository(infraRedis.Get())

	authService := service.NewAuthService(userRepo, followRepo)
	userService := service.NewUserService(userRepo)
	followService := service.NewFollowService(followRepo, userRepo)
	blogService := service.NewBlogService(blogRepo, followRepo)
	commentService := service.NewCommentService(commentRepo, blogRepo)
	likeService := service.NewLikeService(likeRepo, blogRepo)
	timelineService := service.NewTimelineService(blogRepo, followRepo, timelineRepo)
	searchService := service.NewSearchService(blogRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	followHandler := handler.NewFollowHandler(followService)
	blogHandler := handler.NewBlogHandler(blogService, timelineService)
	commentHandler := handler.NewCommentHandler(commentService)
	likeHandler := handler.NewLikeHandler(likeService)
	searchHandler := handler.NewSearchHandler(searchService)

	// 注册基础路由
	r.GET("/healthz", healthCheckHandler)

	// Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册业务路由
	router.Setup(r, authHandler, userHandler, followHandler, blogHandler, commentHandler, likeHandler, searchHandler)

	// 启动HTTP服务器
	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("mode", cfg.App.Mode),
		zap.String("addr", addr),
	)
	if err := r.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// healthCheckHandler 健康检查接口
func healthCheckHandler(c *gin.Context) {
	cfg := config.Get()

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   cfg.App.Name,
		"version":   cfg.App.Version,
		"mode":      cfg.App.Mode,
	})
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "portfolio-backend/docs"
	"portfolio-backend/src/config"
	"portfolio-backend/src/controllers"
	"portfolio-backend/src/database"
	"portfolio-backend/src/jobs"
	appLogger "portfolio-backend/src/logger"
	"portfolio-backend/src/middleware"
	"portfolio-backend/src/ratelimit"
	"portfolio-backend/src/routes"
	"portfolio-backend/src/seeder"
	"portfolio-backend/src/services/analytics"
	"portfolio-backend/src/services/auth"
	"portfolio-backend/src/services/congratulations"
	"portfolio-backend/src/services/content"
	"portfolio-backend/src/services/forms"
	"portfolio-backend/src/services/notifications"
	"portfolio-backend/src/services/tracking"
	"portfolio-backend/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// @title           Portfolio Backend API
// @version         1.0
// @description     Content, visitor tracking, congratulation cards and forms for the portfolio site.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger, err := appLogger.New(cfg.LogLevel, cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cfg.Validate(); err != nil {
		return err
	}

	// เชื่อมต่อกับ MongoDB
	mongoClient, db, err := database.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDB, logger)
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(dctx); err != nil {
			logger.Warn("mongo disconnect", zap.Error(err))
		}
	}()
	if err := database.EnsureIndexes(ctx, db); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	// Redis ไม่บังคับ; ไม่มีก็ใช้ limiter/cache ใน memory และเขียน analytics ตรง
	rdb, err := database.InitRedis(ctx, cfg.RedisURI, cfg.RedisPassword)
	if err != nil {
		logger.Warn("redis unavailable, falling back to in-memory state", zap.Error(err))
		rdb = nil
	}
	if rdb != nil {
		defer rdb.Close()
	}

	var (
		analyticsQueue analytics.Enqueuer
		formQueue      forms.Enqueuer
	)
	notifier := buildNotifier(cfg, logger)
	if rdb != nil {
		client := database.InitAsynq(cfg.RedisURI, cfg.RedisPassword)
		defer client.Close()
		analyticsQueue = client
		// ไม่มี SMTP ก็ไม่ต้องส่ง task แจ้งเตือนเข้าคิว
		if notifier != nil {
			formQueue = client
		}
	}

	trackingSvc := tracking.NewService(db, logger.Named("tracking"))
	analyticsSvc := analytics.NewService(db, analyticsQueue, logger.Named("analytics"))
	congratsSvc := congratulations.NewService(db)
	formSvc := forms.NewService(db, formQueue, logger.Named("forms"))
	if err := seeder.SeedDefaultForms(ctx, formSvc, cfg.AdminEmail, logger.Named("seeder")); err != nil {
		return err
	}
	jwtm := utils.NewJWTManager(cfg.JWTSecret, utils.TokenTTL)
	authSvc := auth.NewService(cfg.AdminEmail, cfg.AdminPasswordHash, jwtm)

	var cache content.Cache = content.NewMemoryCache()
	if rdb != nil {
		cache = content.NewRedisCache(rdb)
	}
	cms := content.NewGraphQLClient(cfg.CMSGraphQLURL, cfg.CMSToken, cfg.RequestTimeout)
	contentSvc := content.NewService(cms, cache, cfg.CMSCacheTTL, logger.Named("content"))

	if rdb != nil {
		worker, err := startWorker(cfg, analyticsSvc, notifier, logger)
		if err != nil {
			return err
		}
		defer worker.Shutdown()
	}

	limiters, err := buildLimiters(ctx, cfg, rdb)
	if err != nil {
		return err
	}

	// สร้าง app instance
	app := fiber.New(utils.WithTrustedProxies(fiber.Config{
		AppName:      "portfolio-backend",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if utils.StatusFor(err) == fiber.StatusInternalServerError {
				logger.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
			}
			return utils.HandleServiceError(c, err)
		},
	}, cfg.TrustedProxies))

	app.Use(recover.New(recover.Config{EnableStackTrace: cfg.IsDevelopment()}))
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.AllowedOrigins,
		AllowMethods:  "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, X-Revalidate-Secret",
		ExposeHeaders: "Retry-After, X-RateLimit-Limit, X-RateLimit-Remaining",
	}))
	app.Use(middleware.AccessLog(logger.Named("http")))
	app.Use(middleware.Timeout(cfg.RequestTimeout))

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// รวม routes จากแต่ละ module
	routes.InitRoutes(app, &routes.Deps{
		Tracking:        controllers.NewTrackingController(trackingSvc, logger.Named("tracking")),
		Analytics:       controllers.NewAnalyticsController(analyticsSvc),
		Congratulations: controllers.NewCongratulationController(congratsSvc, cfg.SiteURL),
		Forms:           controllers.NewFormController(formSvc),
		Content:         controllers.NewContentController(contentSvc, cfg.RevalidateSecret),
		Auth:            controllers.NewAuthController(authSvc, logger.Named("auth")),
		JWT:             jwtm,
		Limiters:        limiters,
		Log:             logger.Named("ratelimit"),
	})

	listenErr := make(chan error, 1)
	go func() {
		logger.Info("Server is running", zap.String("port", cfg.AppPort), zap.String("env", cfg.AppEnv))
		listenErr <- app.Listen(":" + cfg.AppPort)
	}()

	select {
	case err := <-listenErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(sctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}

// buildNotifier คืน nil ถ้ายังไม่ได้ตั้งค่า SMTP
func buildNotifier(cfg *config.Config, logger *zap.Logger) jobs.SubmissionNotifier {
	if !cfg.SMTPConfigured() {
		return nil
	}
	sender, err := notifications.NewSMTPSender(cfg)
	if err != nil {
		logger.Warn("smtp disabled", zap.Error(err))
		return nil
	}
	return notifications.NewSubmissionNotifier(sender)
}

// startWorker รัน asynq server ใน process เดียวกับ API
func startWorker(cfg *config.Config, analyticsSvc *analytics.Service, notifier jobs.SubmissionNotifier, logger *zap.Logger) (*asynq.Server, error) {
	srv := jobs.NewServer(database.RedisConnOpt(cfg.RedisURI, cfg.RedisPassword), logger)
	if err := srv.Start(jobs.NewServeMux(analyticsSvc, notifier, logger)); err != nil {
		return nil, fmt.Errorf("start worker: %w", err)
	}
	return srv, nil
}

func buildLimiters(ctx context.Context, cfg *config.Config, rdb *redis.Client) (routes.Limiters, error) {
	build := func(name string, rule config.RateRule) (ratelimit.Limiter, error) {
		lim, err := ratelimit.New(rdb, name, ratelimit.Options{
			Limit:    rule.Limit,
			Interval: rule.Interval,
			MaxKeys:  cfg.RateLimitMaxKeys,
		})
		if err != nil {
			return nil, fmt.Errorf("rate limit %s: %w", name, err)
		}
		if m, ok := lim.(*ratelimit.MemoryLimiter); ok {
			go m.RunSweeper(ctx, time.Minute)
		}
		return lim, nil
	}

	var (
		l   routes.Limiters
		err error
	)
	if l.Track, err = build("track", cfg.RateLimitTrack); err != nil {
		return l, err
	}
	if l.Analytics, err = build("analytics", cfg.RateLimitAnalytics); err != nil {
		return l, err
	}
	if l.Congratulate, err = build("congratulate", cfg.RateLimitCongratulate); err != nil {
		return l, err
	}
	if l.FormSubmit, err = build("form-submit", cfg.RateLimitFormSubmit); err != nil {
		return l, err
	}
	if l.Login, err = build("login", cfg.RateLimitLogin); err != nil {
		return l, err
	}
	return l, nil
}

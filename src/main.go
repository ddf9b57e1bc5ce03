package main

import (
	_ "Evaluation-System/docs"
	"Evaluation-System/src/config"
	"Evaluation-System/src/controllers"
	"Evaluation-System/src/database"
	"Evaluation-System/src/jobs"
	"Evaluation-System/src/middleware"
	"Evaluation-System/src/routes"
	"Evaluation-System/src/services/email"
	"Evaluation-System/src/services/pdf"
	"Evaluation-System/src/services/reports"
	"Evaluation-System/src/utils"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// @title        Evaluation System API
// @version      1.0
// @description  สร้างแบบประเมินการทำงานพนักงานเป็นไฟล์ PDF
// @BasePath     /api
func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	// Redis ไม่บังคับ ถ้าไม่มีจะไม่มี cache และไม่มีคิวอีเมล
	if err := database.InitRedis(cfg.RedisURI); err != nil {
		logger.Warn("⚠️ Redis unavailable, running without cache and queue", zap.Error(err))
	}
	database.InitAsynq()

	converter, err := pdf.New(cfg.PDFStrategy, cfg.ConverterOptions(logger))
	if err != nil {
		logger.Fatal("❌ Error creating PDF converter", zap.Error(err))
	}

	reportService := reports.NewService(
		converter,
		utils.NewSharedPDFCache(cfg.PDFCacheTTL),
		logger,
		reports.Config{
			Strategy: cfg.PDFStrategy,
			Render:   cfg.RenderOptions(),
			Variant:  cfg.CacheVariant(),
		},
	)

	worker := startWorker(cfg, reportService, logger)

	// ส่ง queue เฉพาะตอนมี client จริง
	var queue jobs.Enqueuer
	if database.AsynqClient != nil && worker != nil {
		queue = database.AsynqClient
	}
	evaluationController := controllers.NewEvaluationController(reportService, queue, logger)

	// สร้าง app instance
	app := fiber.New(fiber.Config{
		AppName:   "Evaluation System",
		BodyLimit: 2 * 1024 * 1024,
	})

	// ✅ เปิดใช้งาน CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Origins(),
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, X-Request-ID",
		ExposeHeaders:    "Content-Disposition, X-Document-Fingerprint, X-Cache, X-Request-ID",
		AllowCredentials: false, // ❌ ต้องเป็น false ถ้าใช้ "*"
	}))
	app.Use(middleware.RequestLogger(logger))

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	routes.InitRoutes(app, evaluationController)

	// ปิดเซิร์ฟเวอร์เมื่อได้รับสัญญาณ
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		logger.Info("🛑 Shutting down...")
		if err := app.Shutdown(); err != nil {
			logger.Error("❌ Error shutting down server", zap.Error(err))
		}
	}()

	logger.Info("🚀 Server is running", zap.String("port", cfg.AppURI), zap.String("pdfStrategy", string(cfg.PDFStrategy)))
	if err := app.Listen(fmt.Sprintf(":%s", url.PathEscape(cfg.AppURI))); err != nil {
		logger.Error("❌ Server stopped", zap.Error(err))
	}

	if worker != nil {
		worker.Shutdown()
	}
	database.CloseAsynq()
	database.CloseRedis()
}

// startWorker เปิด worker ส่งอีเมล ต้องมีทั้ง Redis และ SMTP
func startWorker(cfg *config.Config, gen jobs.DocumentGenerator, logger *zap.Logger) *asynq.Server {
	sender, err := email.NewSMTPSender(cfg.SMTP)
	if err != nil {
		logger.Warn("⚠️ SMTP not configured, email worker disabled", zap.Error(err))
		return nil
	}

	srv := jobs.NewServer(logger, cfg.WorkerConcurrency)
	if srv == nil {
		logger.Warn("⚠️ Redis not available, email worker disabled")
		return nil
	}

	mux := asynq.NewServeMux()
	jobs.RegisterHandlers(mux, gen, sender, logger)
	if err := srv.Start(mux); err != nil {
		logger.Error("❌ Error starting email worker", zap.Error(err))
		return nil
	}
	logger.Info("✅ Email worker started", zap.Int("concurrency", cfg.WorkerConcurrency))
	return srv
}

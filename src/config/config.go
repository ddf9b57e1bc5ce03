package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"Evaluation-System/src/services/email"
	"Evaluation-System/src/services/evaluations"
	"Evaluation-System/src/services/pdf"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config holds all configuration for the application.
type Config struct {
	AppEnv         string
	AppURI         string
	AllowedOrigins string

	// เอกสาร
	OrgName     string
	FontCSSURL  string
	DocumentQR  bool
	PDFStrategy pdf.Strategy
	ChromePath  string
	PageSize    pdf.PageSize
	Margins     pdf.Margins
	Timeout     time.Duration
	RasterScale float64

	// Redis / คิวงาน
	RedisURI          string
	PDFCacheTTL       time.Duration
	WorkerConcurrency int

	SMTP email.Settings
}

// LoadFromEnv โหลด .env (ถ้ามี) แล้วอ่านค่าจาก environment
func LoadFromEnv() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}
	return FromEnv()
}

// FromEnv อ่านค่าจาก environment อย่างเดียว ค่าที่ผิดรูปแบบจะคืน error
func FromEnv() (*Config, error) {
	strategy, err := pdf.ParseStrategy(getEnv("PDF_STRATEGY", string(pdf.StrategyChrome)))
	if err != nil {
		return nil, err
	}
	pageSize, err := pdf.ParsePageSize(getEnv("PAGE_SIZE", "A4"))
	if err != nil {
		return nil, err
	}
	margins, err := pdf.ParseMargins(getEnv("PAGE_MARGIN_MM", "20"))
	if err != nil {
		return nil, err
	}
	timeout, err := getDuration("RENDER_TIMEOUT", 60*time.Second)
	if err != nil {
		return nil, err
	}
	cacheTTL, err := getDuration("PDF_CACHE_TTL", 10*time.Minute)
	if err != nil {
		return nil, err
	}

	scale, err := strconv.ParseFloat(getEnv("RASTER_SCALE", "2"), 64)
	if err != nil || scale <= 0 {
		return nil, fmt.Errorf("invalid RASTER_SCALE %q", os.Getenv("RASTER_SCALE"))
	}

	concurrency, err := strconv.Atoi(getEnv("WORKER_CONCURRENCY", "2"))
	if err != nil {
		concurrency = 2
	}

	documentQR, err := strconv.ParseBool(getEnv("DOCUMENT_QR", "false"))
	if err != nil {
		documentQR = false
	}

	smtpPort, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	return &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		AppURI:         getEnv("APP_URI", "8888"), // ใช้ 8888 เป็นค่าเริ่มต้น
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),

		OrgName:     getEnv("ORG_NAME", evaluations.DefaultOrgName),
		FontCSSURL:  getEnv("FONT_CSS_URL", evaluations.DefaultFontCSSURL),
		DocumentQR:  documentQR,
		PDFStrategy: strategy,
		ChromePath:  os.Getenv("CHROME_PATH"),
		PageSize:    pageSize,
		Margins:     margins,
		Timeout:     timeout,
		RasterScale: scale,

		RedisURI:          os.Getenv("REDIS_URI"),
		PDFCacheTTL:       cacheTTL,
		WorkerConcurrency: concurrency,

		SMTP: email.Settings{
			Host: os.Getenv("SMTP_HOST"),
			Port: smtpPort,
			User: os.Getenv("SMTP_USER"),
			Pass: os.Getenv("SMTP_PASS"),
			From: os.Getenv("SMTP_FROM"),
		},
	}, nil
}

// RenderOptions ค่าหัวเอกสารสำหรับ evaluations.Prepare
func (c *Config) RenderOptions() evaluations.RenderOptions {
	return evaluations.RenderOptions{
		OrgName:     c.OrgName,
		FontCSSURL:  c.FontCSSURL,
		Fingerprint: c.DocumentQR,
	}
}

// ConverterOptions ค่าสำหรับ pdf.New
func (c *Config) ConverterOptions(logger *zap.Logger) pdf.Options {
	return pdf.Options{
		ExecPath: c.ChromePath,
		Page:     c.PageSize,
		Margins:  c.Margins,
		Timeout:  c.Timeout,
		Scale:    c.RasterScale,
		Logger:   logger,
	}
}

// CacheVariant แยก cache ตามการตั้งค่ากระดาษ
func (c *Config) CacheVariant() string {
	m := c.Margins
	return fmt.Sprintf("%s:%g,%g,%g,%g:%g", c.PageSize.Name, m.Top, m.Right, m.Bottom, m.Left, c.RasterScale)
}

// Origins รายการ origin สำหรับ CORS ในรูปแบบที่ fiber ต้องการ
func (c *Config) Origins() string {
	parts := strings.Split(c.AllowedOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return "*"
	}
	return strings.Join(out, ",")
}

// NewLogger creates a new Zap logger based on the config.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.AppEnv == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

package reports

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"Evaluation-System/src/models"
	"Evaluation-System/src/services/evaluations"
	"Evaluation-System/src/services/pdf"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrRenderFailed สร้าง PDF ไม่สำเร็จ รายละเอียดอยู่ใน log เท่านั้น
var ErrRenderFailed = errors.New("failed to generate pdf")

const (
	ContentTypePDF = "application/pdf"
	cacheKeyPrefix = "evaluation:pdf:"
)

// Cacher ที่เก็บไฟล์ PDF ที่สร้างแล้ว ใช้ key จาก hash ของเอกสาร
type Cacher interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

var pdfMagic = []byte("%PDF-")

// Document ไฟล์ PDF พร้อมชื่อไฟล์สำหรับดาวน์โหลด
type Document struct {
	Bytes       []byte
	FileName    string
	ContentType string
	Fingerprint string
	Cached      bool
}

// Config ค่าที่ service ใช้ตอนสร้างเอกสาร
type Config struct {
	Strategy pdf.Strategy
	Render   evaluations.RenderOptions
	// Variant แยก cache ของการตั้งค่ากระดาษที่ต่างกัน เช่น "chrome:A4:20"
	Variant string
}

type Service struct {
	converter pdf.Converter
	cache     Cacher
	logger    *zap.Logger
	cfg       Config
	sf        singleflight.Group

	mu      sync.Mutex
	flights map[string]*flight
	nextGen uint64
}

// flight งานแปลงหนึ่งครั้งที่คำขอหลายรายการรอผลร่วมกัน
// จะถูกยกเลิกเมื่อไม่เหลือคำขอที่รออยู่
type flight struct {
	ctx     context.Context
	cancel  context.CancelFunc
	gen     uint64
	waiters int
}

func NewService(converter pdf.Converter, cache Cacher, logger *zap.Logger, cfg Config) *Service {
	if converter == nil {
		panic("nil Converter provided to reports.NewService")
	}
	if cache == nil {
		cache = noopCache{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Strategy == "" {
		cfg.Strategy = pdf.StrategyChrome
	}
	return &Service{
		converter: converter,
		cache:     cache,
		logger:    logger.Named("reports"),
		cfg:       cfg,
		flights:   map[string]*flight{},
	}
}

// Preview เอกสาร HTML ของแบบประเมิน ใช้ดูก่อนสร้าง PDF จึงไม่ตรวจช่องบังคับ
func (s *Service) Preview(record models.EvaluationRecord) (string, error) {
	return evaluations.RenderHTML(record, s.cfg.Render)
}

// Generate ตรวจข้อมูล สร้าง HTML แล้วแปลงเป็น PDF
// ถ้ามีคำขอเอกสารเดียวกันพร้อมกันหลายรายการ จะแปลงเพียงครั้งเดียวแล้วใช้ผลร่วมกัน
func (s *Service) Generate(ctx context.Context, record models.EvaluationRecord) (*Document, error) {
	if err := evaluations.Validate(&record); err != nil {
		return nil, err
	}

	sheet := evaluations.Prepare(record, s.cfg.Render)
	html, err := renderSheet(sheet)
	if err != nil {
		s.logger.Error("❌ render template failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}

	doc := &Document{
		FileName:    FileName(record, s.cfg.Strategy),
		ContentType: ContentTypePDF,
		Fingerprint: sheet.Fingerprint,
	}

	key := s.CacheKey(html)
	if data, ok := s.cached(ctx, key); ok {
		doc.Bytes, doc.Cached = data, true
		return doc, nil
	}

	start := time.Now()
	f := s.join(ctx, key)
	defer s.leave(key, f)

	ch := s.sf.DoChan(fmt.Sprintf("%s#%d", key, f.gen), func() (any, error) {
		data, err := s.converter.Convert(f.ctx, html)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(f.ctx, key, data); err != nil {
			s.logger.Warn("failed to set cache", zap.String("key", key), zap.Error(err))
		}
		return data, nil
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		s.logger.Info("request cancelled while converting", zap.String("key", key))
		return nil, fmt.Errorf("%w: %w", ErrRenderFailed, ctx.Err())
	}
	if res.Err != nil {
		s.logger.Error("❌ convert pdf failed",
			zap.String("strategy", string(s.cfg.Strategy)),
			zap.String("employee", record.EmployeeName),
			zap.Error(res.Err),
		)
		return nil, fmt.Errorf("%w: %w", ErrRenderFailed, res.Err)
	}

	doc.Bytes = res.Val.([]byte)
	s.logger.Info("✅ pdf generated",
		zap.String("file", doc.FileName),
		zap.Int("bytes", len(doc.Bytes)),
		zap.Bool("shared", res.Shared),
		zap.Duration("took", time.Since(start)),
	)
	return doc, nil
}

// cached อ่าน PDF จาก cache ข้อมูลที่ไม่ใช่ PDF จะถูกลบทิ้งแล้วถือว่าไม่มี
func (s *Service) cached(ctx context.Context, key string) ([]byte, bool) {
	data, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("cache get error (treating as miss)", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}
	if !bytes.HasPrefix(data, pdfMagic) {
		s.logger.Warn("⚠️ cached entry is not a pdf, evicting", zap.String("key", key), zap.Int("bytes", len(data)))
		if err := s.cache.Delete(ctx, key); err != nil {
			s.logger.Warn("failed to delete cache", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	s.logger.Debug("cache hit", zap.String("key", key))
	return data, true
}

// join ต่อคิวงานแปลงของ key นี้ ถ้ายังไม่มีจะเปิดงานใหม่ที่ไม่ขึ้นกับ ctx ของคำขอใดคำขอหนึ่ง
func (s *Service) join(ctx context.Context, key string) *flight {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flights[key]
	if !ok {
		s.nextGen++
		fctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		f = &flight{ctx: fctx, cancel: cancel, gen: s.nextGen}
		s.flights[key] = f
	}
	f.waiters++
	return f
}

// leave คำขอสุดท้ายที่ออกไปจะยกเลิกงาน ทำให้ปิด Chrome ทันที
func (s *Service) leave(key string, f *flight) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f.waiters--
	if f.waiters > 0 {
		return
	}
	f.cancel()
	if s.flights[key] == f {
		delete(s.flights, key)
	}
}

// CacheKey key ของ cache มาจากเอกสาร HTML และการตั้งค่ากระดาษ
func (s *Service) CacheKey(html string) string {
	h := sha256.New()
	h.Write([]byte(string(s.cfg.Strategy) + "\n" + s.cfg.Variant + "\n"))
	h.Write([]byte(html))
	return cacheKeyPrefix + hex.EncodeToString(h.Sum(nil))
}

type noopCache struct{}

func (noopCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (noopCache) Set(context.Context, string, []byte) error         { return nil }
func (noopCache) Delete(context.Context, string) error              { return nil }

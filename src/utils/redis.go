package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	DB "Evaluation-System/src/database"

	"github.com/redis/go-redis/v9"
)

const DefaultPDFCacheTTL = 10 * time.Minute

// PDFCache เก็บไฟล์ PDF ที่สร้างแล้วใน Redis แบบมีวันหมดอายุ
// ถ้าไม่มี Redis (development mode) ทุกคำสั่งจะข้ามไปเฉยๆ
type PDFCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPDFCache(client *redis.Client, ttl time.Duration) *PDFCache {
	if ttl <= 0 {
		ttl = DefaultPDFCacheTTL
	}
	return &PDFCache{client: client, ttl: ttl}
}

// NewSharedPDFCache ใช้ Redis client กลางที่ database.InitRedis สร้างไว้
func NewSharedPDFCache(ttl time.Duration) *PDFCache {
	return NewPDFCache(DB.RedisClient, ttl)
}

// Enabled มี Redis ให้ใช้หรือไม่
func (c *PDFCache) Enabled() bool {
	return c != nil && c.client != nil
}

// Get คืน (ข้อมูล, เจอหรือไม่, error)
func (c *PDFCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if !c.Enabled() {
		// ไม่มี Redis ใน dev mode - ข้าม
		return nil, false, nil
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get cached pdf: %w", err)
	}
	return data, true, nil
}

func (c *PDFCache) Set(ctx context.Context, key string, data []byte) error {
	if !c.Enabled() {
		return nil
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache pdf: %w", err)
	}
	return nil
}

// Delete ลบไฟล์ที่ cache ไว้
func (c *PDFCache) Delete(ctx context.Context, key string) error {
	if !c.Enabled() {
		return nil
	}

	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete cached pdf: %w", err)
	}
	return nil
}

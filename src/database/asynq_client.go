package database

import (
	"log"

	"github.com/hibiken/asynq"
)

var AsynqClient *asynq.Client

// InitAsynq initializes Asynq client only if Redis is available
func InitAsynq() {
	// Check if Redis is available (RedisClient != nil means InitRedis was successful)
	if RedisClient == nil || RedisURI == "" {
		log.Println("⚠️ Redis not available. Asynq client will not be initialized.")
		return
	}

	AsynqClient = asynq.NewClient(AsynqRedisOpt())
	log.Println("✅ Asynq Client initialized successfully")
}

// AsynqRedisOpt ค่าการเชื่อมต่อเดียวกับ RedisClient ใช้ได้ทั้ง client และ worker
func AsynqRedisOpt() asynq.RedisClientOpt {
	opts, err := redisOptions(RedisURI)
	if err != nil || opts == nil {
		return asynq.RedisClientOpt{Addr: RedisURI}
	}
	return asynq.RedisClientOpt{
		Addr:      opts.Addr,
		Username:  opts.Username,
		Password:  opts.Password,
		DB:        opts.DB,
		TLSConfig: opts.TLSConfig,
	}
}

// CloseAsynq ปิด client ตอน shutdown
func CloseAsynq() {
	if AsynqClient == nil {
		return
	}
	if err := AsynqClient.Close(); err != nil {
		log.Println("⚠️ Failed to close Asynq client:", err)
	}
	AsynqClient = nil
}

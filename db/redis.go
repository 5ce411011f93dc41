package db

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"tickerbrief/internal/model"
)

var Redis *redis.Client
var Ctx = context.Background()

const (
	RefreshQueueKey  = "tickerbrief:queue:refresh"
	contextKeyPrefix = "tickerbrief:context:"

	DefaultContextTTL = 15 * time.Minute
)

func ConnectRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		fmt.Println("REDIS_URL environment variable is not set")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	Redis = redis.NewClient(opt)

	_, err = Redis.Ping(Ctx).Result()
	return err
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}

func PushToQueue(queueKey string, data string) error {
	return Redis.LPush(Ctx, queueKey, data).Err()
}

func PopFromQueue(queueKey string, timeout time.Duration) (string, error) {
	result, err := Redis.BRPop(Ctx, timeout, queueKey).Result()
	if err != nil {
		return "", err
	}
	return result[1], nil
}

func GetQueueLength(queueKey string) (int64, error) {
	return Redis.LLen(Ctx, queueKey).Result()
}

// ContextCache stores context results per symbol with a TTL.
type ContextCache struct {
	TTL time.Duration
}

func NewContextCache() ContextCache {
	return ContextCache{TTL: DefaultContextTTL}
}

func (c ContextCache) GetResult(symbol string) (*model.ContextResult, error) {
	val, err := Redis.Get(Ctx, contextKeyPrefix+symbol).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var result model.ContextResult
	if err := json.Unmarshal(val, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c ContextCache) PutResult(result *model.ContextResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}

	return Redis.Set(Ctx, contextKeyPrefix+result.Symbol, payload, c.TTL).Err()
}

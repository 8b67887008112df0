// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"classboard/config"

	"github.com/go-redis/redis/v8"
)

// SettingsClient is the redis client backing the persisted slot and timetable blobs.
var SettingsClient *redis.Client

// InitSettingsCache connects to the settings DB and pings it.
func InitSettingsCache() error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSettingsDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return fmt.Errorf("connect to redis (settings): %w", err)
	}
	SettingsClient = client
	return nil
}

// GetSettingsClient returns the settings client, or nil when InitSettingsCache has not succeeded.
func GetSettingsClient() *redis.Client {
	return SettingsClient
}

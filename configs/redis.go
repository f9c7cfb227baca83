package configs

import (
	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns nil when addr is empty; callers treat a nil client as
// "cache off" and read straight from the DB.
func ConnectRedis(addr string) *redis.Client {
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{Addr: addr})
}

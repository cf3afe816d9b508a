package validate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Env validates required env configuration. Fail-fast on bad config.
func Env() error {
	if os.Getenv("DATABASE_URL") == "" {
		return errors.New("DATABASE_URL must be set")
	}
	if addr := os.Getenv("SERVER_ADDR"); addr != "" && !strings.Contains(addr, ":") {
		return fmt.Errorf("SERVER_ADDR %q must be host:port or :port", addr)
	}
	return nil
}

// HardeningWarnings returns non-fatal warnings worth logging on startup.
func HardeningWarnings(appEnv string) []string {
	var warns []string

	if os.Getenv("UPSTASH_REDIS_URL") == "" && os.Getenv("REDIS_ADDR") == "" {
		warns = append(warns, "no Redis configured; list caching and rate limiting are disabled")
	}

	if strings.EqualFold(appEnv, "production") {
		if u := os.Getenv("UPSTASH_REDIS_URL"); u != "" && strings.HasPrefix(u, "redis://") {
			warns = append(warns, "UPSTASH_REDIS_URL uses redis:// (no TLS). Prefer rediss:// for TLS")
		}
		if os.Getenv("AWS_BUCKET") == "" {
			warns = append(warns, "AWS_BUCKET not set; cover upload endpoint will return errors")
		}
	}

	return warns
}

// PingRedis checks connectivity with a short timeout.
func PingRedis(rdb *redis.Client, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	_, err := rdb.Ping(ctx).Result()
	return err
}

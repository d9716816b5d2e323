package redis

import (
	"strings"
	"sync"

	"github.com/fakhrymubarak/sunny-weather/internal/config"
	redisv9 "github.com/redis/go-redis/v9"
)

var (
	client *redisv9.Client
	once   sync.Once
)

// GetClient returns the process-wide Redis client, dialing config.GetRedisAddr lazily.
func GetClient() *redisv9.Client {
	once.Do(func() {
		client = redisv9.NewClient(&redisv9.Options{
			Addr: config.GetRedisAddr(),
		})
	})
	return client
}

// Key joins key segments with ':' the way every key in this service is laid out,
// e.g. Key("sunny_weather", "place") == "sunny_weather:place".
func Key(parts ...string) string {
	return strings.Join(parts, ":")
}

// Close releases the shared client if one was created.
func Close() error {
	if client == nil {
		return nil
	}
	return client.Close()
}

// ResetClientForTest resets the Redis client singleton. Use only in tests.
func ResetClientForTest() {
	_ = Close()
	once = sync.Once{}
	client = nil
}

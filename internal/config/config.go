package config

import (
	"flag"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var once sync.Once
var logger *zap.SugaredLogger
var loggerOnce sync.Once

// isTestRun returns true if the current process is a Go test binary.
func isTestRun() bool {
	return flag.Lookup("test.v") != nil || filepath.Ext(os.Args[0]) == ".test"
}

func initConfig() {
	once.Do(func() {
		setDefaults()
		root, err := getProjectRoot()
		if err != nil {
			GetLogger().Errorw("Error finding project root", "error", err)
		}
		viper.SetConfigType("yaml")

		viper.SetConfigName("config")
		viper.AddConfigPath(root)
		if err = viper.ReadInConfig(); err != nil {
			GetLogger().Errorw("Error reading config file", "error", err)
		}

		if isTestRun() {
			viper.SetConfigName("config_test")
			viper.AddConfigPath(root)
			if err = viper.MergeInConfig(); err != nil {
				GetLogger().Errorw("Error merging test config file", "error", err)
			}
		}
	})
}

func setDefaults() {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("caiyun.place_url", "https://api.caiyunapp.com/v2/place")
	viper.SetDefault("caiyun.weather_url", "https://api.caiyunapp.com/v2.5")
	viper.SetDefault("caiyun.lang", "zh_CN")
	viper.SetDefault("caiyun.timeout", "10s")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("place_store.driver", "redis")
	viper.SetDefault("place_store.namespace", "sunny_weather")
	viper.SetDefault("place_store.sqlite_path", "sunny_weather.db")
	viper.SetDefault("cache.expiration", "10m")
}

func getProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

func GetCaiyunPlaceURL() string {
	initConfig()
	return viper.GetString("caiyun.place_url")
}

func GetCaiyunWeatherURL() string {
	initConfig()
	return viper.GetString("caiyun.weather_url")
}

func GetCaiyunLang() string {
	initConfig()
	return viper.GetString("caiyun.lang")
}

// GetCaiyunToken reads the API token from the environment, loading .env first if present.
func GetCaiyunToken() string {
	_ = godotenv.Load()
	return os.Getenv("CAIYUN_TOKEN")
}

// GetHTTPClientTimeout returns the timeout applied to outgoing Caiyun requests.
// Defaults to 10s if not set or invalid.
func GetHTTPClientTimeout() time.Duration {
	initConfig()
	return parseDuration(viper.GetString("caiyun.timeout"), 10*time.Second)
}

func GetRedisAddr() string {
	initConfig()
	return viper.GetString("redis.addr")
}

func GetServerPort() string {
	initConfig()
	serverPort := viper.GetString("server.port")
	return serverPort
}

func GetServerTimeout(key string) string {
	initConfig()
	return viper.GetString("server." + key)
}

// GetServerTimeoutDuration parses a server.* timeout, falling back to def.
func GetServerTimeoutDuration(key string, def time.Duration) time.Duration {
	return parseDuration(GetServerTimeout(key), def)
}

// GetPlaceStoreDriver returns which backend keeps the selected place: "redis" or "sqlite".
func GetPlaceStoreDriver() string {
	initConfig()
	return viper.GetString("place_store.driver")
}

func GetPlaceStoreNamespace() string {
	initConfig()
	return viper.GetString("place_store.namespace")
}

func GetSQLitePath() string {
	initConfig()
	return viper.GetString("place_store.sqlite_path")
}

func GetCacheExpiration() string {
	initConfig()
	return viper.GetString("cache.expiration")
}

// GetSearchCacheExpiration returns how long place search results stay in Redis.
func GetSearchCacheExpiration() time.Duration {
	return parseDuration(GetCacheExpiration(), 10*time.Minute)
}

// ReloadConfigForTest resets the config singleton and reloads Viper config. Use only in tests.
func ReloadConfigForTest() {
	once = sync.Once{}
	initConfig()
}

func GetLogger() *zap.SugaredLogger {
	loggerOnce.Do(func() {
		l, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		logger = l.Sugar()
	})
	return logger
}

// GetRateLimiterCleanupTimeout returns the rate limiter cleanup timeout as a time.Duration.
// Defaults to 3m if not set or invalid.
func GetRateLimiterCleanupTimeout() time.Duration {
	initConfig()
	return parseDuration(viper.GetString("rate_limiter.cleanup_timeout"), 3*time.Minute)
}

// GetGlobalRateLimiterConfig returns the rate (requests per minute) and burst for the global rate limiter.
func GetGlobalRateLimiterConfig() (rate float64, burst int) {
	initConfig()
	rate = viper.GetFloat64("rate_limiter.global.rate")
	if rate == 0 {
		rate = 10
	}
	burst = viper.GetInt("rate_limiter.global.burst")
	if burst == 0 {
		burst = 10
	}
	return
}

// GetParamRateLimiterConfig returns the rate (requests per minute) and burst for the param rate limiter.
func GetParamRateLimiterConfig() (rate float64, burst int) {
	initConfig()
	rate = viper.GetFloat64("rate_limiter.param.rate")
	if rate == 0 {
		rate = 2
	}
	burst = viper.GetInt("rate_limiter.param.burst")
	if burst == 0 {
		burst = 2
	}
	return
}

func parseDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}

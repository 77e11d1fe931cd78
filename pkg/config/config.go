package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Redis     RedisConfig
	Profiling ProfilingConfig
	Feed      FeedConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey string
}

type RedisConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

// ProfilingConfig bounds and weights the interaction channels feeding the
// style affinity profile. Quotas are a relative-importance weighting and are
// not required to sum to 1.0.
type ProfilingConfig struct {
	NUpvote      int
	NOpen        int
	NBuy         int
	NShowTime    int
	NStyleFilter int

	QuotaUpvote      float64
	QuotaOpen        float64
	QuotaBuy         float64
	QuotaShowTime    float64
	QuotaStyleFilter float64
}

type FeedConfig struct {
	MaxOutfits   int
	DefaultOrder string
}

type RateLimitConfig struct {
	MaxCallsPerSecondByIP int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, errors.New("invalid redis database")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Styleflame API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "styleflame"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
		Redis: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
		},
		Profiling: ProfilingConfig{
			NUpvote:      getEnvInt("PROFILING_N_UPVOTE", 10),
			NOpen:        getEnvInt("PROFILING_N_OPEN", 10),
			NBuy:         getEnvInt("PROFILING_N_BUY", 10),
			NShowTime:    getEnvInt("PROFILING_N_SHOW_TIME", 100),
			NStyleFilter: getEnvInt("PROFILING_N_STYLE_FILTER", 10),

			QuotaUpvote:      getEnvFloat("PROFILING_QUOTA_UPVOTE", 0.2),
			QuotaOpen:        getEnvFloat("PROFILING_QUOTA_OPEN", 0.15),
			QuotaBuy:         getEnvFloat("PROFILING_QUOTA_BUY", 0.3),
			QuotaShowTime:    getEnvFloat("PROFILING_QUOTA_SHOW_TIME", 0.05),
			QuotaStyleFilter: getEnvFloat("PROFILING_QUOTA_STYLE_FILTER", 0.3),
		},
		Feed: FeedConfig{
			MaxOutfits:   getEnvInt("FEED_MAX_OUTFITS", 8),
			DefaultOrder: getEnv("FEED_DEFAULT_ORDER", "updatedAt"),
		},
		RateLimit: RateLimitConfig{
			MaxCallsPerSecondByIP: getEnvInt("RATE_LIMIT_PER_SECOND_BY_IP", 10),
		},
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("missing jwt secret")
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}

	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	}

	return defaultVal
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Redis    RedisConfig
	Mixer    MixerConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port           string
	RequestTimeout time.Duration
	AllowOrigins   []string
}

type DatabaseConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	AutoMigrate bool
}

// JWTConfig is optional; without a secret feedback is always anonymous.
type JWTConfig struct {
	SecretKey string
}

type RedisConfig struct {
	Enabled       bool
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration
}

// MixerConfig carries the recommendation engine tunables. Zero values fall
// back to the engine defaults.
type MixerConfig struct {
	MinShare          float64
	CombinationCap    int
	AcceptScore       float64
	MaxSuggestions    int
	WindowTolerance   float64
	DistancePenalty   float64
	ConstraintBonus   float64
	DefaultMaxLiquids int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, errors.New("invalid redis database")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Mix Master API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			AllowOrigins: []string{getEnv("CORS_ORIGIN", "http://localhost:3000")},
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "mix_master"),
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
	}

	if cfg.Server.RequestTimeout, err = getEnvDuration("REQUEST_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.Database.AutoMigrate, err = getEnvBool("DB_AUTO_MIGRATE", false); err != nil {
		return nil, err
	}
	if cfg.Redis.Enabled, err = getEnvBool("REDIS_ENABLED", false); err != nil {
		return nil, err
	}
	if cfg.Redis.CacheTTL, err = getEnvDuration("SUGGESTION_CACHE_TTL", 5*time.Minute); err != nil {
		return nil, err
	}

	if cfg.Mixer, err = loadMixer(); err != nil {
		return nil, err
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	return cfg, nil
}

func loadMixer() (MixerConfig, error) {
	var (
		m   MixerConfig
		err error
	)

	if m.MinShare, err = getEnvFloat("MIXER_MIN_SHARE", 0); err != nil {
		return m, err
	}
	if m.CombinationCap, err = getEnvInt("MIXER_COMBINATION_CAP", 0); err != nil {
		return m, err
	}
	if m.AcceptScore, err = getEnvFloat("MIXER_ACCEPT_SCORE", 0); err != nil {
		return m, err
	}
	if m.MaxSuggestions, err = getEnvInt("MIXER_MAX_SUGGESTIONS", 0); err != nil {
		return m, err
	}
	if m.WindowTolerance, err = getEnvFloat("MIXER_WINDOW_TOLERANCE", 0); err != nil {
		return m, err
	}
	if m.DistancePenalty, err = getEnvFloat("MIXER_DISTANCE_PENALTY", 0); err != nil {
		return m, err
	}
	if m.ConstraintBonus, err = getEnvFloat("MIXER_CONSTRAINT_BONUS", 0); err != nil {
		return m, err
	}
	if m.DefaultMaxLiquids, err = getEnvInt("MIXER_DEFAULT_MAX_LIQUIDS", 0); err != nil {
		return m, err
	}

	return m, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvFloat(key string, defaultVal float64) (float64, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func getEnvBool(key string, defaultVal bool) (bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

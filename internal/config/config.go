package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type AppCfg struct{ Env, Port, BaseURL string }
type DBCfg struct{ DSN string }
type RedisCfg struct {
	Addr     string
	CacheTTL time.Duration
}

type SecurityCfg struct {
	AdminToken string // guards all /api/v1 admin routes
}

type Cfg struct {
	App   AppCfg
	DB    DBCfg
	Redis RedisCfg
	Sec   SecurityCfg
}

func Load() Cfg {
	// 1) Load .env into process env (if file exists)
	_ = godotenv.Load()

	// 2) Read from env via viper
	viper.AutomaticEnv()
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("CACHE_TTL_SECONDS", 60)

	cfg := Cfg{
		App: AppCfg{
			Env:     viper.GetString("APP_ENV"),
			Port:    viper.GetString("APP_PORT"),
			BaseURL: viper.GetString("APP_BASE_URL"),
		},
		DB: DBCfg{DSN: viper.GetString("DB_DSN")},
		Redis: RedisCfg{
			Addr:     viper.GetString("REDIS_ADDR"),
			CacheTTL: time.Duration(viper.GetInt("CACHE_TTL_SECONDS")) * time.Second,
		},
		Sec: SecurityCfg{
			AdminToken: strings.TrimSpace(viper.GetString("ADMIN_TOKEN")),
		},
	}

	// 3) Fail fast on required settings
	if cfg.DB.DSN == "" {
		log.Fatal().Msg("DB_DSN is required")
	}
	if cfg.Sec.AdminToken == "" {
		log.Fatal().Msg("ADMIN_TOKEN is required")
	}

	return cfg
}

package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Cache    CacheConfig    `yaml:"cache"`
	Services ServicesConfig `yaml:"services"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// CacheConfig holds settings for the in-memory projection cache.
type CacheConfig struct {
	Capacity           int           `yaml:"capacity"            env:"CACHE_CAPACITY"            env-default:"100000"`
	NumShards          int           `yaml:"num_shards"          env:"CACHE_NUM_SHARDS"          env-default:"256"`
	TTL                time.Duration `yaml:"ttl"                 env:"CACHE_TTL"                 env-default:"24h"`
	EvictionPercentage int           `yaml:"eviction_percentage" env:"CACHE_EVICTION_PERCENTAGE" env-default:"10"`
	LatestLimit        int           `yaml:"latest_limit"        env:"CACHE_LATEST_LIMIT"        env-default:"25"`
}

// ServicesConfig holds the base URLs of the sibling services entities are
// hydrated from.
type ServicesConfig struct {
	RemarksURL string        `yaml:"remarks_url" env:"SERVICES_REMARKS_URL" env-required:"true"`
	UsersURL   string        `yaml:"users_url"   env:"SERVICES_USERS_URL"   env-required:"true"`
	Timeout    time.Duration `yaml:"timeout"     env:"SERVICES_TIMEOUT"     env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

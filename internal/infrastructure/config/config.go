package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWT      JWTConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	Delivery DeliveryConfig
	Page     PageConfig

	// EventWorkers is the number of sharded status-event workers.
	EventWorkers int `env:"EVENT_WORKERS, default=8"`
}

type JWTConfig struct {
	Secret     string        `env:"JWT_SECRET"`
	AccessTTL  time.Duration `env:"JWT_ACCESS_TTL,  default=5m"`
	RefreshTTL time.Duration `env:"JWT_REFRESH_TTL, default=24h"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=orderhub"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// DeliveryConfig holds the ETA model constants. Defaults match the Kyiv
// warehouse deployment.
type DeliveryConfig struct {
	WarehouseLat     float64 `env:"WAREHOUSE_LAT,        default=50.4501"`
	WarehouseLng     float64 `env:"WAREHOUSE_LNG,        default=30.5234"`
	AvgSpeedKmPerMin float64 `env:"AVG_SPEED_KM_PER_MIN, default=0.5"`
	CO2PerKmGrams    float64 `env:"CO2_PER_KM_GRAMS,     default=121"`
	MergeRadiusKm    float64 `env:"MERGE_RADIUS_KM,      default=3"`
}

// PageConfig bounds cursor-paginated list endpoints.
type PageConfig struct {
	DefaultLimit int `env:"PAGE_DEFAULT_LIMIT, default=10"`
	MaxLimit     int `env:"PAGE_MAX_LIMIT,     default=100"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

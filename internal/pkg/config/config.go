package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/fleetflow/fleetflow/internal/pkg/models"
)

// InitConfig loads configuration from config/<name>.yaml (when present) and
// the environment. Environment variables use underscores for nesting, e.g.
// SERVER_PORT overrides server.port.
func InitConfig(name string) (*models.Config, error) {
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; env and defaults still apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &models.Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "fleetflow")
	v.SetDefault("app.environment", "local")
	v.SetDefault("app.version", "development")
	v.SetDefault("app.debug", false)

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 9980)
	v.SetDefault("server.shutdown_timeout", 30)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_conns", 10)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("nsq.address", "localhost:4150")
	v.SetDefault("nsq.topic_prefix", "fleet")
	v.SetDefault("nsq.enabled", false)

	v.SetDefault("jwt.expiration", 60)
	v.SetDefault("jwt.issuer", "fleetflow")

	v.SetDefault("logger.level", "info")

	v.SetDefault("snapshot.backend", string(models.SnapshotBackendNone))
	v.SetDefault("snapshot.key", "fleetflow:snapshot")

	v.SetDefault("seed.enabled", true)
}

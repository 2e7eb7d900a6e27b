package models

// Config is the application configuration, loaded once at startup
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	NSQ      NSQConfig      `mapstructure:"nsq"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	APIKey   APIKeyConfig   `mapstructure:"api_key"`
	Logger   LoggerConfig   `mapstructure:"logger"`
	Snapshot SnapshotConfig `mapstructure:"snapshot"`
	Seed     SeedConfig     `mapstructure:"seed"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

// AppConfig holds application identity settings
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Version     string `mapstructure:"version"`
	Debug       bool   `mapstructure:"debug"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // seconds
}

// DatabaseConfig holds PostgreSQL settings for the snapshot adapter
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"ssl_mode"`
	MaxConns int    `mapstructure:"max_conns"`
}

// RedisConfig holds Redis settings for the snapshot adapter
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// NSQConfig holds the change-event publisher settings
type NSQConfig struct {
	Address     string `mapstructure:"address"`
	TopicPrefix string `mapstructure:"topic_prefix"`
	Enabled     bool   `mapstructure:"enabled"`
}

// JWTConfig holds token issuance settings
type JWTConfig struct {
	Secret     string `mapstructure:"secret"`
	Expiration int    `mapstructure:"expiration"` // minutes
	Issuer     string `mapstructure:"issuer"`
}

// APIKeyConfig guards internal endpoints
type APIKeyConfig struct {
	Keys map[string]string `mapstructure:"keys"` // caller name -> key
}

// LoggerConfig holds logging settings
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	FilePath string `mapstructure:"file_path"`
}

// SnapshotBackend selects the persistence collaborator
type SnapshotBackend string

const (
	SnapshotBackendNone     SnapshotBackend = "none"
	SnapshotBackendPostgres SnapshotBackend = "postgres"
	SnapshotBackendRedis    SnapshotBackend = "redis"
)

// SnapshotConfig holds snapshot load/save settings
type SnapshotConfig struct {
	Backend SnapshotBackend `mapstructure:"backend"`
	Key     string          `mapstructure:"key"` // redis key / postgres row name
}

// SeedConfig controls loading the demo dataset into an empty store
type SeedConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// AuthConfig lists the dashboard operator accounts
type AuthConfig struct {
	Operators []Operator `mapstructure:"operators"`
}

package models

// Config holds the full application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Store    StoreConfig
	Redis    RedisConfig
	Postgres PostgresConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Provider ProviderConfig
	Admin    AdminConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
}

// AppConfig holds application metadata
type AppConfig struct {
	Name        string `json:"name"`
	Environment string `json:"environment"`
	Debug       bool   `json:"debug"`
	Version     string `json:"version"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string `json:"host"`
	Port            int    `json:"port"`
	ReadTimeout     int    `json:"read_timeout"`
	WriteTimeout    int    `json:"write_timeout"`
	ShutdownTimeout int    `json:"shutdown_timeout"`
}

// StoreConfig selects the key-value store backend
type StoreConfig struct {
	// Backend is one of "redis", "postgres" or "memory"
	Backend string `json:"backend"`
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Password string `json:"password"`
	DB       int    `json:"db"`
	PoolSize int    `json:"pool_size"`
}

// PostgresConfig holds PostgreSQL connection configuration
type PostgresConfig struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Database  string `json:"database"`
	SSLMode   string `json:"ssl_mode"`
	MaxConns  int    `json:"max_conns"`
	IdleConns int    `json:"idle_conns"`
}

// NATSConfig holds NATS connection configuration
type NATSConfig struct {
	URL string `json:"url"`
}

// JWTConfig holds JWT token configuration
type JWTConfig struct {
	Secret     string `json:"secret"`
	Expiration int    `json:"expiration"` // minutes
	Issuer     string `json:"issuer"`
}

// ProviderConfig holds the optional external identity provider configuration.
// An empty BaseURL means no provider is configured and every identity call is
// served by the local mock path.
type ProviderConfig struct {
	BaseURL          string `json:"base_url"`
	Timeout          int    `json:"timeout"` // seconds
	AuthStateSubject string `json:"auth_state_subject"`
}

// AdminConfig holds administrative API configuration
type AdminConfig struct {
	APIKey string `json:"api_key"`
}

// NewRelicConfig holds New Relic configuration
type NewRelicConfig struct {
	LicenseKey  string `json:"license_key"`
	AppName     string `json:"app_name"`
	Enabled     bool   `json:"enabled"`
	ForwardLogs bool   `json:"forward_logs"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string `json:"level"`
	FilePath string `json:"file_path"`
}

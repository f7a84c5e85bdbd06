package models

import "time"

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Mongo     MongoConfig
	NATS      NATSConfig
	NSQ       NSQConfig
	JWT       JWTConfig
	APIKey    APIKeyConfig
	Services  ServicesConfig
	Search    SearchConfig
	Shipments ShipmentsConfig
	Payments  PaymentsConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
	Timezone    string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// MongoConfig contains MongoDB connection configuration
type MongoConfig struct {
	URI            string
	Database       string
	HookCollection string
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// NSQConfig contains NSQ producer configuration
type NSQConfig struct {
	Address string
	Topic   string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// APIKeyConfig holds the keys services use to call each other's internal routes
type APIKeyConfig struct {
	UsersService     string
	TripsService     string
	ShipmentsService string
	Reviewer         string
}

// ServicesConfig contains URLs for other services
type ServicesConfig struct {
	UsersServiceURL string
	TripsServiceURL string
}

// SearchConfig contains trip search configuration
type SearchConfig struct {
	CacheTTL               time.Duration
	RequireVerifiedVehicle bool
	GeohashPrecision       uint
}

// ShipmentsConfig contains shipment service configuration
type ShipmentsConfig struct {
	MaxPINAttempts int
	PINLockout     time.Duration
}

// PaymentsConfig contains payment relay configuration
type PaymentsConfig struct {
	APIURL          string
	AccessToken     string
	Sandbox         bool
	NotificationURL string
	Timeout         time.Duration
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

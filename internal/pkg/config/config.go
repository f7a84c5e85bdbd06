package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/viajemos/viajemos/internal/pkg/constants"
	"github.com/viajemos/viajemos/internal/pkg/models"
)

// InitConfig loads configuration for a service. Locally the env file at
// configPath is loaded into the process environment first.
func InitConfig(configPath string) *models.Config {
	v := newViper()
	if v.GetString("APP_ENV") == "local" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfig(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_TIMEZONE", "America/Argentina/Buenos_Aires")

	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("DB_DRIVER", "pgx")
	v.SetDefault("DB_SSL_MODE", "disable")

	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "viajemos")
	v.SetDefault("MONGO_HOOK_COLLECTION", "hooks")

	v.SetDefault("NATS_URL", "nats://localhost:4222")
	v.SetDefault("NSQ_ADDRESS", "localhost:4150")
	v.SetDefault("NSQ_TOPIC", constants.TopicPaymentNotifications)

	v.SetDefault("JWT_EXPIRATION", 60*24)
	v.SetDefault("JWT_ISSUER", "viajemos")

	v.SetDefault("USERS_SERVICE_URL", "http://localhost:9991")
	v.SetDefault("TRIPS_SERVICE_URL", "http://localhost:9992")

	v.SetDefault("SEARCH_CACHE_TTL", "30s")
	v.SetDefault("SEARCH_REQUIRE_VERIFIED_VEHICLE", false)
	v.SetDefault("SEARCH_GEOHASH_PRECISION", 6)

	v.SetDefault("SHIPMENTS_MAX_PIN_ATTEMPTS", 5)
	v.SetDefault("SHIPMENTS_PIN_LOCKOUT", "15m")

	v.SetDefault("PAYMENTS_API_URL", "https://api.mercadopago.com")
	v.SetDefault("PAYMENTS_SANDBOX", true)
	v.SetDefault("PAYMENTS_TIMEOUT", "10s")

	v.SetDefault("LOG_LEVEL", "info")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")
	configs.App.Timezone = v.GetString("APP_TIMEZONE")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Database config
	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// Mongo config
	configs.Mongo.URI = v.GetString("MONGO_URI")
	configs.Mongo.Database = v.GetString("MONGO_DATABASE")
	configs.Mongo.HookCollection = v.GetString("MONGO_HOOK_COLLECTION")

	// Messaging config
	configs.NATS.URL = v.GetString("NATS_URL")
	configs.NSQ.Address = v.GetString("NSQ_ADDRESS")
	configs.NSQ.Topic = v.GetString("NSQ_TOPIC")

	// JWT config
	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Expiration = v.GetInt("JWT_EXPIRATION")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	// API keys
	configs.APIKey.UsersService = v.GetString("USERS_SERVICE_API_KEY")
	configs.APIKey.TripsService = v.GetString("TRIPS_SERVICE_API_KEY")
	configs.APIKey.ShipmentsService = v.GetString("SHIPMENTS_SERVICE_API_KEY")
	configs.APIKey.Reviewer = v.GetString("REVIEWER_API_KEY")

	// Services config
	configs.Services.UsersServiceURL = v.GetString("USERS_SERVICE_URL")
	configs.Services.TripsServiceURL = v.GetString("TRIPS_SERVICE_URL")

	// Search config
	configs.Search.CacheTTL = durationOr(v, "SEARCH_CACHE_TTL", 30*time.Second)
	configs.Search.RequireVerifiedVehicle = v.GetBool("SEARCH_REQUIRE_VERIFIED_VEHICLE")
	configs.Search.GeohashPrecision = v.GetUint("SEARCH_GEOHASH_PRECISION")

	// Shipments config
	configs.Shipments.MaxPINAttempts = v.GetInt("SHIPMENTS_MAX_PIN_ATTEMPTS")
	configs.Shipments.PINLockout = durationOr(v, "SHIPMENTS_PIN_LOCKOUT", 15*time.Minute)

	// Payments config
	configs.Payments.APIURL = strings.TrimRight(v.GetString("PAYMENTS_API_URL"), "/")
	configs.Payments.AccessToken = v.GetString("PAYMENTS_ACCESS_TOKEN")
	configs.Payments.Sandbox = v.GetBool("PAYMENTS_SANDBOX")
	configs.Payments.NotificationURL = v.GetString("PAYMENTS_NOTIFICATION_URL")
	configs.Payments.Timeout = durationOr(v, "PAYMENTS_TIMEOUT", 10*time.Second)

	// NewRelic config
	configs.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")
	configs.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.ForwardLogs = v.GetBool("NEW_RELIC_FORWARD_LOGS")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return configs
}

func durationOr(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	d := v.GetDuration(key)
	if d <= 0 {
		log.Printf("Warning: Invalid duration value for %s, using default: %s", key, fallback)
		return fallback
	}
	return d
}

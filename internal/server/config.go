package server

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/elskow/tasktrack/internal/auth"
	"github.com/elskow/tasktrack/internal/config"
	"github.com/elskow/tasktrack/internal/storage"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"

	DefaultConfigDir = "./config/server"
)

// Env returns APP_ENV, defaulting to development.
func Env() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = EnvDevelopment
	}
	return env
}

// LoadConfig reads config.toml from TASKTRACK_CONFIG_DIR or ./config/server.
func LoadConfig() (*config.AppConfig, error) {
	dir := os.Getenv("TASKTRACK_CONFIG_DIR")
	if dir == "" {
		dir = DefaultConfigDir
	}
	return LoadConfigFrom(dir)
}

// LoadConfigFrom reads config.toml from dir. A missing file leaves the
// defaults in place; environment variables override both.
func LoadConfigFrom(dir string) (*config.AppConfig, error) {
	env := Env()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)

	setDefaults(v)

	v.SetEnvPrefix("TASKTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("mongo.uri", "TASKTRACK_MONGO_URI", "MONGODB_URI")
	_ = v.BindEnv("auth.jwt_secret", "TASKTRACK_AUTH_JWT_SECRET", "JWT_SECRET")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config config.AppConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Load environment-specific configurations
	if envSettings := v.GetStringMap(fmt.Sprintf("grpc.%s", env)); len(envSettings) > 0 {
		if err := v.UnmarshalKey(fmt.Sprintf("grpc.%s", env), &config.GRPC); err != nil {
			return nil, fmt.Errorf("error unmarshaling env config: %w", err)
		}
	}

	if config.Auth.JWTSecret == "" {
		if env == EnvProduction {
			return nil, errors.New("auth.jwt_secret must be set in production")
		}
		config.Auth.JWTSecret = "development-secret-change-me"
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "50051")

	v.SetDefault("grpc.enable_reflection", true)
	v.SetDefault("grpc.max_receive_message_size", 4<<20)
	v.SetDefault("grpc.max_send_message_size", 4<<20)

	v.SetDefault("auth.issuer", auth.DefaultIssuer)
	v.SetDefault("auth.audience", auth.DefaultAudience)
	v.SetDefault("auth.access_token_duration", auth.DefaultAccessTokenDuration)
	v.SetDefault("auth.refresh_token_duration", auth.DefaultRefreshTokenDuration)
	v.SetDefault("auth.refresh_token_enabled", true)
	v.SetDefault("auth.password_cost", auth.DefaultPasswordCost)
	v.SetDefault("auth.max_login_attempts", auth.DefaultMaxLoginAttempts)
	v.SetDefault("auth.lock_duration", auth.DefaultLockDuration)

	v.SetDefault("storage.backend", storage.KindMongo)
	v.SetDefault("storage.connect_timeout", "5s")
	v.SetDefault("storage.file_dir", "data")

	v.SetDefault("mongo.uri", "")
	v.SetDefault("mongo.database", "")
	v.SetDefault("mongo.socket_timeout", "45s")
	v.SetDefault("mongo.max_pool_size", 10)
	v.SetDefault("mongo.min_pool_size", 0)
	v.SetDefault("mongo.max_conn_idle_time", "30s")

	v.SetDefault("database.host", "")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.auto_migrate", true)

	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("ratelimit.login_attempts", 5)
	v.SetDefault("ratelimit.login_window", "15m")
	v.SetDefault("ratelimit.register_limit", 3)
	v.SetDefault("ratelimit.register_window", "1h")
}

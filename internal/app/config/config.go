package config

import (
	"dr-portal/internal/pkg/constvars"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ConfigFileEnv names an optional YAML/JSON/TOML file layered under the environment.
const ConfigFileEnv = "DR_PORTAL_CONFIG"

func init() {
	godotenv.Load()
}

var internalDefaults = map[string]interface{}{
	"app.env":                            constvars.AppEnvDevelopment,
	"app.port":                           ":8080",
	"app.version":                        "v1.0",
	"app.timezone":                       "Asia/Shanghai",
	"app.allowed_origins":                constvars.DefaultAllowedOrigin,
	"app.max_requests":                   50,
	"app.login_max_requests_per_minute":  10,
	"app.upload_requests_per_second":     2,
	"app.upload_block_time_in_seconds":   30,
	"app.shutdown_timeout_in_seconds":    10,
	"app.request_body_limit_in_megabyte": 20,

	"db_api.base_url":           "http://localhost:5000/api",
	"db_api.timeout_in_seconds": 30,
	"db_api.default_headers":    "",
	"ai_api.base_url":           "http://localhost:6006",
	"ai_api.timeout_in_seconds": 30,
	"ai_api.default_headers":    "",

	"session.store":                 "redis",
	"session.expired_time_in_hours": 12,
	"session.cookie_secure":         false,

	"jwt.secret": "",

	"minio.bucket_name":                           "lesion-masks",
	"minio.pre_signed_url_object_expiry_in_hours": 24,
	"rabbitmq.diagnosis_event_queue":              "diagnosis_events",
	"mongodb.db_name":                             "dr_portal",
	"cli.session_dir":                             "",
	"cli.log_level":                               "warn",
}

var driverDefaults = map[string]interface{}{
	"redis.host":     "localhost",
	"redis.port":     "6379",
	"redis.password": "",
	"redis.db":       0,

	"logger.level":                 "info",
	"logger.output_filename":       "logger.log",
	"logger.output_error_filename": "logger_error.log",

	"mongodb.enabled":  false,
	"mongodb.host":     "localhost",
	"mongodb.port":     "27017",
	"mongodb.username": "",
	"mongodb.password": "",

	"rabbitmq.enabled":  false,
	"rabbitmq.host":     "localhost",
	"rabbitmq.port":     "5672",
	"rabbitmq.username": "guest",
	"rabbitmq.password": "guest",

	"minio.enabled":  false,
	"minio.host":     "localhost",
	"minio.port":     "9000",
	"minio.username": "minioadmin",
	"minio.password": "minioadmin",
	"minio.use_ssl":  false,
}

func newViper(defaults map[string]interface{}) (*viper.Viper, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile := os.Getenv(ConfigFileEnv); configFile != "" {
		v.SetConfigFile(configFile)
		err := v.ReadInConfig()
		if err != nil {
			return nil, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	}
	return v, nil
}

// LoadInternalConfig reads the application settings from the environment.
func LoadInternalConfig() (*InternalConfig, error) {
	v, err := newViper(internalDefaults)
	if err != nil {
		return nil, err
	}

	cfg := new(InternalConfig)
	err = v.Unmarshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("decode internal config: %w", err)
	}

	if cfg.App.Env == constvars.AppEnvProduction && cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set when APP_ENV is %s", constvars.AppEnvProduction)
	}
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = "dev-secret-change-me"
	}
	return cfg, nil
}

// LoadDriverConfig reads the infrastructure connection settings from the environment.
func LoadDriverConfig() (*DriverConfig, error) {
	v, err := newViper(driverDefaults)
	if err != nil {
		return nil, err
	}

	cfg := new(DriverConfig)
	err = v.Unmarshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("decode driver config: %w", err)
	}
	return cfg, nil
}

func NewInternalConfig() *InternalConfig {
	cfg, err := LoadInternalConfig()
	if err != nil {
		log.Fatalf("Error loading internal config: %v", err)
	}
	return cfg
}

func NewDriverConfig() *DriverConfig {
	cfg, err := LoadDriverConfig()
	if err != nil {
		log.Fatalf("Error loading driver config: %v", err)
	}
	return cfg
}

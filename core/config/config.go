package config

import (
	"reflect"
	"strings"

	"inventory-sync/core/database"
	"inventory-sync/core/logger"
	"inventory-sync/core/server"
	"inventory-sync/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application, divided into partial
// configurations per concern.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage (product images).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the catalog database connection.
	Database database.Config `mapstructure:"database"`
	// Sync holds configuration for the reconciliation runs.
	Sync SyncConfig `mapstructure:"sync"`
}

// SyncConfig holds configuration for reconciliation runs.
type SyncConfig struct {
	// VendorsFile is the path to the YAML file listing configured vendors.
	VendorsFile string `mapstructure:"vendors_file" default:"vendors.yaml"`
	// ImagePrefix is the object storage prefix for product images.
	ImagePrefix string `mapstructure:"image_prefix" default:"products"`
}

// LoadConfig loads configuration from environment variables and an
// optional .env file in the given directory. Environment variables map to
// nested keys (e.g. SERVER_PORT -> server.port), with defaults taken from
// the struct tags.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Missing .env is fine (e.g. production).
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues walks the config struct recursively and registers each key's
// default value in viper, based on the 'default' and 'mapstructure' tags.
// Registering every key (even with an empty default) is required for
// AutomaticEnv to pick the key up.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}

package config

import (
	"reflect"
	"strings"

	"lab-admin/core/database"
	"lab-admin/core/docstore"
	"lab-admin/core/logger"
	"lab-admin/core/server"
	"lab-admin/core/storage"
	"lab-admin/feature/publications/dblp"
	"lab-admin/feature/upload"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is built once at startup and passed by value or pointer into constructors.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Store selects the document store backend.
	Store docstore.Config `mapstructure:"store"`
	// Database is used when Store.Driver is sql.
	Database database.Config `mapstructure:"database"`
	// Storage is used when Upload.Backend is s3.
	Storage storage.Config `mapstructure:"storage"`
	Upload  upload.Config  `mapstructure:"upload"`
	// Scraper holds the DBLP crawl settings.
	Scraper dblp.Config `mapstructure:"scraper"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if present; values in it win over the process environment
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Missing .env is fine in production.
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// 2. Register every key with its default from the struct tags
	bindValues(v, Config{}, "")

	// 3. Map environment variables to nested keys (SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. Decode into the typed tree
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues walks the struct and registers every mapstructure key with its
// 'default' tag so AutomaticEnv can resolve it.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	// Pointers are walked through their element type
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

		// Nested sections recurse with the dotted prefix
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Set even an empty default so AutomaticEnv sees the key
		v.SetDefault(key, field.Tag.Get("default"))
	}
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once        sync.Once
	initErr     error
	initialized bool
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		// Set default values
		setDefaults()

		// Set up environment variable reading for overrides
		viper.SetEnvPrefix("PODFORGE")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		// Load config from fixed location (cleaned for safety)
		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		// Try to read the config file
		if err := viper.ReadInConfig(); err != nil {
			// If the config file doesn't exist, just use defaults and env vars
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
			// Config file doesn't exist, which is fine - we'll use defaults
		}

		// Validate the configuration
		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
			return
		}

		initialized = true
	})

	return initErr
}

// IsInitialized reports whether Init has completed successfully
func IsInitialized() bool {
	return initialized
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// Get returns a config value by key using Viper directly
func Get(key string) any {
	return viper.Get(key)
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetFloat64 returns a float64 config value
func GetFloat64(key string) float64 {
	return viper.GetFloat64(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		// Database is optional, so we don't return an error
		// but we log a warning
		fmt.Println("Warning: No database path configured")
	}

	provider := viper.GetString("tts.provider")
	if provider != "openai" && provider != "google" {
		return fmt.Errorf("invalid tts provider: %s (must be openai or google)", provider)
	}

	backend := viper.GetString("storage.backend")
	if backend != "filesystem" && backend != "s3" {
		return fmt.Errorf("invalid storage backend: %s (must be filesystem or s3)", backend)
	}

	// Validate secrets aren't using placeholder values
	if err := validateSecrets(); err != nil {
		return err
	}

	// Auto-correct invalid TTS concurrency
	if viper.GetInt("generation.max_concurrent_tts") <= 0 {
		viper.Set("generation.max_concurrent_tts", 4)
	}

	// Auto-correct invalid request budget
	if viper.GetDuration("generation.request_budget") <= 0 {
		viper.Set("generation.request_budget", 300*time.Second)
	}

	return nil
}

// validateSecrets validates that API keys are not using placeholder values
func validateSecrets() error {
	// Check for production environment
	env := viper.GetString("environment")
	isProduction := env == "production" || env == "prod"

	// List of placeholder values that shouldn't be used
	placeholders := []string{
		"YOUR_KEY_HERE",
		"YOUR_SECRET_HERE",
		"YOUR_API_KEY",
		"YOUR_API_SECRET",
		"changeme",
		"CHANGEME",
		"",
	}

	// Check OpenAI API key
	openaiKey := viper.GetString("openai.api_key")
	for _, placeholder := range placeholders {
		if openaiKey == placeholder {
			if isProduction {
				return fmt.Errorf("invalid OpenAI API key: cannot use placeholder values in production")
			}
			fmt.Println("Warning: OpenAI API key is using a placeholder value")
			break
		}
	}

	// Check JWT secret when auth is enabled
	if viper.GetBool("auth.enabled") {
		jwtSecret := viper.GetString("auth.jwt_secret")
		for _, placeholder := range placeholders {
			if jwtSecret == placeholder {
				if isProduction {
					return fmt.Errorf("invalid JWT secret: cannot use placeholder values in production")
				}
				fmt.Println("Warning: JWT secret is using a placeholder value - this is insecure!")
				break
			}
		}
	}

	// An S3 backend without a bucket can't store anything
	if viper.GetString("storage.backend") == "s3" && viper.GetString("storage.s3.bucket") == "" {
		if isProduction {
			return fmt.Errorf("storage backend is s3 but no bucket is configured")
		}
		fmt.Println("Warning: S3 storage backend selected without a bucket")
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Generation.MaxConcurrentTTS <= 0 {
		c.Generation.MaxConcurrentTTS = 4
	}

	if c.Generation.RequestBudget <= 0 {
		c.Generation.RequestBudget = 300 * time.Second
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Environment defaults
	viper.SetDefault("environment", "development")

	// Server defaults. The write timeout must outlast
	// generation.request_budget or the server cuts off synchronous
	// generation responses.
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 330*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Database defaults
	viper.SetDefault("database.path", "./data/podforge.db")
	viper.SetDefault("database.verbose", false)

	// Auth defaults
	viper.SetDefault("auth.enabled", false)
	viper.SetDefault("auth.jwt_secret", "")

	// OpenAI defaults
	viper.SetDefault("openai.api_key", "")
	viper.SetDefault("openai.base_url", "")
	viper.SetDefault("openai.chat_model", "gpt-4o-mini")
	viper.SetDefault("openai.tts_model", "tts-1")

	// Google TTS defaults
	viper.SetDefault("google_tts.language_code", "en-US")

	// TTS provider defaults
	viper.SetDefault("tts.provider", "openai")

	// Generation defaults
	viper.SetDefault("generation.request_budget", 300*time.Second)
	viper.SetDefault("generation.max_concurrent_tts", 4)
	viper.SetDefault("generation.script_temperature", 0.7)
	viper.SetDefault("generation.script_max_tokens", 4096)
	viper.SetDefault("generation.polish_enabled", true)
	viper.SetDefault("generation.polish_temperature", 0.2)
	viper.SetDefault("generation.polish_max_tokens", 500)

	// Storage defaults
	viper.SetDefault("storage.backend", "filesystem")
	viper.SetDefault("storage.filesystem.path", "./data/audio")
	viper.SetDefault("storage.filesystem.base_url", "/audio")
	viper.SetDefault("storage.s3.bucket", "")
	viper.SetDefault("storage.s3.prefix", "podcasts")
	viper.SetDefault("storage.s3.region", "us-east-1")
	viper.SetDefault("storage.s3.endpoint", "")
	viper.SetDefault("storage.s3.access_key", "")
	viper.SetDefault("storage.s3.secret_key", "")
	viper.SetDefault("storage.s3.public_base_url", "")
	viper.SetDefault("storage.s3.use_path_style", false)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.endpoints", map[string]int{
		"reads":      10,
		"generation": 1,
		"default":    10,
	})

	// Security defaults
	viper.SetDefault("security.enable_cors", true)
}

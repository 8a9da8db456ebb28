package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string           `mapstructure:"environment"`
	Server       ServerConfig     `mapstructure:"server"`
	Database     DatabaseConfig   `mapstructure:"database"`
	Auth         AuthConfig       `mapstructure:"auth"`
	OpenAI       OpenAIConfig     `mapstructure:"openai"`
	GoogleTTS    GoogleTTSConfig  `mapstructure:"google_tts"`
	TTS          TTSConfig        `mapstructure:"tts"`
	Generation   GenerationConfig `mapstructure:"generation"`
	Storage      StorageConfig    `mapstructure:"storage"`
	RateLimiting RateLimitConfig  `mapstructure:"rate_limiting"`
	Security     SecurityConfig   `mapstructure:"security"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	Verbose bool   `mapstructure:"verbose"`
}

// AuthConfig contains JWT authentication settings
type AuthConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	JWTSecret string `mapstructure:"jwt_secret"`
}

// OpenAIConfig contains OpenAI API settings for script synthesis and speech
// generation
type OpenAIConfig struct {
	APIKey    string `mapstructure:"api_key"`
	BaseURL   string `mapstructure:"base_url"`
	ChatModel string `mapstructure:"chat_model"`
	TTSModel  string `mapstructure:"tts_model"`
}

// GoogleTTSConfig contains Google Cloud Text-to-Speech settings; credentials
// are resolved through application default credentials
type GoogleTTSConfig struct {
	LanguageCode string `mapstructure:"language_code"`
}

// TTSConfig selects the default speech synthesis provider
type TTSConfig struct {
	Provider string `mapstructure:"provider"`
}

// GenerationConfig contains podcast generation pipeline settings
type GenerationConfig struct {
	RequestBudget     time.Duration `mapstructure:"request_budget"`
	MaxConcurrentTTS  int           `mapstructure:"max_concurrent_tts"`
	ScriptTemperature float64       `mapstructure:"script_temperature"`
	ScriptMaxTokens   int           `mapstructure:"script_max_tokens"`
	PolishEnabled     bool          `mapstructure:"polish_enabled"`
	PolishTemperature float64       `mapstructure:"polish_temperature"`
	PolishMaxTokens   int           `mapstructure:"polish_max_tokens"`
}

// StorageConfig contains artifact storage settings
type StorageConfig struct {
	Backend    string                  `mapstructure:"backend"`
	Filesystem FilesystemStorageConfig `mapstructure:"filesystem"`
	S3         S3StorageConfig         `mapstructure:"s3"`
}

// FilesystemStorageConfig configures the local-disk artifact store
type FilesystemStorageConfig struct {
	Path    string `mapstructure:"path"`
	BaseURL string `mapstructure:"base_url"`
}

// S3StorageConfig configures the S3 artifact store
type S3StorageConfig struct {
	Bucket        string `mapstructure:"bucket"`
	Prefix        string `mapstructure:"prefix"`
	Region        string `mapstructure:"region"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PublicBaseURL string `mapstructure:"public_base_url"`
	UsePathStyle  bool   `mapstructure:"use_path_style"`
}

// RateLimitConfig contains rate limiting settings
type RateLimitConfig struct {
	Enabled   bool           `mapstructure:"enabled"`
	Endpoints map[string]int `mapstructure:"endpoints"`
}

// SecurityConfig contains security settings
type SecurityConfig struct {
	EnableCORS bool `mapstructure:"enable_cors"`
}

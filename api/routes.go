package api

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/podforge/podforge-api/api/auth"
	"github.com/podforge/podforge-api/api/health"
	"github.com/podforge/podforge-api/api/podcasts"
	"github.com/podforge/podforge-api/api/scripts"
	"github.com/podforge/podforge-api/api/types"
	"github.com/podforge/podforge-api/api/version"
	"github.com/podforge/podforge-api/api/voices"
	_ "github.com/podforge/podforge-api/docs/swagger"
	"github.com/podforge/podforge-api/internal/services/artifacts"
	"github.com/podforge/podforge-api/internal/services/audio"
	authService "github.com/podforge/podforge-api/internal/services/auth"
	podcastsService "github.com/podforge/podforge-api/internal/services/podcasts"
	"github.com/podforge/podforge-api/internal/services/speech"
	"github.com/podforge/podforge-api/internal/services/synthesis"
	"github.com/podforge/podforge-api/pkg/config"
	"github.com/podforge/podforge-api/pkg/script"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// Load config for API routes
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	// Initialize services if not already set
	if deps == nil {
		deps = &types.Dependencies{}
	}

	if deps.Parser == nil {
		deps.Parser = script.NewParser()
	}

	// Config-level metadata surfaced by the health and voices handlers.
	// initializePodcastService refines these once credentials are checked.
	if deps.DefaultProvider == "" {
		deps.DefaultProvider = cfg.TTS.Provider
	}
	if deps.StorageBackend == "" {
		deps.StorageBackend = cfg.Storage.Backend
	}

	// Serve filesystem-stored audio so returned audio URLs resolve in local
	// deployments. Skipped when the base URL points at an external host.
	if cfg.Storage.Backend == "filesystem" && strings.HasPrefix(cfg.Storage.Filesystem.BaseURL, "/") {
		engine.Static(cfg.Storage.Filesystem.BaseURL, cfg.Storage.Filesystem.Path)
	}

	// Token validation boundary. With auth disabled the middleware runs every
	// request as a fixed local user instead of validating tokens.
	if deps.Auth == nil {
		secret := cfg.Auth.JWTSecret
		if secret == "" && !cfg.Auth.Enabled {
			// Never used for validation; the service only supplies the
			// local identity while auth is off.
			secret = "local-development-only"
		}
		svc, err := authService.NewService(secret)
		if err != nil {
			return fmt.Errorf("failed to initialize auth service: %w", err)
		}
		deps.Auth = svc
	}
	authHandler := auth.NewHandler(deps.Auth, cfg.Auth.Enabled)

	// API v1 routes, all behind the auth middleware
	v1 := engine.Group("/api/v1")
	v1.Use(authHandler.AuthMiddleware())
	v1.GET("/me", authHandler.Me)

	// Per-client rate limits. Sustained rates come from config with bursts at
	// double the rate. Generation endpoints hold an upstream LLM or TTS
	// connection for the whole request, so they get the strictest limit.
	var generationMiddleware, readMiddleware gin.HandlerFunc
	if cfg.RateLimiting.Enabled {
		readRate := endpointRate(cfg, "reads", 10)
		generationRate := endpointRate(cfg, "generation", 1)
		readMiddleware = PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, readRate, readRate*2)
		generationMiddleware = PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, generationRate, generationRate*2)
	} else {
		noop := func(c *gin.Context) { c.Next() }
		generationMiddleware, readMiddleware = noop, noop
	}

	// Register script parsing routes
	scriptsGroup := v1.Group("/scripts")
	scriptsGroup.Use(readMiddleware)
	scripts.RegisterRoutes(scriptsGroup, deps)

	// Register voice catalog routes
	voicesGroup := v1.Group("/voices")
	voicesGroup.Use(readMiddleware)
	voices.RegisterRoutes(voicesGroup, deps)

	// Register podcast job routes if the job store is available
	if deps.DB != nil && deps.DB.DB != nil {
		if deps.Podcasts == nil {
			if err := initializePodcastService(deps, cfg); err != nil {
				return err
			}
		}

		podcastGroup := v1.Group("/podcasts")
		podcasts.RegisterRoutes(podcastGroup, deps, generationMiddleware, readMiddleware)
	}

	return nil
}

// initializePodcastService wires the generation pipeline: script synthesis,
// speech generators, audio stitching, artifact storage, and the job
// repository.
func initializePodcastService(deps *types.Dependencies, cfg *config.Config) error {
	generators, defaultProvider, err := buildSpeechGenerators(cfg)
	if err != nil {
		return err
	}

	store, err := buildArtifactStore(cfg)
	if err != nil {
		return err
	}

	synthesizer := synthesis.NewService(
		synthesis.NewOpenAICompleter(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.ChatModel),
		synthesis.WithScriptSampling(cfg.Generation.ScriptTemperature, cfg.Generation.ScriptMaxTokens),
		synthesis.WithPolishEnabled(cfg.Generation.PolishEnabled),
		synthesis.WithPolishSampling(cfg.Generation.PolishTemperature, cfg.Generation.PolishMaxTokens),
	)

	deps.Podcasts = podcastsService.NewService(
		podcastsService.NewRepository(deps.DB.DB),
		synthesizer,
		generators,
		defaultProvider,
		audio.NewStitcher(),
		store,
		podcastsService.WithRequestBudget(cfg.Generation.RequestBudget),
	)

	providers := make([]string, 0, len(generators))
	for name := range generators {
		providers = append(providers, name)
	}
	sort.Strings(providers)

	deps.TTSProviders = providers
	deps.DefaultProvider = defaultProvider
	deps.StorageBackend = cfg.Storage.Backend

	return nil
}

// buildSpeechGenerators constructs a speech generator per provider with
// usable credentials. OpenAI needs an API key. Google resolves application
// default credentials from the environment, so it is only attempted when
// selected as the provider or when credentials are explicitly configured,
// and its failure is fatal only when it is the selected provider.
func buildSpeechGenerators(cfg *config.Config) (map[string]podcastsService.SpeechGenerator, string, error) {
	generators := make(map[string]podcastsService.SpeechGenerator)
	concurrency := speech.WithMaxConcurrent(cfg.Generation.MaxConcurrentTTS)

	if cfg.OpenAI.APIKey != "" {
		synthesizer := speech.NewOpenAISynthesizer(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.TTSModel)
		generators[speech.ProviderOpenAI] = speech.NewGenerator(synthesizer, concurrency)
	}

	if cfg.TTS.Provider == speech.ProviderGoogle || os.Getenv("GOOGLE_APPLICATION_CREDENTIALS") != "" {
		synthesizer, err := speech.NewGoogleSynthesizer(context.Background(), cfg.GoogleTTS.LanguageCode)
		if err != nil {
			if cfg.TTS.Provider == speech.ProviderGoogle {
				return nil, "", fmt.Errorf("failed to initialize google tts: %w", err)
			}
		} else {
			generators[speech.ProviderGoogle] = speech.NewGenerator(synthesizer, concurrency)
		}
	}

	// Fall back to any provider with credentials when the selected one has
	// none, so jobs that name a provider explicitly still work.
	defaultProvider := cfg.TTS.Provider
	if _, ok := generators[defaultProvider]; !ok {
		for _, name := range []string{speech.ProviderOpenAI, speech.ProviderGoogle} {
			if _, ok := generators[name]; ok {
				defaultProvider = name
				break
			}
		}
	}

	return generators, defaultProvider, nil
}

// buildArtifactStore creates the artifact store named by storage.backend
func buildArtifactStore(cfg *config.Config) (artifacts.Store, error) {
	switch cfg.Storage.Backend {
	case "s3":
		client := newS3Client(cfg.Storage.S3)
		return artifacts.NewS3Store(client, cfg.Storage.S3.Bucket, cfg.Storage.S3.Prefix, cfg.Storage.S3.PublicBaseURL), nil
	default:
		return artifacts.NewFilesystemStore(cfg.Storage.Filesystem.Path, cfg.Storage.Filesystem.BaseURL)
	}
}

// newS3Client builds an S3 client from static credentials and endpoint
// overrides. MinIO and other S3-compatible stores need use_path_style.
func newS3Client(cfg config.S3StorageConfig) *s3.Client {
	options := s3.Options{
		Region:       cfg.Region,
		UsePathStyle: cfg.UsePathStyle,
	}
	if cfg.Endpoint != "" {
		options.BaseEndpoint = aws.String(cfg.Endpoint)
	}
	if cfg.AccessKey != "" {
		options.Credentials = aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
			return aws.Credentials{
				AccessKeyID:     cfg.AccessKey,
				SecretAccessKey: cfg.SecretKey,
				Source:          "static configuration",
			}, nil
		})
	}
	return s3.New(options)
}

// endpointRate returns the configured sustained rate for an endpoint class
func endpointRate(cfg *config.Config, class string, fallback int) int {
	if rate, ok := cfg.RateLimiting.Endpoints[class]; ok && rate > 0 {
		return rate
	}
	return fallback
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}

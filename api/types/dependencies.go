package types

import (
	"github.com/podforge/podforge-api/internal/database"
	"github.com/podforge/podforge-api/internal/services/auth"
	"github.com/podforge/podforge-api/internal/services/podcasts"
	"github.com/podforge/podforge-api/pkg/script"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB              *database.DB
	Podcasts        podcasts.Service
	Auth            *auth.Service
	Parser          *script.Parser
	TTSProviders    []string // providers with configured credentials
	DefaultProvider string
	StorageBackend  string // "filesystem" or "s3"
}

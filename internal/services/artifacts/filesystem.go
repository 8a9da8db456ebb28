package artifacts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemStore implements Store on the local filesystem. Artifacts are
// written under basePath and served by the API's static file route, so the
// returned URL is baseURL + "/" + key.
type FilesystemStore struct {
	basePath string
	baseURL  string
}

// NewFilesystemStore creates a filesystem-backed artifact store
func NewFilesystemStore(basePath, baseURL string) (*FilesystemStore, error) {
	// Ensure base path exists
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create artifact directory: %w", err)
	}

	return &FilesystemStore{
		basePath: basePath,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Put writes the artifact to disk and returns its serving URL
func (fs *FilesystemStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	fullPath := filepath.Join(fs.basePath, filepath.FromSlash(key))

	// Keys carry a job-scoped prefix, so the parent directory may not exist yet
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create artifact directory: %w", err)
	}

	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write artifact: %w", err)
	}

	return fs.baseURL + "/" + key, nil
}

// Delete removes the artifact file. Missing files are ignored.
func (fs *FilesystemStore) Delete(ctx context.Context, key string) error {
	fullPath := filepath.Join(fs.basePath, filepath.FromSlash(key))
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete artifact: %w", err)
	}
	return nil
}

var _ Store = (*FilesystemStore)(nil)

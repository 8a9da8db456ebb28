package artifacts

import "context"

// Store persists stitched audio artifacts and addresses them by URL.
// Keys are slash-separated paths generated by the orchestrator; they are
// never user input.
type Store interface {
	// Put writes the artifact under key and returns the URL it is served at
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	// Delete removes the artifact. Deleting a key that does not exist is
	// not an error; job deletion must stay idempotent.
	Delete(ctx context.Context, key string) error
}

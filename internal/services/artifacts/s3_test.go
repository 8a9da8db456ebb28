package artifacts

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// apiError implements smithy.APIError for test assertions
type apiError struct {
	code string
	msg  string
}

func (e *apiError) Error() string                 { return e.msg }
func (e *apiError) ErrorCode() string             { return e.code }
func (e *apiError) ErrorMessage() string          { return e.msg }
func (e *apiError) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

var errNoSuchKey = &apiError{code: "NoSuchKey", msg: "no such key"}

// mockS3 is a thread-safe in-memory S3 backend for testing
type mockS3 struct {
	mu           sync.Mutex
	objects      map[string][]byte
	contentTypes map[string]string

	// Optional hooks to inject errors
	putErr    error
	deleteErr error
}

func newMockS3() *mockS3 {
	return &mockS3{
		objects:      make(map[string][]byte),
		contentTypes: make(map[string]string),
	}
}

func (m *mockS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if m.putErr != nil {
		return nil, m.putErr
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[*in.Key] = data
	if in.ContentType != nil {
		m.contentTypes[*in.Key] = *in.ContentType
	}
	return &s3.PutObjectOutput{}, nil
}

func (m *mockS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if m.deleteErr != nil {
		return nil, m.deleteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, *in.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Store_PutReturnsPublicURL(t *testing.T) {
	mock := newMockS3()
	store := NewS3Store(mock, "podforge", "artifacts", "https://cdn.example.com/")

	url, err := store.Put(context.Background(), "jobs/42/podcast.mp3", []byte("mp3-bytes"), "audio/mpeg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/artifacts/jobs/42/podcast.mp3", url)

	mock.mu.Lock()
	defer mock.mu.Unlock()
	assert.Equal(t, []byte("mp3-bytes"), mock.objects["artifacts/jobs/42/podcast.mp3"])
	assert.Equal(t, "audio/mpeg", mock.contentTypes["artifacts/jobs/42/podcast.mp3"])
}

func TestS3Store_PutWithoutPrefix(t *testing.T) {
	mock := newMockS3()
	store := NewS3Store(mock, "podforge", "", "https://podforge.s3.amazonaws.com")

	url, err := store.Put(context.Background(), "podcast.mp3", []byte("x"), "audio/mpeg")
	require.NoError(t, err)
	assert.Equal(t, "https://podforge.s3.amazonaws.com/podcast.mp3", url)

	mock.mu.Lock()
	defer mock.mu.Unlock()
	assert.Contains(t, mock.objects, "podcast.mp3")
}

func TestS3Store_PutError(t *testing.T) {
	mock := newMockS3()
	mock.putErr = errors.New("access denied")
	store := NewS3Store(mock, "podforge", "", "https://example.com")

	_, err := store.Put(context.Background(), "podcast.mp3", []byte("x"), "audio/mpeg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "podcast.mp3")
}

func TestS3Store_DeleteIdempotent(t *testing.T) {
	mock := newMockS3()
	store := NewS3Store(mock, "podforge", "", "https://example.com")

	// Deleting a missing key reported as NoSuchKey is still success
	mock.deleteErr = errNoSuchKey
	require.NoError(t, store.Delete(context.Background(), "ghost.mp3"))

	// Seed then delete
	mock.deleteErr = nil
	mock.mu.Lock()
	mock.objects["tmp.mp3"] = []byte("x")
	mock.mu.Unlock()

	require.NoError(t, store.Delete(context.Background(), "tmp.mp3"))

	mock.mu.Lock()
	defer mock.mu.Unlock()
	assert.NotContains(t, mock.objects, "tmp.mp3")
}

func TestS3Store_DeleteError(t *testing.T) {
	mock := newMockS3()
	mock.deleteErr = errors.New("access denied")
	store := NewS3Store(mock, "podforge", "", "https://example.com")

	err := store.Delete(context.Background(), "podcast.mp3")
	require.Error(t, err)
}

func TestIsS3NotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"NoSuchKey", errNoSuchKey, true},
		{"NotFound", &apiError{code: "NotFound", msg: "not found"}, true},
		{"other api error", &apiError{code: "AccessDenied", msg: "denied"}, false},
		{"plain error", errors.New("timeout"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isS3NotFound(tt.err))
		})
	}
}

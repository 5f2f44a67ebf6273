package minio

import (
	"strings"
	"testing"

	"github.com/poiesic/jot/blobstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRef(t *testing.T) {
	bucket, key, err := parseRef("minio://notes/ab12.png")
	require.NoError(t, err)
	assert.Equal(t, "notes", bucket)
	assert.Equal(t, "ab12.png", key)

	// Keys may contain slashes.
	bucket, key, err = parseRef("minio://notes/2026/08/ab12.png")
	require.NoError(t, err)
	assert.Equal(t, "notes", bucket)
	assert.Equal(t, "2026/08/ab12.png", key)

	for _, bad := range []string{"blob://abc", "minio://", "minio://bucketonly", "minio:///key"} {
		_, _, err := parseRef(bad)
		assert.ErrorIs(t, err, blobstore.ErrInvalidRef, "ref %q", bad)
	}
}

func TestObjectKey(t *testing.T) {
	key := objectKey("image/png")
	assert.True(t, strings.HasSuffix(key, ".png"), "key %q", key)

	// Unknown content types still produce a usable key.
	key = objectKey("application/x-nonexistent-type")
	assert.NotEmpty(t, key)

	assert.NotEqual(t, objectKey("image/png"), objectKey("image/png"))
}

func TestNewStoreValidation(t *testing.T) {
	_, err := NewStore(Config{Bucket: "notes"})
	assert.Error(t, err)

	_, err = NewStore(Config{Endpoint: "localhost:9000"})
	assert.Error(t, err)
}

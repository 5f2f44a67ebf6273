package badger

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/go-crypt/x/blake2b"
	"github.com/poiesic/jot/blobstore"
)

// Key prefixes for the blob namespace
const (
	blobPrefix = "blob"
	metaPrefix = "blobmeta"

	refScheme = "blob://"
)

// contentDigest returns the hex BLAKE2b-128 digest of the content.
// Identical content always yields the same digest, which is what makes the
// store content-addressed.
func contentDigest(data []byte) string {
	h, _ := blake2b.New(16, nil) // 16 bytes = 128 bits
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// makeBlobKey generates the key holding the blob bytes.
func makeBlobKey(digest string) []byte {
	return []byte(fmt.Sprintf("%s:%s", blobPrefix, digest))
}

// makeMetaKey generates the key holding the blob's content type.
func makeMetaKey(digest string) []byte {
	return []byte(fmt.Sprintf("%s:%s", metaPrefix, digest))
}

// refFromDigest renders the public reference for a digest.
func refFromDigest(digest string) string {
	return refScheme + digest
}

// digestFromRef parses a blob:// reference back into a digest.
func digestFromRef(ref string) (string, error) {
	digest, ok := strings.CutPrefix(ref, refScheme)
	if !ok || digest == "" {
		return "", fmt.Errorf("%w: %q", blobstore.ErrInvalidRef, ref)
	}
	return digest, nil
}

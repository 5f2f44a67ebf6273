// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package minio provides an S3-compatible remote blob store backend.
package minio

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"mime"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/poiesic/jot/blobstore"
)

const refScheme = "minio://"

// Config holds connection settings for the S3-compatible endpoint.
type Config struct {
	Endpoint  string // host:port, no scheme
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Store implements blobstore.Store against an S3-compatible service.
// Objects are named with a random UUID plus a media-type extension;
// references use the minio://<bucket>/<key> scheme.
type Store struct {
	client *minio.Client
	bucket string
	logger *slog.Logger
}

var _ blobstore.Store = (*Store)(nil)

// NewStore creates a remote blob store. The bucket must already exist;
// provisioning is a deployment concern.
func NewStore(cfg Config) (*Store, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio blobstore: endpoint is required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("minio blobstore: bucket is required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	return &Store{
		client: client,
		bucket: cfg.Bucket,
		logger: slog.Default().With("component", "minio-blobstore"),
	}, nil
}

// Upload stores the blob under a fresh object key and returns its reference.
func (s *Store) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", blobstore.ErrEmptyBlob
	}

	key := objectKey(contentType)
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}

	s.logger.Debug("object stored", "bucket", s.bucket, "key", key, "size", len(data))
	return refScheme + s.bucket + "/" + key, nil
}

// Delete removes the object behind the reference.
func (s *Store) Delete(ctx context.Context, ref string) error {
	bucket, key, err := parseRef(ref)
	if err != nil {
		return err
	}

	// RemoveObject succeeds on unknown keys, so check existence first to
	// honor the capability's ErrNotFound contract.
	if _, err := s.client.StatObject(ctx, bucket, key, minio.StatObjectOptions{}); err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket" {
			return fmt.Errorf("%w: %s", blobstore.ErrNotFound, ref)
		}
		return err
	}

	return s.client.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{})
}

// Close is a no-op; the minio client holds no persistent resources.
func (s *Store) Close() error {
	return nil
}

// objectKey builds a random object name carrying a best-effort extension
// so objects stay recognizable in bucket listings.
func objectKey(contentType string) string {
	key := uuid.New().String()
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		key += exts[0]
	}
	return key
}

// parseRef splits a minio://bucket/key reference.
func parseRef(ref string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(ref, refScheme)
	if !ok {
		return "", "", fmt.Errorf("%w: %q", blobstore.ErrInvalidRef, ref)
	}
	bucket, key, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("%w: %q", blobstore.ErrInvalidRef, ref)
	}
	return bucket, key, nil
}

// Package blobstore defines the blob storage capability for raw inputs.
//
// Two backends are provided:
//
//   - blobstore/badger: a local, content-addressed store over BadgerDB,
//     suitable for single-node deployments and tests (in-memory mode).
//     References use the blob://<digest> scheme.
//   - blobstore/minio: an S3-compatible remote store. References use the
//     minio://<bucket>/<key> scheme.
//
// The ingestion pipeline treats both as an opaque upload/delete capability
// and tolerates upload failures.
package blobstore

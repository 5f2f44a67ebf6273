// Package ingestion provides the multi-modal note ingestion pipeline.
//
// The Pipeline type orchestrates one ingest request end to end:
//
//   - validating the input bundle
//   - processing image and audio files concurrently (upload + extraction),
//     where any single file's failure is contained and reported, never fatal
//   - aggregating direct text and extracted texts into one corpus
//   - invoking the structured analyzer and normalizing its response
//   - persisting the note and all attachments in a single transaction
//
// Per-file work is fanned out on a bounded worker pool and joined before
// aggregation; no state is shared between file tasks. Every external call
// carries its own deadline. The analyzer and the transactional write run
// strictly sequentially after the media batches settle.
package ingestion

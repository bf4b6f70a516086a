// Package upload accepts image uploads and serves them back under /asset/*.
//
// Files land in a folder chosen by the form's type field (member, event,
// anything else is general) under a sanitized name. Two backends exist:
//
//   - local: files under upload.dir (default "asset")
//   - s3: objects asset/<folder>/<name> in the storage bucket (MinIO or S3)
//
// Only png, jpg, jpeg and gif are accepted. The request size is bounded by the
// server body limit.
package upload

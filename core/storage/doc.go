// Package storage wraps the MinIO client used by the s3 upload backend.
//
// The Client interface covers only what uploads need (bucket bootstrap, put, get
// and stat), which keeps the testify mock in core/storage/mocks small. It works
// against AWS S3 as well as self-hosted MinIO.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
//	    return err
//	}
package storage

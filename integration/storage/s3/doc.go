// Package s3 provides an Amazon S3 (and S3-compatible) backend for the
// upload temporary cache. Cached entries are stored as opaque objects
// keyed by cache name, optionally under a shared key prefix.
//
// # Usage
//
//	cfg := s3.Config{
//		Bucket: "my-uploads",
//		Region: "us-east-1",
//		Prefix: "tmp",
//	}
//	backend, err := s3.New(ctx, cfg)
//	if err != nil {
//		return err
//	}
//
//	sess := upload.NewSession(uploadCfg, upload.WithStorage(backend))
//
// For MinIO and other S3-compatible services set Endpoint and
// ForcePathStyle. Credentials fall back to the default AWS chain (IAM
// roles, environment) when not provided explicitly.
//
// Transport failures are classified onto the core/storage sentinels, so a
// missing entry surfaces as storage.ErrFileNotFound independent of
// backend.
package s3

// Package s3 uploads rendered outputs to S3 compatible object storage.
//
// The uploader signs plain HTTP PUT requests with AWS Signature Version 4,
// so it works against AWS as well as MinIO or other compatible endpoints
// without pulling in a full SDK. Credentials are resolved from the standard
// AWS environment variables first, with node inputs as a fallback.
package s3

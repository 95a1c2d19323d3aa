package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/pixl-sh/pixl-nodes/internal/httpx"
	"github.com/pixl-sh/pixl-nodes/logging"
)

// Environment variables consulted before falling back to caller provided
// credentials.
const (
	EnvAccessKey = "AWS_ACCESS_KEY_ID"
	EnvSecretKey = "AWS_SECRET_ACCESS_KEY"
)

const defaultTimeout = 60 * time.Second

// Credentials holds a resolved access key pair.
type Credentials struct {
	AccessKey string
	SecretKey string
}

// ResolveCredentials prefers the standard AWS environment variables and falls
// back to explicitly supplied values. Supplying secrets inline is logged as a
// warning because workflow files are often shared.
func ResolveCredentials(logger logging.Logger, accessInput, secretInput string) (Credentials, error) {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}

	access := strings.TrimSpace(os.Getenv(EnvAccessKey))
	secret := strings.TrimSpace(os.Getenv(EnvSecretKey))
	if access != "" && secret != "" {
		logger.Debug("s3.credentials.from_env")
		return Credentials{AccessKey: access, SecretKey: secret}, nil
	}

	access = strings.TrimSpace(accessInput)
	secret = strings.TrimSpace(secretInput)
	if access != "" && secret != "" {
		logger.Warn("s3.credentials.from_input",
			"hint", "credentials passed as node inputs are saved in workflow files, prefer "+EnvAccessKey+"/"+EnvSecretKey)
		return Credentials{AccessKey: access, SecretKey: secret}, nil
	}

	return Credentials{}, fmt.Errorf("no AWS credentials found: set %s and %s or provide them as inputs", EnvAccessKey, EnvSecretKey)
}

// Config describes the target bucket.
type Config struct {
	Bucket   string
	Region   string
	Endpoint string
	ACL      string
}

// Uploader puts objects into an S3 compatible bucket using SigV4 signed
// HTTP requests.
type Uploader struct {
	cfg        Config
	creds      Credentials
	httpClient *http.Client
	logger     logging.Logger
	now        func() time.Time
}

// UploaderOptions configures an Uploader.
type UploaderOptions struct {
	HTTPClient *http.Client
	Logger     logging.Logger
	Now        func() time.Time
}

// NewUploader creates an Uploader for the given bucket configuration.
func NewUploader(cfg Config, creds Credentials, optFns ...func(o *UploaderOptions)) (*Uploader, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("bucket name is required")
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}

	opts := UploaderOptions{
		HTTPClient: &http.Client{Timeout: defaultTimeout},
		Logger:     logging.NoOpLogger{},
		Now:        time.Now,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Uploader{
		cfg:        cfg,
		creds:      creds,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		now:        opts.Now,
	}, nil
}

// ObjectURL returns the public URL for a key in the configured bucket.
func ObjectURL(cfg Config, key string) string {
	key = strings.TrimPrefix(key, "/")
	if cfg.Endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(cfg.Endpoint, "/"), cfg.Bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", cfg.Bucket, cfg.Region, escapePath(key))
}

// Put uploads data under key and returns the resulting object URL. Rate
// limits and transient transport failures are retried through the shared
// httpx policy.
func (u *Uploader) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	key = strings.TrimPrefix(key, "/")
	if key == "" {
		return "", fmt.Errorf("object key is required")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	rawURL := u.requestURL(key)
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}

	amzDate := u.now().UTC().Format("20060102T150405Z")
	payloadHash := PayloadHash(data)

	headers := map[string]string{
		"host":                 parsed.Host,
		"x-amz-date":           amzDate,
		"x-amz-content-sha256": payloadHash,
		"content-type":         contentType,
	}
	if u.cfg.ACL != "" {
		headers["x-amz-acl"] = u.cfg.ACL
	}

	authorization, err := SignV4(http.MethodPut, rawURL, headers, payloadHash,
		u.creds.AccessKey, u.creds.SecretKey, u.cfg.Region, "s3")
	if err != nil {
		return "", fmt.Errorf("sign request: %w", err)
	}

	target := "s3://" + u.cfg.Bucket + "/" + key
	start := time.Now()
	_, err = httpx.Do(ctx, u.httpClient, u.logger, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPut, rawURL, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		for name, value := range headers {
			if name == "host" {
				continue
			}
			req.Header.Set(name, value)
		}
		req.Header.Set("Authorization", authorization)
		return req, nil
	})
	if err != nil {
		var statusErr *httpx.StatusError
		if errors.As(err, &statusErr) {
			err = shapeError(statusErr.StatusCode, string(statusErr.Body))
		} else {
			err = fmt.Errorf("s3 upload failed: %w", err)
		}
		u.logger.Error("s3.upload_failed", "target", target, "bytes", len(data), "duration", time.Since(start).String(), "error", err.Error())
		return "", err
	}

	u.logger.Info("s3.upload_done", "target", target, "bytes", len(data), "duration", time.Since(start).String())
	return ObjectURL(u.cfg, key), nil
}

func (u *Uploader) requestURL(key string) string {
	if u.cfg.Endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(u.cfg.Endpoint, "/"), u.cfg.Bucket, escapePath(key))
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.cfg.Bucket, u.cfg.Region, escapePath(key))
}

func shapeError(status int, body string) error {
	switch {
	case status == 403 && strings.Contains(body, "SignatureDoesNotMatch"):
		return fmt.Errorf("s3 upload failed (403): signature mismatch, check the secret access key and region")
	case status == 403:
		return fmt.Errorf("s3 upload failed (403): access denied, check credentials and bucket permissions")
	case status == 404:
		return fmt.Errorf("s3 upload failed (404): bucket not found")
	default:
		snippet := body
		if len(snippet) > 200 {
			snippet = snippet[:200]
		}
		return fmt.Errorf("s3 upload failed (%d): %s", status, snippet)
	}
}

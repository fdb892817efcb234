// Package s3input loads settings input documents stored in S3.
package s3input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	uxsettings "github.com/goliatone/go-ux-settings"
)

// ErrInvalidURL is returned for locations that are not s3://bucket/key.
var ErrInvalidURL = errors.New("s3input: invalid s3 url")

const maxDocumentBytes = 1 << 20

// ObjectGetter is the subset of the S3 client used by Loader.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Loader fetches and decodes input documents.
type Loader struct {
	client ObjectGetter
}

// New returns a Loader backed by client.
func New(client ObjectGetter) *Loader {
	return &Loader{client: client}
}

// NewFromEnv builds an S3 client from AWS_REGION and the static
// AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN variables.
// Without keys requests are sent anonymously, which suits public buckets.
func NewFromEnv() *Loader {
	opts := s3.Options{
		Region:      envOr("AWS_REGION", "us-east-1"),
		Credentials: aws.AnonymousCredentials{},
	}
	if key := os.Getenv("AWS_ACCESS_KEY_ID"); key != "" {
		opts.Credentials = aws.NewCredentialsCache(aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
			return aws.Credentials{
				AccessKeyID:     key,
				SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
				SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
				Source:          "environment",
			}, nil
		}))
	}
	return New(s3.New(opts))
}

// IsURL reports whether location uses the s3 scheme.
func IsURL(location string) bool {
	return strings.HasPrefix(strings.ToLower(location), "s3://")
}

// ParseURL splits s3://bucket/key into its parts.
func ParseURL(location string) (bucket, key string, err error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if !strings.EqualFold(u.Scheme, "s3") || u.Host == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidURL, location)
	}
	key = strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", "", fmt.Errorf("%w: %q has no key", ErrInvalidURL, location)
	}
	return u.Host, key, nil
}

// Load fetches the object at location (s3://bucket/key) and decodes it by the
// key extension, like uxsettings.LoadInput does for local files.
func (l *Loader) Load(ctx context.Context, location string) (uxsettings.Input, error) {
	bucket, key, err := ParseURL(location)
	if err != nil {
		return uxsettings.Input{}, err
	}

	out, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return uxsettings.Input{}, fmt.Errorf("s3input: get %s: %w", location, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(io.LimitReader(out.Body, maxDocumentBytes+1))
	if err != nil {
		return uxsettings.Input{}, fmt.Errorf("s3input: read %s: %w", location, err)
	}
	if len(data) > maxDocumentBytes {
		return uxsettings.Input{}, fmt.Errorf("s3input: %s exceeds %d bytes", location, maxDocumentBytes)
	}

	in, err := uxsettings.DecodeInput(key, data)
	if err != nil {
		return uxsettings.Input{}, fmt.Errorf("s3input: decode %s: %w", location, err)
	}
	return in, nil
}

func envOr(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

package ingest

import (
	"context"
	"fmt"
	"strings"

	"product-insights/internal/cleaner"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// S3Scheme prefixes object locations, e.g. s3://bucket/path/products.csv.
const S3Scheme = "s3://"

// ObjectGetter is the subset of the S3 client used to read objects.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// NewS3Client loads the default AWS configuration for region and returns an S3 client.
func NewS3Client(ctx context.Context, region string, logger zerolog.Logger) (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	logger.Info().Str("region", region).Msg("S3 client initialised")

	return s3.NewFromConfig(cfg), nil
}

// s3Loader implements Loader for CSV objects stored in S3.
type s3Loader struct {
	client        ObjectGetter
	defaultBucket string
	logger        zerolog.Logger
}

// NewS3Loader creates a new S3-based CSV loader. defaultBucket is used for
// locations written as s3:///key or as a bare key.
func NewS3Loader(client ObjectGetter, defaultBucket string, logger zerolog.Logger) Loader {
	return &s3Loader{
		client:        client,
		defaultBucket: defaultBucket,
		logger:        logger.With().Str("component", "csv-s3-loader").Logger(),
	}
}

// Load reads a CSV object from S3.
func (l *s3Loader) Load(ctx context.Context, location string) ([]cleaner.Row, error) {
	bucket, key, err := ParseS3Location(location, l.defaultBucket)
	if err != nil {
		return nil, err
	}

	l.logger.Info().
		Str("bucket", bucket).
		Str("key", key).
		Msg("loading csv object from S3")

	result, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		l.logger.Error().
			Err(err).
			Str("bucket", bucket).
			Str("key", key).
			Msg("failed to get object from S3")
		return nil, fmt.Errorf("failed to get object from S3 (bucket=%s, key=%s): %w", bucket, key, err)
	}
	defer result.Body.Close()

	rows, err := parseSource(ctx, key, result.Body)
	if err != nil {
		l.logger.Error().
			Err(err).
			Str("bucket", bucket).
			Str("key", key).
			Msg("failed to parse csv object")
		return nil, fmt.Errorf("failed to parse S3 object %s: %w", key, err)
	}

	l.logger.Info().
		Str("bucket", bucket).
		Str("key", key).
		Int("rows_loaded", len(rows)).
		Msg("csv object loaded successfully from S3")

	return rows, nil
}

// ParseS3Location splits s3://bucket/key into its parts. A bare key resolves
// against defaultBucket.
func ParseS3Location(location, defaultBucket string) (bucket, key string, err error) {
	rest := strings.TrimPrefix(location, S3Scheme)
	if rest != location {
		bucket, key, _ = strings.Cut(rest, "/")
	} else {
		key = location
	}

	if bucket == "" {
		bucket = defaultBucket
	}
	key = strings.TrimPrefix(key, "/")

	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid S3 location %q: bucket and key are required", location)
	}
	return bucket, key, nil
}

// schemeLoader dispatches s3:// locations to S3 and everything else to the local file system.
type schemeLoader struct {
	s3Loader   Loader
	fileLoader Loader
	logger     zerolog.Logger
}

// NewSchemeLoader creates a loader that routes by location scheme.
// If s3Loader is nil, s3:// locations are rejected.
func NewSchemeLoader(s3Loader, fileLoader Loader, logger zerolog.Logger) Loader {
	return &schemeLoader{
		s3Loader:   s3Loader,
		fileLoader: fileLoader,
		logger:     logger.With().Str("component", "csv-loader").Logger(),
	}
}

// Load picks the backing loader for location.
func (l *schemeLoader) Load(ctx context.Context, location string) ([]cleaner.Row, error) {
	if strings.HasPrefix(location, S3Scheme) {
		if l.s3Loader == nil {
			l.logger.Warn().Str("location", location).Msg("S3 location requested but S3 is disabled")
			return nil, fmt.Errorf("cannot load %s: S3 is disabled", location)
		}
		return l.s3Loader.Load(ctx, location)
	}

	l.logger.Debug().Str("location", location).Msg("using local file system")
	return l.fileLoader.Load(ctx, location)
}

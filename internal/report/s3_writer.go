package report

import (
	"bytes"
	"context"
	"fmt"

	"product-insights/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// ReportKey is the object name of the uploaded summary, below the configured prefix.
const ReportKey = "summary_report.csv"

// ObjectPutter is the subset of the S3 client used to upload reports.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// s3Writer uploads the summary CSV to a fixed S3 key.
type s3Writer struct {
	client ObjectPutter
	bucket string
	key    string
	logger zerolog.Logger
}

// NewS3Writer creates a Writer that uploads to bucket under prefix.
func NewS3Writer(client ObjectPutter, bucket, prefix string, logger zerolog.Logger) Writer {
	return &s3Writer{
		client: client,
		bucket: bucket,
		key:    prefix + ReportKey,
		logger: logger.With().Str("component", "report-s3-writer").Logger(),
	}
}

// Write uploads the rendered report, replacing any previous object.
func (w *s3Writer) Write(ctx context.Context, summaries []model.CategorySummary) error {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, summaries); err != nil {
		return err
	}

	_, err := w.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(w.bucket),
		Key:         aws.String(w.key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("text/csv"),
	})
	if err != nil {
		w.logger.Error().
			Err(err).
			Str("bucket", w.bucket).
			Str("key", w.key).
			Msg("failed to upload report to S3")
		return fmt.Errorf("failed to upload report to S3 (bucket=%s, key=%s): %w", w.bucket, w.key, err)
	}

	w.logger.Info().
		Str("bucket", w.bucket).
		Str("key", w.key).
		Msg("summary report uploaded to S3")

	return nil
}

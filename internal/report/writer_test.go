package report

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"product-insights/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSummaries = []model.CategorySummary{
	{Category: "Books", TotalRevenue: 10.5, TopProductQuantitySold: int64Ptr(7), TopProduct: "Novel"},
	{Category: "Misc, Odds", TotalRevenue: 0, TopProductQuantitySold: nil, TopProduct: "Thing"},
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testSummaries))

	expected := "category,total_revenue,top_product_quantity_sold,top_product\n" +
		"Books,10.5,7,Novel\n" +
		"\"Misc, Odds\",0,,Thing\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteCSV_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	assert.Equal(t, "category,total_revenue,top_product_quantity_sold,top_product\n", buf.String())
}

func TestFileWriter_OverwritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary_report.csv")
	writer := NewFileWriter(path, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, writer.Write(ctx, testSummaries))
	require.NoError(t, writer.Write(ctx, nil))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "category,total_revenue,top_product_quantity_sold,top_product\n", string(content))

	// No temporary files are left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileWriter_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "summary_report.csv")
	writer := NewFileWriter(path, zerolog.Nop())

	err := writer.Write(context.Background(), testSummaries)
	require.Error(t, err)
}

// fakeObjectPutter records the last uploaded object.
type fakeObjectPutter struct {
	bucket string
	key    string
	body   string
	err    error
}

func (f *fakeObjectPutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.bucket = aws.ToString(params.Bucket)
	f.key = aws.ToString(params.Key)
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.body = string(body)
	return &s3.PutObjectOutput{}, nil
}

func TestS3Writer_Write(t *testing.T) {
	client := &fakeObjectPutter{}
	writer := NewS3Writer(client, "reports-bucket", "reports/", zerolog.Nop())

	require.NoError(t, writer.Write(context.Background(), testSummaries))

	assert.Equal(t, "reports-bucket", client.bucket)
	assert.Equal(t, "reports/summary_report.csv", client.key)
	assert.Contains(t, client.body, "Books,10.5,7,Novel")
}

func TestS3Writer_WriteFails(t *testing.T) {
	client := &fakeObjectPutter{err: errors.New("access denied")}
	writer := NewS3Writer(client, "reports-bucket", "", zerolog.Nop())

	err := writer.Write(context.Background(), testSummaries)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upload report to S3")
}

// recordingWriter counts calls and optionally fails.
type recordingWriter struct {
	calls int
	err   error
}

func (r *recordingWriter) Write(ctx context.Context, summaries []model.CategorySummary) error {
	r.calls++
	return r.err
}

func TestMultiWriter(t *testing.T) {
	first := &recordingWriter{}
	second := &recordingWriter{}

	writer := MultiWriter(first, nil, second)
	require.NoError(t, writer.Write(context.Background(), testSummaries))
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
}

func TestMultiWriter_StopsAtFirstError(t *testing.T) {
	failing := &recordingWriter{err: errors.New("disk full")}
	after := &recordingWriter{}

	err := MultiWriter(failing, after).Write(context.Background(), testSummaries)
	require.Error(t, err)
	assert.Equal(t, 0, after.calls)
}

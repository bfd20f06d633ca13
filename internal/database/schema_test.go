package database

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormWriter_LogsAtWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.InfoLevel)

	gormWriter{logger: logger}.Printf("SLOW SQL >= %v [%d rows] %s", "500ms", 3, "SELECT 1")

	require.NotEmpty(t, buf.String(), "warn lines must pass an info-level logger")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "SLOW SQL >= 500ms [3 rows] SELECT 1", entry["message"])
}

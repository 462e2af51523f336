package postgres

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"playfinder/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGormSlogLogger_SlowThresholdFromConfig(t *testing.T) {
	base := slog.New(slog.NewTextHandler(io.Discard, nil))

	tuned, ok := newGormSlogLogger(base, &config.Config{
		Postgres: &config.PostgresConfig{SlowQueryThreshold: 50 * time.Millisecond},
	}).(*gormSlogLogger)
	require.True(t, ok)
	assert.Equal(t, 50*time.Millisecond, tuned.slowThreshold)

	fallback, ok := newGormSlogLogger(base, &config.Config{}).(*gormSlogLogger)
	require.True(t, ok)
	assert.Equal(t, defaultGormSlowThreshold, fallback.slowThreshold)
}

func TestGormSlogLogger_TraceTruncatesLongSQL(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	gormLogger, ok := newGormSlogLogger(base, &config.Config{
		Postgres: &config.PostgresConfig{SlowQueryThreshold: time.Nanosecond},
	}).(*gormSlogLogger)
	require.True(t, ok)

	longSQL := strings.Repeat("SELECT * FROM venues WHERE latitude BETWEEN 1 AND 2; ", 100)
	require.Greater(t, len(longSQL), maxLoggedSQLLen)

	begin := time.Now().Add(-time.Second)
	gormLogger.Trace(context.Background(), begin, func() (string, int64) { return longSQL, 3 }, nil)

	out := buf.String()
	assert.Contains(t, out, "GORM slow query")
	assert.Contains(t, out, "...")
	assert.Less(t, len(out), len(longSQL))
}

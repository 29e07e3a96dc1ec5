package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"moodmap/config"
	deliverycontext "moodmap/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newBufferedGormLogger(debug bool) (*gormSlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	l, _ := newGormSlogLogger(base, cfg).(*gormSlogLogger)

	return l, &buf
}

func sqlFn() (string, int64) {
	return "SELECT * FROM geocode_labels", 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Run("error is logged", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
		assert.Contains(t, buf.String(), "GORM query failed")
		assert.Contains(t, buf.String(), "boom")
	})

	t.Run("record not found is ignored", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
		assert.Empty(t, buf.String())
	})

	t.Run("slow query warns", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
		assert.Contains(t, buf.String(), "GORM slow query")
	})

	t.Run("fast query only in debug", func(t *testing.T) {
		quiet, quietBuf := newBufferedGormLogger(false)
		quiet.Trace(context.Background(), time.Now(), sqlFn, nil)
		assert.Empty(t, quietBuf.String())

		loud, loudBuf := newBufferedGormLogger(true)
		loud.Trace(context.Background(), time.Now(), sqlFn, nil)
		assert.Contains(t, loudBuf.String(), "GORM query")
	})
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	l, buf := newBufferedGormLogger(false)
	ctx := deliverycontext.WithLogger(context.Background(), l.logger.With(slog.String("request_id", "req-42")))

	l.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))
	assert.Contains(t, buf.String(), "request_id=req-42")
}

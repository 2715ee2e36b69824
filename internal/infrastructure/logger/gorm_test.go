package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func sqlFn() (string, int64) { return "SELECT 1", 1 }

func TestGormLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		level   gormlogger.LogLevel
		begin   time.Time
		err     error
		wantMsg string
	}{
		{"error", gormlogger.Warn, time.Now(), errors.New("boom"), "SQL Error"},
		{"not found is quiet", gormlogger.Info, time.Now(), gormlogger.ErrRecordNotFound, "SQL Query"},
		{"slow", gormlogger.Warn, time.Now().Add(-time.Second), nil, "Slow SQL"},
		{"query at info", gormlogger.Info, time.Now(), nil, "SQL Query"},
		{"silent", gormlogger.Silent, time.Now(), errors.New("boom"), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			l := NewGormLogger(zap.New(core), tt.level, 100*time.Millisecond)

			l.Trace(WithRequestID(context.Background(), "req-1"), tt.begin, sqlFn, tt.err)

			if tt.wantMsg == "" {
				assert.Zero(t, logs.Len())
				return
			}
			entries := logs.FilterMessage(tt.wantMsg).All()
			if assert.Len(t, entries, 1) {
				assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
				assert.Equal(t, "gorm", entries[0].LoggerName)
			}
		})
	}
}

func TestGormLogger_LogMode(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewGormLogger(zap.New(core), gormlogger.Silent, 0)

	l.LogMode(gormlogger.Info).Info(context.Background(), "migrated %d tables", 3)
	l.Info(context.Background(), "ignored")

	assert.Equal(t, 1, logs.Len())
	assert.Equal(t, "migrated 3 tables", logs.All()[0].Message)
}

func TestMapGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, MapGormLogLevel("silent"))
	assert.Equal(t, gormlogger.Error, MapGormLogLevel("error"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("anything"))
}

package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/geange/lttoolbox/internal/config"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name   string
		cfg    config.LogConfig
		want   []string
		absent []string
	}{
		{
			name: "console",
			cfg:  config.LogConfig{Level: "info", Format: "console"},
			want: []string{"WARN", "careful", `"section": "main"`},
		},
		{
			name: "json",
			cfg:  config.LogConfig{Level: "info", Format: "json"},
			want: []string{`"level":"warn"`, `"msg":"careful"`, `"section":"main"`},
		},
		{
			name:   "level filters",
			cfg:    config.LogConfig{Level: "error", Format: "json"},
			absent: []string{"careful"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(tt.cfg, zapcore.AddSync(&buf))
			logger.Debug("noise")
			logger.Warn("careful", zap.String("section", "main"))
			_ = logger.Sync()

			out := buf.String()
			assert.NotContains(t, out, "noise")
			for _, s := range tt.want {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("loud"))
}

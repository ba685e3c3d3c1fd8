package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		json      bool
		wantLevel zapcore.Level
		wantError bool
	}{
		{name: "default level", level: "", wantLevel: zapcore.InfoLevel},
		{name: "debug console", level: "debug", wantLevel: zapcore.DebugLevel},
		{name: "warn json", level: "warn", json: true, wantLevel: zapcore.WarnLevel},
		{name: "unknown level", level: "chatty", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := NewLogger(tt.level, tt.json)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, log.Core().Enabled(tt.wantLevel))
			if tt.wantLevel > zapcore.DebugLevel {
				assert.False(t, log.Core().Enabled(tt.wantLevel-1))
			}
		})
	}
}

package app

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger opens a JSON-lines log file under dir. The TUI owns the
// terminal, so nothing may write to stdout or stderr; when the file
// cannot be opened we fall back to a nop logger rather than fail
// startup.
func NewLogger(dir string) *zap.Logger {
	if dir == "" {
		return zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zap.NewNop()
	}
	f, err := os.OpenFile(filepath.Join(dir, "solace.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zap.NewNop()
	}
	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(f), zap.InfoLevel)
	return zap.New(core)
}

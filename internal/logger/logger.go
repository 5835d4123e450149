// Package logger builds the zap logger shared by every layer.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log levels accepted by LOG_LEVEL.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// Output formats accepted by LOG_FORMAT.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Logger wraps zap's SugaredLogger so callers use Infow/Errorw key-value pairs.
type Logger struct {
	*zap.SugaredLogger
}

// Options selects level, encoding and destination. The zero value logs
// info and above to stdout in console format.
type Options struct {
	Level  string
	Format string
	Output zapcore.WriteSyncer
}

// New builds a Logger. Unknown levels fall back to info and unknown formats
// to console.
func New(opts Options) *Logger {
	core := zapcore.NewCore(newEncoder(opts.Format), opts.output(), zap.NewAtomicLevelAt(parseLevel(opts.Level)))
	return &Logger{
		SugaredLogger: zap.New(core, zap.AddCaller()).Sugar().With("service", serviceName),
	}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

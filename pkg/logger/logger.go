package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log = zap.NewNop().Sugar()

// Init builds the process logger. Development environments get a colored
// console encoder at debug level, everything else JSON at info level.
func Init(environment string) {
	var (
		encoder zapcore.Encoder
		level   zapcore.Level
	)

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	if isDevelopment(environment) {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
		level = zapcore.DebugLevel
	} else {
		encoder = zapcore.NewJSONEncoder(encCfg)
		level = zapcore.InfoLevel
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level)
	log = zap.New(core,
		zap.AddCaller(),
		zap.AddCallerSkip(1),
		zap.Fields(zap.String("service", "mix-master")),
	).Sugar()
}

func isDevelopment(environment string) bool {
	switch strings.ToLower(environment) {
	case "", "dev", "development", "local":
		return true
	}
	return false
}

func Debug(msg string, args ...any) {
	log.Debugw(msg, pairs(args)...)
}

func Info(msg string, args ...any) {
	log.Infow(msg, pairs(args)...)
}

func Warn(msg string, args ...any) {
	log.Warnw(msg, pairs(args)...)
}

func Error(msg string, args ...any) {
	log.Errorw(msg, pairs(args)...)
}

func Fatal(msg string, args ...any) {
	log.Fatalw(msg, pairs(args)...)
}

// Sync flushes buffered entries.
func Sync() {
	_ = log.Sync()
}

// pairs turns the loose argument list into key/value pairs. A value found
// where a key is expected (typically a bare error) gets a generated key.
func pairs(args []any) []any {
	if len(args) == 0 {
		return nil
	}

	out := make([]any, 0, len(args)+2)
	for i := 0; i < len(args); i++ {
		key, ok := args[i].(string)
		if !ok || i+1 >= len(args) {
			out = append(out, looseKey(args[i]), args[i])
			continue
		}
		out = append(out, key, args[i+1])
		i++
	}
	return out
}

func looseKey(v any) string {
	switch v.(type) {
	case error:
		return "error"
	case string:
		return "detail"
	default:
		return fmt.Sprintf("arg_%T", v)
	}
}

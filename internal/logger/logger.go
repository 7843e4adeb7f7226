// internal/logger/logger.go
//
// Structured JSON logger (Zap + Lumberjack).
//
// Context
// -------
// `hassconf` writes lifecycle events to one JSON log per day under
// `<dir>/logs/YYYY-MM-DD.log` when a log directory is given, and tees the
// same events, colorized, to stderr when running in a TTY.  Without a log
// directory it logs to stderr only, so stdout stays clean for the resolved
// configuration.
//
// Usage
// -----
//
//	log, err := logger.New(dir, runningInTTY(), false)
//	if err != nil { … }
//	log.Infow("config loaded", "base_url", cfg.BaseURL)
//
// Notes
// -----
// • Zap core uses ISO-8601 timestamps and lowercase levels.
// • Both constructors install the logger with zap.ReplaceGlobals so library
//   packages can log through zap.S().
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:      "ts",
		LevelKey:     "level",
		MessageKey:   "msg",
		CallerKey:    "caller",
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeLevel:  zapcore.LowercaseLevelEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	}
}

func level(debug bool) zapcore.Level {
	if debug {
		return zap.DebugLevel
	}
	return zap.InfoLevel
}

// New returns a *zap.SugaredLogger that writes JSON to
// <dir>/logs/YYYY-MM-DD.log.  When tee == true, a colored console core on
// stderr is also attached.
func New(dir string, tee, debug bool) (*zap.SugaredLogger, error) {
	logDir := filepath.Join(dir, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	fileName := time.Now().Format("2006-01-02") + ".log"
	fileSink := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, fileName),
		MaxSize:    10, // MB
		MaxBackups: 7,
		MaxAge:     14, // days
		Compress:   true,
	}

	encCfg := encoderConfig()
	lvl := level(debug)
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(fileSink), lvl),
	}

	if tee {
		consoleCfg := encCfg
		consoleCfg.EncodeLevel = zapcore.LowercaseColorLevelEncoder
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(consoleCfg),
			zapcore.Lock(os.Stderr),
			lvl,
		))
	}

	z := zap.New(
		zapcore.NewTee(cores...),
		zap.ErrorOutput(zapcore.AddSync(fileSink)),
	).Sugar()
	zap.ReplaceGlobals(z.Desugar())

	z.Debugw("logger online", "dir", logDir, "tee", tee)
	return z, nil
}

// Console returns a console-only logger on stderr.
func Console(debug bool) *zap.SugaredLogger {
	encCfg := encoderConfig()
	z := zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		level(debug),
	)).Sugar()
	zap.ReplaceGlobals(z.Desugar())
	return z
}

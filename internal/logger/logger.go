// internal/logger/logger.go
//
// Structured JSON logger (Zap + Lumberjack).
//
// Context
// -------
// The service writes lifecycle and error events to one JSON log per day
// under `<root>/logs/<name>-YYYY-MM-DD.log`.  When running in an interactive
// TTY we tee the same events to stdout.  Rotation, compression, and
// retention are handled by Lumberjack; no external log-rotate job is
// required.
//
// Usage
// -----
//
//	log, err := logger.New(logger.Options{Root: cfg.Paths.Root, Name: "web", Tee: tty})
//	if err != nil { … }
//	log.Infow("llms.txt served", "bytes", n)
//
// Notes
// -----
// • Zap core uses ISO-8601 timestamps and lowercase levels.
// • Errors are written to the same sink via `ErrorOutput`.
// • Oxford commas, two spaces after periods.
package logger

import (
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls where and how much we log.
type Options struct {
	Root  string // log directory parent; logs/ is created below it
	Name  string // file prefix, e.g. "web" or "cli"
	Level string // debug, info, warn, error; empty means info
	Tee   bool   // also write to stdout
}

// New returns a *zap.SugaredLogger that writes JSON to
// <root>/logs/<name>-YYYY-MM-DD.log.  The logger is installed as the
// process-wide default via zap.ReplaceGlobals.
func New(opts Options) (*zap.SugaredLogger, error) {
	logDir := filepath.Join(opts.Root, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}

	lvl := zap.InfoLevel
	if opts.Level != "" {
		if err := lvl.Set(opts.Level); err != nil {
			return nil, err
		}
	}

	name := opts.Name
	if name == "" {
		name = "llmstxt"
	}
	fileSink := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, name+"-"+time.Now().Format("2006-01-02")+".log"),
		MaxSize:    50, // MB
		MaxBackups: 7,
		MaxAge:     14, // days
		Compress:   true,
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:      "ts",
		LevelKey:     "level",
		NameKey:      "logger",
		MessageKey:   "msg",
		CallerKey:    "caller",
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeLevel:  zapcore.LowercaseLevelEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	}

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(fileSink), lvl),
	}
	if opts.Tee {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.AddSync(os.Stdout),
			lvl,
		))
	}

	z := zap.New(
		zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.ErrorOutput(zapcore.AddSync(fileSink)),
	).Named(name).Sugar()

	zap.ReplaceGlobals(z.Desugar())

	z.Infow("logger online", "tee", opts.Tee, "level", lvl.String())
	return z, nil
}

// Bootstrap installs a console-only development logger so config loading
// can report problems before the file logger exists.
func Bootstrap() {
	z, err := zap.NewDevelopment()
	if err != nil {
		return
	}
	zap.ReplaceGlobals(z)
}

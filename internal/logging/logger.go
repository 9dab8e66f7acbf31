package logging

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where and how much the logger writes.
type Options struct {
	Dir       string // log file directory
	File      string // log file name inside Dir
	Level     string // debug, info, warn, error
	MaxSizeMB int    // size at which lumberjack rolls the file
	Console   io.Writer
}

// NewLogger tees every entry to the console and to an append-only file.
func NewLogger(opts Options) (*zap.Logger, error) {
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if opts.File == "" {
		opts.File = "link_checker.log"
	}
	if opts.MaxSizeMB <= 0 {
		opts.MaxSizeMB = 100
	}
	if opts.Console == nil {
		opts.Console = os.Stderr
	}
	lvl, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, err
	}
	file := zapcore.AddSync(&lumberjack.Logger{
		Filename: filepath.Join(opts.Dir, opts.File),
		MaxSize:  opts.MaxSizeMB, // MB
	})

	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05,000")
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.ConsoleSeparator = " - "
	enc := zapcore.NewConsoleEncoder(cfg)

	core := zapcore.NewTee(
		zapcore.NewCore(enc, file, lvl),
		zapcore.NewCore(enc.Clone(), zapcore.Lock(zapcore.AddSync(opts.Console)), lvl),
	)
	return zap.New(core), nil
}

package logger

import (
	"io"
	"log"
	"os"
)

type LogLevel int

const (
	LevelInfo LogLevel = iota
	LevelDebug
	LevelTrace
)

type Logger struct {
	*log.Logger
	level     LogLevel
	isVerbose bool
}

type Option func(*Logger)

func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.Logger = log.New(w, l.Logger.Prefix(), l.Logger.Flags())
	}
}

func WithPrefix(prefix string) Option {
	return func(l *Logger) {
		l.Logger = log.New(l.Logger.Writer(), prefix, l.Logger.Flags())
	}
}

func WithFlags(flags int) Option {
	return func(l *Logger) {
		l.Logger = log.New(l.Logger.Writer(), l.Logger.Prefix(), flags)
	}
}

func WithVerbose(verbose bool) Option {
	return func(l *Logger) {
		l.isVerbose = verbose
	}
}

// WithLevel sets the level. LevelTrace implies verbose output.
func WithLevel(level LogLevel) Option {
	return func(l *Logger) {
		l.SetLevel(level)
	}
}

func New(options ...Option) *Logger {
	l := &Logger{
		Logger:    log.New(os.Stdout, "", log.LstdFlags),
		level:     LevelInfo,
		isVerbose: false,
	}

	for _, opt := range options {
		opt(l)
	}

	return l
}

// Discard returns a logger that drops everything, for callers that don't care.
func Discard() *Logger {
	return New(WithOutput(io.Discard))
}

func (l *Logger) SetVerbose(verbose bool) {
	l.isVerbose = verbose
}

func (l *Logger) IsVerbose() bool {
	return l.isVerbose
}

func (l *Logger) SetLevel(level LogLevel) {
	l.level = level
	if level >= LevelTrace {
		l.isVerbose = true
	}
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.printf("INFO: ", format, args...)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	if l.isVerbose {
		l.printf("DEBUG: ", format, args...)
	}
}

func (l *Logger) Trace(format string, args ...interface{}) {
	if l.level >= LevelTrace {
		l.printf("TRACE: ", format, args...)
	}
}

// Error is always printed, regardless of level.
func (l *Logger) Error(format string, args ...interface{}) {
	l.printf("ERROR: ", format, args...)
}

func (l *Logger) printf(prefix, format string, args ...interface{}) {
	l.Logger.Printf(prefix+format, args...)
}

func (l *Logger) Fatal(format string, args ...interface{}) {
	l.Logger.Fatalf("FATAL: "+format, args...)
}

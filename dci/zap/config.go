package zap

import (
	"fmt"
	"os"
	"strings"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/LerianStudio/lib-dci/dci/config"
)

// Output encodings accepted by Config.Format.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config selects the level, encoding and optional OpenTelemetry bridge of a
// logger built by New.
type Config struct {
	Level  string `env:"DCI_LOG_LEVEL"  envDefault:"info"`
	Format string `env:"DCI_LOG_FORMAT" envDefault:"json"`
	// OTelLibraryName tees every entry into the global OpenTelemetry log
	// provider under this instrumentation scope.
	OTelLibraryName string `env:"DCI_OTEL_LIBRARY_NAME"`
}

// ConfigFromEnv reads Config from DCI_* variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Option adjusts New beyond what Config carries.
type Option func(*buildOptions)

type buildOptions struct {
	writer zapcore.WriteSyncer
}

// WithWriter sends entries to w instead of stderr.
func WithWriter(w zapcore.WriteSyncer) Option {
	return func(o *buildOptions) { o.writer = w }
}

// New builds a Logger from cfg.
func New(cfg Config, opts ...Option) (*Logger, error) {
	build := buildOptions{writer: zapcore.Lock(os.Stderr)}
	for _, opt := range opts {
		opt(&build)
	}

	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	encoder, err := newEncoder(cfg.Format)
	if err != nil {
		return nil, err
	}

	atomicLevel := zap.NewAtomicLevelAt(level)

	core := zapcore.NewCore(encoder, build.writer, atomicLevel)
	if name := strings.TrimSpace(cfg.OTelLibraryName); name != "" {
		core = zapcore.NewTee(core, otelzap.NewCore(name))
	}

	return &Logger{
		base:  zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)),
		level: &atomicLevel,
	}, nil
}

func parseLevel(raw string) (zapcore.Level, error) {
	if strings.TrimSpace(raw) == "" {
		return zapcore.InfoLevel, nil
	}

	level, err := zapcore.ParseLevel(strings.TrimSpace(raw))
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q: %w", raw, err)
	}

	return level, nil
}

//nolint:ireturn
func newEncoder(format string) (zapcore.Encoder, error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatJSON:
		return zapcore.NewJSONEncoder(encoderConfig), nil
	case FormatConsole:
		return zapcore.NewConsoleEncoder(encoderConfig), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}

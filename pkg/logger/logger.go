package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"
)

var Logger zerolog.Logger

// Init configures the global logger. In development mode output is
// pretty-printed to the console, otherwise structured JSON is written
// to stdout.
func Init(serviceName string, isDevelopment bool) {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var output io.Writer = os.Stdout
	if isDevelopment {
		output = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		}
	}

	Logger = zerolog.New(output).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()

	log.Logger = Logger
}

// SetLevel adjusts the global log level. Unknown level names are ignored.
func SetLevel(level string) {
	if parsed, err := zerolog.ParseLevel(level); err == nil {
		Logger = Logger.Level(parsed)
		log.Logger = Logger
	}
}

// WithContext returns a logger enriched with trace information when the
// request context carries an active span.
func WithContext(ctx context.Context) *zerolog.Logger {
	logger := Logger.With().Logger()

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		logger = logger.With().
			Str("trace_id", span.SpanContext().TraceID().String()).
			Logger()
	}

	return &logger
}

// Info logs at info level with context.
func Info(ctx context.Context) *zerolog.Event {
	return WithContext(ctx).Info()
}

// Error logs at error level with context.
func Error(ctx context.Context) *zerolog.Event {
	return WithContext(ctx).Error()
}

// Warn logs at warn level with context.
func Warn(ctx context.Context) *zerolog.Event {
	return WithContext(ctx).Warn()
}

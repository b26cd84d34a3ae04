package logging

import (
	"context"
	"io"
	"os"

	aulogging "github.com/StephanHCB/go-autumn-logging"
	auzerolog "github.com/StephanHCB/go-autumn-logging-zerolog"
	"github.com/rs/zerolog"
)

type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})

	// expected to terminate the process
	Fatal(format string, v ...interface{})
}

type loggingWrapper struct {
	logger *zerolog.Logger
}

func (l *loggingWrapper) Debug(format string, v ...interface{}) {
	l.logger.Debug().Msgf(format, v...)
}

func (l *loggingWrapper) Info(format string, v ...interface{}) {
	l.logger.Info().Msgf(format, v...)
}

func (l *loggingWrapper) Warn(format string, v ...interface{}) {
	l.logger.Warn().Msgf(format, v...)
}

func (l *loggingWrapper) Error(format string, v ...interface{}) {
	l.logger.Error().Msgf(format, v...)
}

// expected to terminate the process
func (l *loggingWrapper) Fatal(format string, v ...interface{}) {
	l.logger.Fatal().Msgf(format, v...)
}

// context key with a separate type, so no other package has a chance of accessing it
type key int

// the value actually doesn't matter, the type alone will guarantee no package gets at this context value
const (
	LoggerKey key = iota
	RequestIdKey
)

const (
	DefaultRequestID = "00000000"
	UnknownRequestID = "ffffffff"
)

var (
	applicationName           = "reg-response-result"
	output          io.Writer = os.Stdout
)

// Setup configures severity and output style for all loggers created afterwards.
//
// It also routes go-autumn-logging (used by the downstream rest clients) to zerolog,
// so request logging of downstream calls ends up in the same place.
func Setup(appName string, severity string, jsonStyle bool) {
	applicationName = appName

	aulogging.RequestIdRetriever = GetRequestID
	if jsonStyle {
		output = os.Stdout
		auzerolog.SetupJsonLogging(appName)
	} else {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
		aulogging.DefaultRequestIdValue = DefaultRequestID
		auzerolog.SetupPlaintextLogging()
	}

	zerolog.SetGlobalLevel(ParseSeverity(severity))
}

func ParseSeverity(severity string) zerolog.Level {
	switch severity {
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// GetRequestID returns the request id stored in the context.
func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return DefaultRequestID
	}
	if reqID, ok := ctx.Value(RequestIdKey).(string); ok {
		return reqID
	}
	return UnknownRequestID
}

func ContextWithRequestID(ctx context.Context, reqID string) context.Context {
	return context.WithValue(ctx, RequestIdKey, reqID)
}

// CreateContextWithLoggerForRequestId places a logger for the given request id in the context.
func CreateContextWithLoggerForRequestId(ctx context.Context, reqID string) context.Context {
	return context.WithValue(ctx, LoggerKey, newLogger(reqID))
}

// whenever processing a specific request, use this and give it the context.
func LoggerFromContext(ctx context.Context) Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(LoggerKey).(Logger); ok {
			return logger
		}
	}

	return NewLogger()
}

// WithRequestID returns the context logger, or a new one tagged with reqID.
func WithRequestID(ctx context.Context, reqID string) Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(LoggerKey).(Logger); ok {
			return logger
		}
	}

	return newLogger(reqID)
}

// you should only use this when your code really does not belong to request processing.
// otherwise be a good citizen and do pass down the context, so log output can be associated with
// the request being processed!
func NoCtx() Logger {
	return newLogger(DefaultRequestID)
}

func NewLogger() Logger {
	return newLogger("")
}

func newLogger(reqID string) Logger {
	ctx := zerolog.New(output).
		With().
		Str("App", applicationName).
		Timestamp()

	if reqID != "" {
		ctx = ctx.Str("RequestId", reqID)
	}

	logger := ctx.Logger()

	return &loggingWrapper{
		logger: &logger,
	}
}

func NewNoopLogger() Logger {
	return &noopLogger{}
}

type noopLogger struct {
}

func (l *noopLogger) Debug(format string, v ...interface{}) {
}

func (l *noopLogger) Info(format string, v ...interface{}) {
}

func (l *noopLogger) Warn(format string, v ...interface{}) {
}

func (l *noopLogger) Error(format string, v ...interface{}) {
}

// expected to terminate the process
func (l *noopLogger) Fatal(format string, v ...interface{}) {
}

// Package log provides a simple wrapper around logrus
// with a familiar API (Infof, Errorf, etc.) and per-call IDs.
package log

import (
	"bytes"
	stdctx "context"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"

	callctx "github.com/atmoshq/weatherdesk/context"
)

// Logger is the global logger instance
var Logger = logrus.New()

// CustomFormatter implements logrus.Formatter for the desired output format
type CustomFormatter struct {
	TimestampFormat string
}

// Format formats a log entry as [<time>] [LEVEL] [file:line] <message> [call:<id>]
func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}

	fmt.Fprintf(b, "[%s] ", entry.Time.Format(f.TimestampFormat))
	fmt.Fprintf(b, "[%s] ", strings.ToUpper(entry.Level.String()))

	// Walk the stack for the caller, skipping logrus internals and this wrapper
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	file := ""
	line := 0

	for {
		frame, more := frames.Next()

		skip := strings.Contains(frame.File, "github.com/sirupsen/logrus") ||
			strings.HasSuffix(frame.File, "log/log.go") ||
			strings.Contains(frame.File, "runtime/")
		if skip {
			if !more {
				break
			}
			continue
		}

		file = frame.File
		line = frame.Line
		break
	}

	if file != "" {
		parts := strings.Split(file, "/")
		fmt.Fprintf(b, "[%s:%d] ", parts[len(parts)-1], line)
	}

	b.WriteString(entry.Message)

	if len(entry.Data) > 0 {
		if callID, ok := entry.Data["call_id"].(string); ok && callID != "" {
			fmt.Fprintf(b, " [call:%s]", callID)
		}
		for key, value := range entry.Data {
			if key != "call_id" {
				fmt.Fprintf(b, " %s=%v", key, value)
			}
		}
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

// withCallIDField attaches the context's call ID to the entry
func withCallIDField(ctx stdctx.Context) *logrus.Entry {
	return Logger.WithField("call_id", callctx.CallIDFromContext(ctx))
}

// Infof logs formatted message at info level
func Infof(ctx stdctx.Context, format string, args ...interface{}) {
	withCallIDField(ctx).Infof(format, args...)
}

// Info logs a message at info level
func Info(ctx stdctx.Context, args ...interface{}) {
	withCallIDField(ctx).Info(args...)
}

// Debugf logs formatted message at debug level
func Debugf(ctx stdctx.Context, format string, args ...interface{}) {
	withCallIDField(ctx).Debugf(format, args...)
}

// Debug logs a message at debug level
func Debug(ctx stdctx.Context, args ...interface{}) {
	withCallIDField(ctx).Debug(args...)
}

// Warnf logs formatted message at warning level
func Warnf(ctx stdctx.Context, format string, args ...interface{}) {
	withCallIDField(ctx).Warnf(format, args...)
}

// Errorf logs formatted message at error level
func Errorf(ctx stdctx.Context, format string, args ...interface{}) {
	withCallIDField(ctx).Errorf(format, args...)
}

// Error logs a message at error level
func Error(ctx stdctx.Context, args ...interface{}) {
	withCallIDField(ctx).Error(args...)
}

// Fatalf logs formatted message at fatal level and exits
func Fatalf(ctx stdctx.Context, format string, args ...interface{}) {
	withCallIDField(ctx).Fatalf(format, args...)
}

// SetLevel sets the global log level
func SetLevel(level logrus.Level) {
	Logger.SetLevel(level)
}

// SetOutput sets the global log output
func SetOutput(out io.Writer) {
	Logger.SetOutput(out)
}

// Init initializes the logger with default settings
func Init() {
	Logger.SetFormatter(&CustomFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
	})
	Logger.SetLevel(logrus.InfoLevel)
}

// WithField creates a logger with a predefined field
func WithField(key string, value interface{}) *logrus.Entry {
	return Logger.WithField(key, value)
}

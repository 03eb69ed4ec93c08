// Package logging provides structured logging for the application.
//
// Every failure path in the tool degrades to a diagnostic through a Logger;
// nothing logs fatally. In GUI mode a line sink can mirror messages into the
// activity pane.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LineSink receives each formatted log line, already stripped of its
// trailing newline. Used by the GUI to mirror diagnostics on screen.
type LineSink func(line string)

// Logger wraps zerolog with an optional GUI sink.
type Logger struct {
	zlog zerolog.Logger
}

// NewLogger creates a logger writing console-formatted lines to stderr.
// If sink is non-nil every line is also delivered to it.
func NewLogger(sink LineSink) *Logger {
	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}

	var output io.Writer = console
	if sink != nil {
		mirror := zerolog.ConsoleWriter{
			Out:        sinkWriter{sink},
			TimeFormat: "15:04:05",
			NoColor:    true,
		}
		output = zerolog.MultiLevelWriter(console, mirror)
	}

	zlog := zerolog.New(output).
		With().
		Timestamp().
		Logger()

	return &Logger{zlog: zlog}
}

// NewDefaultLogger creates a logger with no GUI sink.
func NewDefaultLogger() *Logger {
	return NewLogger(nil)
}

// Info returns an info level event.
func (l *Logger) Info() *zerolog.Event {
	return l.zlog.Info()
}

// Error returns an error level event.
func (l *Logger) Error() *zerolog.Event {
	return l.zlog.Error()
}

// Warn returns a warn level event.
func (l *Logger) Warn() *zerolog.Event {
	return l.zlog.Warn()
}

// SetGlobalLevel sets the global log level.
func SetGlobalLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}

// sinkWriter adapts a LineSink to io.Writer for zerolog's console writer.
type sinkWriter struct {
	sink LineSink
}

func (w sinkWriter) Write(p []byte) (int, error) {
	w.sink(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

func init() {
	// Set default log level to info
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	// Configure global logger
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	})
}

package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"cloud.google.com/go/logging"
)

// Logger writes entries to Google Cloud Logging when a project is configured,
// and to a local writer otherwise.
type Logger struct {
	logName         string
	projectID       string
	debug           bool
	defaultSeverity logging.Severity
	writer          io.Writer

	mu                sync.Mutex
	loggingClient     *logging.Client
	stackDriverLogger *logging.Logger
}

// Option configures a Logger.
type Option func(*Logger)

// WithProjectID sends entries to Cloud Logging in projectID.
func WithProjectID(projectID string) Option {
	return func(l *Logger) { l.projectID = projectID }
}

// WithDebug enables Debug entries.
func WithDebug(debug bool) Option {
	return func(l *Logger) { l.debug = debug }
}

// WithDefaultSeverity sets the severity used by Log for entries that have none.
func WithDefaultSeverity(severity logging.Severity) Option {
	return func(l *Logger) { l.defaultSeverity = severity }
}

// WithWriter sets the local destination. Defaults to os.Stderr.
func WithWriter(w io.Writer) Option {
	return func(l *Logger) { l.writer = w }
}

// New creates a Logger named logName. If a project ID is given and the Cloud
// Logging client cannot be created, it falls back to local output.
func New(logName string, opts ...Option) *Logger {
	logger := &Logger{
		logName:         logName,
		defaultSeverity: logging.Default,
		writer:          os.Stderr,
	}
	for _, opt := range opts {
		opt(logger)
	}
	if logger.projectID != "" {
		loggingClient, err := logging.NewClient(context.Background(), logger.projectID)
		if err != nil {
			log.Printf("Failed to create logging client, logging locally: %v", err)
			return logger
		}
		logger.loggingClient = loggingClient
		logger.stackDriverLogger = loggingClient.Logger(logName)
	}
	return logger
}

// Debugging reports whether Debug entries are written.
func (logger *Logger) Debugging() bool {
	return logger.debug
}

func (logger *Logger) Info(message interface{}) {
	logger.Log(logging.Entry{
		Payload:  message,
		Severity: logging.Info,
	})
}
func (logger *Logger) Debug(message interface{}) {
	if !logger.debug {
		return
	}
	logger.Log(logging.Entry{
		Payload:  message,
		Severity: logging.Debug,
	})
}
func (logger *Logger) Error(message interface{}) {
	logger.Log(logging.Entry{
		Payload:  message,
		Severity: logging.Error,
	})
}
func (logger *Logger) Critical(message interface{}) {
	logger.Log(logging.Entry{
		Payload:  message,
		Severity: logging.Critical,
	})
}

// Log writes entry as is, apart from filling in the default severity.
func (logger *Logger) Log(entry logging.Entry) {
	e := entry
	if e.Severity == logging.Default {
		e.Severity = logger.defaultSeverity
	}
	if logger.stackDriverLogger != nil {
		logger.stackDriverLogger.Log(e)
		return
	}
	logger.mu.Lock()
	defer logger.mu.Unlock()
	fmt.Fprintf(logger.writer, "%s %s: %v\n", e.Severity, logger.logName, e.Payload)
}
func (logger *Logger) Infof(format string, a ...interface{}) {
	logger.Info(fmt.Sprintf(format, a...))
}
func (logger *Logger) Debugf(format string, a ...interface{}) {
	if !logger.debug {
		return
	}
	logger.Debug(fmt.Sprintf(format, a...))
}
func (logger *Logger) Errorf(format string, a ...interface{}) {
	logger.Error(fmt.Sprintf(format, a...))
}
func (logger *Logger) Criticalf(format string, a ...interface{}) {
	logger.Critical(fmt.Sprintf(format, a...))
}

// Close flushes and closes the Cloud Logging client, if any.
func (logger *Logger) Close() error {
	if logger.loggingClient == nil {
		return nil
	}
	return logger.loggingClient.Close()
}

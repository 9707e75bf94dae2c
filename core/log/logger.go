// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type used by the strutil command line
//              tool: leveled structured logging with context fields, a
//              correlation ID per run, and integration with the strutil
//              error system.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package log

import (
	"errors"
	"io"
	"os"
	"sync"
	"time"

	strerror "github.com/msto63/strutil/core/error"
)

// Logger writes structured entries at or above its level.
// A Logger is immutable; WithField and WithCorrelationID return copies.
type Logger struct {
	level         Level
	formatter     Formatter
	output        io.Writer
	name          string
	contextFields Fields
	correlationID string

	// shared by copies so entries from one run never interleave
	writeMu *sync.Mutex
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// NewWithConfig creates a new logger with the specified configuration.
// A nil Output means stderr.
func NewWithConfig(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}
	return &Logger{
		level:         config.Level,
		formatter:     GetFormatter(config.Format),
		output:        output,
		name:          config.Name,
		contextFields: make(Fields),
		writeMu:       &sync.Mutex{},
	}
}

// Discard returns a logger that drops every entry
func Discard() *Logger {
	return NewWithConfig(Config{Level: LevelFatal + 1, Output: io.Discard})
}

// WithField returns a copy of the logger with an additional context field
func (l *Logger) WithField(key string, value interface{}) *Logger {
	c := *l
	c.contextFields = make(Fields, len(l.contextFields)+1)
	for k, v := range l.contextFields {
		c.contextFields[k] = v
	}
	c.contextFields[key] = value
	return &c
}

// WithCorrelationID returns a copy of the logger tagged with correlationID
func (l *Logger) WithCorrelationID(correlationID string) *Logger {
	c := *l
	c.correlationID = correlationID
	return &c
}

// Debug logs a message at debug level
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, 0, fields...)
}

// Info logs a message at info level
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, 0, fields...)
}

// Warn logs a message at warn level
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, 0, fields...)
}

// ErrorWithErr logs message at error level with err attached
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, 0, fields...)
}

// LogError logs err with its code, severity and details as fields.
// Low severity goes to info, medium to warn, and anything that should
// alert to error. Errors outside the strutil error system go to error.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	var se *strerror.Error
	if !errors.As(err, &se) {
		l.ErrorWithErr(err.Error(), err)
		return
	}

	fields := Fields{
		"error_code":     se.Code().String(),
		"error_severity": se.Severity().String(),
	}
	for k, v := range se.Details() {
		fields["error_"+k] = v
	}
	if op := se.Operation(); op != "" {
		fields["error_operation"] = op
	}

	level := LevelWarn
	switch sev := se.Severity(); {
	case sev.ShouldAlert():
		level = LevelError
	case sev == strerror.SeverityLow:
		level = LevelInfo
	}
	l.log(level, se.Message(), err, 0, fields)
}

// StartTimer starts a timer that logs at debug level how long operation took
func (l *Logger) StartTimer(operation string) *Timer {
	return &Timer{logger: l, operation: operation, startTime: time.Now()}
}

func (l *Logger) log(level Level, message string, err error, duration time.Duration, fields ...Fields) {
	if !level.ShouldLog(l.level) {
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.CorrelationID = l.correlationID
	entry.Error = err
	entry.Duration = duration
	entry.Fields = entry.Fields.Merge(l.contextFields)
	for _, set := range fields {
		entry.Fields = entry.Fields.Merge(set)
	}

	formatted, formatErr := l.formatter.Format(entry)
	if formatErr != nil {
		return
	}
	l.writeMu.Lock()
	defer l.writeMu.Unlock()
	_, _ = l.output.Write(formatted)
}

// Timer measures an operation and logs its duration on Stop
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	stopped   bool
}

// Elapsed returns the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop logs the elapsed time once and returns it.
// Later calls return 0.
func (t *Timer) Stop(fields ...Fields) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true
	elapsed := t.Elapsed()
	all := append([]Fields{{"operation": t.operation}}, fields...)
	t.logger.log(LevelDebug, "operation completed", nil, elapsed, all...)
	return elapsed
}

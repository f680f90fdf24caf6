package logging

import (
	"fmt"
	"log"
	"maps"
	"os"
	"sort"
	"strings"
)

// DefaultLogger is a logger implementation on Go's standard log package.
// Debug/Info go to stdout, Warn/Error to stderr.
type DefaultLogger struct {
	stdout *log.Logger
	stderr *log.Logger
	level  Level
	fields Fields
}

// NewDefaultLogger creates a new default logger at InfoLevel.
func NewDefaultLogger() *DefaultLogger {
	return &DefaultLogger{
		stdout: log.New(os.Stdout, "", log.LstdFlags),
		stderr: log.New(os.Stderr, "", log.LstdFlags),
		level:  InfoLevel,
		fields: make(Fields),
	}
}

func (d *DefaultLogger) format(level Level, err error, msg string, fields ...Fields) string {
	merged := make(Fields)
	maps.Copy(merged, d.fields)
	for _, f := range fields {
		maps.Copy(merged, f)
	}
	if err != nil {
		merged["error"] = err.Error()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", level, msg)

	if len(merged) > 0 {
		keys := make([]string, 0, len(merged))
		for k := range merged {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		b.WriteString(" |")
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%v", k, merged[k])
		}
	}

	return b.String()
}

func (d *DefaultLogger) Debug(msg string, fields ...Fields) {
	if d.level <= DebugLevel {
		d.stdout.Println(d.format(DebugLevel, nil, msg, fields...))
	}
}

func (d *DefaultLogger) Info(msg string, fields ...Fields) {
	if d.level <= InfoLevel {
		d.stdout.Println(d.format(InfoLevel, nil, msg, fields...))
	}
}

func (d *DefaultLogger) Warn(msg string, fields ...Fields) {
	if d.level <= WarnLevel {
		d.stderr.Println(d.format(WarnLevel, nil, msg, fields...))
	}
}

func (d *DefaultLogger) Error(err error, msg string, fields ...Fields) {
	if d.level <= ErrorLevel {
		d.stderr.Println(d.format(ErrorLevel, err, msg, fields...))
	}
}

// WithFields returns a copy of the logger with the given fields preset.
func (d *DefaultLogger) WithFields(fields Fields) Logger {
	merged := make(Fields)
	maps.Copy(merged, d.fields)
	maps.Copy(merged, fields)

	return &DefaultLogger{
		stdout: d.stdout,
		stderr: d.stderr,
		level:  d.level,
		fields: merged,
	}
}

// SetLevel sets the minimum log level.
func (d *DefaultLogger) SetLevel(level Level) {
	d.level = level
}

// Package logging sets up the global logger. Import it with the blank
// identifier; packages that need a custom logger construct their own.
package logging

import (
	"os"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

// init configures level and format from environment variables and installs
// a hook that stamps trace ids onto entries logged with a context.
func init() {
	log.AddHook(&traceContextHook{})

	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}

	level, err := log.ParseLevel(logLevel)
	if err != nil {
		log.Fatal(err)
	}

	log.SetLevel(level)
	log.SetFormatter(formatterFromEnv())

	// Log filename and line number when debugging.
	if log.StandardLogger().GetLevel() == log.DebugLevel {
		log.SetReportCaller(true)
	}
}

// formatterFromEnv returns a new formatter based on LOG_FORMAT.
func formatterFromEnv() log.Formatter {
	if os.Getenv("LOG_FORMAT") == "json" {
		return &log.JSONFormatter{}
	}

	return &log.TextFormatter{}
}

type traceContextHook struct{}

func (hook *traceContextHook) Levels() []log.Level {
	return log.AllLevels
}

// Fire copies the trace and span ids of the entry's context into log
// fields so log lines can be correlated with traces.
func (hook *traceContextHook) Fire(entry *log.Entry) error {
	if entry.Context == nil {
		return nil
	}

	span := trace.SpanFromContext(entry.Context).SpanContext()
	if span.IsValid() {
		entry.Data["trace_id"] = span.TraceID().String()
		entry.Data["span_id"] = span.SpanID().String()
	}

	return nil
}

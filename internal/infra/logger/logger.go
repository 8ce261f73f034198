// internal/infra/logger/logger.go
package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger instance
var Log = logrus.New()

// Init initializes the global logger. Production and staging environments
// log JSON for log aggregation; everything else gets a readable colored
// text format.
func Init(logLevel, environment string) {
	Log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(strings.ToLower(logLevel))
	if err != nil {
		Log.Warnf("Invalid log level '%s', defaulting to 'info'. Error: %v", logLevel, err)
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	switch strings.ToLower(environment) {
	case "production", "staging":
		Log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00", // ISO8601
		})
	default:
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
			ForceColors:     true,
		})
	}

	Log.Debugf("Log level set to: %s", Log.GetLevel().String())
}

// Get returns the configured global logger.
func Get() *logrus.Logger {
	return Log
}

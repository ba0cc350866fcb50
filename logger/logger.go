package logger

import (
	"os"
	"time"

	"github.com/fleetdesk/fleet-api/config"

	"github.com/getsentry/sentry-go"
	sentrylogrus "github.com/getsentry/sentry-go/logrus"
	log "github.com/sirupsen/logrus"
)

var logLevel log.Level

// InitLogger initializes the API logger
func InitLogger() {
	cfg := config.Get()

	switch cfg.LogLevel {
	case "DEBUG":
		logLevel = log.DebugLevel
	case "ERROR":
		logLevel = log.ErrorLevel
	default:
		logLevel = log.InfoLevel
	}

	if cfg.SentryDSN != "" {
		hook, err := sentrylogrus.New(
			[]log.Level{log.ErrorLevel, log.FatalLevel, log.PanicLevel},
			sentry.ClientOptions{
				Dsn:        cfg.SentryDSN,
				ServerName: cfg.Hostname,
			},
		)
		if err != nil {
			log.WithField("error", err.Error()).Error("Failed to initialize sentry hook")
		} else {
			log.AddHook(hook)
		}
		log.SetFormatter(&log.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap: log.FieldMap{
				log.FieldKeyTime: "@timestamp",
			},
		})
	}

	log.SetOutput(os.Stdout)
	log.SetLevel(logLevel)
}

// FlushLogger drains any buffered log events before shutdown
func FlushLogger() {
	sentry.Flush(2 * time.Second)
}

package logger

import (
	log "github.com/sirupsen/logrus"
)

// LogErrorAndPanic records a fatal initialization error and panics.
// Used only during startup, when continuing without the dependency
// would leave the service in an unusable state.
func LogErrorAndPanic(msg string, err error) {
	log.WithField("error", err.Error()).Error(msg)
	panic(msg + ": " + err.Error())
}

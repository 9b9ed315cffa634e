package logging

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// New builds the process-wide logrus logger. Development gets human-readable
// text output; everything else logs JSON for log shippers.
func New(logLevel, environment string) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(strings.ToLower(logLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if environment == "development" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return logger
}

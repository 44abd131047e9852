// internal/logging/logging.go
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Setup configures the standard logrus logger: JSON in production, text with
// full timestamps elsewhere. An unknown level falls back to info.
func Setup(production bool, level string) {
	Configure(logrus.StandardLogger(), os.Stdout, production, level)
}

func Configure(logger *logrus.Logger, out io.Writer, production bool, level string) {
	logger.SetOutput(out)

	if production {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
		logger.WithField("level", level).Warn("Unknown log level, using info")
	}
	logger.SetLevel(lvl)
}

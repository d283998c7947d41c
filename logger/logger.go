package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Init configures the global logrus logger: JSON to stdout at the
// configured level.
func Init(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}

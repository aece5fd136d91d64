package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Init configures the process-wide logrus logger. When logFilePath is empty
// or the file cannot be opened, logs go to stdout.
func Init(logFilePath string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.InfoLevel)

	if logFilePath == "" {
		logrus.SetOutput(os.Stdout)
		return
	}

	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		logrus.SetOutput(os.Stdout)
		logrus.Warnf("Failed to open log file (%s), using stdout: %v", logFilePath, err)
		return
	}
	logrus.SetOutput(logFile)
}

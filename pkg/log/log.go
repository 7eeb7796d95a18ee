package log

import (
	"io"
	"os"
	"path/filepath"

	"github.com/jesseduffield/lazyls/pkg/config"
	"github.com/sirupsen/logrus"
)

// NewLogger returns a new logger. Every entry carries the build and the
// listing defaults the user config supplied.
func NewLogger(config *config.AppConfig) *logrus.Entry {
	var log *logrus.Logger
	if config.Debug || os.Getenv("DEBUG") == "TRUE" {
		log = newDevelopmentLogger(config.ConfigDir)
	} else {
		log = newProductionLogger()
	}

	// highly recommended: tail -f development.log | humanlog
	// https://github.com/aybabtme/humanlog
	log.Formatter = &logrus.JSONFormatter{}

	fields := logrus.Fields{
		"debug":      config.Debug,
		"version":    config.Version,
		"commit":     config.Commit,
		"buildDate":  config.BuildDate,
		"configFile": config.ConfigFilename(),
	}
	if config.UserConfig != nil {
		listing := config.UserConfig.Listing
		fields["language"] = config.UserConfig.Language
		fields["timeStyle"] = listing.TimeStyle
		fields["timeField"] = listing.TimeField
		fields["direction"] = listing.Direction
		fields["ignore"] = listing.Ignore
	}

	return log.WithFields(fields)
}

// NewSilentLogger returns a logger for use before the app config is loaded.
// It only keeps errors and writes them nowhere.
func NewSilentLogger() *logrus.Entry {
	return logrus.NewEntry(newProductionLogger())
}

func getLogLevel() logrus.Level {
	strLevel := os.Getenv("LOG_LEVEL")
	level, err := logrus.ParseLevel(strLevel)
	if err != nil {
		return logrus.DebugLevel
	}
	return level
}

// newDevelopmentLogger appends to development.log in the config directory.
// When that file can't be opened the log goes to stderr instead, so a debug
// run still lists.
func newDevelopmentLogger(configDir string) *logrus.Logger {
	log := logrus.New()
	log.SetLevel(getLogLevel())
	logPath := filepath.Join(configDir, "development.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Warnf("unable to log to %s: %v", logPath, err)
		return log
	}
	log.SetOutput(file)
	return log
}

func newProductionLogger() *logrus.Logger {
	log := logrus.New()
	log.Out = io.Discard
	log.SetLevel(logrus.ErrorLevel)
	return log
}

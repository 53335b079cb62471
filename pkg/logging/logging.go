package logging

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// DefaultLevel is used when no level, or an unparseable one, is configured
const DefaultLevel = log.InfoLevel

// Setup configures the standard logrus logger. JSON output is meant for
// Lambda, where CloudWatch indexes the fields; text output is for terminals.
func Setup(level string, jsonOutput bool) {
	SetupLogger(log.StandardLogger(), os.Stderr, level, jsonOutput)
}

// SetupLogger configures logger to write to out at the given level
func SetupLogger(logger *log.Logger, out io.Writer, level string, jsonOutput bool) {
	logger.SetOutput(out)

	if jsonOutput {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	lvl := DefaultLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			logger.SetLevel(DefaultLevel)
			logger.WithFields(log.Fields{"level": level}).Warn("Invalid log level, using info")
			return
		}
		lvl = parsed
	}
	logger.SetLevel(lvl)
}

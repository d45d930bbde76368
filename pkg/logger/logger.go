package logger

import (
	"os"

	"github.com/google/uuid"
	"github.com/nullseed/logruseq"
	"github.com/sirupsen/logrus"
)

var entry *logrus.Entry

type Logger = *logrus.Entry

// Init configures the process-wide logger. Production gets JSON output,
// everything else a colored text formatter. When a Seq endpoint is
// configured the matching hook is attached so runs can be traced remotely.
func Init(environment, seqURL, seqToken string) {
	logger := logrus.Logger{
		Out:   os.Stdout,
		Hooks: make(logrus.LevelHooks),
		Level: logrus.DebugLevel,
	}

	if environment == "production" {
		logger.Formatter = &logrus.JSONFormatter{}
	} else {
		logger.Formatter = &logrus.TextFormatter{
			ForceColors:      true,
			FullTimestamp:    false,
			QuoteEmptyFields: true,
		}
	}

	if seqURL != "" {
		logger.AddHook(logruseq.NewSeqHook(seqURL, logruseq.OptionAPIKey(seqToken)))
	}

	// every run gets its own id so log lines from concurrent invocations
	// can be told apart
	entry = logger.WithField("RunId", uuid.New().String())
}

// AddGlobalField attaches a field to every subsequent log line.
func AddGlobalField(name string, value interface{}) Logger {
	entry = entry.WithField(name, value)
	return entry
}

// Get returns the shared log entry, initializing a default development
// logger if Init was never called (tests mostly).
func Get() Logger {
	if entry == nil {
		Init("development", "", "")
	}
	return entry
}

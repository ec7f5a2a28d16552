package core

import (
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var once sync.Once

type logger struct {
	*log.Logger
}

var singleton *logger

func getLogger() *logger {
	once.Do(
		func() {
			cfg := DefaultConfig()
			l := log.NewWithOptions(os.Stderr, log.Options{
				ReportCaller:    cfg.Log.ReportCaller,
				ReportTimestamp: cfg.Log.ReportTimestamp,
				TimeFormat:      time.RFC3339,
				Prefix:          cfg.Log.Prefix,
			})
			l.SetLevel(log.InfoLevel)
			singleton = &logger{l}
		})
	return singleton
}

// applyLogConfig reconfigures the shared logger in place.
func applyLogConfig(cfg LogConfig, level log.Level) {
	l := getLogger()
	l.SetLevel(level)
	l.SetPrefix(cfg.Prefix)
	l.SetReportCaller(cfg.ReportCaller)
	l.SetReportTimestamp(cfg.ReportTimestamp)
}

func LogDebug(msg string, args ...interface{}) {
	getLogger().Debugf(msg, args...)
}

func LogInfo(msg string, args ...interface{}) {
	getLogger().Infof(msg, args...)
}

func LogWarn(msg string, args ...interface{}) {
	getLogger().Warnf(msg, args...)
}

func LogError(msg string, args ...interface{}) {
	getLogger().Errorf(msg, args...)
}

func LogFatal(msg string, args ...interface{}) {
	getLogger().Fatalf(msg, args...)
}

package logger

import (
	"employee-directory/pkg/config"
	log "github.com/sirupsen/logrus"
	"os"
)

// Setup configures the standard logrus logger from cfg.
func Setup(cfg config.LogConfig) {
	log.SetOutput(os.Stdout)

	switch cfg.Format {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	default:
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		log.Warnf("unknown log level %q, falling back to info", cfg.Level)
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger builds the logrus logger shared by the bridge's components.
func (c *Config) Logger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors: c.NoColor,
		FullTimestamp: true,
	})
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	log.SetLevel(level)
	return log
}

package logrusconfig

import (
	"flag"

	prefixed "github.com/BertoldVdb/logrus-prefixed-formatter"
	"github.com/sirupsen/logrus"
)

var loglevel *int

// InitParam registers the -loglevel flag. Call it before flag.Parse.
func InitParam() {
	loglevel = flag.Int("loglevel", int(logrus.InfoLevel), "The loglevel to use. Valid values are from 0 to 6. Higher values output more information")
}

func newFormatter() logrus.Formatter {
	customFormatter := new(prefixed.TextFormatter)
	customFormatter.TimestampFormat = "2006-01-02 15:04:05"
	customFormatter.FullTimestamp = true
	customFormatter.PrefixPadding = 20
	customFormatter.SpacePadding = 50
	return customFormatter
}

// GetLogger returns a logger at level, or at the level given by -loglevel if InitParam was called
func GetLogger(level logrus.Level) *logrus.Entry {
	logrus.ErrorKey = "$error"
	logger := logrus.New()
	if loglevel == nil {
		logger.SetLevel(level)
	} else {
		logger.SetLevel(logrus.Level(*loglevel))
	}
	logger.SetFormatter(newFormatter())
	return logrus.NewEntry(logger)
}

// GetPrefixedLogger is GetLogger with a prefix shown in front of every message
func GetPrefixedLogger(level logrus.Level, prefix string) *logrus.Entry {
	return GetLogger(level).WithField("prefix", prefix)
}

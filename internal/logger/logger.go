package logger

import (
	"io"
	"time"

	"github.com/natefinch/lumberjack"
	logrus "github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"
)

// Setup points logrus at a rotating log file and returns the rotator so the
// HTTP request logger can share it.
func Setup(file, level string) io.Writer {
	rotator := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    10, // megabytes
		MaxBackups: 7,
		MaxAge:     7, // days
		Compress:   true,
	}

	logrus.SetOutput(rotator)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.DebugLevel
	}
	logrus.SetLevel(lvl)
	return rotator
}

// GormLogger routes GORM's SQL and slow-query logs through logrus.
func GormLogger() gormlogger.Interface {
	level := gormlogger.Warn
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		level = gormlogger.Info
	}
	return gormlogger.New(logrus.StandardLogger(), gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})
}

package logger

import (
	"github.com/sirupsen/logrus"
)

// Logger writes through logrus only when enabled, tagging every record with
// the component it was created for.
type Logger struct {
	flag      bool
	component string
	entry     *logrus.Entry
}

func New(flag bool, component string) *Logger {
	if flag {
		logrus.SetLevel(logrus.DebugLevel)
	}
	return &Logger{
		flag:      flag,
		component: component,
		entry: logrus.WithFields(logrus.Fields{
			"component": component,
		}),
	}
}

// With returns a logger carrying an extra field.
func (l *Logger) With(key string, value interface{}) *Logger {
	return &Logger{
		flag:      l.flag,
		component: l.component,
		entry:     l.entry.WithField(key, value),
	}
}

func (l *Logger) Info(args ...interface{}) {
	if l.flag {
		l.entry.Info(args...)
	}
}

func (l *Logger) Debug(args ...interface{}) {
	if l.flag {
		l.entry.Debug(args...)
	}
}

func (l *Logger) Warn(args ...interface{}) {
	if l.flag {
		l.entry.Warn(args...)
	}
}

func (l *Logger) Error(args ...interface{}) {
	if l.flag {
		l.entry.Error(args...)
	}
}

func (l *Logger) Infof(format string, args ...interface{}) {
	if l.flag {
		l.entry.Infof(format, args...)
	}
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.flag {
		l.entry.Debugf(format, args...)
	}
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	if l.flag {
		l.entry.Warnf(format, args...)
	}
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	if l.flag {
		l.entry.Errorf(format, args...)
	}
}

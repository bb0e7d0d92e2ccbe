package badgerfx

import (
	"strings"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

// zapLogger forwards badger output to zap. Badger terminates most format
// strings with a newline, which is dropped here.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

func newLogger(l *zap.Logger) *zapLogger {
	return &zapLogger{
		sugar: l.WithOptions(zap.AddCallerSkip(1)).Sugar(),
	}
}

func (l *zapLogger) Debugf(format string, a ...any) {
	l.sugar.Debugf(trimNewline(format), a...)
}

func (l *zapLogger) Errorf(format string, a ...any) {
	l.sugar.Errorf(trimNewline(format), a...)
}

func (l *zapLogger) Infof(format string, a ...any) {
	l.sugar.Infof(trimNewline(format), a...)
}

func (l *zapLogger) Warningf(format string, a ...any) {
	l.sugar.Warnf(trimNewline(format), a...)
}

func trimNewline(format string) string {
	return strings.TrimRight(format, "\n")
}

var _ badger.Logger = (*zapLogger)(nil)

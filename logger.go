package pixmat

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the package logger. It is a no-op logger until the
// host installs one with SetLogger, so the library stays silent by
// default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger installs the logger used for diagnostics such as pool grow
// events. Call before any other pixmat function.
func SetLogger(l *zap.Logger) {
	logger = l
}

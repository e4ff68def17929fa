package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
)

// LevelEnv names the variable holding the diagnostic log level
const LevelEnv = "COLADA_LOG_LEVEL"

var (
	defaultLogger *zap.Logger
	defaultMu     sync.RWMutex
)

func init() {
	defaultLogger = NewBuilder().
		WithLevel(ParseLevel(os.Getenv(LevelEnv))).
		Build()
}

// Default returns the default logger
func Default() *zap.Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *zap.Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

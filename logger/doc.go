// Package logger builds the diagnostic logger of colada.
//
// Diagnostics go to stderr through zap's console encoder, so they never
// mix with the formatted records on stdout. The default logger reads its
// level from COLADA_LOG_LEVEL (debug, info, warn or error) and logs at
// warn otherwise. Use the Builder for custom destinations:
//
//	log := logger.NewBuilder().
//	    WithWriter(&buf).
//	    WithLevel(zapcore.DebugLevel).
//	    Build()
package logger

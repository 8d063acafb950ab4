// Package zap implements dci/log.Logger with go.uber.org/zap.
//
// New builds a logger from Config (DCI_LOG_LEVEL, DCI_LOG_FORMAT and
// DCI_OTEL_LIBRARY_NAME); Wrap adapts a zap logger built elsewhere.
package zap

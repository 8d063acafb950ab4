// Package dci carries cross-cutting facilities through context.Context.
//
// Transfers read their logger, tracer and correlation id from the context:
//
//	ctx = dci.ContextWithLogger(ctx, logger)
//	ctx = dci.ContextWithTracer(ctx, tracer)
//	ctx = dci.ContextWithCorrelationID(ctx, requestID)
//
// Missing values fall back to a no-op logger, the global OpenTelemetry tracer
// and a fresh UUID.
package dci

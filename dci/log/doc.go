// Package log is the small logging contract shared by the dci packages.
//
// Library code never assumes a logger was configured: dci.NewTrackingFromContext
// falls back to Nop, and dci/zap supplies the real implementation.
package log

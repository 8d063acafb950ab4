// Package runtime turns recovered panics into observable events.
//
// HandlePanicValue logs the panic, increments the dci.panic.recovered counter,
// marks the active span as failed and forwards it to the ErrorReporter set
// with Configure. Options.Redact keeps panic values and stacks out of every
// sink.
package runtime

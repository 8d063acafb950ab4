// Package safe provides panic-free decimal division.
//
// shopspring/decimal panics when dividing by zero; the helpers here return
// ErrDivisionByZero instead so arithmetic faults travel as ordinary errors.
package safe

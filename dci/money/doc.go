// Package money provides an immutable, currency-aware decimal value type.
//
// Core flow:
//   - New/Zero/From* build a Money whose amount is rescaled to the
//     currency's canonical digits.
//   - Add/Subtract return ErrCurrencyMismatch instead of coercing currencies.
//   - DividedBy reports division by zero as ErrArithmeticFault.
//
// Every operation returns a new value. MustAdd and MustSubtract are the only
// functions that panic, and only on currency mismatch.
package money

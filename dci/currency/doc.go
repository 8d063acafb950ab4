// Package currency describes ISO-4217 currencies and the catalogs that resolve them.
//
// A Currency carries its canonical number of fractional digits (2 for USD cents,
// 0 for JPY). Digits are never read from package state: callers resolve codes
// through a Catalog, which can be swapped for a StaticCatalog in tests or layered
// with Overlay to add non-ISO units.
package currency

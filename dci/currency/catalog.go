package currency

import (
	"errors"
	"fmt"

	"github.com/rmg/iso4217"
)

// Catalog resolves currency codes into currencies with their canonical digits.
type Catalog interface {
	Lookup(code string) (Currency, error)
}

// ISOCatalog resolves codes from the ISO-4217 list of active currencies and
// their minor units.
type ISOCatalog struct{}

// Compile-time assertions.
var (
	_ Catalog = ISOCatalog{}
	_ Catalog = StaticCatalog{}
	_ Catalog = (*overlay)(nil)
)

// Default returns the catalog used when none is injected.
//
//nolint:ireturn
func Default() Catalog {
	return ISOCatalog{}
}

// Lookup implements Catalog.
func (ISOCatalog) Lookup(code string) (Currency, error) {
	parsed, err := ParseCode(code)
	if err != nil {
		return Currency{}, err
	}

	number, minorUnits := iso4217.ByCode(string(parsed))
	if number == 0 {
		return Currency{}, fmt.Errorf("%w: %s", ErrUnknownCurrency, parsed)
	}

	// Funds and metals (XAU, XDR) have no minor unit in ISO-4217.
	if minorUnits < 0 {
		minorUnits = 0
	}

	return New(parsed, int32(minorUnits)), nil
}

// StaticCatalog maps codes to digit counts. Keys must be upper-case codes.
type StaticCatalog map[Code]int32

// Lookup implements Catalog.
func (s StaticCatalog) Lookup(code string) (Currency, error) {
	parsed, err := ParseCode(code)
	if err != nil {
		return Currency{}, err
	}

	digits, ok := s[parsed]
	if !ok {
		return Currency{}, fmt.Errorf("%w: %s", ErrUnknownCurrency, parsed)
	}

	return New(parsed, digits), nil
}

type overlay struct {
	overrides Catalog
	base      Catalog
}

// Overlay returns a catalog that consults overrides before base. A code unknown
// to overrides falls through to base; an invalid code fails immediately.
//
//nolint:ireturn
func Overlay(base Catalog, overrides StaticCatalog) Catalog {
	if len(overrides) == 0 {
		return base
	}

	return &overlay{overrides: overrides, base: base}
}

func (o *overlay) Lookup(code string) (Currency, error) {
	c, err := o.overrides.Lookup(code)
	if err == nil || errors.Is(err, ErrInvalidCode) {
		return c, err
	}

	if o.base == nil {
		return Currency{}, err
	}

	return o.base.Lookup(code)
}

// MustLookup resolves code or panics. Intended for package-level variables.
func MustLookup(catalog Catalog, code string) Currency {
	c, err := catalog.Lookup(code)
	if err != nil {
		panic(fmt.Sprintf("currency: %v", err))
	}

	return c
}

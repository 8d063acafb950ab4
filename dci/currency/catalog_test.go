//go:build unit

package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestISOCatalogLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code   string
		digits int32
	}{
		{code: "USD", digits: 2},
		{code: "eur", digits: 2},
		{code: "JPY", digits: 0},
		{code: "IQD", digits: 3},
		{code: "KWD", digits: 3},
		{code: "BHD", digits: 3},
		{code: "COP", digits: 2},
		{code: "IDR", digits: 2},
		{code: "RSD", digits: 2},
		{code: "AMD", digits: 2},
		{code: "KRW", digits: 0},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			t.Parallel()

			c, err := Default().Lookup(tt.code)

			require.NoError(t, err)
			assert.Equal(t, tt.digits, c.Digits())
			assert.LessOrEqual(t, c.Numeric(), uint32(999))
		})
	}
}

func TestISOCatalogLookup_PredefinedAgree(t *testing.T) {
	t.Parallel()

	for _, predefined := range []Currency{USD, EUR, JPY} {
		resolved, err := ISOCatalog{}.Lookup(predefined.String())

		require.NoError(t, err)
		assert.Equal(t, predefined, resolved)
	}
}

func TestISOCatalogLookup_Unknown(t *testing.T) {
	t.Parallel()

	_, err := ISOCatalog{}.Lookup("ZZZ")
	assert.ErrorIs(t, err, ErrUnknownCurrency)

	_, err = ISOCatalog{}.Lookup("??")
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestStaticCatalogLookup(t *testing.T) {
	t.Parallel()

	catalog := StaticCatalog{"BTC": 8, "USD": 2}

	btc, err := catalog.Lookup("btc")
	require.NoError(t, err)
	assert.Equal(t, int32(8), btc.Digits())

	_, err = catalog.Lookup("JPY")
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}

func TestOverlay(t *testing.T) {
	t.Parallel()

	catalog := Overlay(Default(), StaticCatalog{"BTC": 8, "JPY": 2})

	btc, err := catalog.Lookup("BTC")
	require.NoError(t, err)
	assert.Equal(t, int32(8), btc.Digits())

	jpy, err := catalog.Lookup("JPY")
	require.NoError(t, err)
	assert.Equal(t, int32(2), jpy.Digits(), "override wins over base")

	usd, err := catalog.Lookup("USD")
	require.NoError(t, err)
	assert.Equal(t, USD, usd)

	_, err = catalog.Lookup("1AB")
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestOverlay_EmptyOverridesReturnsBase(t *testing.T) {
	t.Parallel()

	base := StaticCatalog{"USD": 2}

	assert.Equal(t, Catalog(base), Overlay(base, nil))
}

func TestMustLookup(t *testing.T) {
	t.Parallel()

	assert.Equal(t, JPY, MustLookup(Default(), "JPY"))
	assert.Panics(t, func() { MustLookup(StaticCatalog{}, "USD") })
}

func TestNewCatalogFromConfig(t *testing.T) {
	t.Parallel()

	catalog, err := NewCatalogFromConfig(Config{Digits: map[string]int{"btc": 8}})
	require.NoError(t, err)

	btc, err := catalog.Lookup("BTC")
	require.NoError(t, err)
	assert.Equal(t, int32(8), btc.Digits())

	_, err = NewCatalogFromConfig(Config{Digits: map[string]int{"BTC": 19}})
	assert.Error(t, err)

	_, err = NewCatalogFromConfig(Config{Digits: map[string]int{"B1C": 2}})
	assert.ErrorIs(t, err, ErrInvalidCode)
}

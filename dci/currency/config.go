package currency

import (
	"fmt"

	"github.com/LerianStudio/lib-dci/dci/config"
)

// maxDigits bounds configured digit counts; no circulating unit needs more.
const maxDigits = 18

// Config holds catalog overrides, e.g. DCI_CURRENCY_DIGITS="BTC:8,XAU:0".
type Config struct {
	Digits map[string]int `env:"DCI_CURRENCY_DIGITS" envKeyValSeparator:":"`
}

// ConfigFromEnv reads Config from the process environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// NewCatalogFromConfig layers cfg's overrides over the ISO catalog.
//
//nolint:ireturn
func NewCatalogFromConfig(cfg Config) (Catalog, error) {
	overrides := make(StaticCatalog, len(cfg.Digits))

	for raw, digits := range cfg.Digits {
		code, err := ParseCode(raw)
		if err != nil {
			return nil, err
		}

		if digits < 0 || digits > maxDigits {
			return nil, fmt.Errorf("currency %s: digits %d out of range [0, %d]", code, digits, maxDigits)
		}

		overrides[code] = int32(digits)
	}

	return Overlay(Default(), overrides), nil
}

package config

import (
	"errors"
	"fmt"
	"unicode"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.Files.Input == "" {
		return errors.New("files.input is required")
	}
	if c.Files.Output == "" {
		return errors.New("files.output is required")
	}

	// Case does not matter downstream, only the shape of the code.
	fiat := c.Conversion.Fiat
	if fiat == "" {
		return errors.New("conversion.fiat is required")
	}
	if len(fiat) != 3 {
		return fmt.Errorf("conversion.fiat must be a three-letter currency code, got %q", fiat)
	}
	for _, r := range fiat {
		if !unicode.IsLetter(r) {
			return fmt.Errorf("conversion.fiat must be a three-letter currency code, got %q", fiat)
		}
	}

	return nil
}

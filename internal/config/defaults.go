package config

// Default values for optional configuration fields.
const (
	DefaultFiat   = "BRL"
	DefaultOutput = "koinly.csv"
)

// ApplyDefaults fills in defaults for fields left empty by the config
// file and the CLI flags. Exported so the CLI can apply flag overrides
// between loading and defaulting.
func (c *Config) ApplyDefaults() {
	if c.Conversion.Fiat == "" {
		c.Conversion.Fiat = DefaultFiat
	}
	if c.Files.Output == "" {
		c.Files.Output = DefaultOutput
	}
}

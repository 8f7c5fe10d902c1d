package qlate

// Config carries the tunable parts of a translation session.
type Config struct {
	// Rules is the translation rule chain consulted per source gate.
	Rules *Chain
	// Strategy is the moment packing used when reading the circuit back.
	Strategy InsertStrategy
}

// NewConfig returns the default configuration: xmon passthrough rules over
// the common gate table, earliest moment packing.
func NewConfig() *Config {
	return &Config{
		Rules:    DefaultRules(),
		Strategy: InsertEarliest,
	}
}

// TranslatorOption configures a Translator at construction time.
type TranslatorOption func(*Config)

// WithRules swaps in a custom translation rule chain.
func WithRules(rules *Chain) TranslatorOption {
	return func(c *Config) {
		c.Rules = rules
	}
}

// WithInsertStrategy selects the moment packing strategy.
func WithInsertStrategy(s InsertStrategy) TranslatorOption {
	return func(c *Config) {
		c.Strategy = s
	}
}

// Package password generates random passwords satisfying a configurable
// composition policy: length, alphabets, case usage, digit and special
// character inclusion, and an explicit set of digits that must appear.
package password

import (
	"fmt"
	"strings"
)

const (
	// MinLength is the smallest accepted password length.
	MinLength = 1
	// MaxLength is the largest accepted password length.
	MaxLength = 1_000_000

	defaultLength = 16
)

// Config describes the generation requirements. It is immutable once built
// by NewConfig and validated eagerly there.
type Config struct {
	length         int
	alphabets      []Alphabet
	upper          bool
	lower          bool
	digits         bool
	special        bool
	requiredDigits string
}

// OptsFn mutates a Config under construction.
type OptsFn func(cfg *Config)

// WithLength sets the password length.
func WithLength(n int) OptsFn {
	return func(cfg *Config) {
		cfg.length = n
	}
}

// WithAlphabets replaces the selected alphabets.
func WithAlphabets(a ...Alphabet) OptsFn {
	return func(cfg *Config) {
		cfg.alphabets = a
	}
}

// WithUpper enables uppercase letters.
func WithUpper() OptsFn {
	return func(cfg *Config) {
		cfg.upper = true
	}
}

// WithLower enables lowercase letters.
func WithLower() OptsFn {
	return func(cfg *Config) {
		cfg.lower = true
	}
}

// WithNumbers enables digits.
func WithNumbers() OptsFn {
	return func(cfg *Config) {
		cfg.digits = true
	}
}

// WithSpecial enables special characters.
func WithSpecial() OptsFn {
	return func(cfg *Config) {
		cfg.special = true
	}
}

// WithRequiredDigits sets digits that must each appear in the output.
// Requires WithNumbers.
func WithRequiredDigits(s string) OptsFn {
	return func(cfg *Config) {
		cfg.requiredDigits = s
	}
}

// NewConfig builds and validates a Config. Defaults: length 16, alphabets
// {Latin}, all character class flags off. The alphabet list is copied and
// de-duplicated preserving order; requiredDigits is trimmed of surrounding
// whitespace.
func NewConfig(o ...OptsFn) (*Config, error) {
	cfg := &Config{
		length:    defaultLength,
		alphabets: []Alphabet{Latin},
	}
	for _, opts := range o {
		opts(cfg)
	}

	cfg.alphabets = dedupeAlphabets(cfg.alphabets)
	cfg.requiredDigits = strings.TrimSpace(cfg.requiredDigits)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func dedupeAlphabets(in []Alphabet) []Alphabet {
	out := make([]Alphabet, 0, len(in))
	seen := make(map[Alphabet]bool, len(in))
	for _, a := range in {
		if seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, a)
	}
	return out
}

// Validate checks the configuration and returns a descriptive error on the
// first violation. It is called by NewConfig and again by Generator.Generate
// to guard against configs built without the factory.
func (c *Config) Validate() error {
	if c.length < MinLength {
		return fmt.Errorf("length must be >= %d, got %d", MinLength, c.length)
	}
	if c.length > MaxLength {
		return fmt.Errorf("length must be <= %d, got %d", MaxLength, c.length)
	}

	for _, a := range c.alphabets {
		if _, ok := alphabetCharsets[a]; !ok {
			return fmt.Errorf("unknown alphabet: %s", a)
		}
	}

	for _, r := range c.requiredDigits {
		if r < '0' || r > '9' {
			return fmt.Errorf("required digits must contain only digits 0-9, got %q", c.requiredDigits)
		}
	}
	if c.requiredDigits != "" && !c.digits {
		return fmt.Errorf("required digits %q set but numbers are disabled", c.requiredDigits)
	}

	anyLetters := len(c.alphabets) > 0 && (c.upper || c.lower)
	if !anyLetters && !c.digits && !c.special {
		return fmt.Errorf("no character sets selected (choose letters and/or numbers/special)")
	}
	return nil
}

// Length returns the requested password length.
func (c *Config) Length() int {
	return c.length
}

// Alphabets returns a copy of the selected alphabets.
func (c *Config) Alphabets() []Alphabet {
	out := make([]Alphabet, len(c.alphabets))
	copy(out, c.alphabets)
	return out
}

// Upper reports whether uppercase letters are enabled.
func (c *Config) Upper() bool {
	return c.upper
}

// Lower reports whether lowercase letters are enabled.
func (c *Config) Lower() bool {
	return c.lower
}

// Numbers reports whether digits are enabled.
func (c *Config) Numbers() bool {
	return c.digits
}

// Special reports whether special characters are enabled.
func (c *Config) Special() bool {
	return c.special
}

// RequiredDigits returns the digits that must each appear in the output.
func (c *Config) RequiredDigits() string {
	return c.requiredDigits
}

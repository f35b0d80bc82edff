package password

import (
	"fmt"

	"github.com/inovacc/passgen/random"
)

const (
	digitChars   = "0123456789"
	specialChars = `!@#$%^&*()-_=+[]{};:,.?/\|`
)

// Generator produces passwords from a Config using an injected random
// source. The zero source defaults to crypto/rand; substitute a fixed
// sequence for deterministic tests.
type Generator struct {
	src random.Source
}

// NewGenerator returns a Generator using src, or the crypto/rand source when
// src is nil.
func NewGenerator(src random.Source) *Generator {
	if src == nil {
		src = random.NewSource()
	}
	return &Generator{src: src}
}

// pools holds the character sets derived from a config for one generation.
type pools struct {
	lowerLetters []rune
	upperLetters []rune
	all          []rune
}

// Generate builds a password of exactly cfg.Length() runes. Mandatory
// characters (required digits, one per enabled class, one per selected
// alphabet) are placed first, the remainder is filled uniformly from the
// combined pool, and the whole buffer is shuffled with Fisher-Yates so
// mandatory characters hold no predictable positions.
func (g *Generator) Generate(cfg *Config) (string, error) {
	if cfg == nil {
		return "", fmt.Errorf("config must not be nil")
	}
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	p, err := buildPools(cfg)
	if err != nil {
		return "", err
	}

	mandatory, err := g.buildMandatory(cfg, p)
	if err != nil {
		return "", err
	}
	if len(mandatory) > cfg.length {
		return "", fmt.Errorf("too many mandatory constraints for length %d: need at least %d", cfg.length, len(mandatory))
	}

	out := make([]rune, cfg.length)
	n := copy(out, mandatory)
	for i := n; i < len(out); i++ {
		out[i], err = g.pick(p.all)
		if err != nil {
			return "", err
		}
	}

	if err := g.shuffle(out); err != nil {
		return "", err
	}
	return string(out), nil
}

func buildPools(cfg *Config) (*pools, error) {
	var lowerLetters, upperLetters []rune
	for _, a := range cfg.alphabets {
		lowerLetters = append(lowerLetters, []rune(a.Lower())...)
		upperLetters = append(upperLetters, []rune(a.Upper())...)
	}

	var all []rune
	if cfg.lower {
		all = append(all, lowerLetters...)
	}
	if cfg.upper {
		all = append(all, upperLetters...)
	}
	if cfg.digits {
		all = append(all, []rune(digitChars)...)
	}
	if cfg.special {
		all = append(all, []rune(specialChars)...)
	}

	// Only reachable when validation was bypassed.
	if len(all) == 0 {
		return nil, fmt.Errorf("no allowed characters after applying config")
	}

	return &pools{lowerLetters: lowerLetters, upperLetters: upperLetters, all: all}, nil
}

// buildMandatory collects the characters that must appear in the output, in
// a fixed order: the required digits, one digit if none is present yet, one
// special character, one letter per enabled case, and one letter per
// selected alphabet.
func (g *Generator) buildMandatory(cfg *Config, p *pools) ([]rune, error) {
	var mandatory []rune

	mandatory = append(mandatory, []rune(cfg.requiredDigits)...)

	if cfg.digits && !containsDigit(mandatory) {
		r, err := g.pick([]rune(digitChars))
		if err != nil {
			return nil, err
		}
		mandatory = append(mandatory, r)
	}

	if cfg.special {
		r, err := g.pick([]rune(specialChars))
		if err != nil {
			return nil, err
		}
		mandatory = append(mandatory, r)
	}

	if cfg.lower && len(p.lowerLetters) > 0 {
		r, err := g.pick(p.lowerLetters)
		if err != nil {
			return nil, err
		}
		mandatory = append(mandatory, r)
	}
	if cfg.upper && len(p.upperLetters) > 0 {
		r, err := g.pick(p.upperLetters)
		if err != nil {
			return nil, err
		}
		mandatory = append(mandatory, r)
	}

	// One letter from each selected alphabet, drawn from its own enabled
	// cases, so no alphabet is left out by the picks above.
	if cfg.lower || cfg.upper {
		for _, a := range cfg.alphabets {
			var local []rune
			if cfg.lower {
				local = append(local, []rune(a.Lower())...)
			}
			if cfg.upper {
				local = append(local, []rune(a.Upper())...)
			}
			if len(local) == 0 {
				continue
			}
			r, err := g.pick(local)
			if err != nil {
				return nil, err
			}
			mandatory = append(mandatory, r)
		}
	}

	return mandatory, nil
}

// shuffle permutes buf in place with the Durstenfeld variant of
// Fisher-Yates.
func (g *Generator) shuffle(buf []rune) error {
	for i := len(buf) - 1; i > 0; i-- {
		j, err := g.src.IntN(i + 1)
		if err != nil {
			return err
		}
		buf[i], buf[j] = buf[j], buf[i]
	}
	return nil
}

func (g *Generator) pick(pool []rune) (rune, error) {
	i, err := g.src.IntN(len(pool))
	if err != nil {
		return 0, err
	}
	return pool[i], nil
}

func containsDigit(rs []rune) bool {
	for _, r := range rs {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

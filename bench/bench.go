// Package bench measures password generation time across preset composition
// profiles and lengths.
package bench

import (
	"fmt"
	"strings"
	"time"

	"github.com/inovacc/passgen/password"
)

// Profile is a preset composition complexity level.
type Profile struct {
	Name string
	opts func(length int) []password.OptsFn
}

// DefaultProfiles orders profiles from cheapest to most constrained.
var DefaultProfiles = []Profile{
	{
		Name: "SIMPLE",
		opts: func(length int) []password.OptsFn {
			return []password.OptsFn{
				password.WithLength(length),
				password.WithAlphabets(password.Latin),
				password.WithLower(),
			}
		},
	},
	{
		Name: "MEDIUM",
		opts: func(length int) []password.OptsFn {
			return []password.OptsFn{
				password.WithLength(length),
				password.WithAlphabets(password.Latin),
				password.WithUpper(),
				password.WithLower(),
				password.WithNumbers(),
			}
		},
	},
	{
		Name: "HARD",
		opts: func(length int) []password.OptsFn {
			return []password.OptsFn{
				password.WithLength(length),
				password.WithAlphabets(password.Latin, password.Cyrillic),
				password.WithUpper(),
				password.WithLower(),
				password.WithNumbers(),
				password.WithSpecial(),
				password.WithRequiredDigits("13579"),
			}
		},
	},
}

// Options controls the benchmark matrix.
type Options struct {
	Profiles []Profile
	Lengths  []int
	Warmup   int
	Repeats  int
}

// DefaultOptions returns the standard matrix: three profiles, lengths from
// 10k to 1M, one warmup run, three timed repeats.
func DefaultOptions() Options {
	return Options{
		Profiles: DefaultProfiles,
		Lengths:  []int{10_000, 100_000, 500_000, 1_000_000},
		Warmup:   1,
		Repeats:  3,
	}
}

// Result is the averaged timing for one profile/length cell.
type Result struct {
	Level     string
	Length    int
	AvgMillis float64
}

// Run executes the benchmark matrix and returns one Result per cell.
func Run(gen *password.Generator, opts Options) ([]Result, error) {
	if opts.Repeats < 1 {
		return nil, fmt.Errorf("repeats must be >= 1, got %d", opts.Repeats)
	}

	var results []Result
	for _, p := range opts.Profiles {
		for _, length := range opts.Lengths {
			cfg, err := password.NewConfig(p.opts(length)...)
			if err != nil {
				return nil, fmt.Errorf("profile %s length %d: %w", p.Name, length, err)
			}

			for i := 0; i < opts.Warmup; i++ {
				if _, err := gen.Generate(cfg); err != nil {
					return nil, err
				}
			}

			var total time.Duration
			for i := 0; i < opts.Repeats; i++ {
				start := time.Now()
				if _, err := gen.Generate(cfg); err != nil {
					return nil, err
				}
				total += time.Since(start)
			}

			avg := float64(total.Nanoseconds()) / float64(opts.Repeats) / 1e6
			results = append(results, Result{Level: p.Name, Length: length, AvgMillis: avg})
		}
	}
	return results, nil
}

// Format renders results as a fixed-width table.
func Format(results []Result) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-7s | %-9s | %-10s\n", "LEVEL", "LENGTH", "AVG(ms)"))
	sb.WriteString(strings.Repeat("-", 34))
	sb.WriteByte('\n')
	for _, r := range results {
		sb.WriteString(fmt.Sprintf("%-7s | %-9d | %-10.3f\n", r.Level, r.Length, r.AvgMillis))
	}
	return sb.String()
}

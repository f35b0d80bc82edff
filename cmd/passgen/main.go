// Command passgen generates random passwords matching a composition policy
// and benchmarks the generator across preset profiles.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/inovacc/passgen/bench"
	"github.com/inovacc/passgen/output"
	"github.com/inovacc/passgen/password"
)

type generateOptions struct {
	length         int
	alphabets      []string
	upper          bool
	lower          bool
	digits         bool
	special        bool
	requiredDigits string
	outFile        string
	benchmark      bool
}

func main() {
	if err := execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func execute() error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	var opts generateOptions

	rootCmd := &cobra.Command{
		Use:   "passgen",
		Short: "Generate random passwords matching a composition policy",
		Example: `  passgen --length 32 --upper --lower --digits --special
  passgen --length 24 --alphabets latin,cyrillic --lower
  passgen --length 64 --digits --required-digits 135 --out secrets/pass.txt
  passgen --benchmark`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.benchmark {
				return runBenchmark(logger)
			}
			return runGenerate(logger, opts)
		},
	}

	rootCmd.Flags().SortFlags = false
	rootCmd.Flags().IntVarP(&opts.length, "length", "l", 16, "Password length")
	rootCmd.Flags().StringSliceVarP(&opts.alphabets, "alphabets", "a", []string{"latin"}, "Alphabets to draw letters from (latin, cyrillic)")
	rootCmd.Flags().BoolVar(&opts.upper, "upper", false, "Include uppercase letters")
	rootCmd.Flags().BoolVar(&opts.lower, "lower", false, "Include lowercase letters (default when no case flag is given)")
	rootCmd.Flags().BoolVar(&opts.digits, "digits", false, "Include digits")
	rootCmd.Flags().BoolVar(&opts.special, "special", false, "Include special characters")
	rootCmd.Flags().StringVar(&opts.requiredDigits, "required-digits", "", "Digits that must each appear in the password")
	rootCmd.Flags().StringVarP(&opts.outFile, "out", "o", "", "Write the password to this file instead of stdout")
	rootCmd.Flags().BoolVar(&opts.benchmark, "benchmark", false, "Run the generation benchmark and exit")

	return rootCmd.Execute()
}

func buildConfig(opts generateOptions) (*password.Config, error) {
	var alphabets []password.Alphabet
	for _, s := range opts.alphabets {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		a, err := password.ParseAlphabet(s)
		if err != nil {
			return nil, err
		}
		alphabets = append(alphabets, a)
	}

	// A blank --alphabets value means the default, not an empty selection.
	if len(alphabets) == 0 {
		alphabets = []password.Alphabet{password.Latin}
	}

	// Lowercase is the default when neither case flag is given.
	if !opts.upper && !opts.lower {
		opts.lower = true
	}

	o := []password.OptsFn{
		password.WithLength(opts.length),
		password.WithAlphabets(alphabets...),
	}
	if opts.upper {
		o = append(o, password.WithUpper())
	}
	if opts.lower {
		o = append(o, password.WithLower())
	}
	if opts.digits {
		o = append(o, password.WithNumbers())
	}
	if opts.special {
		o = append(o, password.WithSpecial())
	}
	if opts.requiredDigits != "" {
		o = append(o, password.WithRequiredDigits(opts.requiredDigits))
	}

	return password.NewConfig(o...)
}

func runGenerate(logger *zap.Logger, opts generateOptions) error {
	cfg, err := buildConfig(opts)
	if err != nil {
		return err
	}

	gen := password.NewGenerator(nil)

	start := time.Now()
	pass, err := gen.Generate(cfg)
	if err != nil {
		return err
	}
	ms := float64(time.Since(start).Nanoseconds()) / 1e6

	logger.Info("generated password",
		zap.Int("length", cfg.Length()),
		zap.Float64("time_ms", ms),
	)

	w := output.NewWriter(afero.NewOsFs(), os.Stdout)

	if opts.outFile != "" {
		if err := w.Save(opts.outFile, pass); err != nil {
			return err
		}
		abs, err := filepath.Abs(opts.outFile)
		if err != nil {
			abs = opts.outFile
		}
		fmt.Println("Saved to:", abs)
	} else if err := w.Print(pass); err != nil {
		return err
	}

	fmt.Printf("Time (ms): %.3f\n", ms)
	return nil
}

func runBenchmark(logger *zap.Logger) error {
	logger.Info("benchmark started")

	results, err := bench.Run(password.NewGenerator(nil), bench.DefaultOptions())
	if err != nil {
		return err
	}

	color.New(color.FgCyan, color.Bold).Println("passgen benchmark")
	fmt.Print(bench.Format(results))

	logger.Info("benchmark finished")
	return nil
}

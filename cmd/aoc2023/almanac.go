package main

import (
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aoc2023/internal/almanac"
	"aoc2023/internal/config"
	"aoc2023/internal/interval"
	"aoc2023/internal/lines"
	"aoc2023/internal/report"
)

var errNoInput = errors.New("no input given: pass a path argument or set input in the config file")

type almanacOptions struct {
	configPath string
	part       int
	format     string
	verbose    bool
	dump       bool
	validate   bool
}

func newAlmanacCmd() *cobra.Command {
	var opts almanacOptions

	cmd := &cobra.Command{
		Use:     "almanac [input]",
		Aliases: []string{"day5"},
		Short:   "Find the lowest location reachable from the almanac's seeds",
		Long: `Maps the almanac's seeds through every stage and prints the lowest location.

Part 1 maps every seed number on its own. Part 2 reads the seeds as
(start, length) pairs and maps whole ranges, splitting them at rule edges.

Use "-" as input to read stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlmanac(cmd, args, &opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	f.IntVarP(&opts.part, "part", "p", 2, "puzzle part to solve (1 or 2)")
	f.StringVar(&opts.format, "format", report.FormatText, "output format (text or yaml)")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "trace every stage at debug level")
	f.BoolVar(&opts.dump, "dump", false, "dump the parsed almanac to stderr")
	f.BoolVar(&opts.validate, "validate", false, "print validation findings to stderr")

	return cmd
}

// resolveConfig layers explicitly set flags and the input argument over the config file.
func resolveConfig(cmd *cobra.Command, args []string, opts *almanacOptions) (*config.Config, error) {
	cfg := config.Default()

	if opts.configPath != "" {
		var err error

		cfg, err = config.LoadFile(opts.configPath)
		if err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("part") {
		cfg.Part = opts.part
	}

	if flags.Changed("format") {
		cfg.Format = opts.format
	}

	if opts.verbose {
		cfg.LogLevel = "debug"
	}

	if len(args) == 1 {
		cfg.Input = args[0]
	}

	if cfg.Input == "" {
		return nil, errNoInput
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func runAlmanac(cmd *cobra.Command, args []string, opts *almanacOptions) error {
	cfg, err := resolveConfig(cmd, args, opts)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	defer func() { _ = logger.Sync() }()

	in, err := lines.ReadFile(cfg.Input)
	if err != nil {
		return err
	}

	a, err := almanac.Parse(in, almanac.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", cfg.Input, err)
	}

	logger.Debug("parsed almanac",
		zap.String("input", cfg.Input),
		zap.Int("seeds", len(a.Seeds)),
		zap.Int("stages", len(a.Pipeline.Stages)))

	if opts.dump {
		fmt.Fprint(cmd.ErrOrStderr(), spew.Sdump(a.Seeds, a.Pipeline.Stages))
	}

	if opts.validate {
		d := almanac.Validate(a)
		for _, diag := range d.All() {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", diag.Severity, diag)
		}
	}

	res, err := solve(a, cfg.Part, in)
	if err != nil {
		return err
	}

	logger.Info("solved", zap.Int("part", res.Part), zap.Int64("answer", res.Answer))

	return report.Write(cmd.OutOrStdout(), res, cfg.Format)
}

func solve(a *almanac.Almanac, part int, in []string) (report.Result, error) {
	if part == 1 {
		answer, err := a.LowestLocation()
		if err != nil {
			return report.Result{}, err
		}

		return report.New(part, answer, nil, in), nil
	}

	locations, err := a.RangeLocations()
	if err != nil {
		return report.Result{}, err
	}

	answer, ok := interval.MinLow(locations)
	if !ok {
		return report.Result{}, almanac.ErrNoSeeds
	}

	return report.New(part, answer, locations, in), nil
}

// Package main provides hashbench, which compares the chained hash table
// against Go's built-in map.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"chained_hashtable/bench"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, out, errOut io.Writer) int {
	flagSet := flag.NewFlagSet("hashbench", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	configPath := flagSet.StringP("config", "c", "", "JSONC config file")
	capacity := flagSet.Int("capacity", 0, "Slot count of the chained table")
	keyCount := flagSet.Int("keys", 0, "Keys loaded before each batch (default: capacity)")
	rounds := flagSet.Int("rounds", 0, "Measured rounds")
	warmup := flagSet.Int("warmup", 0, "Discarded warmup rounds")
	ops := flagSet.StringSlice("ops", nil, "Operations to measure: add,get,remove")
	output := flagSet.StringP("out", "o", "", "Write the JSON report to this file")
	printConfig := flagSet.Bool("print-config", false, "Print the effective config and exit")
	verbose := flagSet.BoolP("verbose", "v", false, "Log every batch")
	help := flagSet.BoolP("help", "h", false, "Show help")

	err := flagSet.Parse(args)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		printUsage(errOut, flagSet)

		return 1
	}

	if *help {
		printUsage(out, flagSet)

		return 0
	}

	cfg, err := bench.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)

		return 1
	}

	if flagSet.Changed("capacity") {
		cfg.Capacity = *capacity
	}

	if flagSet.Changed("keys") {
		cfg.Keys = *keyCount
	}

	if flagSet.Changed("rounds") {
		cfg.Rounds = *rounds
	}

	if flagSet.Changed("warmup") {
		cfg.Warmup = *warmup
	}

	if flagSet.Changed("ops") {
		cfg.Operations = *ops
	}

	if flagSet.Changed("out") {
		cfg.Output = *output
	}

	err = cfg.Validate()
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)

		return 1
	}

	if *printConfig {
		formatted, formatErr := bench.FormatConfig(cfg)
		if formatErr != nil {
			fmt.Fprintln(errOut, "error:", formatErr)

			return 1
		}

		fmt.Fprintln(out, formatted)

		return 0
	}

	log, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)

		return 1
	}

	defer func() { _ = log.Sync() }()

	return runBench(ctx, cfg, log, out, errOut)
}

func runBench(ctx context.Context, cfg bench.Config, log *zap.Logger, out, errOut io.Writer) int {
	runner, err := bench.NewRunner(cfg, log)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)

		return 1
	}

	log.Info("starting",
		zap.Int("capacity", cfg.Capacity),
		zap.Int("keys", cfg.KeyCount()),
		zap.Int("rounds", cfg.Rounds),
		zap.Strings("operations", cfg.Operations),
	)

	report, err := runner.Run(ctx)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)

		return 1
	}

	err = report.WriteText(out)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)

		return 1
	}

	if cfg.Output != "" {
		err = report.WriteJSON(cfg.Output)
		if err != nil {
			fmt.Fprintln(errOut, "error:", err)

			return 1
		}

		log.Info("report written", zap.String("path", cfg.Output))
	}

	return 0
}

// newLogger logs to stderr: every batch at debug level when verbose, only
// warnings otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)

	return cfg.Build()
}

func printUsage(w io.Writer, flagSet *flag.FlagSet) {
	var b strings.Builder

	b.WriteString("Usage: hashbench [flags]\n\n")
	b.WriteString("Times batches of add, get and remove on the chained hash table and on Go's map.\n\n")
	b.WriteString("Flags:\n")
	b.WriteString(flagSet.FlagUsages())
	b.WriteString("\nExamples:\n")
	b.WriteString("  hashbench                              # 1000 slots, 1000 keys, 20 rounds\n")
	b.WriteString("  hashbench --capacity 64 --keys 4096    # load factor 64\n")
	b.WriteString("  hashbench --ops get,remove -o out.json # subset, JSON report\n")

	fmt.Fprint(w, b.String())
}

// Command ringbench compares cyclic rings against other bounded FIFOs.
//
// Usage:
//
//	go run ./cmd/ringbench -sizes 8,64,1024 -n 1000 -rounds 5
//	go run ./cmd/ringbench -config bench.toml -contenders cyclic,eapache,lockfree
//
// Flags given on the command line override values from -config.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/randomizedcoder/cyclic-queue/internal/bench"
	"github.com/randomizedcoder/cyclic-queue/internal/logging"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "ringbench:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("ringbench", flag.ContinueOnError)
	configPath := fs.String("config", "", "TOML config file")
	iterations := fs.Int("n", 0, "iterations per round")
	rounds := fs.Int("rounds", 0, "rounds per measurement (median is reported)")
	sizes := fs.String("sizes", "", "comma-separated container sizes")
	contenders := fs.String("contenders", "", "comma-separated contenders (default all)")
	workloads := fs.String("workloads", "", "comma-separated workloads (default all)")
	progress := fs.String("progress", "", "progress log interval, e.g. 2s (0 disables)")
	dev := fs.Bool("dev", false, "human-readable debug logging")
	list := fs.Bool("list", false, "list contenders and workloads, then exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *list {
		printRegistry()
		return nil
	}

	cfg := bench.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = bench.LoadConfig(*configPath); err != nil {
			return err
		}
	}

	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			cfg.Iterations = *iterations
		case "rounds":
			cfg.Rounds = *rounds
		case "sizes":
			s, err := parseInts(*sizes)
			if err != nil {
				flagErr = err
			}
			cfg.Sizes = s
		case "contenders":
			cfg.Contenders = splitList(*contenders)
		case "workloads":
			cfg.Workloads = splitList(*workloads)
		case "progress":
			cfg.Progress = *progress
		}
	})
	if flagErr != nil {
		return flagErr
	}

	log, err := logging.New(*dev)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	runner, err := bench.NewRunner(cfg, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Benchmarking bounded FIFOs (run %s)\n", runner.RunID())
	fmt.Printf("Architecture: %s/%s, %d iterations x %d rounds\n",
		runtime.GOOS, runtime.GOARCH, cfg.Iterations, cfg.Rounds)
	fmt.Println("─────────────────────────────────────────────────")

	results, runErr := runner.Run(ctx)
	if len(results) > 0 {
		fmt.Println()
		if err := bench.WriteTable(os.Stdout, results); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	if runErr != nil {
		log.Error("run incomplete", zap.Error(runErr), zap.Int("results", len(results)))
		return runErr
	}
	return nil
}

func printRegistry() {
	fmt.Println("Contenders:")
	for _, c := range bench.Contenders() {
		fmt.Printf("  %s\n", c.Name)
	}
	fmt.Println("Workloads:")
	for _, w := range bench.Workloads() {
		fmt.Printf("  %s\n", w.Name)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseInts(s string) ([]int, error) {
	parts := splitList(s)
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", p, err)
		}
		out = append(out, n)
	}
	return out, nil
}

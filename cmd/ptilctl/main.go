// Package main implements ptilctl, a command-line front end for the PTIL
// encoder: encode a single sentence, or fan a stdin batch of sentences out
// across a worker pool.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/c360/ptil/config"
	"github.com/c360/ptil/encoder"
	"github.com/c360/ptil/lingua"
	"github.com/c360/ptil/metric"
	"github.com/c360/ptil/pkg/retry"
	"github.com/c360/ptil/pkg/worker"
	"github.com/c360/ptil/serialize"
)

// Build information constants.
const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "ptilctl"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := run(); err != nil {
		slog.Error("ptilctl failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cli := parseFlags()
	if cli.ShowVersion {
		fmt.Printf("%s %s (built %s)\n", appName, Version, BuildTime)
		return nil
	}
	if cli.ShowHelp {
		printDetailedHelp()
		return nil
	}
	if err := validateFlags(cli); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	logger := setupLogger(cli.LogLevel, cli.LogFormat)
	slog.SetDefault(logger)

	cfg, err := config.Load(cli.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	registry := metric.NewMetricsRegistry()

	analyzer, err := buildAnalyzer(cli)
	if err != nil {
		return fmt.Errorf("build analyzer: %w", err)
	}

	enc, err := encoder.New(cli.Language,
		encoder.WithAnalyzer(analyzer),
		encoder.WithMetrics(registry.CoreMetrics()),
		encoder.WithDiagnosticSink(func(d encoder.Diagnostic) {
			logger.Warn("degraded", "component", d.Component, "message", d.Message)
		}))
	if err != nil {
		return fmt.Errorf("construct encoder: %w", err)
	}

	format := serialize.Format(cli.Format)
	ctx := context.Background()

	if cli.Batch {
		return runBatch(ctx, enc, cli, format, logger)
	}

	trainingCfg := trainingConfigFrom(cli, cfg, format)
	out, err := renderOne(ctx, enc, cli.Text, cli.Layout, trainingCfg)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

// buildAnalyzer resolves the Analyzer backing the encoder. A non-zero
// -pool-size builds a lingua.Pooled behind retry.Quick's component-startup
// backoff, matching the retry package's own documented intended call site;
// the unpooled default still gets the same retry wrapper for consistency,
// even though lingua.NewRuleParser itself cannot fail.
func buildAnalyzer(cli *CLIConfig) (lingua.Analyzer, error) {
	if cli.PoolSize <= 0 {
		return retry.DoWithResult(context.Background(), retry.Quick(), func() (lingua.Analyzer, error) {
			return lingua.NewRuleParser(cli.Language), nil
		})
	}

	factory := func() (lingua.Analyzer, error) {
		return lingua.NewRuleParser(cli.Language), nil
	}
	return retry.DoWithResult(context.Background(), retry.Quick(), func() (lingua.Analyzer, error) {
		return lingua.NewPooled(cli.PoolSize, factory)
	})
}

func trainingConfigFrom(cli *CLIConfig, cfg *config.Config, format serialize.Format) encoder.TrainingConfig {
	tc := encoder.DefaultTrainingConfig()
	tc.Format = format
	tc.FormatType = cfg.Training.FormatType
	tc.CSCWeight = cfg.Training.CSCWeight
	tc.OriginalWeight = cfg.Training.OriginalWeight
	tc.Separator = cfg.Training.Separator
	tc.IncludeBrackets = cfg.Training.IncludeBrackets
	if cli.Layout != "" {
		tc.FormatType = cli.Layout
	}
	if cli.CSCWeight != 0 {
		tc.CSCWeight = cli.CSCWeight
	}
	if cli.OriginalWeight != 0 {
		tc.OriginalWeight = cli.OriginalWeight
	}
	return tc
}

// renderOne encodes a single sentence, dispatching to the plain
// serialization path when -layout was never set.
func renderOne(ctx context.Context, enc *encoder.Encoder, text, layout string, tc encoder.TrainingConfig) (string, error) {
	if layout == "" {
		return enc.EncodeAndSerialize(ctx, text, tc.Format)
	}
	return enc.EncodeForTraining(ctx, text, tc)
}

// batchJob carries a stdin line and its original position, so results can
// be printed back in input order despite the pool processing them
// concurrently and out of order.
type batchJob struct {
	index int
	line  string
}

// runBatch reads stdin line by line and fans encoding work out across a
// worker.Pool, collecting results into an order-preserving slice before
// printing — giving pkg/worker its first real call site in this module.
func runBatch(ctx context.Context, enc *encoder.Encoder, cli *CLIConfig, format serialize.Format, logger *slog.Logger) error {
	scanner := bufio.NewScanner(os.Stdin)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	results := make([]string, len(lines))
	var mu sync.Mutex
	var wg sync.WaitGroup
	wg.Add(len(lines))

	pool := worker.NewPool[batchJob](runtime.NumCPU(), len(lines)+1, func(ctx context.Context, job batchJob) error {
		defer wg.Done()
		out, err := enc.EncodeAndSerialize(ctx, job.line, format)
		if err != nil {
			logger.Error("encode failed", "line", job.index, "error", err)
			return err
		}
		mu.Lock()
		results[job.index] = out
		mu.Unlock()
		return nil
	})

	if err := pool.Start(ctx); err != nil {
		return fmt.Errorf("start worker pool: %w", err)
	}
	for i, line := range lines {
		if err := pool.Submit(batchJob{index: i, line: line}); err != nil {
			logger.Error("submit failed", "line", i, "error", err)
			wg.Done()
		}
	}
	wg.Wait()
	if err := pool.Stop(5 * time.Second); err != nil {
		logger.Warn("worker pool stop", "error", err)
	}

	for _, out := range results {
		fmt.Println(out)
	}
	return nil
}

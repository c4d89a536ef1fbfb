package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
)

// CLIConfig holds every flag ptilctl accepts. Each field has an env-var
// fallback, mirroring the teacher's CLIConfig/getEnv* pattern, so the same
// binary can be driven by flags in a shell or by environment in a container.
type CLIConfig struct {
	Text           string
	Language       string
	Format         string
	Layout         string
	CSCWeight      float64
	OriginalWeight float64
	Batch          bool
	PoolSize       int
	ConfigPath     string
	LogLevel       string
	LogFormat      string
	ShowVersion    bool
	ShowHelp       bool
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func parseFlags() *CLIConfig {
	cfg := &CLIConfig{}

	flag.StringVar(&cfg.Text, "text", "", "single sentence to encode (ignored in -batch mode)")
	flag.StringVar(&cfg.Language, "lang", getEnv("PTIL_LANG", "en"), "language code to encode as (en, es, fr, de, it)")
	flag.StringVar(&cfg.Format, "format", getEnv("PTIL_FORMAT", "verbose"), "serialization density: verbose, compact, ultra")
	flag.StringVar(&cfg.Layout, "layout", getEnv("PTIL_LAYOUT", ""), "training layout: standard, csc_only, mixed (empty disables training mode)")
	flag.Float64Var(&cfg.CSCWeight, "csc-weight", getEnvFloat("PTIL_CSC_WEIGHT", 1.0), "CSC repeat weight for mixed layout")
	flag.Float64Var(&cfg.OriginalWeight, "original-weight", getEnvFloat("PTIL_ORIGINAL_WEIGHT", 1.0), "original-text repeat weight for mixed layout")
	flag.BoolVar(&cfg.Batch, "batch", getEnvBool("PTIL_BATCH", false), "read one sentence per line from stdin instead of a single -text argument")
	flag.IntVar(&cfg.PoolSize, "pool-size", getEnvInt("PTIL_POOL_SIZE", 0), "pooled analyzer instances (0 disables pooling)")
	flag.StringVar(&cfg.ConfigPath, "config", getEnv("PTIL_CONFIG", ""), "path to a YAML configuration file")
	flag.StringVar(&cfg.LogLevel, "log-level", getEnv("PTIL_LOG_LEVEL", "info"), "log level: debug, info, warn, error")
	flag.StringVar(&cfg.LogFormat, "log-format", getEnv("PTIL_LOG_FORMAT", "json"), "log format: json, text")
	flag.BoolVar(&cfg.ShowVersion, "version", false, "print version and exit")
	flag.BoolVar(&cfg.ShowHelp, "help", false, "print usage and exit")

	flag.Usage = func() { printDetailedHelp() }
	flag.Parse()

	return cfg
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

// validateFlags checks closed-set fields and file existence. It skips
// everything when the caller only wants --version or --help.
func validateFlags(cfg *CLIConfig) error {
	if cfg.ShowVersion || cfg.ShowHelp {
		return nil
	}

	if !contains([]string{"verbose", "compact", "ultra"}, cfg.Format) {
		return fmt.Errorf("invalid -format %q: must be verbose, compact, or ultra", cfg.Format)
	}
	if cfg.Layout != "" && !contains([]string{"standard", "csc_only", "mixed"}, cfg.Layout) {
		return fmt.Errorf("invalid -layout %q: must be standard, csc_only, or mixed", cfg.Layout)
	}
	if !contains([]string{"debug", "info", "warn", "error"}, cfg.LogLevel) {
		return fmt.Errorf("invalid -log-level %q: must be debug, info, warn, or error", cfg.LogLevel)
	}
	if !contains([]string{"json", "text"}, cfg.LogFormat) {
		return fmt.Errorf("invalid -log-format %q: must be json or text", cfg.LogFormat)
	}
	if cfg.ConfigPath != "" {
		if _, err := os.Stat(cfg.ConfigPath); err != nil {
			return fmt.Errorf("config file %q: %w", cfg.ConfigPath, err)
		}
	}
	if cfg.PoolSize < 0 {
		return fmt.Errorf("invalid -pool-size %d: must be non-negative", cfg.PoolSize)
	}

	return nil
}

func printDetailedHelp() {
	fmt.Fprintf(os.Stderr, `ptilctl - compressed semantic code encoder

Usage:
  ptilctl -text "The boy will not go to school tomorrow."
  ptilctl -batch < sentences.txt

Flags:
`)
	flag.PrintDefaults()
}

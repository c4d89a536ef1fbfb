// Package config provides the encoder's configuration: which Analyzer
// backs each supported language, the default serialization format, and the
// weighting used when producing training-ready output.
//
// # Responsibilities
//
//   - Config: the full configuration value, JSON/YAML (de)serializable.
//   - SafeConfig: thread-safe holder, RWMutex-guarded with deep-clone
//     Get/Update semantics so a running encoder never observes a partially
//     applied update.
//   - Load: reads a YAML file into a validated Config, falling back to
//     Default() when no path is given.
//
// A Config is immutable once validated and handed to an encoder — callers
// that need to change behavior at runtime go through SafeConfig.Update,
// which re-validates before the swap.
package config

// Package testutil collects shared test fixtures used across the module's
// property tests: a pool of sample sentences for randomized generation and
// a curated parallel-sentence table for cross-lingual ROOT equality checks.
// Nothing here is imported by non-test code.
package testutil

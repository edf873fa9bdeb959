// Package simrand centralizes deterministic random generation for the
// simulation core, adapted from the teacher's tsp.rng.go conventions.
//
// Goals:
//   - Determinism: same seed => identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden
//     anywhere.
//   - Safety: no panics; callers get a *rand.Rand back, never a shared
//     global one.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines.
//   - Use DeriveRNG to create independent streams per replicate/worker when
//     an external harness parallelizes replicates.
package simrand

// Package simlog wraps github.com/rs/zerolog into the leveled, structured
// logger used for per-generation and per-replicate diagnostics.
//
// The teacher's flow package gestures at this need with a bare
// FlowOptions.Verbose bool (see flow.FlowOptions, flow.Dinic's
// `if opts.Verbose { fmt.Printf(...) }`); simlog generalizes that toggle
// into an actual leveled logger rather than a raw fmt.Printf call.
package simlog

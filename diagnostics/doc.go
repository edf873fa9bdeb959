// Package diagnostics provides post-hoc checks over a completed
// store.History, outside the hot simulation path: flow-conservation
// auditing (adapting the teacher's flow package) and demographic trajectory
// comparison (adapting the teacher's dtw package) — useful to an external
// ABC harness's distance computation without the core performing ABC
// itself.
package diagnostics

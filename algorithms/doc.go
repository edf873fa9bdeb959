// Package algorithms implements classic graph traversals on core.Graph.
//
// BFS is the traversal landscape.Reachable builds its connectivity
// pre-flight check on: given a starting deme, it reports every deme
// reachable from it so a simulation can fail fast on a disconnected
// landscape rather than discover a stranded deme mid-run.
//
// BFS accepts *core.Graph and returns simple Go types (slices, maps).
// BFSOptions lets callers hook OnEnqueue/OnDequeue/OnVisit to observe or
// abort traversal.
package algorithms

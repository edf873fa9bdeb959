// Package gridgraph defines the Connectivity enum shared by landscape's
// grid deme constructors and the builder.Grid shape factory: orthogonal
// (Conn4) or 8-directional including diagonals (Conn8) neighbor wiring.
package gridgraph

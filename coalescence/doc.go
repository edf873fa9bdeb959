// Package coalescence implements the Lineage Forest and the Backward
// Coalescent Driver: an ordered multiset of (deme, payload) lineages, and
// the generation-by-generation merge + backward-migration loop that reduces
// a sample down toward a most recent common ancestor.
//
// Grounded on original_source/.../Forest.h and merger.h/merge.h.
package coalescence

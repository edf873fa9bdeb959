// Package wftail implements the Ancestral Wright-Fisher Tail: a closed-form
// panmictic coalescent that finishes reducing a forest to a single lineage
// when the recorded spatial history is exhausted before reaching a most
// recent common ancestor.
//
// Grounded on original_source/.../DiscreteTimeWrightFisher.h.
package wftail

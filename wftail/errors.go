package wftail

import "errors"

// ErrTooFewLineages indicates Coalesce was called with fewer than two
// lineages in the forest; there is nothing to coalesce.
var ErrTooFewLineages = errors.New("wftail: forest holds fewer than two lineages")

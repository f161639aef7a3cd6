// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"sort"

	"github.com/tgwang98/tgwang98.github.io/pkg/types"
)

// Order returns pubs arranged according to policy. OrderFeed (and the empty
// policy) returns pubs unchanged. OrderYear returns a copy stably sorted
// descending by year, then by updated timestamp.
func Order(pubs []types.Publication, policy types.OrderPolicy) []types.Publication {
	if policy != types.OrderYear {
		return pubs
	}

	sorted := make([]types.Publication, len(pubs))
	copy(sorted, pubs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Year != sorted[j].Year {
			return sorted[i].Year > sorted[j].Year
		}
		return sorted[i].Updated.After(sorted[j].Updated)
	})
	return sorted
}

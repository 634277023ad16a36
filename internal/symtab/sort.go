package symtab

import (
	"sort"

	"github.com/maruel/natural"
)

// sortNatural sorts names in natural (human) order, so that
// "_temporal_identifier_2_" sorts before "_temporal_identifier_10_"
// instead of the other way around under a byte-wise sort.
func sortNatural(names []string) {
	sort.Slice(names, func(i, j int) bool {
		return natural.Less(names[i], names[j])
	})
}

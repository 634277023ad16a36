package symtab

import "fmt"

// TemporalName formats the synthetic name the print/printid desugaring
// assigns to a fresh local, keyed by the identifier table's size at the
// point of allocation (§4.1.6).
func TemporalName(n int) string {
	return fmt.Sprintf("_temporal_identifier_%d_", n)
}

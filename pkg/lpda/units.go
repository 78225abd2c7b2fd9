package lpda

// FeetToInches is the feet-to-inches conversion factor.
const FeetToInches = 12.0

// Unit names a length unit in emitted files and summaries.
type Unit string

const (
	UnitFeet   Unit = "ft"
	UnitInches Unit = "in"
)

// ToInches returns a new sequence with every field of every pair multiplied
// by 12. No rounding is applied and the input is not modified.
func ToInches(pairs []ElementPair) []ElementPair {
	out := make([]ElementPair, len(pairs))
	for i, p := range pairs {
		out[i] = p.Scale(FeetToInches)
	}
	return out
}

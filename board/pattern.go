package board

import "strings"

// Pattern is a 16-bit occupancy mask, one bit per coordinate, set where the
// corresponding cell magnitude is nonzero.
type Pattern uint16

// AllOccupied is the fully occupied pattern.
const AllOccupied Pattern = 1<<NumCells - 1

// Marked reports whether the bit for p is set.
func (pt Pattern) Marked(p Coord) bool { return pt>>p&1 != 0 }

// Mark returns pt with the bit for p set.
func (pt Pattern) Mark(p Coord) Pattern { return pt | 1<<p }

// Transform maps every set bit through s.
func (pt Pattern) Transform(s Sym) Pattern {
	var out Pattern
	for p := Coord(0); p < NumCells; p++ {
		if pt.Marked(p) {
			out = out.Mark(s.Apply(p))
		}
	}
	return out
}

// Canonical returns the numerically smallest symmetric image of pt and the
// symmetry that reaches it.
func (pt Pattern) Canonical() (Pattern, Sym) {
	canon, canonSym := pt, Identity
	for s := Sym(1); s < NumSyms; s++ {
		if img := pt.Transform(s); img < canon {
			canon, canonSym = img, s
		}
	}
	return canon, canonSym
}

// String renders the mask as a grid of |#| and | | cells, one line per row.
func (pt Pattern) String() string {
	var sb strings.Builder
	for r := 0; r < N; r++ {
		sb.WriteByte('\n')
		for c := 0; c < N; c++ {
			if pt.Marked(CoordOf(r, c)) {
				sb.WriteString("|#|")
			} else {
				sb.WriteString("| |")
			}
		}
	}
	return sb.String()
}

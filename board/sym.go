package board

// Sym is one of the 8 symmetries of the square: an optional vertical mirror
// (rows flipped) followed by 0-3 counter-clockwise quarter turns. The low
// bit selects the mirror, the remaining bits the number of turns.
type Sym uint8

// NumSyms is the order of the symmetry group.
const NumSyms = 8

// Identity is the do-nothing symmetry.
const Identity Sym = 0

var (
	symCoord [NumSyms][NumCells]Coord
	symInv   [NumSyms]Sym
	symConj  [NumSyms][4]Move
)

func init() {
	for s := Sym(0); s < NumSyms; s++ {
		mirror := s&1 != 0
		rot := int(s >> 1)
		for p := Coord(0); p < NumCells; p++ {
			r, c := p.Row(), p.Col()
			if mirror {
				r = N - 1 - r
			}
			for k := 0; k < rot; k++ {
				r, c = N-1-c, r
			}
			symCoord[s][p] = CoordOf(r, c)
		}
	}
	for s := Sym(0); s < NumSyms; s++ {
		for t := Sym(0); t < NumSyms; t++ {
			if t.Apply(s.Apply(0)) == 0 && t.Apply(s.Apply(1)) == 1 {
				symInv[s] = t
			}
		}
		// Conjugate each direction: isometries map unit steps to unit steps,
		// so probing a single interior cell determines the image direction.
		p := CoordOf(1, 1)
		for _, m := range Moves {
			q, _ := p.Move(m)
			a, b := s.Apply(p), s.Apply(q)
			for _, mm := range Moves {
				if b.Row()-a.Row() == mm.dRow() && b.Col()-a.Col() == mm.dCol() {
					symConj[s][m] = mm
				}
			}
		}
	}
}

// Apply maps a coordinate into the symmetry's image space.
func (s Sym) Apply(p Coord) Coord { return symCoord[s][p] }

// Inverse returns the symmetry mapping images back to their originals.
func (s Sym) Inverse() Sym { return symInv[s] }

// Conj returns the direction m turns into under s: for any in-grid step
// from p to q by m, s.Apply(q) is one step by s.Conj(m) from s.Apply(p).
func (s Sym) Conj(m Move) Move { return symConj[s][m] }

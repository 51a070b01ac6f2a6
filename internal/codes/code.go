package codes

// Code is a short film-annotation mnemonic for one observed in-game event.
type Code string

// Fixed legend codes
const (
	TD  Code = "TD"  // touchdown
	E   Code = "E"   // effort play
	ER  Code = "ER"  // elite route
	GR  Code = "GR"  // good route
	GB  Code = "GB"  // good block
	P   Code = "P"   // pancake block
	FD  Code = "FD"  // first down
	MA  Code = "MA"  // missed assignment
	SC  Code = "SC"  // spectacular catch
	DP  Code = "DP"  // dropped pass
	H   Code = "H"   // holding (neutral, logged only)
	BR  Code = "BR"  // bad route
	L   Code = "L"   // loaf
	NFS Code = "NFS" // not full speed
	W   Code = "W"   // whiffed block
)

// Points maps each fixed code to its legend point value.
var Points = map[Code]float64{
	TD:  15,
	E:   5,
	ER:  7,
	GR:  2,
	GB:  2,
	P:   10,
	FD:  5,
	MA:  -10,
	SC:  10,
	DP:  -15,
	H:   0,
	BR:  -2,
	L:   -2,
	NFS: -3,
	W:   -1,
}

// KeyPlayEligible is the set of positive-impact codes that count toward
// the derived key-play tally.
var KeyPlayEligible = map[Code]bool{
	TD: true,
	SC: true,
	ER: true,
	GR: true,
	GB: true,
	P:  true,
	FD: true,
	E:  true,
}

// All lists every legend code in a stable order for output columns.
var All = []Code{TD, E, ER, GR, GB, P, FD, MA, SC, DP, H, BR, L, NFS, W}

// PositiveOrder and NegativeOrder define the display order used by
// player-facing reports.
var (
	PositiveOrder = []Code{TD, SC, ER, GR, GB, P, FD, E}
	NegativeOrder = []Code{MA, DP, L, NFS, W, BR, H}
)

// Known reports whether s is a legend code. The lookup key must already
// be canonical uppercase.
func Known(s string) bool {
	_, ok := Points[Code(s)]
	return ok
}

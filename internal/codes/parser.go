package codes

import (
	"regexp"
	"strconv"
	"strings"
)

// Patterns for the two parametric codes. N is a signed integer; the
// optional parentheses cover tokens like "(C+12)" that survive splitting.
var (
	catchYardsPattern = regexp.MustCompile(`^(?i)\(?\s*C\+(-?\d+)\s*\)?$`)
	rushYardsPattern  = regexp.MustCompile(`^(?i)\(?\s*R\+(-?\d+)\s*\)?$`)
	tokenSplitter     = regexp.MustCompile(`[\s,;]+`)
	parenStripper     = strings.NewReplacer("(", " ", ")", " ")
)

// Result aggregates one annotation string: total legend points, per-code
// counts, parametric yardage sums and the derived key-play tally.
type Result struct {
	Points          float64
	Counts          map[Code]int
	CatchYards      int
	RushYards       int
	DerivedKeyPlays int
}

// Parse tokenizes a freeform annotation string and aggregates it.
// It never fails: empty input or unrecognized tokens yield zero output.
// Accepts formats like "(ER) (C+12) (FD)", "ER; C+12; FD" or "ER C+12 FD",
// including mixed parentheses, commas and semicolons.
func Parse(annotation string) Result {
	res := Result{Counts: make(map[Code]int, len(All))}
	for _, c := range All {
		res.Counts[c] = 0
	}

	if strings.TrimSpace(annotation) == "" {
		return res
	}

	tokens := tokenSplitter.Split(parenStripper.Replace(annotation), -1)
	for _, t := range tokens {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}

		if m := catchYardsPattern.FindStringSubmatch(t); m != nil {
			n, _ := strconv.Atoi(m[1])
			res.Points += 0.5 * float64(n)
			res.CatchYards += n
			continue
		}
		if m := rushYardsPattern.FindStringSubmatch(t); m != nil {
			n, _ := strconv.Atoi(m[1])
			res.Points += 0.5 * float64(n)
			res.RushYards += n
			continue
		}

		code := Code(strings.ToUpper(t))
		pts, ok := Points[code]
		if !ok {
			// Stray annotation noise is dropped, never an error
			continue
		}
		res.Points += pts
		res.Counts[code]++
		if KeyPlayEligible[code] {
			res.DerivedKeyPlays++
		}
	}

	return res
}

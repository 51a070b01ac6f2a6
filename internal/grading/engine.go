package grading

import (
	"math"
	"strings"

	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/codes"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/contracts"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/internal/scoringconfig"
	"github.com/mitchelldawkinsjr/GH-Flim-Review/pkg/logger"
)

// Engine turns a PlayerWeekRecord into a GradedRecord. It is a pure,
// stateless transform: identical input always yields identical output,
// and each record is graded independently of every other.
type Engine struct {
	weights *scoringconfig.Config
	logger  *logger.Logger
}

// New creates a grading engine with the given weights
func New(weights *scoringconfig.Config, log *logger.Logger) *Engine {
	return &Engine{
		weights: weights,
		logger:  log,
	}
}

// Grade computes the composite score and letter grade for one record.
//
// The step order matters: snap-gating first, then the annotation parse
// (which overrides the discipline counters when codes are present), then
// key-play resolution, rates, score, letter.
func (e *Engine) Grade(rec contracts.PlayerWeekRecord) contracts.GradedRecord {
	// Guard against bogus discipline stats when no snaps were recorded
	if rec.Snaps <= 0 {
		rec.MissedAssignments = 0
		rec.Loafs = 0
	}

	// When codes are present they are the authoritative source of
	// discipline counts, superseding the separately tabulated columns
	parsed := codes.Parse(rec.Codes)
	if strings.TrimSpace(rec.Codes) != "" {
		rec.MissedAssignments = parsed.Counts[codes.MA]
		rec.Loafs = parsed.Counts[codes.L]
	}

	// Use the provided key_plays if positive, else fall back to the
	// derived count. Zero is treated as "not provided".
	keyPlays := rec.KeyPlays
	if keyPlays <= 0 {
		keyPlays = float64(parsed.DerivedKeyPlays)
	}

	g := contracts.GradedRecord{
		PlayerWeekRecord: rec,

		CatchRate:      safeDiv(float64(rec.Catches), float64(rec.Targets)),
		YardsPerTarget: safeDiv(float64(rec.RecYards+rec.RushYards), float64(rec.Targets)),
		TDsPer30:       per30(float64(rec.Touchdowns), rec.Snaps),
		KeyPlaysPer30:  per30(keyPlays, rec.Snaps),
		TargetsPer30:   per30(float64(rec.Targets), rec.Snaps),
		DropsRate:      safeDiv(float64(rec.Drops), float64(rec.Targets)),
		LoafsPer30:     per30(float64(rec.Loafs), rec.Snaps),
		MAPer30:        per30(float64(rec.MissedAssignments), rec.Snaps),

		CodePoints:      parsed.Points,
		CodeCounts:      parsed.Counts,
		CodeCatchYards:  parsed.CatchYards,
		CodeRushYards:   parsed.RushYards,
		DerivedKeyPlays: parsed.DerivedKeyPlays,
		KeyPlaysUsed:    keyPlays,
	}

	g.Score = e.score(&g)
	g.Grade = Letter(g.Score)

	if e.logger != nil {
		e.logger.WithFields(map[string]interface{}{
			"player": rec.Player,
			"week":   rec.Week,
			"score":  g.Score,
			"grade":  g.Grade,
		}).Debug("Graded record")
	}

	return g
}

// GradeAll grades a batch of records, preserving input order
func (e *Engine) GradeAll(recs []contracts.PlayerWeekRecord) []contracts.GradedRecord {
	graded := make([]contracts.GradedRecord, 0, len(recs))
	for _, rec := range recs {
		graded = append(graded, e.Grade(rec))
	}
	return graded
}

// score applies the weighted composite formula and clamps to [0, 100]
func (e *Engine) score(g *contracts.GradedRecord) float64 {
	w := e.weights

	yardsNorm := safeDiv(g.YardsPerTarget, w.Positive.YardsPerTargetCap)
	yardsTerm := w.Positive.Yards * math.Min(yardsNorm, 1.0)
	tdsTerm := w.Positive.TDs * math.Min(g.TDsPer30, 1.0)

	// sqrt of key plays per 30, capped after the square root
	kpSqrt := 0.0
	if g.KeyPlaysPer30 > 0 {
		kpSqrt = math.Sqrt(g.KeyPlaysPer30)
	}
	keyPlaysTerm := w.Positive.KeyPlays * math.Min(kpSqrt, w.Positive.KeyPlaysSqrtCap)

	targetsTerm := w.Positive.Targets * math.Min(g.TargetsPer30, 1.0)

	// Rewards being simultaneously reliable and explosive
	synergyTerm := w.Positive.Synergy * math.Min(g.CatchRate*yardsNorm, 1.0)

	positive := w.Positive.CatchRate*g.CatchRate +
		yardsTerm +
		tdsTerm +
		keyPlaysTerm +
		targetsTerm +
		synergyTerm

	negative := w.Negative.Drops*g.DropsRate +
		w.Negative.Loafs*g.LoafsPer30 +
		w.Negative.MissedAssignments*math.Min(g.MAPer30, 1.0)

	return clamp(w.Base+positive-negative, 0.0, 100.0)
}

// Letter maps a score to the A-F band; boundaries are inclusive on the
// lower bound of each band.
func Letter(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// safeDiv divides n by d, returning 0.0 on a zero denominator
func safeDiv(n, d float64) float64 {
	if d == 0 {
		return 0.0
	}
	return n / d
}

// per30 normalizes a count to a 30-snap sample; 0 whenever snaps <= 0
func per30(n float64, snaps int) float64 {
	if snaps <= 0 {
		return 0.0
	}
	return n * 30.0 / float64(snaps)
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

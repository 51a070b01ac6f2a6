package contracts

// PlayerWeekRecord is the unit of computation: one player, one week,
// one game. It is constructed once per input row and never mutated
// after ingestion.
type PlayerWeekRecord struct {
	Player string `json:"player"`
	Week   string `json:"week"`

	// Raw counters from the box score
	Snaps             int `json:"snaps"`
	Targets           int `json:"targets"`
	Catches           int `json:"catches"`
	RecYards          int `json:"rec_yards"`
	RushYards         int `json:"rush_yards"`
	Touchdowns        int `json:"touchdowns"`
	Drops             int `json:"drops"`
	MissedAssignments int `json:"missed_assignments"`
	Loafs             int `json:"loafs"`

	// KeyPlays is the optional explicit tally from the sheet; zero or
	// negative means "not provided" and the derived count is used instead.
	KeyPlays float64 `json:"key_plays"`

	// Codes is the freeform film annotation string for the week
	Codes string `json:"codes"`
}

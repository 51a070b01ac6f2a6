package ingest

import "strings"

// Canonical column names the grading engine expects. Key plays and codes
// are optional; codes can also arrive as the split "key play ++" /
// "key play --" pair.
var RequiredColumns = []string{
	"player", "week", "snaps", "targets", "catches", "rec_yards",
	"rush_yards", "touchdowns", "drops", "missed_assignments", "loafs",
}

// aliases maps glued spellings seen in real sheets to canonical names
var aliases = map[string]string{
	"recyards":          "rec_yards",
	"rushyards":         "rush_yards",
	"missedassignments": "missed_assignments",
	"keyplays":          "key_plays",
}

// NormalizeHeader converts a raw spreadsheet column name to its canonical
// snake_case key: lowercase, non-alphanumerics become underscores,
// runs collapse, edges trim, known glued spellings map to canonical.
// Normalization happens once at this boundary so the engine sees a
// single schema.
func NormalizeHeader(raw string) string {
	var b strings.Builder
	for _, ch := range strings.ToLower(raw) {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= '0' && ch <= '9':
			b.WriteRune(ch)
		default:
			b.WriteRune('_')
		}
	}

	name := b.String()
	for strings.Contains(name, "__") {
		name = strings.ReplaceAll(name, "__", "_")
	}
	name = strings.Trim(name, "_")

	if canonical, ok := aliases[name]; ok {
		return canonical
	}
	return name
}

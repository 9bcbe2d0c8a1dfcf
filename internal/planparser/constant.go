package planparser

const (
	// GlobalDay labels items found before any day heading.
	GlobalDay = "Global"

	// minBulletLen is the shortest trimmed bullet line treated as an item.
	minBulletLen = 3

	// DayStartPattern matches a level 1 or 2 heading carrying an optional "Day" word and a number.
	DayStartPattern = `(?i)^[ \t]*#{1,2}[ \t]+(?:day[ \t]*:?[ \t]*)?\d`
)

// excludedKeywords mark bullets that belong to meal or preparation sections
// leaking into a shopping section.
var excludedKeywords = []string{"step", "suhoor", "iftar", "preparation"}

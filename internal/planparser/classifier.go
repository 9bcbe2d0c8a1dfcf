package planparser

import "strings"

// ClassifyLine decides what a single line is. Precedence matters: a day
// heading wins over a shopping heading, which wins over any other heading.
func ClassifyLine(line string) LineKind {
	trimmed := strings.TrimSpace(line)
	lower := strings.ToLower(trimmed)

	switch {
	case strings.Contains(lower, "# day"),
		strings.HasPrefix(lower, "day") && strings.Contains(lower, ":"):
		return LineDayHeading
	case (strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "*")) && strings.Contains(lower, "shopping"):
		return LineShoppingHeading
	case strings.HasPrefix(trimmed, "#"):
		return LineOtherHeading
	case strings.HasPrefix(trimmed, "-") && len(trimmed) >= minBulletLen:
		return LineBullet
	default:
		return LineText
	}
}

// Classifier walks a plan line by line and tracks which day and section it is in.
type Classifier struct {
	opt    Options
	state  State
	day    string
	sawDay bool
}

// NewClassifier returns a Classifier in StateSeeking with the Global day.
func NewClassifier(opt Options) *Classifier {
	return &Classifier{opt: opt, state: StateSeeking, day: GlobalDay}
}

// State returns the current state.
func (c *Classifier) State() State { return c.state }

// Day returns the label of the day heading seen last, or GlobalDay.
func (c *Classifier) Day() string { return c.day }

// Feed advances the classifier by one line. It returns the bullet label when the
// line is an item inside a shopping section.
func (c *Classifier) Feed(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)

	switch ClassifyLine(trimmed) {
	case LineDayHeading:
		c.day = dayLabel(trimmed)
		c.sawDay = true
		c.state = StateInDay
	case LineShoppingHeading:
		c.state = StateInShoppingSection
	case LineOtherHeading:
		// Lenient mode stays in the shopping section until the next day heading.
		if c.state == StateInShoppingSection && c.opt.StrictSections && isLevelTwo(trimmed) {
			c.state = c.restingState()
		}
	case LineBullet:
		if c.state == StateInShoppingSection {
			label := strings.TrimSpace(strings.Replace(trimmed, "-", "", 1))
			return label, label != ""
		}
	}
	return "", false
}

func (c *Classifier) restingState() State {
	if c.sawDay {
		return StateInDay
	}
	return StateSeeking
}

// dayLabel strips every '#' and ':' from a day heading, e.g. "## Day 3:" -> "Day 3".
func dayLabel(trimmed string) string {
	label := strings.ReplaceAll(trimmed, "#", "")
	label = strings.ReplaceAll(label, ":", "")
	return strings.TrimSpace(label)
}

func isLevelTwo(trimmed string) bool {
	return strings.HasPrefix(trimmed, "##") && !strings.HasPrefix(trimmed, "###")
}

func isExcluded(label string) bool {
	lower := strings.ToLower(label)
	for _, kw := range excludedKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

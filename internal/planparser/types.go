package planparser

// SegmentKind tells what a partition span holds.
type SegmentKind string

const (
	SegmentPreamble SegmentKind = "preamble" // text before the first day heading
	SegmentDay      SegmentKind = "day"      // a kept DayBlock
	SegmentStray    SegmentKind = "stray"    // started by a day heading but never mentions "day"
)

// Segment is one contiguous span of the raw plan. Concatenating every Segment
// of a Partition in order yields the raw plan byte for byte.
type Segment struct {
	Kind  SegmentKind
	Start int // byte offset, inclusive
	End   int // byte offset, exclusive
	Text  string
}

// DayBlock is the slice of a plan believed to describe one day.
type DayBlock struct {
	Index   int    // 1-based position among kept blocks, not the printed day number
	Heading string // heading line without markers, e.g. "Day 3"
	Text    string // raw Markdown including the heading line
	Start   int
	End     int
}

// Partition is the result of splitting a plan at day headings.
type Partition struct {
	Segments []Segment
	Days     []DayBlock
}

// State is the line classifier state used by the shopping pass.
type State int

const (
	StateSeeking State = iota
	StateInDay
	StateInShoppingSection
)

func (s State) String() string {
	switch s {
	case StateSeeking:
		return "Seeking"
	case StateInDay:
		return "InDay"
	case StateInShoppingSection:
		return "InShoppingSection"
	default:
		return "Unknown"
	}
}

// LineKind is what the classifier decided a single trimmed line is.
type LineKind int

const (
	LineText LineKind = iota
	LineDayHeading
	LineShoppingHeading
	LineOtherHeading
	LineBullet
)

// ExtractedItem is a shopping candidate that survived the keyword filter.
type ExtractedItem struct {
	Line  int    // 0-based line index in the raw plan
	Label string // bullet text, trimmed
	Day   string // day heading active when the item was found
}

// Options tunes the shopping pass.
type Options struct {
	// StrictSections leaves the shopping section on any level-2 heading that
	// does not mention shopping. Off by default: the section then only ends at
	// the next day heading.
	StrictSections bool
}

package planparser

import (
	"regexp"
	"strings"
)

type Service interface {
	// Partition splits content at day headings into spans covering all of it.
	Partition(content string) Partition

	// SplitDays returns only the kept day blocks, in the order they appear.
	SplitDays(content string) []DayBlock

	// ExtractShoppingItems returns filtered shopping candidates in scan order.
	// Duplicates are kept; callers dedupe.
	ExtractShoppingItems(content string) []ExtractedItem
}

type service struct {
	dayStart *regexp.Regexp
	opt      Options
}

func New(opt Options) Service {
	return &service{
		dayStart: regexp.MustCompile(DayStartPattern),
		opt:      opt,
	}
}

type lineSpan struct {
	start int
	text  string
}

// lines returns each line with its starting byte offset. The newline is not part of text.
func lines(content string) []lineSpan {
	var out []lineSpan
	start := 0
	for start < len(content) {
		end := strings.IndexByte(content[start:], '\n')
		if end < 0 {
			out = append(out, lineSpan{start: start, text: content[start:]})
			break
		}
		out = append(out, lineSpan{start: start, text: content[start : start+end]})
		start += end + 1
	}
	return out
}

// Partition splits content at day headings. Out-of-order or repeated day
// numbers are kept where they appear.
func (s *service) Partition(content string) Partition {
	var p Partition
	if content == "" {
		return p
	}

	var starts []int
	for _, ln := range lines(content) {
		if s.dayStart.MatchString(ln.text) {
			starts = append(starts, ln.start)
		}
	}

	if len(starts) == 0 {
		p.Segments = []Segment{{Kind: SegmentPreamble, Start: 0, End: len(content), Text: content}}
		return p
	}

	if starts[0] > 0 {
		p.Segments = append(p.Segments, Segment{
			Kind:  SegmentPreamble,
			Start: 0,
			End:   starts[0],
			Text:  content[:starts[0]],
		})
	}

	for i, start := range starts {
		end := len(content)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		text := content[start:end]

		if !strings.Contains(strings.ToLower(text), "day") {
			p.Segments = append(p.Segments, Segment{Kind: SegmentStray, Start: start, End: end, Text: text})
			continue
		}

		p.Segments = append(p.Segments, Segment{Kind: SegmentDay, Start: start, End: end, Text: text})
		p.Days = append(p.Days, DayBlock{
			Index:   len(p.Days) + 1,
			Heading: headingOf(text),
			Text:    text,
			Start:   start,
			End:     end,
		})
	}

	return p
}

// SplitDays returns the kept day blocks of content.
func (s *service) SplitDays(content string) []DayBlock {
	return s.Partition(content).Days
}

// ExtractShoppingItems runs the line classifier over content.
func (s *service) ExtractShoppingItems(content string) []ExtractedItem {
	if strings.TrimSpace(content) == "" {
		return nil
	}

	c := NewClassifier(s.opt)
	var items []ExtractedItem
	for i, line := range strings.Split(content, "\n") {
		label, ok := c.Feed(line)
		if !ok || isExcluded(label) {
			continue
		}
		items = append(items, ExtractedItem{Line: i, Label: label, Day: c.Day()})
	}
	return items
}

// headingOf returns the first line of a block without heading markers.
func headingOf(block string) string {
	first := block
	if idx := strings.IndexByte(block, '\n'); idx >= 0 {
		first = block[:idx]
	}
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(first), "#"))
}

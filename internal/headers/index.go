package headers

import "sort"

// Index scans doc and returns every header section ordered by start line.
//
// A section closes on the line before the next header at the same or a
// shallower level, or on the last line of the document. Deeper headers are
// reported as their own entries while the enclosing section's range still
// covers them.
func Index(doc string) []Section {
	lines := Lines(doc)

	var (
		open   []Section
		closed []Section
	)
	for i, line := range lines {
		level := Level(line)
		if level == 0 {
			continue
		}
		for len(open) > 0 && open[len(open)-1].Level >= level {
			top := open[len(open)-1]
			top.End = i - 1
			closed = append(closed, top)
			open = open[:len(open)-1]
		}
		open = append(open, Section{
			Text:  trimHeader(line),
			Level: level,
			Start: i,
		})
	}

	last := len(lines) - 1
	for len(open) > 0 {
		top := open[len(open)-1]
		top.End = last
		closed = append(closed, top)
		open = open[:len(open)-1]
	}

	sort.SliceStable(closed, func(i, j int) bool {
		return closed[i].Start < closed[j].Start
	})
	return closed
}

// Find returns the first indexed section whose text equals header.
func Find(sections []Section, header string) (Section, bool) {
	for _, s := range sections {
		if s.Text == header {
			return s, true
		}
	}
	return Section{}, false
}

package logbook

import (
	"regexp"
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"
	todoMarker = "(TODO)"
)

var (
	headerPattern = regexp.MustCompile(`^\s*Activity\s+Report\s+(\d{4}-\d{2}-\d{2})\s*\(([^)]*)\)\s*$`)
	tagPattern    = regexp.MustCompile(`\[([A-Za-z]+)\]`)
)

// ParseHeader extracts the date and location from a report's first line, e.g.
// "Activity Report 2023-05-04 (Remote)". The date must be a real calendar date.
func ParseHeader(line string) (Header, error) {
	matches := headerPattern.FindStringSubmatch(line)
	if matches == nil {
		return Header{}, &HeaderParseError{Line: line, Reason: "does not match \"Activity Report YYYY-MM-DD (location)\""}
	}

	date, err := time.Parse(dateLayout, matches[1])
	if err != nil {
		return Header{}, &HeaderParseError{Line: line, Reason: "invalid calendar date " + matches[1]}
	}

	return Header{
		Date:     date,
		Location: matches[2],
		Raw:      line,
	}, nil
}

// ParseEntry extracts bracketed [Tag] counts and the (TODO) marker from one body
// line. It never fails: text without tags yields an entry with no tags.
func ParseEntry(line string) Entry {
	entry := Entry{
		Tags:   Tags{},
		IsTodo: strings.Contains(line, todoMarker),
		Raw:    line,
	}
	for _, match := range tagPattern.FindAllStringSubmatch(line, -1) {
		entry.Tags[match[1]]++
	}
	return entry
}

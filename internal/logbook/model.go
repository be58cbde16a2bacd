package logbook

import "time"

// Header is the first line of a report: the report date and where work happened.
type Header struct {
	Date     time.Time
	Location string
	Raw      string
}

// Tags maps a tag name to the number of times it occurs. Absent tags count as zero;
// read through Count rather than indexing when that matters.
type Tags map[string]int

// Count returns the occurrences of name, or zero when the tag is absent.
func (t Tags) Count(name string) int {
	if t == nil {
		return 0
	}
	return t[name]
}

// Total sums every tag occurrence.
func (t Tags) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

// Entry represents one body line of a report.
type Entry struct {
	Tags   Tags
	IsTodo bool
	Raw    string
}

// Report is the parsed contents of one day's file.
type Report struct {
	Date    time.Time
	Path    string
	Header  Header
	Entries []Entry
}

// Todos returns the entries carrying the to-do marker, in file order.
func (r Report) Todos() []Entry {
	var todos []Entry
	for _, entry := range r.Entries {
		if entry.IsTodo {
			todos = append(todos, entry)
		}
	}
	return todos
}

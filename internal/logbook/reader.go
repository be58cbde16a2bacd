package logbook

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Resolver maps a calendar date to the path of its report file.
type Resolver interface {
	ReportPath(date time.Time) string
}

// ResolverFunc adapts a plain function to a Resolver.
type ResolverFunc func(date time.Time) string

// ReportPath calls f(date).
func (f ResolverFunc) ReportPath(date time.Time) string {
	return f(date)
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithLogger sets the logger used for load diagnostics.
func WithLogger(logger *slog.Logger) ReaderOption {
	return func(r *Reader) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Reader loads reports from files located by a Resolver. It only ever reads.
type Reader struct {
	resolver Resolver
	logger   *slog.Logger
}

// NewReader wires a reader around the resolver that names report files.
func NewReader(resolver Resolver, opts ...ReaderOption) *Reader {
	r := &Reader{
		resolver: resolver,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// LoadStatus discriminates the outcome of looking up one date.
type LoadStatus uint8

const (
	// LoadFound means the report was read and validated.
	LoadFound LoadStatus = iota
	// LoadMissing means no report file exists for the date.
	LoadMissing
	// LoadFailed means the file exists but could not be read or validated.
	LoadFailed
)

func (s LoadStatus) String() string {
	switch s {
	case LoadFound:
		return "found"
	case LoadMissing:
		return "missing"
	case LoadFailed:
		return "failed"
	default:
		return fmt.Sprintf("LoadStatus(%d)", uint8(s))
	}
}

// LoadResult is the outcome of Lookup. Report is set only for LoadFound and Err
// is set for LoadMissing and LoadFailed.
type LoadResult struct {
	Date   time.Time
	Status LoadStatus
	Report Report
	Err    error
}

// Lookup loads the report for date and classifies the outcome.
func (r *Reader) Lookup(ctx context.Context, date time.Time) LoadResult {
	report, err := r.Load(ctx, date)
	switch {
	case err == nil:
		return LoadResult{Date: date, Status: LoadFound, Report: report}
	case errors.Is(err, ErrReportNotFound):
		return LoadResult{Date: date, Status: LoadMissing, Err: err}
	default:
		return LoadResult{Date: date, Status: LoadFailed, Err: err}
	}
}

// Load reads the report for date. It fails with ErrReportNotFound when the file
// does not exist, a *HeaderParseError when the first line is not a valid header,
// and a *DateMismatchError when the header names another day.
func (r *Reader) Load(ctx context.Context, date time.Time) (Report, error) {
	if r == nil || r.resolver == nil {
		return Report{}, errors.New("reader not initialized with resolver")
	}
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	path := r.resolver.ReportPath(date)
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Report{}, fmt.Errorf("%w: %s", ErrReportNotFound, path)
		}
		return Report{}, fmt.Errorf("open report: %w", err)
	}
	defer file.Close()

	header, entries, err := parseReport(file)
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", path, err)
	}
	if !sameDay(header.Date, date) {
		return Report{}, &DateMismatchError{Path: path, Want: date, Got: header.Date}
	}

	r.logger.Debug("report loaded",
		slog.String("path", path),
		slog.String("location", header.Location),
		slog.Int("entries", len(entries)))

	return Report{
		Date:    date,
		Path:    path,
		Header:  header,
		Entries: entries,
	}, nil
}

// Reports walks start..end inclusive, one day at a time, yielding each report
// that exists. Missing days are skipped. Any other failure is yielded once with
// its error and ends the sequence. An end before start yields nothing. Each
// range over the returned sequence walks the dates afresh.
func (r *Reader) Reports(ctx context.Context, start, end time.Time) iter.Seq2[Report, error] {
	return func(yield func(Report, error) bool) {
		for current := start; !afterDay(current, end); current = current.AddDate(0, 0, 1) {
			result := r.Lookup(ctx, current)
			switch result.Status {
			case LoadFound:
				if !yield(result.Report, nil) {
					return
				}
			case LoadMissing:
				r.logger.Debug("no report for date", slog.String("date", current.Format(dateLayout)))
			default:
				yield(Report{}, result.Err)
				return
			}
		}
	}
}

func parseReport(rd io.Reader) (Header, []Entry, error) {
	br := bufio.NewReader(rd)

	first, ok, err := readLine(br)
	if err != nil {
		return Header{}, nil, err
	}
	if !ok {
		return Header{}, nil, &HeaderParseError{Reason: "report is empty"}
	}
	header, err := ParseHeader(first)
	if err != nil {
		return Header{}, nil, err
	}

	var entries []Entry
	for {
		line, ok, err := readLine(br)
		if err != nil {
			return Header{}, nil, err
		}
		if !ok {
			return header, entries, nil
		}
		entries = append(entries, ParseEntry(line))
	}
}

// readLine returns the next line without its line ending, however long it is.
// ok is false once the input is exhausted.
func readLine(br *bufio.Reader) (string, bool, error) {
	line, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, err
	}
	if line == "" && err != nil {
		return "", false, nil
	}
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), true, nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// afterDay reports whether a falls on a later calendar day than b.
func afterDay(a, b time.Time) bool {
	if a.Year() != b.Year() {
		return a.Year() > b.Year()
	}
	return a.YearDay() > b.YearDay()
}

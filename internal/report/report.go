// Package report prints per-callback size and content heuristics for
// argument text pulled out of a page dump.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"dumpscan/internal/callback"
)

// ErrMalformed marks an argument that could not be processed.
var ErrMalformed = errors.New("malformed callback argument")

// Record is the derived metadata for one callback invocation.
type Record struct {
	Key     string   `json:"key"`
	Size    int      `json:"size"`
	Preview string   `json:"preview,omitempty"`
	Notes   []string `json:"notes,omitempty"`
}

// Heuristic is a named predicate over a payload. Note is printed when
// Match reports true.
type Heuristic struct {
	Name  string
	Match func(payload string) bool
	Note  string
}

// TimestampHint flags payloads whose first window characters contain
// marker. It does no numeric parsing.
func TimestampHint(marker string, window int) Heuristic {
	return Heuristic{
		Name: "timestamps",
		Match: func(payload string) bool {
			return strings.Contains(prefix(payload, window), marker)
		},
		Note: "   Possibility of timestamps.",
	}
}

// Options controls when previews are printed and what is sniffed.
type Options struct {
	// Threshold is the size a payload must exceed to be previewed.
	Threshold     int
	PreviewLength int
	Heuristics    []Heuristic
	// Styled renders preview headers and notes with terminal styles.
	Styled bool
	// Errors receives per-match failures. Defaults to the report writer.
	Errors io.Writer
}

// DefaultOptions returns the stock thresholds and the timestamp sniff.
func DefaultOptions() Options {
	return Options{
		Threshold:     1000,
		PreviewLength: 200,
		Heuristics:    []Heuristic{TimestampHint("176", 5000)},
	}
}

// Reporter writes the line-oriented report.
type Reporter struct {
	out  io.Writer
	errs io.Writer
	opts Options
}

// New creates a Reporter writing to out.
func New(out io.Writer, opts Options) *Reporter {
	errs := opts.Errors
	if errs == nil {
		errs = out
	}
	return &Reporter{out: out, errs: errs, opts: opts}
}

// Report prints the summary line followed by one block per argument and
// returns the records that were processed successfully. A failing
// argument is reported and skipped.
func (r *Reporter) Report(args []string) []Record {
	fmt.Fprintf(r.out, "Found %d callbacks.\n", len(args))

	records := make([]Record, 0, len(args))
	for _, arg := range args {
		rec, err := r.process(arg)
		if err != nil {
			fmt.Fprintf(r.errs, "Error parsing: %v\n", err)
			continue
		}
		records = append(records, rec)
	}
	return records
}

// process handles a single argument. Panics raised by heuristics are
// turned into errors so the scan can continue.
func (r *Reporter) process(arg string) (rec Record, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrMalformed, p)
		}
	}()

	if !utf8.ValidString(arg) {
		return Record{}, fmt.Errorf("%w: invalid UTF-8", ErrMalformed)
	}

	rec.Key = callback.Key(arg)
	rec.Size = utf8.RuneCountInString(arg)
	fmt.Fprintf(r.out, "Key: %s, Payload Size: %d chars\n", rec.Key, rec.Size)

	if rec.Size <= r.opts.Threshold {
		return rec, nil
	}

	rec.Preview = prefix(arg, r.opts.PreviewLength)
	fmt.Fprintln(r.out, r.header(fmt.Sprintf("--- PREVIEW %s ---", rec.Key)))
	fmt.Fprintln(r.out, rec.Preview)

	for _, h := range r.opts.Heuristics {
		if h.Match(arg) {
			rec.Notes = append(rec.Notes, h.Name)
			fmt.Fprintln(r.out, r.note(h.Note))
		}
	}

	return rec, nil
}

// prefix returns the first n characters of s.
func prefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

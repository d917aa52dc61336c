package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"dumpscan/internal/callback"
	"dumpscan/internal/dump"
	"dumpscan/internal/report"
)

// scanRun is the default command: read the dump, match, report.
func scanRun(cmd *cobra.Command, args []string) error {
	debugf("reading dump: %s", cfg.Input)

	doc, err := dump.Read(cfg.Input)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	debugf("loaded %s of text", humanize.Bytes(uint64(len(doc))))

	matches := callback.Extract(doc)
	debugf("matched %d invocations", len(matches))

	out := cmd.OutOrStdout()
	opts := reportOptions(out)

	// JSON output mode
	if flagJSON {
		opts.Errors = cmd.ErrOrStderr()
		opts.Styled = false
		records := report.New(io.Discard, opts).Report(matches)
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	report.New(out, opts).Report(matches)
	return nil
}

// reportOptions builds reporter options from the loaded config.
func reportOptions(out io.Writer) report.Options {
	return report.Options{
		Threshold:     cfg.PreviewThreshold,
		PreviewLength: cfg.PreviewLength,
		Heuristics: []report.Heuristic{
			report.TimestampHint(cfg.TimestampMarker, cfg.TimestampWindow),
		},
		Styled: cfg.Color && isTerminal(out),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Package callback finds AF_initDataCallback invocations in page source
// and pulls the key label out of their argument text.
package callback

import "regexp"

// Unknown is returned by Key when the argument carries no key.
const Unknown = "UNKNOWN"

// space is the whitespace class used by both patterns. RE2's \s is ASCII
// only; this adds \v, the \x1c-\x1f separators, NEL and the Unicode
// separator categories.
const space = `[\s\v\x1c-\x1f\x{85}\p{Z}]`

var (
	// invocationPattern stops at the nearest "}" + ");", so a nested "});"
	// inside the argument truncates the capture.
	invocationPattern = regexp.MustCompile(`(?s)AF_initDataCallback` + space + `*\(` + space + `*(\{.*?\})` + space + `*\)` + space + `*;`)

	// keyPattern matches key: 'value' with a single-quoted, non-empty value.
	keyPattern = regexp.MustCompile(`key:` + space + `*'([^']+)'`)
)

// Extract returns the argument text of every invocation in doc, in
// document order. It returns nil when nothing matches.
func Extract(doc string) []string {
	matches := invocationPattern.FindAllStringSubmatch(doc, -1)
	if len(matches) == 0 {
		return nil
	}

	args := make([]string, 0, len(matches))
	for _, m := range matches {
		args = append(args, m[1])
	}
	return args
}

// Key returns the single-quoted key value found in arg, or Unknown.
func Key(arg string) string {
	m := keyPattern.FindStringSubmatch(arg)
	if m == nil {
		return Unknown
	}
	return m[1]
}

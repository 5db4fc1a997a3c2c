package transform

import (
	"bytes"
	"regexp"
)

var blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)

// StripComments removes /* */ block comments.
type StripComments struct{}

// Name implements ports.Transform.
func (StripComments) Name() string { return "strip-comments" }

// Apply implements ports.Transform.
func (StripComments) Apply(content []byte, _ string) ([]byte, error) {
	return blockComment.ReplaceAll(content, nil), nil
}

// Trim removes trailing whitespace from every line and ends the content
// with exactly one newline.
type Trim struct{}

// Name implements ports.Transform.
func (Trim) Name() string { return "trim" }

// Apply implements ports.Transform.
func (Trim) Apply(content []byte, _ string) ([]byte, error) {
	lines := bytes.Split(content, []byte("\n"))
	for i, line := range lines {
		lines[i] = bytes.TrimRight(line, " \t\r")
	}

	out := bytes.TrimRight(bytes.Join(lines, []byte("\n")), "\n")
	if len(out) == 0 {
		return out, nil
	}
	return append(out, '\n'), nil
}

package extract

import "strings"

// normalizeLines splits a model response into trimmed, non-empty lines.
// Indented continuation lines and bulleted variants all reduce to the same
// shape, so label matching afterwards is plain prefix matching.
func normalizeLines(response string) []string {
	raw := strings.Split(strings.ReplaceAll(response, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// labelValue reports whether line carries the given label ("Label:",
// "- Label:" or "* Label:") and returns the trimmed remainder.
func labelValue(line, label string) (string, bool) {
	for _, bullet := range []string{"", "- ", "* "} {
		prefix := bullet + label + ":"
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(line[len(prefix):]), true
		}
	}
	return "", false
}

// splitKeyValue splits a "key: value" line, returning ok only when a colon
// is present and the key is non-empty.
func splitKeyValue(line string) (string, string, bool) {
	idx := strings.Index(line, ":")
	if idx <= 0 {
		return "", "", false
	}
	key := strings.TrimSpace(strings.TrimLeft(line[:idx], "-* "))
	value := strings.TrimSpace(line[idx+1:])
	if key == "" {
		return "", "", false
	}
	return key, value, true
}

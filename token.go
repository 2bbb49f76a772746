package fzlog

import (
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
)

// stripSeconds removes every 's' character from a line, detaching the
// unit suffix from numeric time tokens ("12.5s," -> "12.5,").
func stripSeconds(line string) string {
	return strings.ReplaceAll(line, "s", "")
}

// parseSeconds parses a time token, dropping the trailing delimiter left
// over after unit stripping and accepting a decimal comma ("92,3," -> 92.3).
func parseSeconds(tok string) (float64, error) {
	if tok == "" {
		return 0, eris.New("empty time token")
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(tok[:len(tok)-1], ",", "."), 64)
	if err != nil {
		return 0, eris.Wrapf(err, "time token %q", tok)
	}
	return v, nil
}

// parseGroupedInt parses an integer token that may carry thousands
// separators ("1,000" -> 1000).
func parseGroupedInt(tok string) (int, error) {
	v, err := strconv.Atoi(strings.ReplaceAll(tok, ",", ""))
	if err != nil {
		return 0, eris.Wrapf(err, "integer token %q", tok)
	}
	return v, nil
}

// token returns the token at position idx, or an error naming the field
// when the line is too short for the expected layout.
func token(parts []string, idx int, field string) (string, error) {
	if idx >= len(parts) {
		return "", eris.Errorf("fzlog: %s token at position %d out of range (line has %d tokens)", field, idx, len(parts))
	}
	return parts[idx], nil
}

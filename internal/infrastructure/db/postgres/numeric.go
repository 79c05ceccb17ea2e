package postgres

import (
	"fmt"
	"strconv"
	"strings"
)

// parseNumeric converts NUMERIC text as returned by "col::text" into a float64.
func parseNumeric(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("parse numeric %q: %w", s, err)
	}
	return v, nil
}

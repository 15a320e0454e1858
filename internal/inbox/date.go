package inbox

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// parseMillis reads an epoch-millisecond timestamp given as an integer
// ("1700000000000") or a float-formatted number ("1.7e12", "1700000000000.0").
func parseMillis(s string) (int64, error) {
	s = strings.Trim(strings.TrimSpace(s), `"`)
	if s == "" {
		return 0, fmt.Errorf("empty date")
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ms, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", s, err)
	}
	if math.IsNaN(f) || f < 0 || f > 1<<62 {
		return 0, fmt.Errorf("date %q out of range", s)
	}
	return int64(f), nil
}

package youtube

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// isoDuration matches PnDTnHnMnS with every component optional.
var isoDuration = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)(?:\.\d+)?S)?)?$`)

// ParseDuration converts an ISO-8601 duration such as "PT1H2M3S" to whole
// seconds. Unparsable or out-of-range input yields 0 and an error.
func ParseDuration(s string) (int, error) {
	m := isoDuration.FindStringSubmatch(s)
	// "P" and "PT" alone match the pattern but carry no component.
	if m == nil || s == "P" || s[len(s)-1] == 'T' {
		return 0, fmt.Errorf("invalid ISO-8601 duration %q", s)
	}

	units := []int{86400, 3600, 60, 1}
	total := 0
	for i, unit := range units {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return 0, fmt.Errorf("invalid ISO-8601 duration %q: %w", s, err)
		}
		if n > (math.MaxInt32-total)/unit {
			return 0, fmt.Errorf("ISO-8601 duration %q out of range", s)
		}
		total += n * unit
	}
	return total, nil
}

package scraper

import (
	"regexp"
	"strconv"
	"strings"
)

// isoDurationRe matches the ISO-8601 durations JSON-LD uses for recipe
// timings, e.g. "PT30M", "PT1H30M", "P1DT2H".
var isoDurationRe = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)

// prettyDuration rewrites an ISO-8601 duration as readable text
// ("PT1H30M" -> "1 hr 30 mins"). Anything that is not an ISO duration
// passes through unchanged, so already-readable strings survive.
func prettyDuration(raw string) string {
	m := isoDurationRe.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return raw
	}

	days, _ := strconv.Atoi(m[1])
	hours, _ := strconv.Atoi(m[2])
	mins, _ := strconv.Atoi(m[3])
	secs, _ := strconv.Atoi(m[4])

	var parts []string
	if days > 0 {
		parts = append(parts, plural(days, "day", "days"))
	}
	if hours > 0 {
		parts = append(parts, plural(hours, "hr", "hrs"))
	}
	if mins > 0 {
		parts = append(parts, plural(mins, "min", "mins"))
	}
	if secs > 0 && len(parts) == 0 {
		parts = append(parts, plural(secs, "sec", "secs"))
	}
	if len(parts) == 0 {
		return raw
	}
	return strings.Join(parts, " ")
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return "1 " + singular
	}
	return strconv.Itoa(n) + " " + pluralForm
}

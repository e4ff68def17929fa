package formatter

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatBytes renders a byte count in SI units without the inner space,
// e.g. 1024 -> "1.0kB".
func FormatBytes(n int64) string {
	sign := ""
	u := uint64(n)
	if n < 0 {
		sign = "-"
		u = uint64(-n)
	}
	return sign + strings.Replace(humanize.Bytes(u), " ", "", 1)
}

// FormatMillis renders a millisecond count as a compact duration:
// 500 -> "500ms", 1500 -> "1.5s", 61500 -> "1m 1.5s", 90061000 -> "1d 1h 1m 1s".
func FormatMillis(ms int64) string {
	if ms < 0 {
		if ms == math.MinInt64 {
			ms++
		}
		return "-" + FormatMillis(-ms)
	}
	if ms < 1000 {
		return strconv.FormatInt(ms, 10) + "ms"
	}

	const (
		second = 1000
		minute = 60 * second
		hour   = 60 * minute
		day    = 24 * hour
	)
	days := ms / day

	var parts []string
	add := func(v int64, unit string) {
		if v != 0 {
			parts = append(parts, strconv.FormatInt(v, 10)+unit)
		}
	}
	add(days/365, "y")
	add(days%365, "d")
	add(ms%day/hour, "h")
	add(ms%hour/minute, "m")

	// seconds floored to one decimal, whole values without ".0"
	tenths := ms % minute / 100
	if tenths != 0 {
		sec := strconv.FormatInt(tenths/10, 10)
		if tenths%10 != 0 {
			sec += "." + strconv.FormatInt(tenths%10, 10)
		}
		parts = append(parts, sec+"s")
	}
	return strings.Join(parts, " ")
}

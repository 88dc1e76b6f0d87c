package step

import (
	"math"
	"strconv"
)

// FormatNumber renders a distance for narration: shortest exact decimal,
// "∞" for +Inf.
func FormatNumber(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

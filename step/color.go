package step

import (
	"fmt"
	"math"
	"unicode/utf16"
)

// goldenRatioConjugate spaces consecutive hashes evenly around the hue wheel.
const goldenRatioConjugate = 0.618033988749895

// HSL is a hue/saturation/lightness triple; S and L are percentages.
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// String formats the triple as a CSS hsl() value.
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}

// PairColor maps the unordered pair {a, b} to a stable, visually distinct
// CSS color. PairColor(a, b) == PairColor(b, a).
func PairColor(a, b string) string {
	return PairHSL(a, b).String()
}

// DimmedPairColor is the low-saturation variant of PairColor used for
// replaced (old) paths.
func DimmedPairColor(a, b string) string {
	h := pairHash(a, b)
	return HSL{H: hue(h), S: 40, L: 35}.String()
}

// PairHSL returns the components behind PairColor.
func PairHSL(a, b string) HSL {
	h := pairHash(a, b)
	return HSL{
		H: hue(h),
		S: 70 + int(h%20),
		L: 50 + int(h%15),
	}
}

// pairHash hashes the canonical "min-max" key of the pair.
func pairHash(a, b string) int64 {
	if b < a {
		a, b = b, a
	}
	return hashString(a + "-" + b)
}

// hashString is the 31-multiplier string hash over UTF-16 code units with
// 32-bit wraparound, returned as an absolute value.
func hashString(s string) int64 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = (h << 5) - h + int32(c)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}

// hue spreads a hash over [0, 360) and rounds half up.
func hue(h int64) int {
	frac := math.Mod(float64(h)*goldenRatioConjugate, 1)
	return int(math.Floor(frac*360 + 0.5))
}

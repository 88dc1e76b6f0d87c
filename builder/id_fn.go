package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// IDFn maps a zero-based vertex index to its ID.
type IDFn func(idx int) string

// DefaultIDFn returns decimal IDs: "0", "1", ...
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns "A".."Z". Panics outside [0, 25].
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}
	return string('A' + rune(idx))
}

// ExcelColumnIDFn returns spreadsheet column names: "A".."Z", "AA", "AB", ...
// Panics on a negative index.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// SymbolNumberIDFn returns prefix+index IDs such as "v0", "v1".
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// IDScheme resolves a scheme name ("excel", "decimal", "symbol" or
// "prefix:<p>") for command-line use.
func IDScheme(name string) (IDFn, error) {
	if prefix, ok := strings.CutPrefix(name, "prefix:"); ok && prefix != "" {
		return SymbolNumberIDFn(prefix), nil
	}
	switch name {
	case "", "excel":
		return ExcelColumnIDFn, nil
	case "decimal":
		return DefaultIDFn, nil
	case "symbol":
		return SymbolIDFn, nil
	default:
		return nil, fmt.Errorf("builder: unknown id scheme %q", name)
	}
}

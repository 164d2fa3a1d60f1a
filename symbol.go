package huffmantree

import (
	"sort"
	"strconv"
	"unicode"
)

// Symbol represents one character of the input alphabet.
type Symbol rune

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// PlaceholderSymbol marks the synthetic leaf that is paired with the only
// symbol of a single-symbol alphabet.  It lies outside the Unicode range, so
// it never occurs in a decoded string.
const PlaceholderSymbol = Symbol(unicode.MaxRune + 1)

// String returns the string representation of this Symbol.
func (sym Symbol) String() string {
	switch sym {
	case InvalidSymbol:
		return "invalid"
	case PlaceholderSymbol:
		return "placeholder"
	}
	return strconv.QuoteRune(rune(sym))
}

func sortSymbols(list []Symbol) {
	sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
}

package huffmantree

import (
	"bytes"
	"fmt"
	"io"
)

// Frequencies maps each Symbol to its number of occurrences.  Counts saturate
// at math.MaxUint32 instead of wrapping.
type Frequencies map[Symbol]uint32

// CountFrequencies scans input once and returns the number of occurrences of
// each distinct character.  An empty input yields an empty table.
func CountFrequencies(input string) Frequencies {
	freqs := make(Frequencies)
	for _, ch := range input {
		freqs.Add(Symbol(ch))
	}
	return freqs
}

// Add increments the count for symbol, inserting it with a count of 1 if it is
// not yet present.
func (freqs Frequencies) Add(symbol Symbol) {
	freqs[symbol] = saturatingAdd(freqs[symbol], 1)
}

// Symbols returns the symbols present in the table, in ascending order.
func (freqs Frequencies) Symbols() []Symbol {
	out := make([]Symbol, 0, len(freqs))
	for symbol := range freqs {
		out = append(out, symbol)
	}
	sortSymbols(out)
	return out
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer, one line per symbol in ascending order.
func (freqs Frequencies) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Frequencies{\n")
	for _, symbol := range freqs.Symbols() {
		fmt.Fprintf(&buf, "\t%s = %d\n", symbol, freqs[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

package huffmantree

import (
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// Bits represents a sequence of bits.  false is a 0 bit, which descends to the
// left child of a fork, and true is a 1 bit, which descends to the right.
type Bits []bool

// ParseBits parses a string of '0' and '1' characters into Bits.
func ParseBits(str string) (Bits, error) {
	out := make(Bits, 0, len(str))
	for index, ch := range str {
		switch ch {
		case '0':
			out = append(out, false)
		case '1':
			out = append(out, true)
		default:
			return nil, fmt.Errorf("huffmantree: invalid bit %q at offset %d", ch, index)
		}
	}
	return out, nil
}

// String returns the bits as a string of '0' and '1' characters, first bit
// first.
func (bits Bits) String() string {
	out := make([]byte, len(bits))
	for index, bit := range bits {
		out[index] = '0'
		if bit {
			out[index] = '1'
		}
	}
	return string(out)
}

// HasPrefix returns true iff prefix is a prefix of bits.
func (bits Bits) HasPrefix(prefix Bits) bool {
	if len(prefix) > len(bits) {
		return false
	}
	for index, bit := range prefix {
		if bits[index] != bit {
			return false
		}
	}
	return true
}

// PackedLen returns the number of bytes that WriteTo produces for these bits.
func (bits Bits) PackedLen() int {
	return (len(bits) + 7) / 8
}

// WriteTo packs the bits into bytes, most significant bit first, and writes
// them to the given writer.  The final byte is padded with 0 bits.  No length
// is recorded; the reader must know how many bits to expect.
func (bits Bits) WriteTo(w io.Writer) (int64, error) {
	bw := bitio.NewWriter(w)
	for _, bit := range bits {
		if err := bw.WriteBool(bit); err != nil {
			return 0, err
		}
	}
	if err := bw.Close(); err != nil {
		return 0, err
	}
	return int64(bits.PackedLen()), nil
}

// ReadBits reads exactly n bits, most significant bit first, from the given
// reader.  It is the inverse of Bits.WriteTo.
func ReadBits(r io.Reader, n int) (Bits, error) {
	br := bitio.NewReader(r)
	out := make(Bits, 0, n)
	for len(out) < n {
		bit, err := br.ReadBool()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return out, fmt.Errorf("huffmantree: failed to read bit %d of %d: %w", len(out), n, err)
		}
		out = append(out, bit)
	}
	return out, nil
}

var _ fmt.Stringer = Bits(nil)
var _ io.WriterTo = Bits(nil)

package huffmantree

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestParseBits(t *testing.T) {
	bits, err := ParseBits("0110")
	if err != nil {
		t.Fatalf("ParseBits failed: %v", err)
	}
	expect := Bits{false, true, true, false}
	if len(bits) != len(expect) {
		t.Fatalf("expected %d bits, got %d", len(expect), len(bits))
	}
	for index := range expect {
		if bits[index] != expect[index] {
			t.Errorf("bit %d: expected %v, got %v", index, expect[index], bits[index])
		}
	}
	if actual := bits.String(); actual != "0110" {
		t.Errorf("wrong string: %q", actual)
	}

	if _, err := ParseBits("01x1"); err == nil {
		t.Errorf("expected an error for an invalid bit")
	}
}

func TestBits_HasPrefix(t *testing.T) {
	bits := mustParseBits("1101")

	type testRow struct {
		prefix string
		expect bool
	}

	testData := [...]testRow{
		{"", true},
		{"1", true},
		{"110", true},
		{"1101", true},
		{"11011", false},
		{"10", false},
	}
	for _, row := range testData {
		if actual := bits.HasPrefix(mustParseBits(row.prefix)); actual != row.expect {
			t.Errorf("HasPrefix(%q): expected %v, got %v", row.prefix, row.expect, actual)
		}
	}
}

func TestBits_WriteTo(t *testing.T) {
	bits := mustParseBits("01011101101011000101110")

	var buf bytes.Buffer
	n, err := bits.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3 bytes, got %d", n)
	}
	expect := []byte{0x5d, 0xac, 0x5c}
	if actual := buf.Bytes(); !bytes.Equal(expect, actual) {
		t.Errorf("wrong bytes:\n\texpect: %#v\n\tactual: %#v", expect, actual)
	}

	back, err := ReadBits(bytes.NewReader(expect), len(bits))
	if err != nil {
		t.Fatalf("ReadBits failed: %v", err)
	}
	if back.String() != bits.String() {
		t.Errorf("wrong bits:\n\texpect: %s\n\tactual: %s", bits, back)
	}
}

func TestReadBits_Short(t *testing.T) {
	_, err := ReadBits(bytes.NewReader([]byte{0xff}), 9)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected io.ErrUnexpectedEOF, got %v", err)
	}
}

package huffmantree

import (
	"math"
	"strings"
	"testing"
)

func TestCountFrequencies(t *testing.T) {
	freqs := CountFrequencies("abracadabra")

	expectDump := strings.Join([]string{
		"Frequencies{\n",
		"\t'a' = 5\n",
		"\t'b' = 2\n",
		"\t'c' = 1\n",
		"\t'd' = 1\n",
		"\t'r' = 2\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = freqs.Dump(&buf)
	actualDump := buf.String()
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestCountFrequencies_Empty(t *testing.T) {
	freqs := CountFrequencies("")
	if len(freqs) != 0 {
		t.Errorf("expected empty table, got %v", freqs)
	}
}

func TestCountFrequencies_Runes(t *testing.T) {
	freqs := CountFrequencies("日本日")
	if len(freqs) != 2 {
		t.Errorf("expected 2 symbols, got %d", len(freqs))
	}
	if freqs['日'] != 2 || freqs['本'] != 1 {
		t.Errorf("wrong counts: %v", freqs)
	}
}

func TestFrequencies_AddSaturates(t *testing.T) {
	freqs := Frequencies{'a': math.MaxUint32 - 1}
	freqs.Add('a')
	freqs.Add('a')
	if freqs['a'] != math.MaxUint32 {
		t.Errorf("expected %d, got %d", uint32(math.MaxUint32), freqs['a'])
	}
}

func TestSaturatingAdd(t *testing.T) {
	type testRow struct {
		a, b   uint32
		expect uint32
	}

	testData := [...]testRow{
		{0, 0, 0},
		{1, 2, 3},
		{math.MaxUint32, 0, math.MaxUint32},
		{math.MaxUint32, 1, math.MaxUint32},
		{math.MaxUint32 - 5, 10, math.MaxUint32},
		{math.MaxUint32, math.MaxUint32, math.MaxUint32},
	}
	for _, row := range testData {
		if actual := saturatingAdd(row.a, row.b); actual != row.expect {
			t.Errorf("saturatingAdd(%d, %d): expected %d, got %d", row.a, row.b, row.expect, actual)
		}
	}
}

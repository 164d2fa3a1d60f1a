package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/chronos-tachyon/huffmantree"
)

func TestRun(t *testing.T) {
	var buf strings.Builder
	if err := run(&buf, "aab", "110", true); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	expect := strings.Join([]string{
		"Fork\n",
		"├── Leaf('b')\n",
		"└── Leaf('a')\n",
		"string: \"aab\"\n",
		"encoded: 110\n",
		"packed: c0\n",
		"decoded: \"aab\"\n",
	}, "")
	if actual := buf.String(); expect != actual {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
}

func TestRun_Empty(t *testing.T) {
	var buf strings.Builder
	err := run(&buf, "", "", false)
	if !errors.Is(err, huffmantree.ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestRun_BadBits(t *testing.T) {
	var buf strings.Builder
	if err := run(&buf, "aab", "012", false); err == nil {
		t.Errorf("expected an error for invalid bits")
	}
}

func TestRun_InvalidUTF8(t *testing.T) {
	var buf strings.Builder
	err := run(&buf, "a\xffb", "", false)
	if !errors.Is(err, huffmantree.ErrInvalidUTF8) {
		t.Errorf("expected ErrInvalidUTF8, got %v", err)
	}
}

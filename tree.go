package huffmantree

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/chronos-tachyon/assert"
)

// Tree is a node of a Huffman code tree.  A Tree is either a leaf, which holds
// exactly one Symbol, or a fork, which owns exactly two child subtrees and
// carries no symbol of its own.
//
// Trees are immutable once constructed.  They may be shared between
// goroutines for concurrent encoding and decoding.
type Tree struct {
	left   *Tree
	right  *Tree
	symbol Symbol
}

// Leaf constructs a leaf holding the given symbol, which must be a Unicode
// code point or PlaceholderSymbol.
func Leaf(symbol Symbol) *Tree {
	assert.Assertf(
		(symbol >= 0 && symbol <= unicode.MaxRune) || symbol == PlaceholderSymbol,
		"invalid leaf symbol %d", int32(symbol))
	return &Tree{symbol: symbol}
}

// Fork constructs a fork owning the two given subtrees.  Descending to left is
// encoded as a 0 bit, and descending to right as a 1 bit.
func Fork(left, right *Tree) *Tree {
	assert.Assertf(left != nil, "left subtree is nil")
	assert.Assertf(right != nil, "right subtree is nil")
	return &Tree{left: left, right: right, symbol: InvalidSymbol}
}

// IsLeaf returns true iff this node is a leaf.
func (t *Tree) IsLeaf() bool {
	return t.left == nil
}

// IsPlaceholder returns true iff this node is the synthetic leaf added to the
// tree of a single-symbol alphabet.
func (t *Tree) IsPlaceholder() bool {
	return t.IsLeaf() && t.symbol == PlaceholderSymbol
}

// Symbol returns the symbol held by a leaf, or InvalidSymbol for a fork.
func (t *Tree) Symbol() Symbol {
	return t.symbol
}

// Left returns the left child of a fork, or nil for a leaf.
func (t *Tree) Left() *Tree {
	return t.left
}

// Right returns the right child of a fork, or nil for a leaf.
func (t *Tree) Right() *Tree {
	return t.right
}

// Symbols returns the real symbols held by the leaves of this tree, in
// left-to-right order.  The placeholder leaf is omitted.
func (t *Tree) Symbols() []Symbol {
	var out []Symbol
	walk(t, func(leaf *Tree, _ Bits) bool {
		if !leaf.IsPlaceholder() {
			out = append(out, leaf.symbol)
		}
		return true
	})
	return out
}

// Compare imposes a total order over trees: every leaf sorts before every
// fork, leaves sort by symbol, and forks sort by their left subtrees and then
// by their right subtrees.  It returns -1, 0, or 1.
func Compare(a, b *Tree) int {
	for {
		aLeaf, bLeaf := a.IsLeaf(), b.IsLeaf()
		switch {
		case aLeaf && bLeaf:
			return compareSymbols(a.symbol, b.symbol)
		case aLeaf:
			return -1
		case bLeaf:
			return 1
		}
		if cmp := Compare(a.left, b.left); cmp != 0 {
			return cmp
		}
		a, b = a.right, b.right
	}
}

// Equal returns true iff the two trees have the same shape and the same
// symbols at the same leaves.
func Equal(a, b *Tree) bool {
	return Compare(a, b) == 0
}

// String returns a one-line representation of this tree, such as
// "Fork(Leaf('b'), Leaf('a'))".
func (t *Tree) String() string {
	var sb strings.Builder
	t.writeString(&sb)
	return sb.String()
}

func (t *Tree) writeString(sb *strings.Builder) {
	if t.IsLeaf() {
		sb.WriteString(t.label())
		return
	}
	sb.WriteString("Fork(")
	t.left.writeString(sb)
	sb.WriteString(", ")
	t.right.writeString(sb)
	sb.WriteString(")")
}

// Dump writes a human-readable diagram of this tree to the given writer, one
// node per line, with the left child of each fork listed first.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	dumpNode(&buf, t, "", "")
	return buf.WriteTo(w)
}

func dumpNode(buf *bytes.Buffer, t *Tree, prefix string, childPrefix string) {
	buf.WriteString(prefix)
	buf.WriteString(t.label())
	buf.WriteByte('\n')
	if t.IsLeaf() {
		return
	}
	dumpNode(buf, t.left, childPrefix+"├── ", childPrefix+"│   ")
	dumpNode(buf, t.right, childPrefix+"└── ", childPrefix+"    ")
}

func (t *Tree) label() string {
	if t.IsLeaf() {
		return "Leaf(" + t.symbol.String() + ")"
	}
	return "Fork"
}

func compareSymbols(a, b Symbol) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

var _ fmt.Stringer = (*Tree)(nil)

package huffmantree

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/chronos-tachyon/assert"
)

// ErrUnknownSymbol is wrapped by the error that Encoder.EncodeStrict returns
// for a character that has no leaf in the tree.
var ErrUnknownSymbol = errors.New("huffmantree: symbol is not in the tree")

// CodeFor returns the path from the root of tree to the leaf holding symbol,
// first bit first.  It searches depth-first, left child before right.
//
// If no leaf holds symbol, the result is empty.
//
func CodeFor(tree *Tree, symbol Symbol) Bits {
	assert.Assertf(tree != nil, "tree is nil")
	var out Bits
	walk(tree, func(leaf *Tree, path Bits) bool {
		if leaf.symbol != symbol {
			return true
		}
		out = append(make(Bits, 0, len(path)), path...)
		return false
	})
	return out
}

// Encode encodes each character (rune) of input with tree, and returns the
// concatenation of their codes.  Characters with no leaf in the tree
// contribute no bits, and each invalid UTF-8 byte is read as U+FFFD; see
// Encoder.EncodeStrict.
func Encode(tree *Tree, input string) Bits {
	return NewEncoder(tree).Encode(input)
}

// Encoder encodes strings using a fixed tree.  Its code table is computed
// once, up front.  An Encoder is safe for concurrent use.
type Encoder struct {
	tree    *Tree
	codes   map[Symbol]Bits
	minSize int
	maxSize int
}

// NewEncoder constructs an Encoder for the given tree.
func NewEncoder(tree *Tree) *Encoder {
	assert.Assertf(tree != nil, "tree is nil")

	e := &Encoder{
		tree:  tree,
		codes: make(map[Symbol]Bits),
	}

	var hasMinMax bool
	walk(tree, func(leaf *Tree, path Bits) bool {
		if leaf.IsPlaceholder() {
			return true
		}
		if _, found := e.codes[leaf.symbol]; found {
			return true
		}

		size := len(path)
		e.codes[leaf.symbol] = append(make(Bits, 0, size), path...)
		if !hasMinMax {
			hasMinMax = true
			e.minSize = size
			e.maxSize = size
		} else if e.minSize > size {
			e.minSize = size
		} else if e.maxSize < size {
			e.maxSize = size
		}
		return true
	})

	return e
}

// Tree returns the tree this Encoder was constructed from.
func (e *Encoder) Tree() *Tree {
	return e.tree
}

// CodeFor returns the code for symbol, or nil if the tree has no leaf for it.
// The returned Bits must not be modified.
func (e *Encoder) CodeFor(symbol Symbol) Bits {
	return e.codes[symbol]
}

// Encode encodes each character of input and returns the concatenation of
// their codes.  Characters with no leaf in the tree contribute no bits.
func (e *Encoder) Encode(input string) Bits {
	out := make(Bits, 0, len(input)*e.maxSize)
	for _, ch := range input {
		out = append(out, e.codes[Symbol(ch)]...)
	}
	return out
}

// EncodeStrict is like Encode, but returns ErrInvalidUTF8 if input is not
// valid UTF-8, and an error wrapping ErrUnknownSymbol if any character of
// input has no leaf in the tree.
func (e *Encoder) EncodeStrict(input string) (Bits, error) {
	if !utf8.ValidString(input) {
		return nil, ErrInvalidUTF8
	}
	out := make(Bits, 0, len(input)*e.maxSize)
	for index, ch := range input {
		hc, found := e.codes[Symbol(ch)]
		if !found {
			return nil, fmt.Errorf("%w: %s at offset %d", ErrUnknownSymbol, Symbol(ch), index)
		}
		out = append(out, hc...)
	}
	return out, nil
}

// MinSize is the bit length of the shortest code.
func (e *Encoder) MinSize() int {
	return e.minSize
}

// MaxSize is the bit length of the longest code.
func (e *Encoder) MaxSize() int {
	return e.maxSize
}

// Dump writes a programmer-readable debugging dump of the Encoder's code table
// to the given writer, in ascending order of symbol.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	symbols := make([]Symbol, 0, len(e.codes))
	for symbol := range e.codes {
		symbols = append(symbols, symbol)
	}
	sortSymbols(symbols)

	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for _, symbol := range symbols {
		fmt.Fprintf(&buf, "\tEncode(%s) = %q\n", symbol, e.codes[symbol].String())
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// walk visits every leaf of tree depth-first, left child before right,
// passing the path from the root to the leaf.  The path is only valid for the
// duration of the call.  The walk stops early if visit returns false.
func walk(tree *Tree, visit func(leaf *Tree, path Bits) bool) {
	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children
	//
	// len(path) is always len(stack)-1.

	type stackItem struct {
		node *Tree
		x    byte
	}

	stack := []stackItem{{node: tree}}
	var path Bits

	stackPop := func() {
		stack = stack[:len(stack)-1]
		if len(path) != 0 {
			path = path[:len(path)-1]
		}
	}

	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		if top.node.IsLeaf() {
			if !visit(top.node, path) {
				return
			}
			stackPop()
			continue
		}

		x := top.x
		top.x++
		switch x {
		case 0:
			path = append(path, false)
			stack = append(stack, stackItem{node: top.node.left})
		case 1:
			path = append(path, true)
			stack = append(stack, stackItem{node: top.node.right})
		case 2:
			stackPop()
		}
	}
}

package huffmantree

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// ErrTrailingBits is wrapped by the error that Decoder.DecodeStrict returns
// when the input ends partway through a code.
var ErrTrailingBits = errors.New("huffmantree: trailing bits do not complete a code")

// Decode decodes bits with tree, writing each decoded rune as UTF-8.
// Trailing bits that do not complete a code are dropped; see
// Decoder.DecodeStrict.
func Decode(tree *Tree, bits Bits) string {
	return NewDecoder(tree).Decode(bits)
}

// Decoder decodes bit sequences using a fixed tree.  It holds no state
// between calls and is safe for concurrent use.
type Decoder struct {
	root *Tree
}

// NewDecoder constructs a Decoder for the given tree.
func NewDecoder(tree *Tree) *Decoder {
	assert.Assertf(tree != nil, "tree is nil")
	return &Decoder{root: tree}
}

// Tree returns the tree this Decoder was constructed from.
func (d *Decoder) Tree() *Tree {
	return d.root
}

// Decode walks the tree from the root, descending left on each 0 bit and right
// on each 1 bit.  Each time it reaches a leaf, it emits that leaf's symbol and
// returns to the root.  Trailing bits that do not reach a leaf are dropped.
func (d *Decoder) Decode(bits Bits) string {
	out, _ := d.decode(bits)
	return out
}

// DecodeStrict is like Decode, but returns an error wrapping ErrTrailingBits if
// the input ends partway through a code.  The symbols decoded before the
// trailing bits are returned along with the error.
func (d *Decoder) DecodeStrict(bits Bits) (string, error) {
	out, pending := d.decode(bits)
	if pending != 0 {
		return out, fmt.Errorf("%w: %d bit(s) left over", ErrTrailingBits, pending)
	}
	return out, nil
}

// decode returns the decoded string and the number of trailing bits that
// were consumed without reaching a leaf.
func (d *Decoder) decode(bits Bits) (string, int) {
	var sb strings.Builder
	node := d.root
	pending := 0
	for _, bit := range bits {
		node = descend(node, bit)
		if !node.IsLeaf() {
			pending++
			continue
		}
		if !node.IsPlaceholder() {
			sb.WriteRune(rune(node.symbol))
		}
		node = d.root
		pending = 0
	}
	return sb.String(), pending
}

// descend follows one bit from node.  A leaf has no children; descending from
// a leaf stays at that leaf, which only happens when the root is a bare leaf.
func descend(node *Tree, bit bool) *Tree {
	switch {
	case node.IsLeaf():
		return node
	case bit:
		return node.right
	default:
		return node.left
	}
}

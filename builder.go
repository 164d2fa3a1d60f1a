package huffmantree

import (
	"container/heap"
	"errors"
	"unicode/utf8"

	"github.com/chronos-tachyon/assert"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("huffmantree")

func init() {
	logging.SetLevel(logging.WARNING, "huffmantree")
}

// ErrEmptyInput is returned when a tree is requested for an input that has no
// symbols at all.
var ErrEmptyInput = errors.New("huffmantree: cannot build a tree from empty input")

// ErrInvalidUTF8 is returned when the input is not valid UTF-8, and so cannot
// be split into runes without loss.
var ErrInvalidUTF8 = errors.New("huffmantree: input is not valid UTF-8")

// Build counts the characters (runes) of input and constructs the Huffman
// tree for them.  It returns ErrEmptyInput, and no tree, iff input is empty,
// and ErrInvalidUTF8 if input is not valid UTF-8.
func Build(input string) (*Tree, error) {
	if !utf8.ValidString(input) {
		return nil, ErrInvalidUTF8
	}
	return BuildFromFrequencies(CountFrequencies(input))
}

// BuildFromFrequencies constructs the Huffman tree for the given frequency
// table.  Symbols with a count of 0 are still given a leaf.  It returns
// ErrEmptyInput, and no tree, iff the table is empty.
//
// The result depends only on the contents of the table, never on map
// iteration order.  If the table holds a single symbol, that symbol's leaf is
// paired with a placeholder leaf, so that it still encodes to one bit.
//
func BuildFromFrequencies(freqs Frequencies) (*Tree, error) {
	_, hasPlaceholder := freqs[PlaceholderSymbol]
	assert.Assertf(!hasPlaceholder, "frequency table contains the placeholder symbol")

	// Step 1: build a minheap with one leaf per symbol.

	h := freqHeap{list: make([]treeAndFreq, 0, len(freqs))}
	for symbol, freq := range freqs {
		h.list = append(h.list, treeAndFreq{Leaf(symbol), freq})
	}
	h.Init()

	// Step 2: repeatedly pop the two lowest-frequency subtrees and push
	// back their fork, whose frequency is the saturating sum of both.  The
	// first subtree popped becomes the left child.

	for h.Len() > 1 {
		a := heap.Pop(&h).(treeAndFreq)
		b := heap.Pop(&h).(treeAndFreq)
		heap.Push(&h, treeAndFreq{Fork(a.tree, b.tree), saturatingAdd(a.freq, b.freq)})
	}

	if h.Len() == 0 {
		return nil, ErrEmptyInput
	}

	root := heap.Pop(&h).(treeAndFreq).tree
	if root.IsLeaf() {
		log.Debugf("single-symbol alphabet %s: adding placeholder leaf", root.symbol)
		root = Fork(root, Leaf(PlaceholderSymbol))
	}

	log.Debugf("built tree for %d symbols", len(freqs))
	return root, nil
}

// type treeAndFreq + type freqHeap {{{

type treeAndFreq struct {
	tree *Tree
	freq uint32
}

type freqHeap struct {
	list []treeAndFreq
}

func (h *freqHeap) Init() {
	heap.Init(h)
}

func (h *freqHeap) Len() int {
	return len(h.list)
}

func (h *freqHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

// Less orders by frequency ascending, then by Compare descending.  Subtrees
// in the queue never share a symbol, so no two elements are ever equal and the
// pop order is fully determined.
func (h *freqHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return Compare(a.tree, b.tree) > 0
}

func (h *freqHeap) Push(x interface{}) {
	h.list = append(h.list, x.(treeAndFreq))
}

func (h *freqHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = treeAndFreq{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*freqHeap)(nil)

// }}}

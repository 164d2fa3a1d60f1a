// Package huffmantree builds a Huffman code tree for the characters of a
// string, and uses that tree to encode the string into a sequence of bits and
// to decode such a sequence back into the string.
//
// Construction is deterministic: frequency ties are broken by a total order
// over subtrees, so the same input always produces the same tree and the same
// codes.
//
// Symbols are runes, so inputs must be valid UTF-8.
//
// The package logs through github.com/op/go-logging under the module name
// "huffmantree", at WARNING level by default.  Programs that install their
// own backend control the level themselves.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffmantree

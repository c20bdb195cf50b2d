// Package huffman builds static Huffman codes for the byte alphabet and uses
// them to encode a whole input in one shot.
//
// The code is derived from the input's own symbol frequencies: a min-heap is
// drained pairwise into a binary tree, and each leaf's code is the path to it
// ('0' for left, '1' for right).  Encoded output is a string of '0' and '1'
// characters; see Pack for turning it into bytes.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman

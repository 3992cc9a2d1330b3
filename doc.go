// Package huffpack implements a lossless file compressor based on classic
// Huffman codes.
//
// A compressed artifact has three parts:
//
//     +----------------+------------------+----------------------+
//     | count (uint32) | tree (pre-order) | payload (bit-packed) |
//     +----------------+------------------+----------------------+
//
// The count is the number of bytes in the original input, big-endian.  The
// tree is written in pre-order: an internal node is the byte 0x00 followed by
// its left and right subtrees, and a leaf is the byte 0x01 followed by the
// symbol it represents.  The payload is the concatenation of the code for
// each input byte, most significant bit first, padded with zero bits to a
// byte boundary.
//
// An empty input is stored as a count of zero with no tree and no payload.
// An input consisting of a single distinct byte value is stored as a tree
// with one leaf and an empty payload.
//
// The tree is built deterministically: nodes are ordered by frequency, and
// ties are broken by the node's symbol (for leaves) or by creation order (for
// merged nodes, which always sort after every leaf).  Two independent
// encoders therefore produce identical artifacts for identical inputs.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffpack

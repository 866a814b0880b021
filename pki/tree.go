// Package pki implements the PK archive and PKI pack-index formats: the
// legacy client's companion container formats for FDB, kept at
// interface depth per the suite's external-collaborator scope (the
// shapes other tools need, not a byte-exact reimplementation of the
// original Rust crates' wire parsers).
package pki

// TreeNode is one entry of a CRC-indexed binary tree: both the PK
// archive's file index and the PKI pack-index share this shape,
// grounded on the original crate's generic CRCTreeNode<D>. Left/Right
// are indices into the owning slice, -1 meaning "no child" (the
// original uses i32 for the same reason: a node count that fits in an
// i32 with room for a sentinel).
type TreeNode[D any] struct {
	CRC   uint32
	Left  int32
	Right int32
	Data  D
}

const noChild = int32(-1)

// Lookup walks nodes as a binary search tree starting at root, ordering
// strictly by CRC. Reports (zero, false) on a miss. The tree is assumed
// to already be a valid BST over CRC (as the archive's writer built it);
// Lookup does no validation of that invariant.
func Lookup[D any](nodes []TreeNode[D], root int32, crc uint32) (D, bool) {
	idx := root
	for idx != noChild {
		if idx < 0 || int(idx) >= len(nodes) {
			break
		}
		n := nodes[idx]
		switch {
		case crc == n.CRC:
			return n.Data, true
		case crc < n.CRC:
			idx = n.Left
		default:
			idx = n.Right
		}
	}
	var zero D
	return zero, false
}

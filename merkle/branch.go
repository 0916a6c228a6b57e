// Package merkle verifies SSZ generalized-index Merkle branches: the
// proof an update carries that a leaf (a sync committee, a finalized
// header) is included at a known position in a larger SSZ tree.
package merkle

import "github.com/ethbeacon/lightclient/ssz"

// VerifyBranch reports whether leaf, combined with branch along the path
// implied by index at the given depth, reduces to root. index is the
// leaf's position within its depth-level (LSB-first: bit i of index
// selects whether branch[i] is the right or left sibling), mirroring the
// Rust pallet's is_valid_merkle_branch and the teacher's
// verifyTransactionMerkleProof.
func VerifyBranch(leaf [32]byte, branch [][32]byte, depth, index uint64, root [32]byte) bool {
	if uint64(len(branch)) != depth {
		return false
	}

	value := leaf
	for i := uint64(0); i < depth; i++ {
		if (index>>i)&1 == 0 {
			value = ssz.HashPair(value, branch[i])
		} else {
			value = ssz.HashPair(branch[i], value)
		}
	}
	return value == root
}

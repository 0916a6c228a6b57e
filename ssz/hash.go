// Package ssz implements the subset of the SimpleSerialize Merkleization
// rules the light client needs to recompute hash_tree_root locally: fixed
// and variable-length container field roots, list mix-in-length, and the
// zero-padded binary Merkle tree that backs all of it.
//
// This is deliberately hand-rolled rather than delegated to a ready-made
// SSZ library: the engine's whole job is to recompute the same roots an
// update claims, so the Merkleization has to live here, not behind an
// opaque dependency.
package ssz

import "crypto/sha256"

// zeroHashes[i] is the root of an all-zero subtree of depth i.
var zeroHashes = buildZeroHashes(64)

func buildZeroHashes(n int) [][32]byte {
	out := make([][32]byte, n)
	for i := 1; i < n; i++ {
		out[i] = HashPair(out[i-1], out[i-1])
	}
	return out
}

// HashPair returns sha256(a || b), the single combining operation of every
// SSZ Merkle tree node.
func HashPair(a, b [32]byte) [32]byte {
	h := sha256.New()
	h.Write(a[:])
	h.Write(b[:])
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// nextPowerOfTwo returns the smallest power of two >= n (n >= 1).
func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// MerkleizeChunks builds the root of the binary Merkle tree over chunks,
// zero-padding up to limit leaves (or the next power of two above
// len(chunks) when limit is 0). This is the general-purpose primitive
// underlying both MerkleizeFieldRoots and list Merkleization.
func MerkleizeChunks(chunks [][32]byte, limit int) [32]byte {
	width := limit
	if width == 0 {
		width = len(chunks)
	}
	width = nextPowerOfTwo(width)
	if width == 0 {
		width = 1
	}

	layer := make([][32]byte, width)
	copy(layer, chunks)

	depth := 0
	for (1 << depth) < width {
		depth++
	}

	for d := 0; d < depth; d++ {
		next := make([][32]byte, len(layer)/2)
		for i := range next {
			next[i] = HashPair(layer[2*i], layer[2*i+1])
		}
		layer = next
	}
	if len(layer) == 0 {
		return zeroHashes[0]
	}
	return layer[0]
}

// MerkleizeFieldRoots merkleizes a container's field roots: the chunk
// count is padded to the next power of two exactly as computeBlockRoot
// pads a 5-field header to 8 leaves before hashing pairs bottom-up.
func MerkleizeFieldRoots(roots [][32]byte) [32]byte {
	return MerkleizeChunks(roots, 0)
}

// MixInLength folds a list's element count into its content root, per the
// SSZ rule hash_tree_root(List) = hash(merkleize(chunks), length).
func MixInLength(root [32]byte, length uint64) [32]byte {
	var lengthChunk [32]byte
	putUint64LE(lengthChunk[:8], length)
	return HashPair(root, lengthChunk)
}

func putUint64LE(dst []byte, v uint64) {
	for i := 0; i < 8; i++ {
		dst[i] = byte(v >> (8 * i))
	}
}

func uint64Chunk(v uint64) [32]byte {
	var out [32]byte
	putUint64LE(out[:8], v)
	return out
}

package ssz

import "github.com/ethbeacon/lightclient/types"

// HashTreeRootBeaconHeader computes hash_tree_root(BeaconHeader): five
// field roots (slot, proposer_index, parent_root, state_root, body_root)
// zero-padded to eight leaves, exactly as the teacher's computeBlockRoot
// builds its 8-leaf tree from a 5-field header.
func HashTreeRootBeaconHeader(h types.BeaconHeader) [32]byte {
	roots := [][32]byte{
		uint64Chunk(h.Slot),
		uint64Chunk(h.ProposerIndex),
		[32]byte(h.ParentRoot),
		[32]byte(h.StateRoot),
		[32]byte(h.BodyRoot),
	}
	return MerkleizeFieldRoots(roots)
}

// bytesRoot merkleizes a fixed-size byte string into chunks of 32 bytes,
// zero-padding the final chunk, and merkleizing the result. Used for
// BLS keys, signatures, hashes, and other fixed vectors whose length
// isn't already 32.
func bytesRoot(b []byte) [32]byte {
	n := (len(b) + 31) / 32
	if n == 0 {
		n = 1
	}
	chunks := make([][32]byte, n)
	for i := 0; i < n; i++ {
		start := i * 32
		end := start + 32
		if end > len(b) {
			end = len(b)
		}
		copy(chunks[i][:], b[start:end])
	}
	return MerkleizeChunks(chunks, n)
}

// HashTreeRootSyncCommittee computes hash_tree_root(SyncCommittee): a
// 512-element vector of pubkey roots merkleized under its own subtree,
// paired with the aggregate pubkey's root as the container's two field
// roots.
func HashTreeRootSyncCommittee(sc types.SyncCommittee) [32]byte {
	pubkeyRoots := make([][32]byte, len(sc.Pubkeys))
	for i, pk := range sc.Pubkeys {
		pubkeyRoots[i] = bytesRoot(pk[:])
	}
	pubkeysRoot := MerkleizeChunks(pubkeyRoots, 0)
	aggregateRoot := bytesRoot(sc.AggregatePubkey[:])
	return MerkleizeFieldRoots([][32]byte{pubkeysRoot, aggregateRoot})
}

// HashTreeRootForkData computes hash_tree_root(ForkData), the fork-data
// root folded into domain computation (spec §4.E).
func HashTreeRootForkData(fd types.ForkData) [32]byte {
	var versionChunk [32]byte
	copy(versionChunk[:4], fd.CurrentVersion[:])
	return MerkleizeFieldRoots([][32]byte{versionChunk, [32]byte(fd.GenesisValidatorsRoot)})
}

// HashTreeRootSigningData computes hash_tree_root(SigningData), the
// value actually signed by the sync committee (spec §4.E).
func HashTreeRootSigningData(sd types.SigningData) [32]byte {
	return MerkleizeFieldRoots([][32]byte{[32]byte(sd.ObjectRoot), [32]byte(sd.Domain)})
}

// HashTreeRootExecutionPayload computes hash_tree_root(ExecutionPayload)
// over the fixed/variable fields the engine models (spec §1: the full
// payload schema beyond these is out of scope). Variable-length fields
// (extra_data, transactions) are list-Merkleized with mix_in_length.
func HashTreeRootExecutionPayload(p types.ExecutionPayload) [32]byte {
	roots := [][32]byte{
		bytesRoot(p.ParentHash[:]),
		bytesRoot(p.FeeRecipient[:]),
		bytesRoot(p.StateRoot[:]),
		bytesRoot(p.ReceiptsRoot[:]),
		bytesRoot(p.LogsBloom[:]),
		bytesRoot(p.PrevRandao[:]),
		uint64Chunk(p.BlockNumber),
		uint64Chunk(p.GasLimit),
		uint64Chunk(p.GasUsed),
		uint64Chunk(p.Timestamp),
		extraDataRoot(p.ExtraData),
		[32]byte(p.BaseFeePerGas),
		bytesRoot(p.BlockHash[:]),
		transactionsListRoot(p.Transactions),
	}
	return MerkleizeFieldRoots(roots)
}

// extraDataRoot list-Merkleizes a variable-length byte string (SSZ
// List[byte, N]), mixing in its length.
func extraDataRoot(b []byte) [32]byte {
	return MixInLength(bytesRoot(b), uint64(len(b)))
}

// TransactionsRoot computes the hash_tree_root of the transactions list,
// exposed separately so callers can lift an ExecutionPayload into a
// stored ExecutionHeader (types.ExecutionPayload.ToHeader) without
// recomputing the whole payload root.
func TransactionsRoot(txs [][]byte) types.Root {
	return types.Root(transactionsListRoot(txs))
}

func transactionsListRoot(txs [][]byte) [32]byte {
	txRoots := make([][32]byte, len(txs))
	for i, tx := range txs {
		txRoots[i] = MixInLength(bytesRoot(tx), uint64(len(tx)))
	}
	contentRoot := MerkleizeChunks(txRoots, 0)
	return MixInLength(contentRoot, uint64(len(txs)))
}

// HashTreeRootBeaconBlockBody computes hash_tree_root(BeaconBlockBody)
// over the fields the engine models (spec §1 scopes out attestations,
// slashings, and similar fields not needed for execution-header
// authentication).
func HashTreeRootBeaconBlockBody(body types.BeaconBlockBody) [32]byte {
	syncAggRoot := hashTreeRootSyncAggregate(body.SyncAggregate)
	roots := [][32]byte{
		bytesRoot(body.RandaoReveal[:]),
		[32]byte(body.Eth1DepositRoot),
		[32]byte(body.Eth1BlockHash),
		uint64Chunk(body.Eth1DepositCount),
		[32]byte(body.Graffiti),
		syncAggRoot,
		HashTreeRootExecutionPayload(body.ExecutionPayload),
	}
	return MerkleizeFieldRoots(roots)
}

func hashTreeRootSyncAggregate(sa types.SyncAggregate) [32]byte {
	bitsRoot := bytesRoot(sa.SyncCommitteeBits[:])
	sigRoot := bytesRoot(sa.SyncCommitteeSignature[:])
	return MerkleizeFieldRoots([][32]byte{bitsRoot, sigRoot})
}

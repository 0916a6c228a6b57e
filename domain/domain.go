// Package domain computes the signature domain and signing root a sync
// committee's aggregate signature authenticates, generalizing the
// teacher's hand-rolled ComputeDomain into calls through package ssz's
// shared merkleization primitives so domain computation and header
// hashing agree bit-exactly by construction.
package domain

import (
	"github.com/ethbeacon/lightclient/ssz"
	"github.com/ethbeacon/lightclient/types"
)

// ComputeDomain derives the 32-byte signature domain: the first 4 bytes
// of domainType, followed by the first 28 bytes of the fork-data root
// hash_tree_root(ForkData{forkVersion, genesisValidatorsRoot}).
func ComputeDomain(domainType [4]byte, forkVersion [4]byte, genesisValidatorsRoot [32]byte) [32]byte {
	forkDataRoot := ssz.HashTreeRootForkData(types.ForkData{
		CurrentVersion:        types.ForkVersion(forkVersion),
		GenesisValidatorsRoot: types.Root(genesisValidatorsRoot),
	})

	var out [32]byte
	copy(out[:4], domainType[:])
	copy(out[4:], forkDataRoot[:28])
	return out
}

// ComputeSigningRoot derives the value actually signed by the sync
// committee: hash_tree_root(SigningData{object_root, domain}) where
// object_root is the header's own hash-tree-root.
func ComputeSigningRoot(header types.BeaconHeader, domain [32]byte) [32]byte {
	objectRoot := ssz.HashTreeRootBeaconHeader(header)
	return ssz.HashTreeRootSigningData(types.SigningData{
		ObjectRoot: types.Root(objectRoot),
		Domain:     types.Domain(domain),
	})
}

package domain

import (
	"testing"

	"github.com/ethbeacon/lightclient/ssz"
	"github.com/ethbeacon/lightclient/types"
	"github.com/stretchr/testify/require"
)

func TestComputeDomainMatchesManualConcatenation(t *testing.T) {
	domainType := [4]byte{0x07, 0x00, 0x00, 0x00}
	forkVersion := [4]byte{0x1e, 0x1e, 0x1e, 0x1e}
	var genesisRoot [32]byte
	genesisRoot[0] = 0xaa

	d := ComputeDomain(domainType, forkVersion, genesisRoot)
	require.Equal(t, domainType[:], d[:4])

	var versionChunk [32]byte
	copy(versionChunk[:4], forkVersion[:])
	forkDataRoot := ssz.HashPair(versionChunk, genesisRoot)
	var want [32]byte
	copy(want[:4], domainType[:])
	copy(want[4:], forkDataRoot[:28])
	require.Equal(t, want, d)
}

func TestComputeDomainSensitiveToForkVersion(t *testing.T) {
	domainType := [4]byte{0x07, 0x00, 0x00, 0x00}
	var genesisRoot [32]byte

	d1 := ComputeDomain(domainType, [4]byte{0x01}, genesisRoot)
	d2 := ComputeDomain(domainType, [4]byte{0x02}, genesisRoot)
	require.NotEqual(t, d1, d2)
}

func TestComputeSigningRootSensitiveToDomain(t *testing.T) {
	header := types.BeaconHeader{Slot: 10}

	root1 := ComputeSigningRoot(header, [32]byte{1})
	root2 := ComputeSigningRoot(header, [32]byte{2})
	require.NotEqual(t, root1, root2)
}

func TestComputeSigningRootSensitiveToHeader(t *testing.T) {
	domain := [32]byte{9}
	h1 := types.BeaconHeader{Slot: 1}
	h2 := types.BeaconHeader{Slot: 2}

	require.NotEqual(t, ComputeSigningRoot(h1, domain), ComputeSigningRoot(h2, domain))
}

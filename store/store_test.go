package store

import (
	"testing"

	"github.com/ethbeacon/lightclient/lcerrors"
	"github.com/ethbeacon/lightclient/types"
	"github.com/stretchr/testify/require"
)

func committeeFixture(seed byte) types.SyncCommittee {
	var c types.SyncCommittee
	c.AggregatePubkey[0] = seed
	return c
}

func TestSyncCommitteeStorePutGet(t *testing.T) {
	s := NewSyncCommitteeStore()
	c := committeeFixture(1)

	require.NoError(t, s.Put(5, c))
	got, ok := s.Get(5)
	require.True(t, ok)
	require.Equal(t, c, got)

	_, ok = s.Get(6)
	require.False(t, ok)
}

func TestSyncCommitteeStorePutIdempotentIfIdentical(t *testing.T) {
	s := NewSyncCommitteeStore()
	c := committeeFixture(1)

	require.NoError(t, s.Put(5, c))
	require.NoError(t, s.Put(5, c))
}

func TestSyncCommitteeStorePutRejectsMismatch(t *testing.T) {
	s := NewSyncCommitteeStore()
	require.NoError(t, s.Put(5, committeeFixture(1)))

	err := s.Put(5, committeeFixture(2))
	require.Error(t, err)
	require.True(t, lcerrors.HasKind(err, lcerrors.Unknown))
}

func TestSyncCommitteeStoreGetOrMissing(t *testing.T) {
	s := NewSyncCommitteeStore()
	_, err := s.GetOrMissing(1)
	require.True(t, lcerrors.HasKind(err, lcerrors.SyncCommitteeMissing))

	require.NoError(t, s.Put(1, committeeFixture(1)))
	c, err := s.GetOrMissing(1)
	require.NoError(t, err)
	require.Equal(t, byte(1), c.AggregatePubkey[0])
}

func TestSyncCommitteeStorePrune(t *testing.T) {
	s := NewSyncCommitteeStore()
	require.NoError(t, s.Put(1, committeeFixture(1)))
	require.NoError(t, s.Put(2, committeeFixture(2)))
	require.NoError(t, s.Put(3, committeeFixture(3)))

	s.Prune(3)

	_, ok := s.Get(1)
	require.False(t, ok)
	_, ok = s.Get(2)
	require.False(t, ok)
	_, ok = s.Get(3)
	require.True(t, ok)
}

func TestDecodeParticipationBitsLittleEndian(t *testing.T) {
	var packed [64]byte
	packed[0] = 0b00000101 // bits 0 and 2 set

	bits := DecodeParticipationBits(packed)
	require.True(t, bits[0])
	require.False(t, bits[1])
	require.True(t, bits[2])
	require.False(t, bits[3])
}

func TestIsSupermajorityBoundary(t *testing.T) {
	var fail, pass, comfortable [512]bool
	for i := 0; i < 341; i++ {
		fail[i] = true
	}
	for i := 0; i < 342; i++ {
		pass[i] = true
	}
	for i := 0; i < 384; i++ {
		comfortable[i] = true
	}

	require.False(t, IsSupermajority(fail))
	require.True(t, IsSupermajority(pass))
	require.True(t, IsSupermajority(comfortable))
}

func TestHeaderStoreValidatorsRootSetOnce(t *testing.T) {
	s := NewHeaderStore()
	require.NoError(t, s.SetValidatorsRoot(types.Root{1}))
	require.NoError(t, s.SetValidatorsRoot(types.Root{1}))

	err := s.SetValidatorsRoot(types.Root{2})
	require.Error(t, err)
	require.True(t, lcerrors.HasKind(err, lcerrors.InvalidHash))
}

func TestHeaderStoreFinalizedHeaderTracksLatestSlot(t *testing.T) {
	s := NewHeaderStore()
	s.StoreFinalizedHeader(types.Root{1}, types.BeaconHeader{Slot: 10})
	require.EqualValues(t, 10, s.LatestFinalizedSlot())

	s.StoreFinalizedHeader(types.Root{2}, types.BeaconHeader{Slot: 5})
	require.EqualValues(t, 10, s.LatestFinalizedSlot())

	s.StoreFinalizedHeader(types.Root{3}, types.BeaconHeader{Slot: 20})
	require.EqualValues(t, 20, s.LatestFinalizedSlot())

	h, ok := s.FinalizedHeader(types.Root{1})
	require.True(t, ok)
	require.EqualValues(t, 10, h.Slot)
}

func TestHeaderStoreExecutionHeaderRoundTrip(t *testing.T) {
	s := NewHeaderStore()
	hash := [32]byte{7}
	s.StoreExecutionHeader(hash, types.ExecutionHeader{BlockNumber: 42})

	got, ok := s.ExecutionHeader(hash)
	require.True(t, ok)
	require.EqualValues(t, 42, got.BlockNumber)

	_, ok = s.ExecutionHeader([32]byte{8})
	require.False(t, ok)
}

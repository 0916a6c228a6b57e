package lightclient

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/ethbeacon/lightclient/lcerrors"
	"github.com/ethbeacon/lightclient/ssz"
	"github.com/ethbeacon/lightclient/types"
)

// buildBranch constructs a depth-level Merkle branch authenticating leaf
// at index under the returned root, by running the same combining rule
// merkle.VerifyBranch checks, bottom-up.
func buildBranch(leaf [32]byte, depth, index uint64, fill byte) ([][32]byte, [32]byte) {
	branch := make([][32]byte, depth)
	value := leaf
	for i := uint64(0); i < depth; i++ {
		sib := [32]byte{fill, byte(i + 1)}
		branch[i] = sib
		if (index>>i)&1 == 0 {
			value = ssz.HashPair(value, sib)
		} else {
			value = ssz.HashPair(sib, value)
		}
	}
	return branch, value
}

func toProofBranch(roots [][32]byte) types.ProofBranch {
	out := make(types.ProofBranch, len(roots))
	for i, r := range roots {
		out[i] = types.Root(r)
	}
	return out
}

func newTestEngine() *Engine {
	return New(types.DefaultConfig(), zerolog.Nop())
}

func TestInitialSyncStoresCommitteeAndHeader(t *testing.T) {
	e := newTestEngine()
	cfg := types.DefaultConfig()

	var committee types.SyncCommittee
	committee.AggregatePubkey[0] = 0x01
	committeeRoot := ssz.HashTreeRootSyncCommittee(committee)

	branch, stateRoot := buildBranch(committeeRoot, cfg.CurrentSyncCommitteeDepth, cfg.CurrentSyncCommitteeIndex, 0xAB)

	header := types.BeaconHeader{Slot: 100, StateRoot: types.Root(stateRoot)}

	err := e.InitialSync(types.InitialSync{
		Header:                     header,
		CurrentSyncCommittee:       committee,
		CurrentSyncCommitteeBranch: toProofBranch(branch),
		ValidatorsRoot:             types.Root{0xEE},
	})
	require.NoError(t, err)

	period := cfg.PeriodOf(header.Slot)
	stored, ok := e.committees.Get(period)
	require.True(t, ok)
	require.Equal(t, committee, stored)

	blockRoot := types.Root(ssz.HashTreeRootBeaconHeader(header))
	_, ok = e.headers.FinalizedHeader(blockRoot)
	require.True(t, ok)

	vr, ok := e.headers.ValidatorsRoot()
	require.True(t, ok)
	require.Equal(t, types.Root{0xEE}, vr)
}

func TestInitialSyncRejectsSecondCall(t *testing.T) {
	e := newTestEngine()
	cfg := types.DefaultConfig()

	var committee types.SyncCommittee
	committee.AggregatePubkey[0] = 0x01
	committeeRoot := ssz.HashTreeRootSyncCommittee(committee)
	branch, stateRoot := buildBranch(committeeRoot, cfg.CurrentSyncCommitteeDepth, cfg.CurrentSyncCommitteeIndex, 0xAB)
	header := types.BeaconHeader{Slot: 100, StateRoot: types.Root(stateRoot)}

	sync := types.InitialSync{
		Header:                     header,
		CurrentSyncCommittee:       committee,
		CurrentSyncCommitteeBranch: toProofBranch(branch),
		ValidatorsRoot:             types.Root{0xEE},
	}

	require.NoError(t, e.InitialSync(sync))

	// A second call with the identical checkpoint must still be rejected:
	// the engine is already Synced and refuses to re-run initial sync.
	err := e.InitialSync(sync)
	require.Error(t, err)
	require.True(t, lcerrors.HasKind(err, lcerrors.Unknown))
}

func TestInitialSyncRejectsTamperedCommitteeRoot(t *testing.T) {
	e := newTestEngine()
	cfg := types.DefaultConfig()

	var committee types.SyncCommittee
	committeeRoot := ssz.HashTreeRootSyncCommittee(committee)
	branch, stateRoot := buildBranch(committeeRoot, cfg.CurrentSyncCommitteeDepth, cfg.CurrentSyncCommitteeIndex, 0x01)

	// Tamper with the committee after the branch was computed against it.
	committee.AggregatePubkey[0] = 0xFF

	header := types.BeaconHeader{Slot: 1, StateRoot: types.Root(stateRoot)}
	err := e.InitialSync(types.InitialSync{
		Header:                     header,
		CurrentSyncCommittee:       committee,
		CurrentSyncCommitteeBranch: toProofBranch(branch),
		ValidatorsRoot:             types.Root{1},
	})
	require.Error(t, err)
	require.True(t, lcerrors.HasKind(err, lcerrors.InvalidSyncCommitteeMerkleProof))
}

func TestSyncCommitteePeriodUpdateRejectsSubMajorityParticipation(t *testing.T) {
	e := newTestEngine()

	var bits types.Bitvector512 // all-zero: zero participants
	update := types.SyncCommitteePeriodUpdate{
		SyncAggregate: types.SyncAggregate{SyncCommitteeBits: bits},
	}

	err := e.SyncCommitteePeriodUpdate(update)
	require.Error(t, err)
	require.True(t, lcerrors.HasKind(err, lcerrors.SyncCommitteeParticipantsNotSupermajority))
}

func fullParticipationBits() types.Bitvector512 {
	var bits types.Bitvector512
	for i := range bits {
		bits[i] = 0xFF
	}
	return bits
}

func TestSyncCommitteePeriodUpdateRejectsMissingCurrentCommittee(t *testing.T) {
	e := newTestEngine()
	cfg := types.DefaultConfig()

	var nextCommittee types.SyncCommittee
	nextCommittee.AggregatePubkey[0] = 0x02
	nextRoot := ssz.HashTreeRootSyncCommittee(nextCommittee)
	nextBranch, finalizedStateRoot := buildBranch(nextRoot, cfg.NextSyncCommitteeDepth, cfg.NextSyncCommitteeIndex, 0x02)

	finalizedHeader := types.BeaconHeader{Slot: 50, StateRoot: types.Root(finalizedStateRoot)}
	finalizedRoot := ssz.HashTreeRootBeaconHeader(finalizedHeader)
	finalityBranch, attestedStateRoot := buildBranch(finalizedRoot, cfg.FinalizedRootDepth, cfg.FinalizedRootIndex, 0x03)

	attestedHeader := types.BeaconHeader{Slot: 60, StateRoot: types.Root(attestedStateRoot)}

	update := types.SyncCommitteePeriodUpdate{
		AttestedHeader:          attestedHeader,
		FinalizedHeader:         finalizedHeader,
		NextSyncCommittee:       nextCommittee,
		NextSyncCommitteeBranch: toProofBranch(nextBranch),
		FinalityBranch:          toProofBranch(finalityBranch),
		SyncAggregate:           types.SyncAggregate{SyncCommitteeBits: fullParticipationBits()},
	}

	err := e.SyncCommitteePeriodUpdate(update)
	require.Error(t, err)
	require.True(t, lcerrors.HasKind(err, lcerrors.SyncCommitteeMissing))

	// The rejected update must not have left the next committee stored:
	// every mutation happens only after verification succeeds.
	nextPeriod := cfg.PeriodOf(attestedHeader.Slot) + 1
	_, ok := e.committees.Get(nextPeriod)
	require.False(t, ok)
}

func TestImportFinalizedHeaderRejectsInvalidBranch(t *testing.T) {
	e := newTestEngine()

	update := types.FinalizedHeaderUpdate{
		AttestedHeader:  types.BeaconHeader{Slot: 10, StateRoot: types.Root{1}},
		FinalizedHeader: types.BeaconHeader{Slot: 5},
		FinalityBranch:  make(types.ProofBranch, types.DefaultConfig().FinalizedRootDepth),
		SyncAggregate:   types.SyncAggregate{SyncCommitteeBits: fullParticipationBits()},
	}

	err := e.ImportFinalizedHeader(update)
	require.Error(t, err)
	require.True(t, lcerrors.HasKind(err, lcerrors.InvalidHeaderMerkleProof))
}

func TestImportExecutionHeaderRejectsUnfinalizedSlot(t *testing.T) {
	e := newTestEngine()
	// No finalized header stored yet, so LatestFinalizedSlot() == 0 and
	// any positive slot is rejected.
	update := types.BlockUpdate{
		Block: types.BeaconBlock{Slot: 1},
	}

	err := e.ImportExecutionHeader(update)
	require.Error(t, err)
	require.True(t, lcerrors.HasKind(err, lcerrors.HeaderNotFinalized))
}

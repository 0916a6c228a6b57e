// Package lightclient implements the beacon-chain light-client update
// state machine: bootstrapping from a trusted header, rotating sync
// committees, advancing finality, and importing execution headers once
// their beacon block is covered by finality. Every ingress method here
// is grounded directly on the Rust pallet's process_initial_sync /
// process_sync_committee_period_update / process_finalized_header /
// process_header, translated into Go method calls against the ssz,
// merkle, bls, domain, and store packages.
package lightclient

import (
	"github.com/rs/zerolog"

	"github.com/ethbeacon/lightclient/bls"
	"github.com/ethbeacon/lightclient/domain"
	"github.com/ethbeacon/lightclient/lcerrors"
	"github.com/ethbeacon/lightclient/merkle"
	"github.com/ethbeacon/lightclient/ssz"
	"github.com/ethbeacon/lightclient/store"
	"github.com/ethbeacon/lightclient/types"
)

// Engine owns a light client's entire persistent state and enforces
// every invariant of spec §3 across the four ingress operations.
type Engine struct {
	cfg        types.Config
	committees *store.SyncCommitteeStore
	headers    *store.HeaderStore
	log        zerolog.Logger

	synced bool
}

// New constructs an Engine with empty stores. logger may be the zero
// value (zerolog.Nop()) if the caller doesn't want engine tracing.
func New(cfg types.Config, logger zerolog.Logger) *Engine {
	return &Engine{
		cfg:        cfg,
		committees: store.NewSyncCommitteeStore(),
		headers:    store.NewHeaderStore(),
		log:        logger,
	}
}

// InitialSync bootstraps the engine from a trusted checkpoint: it
// verifies the current sync committee's Merkle inclusion in the
// checkpoint header's state root, then stores the committee, the
// checkpoint as the first finalized header, and the genesis validators
// root, exactly as process_initial_sync does. It may only succeed once;
// a Synced engine refuses every subsequent InitialSync call, matching
// the pallet's state diagram.
func (e *Engine) InitialSync(sync types.InitialSync) error {
	e.log.Trace().Uint64("slot", sync.Header.Slot).Msg("processing initial sync")

	if e.synced {
		return lcerrors.New(lcerrors.Unknown, "engine already synced; initial sync may only run once")
	}

	committeeRoot := ssz.HashTreeRootSyncCommittee(sync.CurrentSyncCommittee)
	if !merkle.VerifyBranch(
		committeeRoot,
		branchRoots(sync.CurrentSyncCommitteeBranch),
		e.cfg.CurrentSyncCommitteeDepth,
		e.cfg.CurrentSyncCommitteeIndex,
		[32]byte(sync.Header.StateRoot),
	) {
		return lcerrors.New(lcerrors.InvalidSyncCommitteeMerkleProof, "current sync committee not included in checkpoint state root")
	}

	period := e.cfg.PeriodOf(sync.Header.Slot)
	if err := e.committees.Put(period, sync.CurrentSyncCommittee); err != nil {
		return err
	}

	blockRoot := types.Root(ssz.HashTreeRootBeaconHeader(sync.Header))
	e.headers.StoreFinalizedHeader(blockRoot, sync.Header)

	if err := e.headers.SetValidatorsRoot(sync.ValidatorsRoot); err != nil {
		return err
	}

	e.synced = true
	e.log.Trace().Uint64("period", period).Msg("initial sync complete")
	return nil
}

// SyncCommitteePeriodUpdate rotates to the next sync committee and
// advances finalization in the same call, mirroring
// process_sync_committee_period_update.
func (e *Engine) SyncCommitteePeriodUpdate(update types.SyncCommitteePeriodUpdate) error {
	e.log.Trace().Uint64("attested_slot", update.AttestedHeader.Slot).Msg("processing sync committee period update")

	bits := store.DecodeParticipationBits(update.SyncAggregate.SyncCommitteeBits)
	if !store.IsSupermajority(bits) {
		return lcerrors.New(lcerrors.SyncCommitteeParticipantsNotSupermajority, "sync committee participation below 2/3")
	}

	nextCommitteeRoot := ssz.HashTreeRootSyncCommittee(update.NextSyncCommittee)
	if !merkle.VerifyBranch(
		nextCommitteeRoot,
		branchRoots(update.NextSyncCommitteeBranch),
		e.cfg.NextSyncCommitteeDepth,
		e.cfg.NextSyncCommitteeIndex,
		[32]byte(update.FinalizedHeader.StateRoot),
	) {
		return lcerrors.New(lcerrors.InvalidSyncCommitteeMerkleProof, "next sync committee not included in finalized state root")
	}

	blockRoot := types.Root(ssz.HashTreeRootBeaconHeader(update.FinalizedHeader))
	if !merkle.VerifyBranch(
		[32]byte(blockRoot),
		branchRoots(update.FinalityBranch),
		e.cfg.FinalizedRootDepth,
		e.cfg.FinalizedRootIndex,
		[32]byte(update.AttestedHeader.StateRoot),
	) {
		return lcerrors.New(lcerrors.InvalidHeaderMerkleProof, "finalized header not included in attested state root")
	}

	currentPeriod := e.cfg.PeriodOf(update.AttestedHeader.Slot)
	currentCommittee, err := e.committees.GetOrMissing(currentPeriod)
	if err != nil {
		return err
	}

	validatorsRoot, ok := e.headers.ValidatorsRoot()
	if !ok {
		return lcerrors.New(lcerrors.InvalidHash, "validators root not set; run InitialSync first")
	}

	if err := e.verifySignedHeader(bits, update.SyncAggregate.SyncCommitteeSignature, currentCommittee.Pubkeys, update.ForkVersion, update.AttestedHeader, validatorsRoot); err != nil {
		return err
	}

	// Every verification above has succeeded; mutate state only now, per
	// spec §5's all-or-nothing discipline (this module has no
	// transactional rollback to lean on).
	if err := e.committees.Put(currentPeriod+1, update.NextSyncCommittee); err != nil {
		return err
	}
	e.headers.StoreFinalizedHeader(blockRoot, update.FinalizedHeader)
	e.log.Trace().Uint64("period", currentPeriod+1).Msg("sync committee period update complete")
	return nil
}

// ImportFinalizedHeader advances finalization without rotating the
// committee, mirroring process_finalized_header.
func (e *Engine) ImportFinalizedHeader(update types.FinalizedHeaderUpdate) error {
	e.log.Trace().Uint64("attested_slot", update.AttestedHeader.Slot).Msg("processing finalized header update")

	bits := store.DecodeParticipationBits(update.SyncAggregate.SyncCommitteeBits)
	if !store.IsSupermajority(bits) {
		return lcerrors.New(lcerrors.SyncCommitteeParticipantsNotSupermajority, "sync committee participation below 2/3")
	}

	blockRoot := types.Root(ssz.HashTreeRootBeaconHeader(update.FinalizedHeader))
	if !merkle.VerifyBranch(
		[32]byte(blockRoot),
		branchRoots(update.FinalityBranch),
		e.cfg.FinalizedRootDepth,
		e.cfg.FinalizedRootIndex,
		[32]byte(update.AttestedHeader.StateRoot),
	) {
		return lcerrors.New(lcerrors.InvalidHeaderMerkleProof, "finalized header not included in attested state root")
	}

	currentPeriod := e.cfg.PeriodOf(update.AttestedHeader.Slot)
	committee, err := e.committees.GetOrMissing(currentPeriod)
	if err != nil {
		return err
	}

	validatorsRoot, ok := e.headers.ValidatorsRoot()
	if !ok {
		return lcerrors.New(lcerrors.InvalidHash, "validators root not set; run InitialSync first")
	}

	if err := e.verifySignedHeader(bits, update.SyncAggregate.SyncCommitteeSignature, committee.Pubkeys, update.ForkVersion, update.AttestedHeader, validatorsRoot); err != nil {
		return err
	}

	e.headers.StoreFinalizedHeader(blockRoot, update.FinalizedHeader)
	e.log.Trace().Uint64("slot", update.FinalizedHeader.Slot).Msg("finalized header update complete")
	return nil
}

// ImportExecutionHeader authenticates a full beacon block's signature
// and stores its embedded execution header, mirroring process_header.
// The block's slot must already be covered by a previously imported
// finalized header, per spec §3's "execution header before finalization"
// invariant.
func (e *Engine) ImportExecutionHeader(update types.BlockUpdate) error {
	e.log.Trace().Uint64("slot", update.Block.Slot).Msg("processing block update")

	if update.Block.Slot > e.headers.LatestFinalizedSlot() {
		return lcerrors.New(lcerrors.HeaderNotFinalized, "block slot is ahead of the latest finalized header")
	}

	currentPeriod := e.cfg.PeriodOf(update.Block.Slot)
	committee, err := e.committees.GetOrMissing(currentPeriod)
	if err != nil {
		return err
	}

	bodyRoot := types.Root(ssz.HashTreeRootBeaconBlockBody(update.Block.Body))
	header := types.BeaconHeader{
		Slot:          update.Block.Slot,
		ProposerIndex: update.Block.ProposerIndex,
		ParentRoot:    update.Block.ParentRoot,
		StateRoot:     update.Block.StateRoot,
		BodyRoot:      bodyRoot,
	}

	validatorsRoot, ok := e.headers.ValidatorsRoot()
	if !ok {
		return lcerrors.New(lcerrors.InvalidHash, "validators root not set; run InitialSync first")
	}

	bits := store.DecodeParticipationBits(update.SyncAggregate.SyncCommitteeBits)
	if err := e.verifySignedHeader(bits, update.SyncAggregate.SyncCommitteeSignature, committee.Pubkeys, update.ForkVersion, header, validatorsRoot); err != nil {
		return err
	}

	// Indexed under its own root alongside the execution header so a
	// caller can cross-check the two later; the slot check above already
	// guarantees this can't advance LatestFinalizedSlot.
	headerRoot := types.Root(ssz.HashTreeRootBeaconHeader(header))
	e.headers.StoreFinalizedHeader(headerRoot, header)

	execHeader := update.Block.Body.ExecutionPayload.ToHeader(ssz.TransactionsRoot(update.Block.Body.ExecutionPayload.Transactions))
	e.headers.StoreExecutionHeader(execHeader.BlockHash, execHeader)

	e.log.Trace().Uint64("block_number", execHeader.BlockNumber).Msg("block update complete")
	return nil
}

// verifySignedHeader collects the participating pubkeys, computes the
// domain and signing root for header, and checks the aggregate
// signature, exactly as the pallet's verify_signed_header.
func (e *Engine) verifySignedHeader(
	bits [512]bool,
	signature types.BLSSignature,
	pubkeys [512]types.BLSPubkey,
	forkVersion types.ForkVersion,
	header types.BeaconHeader,
	validatorsRoot types.Root,
) error {
	domainValue := domain.ComputeDomain(e.cfg.DomainSyncCommittee, forkVersion, [32]byte(validatorsRoot))
	signingRoot := domain.ComputeSigningRoot(header, domainValue)

	rawPubkeys := make([][48]byte, len(pubkeys))
	for i, pk := range pubkeys {
		rawPubkeys[i] = pk
	}

	if err := bls.FastAggregateVerifyPreAggregated(rawPubkeys, bits[:], signingRoot, signature); err != nil {
		e.log.Error().Err(err).Msg("signature verification failed")
		return err
	}
	return nil
}

func branchRoots(branch types.ProofBranch) [][32]byte {
	out := make([][32]byte, len(branch))
	for i, r := range branch {
		out[i] = [32]byte(r)
	}
	return out
}

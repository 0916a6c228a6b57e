package store

import (
	"sync"

	"github.com/ethbeacon/lightclient/lcerrors"
	"github.com/ethbeacon/lightclient/types"
)

// HeaderStore holds finalized beacon headers (by block root) and the
// execution headers that ride along with them (by execution block
// hash), plus the two pieces of engine-wide state that must be set
// exactly once or advance monotonically: the genesis validators root and
// the latest finalized slot.
type HeaderStore struct {
	mu sync.RWMutex

	finalizedByRoot map[types.Root]types.BeaconHeader
	executionByHash map[[32]byte]types.ExecutionHeader

	validatorsRoot    types.Root
	validatorsRootSet bool

	latestFinalizedSlot uint64
}

// NewHeaderStore returns an empty store.
func NewHeaderStore() *HeaderStore {
	return &HeaderStore{
		finalizedByRoot: make(map[types.Root]types.BeaconHeader),
		executionByHash: make(map[[32]byte]types.ExecutionHeader),
	}
}

// SetValidatorsRoot records the genesis validators root on first call;
// a later call with a different value is rejected, matching the
// pallet's ValidatorsRoot StorageValue, which is written once during
// initial sync and never again.
func (s *HeaderStore) SetValidatorsRoot(root types.Root) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.validatorsRootSet {
		if s.validatorsRoot != root {
			return lcerrors.New(lcerrors.InvalidHash, "validators root already set to a different value")
		}
		return nil
	}
	s.validatorsRoot = root
	s.validatorsRootSet = true
	return nil
}

// ValidatorsRoot returns the stored genesis validators root and whether
// it has been set.
func (s *HeaderStore) ValidatorsRoot() (types.Root, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.validatorsRoot, s.validatorsRootSet
}

// StoreFinalizedHeader records header under blockRoot and advances
// LatestFinalizedSlot if header.Slot is newer, mirroring the pallet's
// store_finalized_header.
func (s *HeaderStore) StoreFinalizedHeader(blockRoot types.Root, header types.BeaconHeader) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finalizedByRoot[blockRoot] = header
	if header.Slot > s.latestFinalizedSlot {
		s.latestFinalizedSlot = header.Slot
	}
}

// FinalizedHeader returns the header stored under blockRoot.
func (s *HeaderStore) FinalizedHeader(blockRoot types.Root) (types.BeaconHeader, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.finalizedByRoot[blockRoot]
	return h, ok
}

// LatestFinalizedSlot returns the highest slot stored via
// StoreFinalizedHeader so far.
func (s *HeaderStore) LatestFinalizedSlot() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latestFinalizedSlot
}

// StoreExecutionHeader records header under its execution block hash, as
// the pallet's store_execution_header does. Callers must check the
// block's slot against LatestFinalizedSlot before calling this; the
// store itself does not enforce that invariant since it has no notion of
// which beacon slot an execution header's block belongs to.
func (s *HeaderStore) StoreExecutionHeader(blockHash [32]byte, header types.ExecutionHeader) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.executionByHash[blockHash] = header
}

// ExecutionHeader returns the header stored under blockHash.
func (s *HeaderStore) ExecutionHeader(blockHash [32]byte) (types.ExecutionHeader, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.executionByHash[blockHash]
	return h, ok
}

// Package store holds the light client's persistent state: the rotating
// sync committees and the finalized/execution headers they authenticate.
// Both stores guard their maps with a sync.RWMutex, the same
// concurrent-read/serialized-write discipline the wider example pack's
// light-client stores use for their header maps.
package store

import (
	"sync"

	"github.com/ethbeacon/lightclient/lcerrors"
	"github.com/ethbeacon/lightclient/types"
)

// SyncCommitteeStore maps sync-committee period to the committee active
// during that period.
type SyncCommitteeStore struct {
	mu         sync.RWMutex
	committees map[uint64]types.SyncCommittee
}

// NewSyncCommitteeStore returns an empty store.
func NewSyncCommitteeStore() *SyncCommitteeStore {
	return &SyncCommitteeStore{committees: make(map[uint64]types.SyncCommittee)}
}

// Put records the committee for period, rejecting a mismatched re-send of
// an already-stored period (write-once-per-period). A mismatch returns
// Unknown rather than SkippedSyncCommitteePeriod, which is reserved for
// a period-jump of more than one.
func (s *SyncCommitteeStore) Put(period uint64, committee types.SyncCommittee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.committees[period]; ok {
		if existing != committee {
			return lcerrors.New(lcerrors.Unknown, "sync committee for period already stored with different contents")
		}
		return nil
	}
	s.committees[period] = committee
	return nil
}

// Get returns the committee for period and whether it is present,
// distinguishing "never written" from "written as the zero value" per
// the explicit present/absent API (an all-zero committee is never
// legitimately stored, but callers should not have to sniff for it).
func (s *SyncCommitteeStore) Get(period uint64) (types.SyncCommittee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.committees[period]
	return c, ok
}

// GetOrMissing returns the committee for period, or a SyncCommitteeMissing
// error if absent or stored as the all-zero sentinel, mirroring the Rust
// pallet's get_sync_committee_for_period.
func (s *SyncCommitteeStore) GetOrMissing(period uint64) (types.SyncCommittee, error) {
	c, ok := s.Get(period)
	if !ok || c.IsZero() {
		return types.SyncCommittee{}, lcerrors.New(lcerrors.SyncCommitteeMissing, "no sync committee stored for period")
	}
	return c, nil
}

// Prune discards every committee for a period strictly before
// beforePeriod. Not part of any ingress path; an operator invokes it
// directly to bound memory once old periods are no longer needed for
// dispute resolution.
func (s *SyncCommitteeStore) Prune(beforePeriod uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for period := range s.committees {
		if period < beforePeriod {
			delete(s.committees, period)
		}
	}
}

// DecodeParticipationBits unpacks a little-endian packed 512-bit
// participation field into a bool per bit, bit i of byte i/8 selecting
// index i, matching the teacher's ParseSyncCommitteeBits.
func DecodeParticipationBits(packed [64]byte) [512]bool {
	var bits [512]bool
	for i := range bits {
		byteIndex := i / 8
		bitIndex := uint(i % 8)
		bits[i] = packed[byteIndex]&(1<<bitIndex) != 0
	}
	return bits
}

// IsSupermajority reports whether at least 2/3 of the committee
// participated: 3*sum >= 2*length, exactly as the Rust pallet's
// sync_committee_participation_is_supermajority.
func IsSupermajority(bits [512]bool) bool {
	sum := 0
	for _, b := range bits {
		if b {
			sum++
		}
	}
	return sum*3 >= len(bits)*2
}

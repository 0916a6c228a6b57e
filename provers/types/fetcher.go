package types

import lctypes "github.com/ethbeacon/lightclient/types"

// Fetcher retrieves the next sync-committee period update and, on
// demand, a full beacon block for execution-header import. Adapted
// from the teacher's Fetcher interface: the return types now carry the
// engine's own wire structs rather than zrnt/ztyp beacon-state types.
type Fetcher interface {
	// SyncCommitteePeriodUpdate retrieves the update rotating into the
	// given sync-committee period.
	SyncCommitteePeriodUpdate(period uint64) (*lctypes.SyncCommitteePeriodUpdate, error)
	// Block retrieves a full beacon block update at the given slot, for
	// execution-header import.
	Block(slot uint64) (*lctypes.BlockUpdate, error)
}

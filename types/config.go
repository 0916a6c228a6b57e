package types

// Config holds the compile-time constants of the light-client engine.
// GenesisForkVersion is the only field a deployment legitimately
// overrides; the rest are frozen by the Ethereum consensus spec. No
// engine operation reads GenesisForkVersion: every signature domain is
// computed from the ForkVersion carried on the update itself.
type Config struct {
	SlotsPerEpoch                uint64
	EpochsPerSyncCommitteePeriod uint64

	CurrentSyncCommitteeIndex uint64
	CurrentSyncCommitteeDepth uint64
	NextSyncCommitteeIndex    uint64
	NextSyncCommitteeDepth    uint64
	FinalizedRootIndex        uint64
	FinalizedRootDepth        uint64

	DomainSyncCommittee [4]byte
	GenesisForkVersion  [4]byte
}

// SlotsPerSyncCommitteePeriod is the number of slots in one sync
// committee period under DefaultConfig (32 * 256 = 8192).
const SlotsPerSyncCommitteePeriod = 32 * 256

// SyncCommitteeSize is the fixed number of validators in a committee.
const SyncCommitteeSize = 512

// DefaultConfig returns the mainnet/testnet-default constants of spec §3.
func DefaultConfig() Config {
	return Config{
		SlotsPerEpoch:                32,
		EpochsPerSyncCommitteePeriod: 256,

		CurrentSyncCommitteeIndex: 22,
		CurrentSyncCommitteeDepth: 5,
		NextSyncCommitteeIndex:    23,
		NextSyncCommitteeDepth:    5,
		FinalizedRootIndex:        41,
		FinalizedRootDepth:        6,

		DomainSyncCommittee: [4]byte{0x07, 0x00, 0x00, 0x00},
		GenesisForkVersion:  [4]byte{0x1e, 0x1e, 0x1e, 0x1e},
	}
}

// PeriodOf returns the sync-committee period a slot belongs to.
func (c Config) PeriodOf(slot uint64) uint64 {
	return slot / c.SlotsPerEpoch / c.EpochsPerSyncCommitteePeriod
}

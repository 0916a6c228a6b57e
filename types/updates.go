package types

// InitialSync bootstraps a fresh engine instance (spec §6.1).
type InitialSync struct {
	Header                     BeaconHeader  `json:"header"`
	CurrentSyncCommittee       SyncCommittee `json:"current_sync_committee"`
	CurrentSyncCommitteeBranch ProofBranch   `json:"current_sync_committee_branch"`
	ValidatorsRoot             Root          `json:"validators_root"`
}

// SyncCommitteePeriodUpdate rotates to the next sync committee while also
// advancing finalization (spec §6.2).
type SyncCommitteePeriodUpdate struct {
	AttestedHeader          BeaconHeader  `json:"attested_header"`
	NextSyncCommittee       SyncCommittee `json:"next_sync_committee"`
	NextSyncCommitteeBranch ProofBranch   `json:"next_sync_committee_branch"`
	FinalizedHeader         BeaconHeader  `json:"finalized_header"`
	FinalityBranch          ProofBranch   `json:"finality_branch"`
	SyncAggregate           SyncAggregate `json:"sync_aggregate"`
	ForkVersion             ForkVersion   `json:"fork_version"`
	SyncCommitteePeriod     uint64        `json:"sync_committee_period"`
}

// FinalizedHeaderUpdate advances finalization without rotating committees
// (spec §6.3).
type FinalizedHeaderUpdate struct {
	AttestedHeader   BeaconHeader  `json:"attested_header"`
	FinalizedHeader  BeaconHeader  `json:"finalized_header"`
	FinalityBranch   ProofBranch   `json:"finality_branch"`
	SyncAggregate    SyncAggregate `json:"sync_aggregate"`
	ForkVersion      ForkVersion   `json:"fork_version"`
}

// BlockUpdate persists an execution header whose beacon block is covered
// by finality (spec §6.4).
type BlockUpdate struct {
	Block         BeaconBlock   `json:"block"`
	SyncAggregate SyncAggregate `json:"sync_aggregate"`
	ForkVersion   ForkVersion   `json:"fork_version"`
}

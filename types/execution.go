package types

import "github.com/ethereum/go-ethereum/common"

// ExecutionHeader is the subset of execution-layer block header fields
// embedded in the beacon block body, stored keyed by BlockHash once its
// beacon slot is covered by finality (spec §3).
type ExecutionHeader struct {
	ParentHash    common.Hash    `json:"parent_hash"`
	FeeRecipient  common.Address `json:"fee_recipient"`
	StateRoot     common.Hash    `json:"state_root"`
	ReceiptsRoot  common.Hash    `json:"receipts_root"`
	LogsBloom     [256]byte      `json:"logs_bloom"`
	PrevRandao    common.Hash    `json:"prev_randao"`
	BlockNumber   uint64         `json:"block_number"`
	GasLimit      uint64         `json:"gas_limit"`
	GasUsed       uint64         `json:"gas_used"`
	Timestamp     uint64         `json:"timestamp"`
	ExtraData     HexBytes       `json:"extra_data"`
	BaseFeePerGas Root           `json:"base_fee_per_gas"`
	BlockHash     common.Hash    `json:"block_hash"`
	TransactionsRoot Root        `json:"transactions_root"`
}

// ExecutionPayload is the execution-layer payload embedded in a beacon
// block body. Only the fields the engine needs to compute hash-tree-root
// and to lift into an ExecutionHeader are modeled; the full schema is
// assumed fixed per spec §1 ("Out of scope").
type ExecutionPayload struct {
	ParentHash    common.Hash    `json:"parent_hash"`
	FeeRecipient  common.Address `json:"fee_recipient"`
	StateRoot     common.Hash    `json:"state_root"`
	ReceiptsRoot  common.Hash    `json:"receipts_root"`
	LogsBloom     [256]byte      `json:"logs_bloom"`
	PrevRandao    common.Hash    `json:"prev_randao"`
	BlockNumber   uint64         `json:"block_number"`
	GasLimit      uint64         `json:"gas_limit"`
	GasUsed       uint64         `json:"gas_used"`
	Timestamp     uint64         `json:"timestamp"`
	ExtraData     []byte         `json:"extra_data"`
	BaseFeePerGas Root           `json:"base_fee_per_gas"`
	BlockHash     common.Hash    `json:"block_hash"`
	Transactions  [][]byte       `json:"transactions"`
}

// ToHeader lifts the payload fields into a stored ExecutionHeader,
// taking the transactions root precomputed by the caller so package
// types has no dependency on package ssz.
func (p *ExecutionPayload) ToHeader(transactionsRoot Root) ExecutionHeader {
	return ExecutionHeader{
		ParentHash:       p.ParentHash,
		FeeRecipient:     p.FeeRecipient,
		StateRoot:        p.StateRoot,
		ReceiptsRoot:     p.ReceiptsRoot,
		LogsBloom:        p.LogsBloom,
		PrevRandao:       p.PrevRandao,
		BlockNumber:      p.BlockNumber,
		GasLimit:         p.GasLimit,
		GasUsed:          p.GasUsed,
		Timestamp:        p.Timestamp,
		ExtraData:        HexBytes(p.ExtraData),
		BaseFeePerGas:    p.BaseFeePerGas,
		BlockHash:        p.BlockHash,
		TransactionsRoot: transactionsRoot,
	}
}

// BeaconBlockBody is the variable-field container whose hash-tree-root
// becomes a BeaconHeader's BodyRoot. Non-execution fields (randao,
// eth1 data, attestations, etc.) are out of scope per spec §1 ("The
// beacon-block-body SSZ schema ... assumed fixed inputs"); the engine
// only needs the fields it reasons about.
type BeaconBlockBody struct {
	RandaoReveal     [96]byte         `json:"randao_reveal"`
	Eth1DepositRoot  Root             `json:"eth1_deposit_root"`
	Eth1BlockHash    Root             `json:"eth1_block_hash"`
	Eth1DepositCount uint64           `json:"eth1_deposit_count"`
	Graffiti         Root             `json:"graffiti"`
	SyncAggregate    SyncAggregate    `json:"sync_aggregate"`
	ExecutionPayload ExecutionPayload `json:"execution_payload"`
}

// BeaconBlock is the full block carried by a BlockUpdate.
type BeaconBlock struct {
	Slot          uint64          `json:"slot"`
	ProposerIndex uint64          `json:"proposer_index"`
	ParentRoot    Root            `json:"parent_root"`
	StateRoot     Root            `json:"state_root"`
	Body          BeaconBlockBody `json:"body"`
}

package types

import (
	"encoding/json"
	"fmt"
)

// Root is a 32-byte SSZ Merkle root or equivalent fixed-size hash.
type Root [32]byte

// BLSPubkey is a compressed BLS12-381 G1 point (committee member key).
type BLSPubkey [48]byte

// BLSSignature is a compressed BLS12-381 G2 point.
type BLSSignature [96]byte

// BeaconHeader is the immutable descriptor of a beacon-chain block
// header, per spec §3.
type BeaconHeader struct {
	Slot          uint64 `json:"slot"`
	ProposerIndex uint64 `json:"proposer_index"`
	ParentRoot    Root   `json:"parent_root"`
	StateRoot     Root   `json:"state_root"`
	BodyRoot      Root   `json:"body_root"`
}

// SyncCommittee is the fixed-size 512-validator committee for one
// sync-committee period.
type SyncCommittee struct {
	Pubkeys         [SyncCommitteeSize]BLSPubkey `json:"pubkeys"`
	AggregatePubkey BLSPubkey                    `json:"aggregate_pubkey"`
}

// IsZero reports whether the committee has never been written to: a
// legitimate committee never has an all-zero aggregate key.
func (c *SyncCommittee) IsZero() bool {
	return c.AggregatePubkey == BLSPubkey{}
}

// Bitvector512 is the on-wire little-endian-packed 512-bit participation
// field of a SyncAggregate.
type Bitvector512 [64]byte

func (b Bitvector512) MarshalJSON() ([]byte, error) { return json.Marshal(HexBytes(b[:])) }
func (b *Bitvector512) UnmarshalJSON(data []byte) error {
	var hb HexBytes
	if err := json.Unmarshal(data, &hb); err != nil {
		return err
	}
	return copyFixed(b[:], hb)
}

// SyncAggregate is the ephemeral participation bitfield and aggregate
// signature carried on every update payload; it is never stored.
type SyncAggregate struct {
	SyncCommitteeBits      Bitvector512 `json:"sync_committee_bits"`
	SyncCommitteeSignature BLSSignature `json:"sync_committee_signature"`
}

// ProofBranch is an ordered sequence of Merkle siblings; its length must
// equal the depth of the leaf it authenticates.
type ProofBranch []Root

// ForkVersion is the 4-byte fork identifier used in domain computation.
type ForkVersion [4]byte

// ForkData is hashed to derive the fork-data root used in domain
// computation (spec §4.E).
type ForkData struct {
	CurrentVersion        ForkVersion
	GenesisValidatorsRoot Root
}

// SigningData is hashed to derive the signing root actually signed by
// the sync committee (spec §4.E).
type SigningData struct {
	ObjectRoot Root
	Domain     Domain
}

// Domain is the 32-byte signature-isolation tag of spec §4.E.
type Domain [32]byte

// MarshalJSON/UnmarshalJSON for Root, BLSPubkey, BLSSignature render as
// 0x-prefixed hex, matching the Beacon API's encoding for every
// fixed-size byte field.

func (r Root) MarshalJSON() ([]byte, error) { return json.Marshal(HexBytes(r[:])) }
func (r *Root) UnmarshalJSON(data []byte) error {
	var hb HexBytes
	if err := json.Unmarshal(data, &hb); err != nil {
		return err
	}
	return copyFixed(r[:], hb)
}

func (k BLSPubkey) MarshalJSON() ([]byte, error) { return json.Marshal(HexBytes(k[:])) }
func (k *BLSPubkey) UnmarshalJSON(data []byte) error {
	var hb HexBytes
	if err := json.Unmarshal(data, &hb); err != nil {
		return err
	}
	return copyFixed(k[:], hb)
}

func (s BLSSignature) MarshalJSON() ([]byte, error) { return json.Marshal(HexBytes(s[:])) }
func (s *BLSSignature) UnmarshalJSON(data []byte) error {
	var hb HexBytes
	if err := json.Unmarshal(data, &hb); err != nil {
		return err
	}
	return copyFixed(s[:], hb)
}

func copyFixed(dst []byte, src HexBytes) error {
	if len(src) != len(dst) {
		return fmt.Errorf("types: expected %d bytes, got %d", len(dst), len(src))
	}
	copy(dst, src)
	return nil
}

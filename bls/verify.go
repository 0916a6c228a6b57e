// Package bls verifies BLS12-381 aggregate signatures over the subset of
// a sync committee that actually signed an update, using gnark-crypto's
// pure-Go curve arithmetic exactly as the teacher's verifySyncAggregate
// does.
package bls

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/ethbeacon/lightclient/lcerrors"
)

// signatureDST is the Ethereum consensus proof-of-possession domain
// separation tag for BLS12-381 G2 hash-to-curve.
const signatureDST = "BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_POP_"

// AggregatePublicKeys sums the G1 public keys selected by bits[i]==true,
// deserializing each from its compressed 48-byte form. Pubkeys whose bit
// is unset are skipped entirely, mirroring the teacher's
// AggregatePublicKeys.
func AggregatePublicKeys(pubkeys [][48]byte, bits []bool) (bls12381.G1Affine, int, error) {
	var agg bls12381.G1Affine
	agg.SetInfinity()

	count := 0
	for i, participate := range bits {
		if !participate || i >= len(pubkeys) {
			continue
		}
		var pk bls12381.G1Affine
		if _, err := pk.SetBytes(pubkeys[i][:]); err != nil {
			return agg, 0, lcerrors.Wrap(lcerrors.InvalidSignaturePoint, "deserialize participant pubkey", err)
		}
		agg.Add(&agg, &pk)
		count++
	}
	if count == 0 {
		return agg, 0, lcerrors.New(lcerrors.InvalidAggregatePublicKeys, "no participating public keys")
	}
	return agg, count, nil
}

// FastAggregateVerifyPreAggregated deserializes signature as a compressed
// G2 point, aggregates the pubkeys selected by bits, hashes message
// to G2 under the Ethereum proof-of-possession DST, and checks the
// pairing equation e(agg_pubkey, H(message)) == e(G1, signature) via
// e(agg_pubkey, H(message)) * e(-G1, signature) == 1, exactly as the
// teacher's verifySyncAggregate does with gnark-crypto's PairingCheck.
func FastAggregateVerifyPreAggregated(pubkeys [][48]byte, bits []bool, message [32]byte, signature [96]byte) error {
	var sig bls12381.G2Affine
	if _, err := sig.SetBytes(signature[:]); err != nil {
		return lcerrors.Wrap(lcerrors.InvalidSignature, "deserialize signature", err)
	}

	aggPubkey, _, err := AggregatePublicKeys(pubkeys, bits)
	if err != nil {
		return err
	}

	messageHash, err := bls12381.HashToG2(message[:], []byte(signatureDST))
	if err != nil {
		return lcerrors.Wrap(lcerrors.SignatureVerificationFailed, "hash message to G2", err)
	}

	_, _, g1Gen, _ := bls12381.Generators()
	var negG1 bls12381.G1Affine
	negG1.Neg(&g1Gen)

	valid, err := bls12381.PairingCheck(
		[]bls12381.G1Affine{aggPubkey, negG1},
		[]bls12381.G2Affine{messageHash, sig},
	)
	if err != nil {
		return lcerrors.Wrap(lcerrors.SignatureVerificationFailed, "pairing check", err)
	}
	if !valid {
		return lcerrors.New(lcerrors.SignatureVerificationFailed, "pairing check failed")
	}
	return nil
}

package bls

import (
	"testing"

	"github.com/ethbeacon/lightclient/lcerrors"
	"github.com/stretchr/testify/require"
)

func TestAggregatePublicKeysRejectsEmptyParticipation(t *testing.T) {
	pubkeys := make([][48]byte, 4)
	bits := make([]bool, 4)

	_, _, err := AggregatePublicKeys(pubkeys, bits)
	require.Error(t, err)
	require.True(t, lcerrors.HasKind(err, lcerrors.InvalidAggregatePublicKeys))
}

func TestAggregatePublicKeysRejectsMalformedPubkey(t *testing.T) {
	pubkeys := make([][48]byte, 1)
	for i := range pubkeys[0] {
		pubkeys[0][i] = 0xff // not a valid compressed G1 point
	}
	bits := []bool{true}

	_, _, err := AggregatePublicKeys(pubkeys, bits)
	require.Error(t, err)
	require.True(t, lcerrors.HasKind(err, lcerrors.InvalidSignaturePoint))
}

func TestFastAggregateVerifyRejectsMalformedSignature(t *testing.T) {
	pubkeys := make([][48]byte, 1)
	// The signature is deserialized before any pubkey is touched, so the
	// all-0xff signature (an invalid encoding flag) is rejected before
	// the all-zero pubkey below is ever decoded.
	bits := []bool{true}
	var message [32]byte
	var sig [96]byte
	for i := range sig {
		sig[i] = 0xff
	}

	err := FastAggregateVerifyPreAggregated(pubkeys, bits, message, sig)
	require.Error(t, err)
}

// Package lcerrors defines the tagged error kinds the light-client engine
// returns. Every verification failure maps to exactly one Kind so callers
// can branch on cause without parsing error strings.
package lcerrors

import (
	"errors"
	"fmt"
)

// Kind enumerates the error codes an ingress call can fail with.
type Kind string

const (
	AncientHeader                             Kind = "AncientHeader"
	SkippedSyncCommitteePeriod                Kind = "SkippedSyncCommitteePeriod"
	SyncCommitteeMissing                      Kind = "SyncCommitteeMissing"
	SyncCommitteeParticipantsNotSupermajority Kind = "SyncCommitteeParticipantsNotSupermajority"
	SignatureVerificationFailed               Kind = "SignatureVerificationFailed"
	InvalidHeaderMerkleProof                  Kind = "InvalidHeaderMerkleProof"
	InvalidSyncCommitteeMerkleProof           Kind = "InvalidSyncCommitteeMerkleProof"
	InvalidSignature                          Kind = "InvalidSignature"
	InvalidSignaturePoint                     Kind = "InvalidSignaturePoint"
	InvalidAggregatePublicKeys                Kind = "InvalidAggregatePublicKeys"
	InvalidHash                               Kind = "InvalidHash"
	NoBranchExpected                          Kind = "NoBranchExpected"
	HeaderNotFinalized                        Kind = "HeaderNotFinalized"
	Unknown                                   Kind = "Unknown"
)

// Error is the concrete error type returned by every package in this
// module. Wrap an underlying cause with Wrap so callers can still recover
// it via errors.Unwrap/errors.As while switching on Kind.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same Kind, so callers
// can do errors.Is(err, lcerrors.New(lcerrors.HeaderNotFinalized, "")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// New constructs an *Error with no wrapped cause.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap constructs an *Error carrying an underlying cause.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// HasKind reports whether err is (or wraps) an *Error of the given Kind.
func HasKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

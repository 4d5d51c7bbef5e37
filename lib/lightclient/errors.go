// Copyright 2024 Composable Finance
// SPDX-License-Identifier: Apache-2.0

package lightclient

import "errors"

var (
	// ErrInvalidRootLength is returned when a commitment root or child trie
	// root is not 32 bytes
	ErrInvalidRootLength = errors.New("invalid commitment root length")

	// ErrProofDecode is returned when proof bytes are malformed
	ErrProofDecode = errors.New("cannot decode proof")

	// ErrVerificationFailed is returned when a proof does not verify against
	// the commitment root
	ErrVerificationFailed = errors.New("proof verification failed")

	// ErrInsufficientHeight is returned when the client has not yet reached
	// the height a proof refers to
	ErrInsufficientHeight = errors.New("insufficient client height")

	// ErrClientFrozen is returned when the client is frozen at or below the
	// height a proof refers to
	ErrClientFrozen = errors.New("client is frozen")

	// ErrClientExpired is returned when the client's latest consensus state
	// is older than the trusting period
	ErrClientExpired = errors.New("client state is expired")

	// ErrDelayPeriodNotElapsed is returned when the connection delay has not
	// passed on the time or block axis
	ErrDelayPeriodNotElapsed = errors.New("connection delay period has not elapsed")

	// ErrUnknownRelayChain is returned when a relay chain identifier is not recognised
	ErrUnknownRelayChain = errors.New("unknown relay chain")

	// ErrTimestampExtrinsic is returned when a timestamp inherent cannot be decoded
	ErrTimestampExtrinsic = errors.New("cannot decode timestamp extrinsic")
)

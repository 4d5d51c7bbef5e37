// Copyright 2024 Composable Finance
// SPDX-License-Identifier: Apache-2.0

package grandpa

import "errors"

var (
	// ErrInvalidAuthoritiesSet is returned when an authority list cannot form a voter set
	ErrInvalidAuthoritiesSet = errors.New("current state of blockchain has invalid authorities set")

	// ErrJustificationDecode is returned when justification bytes are malformed or carry trailing data
	ErrJustificationDecode = errors.New("cannot decode grandpa justification")

	// ErrInvalidTargetCommit is returned when the commit target differs from the expected finalized block
	ErrInvalidTargetCommit = errors.New("invalid commit target in grandpa justification")

	// ErrBadCommit is returned when the commit does not prove finality of its target
	ErrBadCommit = errors.New("invalid commit in grandpa justification")

	// ErrInvalidSignature is returned when a precommit signature does not verify
	ErrInvalidSignature = errors.New("invalid signature for precommit in grandpa justification")

	// ErrAncestryProof is returned when a precommit target cannot be routed back to the base
	ErrAncestryProof = errors.New("invalid precommit ancestry proof in grandpa justification")

	// ErrUnusedHeaders is returned when the ancestry headers are not exactly the ones visited
	ErrUnusedHeaders = errors.New("invalid precommit ancestries in grandpa justification with unused headers")

	// ErrDescendantNotFound is returned when no route exists between two blocks
	ErrDescendantNotFound = errors.New("block not descendent of base")

	// ErrFinalityProofDecode is returned when finality proof bytes are malformed
	ErrFinalityProofDecode = errors.New("cannot decode finality proof")
)

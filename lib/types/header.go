// Copyright 2024 Composable Finance
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"fmt"

	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/ChainSafe/gossamer/pkg/scale"
)

// Header is a relay chain block header
type Header struct {
	ParentHash     common.Hash
	Number         uint
	StateRoot      common.Hash
	ExtrinsicsRoot common.Hash
	Digest         Digest
}

// NewHeader creates a new block header
func NewHeader(parentHash, stateRoot, extrinsicsRoot common.Hash,
	number uint, digest Digest) Header {
	return Header{
		ParentHash:     parentHash,
		Number:         number,
		StateRoot:      stateRoot,
		ExtrinsicsRoot: extrinsicsRoot,
		Digest:         digest,
	}
}

// NewEmptyHeader returns a header with zeroed hashes and an empty digest
func NewEmptyHeader() Header {
	return Header{
		Digest: NewDigest(),
	}
}

// Hash returns the blake2b-256 hash of the SCALE encoded header.
func (h *Header) Hash() common.Hash {
	enc, err := scale.Marshal(*h)
	if err != nil {
		panic(fmt.Sprintf("cannot scale encode header: %s", err))
	}
	return common.MustBlake2bHash(enc)
}

// String returns the formatted header as a string
func (h *Header) String() string {
	return fmt.Sprintf("ParentHash=%s Number=%d StateRoot=%s ExtrinsicsRoot=%s Digest=%v Hash=%s",
		h.ParentHash, h.Number, h.StateRoot, h.ExtrinsicsRoot, h.Digest, h.Hash())
}

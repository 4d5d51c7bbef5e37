// Copyright 2024 Composable Finance
// SPDX-License-Identifier: Apache-2.0

package grandpa

import (
	"bytes"
	"fmt"

	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/ChainSafe/gossamer/pkg/scale"

	"github.com/ComposableFi/go-grandpa-light-client/lib/types"
)

// FinalityProof is the response to a finality request: the hash of the block
// to prove finality for, the justification doing so, and any headers the
// requester is not expected to have.
type FinalityProof struct {
	Block          common.Hash
	Justification  []byte
	UnknownHeaders []types.Header
}

// DecodeFinalityProof decodes a SCALE encoded finality proof. Inputs with
// bytes left over after decoding are rejected.
func DecodeFinalityProof(encoded []byte) (FinalityProof, error) {
	proof := FinalityProof{
		UnknownHeaders: make([]types.Header, 0),
	}
	reader := bytes.NewReader(encoded)
	if err := scale.NewDecoder(reader).Decode(&proof); err != nil {
		return FinalityProof{}, fmt.Errorf("%w: %s", ErrFinalityProofDecode, err)
	}
	if reader.Len() > 0 {
		return FinalityProof{}, fmt.Errorf("%w: %d trailing bytes", ErrFinalityProofDecode, reader.Len())
	}
	return proof, nil
}

// Encode returns the SCALE encoded finality proof
func (fp *FinalityProof) Encode() ([]byte, error) {
	return scale.Marshal(*fp)
}

// CheckFinalityProof decodes a finality proof and verifies the justification
// it carries finalizes the proof's block under the given set.
func CheckFinalityProof(encoded []byte, setID uint64, voters *VoterSet) (*FinalityProof, error) {
	proof, err := DecodeFinalityProof(encoded)
	if err != nil {
		return nil, err
	}

	justification, err := DecodeJustification(proof.Justification)
	if err != nil {
		return nil, err
	}

	if justification.Commit.Hash != proof.Block {
		return nil, fmt.Errorf("%w: justification is for %s, proof is for %s",
			ErrInvalidTargetCommit, justification.Commit.Hash, proof.Block)
	}

	if err := justification.VerifyWithVoterSet(setID, voters); err != nil {
		return nil, err
	}
	return &proof, nil
}

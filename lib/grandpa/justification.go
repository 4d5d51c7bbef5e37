// Copyright 2024 Composable Finance
// SPDX-License-Identifier: Apache-2.0

package grandpa

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/ChainSafe/gossamer/lib/crypto/ed25519"
	"github.com/ChainSafe/gossamer/pkg/scale"

	"github.com/ComposableFi/go-grandpa-light-client/lib/types"
)

// GrandpaJustification is a proof of block finality. It includes a commit
// message and an ancestry proof with all headers routing the precommit
// target blocks to the commit target block. Due to the current voting
// strategy the precommit targets should be the same as the commit target,
// since honest voters don't vote past authority set change blocks.
//
// Justifications are passed around the network and used by light clients to
// prove finality and authority set handoffs.
type GrandpaJustification struct {
	Round           uint64
	Commit          Commit
	VotesAncestries []types.Header
}

// DecodeJustification decodes a SCALE encoded justification. Inputs with
// bytes left over after decoding are rejected.
func DecodeJustification(encoded []byte) (GrandpaJustification, error) {
	justification := GrandpaJustification{
		VotesAncestries: make([]types.Header, 0),
	}
	reader := bytes.NewReader(encoded)
	if err := scale.NewDecoder(reader).Decode(&justification); err != nil {
		return GrandpaJustification{}, fmt.Errorf("%w: %s", ErrJustificationDecode, err)
	}
	if reader.Len() > 0 {
		return GrandpaJustification{}, fmt.Errorf("%w: %d trailing bytes", ErrJustificationDecode, reader.Len())
	}
	return justification, nil
}

// Encode returns the SCALE encoded justification
func (j *GrandpaJustification) Encode() ([]byte, error) {
	return scale.Marshal(*j)
}

// Target returns the block hash and number this justification proves finality for
func (j *GrandpaJustification) Target() HashNumber {
	return HashNumber{
		Hash:   j.Commit.Hash,
		Number: j.Commit.Number,
	}
}

// DecodeAndVerifyFinalizes decodes a justification and validates that its
// commit and ancestry proofs finalize the given block.
func DecodeAndVerifyFinalizes(encoded []byte, finalizedTarget HashNumber,
	setID uint64, voters *VoterSet) (GrandpaJustification, error) {
	justification, err := DecodeJustification(encoded)
	if err != nil {
		return GrandpaJustification{}, err
	}

	decodedTarget := justification.Target()
	if decodedTarget != finalizedTarget {
		return GrandpaJustification{}, fmt.Errorf("%w: justification is for %s, expected %s",
			ErrInvalidTargetCommit, decodedTarget, finalizedTarget)
	}

	return justification, justification.VerifyWithVoterSet(setID, voters)
}

// Verify validates the commit and the votes' ancestry proofs against the
// given authority list.
func (j *GrandpaJustification) Verify(setID uint64, authorities AuthorityList) error {
	voters, err := NewVoterSet(authorities)
	if err != nil {
		return err
	}
	return j.VerifyWithVoterSet(setID, voters)
}

// VerifyWithVoterSet validates the commit and the votes' ancestry proofs
// using the default commit validator.
func (j *GrandpaJustification) VerifyWithVoterSet(setID uint64, voters *VoterSet) error {
	return j.VerifyWithValidator(setID, voters, NewCommitValidator())
}

// VerifyWithValidator validates the commit and the votes' ancestry proofs,
// delegating vote tallying to the given commit validator.
func (j *GrandpaJustification) VerifyWithValidator(setID uint64, voters *VoterSet,
	validator CommitValidator) error {
	ancestryChain := NewAncestryChain(j.VotesAncestries)

	validity, err := validator.ValidateCommit(j.Commit, voters, ancestryChain)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrBadCommit, err)
	}
	if !validity.Valid {
		logger.Debug("commit validation failed",
			"invalidVoters", validity.NumInvalidVoters,
			"equivocations", validity.NumEquivocations,
			"duplicated", validity.NumDuplicatedPrecommits)
		return fmt.Errorf("%w", ErrBadCommit)
	}

	precommits := j.Commit.Precommits
	if len(precommits) == 0 {
		panic("can only fail if precommits is empty; commit has been validated above; " +
			"valid commits must include precommits; qed.")
	}

	// the precommit for the lowest block serves as the root block for
	// populating ancestry, i.e. all precommit blocks route back to it
	base := selectBase(precommits)

	visitedHashes := make(map[common.Hash]struct{})
	for _, signed := range precommits {
		if err := verifyPrecommitSignature(signed, j.Round, setID); err != nil {
			return err
		}

		if base.Hash == signed.Vote.Hash {
			continue
		}

		route, err := ancestryChain.Ancestry(base.Hash, signed.Vote.Hash)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrAncestryProof, err)
		}

		// ancestry starts from the parent of the precommit target but the
		// target itself has been visited
		visitedHashes[signed.Vote.Hash] = struct{}{}
		for _, hash := range route {
			visitedHashes[hash] = struct{}{}
		}
	}

	ancestryHashes := make(map[common.Hash]struct{}, len(j.VotesAncestries))
	for i := range j.VotesAncestries {
		ancestryHashes[j.VotesAncestries[i].Hash()] = struct{}{}
	}

	if len(visitedHashes) != len(ancestryHashes) {
		return fmt.Errorf("%w", ErrUnusedHeaders)
	}
	if !reflect.DeepEqual(visitedHashes, ancestryHashes) {
		return fmt.Errorf("%w", ErrUnusedHeaders)
	}

	return nil
}

// selectBase picks the precommit with the lowest target number as the round
// base. Ties on the number are broken by the smaller hash so that every
// verifier selects the same base.
func selectBase(precommits []SignedVote) HashNumber {
	base := HashNumber{
		Hash:   precommits[0].Vote.Hash,
		Number: precommits[0].Vote.Number,
	}
	for _, signed := range precommits[1:] {
		vote := signed.Vote
		if vote.Number < base.Number ||
			(vote.Number == base.Number && bytes.Compare(vote.Hash[:], base.Hash[:]) < 0) {
			base = HashNumber{
				Hash:   vote.Hash,
				Number: vote.Number,
			}
		}
	}
	return base
}

// verifyPrecommitSignature checks the voter's ed25519 signature over the
// precommit message for the given round and set id.
func verifyPrecommitSignature(signed SignedVote, round, setID uint64) error {
	msg, err := scale.Marshal(FullVote{
		Stage: Precommit,
		Vote:  signed.Vote,
		Round: round,
		SetID: setID,
	})
	if err != nil {
		return fmt.Errorf("cannot encode precommit message: %w", err)
	}

	pk, err := ed25519.NewPublicKey(signed.AuthorityID[:])
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSignature, err)
	}

	ok, err := pk.Verify(msg, signed.Signature[:])
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSignature, err)
	}
	if !ok {
		return fmt.Errorf("%w: voter %s", ErrInvalidSignature, signed.AuthorityID)
	}
	return nil
}

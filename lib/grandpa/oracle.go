// Copyright 2024 Composable Finance
// SPDX-License-Identifier: Apache-2.0

package grandpa

import (
	"github.com/ChainSafe/gossamer/lib/common"
	finalityGrandpa "github.com/ChainSafe/gossamer/pkg/finality-grandpa"
)

// CommitValidity reports the outcome of commit validation.
type CommitValidity struct {
	Valid                   bool
	NumPrecommits           uint
	NumDuplicatedPrecommits uint
	NumEquivocations        uint
	NumInvalidVoters        uint
}

// CommitValidator checks that a commit's precommits carry enough voter weight
// to finalize the commit target. Justification verification treats this as an
// opaque capability; implementations may tally votes however they see fit.
//
// Signatures are checked by the justification verifier, not here.
type CommitValidator interface {
	ValidateCommit(commit Commit, voters *VoterSet, chain AncestryChain) (CommitValidity, error)
}

// NewCommitValidator returns the default CommitValidator, which tallies votes
// with the finality-grandpa round machinery.
func NewCommitValidator() CommitValidator {
	return commitValidator{}
}

type commitValidator struct{}

func (commitValidator) ValidateCommit(commit Commit, voters *VoterSet, chain AncestryChain) (CommitValidity, error) {
	result, err := finalityGrandpa.ValidateCommit[string, uint32, string, string](
		oracleCommit(commit), voters.inner, orderedChain{chain})
	if err != nil {
		return CommitValidity{}, err
	}
	return CommitValidity{
		Valid:                   result.Valid(),
		NumPrecommits:           result.NumPrecommits(),
		NumDuplicatedPrecommits: result.NumDuplicatedPrecommits(),
		NumEquivocations:        result.NumEquiovcations(),
		NumInvalidVoters:        result.NumInvalidVoters(),
	}, nil
}

// oracleCommit converts a commit into the ordered key domain the
// finality-grandpa round machinery works over.
func oracleCommit(commit Commit) finalityGrandpa.Commit[string, uint32, string, string] {
	precommits := make([]finalityGrandpa.SignedPrecommit[string, uint32, string, string], len(commit.Precommits))
	for i, signed := range commit.Precommits {
		precommits[i] = finalityGrandpa.SignedPrecommit[string, uint32, string, string]{
			Precommit: finalityGrandpa.Precommit[string, uint32]{
				TargetHash:   string(signed.Vote.Hash[:]),
				TargetNumber: signed.Vote.Number,
			},
			Signature: string(signed.Signature[:]),
			ID:        string(signed.AuthorityID[:]),
		}
	}
	return finalityGrandpa.Commit[string, uint32, string, string]{
		TargetHash:   string(commit.Hash[:]),
		TargetNumber: commit.Number,
		Precommits:   precommits,
	}
}

type orderedChain struct {
	inner AncestryChain
}

func (c orderedChain) Ancestry(base, block string) ([]string, error) {
	route, err := c.inner.Ancestry(common.NewHash([]byte(base)), common.NewHash([]byte(block)))
	if err != nil {
		return nil, err
	}
	hashes := make([]string, len(route))
	for i, hash := range route {
		hashes[i] = string(hash[:])
	}
	return hashes, nil
}

func (c orderedChain) IsEqualOrDescendantOf(base, block string) bool {
	return c.inner.IsEqualOrDescendantOf(common.NewHash([]byte(base)), common.NewHash([]byte(block)))
}

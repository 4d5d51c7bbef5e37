// Copyright 2024 Composable Finance
// SPDX-License-Identifier: Apache-2.0

package grandpa

import (
	"fmt"

	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/ChainSafe/gossamer/lib/crypto/ed25519"
	finalityGrandpa "github.com/ChainSafe/gossamer/pkg/finality-grandpa"

	"github.com/ComposableFi/go-grandpa-light-client/lib/types"
)

// Subround subrounds in a grandpa round
type Subround byte

const (
	// Prevote subround, for block hash
	Prevote Subround = iota
	// Precommit subround, for block hash
	Precommit
	// PrimaryProposal subround, for block hash
	PrimaryProposal
)

// String returns the string representation for a Subround
func (s Subround) String() string {
	switch s {
	case Prevote:
		return "prevote"
	case Precommit:
		return "precommit"
	case PrimaryProposal:
		return "primaryProposal"
	}
	return "unknown"
}

// Vote represents a vote for a block with the given hash and number
type Vote struct {
	Hash   common.Hash
	Number uint32
}

// NewVote returns a new Vote given a block hash and number
func NewVote(hash common.Hash, number uint32) Vote {
	return Vote{
		Hash:   hash,
		Number: number,
	}
}

// String returns the Vote as a string
func (v Vote) String() string {
	return fmt.Sprintf("hash=%s number=%d", v.Hash, v.Number)
}

// SignedVote represents a vote signed by a GRANDPA authority
type SignedVote struct {
	Vote        Vote
	Signature   [64]byte // ed25519.SignatureLength
	AuthorityID ed25519.PublicKeyBytes
}

// String returns the SignedVote as a string
func (s SignedVote) String() string {
	return fmt.Sprintf("vote=%s authorityID=%s", s.Vote, s.AuthorityID)
}

// Commit contains all the signed precommits for a given block
type Commit struct {
	Hash       common.Hash
	Number     uint32
	Precommits []SignedVote
}

// FullVote represents a vote with additional information about the state
// this is encoded and signed and the signature is checked per precommit
type FullVote struct {
	Stage Subround
	Vote  Vote
	Round uint64
	SetID uint64
}

// HashNumber is a block hash and number pair
type HashNumber struct {
	Hash   common.Hash
	Number uint32
}

// String returns the HashNumber as a string
func (hn HashNumber) String() string {
	return fmt.Sprintf("hash=%s number=%d", hn.Hash, hn.Number)
}

// Authority is a GRANDPA authority with its voting weight
type Authority struct {
	Key    ed25519.PublicKeyBytes
	Weight uint64
}

// AuthorityList is a weighted list of GRANDPA authorities
type AuthorityList []Authority

// AuthoritiesFromRaw converts raw authority key material into an AuthorityList,
// validating each key is a well formed ed25519 public key.
func AuthoritiesFromRaw(raws []types.GrandpaAuthoritiesRaw) (AuthorityList, error) {
	list := make(AuthorityList, len(raws))
	for i, raw := range raws {
		if _, err := ed25519.NewPublicKey(raw.Key[:]); err != nil {
			return nil, fmt.Errorf("invalid authority key: %w", err)
		}
		list[i] = Authority{
			Key:    ed25519.PublicKeyBytes(raw.Key),
			Weight: raw.ID,
		}
	}
	return list, nil
}

// VoterSet is the set of voters permitted to vote in a round, with their
// weights and the derived supermajority threshold.
type VoterSet struct {
	inner finalityGrandpa.VoterSet[string]
}

// NewVoterSet builds a voter set from the given authority list. It fails if
// the list holds no authority with a non-zero weight.
func NewVoterSet(authorities AuthorityList) (*VoterSet, error) {
	weights := make([]finalityGrandpa.IDWeight[string], len(authorities))
	for i, authority := range authorities {
		weights[i] = finalityGrandpa.IDWeight[string]{
			ID:     string(authority.Key[:]),
			Weight: authority.Weight,
		}
	}
	voters := finalityGrandpa.NewVoterSet(weights)
	if voters == nil {
		return nil, ErrInvalidAuthoritiesSet
	}
	return &VoterSet{inner: *voters}, nil
}

// Contains returns whether the set contains a voter with the given key
func (vs *VoterSet) Contains(id ed25519.PublicKeyBytes) bool {
	return vs.inner.Contains(string(id[:]))
}

// Len returns the size of the set
func (vs *VoterSet) Len() int {
	return vs.inner.Len()
}

// TotalWeight returns the total weight of the set
func (vs *VoterSet) TotalWeight() uint64 {
	return uint64(vs.inner.TotalWeight())
}

// Threshold returns the vote weight required for supermajority
func (vs *VoterSet) Threshold() uint64 {
	return uint64(vs.inner.Threshold())
}

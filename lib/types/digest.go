// Copyright 2024 Composable Finance
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"fmt"

	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/ChainSafe/gossamer/pkg/scale"
)

// ConsensusEngineID is a 4-character identifier of the consensus engine that produced the digest.
type ConsensusEngineID [4]byte

// ToBytes turns ConsensusEngineID to a byte array
func (h ConsensusEngineID) ToBytes() []byte {
	b := [4]byte(h)
	return b[:]
}

// BabeEngineID is the hard-coded babe ID
var BabeEngineID = ConsensusEngineID{'B', 'A', 'B', 'E'}

// GrandpaEngineID is the hard-coded grandpa ID
var GrandpaEngineID = ConsensusEngineID{'F', 'R', 'N', 'K'}

// Digest is the block digest, a list of digest items.
type Digest []DigestItem

// NewDigest returns a Digest from the given items
func NewDigest(items ...DigestItem) Digest {
	return items
}

type DigestItemValues interface {
	ChangesTrieRootDigest | PreRuntimeDigest | ConsensusDigest | SealDigest
}

// DigestItem can hold one of ChangesTrieRootDigest, PreRuntimeDigest, ConsensusDigest or SealDigest.
type DigestItem struct {
	inner any
}

func setDigestItem[Value DigestItemValues](mvdt *DigestItem, value Value) {
	mvdt.inner = value
}

func (mvdt *DigestItem) SetValue(value any) (err error) {
	switch value := value.(type) {
	case ChangesTrieRootDigest:
		setDigestItem(mvdt, value)
		return
	case PreRuntimeDigest:
		setDigestItem(mvdt, value)
		return
	case ConsensusDigest:
		setDigestItem(mvdt, value)
		return
	case SealDigest:
		setDigestItem(mvdt, value)
		return
	default:
		return fmt.Errorf("unsupported type")
	}
}

func (mvdt DigestItem) IndexValue() (index uint, value any, err error) {
	switch mvdt.inner.(type) {
	case ChangesTrieRootDigest:
		return 2, mvdt.inner, nil
	case ConsensusDigest:
		return 4, mvdt.inner, nil
	case SealDigest:
		return 5, mvdt.inner, nil
	case PreRuntimeDigest:
		return 6, mvdt.inner, nil
	}
	return 0, nil, scale.ErrUnsupportedVaryingDataTypeValue
}

func (mvdt DigestItem) Value() (value any, err error) {
	_, value, err = mvdt.IndexValue()
	return
}

func (mvdt DigestItem) ValueAt(index uint) (value any, err error) {
	switch index {
	case 2:
		return *new(ChangesTrieRootDigest), nil
	case 4:
		return *new(ConsensusDigest), nil
	case 5:
		return *new(SealDigest), nil
	case 6:
		return *new(PreRuntimeDigest), nil
	}
	return nil, scale.ErrUnknownVaryingDataTypeValue
}

// NewDigestItem returns a new DigestItem
func NewDigestItem() DigestItem {
	return DigestItem{}
}

// ChangesTrieRootDigest contains the root of the changes trie at a given block, if the runtime supports it.
type ChangesTrieRootDigest struct {
	Hash common.Hash
}

// String returns the digest as a string
func (d ChangesTrieRootDigest) String() string {
	return fmt.Sprintf("ChangesTrieRootDigest Hash=%s", d.Hash)
}

// PreRuntimeDigest contains messages from the consensus engine to the runtime.
type PreRuntimeDigest struct {
	ConsensusEngineID ConsensusEngineID
	Data              []byte
}

// String returns the digest as a string
func (d PreRuntimeDigest) String() string {
	return fmt.Sprintf("PreRuntimeDigest ConsensusEngineID=%s Data=0x%x", d.ConsensusEngineID.ToBytes(), d.Data)
}

// ConsensusDigest contains messages from the runtime to the consensus engine.
type ConsensusDigest struct {
	ConsensusEngineID ConsensusEngineID
	Data              []byte
}

// String returns the digest as a string
func (d ConsensusDigest) String() string {
	return fmt.Sprintf("ConsensusDigest ConsensusEngineID=%s Data=0x%x", d.ConsensusEngineID.ToBytes(), d.Data)
}

// SealDigest contains the seal or signature. This is only used by native code.
type SealDigest struct {
	ConsensusEngineID ConsensusEngineID
	Data              []byte
}

// String returns the digest as a string
func (d SealDigest) String() string {
	return fmt.Sprintf("SealDigest ConsensusEngineID=%s Data=0x%x", d.ConsensusEngineID.ToBytes(), d.Data)
}

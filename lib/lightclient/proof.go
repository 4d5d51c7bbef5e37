// Copyright 2024 Composable Finance
// SPDX-License-Identifier: Apache-2.0

// Package lightclient verifies counterparty state against finalized
// commitment roots: standardised artifacts are stored in a child trie whose
// root is itself committed to in the chain's main state trie.
package lightclient

import (
	"bytes"
	"fmt"

	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/ChainSafe/gossamer/pkg/scale"
	log "github.com/ChainSafe/log15"

	"github.com/ComposableFi/go-grandpa-light-client/lib/ibc"
	"github.com/ComposableFi/go-grandpa-light-client/lib/trie"
)

var logger = log.New("lib", "lightclient")

// Proof carries the two node sets needed for a two-level state proof: one
// against the child trie and one against the main trie holding the child
// trie's root.
type Proof struct {
	ChildTrieProof     [][]byte
	ChildTrieRootProof [][]byte
}

// DecodeProof decodes SCALE encoded proof bytes. Inputs with bytes left over
// after decoding are rejected.
func DecodeProof(encoded []byte) (Proof, error) {
	var proof Proof
	reader := bytes.NewReader(encoded)
	if err := scale.NewDecoder(reader).Decode(&proof); err != nil {
		return Proof{}, fmt.Errorf("%w: %s", ErrProofDecode, err)
	}
	if reader.Len() > 0 {
		return Proof{}, fmt.Errorf("%w: %d trailing bytes", ErrProofDecode, reader.Len())
	}
	return proof, nil
}

// Encode returns the SCALE encoded proof
func (p *Proof) Encode() ([]byte, error) {
	return scale.Marshal(*p)
}

// ProveChildRoot proves that the main trie stores the given child trie's
// root, and returns it. The child root lives in the main trie under the
// child storage key derived from childInfo.
func ProveChildRoot(root common.Hash, proofNodes [][]byte, childInfo []byte) (common.Hash, error) {
	proofTrie, err := trie.LoadProof(root, proofNodes)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: %s", ErrVerificationFailed, err)
	}

	value, err := proofTrie.Get(trie.ChildStorageKey(childInfo))
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: %s", ErrVerificationFailed, err)
	}
	if value == nil {
		return common.Hash{}, fmt.Errorf("%w: child trie root not found in main trie", ErrVerificationFailed)
	}
	if len(value) != 32 {
		return common.Hash{}, fmt.Errorf("%w: child trie root has %d bytes", ErrInvalidRootLength, len(value))
	}

	return common.NewHash(value), nil
}

// ProveLeaf proves that the trie with the given root stores expectedValue
// under key.
func ProveLeaf(root common.Hash, proofNodes [][]byte, key, expectedValue []byte) error {
	proofTrie, err := trie.LoadProof(root, proofNodes)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrVerificationFailed, err)
	}

	value, err := proofTrie.Get(key)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrVerificationFailed, err)
	}
	if value == nil {
		return fmt.Errorf("%w: key 0x%x not found", ErrVerificationFailed, key)
	}
	if !bytes.Equal(value, expectedValue) {
		logger.Debug("leaf value mismatch", "key", fmt.Sprintf("0x%x", key))
		return fmt.Errorf("%w: value mismatch for key 0x%x", ErrVerificationFailed, key)
	}
	return nil
}

// ProveAbsence proves that the trie with the given root stores nothing under
// key.
func ProveAbsence(root common.Hash, proofNodes [][]byte, key []byte) error {
	proofTrie, err := trie.LoadProof(root, proofNodes)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrVerificationFailed, err)
	}

	value, err := proofTrie.Get(key)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrVerificationFailed, err)
	}
	if value != nil {
		return fmt.Errorf("%w: key 0x%x exists", ErrVerificationFailed, key)
	}
	return nil
}

// VerifyMembership verifies that the counterparty chain stores value under
// the standardised path. The lookup key within the child trie is the store
// prefix followed by the path bytes, and the child trie's root is first
// proven against the commitment root.
func VerifyMembership(prefix ibc.CommitmentPrefix, proof ibc.CommitmentProofBytes,
	root ibc.CommitmentRoot, path ibc.Path, value []byte) error {
	rootHash, err := commitmentRootHash(root)
	if err != nil {
		return err
	}

	decoded, err := DecodeProof(proof)
	if err != nil {
		return err
	}

	childRoot, err := ProveChildRoot(rootHash, decoded.ChildTrieRootProof, prefix)
	if err != nil {
		return err
	}

	return ProveLeaf(childRoot, decoded.ChildTrieProof, prefix.Key(path), value)
}

// VerifyNonMembership verifies that the counterparty chain stores nothing
// under the standardised path. Both the child storage key and the full store
// key must be proven absent from the main trie.
func VerifyNonMembership(prefix ibc.CommitmentPrefix, proof ibc.CommitmentProofBytes,
	root ibc.CommitmentRoot, path ibc.Path) error {
	rootHash, err := commitmentRootHash(root)
	if err != nil {
		return err
	}

	decoded, err := DecodeProof(proof)
	if err != nil {
		return err
	}

	if err := ProveAbsence(rootHash, decoded.ChildTrieRootProof, trie.ChildStorageKey(prefix)); err != nil {
		return fmt.Errorf("child trie root: %w", err)
	}
	if err := ProveAbsence(rootHash, decoded.ChildTrieProof, prefix.Key(path)); err != nil {
		return fmt.Errorf("child trie: %w", err)
	}
	return nil
}

func commitmentRootHash(root ibc.CommitmentRoot) (common.Hash, error) {
	if len(root) != 32 {
		return common.Hash{}, fmt.Errorf("%w: %d bytes", ErrInvalidRootLength, len(root))
	}
	return common.NewHash(root), nil
}

// Copyright 2024 Composable Finance
// SPDX-License-Identifier: Apache-2.0

// Package trie reconstructs partial state tries from merkle proofs and
// resolves key lookups against them.
package trie

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ChainSafe/gossamer/lib/common"
	log "github.com/ChainSafe/log15"
	"golang.org/x/crypto/blake2b"
)

var logger = log.New("lib", "trie")

var (
	// ErrRootNodeNotFound is returned when the proof holds no node matching
	// the expected root hash
	ErrRootNodeNotFound = errors.New("root node not found in proof")

	// ErrIncompleteProof is returned when a lookup traverses a node reference
	// the proof does not contain. Neither presence nor absence is proven.
	ErrIncompleteProof = errors.New("incomplete proof")
)

// ProofTrie is a partial trie reconstructed from proof nodes, indexed by
// their merkle values.
type ProofTrie struct {
	root  common.Hash
	nodes map[common.Hash][]byte
}

// LoadProof indexes the encoded proof nodes by their blake2b digest and
// verifies the root node is among them. Node order in the proof is
// irrelevant.
func LoadProof(rootHash common.Hash, encodedProofNodes [][]byte) (*ProofTrie, error) {
	nodes := make(map[common.Hash][]byte, len(encodedProofNodes))
	for _, encoding := range encodedProofNodes {
		copied := make([]byte, len(encoding))
		copy(copied, encoding)
		nodes[common.Hash(blake2b.Sum256(copied))] = copied
	}

	if _, ok := nodes[rootHash]; !ok {
		logger.Debug("proof does not contain root node", "root", rootHash)
		return nil, fmt.Errorf("%w: for root hash 0x%x in proof of %d nodes",
			ErrRootNodeNotFound, rootHash, len(encodedProofNodes))
	}

	return &ProofTrie{
		root:  rootHash,
		nodes: nodes,
	}, nil
}

// Get resolves the little endian key against the partial trie.
// A nil value with a nil error means the proof shows the key is absent.
// ErrIncompleteProof is returned when the lookup cannot be resolved with the
// nodes at hand, in which case nothing is proven.
func (pt *ProofTrie) Get(keyLE []byte) (value []byte, err error) {
	return pt.get(pt.root[:], KeyLEToNibbles(keyLE))
}

func (pt *ProofTrie) get(merkleValue, key []byte) (value []byte, err error) {
	encoding, err := pt.nodeEncoding(merkleValue)
	if err != nil {
		return nil, err
	}

	n, err := decodeNode(encoding)
	if err != nil {
		return nil, fmt.Errorf("decoding proof node: %w", err)
	}

	if !n.branch {
		if bytes.Equal(n.partialKey, key) {
			return n.value, nil
		}
		// reached a leaf with a diverging key; the key is proven absent
		return nil, nil
	}

	if len(key) < len(n.partialKey) || !bytes.Equal(key[:len(n.partialKey)], n.partialKey) {
		return nil, nil
	}

	if len(key) == len(n.partialKey) {
		if !n.hasValue {
			return nil, nil
		}
		return n.value, nil
	}

	childMerkleValue := n.children[key[len(n.partialKey)]]
	if childMerkleValue == nil {
		return nil, nil
	}

	return pt.get(childMerkleValue, key[len(n.partialKey)+1:])
}

// nodeEncoding resolves a merkle value to a node encoding. Merkle values
// shorter than 32 bytes are inline encodings; the rest are digests the proof
// must contain.
func (pt *ProofTrie) nodeEncoding(merkleValue []byte) ([]byte, error) {
	if len(merkleValue) < 32 {
		return merkleValue, nil
	}

	encoding, ok := pt.nodes[common.NewHash(merkleValue)]
	if !ok {
		return nil, fmt.Errorf("%w: node 0x%x not in proof", ErrIncompleteProof, merkleValue)
	}
	return encoding, nil
}

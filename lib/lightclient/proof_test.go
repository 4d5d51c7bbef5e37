// Copyright 2024 Composable Finance
// SPDX-License-Identifier: Apache-2.0

package lightclient

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/ComposableFi/go-grandpa-light-client/lib/ibc"
	"github.com/ComposableFi/go-grandpa-light-client/lib/trie"
)

// newMembershipFixture builds a commitment root and proof for a child trie
// holding a single leaf at the prefixed path, with the child trie's root
// committed in a single leaf main trie.
func newMembershipFixture(t *testing.T, prefix ibc.CommitmentPrefix, path ibc.Path,
	value []byte) (ibc.CommitmentRoot, ibc.CommitmentProofBytes) {
	t.Helper()

	childLeaf, err := trie.EncodeLeaf(trie.KeyLEToNibbles(prefix.Key(path)), value)
	require.NoError(t, err)
	childRoot := trie.MerkleValueRoot(childLeaf)

	mainLeaf, err := trie.EncodeLeaf(trie.KeyLEToNibbles(trie.ChildStorageKey(prefix)), childRoot[:])
	require.NoError(t, err)
	mainRoot := trie.MerkleValueRoot(mainLeaf)

	proof := Proof{
		ChildTrieProof:     [][]byte{childLeaf},
		ChildTrieRootProof: [][]byte{mainLeaf},
	}
	encoded, err := proof.Encode()
	require.NoError(t, err)

	return mainRoot[:], encoded
}

// newAbsenceFixture builds a commitment root and proof for a main trie whose
// only leaf is unrelated to the prefix, proving both the child trie and the
// prefixed path absent.
func newAbsenceFixture(t *testing.T) (ibc.CommitmentRoot, ibc.CommitmentProofBytes) {
	t.Helper()

	mainLeaf, err := trie.EncodeLeaf(trie.KeyLEToNibbles([]byte(":unrelated storage key")), []byte("unrelated"))
	require.NoError(t, err)
	mainRoot := trie.MerkleValueRoot(mainLeaf)

	proof := Proof{
		ChildTrieProof:     [][]byte{mainLeaf},
		ChildTrieRootProof: [][]byte{mainLeaf},
	}
	encoded, err := proof.Encode()
	require.NoError(t, err)

	return mainRoot[:], encoded
}

var testPrefix = ibc.CommitmentPrefix("ibc/")

func TestVerifyMembership(t *testing.T) {
	t.Parallel()

	path := ibc.ConnectionPath{ConnectionID: "connection-0"}
	value := []byte("connection end bytes")
	root, proof := newMembershipFixture(t, testPrefix, path, value)

	err := VerifyMembership(testPrefix, proof, root, path, value)
	require.NoError(t, err)

	t.Run("value mismatch", func(t *testing.T) {
		t.Parallel()
		err := VerifyMembership(testPrefix, proof, root, path, []byte("other bytes"))
		require.ErrorIs(t, err, ErrVerificationFailed)
	})

	t.Run("wrong path", func(t *testing.T) {
		t.Parallel()
		otherPath := ibc.ConnectionPath{ConnectionID: "connection-1"}
		err := VerifyMembership(testPrefix, proof, root, otherPath, value)
		require.ErrorIs(t, err, ErrVerificationFailed)
	})

	t.Run("present key is not absent", func(t *testing.T) {
		t.Parallel()
		err := VerifyNonMembership(testPrefix, proof, root, path)
		require.ErrorIs(t, err, ErrVerificationFailed)
	})

	t.Run("wrong root", func(t *testing.T) {
		t.Parallel()
		otherRoot := make([]byte, 32)
		err := VerifyMembership(testPrefix, proof, otherRoot, path, value)
		require.ErrorIs(t, err, ErrVerificationFailed)
	})
}

func TestVerifyNonMembership(t *testing.T) {
	t.Parallel()

	path := ibc.ReceiptPath{PortID: "transfer", ChannelID: "channel-0", Sequence: 1}
	root, proof := newAbsenceFixture(t)

	err := VerifyNonMembership(testPrefix, proof, root, path)
	require.NoError(t, err)

	t.Run("absent key is not present", func(t *testing.T) {
		t.Parallel()
		err := VerifyMembership(testPrefix, proof, root, path, []byte("receipt"))
		require.ErrorIs(t, err, ErrVerificationFailed)
	})
}

func TestProveChildRootLength(t *testing.T) {
	t.Parallel()

	// a 16 byte value under the child storage key is not a valid trie root
	mainLeaf, err := trie.EncodeLeaf(
		trie.KeyLEToNibbles(trie.ChildStorageKey(testPrefix)), make([]byte, 16))
	require.NoError(t, err)
	mainRoot := trie.MerkleValueRoot(mainLeaf)

	_, err = ProveChildRoot(mainRoot, [][]byte{mainLeaf}, testPrefix)
	require.ErrorIs(t, err, ErrInvalidRootLength)
}

func TestProveChildRootNotFound(t *testing.T) {
	t.Parallel()

	mainLeaf, err := trie.EncodeLeaf(
		trie.KeyLEToNibbles([]byte(":unrelated storage key")), []byte("unrelated"))
	require.NoError(t, err)

	_, err = ProveChildRoot(trie.MerkleValueRoot(mainLeaf), [][]byte{mainLeaf}, testPrefix)
	require.ErrorIs(t, err, ErrVerificationFailed)
}

func TestCommitmentRootLength(t *testing.T) {
	t.Parallel()

	path := ibc.ConnectionPath{ConnectionID: "connection-0"}
	err := VerifyMembership(testPrefix, nil, make([]byte, 31), path, nil)
	require.ErrorIs(t, err, ErrInvalidRootLength)
}

func TestDecodeProof(t *testing.T) {
	t.Parallel()

	proof := Proof{
		ChildTrieProof:     [][]byte{{1, 2, 3}},
		ChildTrieRootProof: [][]byte{{4, 5}, {6}},
	}
	encoded, err := proof.Encode()
	require.NoError(t, err)

	decoded, err := DecodeProof(encoded)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(proof, decoded))

	t.Run("trailing bytes", func(t *testing.T) {
		t.Parallel()
		_, err := DecodeProof(append(encoded, 0x00))
		require.ErrorIs(t, err, ErrProofDecode)
	})

	t.Run("garbage", func(t *testing.T) {
		t.Parallel()
		_, err := DecodeProof([]byte{0xff})
		require.ErrorIs(t, err, ErrProofDecode)
	})
}

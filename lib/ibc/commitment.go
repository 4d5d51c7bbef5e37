// Copyright 2024 Composable Finance
// SPDX-License-Identifier: Apache-2.0

package ibc

// CommitmentPrefix is the store prefix of the counterparty chain, prepended
// to every path before keying into its state trie. For parachains it doubles
// as the child trie identifier.
type CommitmentPrefix []byte

// CommitmentRoot is an opaque state root a proof is verified against
type CommitmentRoot []byte

// CommitmentProofBytes is an encoded merkle proof
type CommitmentProofBytes []byte

// Key returns the full store key for the given path: prefix || path bytes
func (p CommitmentPrefix) Key(path Path) []byte {
	pathBytes := []byte(path.String())
	key := make([]byte, 0, len(p)+len(pathBytes))
	key = append(key, p...)
	key = append(key, pathBytes...)
	return key
}

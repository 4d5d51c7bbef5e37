// Copyright 2024 Composable Finance
// SPDX-License-Identifier: Apache-2.0

package trie

// ChildStorageKeyPrefix is the prefix of all child trie storage keys in the
// main trie
var ChildStorageKeyPrefix = []byte(":child_storage:default:")

// ChildStorageKey returns the main trie key under which the given child
// trie's root is stored.
func ChildStorageKey(childInfo []byte) []byte {
	key := make([]byte, 0, len(ChildStorageKeyPrefix)+len(childInfo))
	key = append(key, ChildStorageKeyPrefix...)
	key = append(key, childInfo...)
	return key
}

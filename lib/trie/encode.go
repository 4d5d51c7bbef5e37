// Copyright 2024 Composable Finance
// SPDX-License-Identifier: Apache-2.0

package trie

import (
	"bytes"
	"fmt"

	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/ChainSafe/gossamer/pkg/scale"
	"golang.org/x/crypto/blake2b"
)

// EncodeLeaf encodes a leaf node from its partial key nibbles and value.
func EncodeLeaf(partialKey, value []byte) ([]byte, error) {
	buffer := bytes.NewBuffer(nil)
	encodeHeader(buffer, leafVariant, len(partialKey))
	buffer.Write(NibblesToKeyLE(partialKey))

	encodedValue, err := scale.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("scale encoding value: %w", err)
	}
	buffer.Write(encodedValue)

	return buffer.Bytes(), nil
}

// EncodeBranch encodes a branch node from its partial key nibbles, optional
// value and child merkle values. A nil child merkle value means no child at
// that index.
func EncodeBranch(partialKey, value []byte, hasValue bool, children [16][]byte) ([]byte, error) {
	variant := branchVariant
	if hasValue {
		variant = branchWithValueVariant
	}

	buffer := bytes.NewBuffer(nil)
	encodeHeader(buffer, variant, len(partialKey))
	buffer.Write(NibblesToKeyLE(partialKey))

	var childrenBitmap [2]byte
	for i := range children {
		if children[i] != nil {
			childrenBitmap[i/8] |= 1 << (i % 8)
		}
	}
	buffer.Write(childrenBitmap[:])

	if hasValue {
		encodedValue, err := scale.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("scale encoding value: %w", err)
		}
		buffer.Write(encodedValue)
	}

	for i := range children {
		if children[i] == nil {
			continue
		}
		encodedChild, err := scale.Marshal(children[i])
		if err != nil {
			return nil, fmt.Errorf("scale encoding child %d merkle value: %w", i, err)
		}
		buffer.Write(encodedChild)
	}

	return buffer.Bytes(), nil
}

// encodeHeader writes the variant and partial key length header bytes.
func encodeHeader(buffer *bytes.Buffer, variant byte, keyLength int) {
	if keyLength < int(partialKeyLengthMask) {
		buffer.WriteByte(variant<<6 | byte(keyLength))
		return
	}

	buffer.WriteByte(variant<<6 | partialKeyLengthMask)
	remaining := keyLength - int(partialKeyLengthMask)
	for remaining >= 255 {
		buffer.WriteByte(255)
		remaining -= 255
	}
	buffer.WriteByte(byte(remaining))
}

// MerkleValue returns the merkle value of a node encoding: the encoding
// itself when shorter than 32 bytes, its blake2b digest otherwise.
func MerkleValue(encoding []byte) []byte {
	if len(encoding) < 32 {
		return encoding
	}
	digest := blake2b.Sum256(encoding)
	return digest[:]
}

// MerkleValueRoot returns the merkle value of a root node encoding, which is
// always the blake2b digest regardless of the encoding length.
func MerkleValueRoot(encoding []byte) common.Hash {
	return common.Hash(blake2b.Sum256(encoding))
}

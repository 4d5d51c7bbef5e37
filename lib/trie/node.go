// Copyright 2024 Composable Finance
// SPDX-License-Identifier: Apache-2.0

package trie

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ChainSafe/gossamer/pkg/scale"
)

const (
	leafVariant            = byte(0b01)
	branchVariant          = byte(0b10)
	branchWithValueVariant = byte(0b11)
)

// partialKeyLengthMask covers the key length bits of the header byte
const partialKeyLengthMask = byte(0b0011_1111)

var (
	// ErrDecodeNode is returned when a node encoding is malformed
	ErrDecodeNode = errors.New("cannot decode node")

	errUnknownNodeVariant = errors.New("unknown node variant")
)

// node is a decoded trie node. Children hold the merkle values of the
// subtries, which are either blake2b digests or inline encodings when the
// child encoding is shorter than 32 bytes.
type node struct {
	partialKey []byte // nibbles
	value      []byte
	hasValue   bool
	children   [16][]byte
	branch     bool
}

// decodeNode decodes a trie node from its encoding.
func decodeNode(data []byte) (*node, error) {
	reader := bytes.NewReader(data)

	header, err := reader.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("%w: reading header byte: %s", ErrDecodeNode, err)
	}

	variant := header >> 6
	keyLength, err := decodeKeyLength(reader, header)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDecodeNode, err)
	}

	partialKey, err := decodeKey(reader, keyLength)
	if err != nil {
		return nil, fmt.Errorf("%w: reading partial key: %s", ErrDecodeNode, err)
	}

	switch variant {
	case leafVariant:
		return decodeLeafBody(reader, partialKey)
	case branchVariant, branchWithValueVariant:
		return decodeBranchBody(reader, partialKey, variant == branchWithValueVariant)
	default:
		return nil, fmt.Errorf("%w: %s: %d", ErrDecodeNode, errUnknownNodeVariant, variant)
	}
}

// decodeKeyLength reads the partial key length from the header byte and its
// continuation bytes, if any.
func decodeKeyLength(reader *bytes.Reader, header byte) (int, error) {
	keyLength := int(header & partialKeyLengthMask)
	if keyLength < int(partialKeyLengthMask) {
		return keyLength, nil
	}

	for {
		b, err := reader.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("reading key length: %w", err)
		}
		keyLength += int(b)
		if b < 255 {
			break
		}
	}
	return keyLength, nil
}

// decodeKey reads keyLength nibbles from the reader, skipping the padding
// nibble when the length is odd.
func decodeKey(reader *bytes.Reader, keyLength int) ([]byte, error) {
	if keyLength == 0 {
		return []byte{}, nil
	}

	key := make([]byte, keyLength/2+keyLength%2)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, err
	}

	return KeyLEToNibbles(key)[keyLength%2:], nil
}

func decodeLeafBody(reader *bytes.Reader, partialKey []byte) (*node, error) {
	var value []byte
	if err := scale.NewDecoder(reader).Decode(&value); err != nil {
		return nil, fmt.Errorf("%w: reading leaf value: %s", ErrDecodeNode, err)
	}
	if value == nil {
		value = []byte{}
	}
	return &node{
		partialKey: partialKey,
		value:      value,
		hasValue:   true,
	}, nil
}

func decodeBranchBody(reader *bytes.Reader, partialKey []byte, hasValue bool) (*node, error) {
	var childrenBitmap [2]byte
	if _, err := io.ReadFull(reader, childrenBitmap[:]); err != nil {
		return nil, fmt.Errorf("%w: reading children bitmap: %s", ErrDecodeNode, err)
	}

	n := &node{
		partialKey: partialKey,
		branch:     true,
		hasValue:   hasValue,
	}

	decoder := scale.NewDecoder(reader)
	if hasValue {
		var value []byte
		if err := decoder.Decode(&value); err != nil {
			return nil, fmt.Errorf("%w: reading branch value: %s", ErrDecodeNode, err)
		}
		if value == nil {
			value = []byte{}
		}
		n.value = value
	}

	for i := 0; i < 16; i++ {
		if childrenBitmap[i/8]>>(i%8)&1 != 1 {
			continue
		}
		var childMerkleValue []byte
		if err := decoder.Decode(&childMerkleValue); err != nil {
			return nil, fmt.Errorf("%w: reading child %d merkle value: %s", ErrDecodeNode, i, err)
		}
		n.children[i] = childMerkleValue
	}

	return n, nil
}

// Copyright 2024 Composable Finance
// SPDX-License-Identifier: Apache-2.0

package ibc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidIdentifier is returned when an identifier violates the host
// naming rules
var ErrInvalidIdentifier = errors.New("invalid identifier")

// ClientID identifies a client on the host chain
type ClientID string

// ConnectionID identifies a connection end on the host chain
type ConnectionID string

// ChannelID identifies a channel end on a port
type ChannelID string

// PortID identifies a port on the host chain
type PortID string

// Sequence is a packet sequence number
type Sequence uint64

// Validate checks the client identifier against the host rules
func (id ClientID) Validate() error {
	return validateIdentifier(string(id), 9, 64)
}

// Validate checks the connection identifier against the host rules
func (id ConnectionID) Validate() error {
	return validateIdentifier(string(id), 10, 64)
}

// Validate checks the channel identifier against the host rules
func (id ChannelID) Validate() error {
	return validateIdentifier(string(id), 8, 64)
}

// Validate checks the port identifier against the host rules
func (id PortID) Validate() error {
	return validateIdentifier(string(id), 2, 128)
}

const validIdentifierChars = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789._+-#[]<>"

// validateIdentifier enforces the ICS24 identifier rules: length bounds and
// a restricted character set, with no separator character.
func validateIdentifier(id string, minLength, maxLength int) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: identifier cannot be blank", ErrInvalidIdentifier)
	}
	if len(id) < minLength || len(id) > maxLength {
		return fmt.Errorf("%w: identifier %s has length %d, expected between %d and %d",
			ErrInvalidIdentifier, id, len(id), minLength, maxLength)
	}
	if strings.Contains(id, "/") {
		return fmt.Errorf("%w: identifier %s cannot contain separator '/'",
			ErrInvalidIdentifier, id)
	}
	for _, c := range id {
		if !strings.ContainsRune(validIdentifierChars, c) {
			return fmt.Errorf("%w: identifier %s contains invalid character %q",
				ErrInvalidIdentifier, id, c)
		}
	}
	return nil
}

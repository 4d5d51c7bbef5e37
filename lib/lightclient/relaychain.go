// Copyright 2024 Composable Finance
// SPDX-License-Identifier: Apache-2.0

package lightclient

import (
	"fmt"
	"strings"
	"time"
)

// RelayChain identifies the relay chain a client tracks. The unbonding
// period of its staking system bounds how long a consensus state may be
// trusted.
type RelayChain uint8

const (
	// Polkadot relay chain
	Polkadot RelayChain = iota
	// Kusama relay chain
	Kusama
	// Rococo test relay chain
	Rococo
)

const day = 24 * time.Hour

// String returns the relay chain name
func (rc RelayChain) String() string {
	switch rc {
	case Polkadot:
		return "Polkadot"
	case Kusama:
		return "Kusama"
	case Rococo:
		return "Rococo"
	}
	return "unknown"
}

// RelayChainFromString parses a relay chain name, case insensitively
func RelayChainFromString(s string) (RelayChain, error) {
	switch strings.ToLower(s) {
	case "polkadot":
		return Polkadot, nil
	case "kusama":
		return Kusama, nil
	case "rococo":
		return Rococo, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownRelayChain, s)
}

// UnbondingPeriod returns the staking unbonding period of the relay chain
func (rc RelayChain) UnbondingPeriod() time.Duration {
	switch rc {
	case Polkadot:
		return 28 * day
	default:
		return 7 * day
	}
}

// TrustingPeriod returns how long a consensus state may be relied upon,
// one third of the unbonding period.
func (rc RelayChain) TrustingPeriod() time.Duration {
	return rc.UnbondingPeriod() / 3
}

// Copyright 2024 Composable Finance
// SPDX-License-Identifier: Apache-2.0

package ibc

import "time"

// ConnectionState is the state of a connection end
type ConnectionState uint8

const (
	// ConnectionUninitialized is the default connection state
	ConnectionUninitialized ConnectionState = iota
	// ConnectionInit is the state after a connection open attempt
	ConnectionInit
	// ConnectionTryOpen is the state after acknowledging an open attempt
	ConnectionTryOpen
	// ConnectionOpen is the state of an operational connection
	ConnectionOpen
)

// ConnectionCounterparty describes the remote end of a connection
type ConnectionCounterparty struct {
	ClientID     ClientID
	ConnectionID ConnectionID
	Prefix       CommitmentPrefix
}

// ConnectionEnd describes one end of a connection between two chains
type ConnectionEnd struct {
	State        ConnectionState
	ClientID     ClientID
	Counterparty ConnectionCounterparty
	// DelayPeriod is how long a consensus state must have been stored before
	// packets relying on it may be processed
	DelayPeriod time.Duration
}

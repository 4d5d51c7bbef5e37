// Copyright 2024 Composable Finance
// SPDX-License-Identifier: Apache-2.0

package ibc

// ChannelState is the state of a channel end
type ChannelState uint8

const (
	// ChannelUninitialized is the default channel state
	ChannelUninitialized ChannelState = iota
	// ChannelInit is the state after a channel open attempt
	ChannelInit
	// ChannelTryOpen is the state after acknowledging an open attempt
	ChannelTryOpen
	// ChannelOpen is the state of an operational channel
	ChannelOpen
	// ChannelClosed is the state of a closed channel
	ChannelClosed
)

// ChannelOrdering restricts the order in which packets may be processed
type ChannelOrdering uint8

const (
	// OrderingNone means no ordering restrictions
	OrderingNone ChannelOrdering = iota
	// OrderingUnordered means packets may be processed in any order
	OrderingUnordered
	// OrderingOrdered means packets are processed in the order they were sent
	OrderingOrdered
)

// ChannelCounterparty describes the remote end of a channel
type ChannelCounterparty struct {
	PortID    PortID
	ChannelID ChannelID
}

// ChannelEnd describes one end of a channel between two modules
type ChannelEnd struct {
	State          ChannelState
	Ordering       ChannelOrdering
	Counterparty   ChannelCounterparty
	ConnectionHops []ConnectionID
	Version        string
}

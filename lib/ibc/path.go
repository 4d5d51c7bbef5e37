// Copyright 2024 Composable Finance
// SPDX-License-Identifier: Apache-2.0

package ibc

import "fmt"

// Path is a standardised key under which a protocol artifact is stored on
// the counterparty chain. Each path kind renders to a distinct fixed layout,
// so two different artifacts can never collide on the same key.
type Path interface {
	String() string
}

// ClientStatePath is the path under which the client state is stored
type ClientStatePath struct {
	ClientID ClientID
}

func (p ClientStatePath) String() string {
	return fmt.Sprintf("clients/%s/clientState", p.ClientID)
}

// ClientConsensusStatePath is the path under which the consensus state of a
// client at a given epoch and height is stored
type ClientConsensusStatePath struct {
	ClientID ClientID
	Epoch    uint64
	Height   uint64
}

func (p ClientConsensusStatePath) String() string {
	return fmt.Sprintf("clients/%s/consensusStates/%d-%d", p.ClientID, p.Epoch, p.Height)
}

// ConnectionPath is the path under which a connection end is stored
type ConnectionPath struct {
	ConnectionID ConnectionID
}

func (p ConnectionPath) String() string {
	return fmt.Sprintf("connections/%s", p.ConnectionID)
}

// ChannelEndPath is the path under which a channel end is stored
type ChannelEndPath struct {
	PortID    PortID
	ChannelID ChannelID
}

func (p ChannelEndPath) String() string {
	return fmt.Sprintf("channelEnds/ports/%s/channels/%s", p.PortID, p.ChannelID)
}

// CommitmentPath is the path under which a packet commitment is stored
type CommitmentPath struct {
	PortID    PortID
	ChannelID ChannelID
	Sequence  Sequence
}

func (p CommitmentPath) String() string {
	return fmt.Sprintf("commitments/ports/%s/channels/%s/sequences/%d",
		p.PortID, p.ChannelID, p.Sequence)
}

// AckPath is the path under which a packet acknowledgement is stored
type AckPath struct {
	PortID    PortID
	ChannelID ChannelID
	Sequence  Sequence
}

func (p AckPath) String() string {
	return fmt.Sprintf("acks/ports/%s/channels/%s/sequences/%d",
		p.PortID, p.ChannelID, p.Sequence)
}

// ReceiptPath is the path under which a packet receipt is stored
type ReceiptPath struct {
	PortID    PortID
	ChannelID ChannelID
	Sequence  Sequence
}

func (p ReceiptPath) String() string {
	return fmt.Sprintf("receipts/ports/%s/channels/%s/sequences/%d",
		p.PortID, p.ChannelID, p.Sequence)
}

// SeqRecvPath is the path under which the next expected receive sequence of
// a channel is stored
type SeqRecvPath struct {
	PortID    PortID
	ChannelID ChannelID
}

func (p SeqRecvPath) String() string {
	return fmt.Sprintf("nextSequenceRecv/ports/%s/channels/%s", p.PortID, p.ChannelID)
}

// Copyright 2024 Composable Finance
// SPDX-License-Identifier: Apache-2.0

package lightclient

import (
	"fmt"
	"time"

	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/ChainSafe/gossamer/pkg/scale"

	"github.com/ComposableFi/go-grandpa-light-client/lib/grandpa"
	"github.com/ComposableFi/go-grandpa-light-client/lib/ibc"
)

// ClientState tracks a parachain finalized through the relay chain's GRANDPA
// protocol. Heights are revision qualified by the para id.
type ClientState struct {
	// LatestRelayHash is the hash of the latest finalized relay chain block
	LatestRelayHash common.Hash
	// LatestRelayHeight is the number of the latest finalized relay chain block
	LatestRelayHeight uint32
	// CurrentSetID is the id of the current GRANDPA authority set
	CurrentSetID uint64
	// CurrentAuthorities is the current GRANDPA authority set
	CurrentAuthorities grandpa.AuthorityList
	// ParaID is the id of the tracked parachain
	ParaID uint32
	// LatestParaHeight is the latest finalized parachain height
	LatestParaHeight uint32
	// FrozenHeight is set when misbehaviour freezes the client
	FrozenHeight *ibc.Height
	// RelayChain bounds the trusting period of consensus states
	RelayChain RelayChain
}

// ConsensusState is the commitment root and timestamp of the parachain at a
// verified height.
type ConsensusState struct {
	Timestamp time.Time
	Root      ibc.CommitmentRoot
}

// LatestHeight returns the latest verified parachain height, revision
// qualified by the para id.
func (cs *ClientState) LatestHeight() ibc.Height {
	return ibc.NewHeight(uint64(cs.ParaID), uint64(cs.LatestParaHeight))
}

// IsFrozen returns whether the client has been frozen for misbehaviour
func (cs *ClientState) IsFrozen() bool {
	return cs.FrozenHeight != nil
}

// Expired returns whether the latest consensus state is past the trusting
// period at the given time.
func (cs *ClientState) Expired(latestTimestamp, now time.Time) bool {
	return now.Sub(latestTimestamp) > cs.RelayChain.TrustingPeriod()
}

// VerifyExpiry checks the latest consensus state is still within the trusting
// period. Expired clients must not accept updates or serve proofs.
func (cs *ClientState) VerifyExpiry(latestTimestamp, now time.Time) error {
	if cs.Expired(latestTimestamp, now) {
		return fmt.Errorf("%w: latest consensus state from %s is outside the %s trusting period",
			ErrClientExpired, latestTimestamp, cs.RelayChain.TrustingPeriod())
	}
	return nil
}

// VerifyHeight checks the client can serve proofs for the given height:
// the height must be verified already and below any freeze point.
func (cs *ClientState) VerifyHeight(height ibc.Height) error {
	if cs.LatestHeight().LT(height) {
		return fmt.Errorf("%w: latest height %s is lower than %s",
			ErrInsufficientHeight, cs.LatestHeight(), height)
	}
	if cs.FrozenHeight != nil && height.GTE(*cs.FrozenHeight) {
		return fmt.Errorf("%w: at height %s", ErrClientFrozen, *cs.FrozenHeight)
	}
	return nil
}

// VerifyClientFullState verifies a proof of the client state stored for the
// given counterparty client.
func (cs *ClientState) VerifyClientFullState(height ibc.Height, prefix ibc.CommitmentPrefix,
	proof ibc.CommitmentProofBytes, root ibc.CommitmentRoot,
	clientID ibc.ClientID, encodedClientState []byte) error {
	if err := cs.VerifyHeight(height); err != nil {
		return err
	}
	path := ibc.ClientStatePath{ClientID: clientID}
	return VerifyMembership(prefix, proof, root, path, encodedClientState)
}

// VerifyClientConsensusState verifies a proof of the consensus state stored
// for the given counterparty client at the given consensus height.
func (cs *ClientState) VerifyClientConsensusState(height ibc.Height, prefix ibc.CommitmentPrefix,
	proof ibc.CommitmentProofBytes, root ibc.CommitmentRoot,
	clientID ibc.ClientID, consensusHeight ibc.Height, encodedConsensusState []byte) error {
	if err := cs.VerifyHeight(height); err != nil {
		return err
	}
	path := ibc.ClientConsensusStatePath{
		ClientID: clientID,
		Epoch:    consensusHeight.RevisionNumber,
		Height:   consensusHeight.RevisionHeight,
	}
	return VerifyMembership(prefix, proof, root, path, encodedConsensusState)
}

// VerifyConnectionState verifies a proof of the connection end stored under
// the given connection identifier.
func (cs *ClientState) VerifyConnectionState(height ibc.Height, prefix ibc.CommitmentPrefix,
	proof ibc.CommitmentProofBytes, root ibc.CommitmentRoot,
	connectionID ibc.ConnectionID, encodedConnectionEnd []byte) error {
	if err := cs.VerifyHeight(height); err != nil {
		return err
	}
	path := ibc.ConnectionPath{ConnectionID: connectionID}
	return VerifyMembership(prefix, proof, root, path, encodedConnectionEnd)
}

// VerifyChannelState verifies a proof of the channel end stored under the
// given port and channel identifiers.
func (cs *ClientState) VerifyChannelState(height ibc.Height, prefix ibc.CommitmentPrefix,
	proof ibc.CommitmentProofBytes, root ibc.CommitmentRoot,
	portID ibc.PortID, channelID ibc.ChannelID, encodedChannelEnd []byte) error {
	if err := cs.VerifyHeight(height); err != nil {
		return err
	}
	path := ibc.ChannelEndPath{PortID: portID, ChannelID: channelID}
	return VerifyMembership(prefix, proof, root, path, encodedChannelEnd)
}

// VerifyPacketData verifies a proof of an outgoing packet commitment. The
// connection delay must have elapsed, and the proof is checked under the
// counterparty's store prefix.
func (cs *ClientState) VerifyPacketData(ctx ReaderContext, height ibc.Height,
	connectionEnd *ibc.ConnectionEnd, proof ibc.CommitmentProofBytes, root ibc.CommitmentRoot,
	portID ibc.PortID, channelID ibc.ChannelID, sequence ibc.Sequence, commitment []byte) error {
	if err := cs.VerifyHeight(height); err != nil {
		return err
	}
	if err := VerifyDelayPassed(ctx, height, connectionEnd); err != nil {
		return err
	}
	path := ibc.CommitmentPath{PortID: portID, ChannelID: channelID, Sequence: sequence}
	return VerifyMembership(connectionEnd.Counterparty.Prefix, proof, root, path, commitment)
}

// VerifyPacketAcknowledgement verifies a proof of the acknowledgement
// written for a received packet.
func (cs *ClientState) VerifyPacketAcknowledgement(ctx ReaderContext, height ibc.Height,
	connectionEnd *ibc.ConnectionEnd, proof ibc.CommitmentProofBytes, root ibc.CommitmentRoot,
	portID ibc.PortID, channelID ibc.ChannelID, sequence ibc.Sequence, ackCommitment []byte) error {
	if err := cs.VerifyHeight(height); err != nil {
		return err
	}
	if err := VerifyDelayPassed(ctx, height, connectionEnd); err != nil {
		return err
	}
	path := ibc.AckPath{PortID: portID, ChannelID: channelID, Sequence: sequence}
	return VerifyMembership(connectionEnd.Counterparty.Prefix, proof, root, path, ackCommitment)
}

// VerifyNextSequenceRecv verifies a proof of the next sequence number the
// counterparty expects to receive on the channel.
func (cs *ClientState) VerifyNextSequenceRecv(ctx ReaderContext, height ibc.Height,
	connectionEnd *ibc.ConnectionEnd, proof ibc.CommitmentProofBytes, root ibc.CommitmentRoot,
	portID ibc.PortID, channelID ibc.ChannelID, nextSequenceRecv ibc.Sequence) error {
	if err := cs.VerifyHeight(height); err != nil {
		return err
	}
	if err := VerifyDelayPassed(ctx, height, connectionEnd); err != nil {
		return err
	}
	encoded, err := scale.Marshal(uint64(nextSequenceRecv))
	if err != nil {
		return fmt.Errorf("cannot encode sequence: %w", err)
	}
	path := ibc.SeqRecvPath{PortID: portID, ChannelID: channelID}
	return VerifyMembership(connectionEnd.Counterparty.Prefix, proof, root, path, encoded)
}

// VerifyPacketReceiptAbsence verifies that the counterparty has not written
// a receipt for the packet, proving it was never received.
func (cs *ClientState) VerifyPacketReceiptAbsence(ctx ReaderContext, height ibc.Height,
	connectionEnd *ibc.ConnectionEnd, proof ibc.CommitmentProofBytes, root ibc.CommitmentRoot,
	portID ibc.PortID, channelID ibc.ChannelID, sequence ibc.Sequence) error {
	if err := cs.VerifyHeight(height); err != nil {
		return err
	}
	if err := VerifyDelayPassed(ctx, height, connectionEnd); err != nil {
		return err
	}
	path := ibc.ReceiptPath{PortID: portID, ChannelID: channelID, Sequence: sequence}
	return VerifyNonMembership(connectionEnd.Counterparty.Prefix, proof, root, path)
}

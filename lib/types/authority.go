// Copyright 2024 Composable Finance
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"fmt"

	"github.com/ChainSafe/gossamer/lib/crypto/ed25519"
)

// GrandpaAuthoritiesRaw represents a GRANDPA authority where their key is a byte array
type GrandpaAuthoritiesRaw struct {
	Key [ed25519.PublicKeyLength]byte
	ID  uint64
}

func (a GrandpaAuthoritiesRaw) String() string {
	return fmt.Sprintf("[key=0x%x id=%d]", a.Key, a.ID)
}

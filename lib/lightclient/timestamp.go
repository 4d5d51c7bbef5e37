// Copyright 2024 Composable Finance
// SPDX-License-Identifier: Apache-2.0

package lightclient

import (
	"bytes"
	"fmt"

	"github.com/ChainSafe/gossamer/pkg/scale"
)

// DecodeTimestampExtrinsic extracts the moment from a timestamp inherent.
// The timestamp inherent is always the first extrinsic in a block, so its
// bytes can be proven from the extrinsics trie at the key of index zero.
func DecodeTimestampExtrinsic(extrinsic []byte) (uint64, error) {
	// the call is preceded by the compact encoded extrinsic length and the
	// extrinsic version byte
	if len(extrinsic) < 2 {
		return 0, fmt.Errorf("%w: %d bytes", ErrTimestampExtrinsic, len(extrinsic))
	}

	decoder := scale.NewDecoder(bytes.NewReader(extrinsic[2:]))

	var palletIndex, callIndex uint8
	if err := decoder.Decode(&palletIndex); err != nil {
		return 0, fmt.Errorf("%w: reading pallet index: %s", ErrTimestampExtrinsic, err)
	}
	if err := decoder.Decode(&callIndex); err != nil {
		return 0, fmt.Errorf("%w: reading call index: %s", ErrTimestampExtrinsic, err)
	}

	var moment uint
	if err := decoder.Decode(&moment); err != nil {
		return 0, fmt.Errorf("%w: reading moment: %s", ErrTimestampExtrinsic, err)
	}

	return uint64(moment), nil
}

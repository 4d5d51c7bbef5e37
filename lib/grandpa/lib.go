// Copyright 2024 Composable Finance
// SPDX-License-Identifier: Apache-2.0

// Package grandpa verifies GRANDPA finality justifications against a known
// authority set, without running the voting protocol itself.
package grandpa

import (
	log "github.com/ChainSafe/log15"
)

var logger = log.New("lib", "grandpa")

// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package command defines the CLI command set for datactx. It wires flags,
// validators and actions for the subcommands.
package command

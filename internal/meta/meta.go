// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package meta

import (
	"context"

	"github.com/staranto/datactx/internal/config"
	"github.com/staranto/datactx/internal/store"
)

// Meta are the meta-options that are available on all commands. Store is the
// one record store shared by every command in the process.
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context
	Store   *store.Store
}

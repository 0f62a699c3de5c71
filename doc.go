// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// datactx is the main package for the datactx command line tool. It loads
// record datasets into an in-memory store and runs find/filter queries
// against them.
package main

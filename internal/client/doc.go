// SPDX-License-Identifier: Apache-2.0

// Package client implements the smoke-client application runtime.
//
// It wires the client services and console rendering into a single process
// lifecycle: authenticate, fetch one patient summary, print it, exit.
package client

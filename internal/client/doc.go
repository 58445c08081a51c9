// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It ties the console menu to the favorites and pairing services and owns
// the process lifecycle between startup wiring and exit.
package client

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package protocodec decodes the binary favorites list served by
// GET /api/favorites?format=proto.
//
// The wire schema mirrors proto/receitas.proto. It is compiled into
// descriptors at startup and registered in a private type registry; [New]
// resolves the message types by name and fails with [ErrSchemaUnavailable]
// when the decoder cannot be assembled. Callers treat that failure as fatal
// before any request is sent.
package protocodec

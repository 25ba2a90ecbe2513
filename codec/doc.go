// Package codec implements the wire format for a tds.TDS: a bit-exact,
// combinatorial-only serialization of its vertices, full cells, and
// their adjacency, driven through an opaque per-payload codec the
// caller supplies.
//
// What
//
//   - Payload is the collaborator contract a vertex or cell payload type
//     must satisfy to be written: stream itself out as bytes. Reading is
//     done by a caller-supplied Decoder that turns those bytes back into
//     a fresh value. The TDS (and this package) never inspect payload
//     contents.
//   - Write and Read implement a header/vertex/cell/neighbor framing, in
//     either textual (whitespace-separated tokens) or binary
//     (fixed-width counts, little-endian indices) mode. Mirror indices
//     are never written; Read reconstructs them by scanning each
//     neighbor's slots for the not-yet-linked one that points back.
//
// Why
//
//   - Keeping serialization a strict outside collaborator means the
//     wire format can evolve — or a caller can skip it entirely and use
//     tds.TDS purely in memory — without touching package tds itself.
//
// Errors
//
//   - Every malformed-stream condition (truncated input, an index
//     outside the just-declared count, an inconsistent header) is
//     reported as an error wrapping ErrMalformedStream via
//     github.com/pkg/errors, and Read leaves its target TDS Clear()ed
//     before returning one: no operation silently partially succeeds.
package codec

// Package nvim defines the boundary to the host editor's automation
// client and typed helpers layered over it.
//
// The host is treated as an opaque collaborator behind the Client
// interface: it owns the RPC transport, buffer storage, UI rendering,
// and plugin lifecycle. This package only names the calls the toolkit
// makes into it. Two guarantees are required of any implementation:
//
//   - Closures passed to Submit run strictly on the host's single
//     thread, in submission order.
//
//   - Line and mark queries return UTF-8-decodable byte sequences with
//     byte-accurate column offsets.
//
// # Coordinates
//
// The host's position conventions are irregular and are preserved here
// rather than papered over: mark rows are 1-indexed while mark columns
// are 0-indexed byte offsets, setpos columns are 1-indexed, and extmark
// rows are 0-indexed. Each method documents the convention it uses.
//
// # Implementations
//
// A production implementation wraps an RPC client connected to a live
// editor. The nvimtest package provides an in-memory implementation
// with a real serialized loop for tests.
package nvim

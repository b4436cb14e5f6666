// Package bridge marshals function calls across a synchronization
// boundary into a host editor's single-threaded callback queue.
//
// Neovim (and editors like it) serialize all state-mutating API calls
// onto one thread. Code running on any other goroutine must submit a
// closure to that thread and wait for its result. This package provides
// that plumbing in two flavors:
//
//   - Call: blocks the calling goroutine until the closure has run on
//     the loop and its result is available.
//
//   - CallContext: same marshaling, but the wait is context-aware so a
//     cooperative caller can abandon it. The submitted closure is never
//     retracted; cancellation only abandons the wait.
//
// # Result slots
//
// Both variants communicate through Slot, a single-assignment result
// cell. A slot accepts at most one effective completion; duplicate
// completion attempts are silently ignored rather than treated as an
// error, which tolerates duplicate completion signals from the host.
//
// # Deadlock contract
//
// Call must not be invoked from the loop goroutine itself: the blocking
// wait could then never be serviced. This is a documented contract, not
// a detected condition.
//
// # Error propagation
//
// An error returned by the target function crosses the boundary
// verbatim, with no wrapping or classification. A panic in the target
// function is recovered on the loop and surfaces as a *PanicError on
// the calling side.
package bridge

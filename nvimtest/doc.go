// Package nvimtest provides an in-memory fake host implementing
// nvim.Client for tests.
//
// The fake reproduces the two guarantees the toolkit requires of a
// real host: submitted closures run serialized in submission order,
// and line and mark queries use byte-accurate column offsets. By
// default submissions run on a dedicated loop goroutine; WithSyncLoop
// runs them inline in the caller for fully deterministic tests.
//
// # Strict mode
//
// With WithStrict, API methods fail when invoked from any goroutine
// other than the loop, which surfaces calls that forgot to go through
// the bridge.
//
// # Scripting
//
// Prompt answers are scripted with ScriptInput and ScriptConfirm;
// messages shown through Echo, OutWrite, and ErrWrite are captured and
// returned by Messages. ExecLua evaluates chunks on an embedded Lua
// interpreter, so code under test can exercise host-side scripting
// without a live editor.
package nvimtest

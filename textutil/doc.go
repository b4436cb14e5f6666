// Package textutil provides stateless text helpers shared by the
// toolkit: display-width measurement under a configurable tab size,
// byte-faithful encode/decode between the host's two recognized
// encoding forms, lossy re-encoding for sanitizing text, a generic
// stream-escaping transform, and indentation measurement.
//
// # Display width
//
// DisplayWidth follows the host's rendering rules rather than a strict
// wcwidth: tabs count as the full tab size, line breaks count as a
// two-column placeholder, and East Asian Wide and Neutral characters
// count as two columns. See DisplayWidth for details.
//
// # Encodings
//
// The host addresses buffer text by byte offset in one of two forms,
// UTF-8 or UTF-16 little-endian. Encoding is a closed enumeration of
// those two forms. Conversions are permissive: malformed sequences are
// carried through (UTF-8) or replaced (UTF-16LE), never reported as
// errors. Recode is the one deliberately lossy operation.
package textutil

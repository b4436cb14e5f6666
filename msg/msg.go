// Package msg writes user-facing messages through the host and times
// operations against a reporting threshold.
//
// Write and WriteErr must run on the host's loop; Awrite and AwriteErr
// marshal through the bridge so they are safe from any goroutine.
package msg

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/dshills/nvimkit/bridge"
	"github.com/dshills/nvimkit/nvim"
)

// Sep is the separator joining the values of a single message.
const Sep = " "

func join(vals []any) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprint(v)
	}
	return strings.TrimRightFunc(strings.Join(parts, Sep), unicode.IsSpace)
}

func write(c nvim.Client, isErr bool, vals []any) error {
	text := join(vals)
	has, err := c.Has("nvim-0.5")
	if err != nil {
		return err
	}
	if has {
		chunk := nvim.TextChunk{Text: text}
		if isErr {
			chunk.HLGroup = "ErrorMsg"
		}
		return c.Echo([]nvim.TextChunk{chunk}, true)
	}
	if isErr {
		return c.ErrWrite(text + "\n")
	}
	return c.OutWrite(text + "\n")
}

// Write shows vals joined by Sep as a plain message. It must be called
// on the host's loop.
func Write(c nvim.Client, vals ...any) error {
	return write(c, false, vals)
}

// WriteErr shows vals joined by Sep as an error-styled message. It
// must be called on the host's loop.
func WriteErr(c nvim.Client, vals ...any) error {
	return write(c, true, vals)
}

// Awrite is Write marshaled onto the host's loop, safe from any
// goroutine. Cancelling ctx abandons the wait; the message may still
// be shown.
func Awrite(ctx context.Context, c nvim.Client, vals ...any) error {
	return bridge.RunContext(ctx, c, func() error {
		return write(c, false, vals)
	})
}

// AwriteErr is WriteErr marshaled onto the host's loop.
func AwriteErr(ctx context.Context, c nvim.Client, vals ...any) error {
	return bridge.RunContext(ctx, c, func() error {
		return write(c, true, vals)
	})
}

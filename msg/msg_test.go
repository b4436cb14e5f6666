package msg

import (
	"context"
	"testing"
	"time"

	"github.com/dshills/nvimkit/nvimtest"
)

func TestWrite_ModernHost(t *testing.T) {
	h := nvimtest.New(nvimtest.WithSyncLoop())
	defer h.Close()

	if err := Write(h, "hello", "world", 42); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	msgs := h.Messages()
	if len(msgs) != 1 {
		t.Fatalf("captured %d messages, want 1", len(msgs))
	}
	if msgs[0].Text != "hello world 42" {
		t.Errorf("message = %q, want values joined by spaces", msgs[0].Text)
	}
	if msgs[0].Error {
		t.Error("plain message flagged as error")
	}
}

func TestWriteErr_ModernHost(t *testing.T) {
	h := nvimtest.New(nvimtest.WithSyncLoop())
	defer h.Close()

	if err := WriteErr(h, "broken"); err != nil {
		t.Fatalf("WriteErr() error = %v", err)
	}

	msgs := h.Messages()
	if len(msgs) != 1 || !msgs[0].Error {
		t.Fatalf("messages = %+v, want one error-styled message", msgs)
	}
}

func TestWrite_LegacyHost(t *testing.T) {
	h := nvimtest.New(nvimtest.WithSyncLoop(), nvimtest.WithFeature("nvim-0.5", false))
	defer h.Close()

	if err := Write(h, "old", "style"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := WriteErr(h, "old error"); err != nil {
		t.Fatalf("WriteErr() error = %v", err)
	}

	msgs := h.Messages()
	if len(msgs) != 2 {
		t.Fatalf("captured %d messages, want 2", len(msgs))
	}
	if msgs[0].Text != "old style" || msgs[0].Error {
		t.Errorf("first message = %+v, want plain 'old style'", msgs[0])
	}
	if msgs[1].Text != "old error" || !msgs[1].Error {
		t.Errorf("second message = %+v, want error-styled 'old error'", msgs[1])
	}
}

func TestWrite_TrimsTrailingWhitespace(t *testing.T) {
	h := nvimtest.New(nvimtest.WithSyncLoop())
	defer h.Close()

	if err := Write(h, "padded", "  "); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if got := h.Messages()[0].Text; got != "padded" {
		t.Errorf("message = %q, want trailing whitespace trimmed", got)
	}

	// All Unicode whitespace counts, vertical tab and form feed
	// included.
	if err := Write(h, "exotic\v\f  "); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if got := h.Messages()[1].Text; got != "exotic" {
		t.Errorf("message = %q, want all trailing whitespace trimmed", got)
	}
}

func TestAwrite_FromOffLoop(t *testing.T) {
	h := nvimtest.New(nvimtest.WithStrict())
	defer h.Close()

	// Direct Write is rejected off the loop; Awrite marshals through.
	if err := Write(h, "direct"); err == nil {
		t.Fatal("Write() off loop in strict mode should fail")
	}

	if err := Awrite(context.Background(), h, "marshaled"); err != nil {
		t.Fatalf("Awrite() error = %v", err)
	}
	if err := AwriteErr(context.Background(), h, "marshaled error"); err != nil {
		t.Fatalf("AwriteErr() error = %v", err)
	}

	msgs := h.Messages()
	if len(msgs) != 2 {
		t.Fatalf("captured %d messages, want 2", len(msgs))
	}
	if msgs[0].Text != "marshaled" || msgs[0].Error {
		t.Errorf("first message = %+v", msgs[0])
	}
	if msgs[1].Text != "marshaled error" || !msgs[1].Error {
		t.Errorf("second message = %+v", msgs[1])
	}
}

func TestBench_AboveThreshold(t *testing.T) {
	h := nvimtest.New(nvimtest.WithSyncLoop())
	defer h.Close()

	stop := Bench(h, time.Nanosecond, "slow", "op")
	time.Sleep(time.Millisecond)
	stop()

	msgs := h.Messages()
	if len(msgs) != 1 {
		t.Fatalf("captured %d messages, want 1", len(msgs))
	}
	if len(msgs[0].Text) <= len("slow op ") {
		t.Errorf("message %q should carry the elapsed seconds", msgs[0].Text)
	}
}

func TestBench_BelowThreshold(t *testing.T) {
	h := nvimtest.New(nvimtest.WithSyncLoop())
	defer h.Close()

	Bench(h, time.Hour, "fast")()

	if msgs := h.Messages(); len(msgs) != 0 {
		t.Errorf("captured %d messages, want silence below threshold", len(msgs))
	}
}

package nvimtest

import (
	"reflect"
	"testing"
)

func TestExecLua(t *testing.T) {
	h := New(WithSyncLoop())
	defer h.Close()

	tests := []struct {
		name string
		code string
		args []any
		want any
	}{
		{"number", "return 1 + 2", nil, int64(3)},
		{"float", "return 1.5", nil, 1.5},
		{"string", "return 'hi'", nil, "hi"},
		{"bool", "return true", nil, true},
		{"nil result", "local x = 1", nil, nil},
		{"varargs", "local a, b = ...; return a + b", []any{int64(40), int64(2)}, int64(42)},
		{"string arg", "local s = ...; return s .. '!'", []any{"ok"}, "ok!"},
		{"array result", "return {1, 2, 3}", nil, []any{int64(1), int64(2), int64(3)}},
		{
			"map result",
			"return {row = 3, col = 7}",
			nil,
			map[string]any{"row": int64(3), "col": int64(7)},
		},
		{
			"table arg round trip",
			"local t = ...; return t[2]",
			[]any{[]any{"a", "b", "c"}},
			"b",
		},
		{
			"map arg",
			"local t = ...; return t.name",
			[]any{map[string]any{"name": "gopher"}},
			"gopher",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := h.ExecLua(tt.code, tt.args...)
			if err != nil {
				t.Fatalf("ExecLua() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExecLua() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestExecLua_StatePersists(t *testing.T) {
	h := New(WithSyncLoop())
	defer h.Close()

	if _, err := h.ExecLua("stash = 'kept'"); err != nil {
		t.Fatalf("ExecLua() error = %v", err)
	}
	got, err := h.ExecLua("return stash")
	if err != nil {
		t.Fatalf("ExecLua() error = %v", err)
	}
	if got != "kept" {
		t.Errorf("ExecLua() = %v, want state kept between chunks", got)
	}
}

func TestExecLua_Errors(t *testing.T) {
	h := New(WithSyncLoop())
	defer h.Close()

	if _, err := h.ExecLua("return ("); err == nil {
		t.Error("syntax error should be reported")
	}
	if _, err := h.ExecLua("error('runtime failure')"); err == nil {
		t.Error("runtime error should be reported")
	}

	// The interpreter stays usable after a failure.
	got, err := h.ExecLua("return 7")
	if err != nil {
		t.Fatalf("ExecLua() after error = %v", err)
	}
	if got != int64(7) {
		t.Errorf("ExecLua() = %v, want 7", got)
	}
}

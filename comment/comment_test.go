package comment

import (
	"testing"

	"github.com/dshills/nvimkit/nvimtest"
)

func TestGet_TableHit(t *testing.T) {
	h := nvimtest.New(nvimtest.WithSyncLoop())
	defer h.Close()
	buf, err := h.CurrentBuf()
	if err != nil {
		t.Fatal(err)
	}
	if err := h.SetBufOption(buf, "filetype", "lua"); err != nil {
		t.Fatal(err)
	}
	// The table entry must win over whatever commentstring says.
	if err := h.SetBufOption(buf, "commentstring", "#%s"); err != nil {
		t.Fatal(err)
	}

	cs, err := Get(h)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if cs.Line != "--" {
		t.Errorf("Line = %q, want --", cs.Line)
	}
	if cs.Block == nil || cs.Block.Start != "--[[" || cs.Block.End != "]]" {
		t.Errorf("Block = %+v, want --[[ ]]", cs.Block)
	}
}

func TestGet_OptionFallback(t *testing.T) {
	tests := []struct {
		name          string
		commentstring string
		wantLine      string
		wantBlock     *BlockComment
	}{
		{"line style", "//%s", "//", nil},
		{"block style", "/*%s*/", "", &BlockComment{Start: "/*", End: "*/"}},
		{"hash line", "#%s", "#", nil},
		{"empty", "", "", nil},
		{"no slot", "//", "", nil},
		{"leading slot", "%s*/", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := nvimtest.New(nvimtest.WithSyncLoop())
			defer h.Close()
			buf, err := h.CurrentBuf()
			if err != nil {
				t.Fatal(err)
			}
			if err := h.SetBufOption(buf, "filetype", "unknownlang"); err != nil {
				t.Fatal(err)
			}
			if err := h.SetBufOption(buf, "commentstring", tt.commentstring); err != nil {
				t.Fatal(err)
			}

			cs, err := Get(h)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if cs.Line != tt.wantLine {
				t.Errorf("Line = %q, want %q", cs.Line, tt.wantLine)
			}
			switch {
			case tt.wantBlock == nil:
				if cs.Block != nil {
					t.Errorf("Block = %+v, want nil", cs.Block)
				}
			case cs.Block == nil:
				t.Errorf("Block = nil, want %+v", tt.wantBlock)
			case *cs.Block != *tt.wantBlock:
				t.Errorf("Block = %+v, want %+v", cs.Block, tt.wantBlock)
			}
		})
	}
}
